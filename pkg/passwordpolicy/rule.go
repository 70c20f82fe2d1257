package passwordpolicy

// RuleResult is the outcome of one rule against one password. Items holds
// the nested results of composite rules and is nil otherwise.
type RuleResult struct {
	Message string       `json:"message"`
	Valid   bool         `json:"valid"`
	Items   []RuleResult `json:"items,omitempty"`
}

// Rule judges a password. Implementations must be stateless.
type Rule interface {
	Evaluate(password string) RuleResult
}

// RuleFunc adapts a function to the Rule interface.
type RuleFunc func(password string) RuleResult

func (f RuleFunc) Evaluate(password string) RuleResult {
	return f(password)
}

package passwordpolicy

// Policy is a named, ordered collection of rules.
type Policy struct {
	Name  string
	Rules []Rule
}

// New builds a policy from rules in evaluation order.
func New(name string, rules ...Rule) Policy {
	return Policy{Name: name, Rules: rules}
}

// Evaluate runs every rule against password and returns the results in rule
// order.
func (p Policy) Evaluate(password string) []RuleResult {
	results := make([]RuleResult, len(p.Rules))
	for i, rule := range p.Rules {
		results[i] = rule.Evaluate(password)
	}
	return results
}

// Valid reports whether password satisfies every rule of the policy.
func (p Policy) Valid(password string) bool {
	return AllValid(p.Evaluate(password))
}

// AllValid reports whether every result passed. An empty slice is valid.
func AllValid(results []RuleResult) bool {
	for _, r := range results {
		if !r.Valid {
			return false
		}
	}
	return true
}

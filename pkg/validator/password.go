package validator

import (
	"strings"

	"github.com/dmitrymomot/authinput/pkg/passwordpolicy"
)

// PasswordPolicyValidator evaluates a password against every rule of a
// policy. An empty password is not short-circuited: the policy decides.
type PasswordPolicyValidator struct {
	policy passwordpolicy.Policy
}

// PasswordPolicy validates passwords against policy.
func PasswordPolicy(policy passwordpolicy.Policy) PasswordPolicyValidator {
	return PasswordPolicyValidator{policy: policy}
}

// Policy returns the policy the validator enforces.
func (v PasswordPolicyValidator) Policy() passwordpolicy.Policy {
	return v.policy
}

// Checklist evaluates value without deciding, for live feedback while the
// user types.
func (v PasswordPolicyValidator) Checklist(value string) []passwordpolicy.RuleResult {
	return v.policy.Evaluate(strings.TrimSpace(value))
}

func (v PasswordPolicyValidator) Validate(value string) error {
	results := v.Checklist(value)
	if passwordpolicy.AllValid(results) {
		return nil
	}
	return PolicyViolation(results)
}

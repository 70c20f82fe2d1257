// Package passwordpolicy evaluates a password against an ordered set of
// composable rules and reports, per rule, whether it passed together with a
// human-readable description.
//
// The engine is policy-agnostic: a Policy is only a name and a list of Rule
// values, and evaluating it yields one RuleResult per rule in the policy's
// fixed order. Passing results are kept alongside failing ones so callers can
// render a checklist.
//
// # Rules
//
//   - Length               – character count within an inclusive range
//   - Contains             – at least one rune from a CharSet
//   - AtLeast              – composite, N of M nested rules must pass
//   - MaxConsecutiveRepeats – caps runs of the same rune
//   - DistinctCharacters   – minimum number of different runes
//
// Custom rules implement Rule or wrap a function with RuleFunc.
//
// # Named policies
//
// None, Low, Fair, Good and Excellent reproduce the Auth0 database connection
// strength levels. Their rule descriptions are i18n.Message values rendered
// through the supplied i18n.Localizer when the policy is built, so a policy
// value is already localized and can be shared between goroutines:
//
//	policy, err := passwordpolicy.ByName("excellent", translator.Localizer("es"))
//	if err != nil {
//		return err
//	}
//	results := policy.Evaluate(password)
//	if !passwordpolicy.AllValid(results) {
//		// render results as a checklist
//	}
package passwordpolicy

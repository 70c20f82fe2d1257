package passwordpolicy

import "github.com/rivo/uniseg"

// Length passes when the number of user-perceived characters (grapheme
// clusters) in the password is within [min, max].
func Length(min, max int, message string) Rule {
	return RuleFunc(func(password string) RuleResult {
		n := uniseg.GraphemeClusterCount(password)
		return RuleResult{Message: message, Valid: n >= min && n <= max}
	})
}

// Contains passes when at least one rune of the password is in set.
func Contains(set CharSet, message string) Rule {
	return RuleFunc(func(password string) RuleResult {
		for _, r := range password {
			if set(r) {
				return RuleResult{Message: message, Valid: true}
			}
		}
		return RuleResult{Message: message}
	})
}

// AtLeast passes when at least min of the nested rules pass. Every nested
// result is reported in Items, in order.
func AtLeast(min int, message string, rules ...Rule) Rule {
	return RuleFunc(func(password string) RuleResult {
		items := make([]RuleResult, len(rules))
		passed := 0
		for i, rule := range rules {
			items[i] = rule.Evaluate(password)
			if items[i].Valid {
				passed++
			}
		}
		return RuleResult{Message: message, Valid: passed >= min, Items: items}
	})
}

// MaxConsecutiveRepeats fails when any rune repeats more than max times in
// a row.
func MaxConsecutiveRepeats(max int, message string) Rule {
	return RuleFunc(func(password string) RuleResult {
		var (
			current rune
			count   int
		)
		for i, r := range []rune(password) {
			if i > 0 && r == current {
				count++
			} else {
				current, count = r, 1
			}
			if count > max {
				return RuleResult{Message: message}
			}
		}
		return RuleResult{Message: message, Valid: true}
	})
}

// DistinctCharacters passes when the password has at least min different
// runes.
func DistinctCharacters(min int, message string) Rule {
	return RuleFunc(func(password string) RuleResult {
		seen := make(map[rune]struct{}, len(password))
		for _, r := range password {
			seen[r] = struct{}{}
		}
		return RuleResult{Message: message, Valid: len(seen) >= min}
	})
}

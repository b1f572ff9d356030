// Package quality classifies converter warnings and derives the 0-100
// fidelity score. Every converter applies the same classification rule so
// that scores are comparable across ecosystems.
package quality

import "strings"

// Penalty is the fixed score decrement charged for lossy conversion.
const Penalty = 10

// Lossy reports whether a warning records content that was dropped or could
// not be represented in the target format. The classification is a substring
// rule shared by all converters: a warning is lossy when it says something
// was "skipped" or "not supported"; purely informational notices are not.
func Lossy(warning string) bool {
	lower := strings.ToLower(warning)
	return strings.Contains(lower, "not supported") || strings.Contains(lower, "skipped")
}

// Evaluate applies the flat scoring rule: the base score of 100 is reduced by
// a single fixed penalty when any lossy warning exists, regardless of how
// many there are. Returns the score and the lossy-conversion flag.
func Evaluate(warnings []string) (int, bool) {
	for _, w := range warnings {
		if Lossy(w) {
			return 100 - Penalty, true
		}
	}
	return 100, false
}

// EvaluatePerIssue charges the penalty once per lossy warning, clamped at
// zero. Used by converters that score each skipped section individually.
func EvaluatePerIssue(warnings []string) (int, bool) {
	score := 100
	lossy := false
	for _, w := range warnings {
		if Lossy(w) {
			lossy = true
			score -= Penalty
		}
	}
	if score < 0 {
		score = 0
	}
	return score, lossy
}

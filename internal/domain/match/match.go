// Package match decides whether two normalized skill keys refer to the same
// skill, using an exact-then-fuzzy-containment policy.
package match

import (
	"strings"

	"github.com/talentdir/skillscope/internal/domain/normalize"
)

// Fuzzy containment thresholds. Containment of a short key inside a much
// longer one is frequent and usually spurious, so short keys require a
// tighter length ratio than long ones.
const (
	minFuzzyLength   = 3   // keys shorter than this never fuzzy-match
	shortKeyLength   = 4   // keys at or below this length use the strict ratio
	shortKeyMinRatio = 0.5 // min shorter/longer ratio for short keys
	longKeyMinRatio  = 0.3 // min shorter/longer ratio for longer keys
)

// IsMatch reports whether two normalized keys refer to the same skill.
//
// Tier 1 is exact string equality. Tier 2 is fuzzy containment: the shorter
// key must be at least minFuzzyLength runes, the length ratio shorter/longer
// must clear the length-dependent threshold, and one key must contain the
// other as a substring. The result is symmetric in a and b.
//
// Callers are expected to reject empty keys before calling; two empty keys
// would otherwise trivially pass the exact tier.
func IsMatch(a, b normalize.Key) bool {
	if a == b {
		return true
	}

	shorter, longer := len(a), len(b)
	if shorter > longer {
		shorter, longer = longer, shorter
	}
	if shorter < minFuzzyLength {
		return false
	}

	lengthRatio := float64(shorter) / float64(longer)
	minRatio := longKeyMinRatio
	if shorter <= shortKeyLength {
		minRatio = shortKeyMinRatio
	}
	if lengthRatio < minRatio {
		return false
	}

	return strings.Contains(string(a), string(b)) || strings.Contains(string(b), string(a))
}

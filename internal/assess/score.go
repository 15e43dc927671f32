package assess

import (
	"regexp"
	"strconv"
)

// Tier is the deterministic recommendation derived from a match score.
type Tier int

const (
	TierReject Tier = iota
	TierCaution
	TierStrong
)

func (t Tier) String() string {
	switch t {
	case TierCaution:
		return "caution"
	case TierStrong:
		return "strong"
	default:
		return "reject"
	}
}

// Label returns the recruiter-facing recommendation text.
func (t Tier) Label() string {
	switch t {
	case TierCaution:
		return "Consider with caution – lacks core skills"
	case TierStrong:
		return "Strong match – good alignment"
	default:
		return "Not suitable – major role mismatch"
	}
}

// Thresholds are the tier boundaries. They are empirically tuned policy
// values, kept as configuration so they can change without touching the
// extraction logic.
type Thresholds struct {
	Caution int
	Strong  int
}

// DefaultThresholds returns the tuned tier boundaries.
func DefaultThresholds() Thresholds {
	return Thresholds{Caution: 50, Strong: 70}
}

// Classify maps a score to its tier: below Caution is Reject, below Strong
// is Caution, anything else is Strong.
func (t Thresholds) Classify(score int) Tier {
	switch {
	case score < t.Caution:
		return TierReject
	case score < t.Strong:
		return TierCaution
	default:
		return TierStrong
	}
}

// A "score" token followed within a short window by 1-3 digits and a
// percent sign, tolerating markdown decoration in between.
var scorePattern = regexp.MustCompile(`(?i)score\D{0,10}?(\d{1,3})%`)

// ParseScore extracts the bounded match percentage from the model's raw text
// and classifies it. Text without a parseable score yields 0: a documented
// lossy fallback, not an error. Out-of-range values are clamped.
func ParseScore(raw string, thresholds Thresholds) (int, Tier) {
	score := 0
	if match := scorePattern.FindStringSubmatch(raw); match != nil {
		// The pattern guarantees 1-3 digits.
		score, _ = strconv.Atoi(match[1])
	}

	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}

	return score, thresholds.Classify(score)
}

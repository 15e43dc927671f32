package assess

import "testing"

func TestParseScore(t *testing.T) {
	t.Parallel()

	thresholds := DefaultThresholds()

	tests := []struct {
		name  string
		raw   string
		score int
		tier  Tier
	}{
		{
			name:  "plain score line",
			raw:   "Name: Jane Doe\nScore: 57%\nReason: partial overlap",
			score: 57,
			tier:  TierCaution,
		},
		{
			name:  "markdown decorated score",
			raw:   "**Name**: Jane Doe\n**Score**: 82%\n**Reason**: strong skill overlap",
			score: 82,
			tier:  TierStrong,
		},
		{
			name:  "lowercase token",
			raw:   "the score: 44% overall",
			score: 44,
			tier:  TierReject,
		},
		{
			name:  "out of range clamps to 100",
			raw:   "Score: 150%",
			score: 100,
			tier:  TierStrong,
		},
		{
			name:  "no score token",
			raw:   "the model went off script entirely",
			score: 0,
			tier:  TierReject,
		},
		{
			name:  "percentage without score token is ignored",
			raw:   "matched 90% of keywords",
			score: 0,
			tier:  TierReject,
		},
		{
			name:  "number without percent sign is ignored",
			raw:   "Score: 75 out of 100",
			score: 0,
			tier:  TierReject,
		},
		{
			name:  "failure marker degrades to zero",
			raw:   FailureMarker,
			score: 0,
			tier:  TierReject,
		},
		{
			name:  "caution boundary is inclusive",
			raw:   "Score: 50%",
			score: 50,
			tier:  TierCaution,
		},
		{
			name:  "strong boundary is inclusive",
			raw:   "Score: 70%",
			score: 70,
			tier:  TierStrong,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, tier := ParseScore(tt.raw, thresholds)
			if score != tt.score {
				t.Fatalf("expected score %d, got %d", tt.score, score)
			}
			if tier != tt.tier {
				t.Fatalf("expected tier %s, got %s", tt.tier, tier)
			}
		})
	}
}

func TestParseScoreCustomThresholds(t *testing.T) {
	t.Parallel()

	thresholds := Thresholds{Caution: 30, Strong: 90}

	score, tier := ParseScore("Score: 57%", thresholds)
	if score != 57 || tier != TierCaution {
		t.Fatalf("expected (57, caution), got (%d, %s)", score, tier)
	}

	if _, tier := ParseScore("Score: 29%", thresholds); tier != TierReject {
		t.Fatalf("expected reject, got %s", tier)
	}
}

func TestTierLabels(t *testing.T) {
	t.Parallel()

	if TierReject.Label() == "" || TierCaution.Label() == "" || TierStrong.Label() == "" {
		t.Fatal("expected every tier to carry a label")
	}

	if TierStrong.String() != "strong" {
		t.Fatalf("unexpected tier string: %s", TierStrong)
	}
}

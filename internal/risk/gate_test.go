package risk

import "testing"

func TestDecide(t *testing.T) {
	tests := []struct {
		name       string
		assessment Assessment
		want       Action
	}{
		{
			name:       "critical refuses",
			assessment: Assessment{RiskLevel: LevelCritical, ShouldBlock: true, RequiresReview: true},
			want:       ActionRefuse,
		},
		{
			name:       "high requires confirmation",
			assessment: Assessment{RiskLevel: LevelHigh, RequiresReview: true},
			want:       ActionConfirm,
		},
		{
			name:       "medium proceeds",
			assessment: Assessment{RiskLevel: LevelMedium},
			want:       ActionProceed,
		},
		{
			name:       "low proceeds",
			assessment: Assessment{RiskLevel: LevelLow},
			want:       ActionProceed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Decide(&tt.assessment); got != tt.want {
				t.Errorf("Decide() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestDecideBlockWinsOverReview(t *testing.T) {
	// Block takes priority even when both flags are set.
	a := Assessment{ShouldBlock: true, RequiresReview: true}
	if Decide(&a) != ActionRefuse {
		t.Error("block must take priority over review")
	}
}

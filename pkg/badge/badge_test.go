package badge

import (
	"testing"

	"github.com/stretchr/testify/assert"

	domain "github.com/snackbuddy/deal-tracker/pkg/types"
)

func TestClassify_Boundaries(t *testing.T) {
	t.Parallel()

	th := DefaultThresholds()

	tests := []struct {
		name       string
		percentOff float64
		wantTier   domain.Tier
	}{
		{"well above elite", 60.0, domain.TierElite},
		{"exactly elite bound", 25.0, domain.TierElite},
		{"just under elite", 24.9, domain.TierStrong},
		{"exactly strong bound", 20.0, domain.TierStrong},
		{"mid range", 15.0, domain.TierProtein},
		{"exactly mid bound", 10.0, domain.TierProtein},
		{"small discount", 5.0, domain.TierEveryday},
		{"zero", 0.0, domain.TierEveryday},
		{"negative gets no badge", -3.0, domain.TierNone},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			label, tier := Classify(tt.percentOff, th)
			assert.Equal(t, tt.wantTier, tier)
			if tier == domain.TierNone {
				assert.Empty(t, label)
			} else {
				assert.NotEmpty(t, label)
			}
		})
	}
}

func TestClassify_CustomThresholds(t *testing.T) {
	t.Parallel()

	th := Thresholds{Elite: 50, Strong: 30, Mid: 15}

	_, tier := Classify(40, th)
	assert.Equal(t, domain.TierStrong, tier)

	_, tier = Classify(50, th)
	assert.Equal(t, domain.TierElite, tier)
}

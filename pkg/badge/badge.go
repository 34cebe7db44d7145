// Package badge classifies a resolved percent-off figure into a discrete
// deal-strength tier for display badges.
package badge

import (
	domain "github.com/snackbuddy/deal-tracker/pkg/types"
)

// Thresholds defines the inclusive lower bound of each tier.
type Thresholds struct {
	Elite  float64
	Strong float64
	Mid    float64
}

// DefaultThresholds returns the standard tier boundaries.
func DefaultThresholds() Thresholds {
	return Thresholds{
		Elite:  25.0,
		Strong: 20.0,
		Mid:    10.0,
	}
}

// Classify maps a percent-off value to its badge label and tier.
// Bounds are inclusive on the lower edge. Negative input should not
// occur (the discount resolver clamps at zero) but yields no badge
// rather than a bogus one.
func Classify(percentOff float64, t Thresholds) (string, domain.Tier) {
	switch {
	case percentOff < 0:
		return "", domain.TierNone
	case percentOff >= t.Elite:
		return "🔥 Elite Deal", domain.TierElite
	case percentOff >= t.Strong:
		return "⚡ Strong Deal", domain.TierStrong
	case percentOff >= t.Mid:
		return "Deal", domain.TierProtein
	default:
		return "Everyday Price", domain.TierEveryday
	}
}

package pipeline

// resolveDiscount computes the percent-off figure for one record.
//
// The source pct_off fraction is trusted as-is when present; it is never
// reconciled against the baseline even when the two disagree. Without it,
// a positive baseline at or above the current price yields the derived
// discount. Everything else is zero — a price above its baseline is a
// price increase, not a negative deal.
//
// The result is unrounded; display rounding happens at family assembly so
// the fallback comparisons above run on raw figures.
func resolveDiscount(pctOff *float64, price float64, baseline *float64) float64 {
	if pctOff != nil {
		p := *pctOff * 100
		if p < 0 {
			return 0
		}
		return p
	}

	if baseline != nil && *baseline > 0 && price <= *baseline {
		p := (*baseline - price) / *baseline * 100
		if p < 0 {
			return 0
		}
		return p
	}

	return 0
}

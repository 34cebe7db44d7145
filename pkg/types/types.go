// Package domain defines the core business types for the SnackBuddy deal tracker.
package domain

// RawRecord is one row from the source table, keyed by column name.
// Any field may be absent or malformed; duplicates across rows are expected.
type RawRecord map[string]string

// Recognized column names in the source table.
const (
	ColRetailer     = "retailer"
	ColSection      = "section"
	ColCategory     = "category"
	ColBrand        = "brand"
	ColProductName  = "product_name"
	ColFlavor       = "flavor"
	ColPackSize     = "pack_size"
	ColPrice        = "price"
	ColBaseline     = "baseline"
	ColPctOff       = "pct_off"
	ColImageURL     = "image_url"
	ColCanonicalURL = "canonical_url"
	ColAvailability = "availability_norm"
	ColTimestamp    = "timestamp"
	ColDealStrength = "deal_strength"
)

// StreakDayColumns lists the aliased streak-days column names, probed in
// order; the first key present in a record wins.
var StreakDayColumns = []string{
	"deal_streak_days",
	"streak_days",
	"deal_streak",
	"days_on_deal",
}

// Tier represents the discrete badge strength of a deal.
type Tier string

// Tier constants, strongest first. TierNone means no badge is shown.
const (
	TierElite    Tier = "elite"
	TierStrong   Tier = "strong"
	TierProtein  Tier = "protein"
	TierEveryday Tier = "everyday"
	TierNone     Tier = ""
)

// NormalizedDeal is one RawRecord after field coercion and discount
// resolution. A record with no usable price never becomes one of these.
type NormalizedDeal struct {
	Retailer string
	Section  string
	Category string

	// Name tokens; structured fields when present, heuristic otherwise.
	Brand    string
	BaseName string
	Flavor   string

	// PackSize is the raw trimmed cell, kept verbatim for grouping.
	PackSize  string
	PackCount *int
	PackUnit  *string

	Price    float64
	OldPrice *float64

	// PercentOff is the unrounded resolved figure, always >= 0.
	// Display rounding happens at family assembly.
	PercentOff float64

	StreakDays *int

	ImageURL     string
	RetailerURL  string
	Availability string
	VerifiedAt   string
	DealStrength string
}

// FlavorEntry is one flavor variant folded into a deal family.
type FlavorEntry struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// DealFamily is the unit handed to the renderer: one representative deal
// plus the distinct flavors of all records that shared its grouping key.
type DealFamily struct {
	ID          string `json:"id"`
	ProductName string `json:"product_name"`
	Retailer    string `json:"retailer"`
	Section     string `json:"section"`
	Category    string `json:"category"`

	OldPrice   *float64 `json:"old_price"`
	NewPrice   float64  `json:"new_price"`
	PercentOff float64  `json:"percent_off"`

	ImageURL     string `json:"image_url"`
	RetailerURL  string `json:"retailer_url"`
	Availability string `json:"availability"`
	VerifiedAt   string `json:"verified_at"`
	DealStrength string `json:"deal_strength"`

	PackCount  *int    `json:"pack_count"`
	PackUnit   *string `json:"pack_unit"`
	StreakDays *int    `json:"streak_days"`

	Tier       Tier   `json:"tier"`
	BadgeLabel string `json:"badge_label,omitempty"`

	// FlavorData is deduplicated case-insensitively and sorted
	// alphabetically; Sample holds the first two entries, Extra the rest.
	FlavorData   []FlavorEntry `json:"flavor_data"`
	FlavorSample []FlavorEntry `json:"flavor_sample"`
	FlavorExtra  []FlavorEntry `json:"flavor_extra"`
}

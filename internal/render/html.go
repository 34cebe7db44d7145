package render

import (
	"fmt"
	"io"
	"strings"
	"time"

	domain "github.com/snackbuddy/deal-tracker/pkg/types"
)

// Site holds the page-level text shown in the header.
type Site struct {
	Title    string
	Subtitle string
}

// card is the per-deal view model; all conditional display rules are
// resolved here so the template stays declarative.
type card struct {
	Name         string
	Retailer     string
	Category     string
	RetailerPill string
	ViewButton   string

	BadgeLabel string
	BadgeClass string

	OldPrice   string // empty unless above the new price
	NewPrice   string
	PercentOff string // empty at zero

	ImageURL    string
	RetailerURL string

	Availability      string
	AvailabilityClass string

	Pack   string
	Streak string

	FlavorSample []domain.FlavorEntry
	FlavorExtra  []domain.FlavorEntry
}

type page struct {
	Site    Site
	Updated string
	Count   int
	Cards   []card
}

// HTML renders the static deals page. The families must already be in
// display order. now is only used when no record carries a parseable
// verification timestamp.
func HTML(w io.Writer, fams []domain.DealFamily, site Site, now time.Time) error {
	p := page{
		Site:    site,
		Updated: lastUpdated(fams, now),
		Count:   len(fams),
		Cards:   make([]card, 0, len(fams)),
	}
	for i := range fams {
		p.Cards = append(p.Cards, buildCard(&fams[i]))
	}

	if err := pageTmpl.Execute(w, p); err != nil {
		return fmt.Errorf("rendering deals page: %w", err)
	}
	return nil
}

// WriteHTMLFile renders the deals page to path, creating parent
// directories as needed.
func WriteHTMLFile(path string, fams []domain.DealFamily, site Site, now time.Time) error {
	f, err := createFile(path)
	if err != nil {
		return err
	}

	if err := HTML(f, fams, site, now); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	return nil
}

func buildCard(f *domain.DealFamily) card {
	c := card{
		Name:         f.ProductName,
		Retailer:     f.Retailer,
		Category:     f.Category,
		BadgeLabel:   f.BadgeLabel,
		BadgeClass:   badgeClass(f.Tier),
		NewPrice:     formatPrice(f.NewPrice),
		ImageURL:     f.ImageURL,
		RetailerURL:  f.RetailerURL,
		FlavorSample: f.FlavorSample,
		FlavorExtra:  f.FlavorExtra,
	}

	c.RetailerPill, c.ViewButton = retailerClasses(f.Retailer)
	c.Availability, c.AvailabilityClass = availabilityLabel(f.Availability)

	// A baseline at or below the current price is a price rise or noise;
	// the strikethrough is suppressed, not shown as a markup.
	if f.OldPrice != nil && *f.OldPrice > f.NewPrice {
		c.OldPrice = formatPrice(*f.OldPrice)
	}
	if f.PercentOff > 0 {
		c.PercentOff = fmt.Sprintf("%.0f%% OFF", f.PercentOff)
	}
	if f.PackCount != nil {
		unit := "ct"
		if f.PackUnit != nil && *f.PackUnit != "" {
			unit = *f.PackUnit
		}
		c.Pack = fmt.Sprintf("%d %s", *f.PackCount, unit)
	}
	c.Streak = streakText(f.StreakDays)

	return c
}

func formatPrice(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}

func badgeClass(t domain.Tier) string {
	switch t {
	case domain.TierElite:
		return "badge badge-elite"
	case domain.TierStrong:
		return "badge badge-strong"
	case domain.TierProtein:
		return "badge badge-mid"
	case domain.TierEveryday:
		return "badge badge-everyday"
	default:
		return ""
	}
}

// retailerClasses picks the pill and button styling for a retailer.
func retailerClasses(retailer string) (pill, button string) {
	r := strings.ToLower(retailer)
	switch {
	case strings.Contains(r, "walmart"):
		return "retailer-pill retailer-walmart", "view-button view-walmart"
	case strings.Contains(r, "kroger"):
		return "retailer-pill retailer-kroger", "view-button view-kroger"
	case strings.Contains(r, "target"):
		return "retailer-pill retailer-target", "view-button view-target"
	default:
		return "retailer-pill retailer-generic", "view-button view-generic"
	}
}

func availabilityLabel(raw string) (label, class string) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "in_store":
		return "In-store", "availability in-store"
	case "both":
		return "In-store & online", "availability both"
	case "online_only":
		return "Online only", "availability online-only"
	default:
		return "Check store availability", "availability check"
	}
}

func streakText(days *int) string {
	if days == nil || *days < 1 {
		return ""
	}
	return fmt.Sprintf("Day %d of this deal", *days)
}

// lastUpdated formats the newest verification timestamp across the
// batch, falling back to now when none parses.
func lastUpdated(fams []domain.DealFamily, now time.Time) string {
	latest := time.Time{}
	for i := range fams {
		t, err := time.Parse(time.RFC3339, fams[i].VerifiedAt)
		if err != nil {
			continue
		}
		if t.After(latest) {
			latest = t
		}
	}
	if latest.IsZero() {
		latest = now
	}
	return latest.Format("January 02, 2006 at 3:04 PM")
}

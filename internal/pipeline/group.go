package pipeline

import (
	"fmt"
	"math"
	"strings"

	"github.com/google/uuid"

	"github.com/snackbuddy/deal-tracker/pkg/nameparse"
	domain "github.com/snackbuddy/deal-tracker/pkg/types"
)

// familyNamespace seeds the deterministic per-family UUIDs so repeated
// runs over identical input emit identical artifacts.
var familyNamespace = uuid.MustParse("8f2d9c41-5b77-4f6e-9a10-3de2f61c7a55")

// Grouper folds normalized deals that share a grouping key into deal
// families over a single accumulation pass. The first record seen for a
// key becomes the family representative; later records only contribute
// their flavor entries.
type Grouper struct {
	order []string
	accs  map[string]*familyAcc
}

type familyAcc struct {
	rep     domain.NormalizedDeal
	flavors []domain.FlavorEntry
	seen    map[string]bool
}

// NewGrouper returns an empty Grouper.
func NewGrouper() *Grouper {
	return &Grouper{accs: make(map[string]*familyAcc)}
}

// Add absorbs one normalized deal into its family.
func (g *Grouper) Add(d domain.NormalizedDeal) {
	key := groupKey(d)

	acc, ok := g.accs[key]
	if !ok {
		acc = &familyAcc{rep: d, seen: make(map[string]bool)}
		g.accs[key] = acc
		g.order = append(g.order, key)
	}

	if d.Flavor == "" || d.RetailerURL == "" {
		return
	}
	lower := strings.ToLower(d.Flavor)
	if acc.seen[lower] {
		return
	}
	acc.seen[lower] = true
	acc.flavors = append(acc.flavors, domain.FlavorEntry{
		Name: d.Flavor,
		URL:  d.RetailerURL,
	})
}

// Families assembles the accumulated families in first-seen order.
// Flavor lists are sorted alphabetically and split into the two-entry
// sample plus overflow used for progressive disclosure.
func (g *Grouper) Families() []domain.DealFamily {
	fams := make([]domain.DealFamily, 0, len(g.order))
	for _, key := range g.order {
		fams = append(fams, g.accs[key].assemble(key))
	}
	return fams
}

func (a *familyAcc) assemble(key string) domain.DealFamily {
	rep := a.rep

	f := domain.DealFamily{
		ID:           uuid.NewSHA1(familyNamespace, []byte(key)).String(),
		ProductName:  nameparse.DisplayName(rep.Brand, rep.BaseName, "", rep.PackCount, rep.PackUnit),
		Retailer:     rep.Retailer,
		Section:      rep.Section,
		Category:     rep.Category,
		OldPrice:     rep.OldPrice,
		NewPrice:     rep.Price,
		PercentOff:   round1(rep.PercentOff),
		ImageURL:     rep.ImageURL,
		RetailerURL:  rep.RetailerURL,
		Availability: rep.Availability,
		VerifiedAt:   rep.VerifiedAt,
		DealStrength: rep.DealStrength,
		PackCount:    rep.PackCount,
		PackUnit:     rep.PackUnit,
		StreakDays:   rep.StreakDays,
	}

	flavors := make([]domain.FlavorEntry, len(a.flavors))
	copy(flavors, a.flavors)
	sortFlavors(flavors)

	f.FlavorData = flavors
	if len(flavors) > flavorSampleSize {
		f.FlavorSample = flavors[:flavorSampleSize]
		f.FlavorExtra = flavors[flavorSampleSize:]
	} else {
		f.FlavorSample = flavors
	}

	return f
}

// flavorSampleSize is how many flavors a card shows before "more".
const flavorSampleSize = 2

// groupKey canonicalizes the composite grouping tuple. Absent fields are
// stable empty components; prices are rounded to 4 decimals so float
// representation noise cannot split a family.
func groupKey(d domain.NormalizedDeal) string {
	return fmt.Sprintf("%s|%s|%s|%s|%s|%.4f|%s",
		keyStr(d.Retailer),
		keyStr(d.Section),
		keyStr(d.Brand),
		keyStr(d.BaseName),
		keyStr(d.PackSize),
		d.Price,
		keyFloat(d.OldPrice),
	)
}

func keyStr(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func keyFloat(f *float64) string {
	if f == nil {
		return "null"
	}
	return fmt.Sprintf("%.4f", *f)
}

// round1 rounds to one decimal for display.
func round1(f float64) float64 {
	return math.Round(f*10) / 10
}

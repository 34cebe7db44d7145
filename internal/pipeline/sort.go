package pipeline

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	domain "github.com/snackbuddy/deal-tracker/pkg/types"
)

// Deal ordering is the one place case-insensitive string comparison is
// user-visible, so it goes through a collator instead of ad-hoc
// lowercasing. The transform is single-threaded; the shared collators
// are never used concurrently.
var (
	retailerCollator = collate.New(language.English, collate.IgnoreCase)
	flavorCollator   = collate.New(language.English, collate.IgnoreCase)
)

// SortFamilies applies the canonical landing order in place: retailer,
// then category (both case-insensitive ascending), then best discount
// first, then cheapest first. The sort is stable so exact ties keep
// their first-seen order, which downstream re-sorts rely on.
func SortFamilies(fams []domain.DealFamily) {
	sort.SliceStable(fams, func(i, j int) bool {
		a, b := &fams[i], &fams[j]

		if c := retailerCollator.CompareString(a.Retailer, b.Retailer); c != 0 {
			return c < 0
		}
		if c := retailerCollator.CompareString(a.Category, b.Category); c != 0 {
			return c < 0
		}
		if a.PercentOff != b.PercentOff {
			return a.PercentOff > b.PercentOff
		}
		return a.NewPrice < b.NewPrice
	})
}

// sortFlavors orders a family's flavor list alphabetically,
// case-insensitive.
func sortFlavors(flavors []domain.FlavorEntry) {
	sort.SliceStable(flavors, func(i, j int) bool {
		return flavorCollator.CompareString(flavors[i].Name, flavors[j].Name) < 0
	})
}

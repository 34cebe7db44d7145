package pipeline

import (
	"github.com/snackbuddy/deal-tracker/pkg/nameparse"
	domain "github.com/snackbuddy/deal-tracker/pkg/types"
)

// Normalize coerces one raw row into a NormalizedDeal. The second return
// is false when the row has no usable price, in which case the record is
// dropped from the batch entirely. Every other problem degrades the
// affected field to its absent form instead of failing the row.
func Normalize(rec domain.RawRecord, tok *nameparse.Tokenizer) (domain.NormalizedDeal, bool) {
	price, ok := parseFloat(cleanString(rec, domain.ColPrice))
	if !ok {
		return domain.NormalizedDeal{}, false
	}

	baseline := floatField(rec, domain.ColBaseline)
	pctOff := floatField(rec, domain.ColPctOff)

	d := domain.NormalizedDeal{
		Retailer:     cleanString(rec, domain.ColRetailer),
		Section:      cleanString(rec, domain.ColSection),
		Category:     cleanString(rec, domain.ColCategory),
		PackSize:     cleanString(rec, domain.ColPackSize),
		Price:        price,
		OldPrice:     baseline,
		PercentOff:   resolveDiscount(pctOff, price, baseline),
		StreakDays:   streakDays(rec),
		ImageURL:     cleanString(rec, domain.ColImageURL),
		RetailerURL:  cleanString(rec, domain.ColCanonicalURL),
		Availability: cleanString(rec, domain.ColAvailability),
		VerifiedAt:   cleanString(rec, domain.ColTimestamp),
		DealStrength: cleanString(rec, domain.ColDealStrength),
	}

	d.PackCount, d.PackUnit = parsePack(d.PackSize)
	d.Brand, d.BaseName, d.Flavor = nameTokens(rec, tok)

	return d, true
}

// nameTokens resolves the brand/base/flavor triple, preferring structured
// columns and filling gaps from the free-text product name.
func nameTokens(rec domain.RawRecord, tok *nameparse.Tokenizer) (brand, base, flavor string) {
	brand = cleanString(rec, domain.ColBrand)
	flavor = cleanString(rec, domain.ColFlavor)
	name := cleanString(rec, domain.ColProductName)

	if brand != "" && flavor != "" {
		// Fully structured row: the product name is already the base.
		return brand, name, flavor
	}

	toks := tok.Tokenize(name)
	if brand == "" {
		brand = toks.Brand
	}
	if flavor != "" {
		// Structured flavor but heuristic brand: keep the name as base.
		return brand, name, flavor
	}
	return brand, toks.Base, toks.Flavor
}

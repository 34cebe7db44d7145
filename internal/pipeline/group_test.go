package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/snackbuddy/deal-tracker/pkg/types"
)

func deal(flavor, url string) domain.NormalizedDeal {
	return domain.NormalizedDeal{
		Retailer:    "Walmart",
		Section:     "snacks",
		Brand:       "Quest",
		BaseName:    "Quest Protein Chips",
		PackSize:    "8",
		Price:       3.48,
		OldPrice:    fptr(4.98),
		PercentOff:  30.120481,
		Flavor:      flavor,
		RetailerURL: url,
	}
}

func TestGrouper_MergesFlavorVariants(t *testing.T) {
	t.Parallel()

	g := NewGrouper()
	g.Add(deal("Cherry", "https://walmart.example/cherry"))
	g.Add(deal("Vanilla", "https://walmart.example/vanilla"))
	g.Add(deal("CHERRY", "https://walmart.example/cherry-dup"))

	fams := g.Families()
	require.Len(t, fams, 1)

	f := fams[0]
	require.Len(t, f.FlavorData, 2, "case-insensitive dedup")
	assert.Equal(t, "Cherry", f.FlavorData[0].Name, "sorted alphabetically")
	assert.Equal(t, "Vanilla", f.FlavorData[1].Name)
	assert.Equal(t, "https://walmart.example/cherry", f.FlavorData[0].URL,
		"first occurrence keeps its URL")
}

func TestGrouper_FirstSeenIsRepresentative(t *testing.T) {
	t.Parallel()

	first := deal("Cherry", "https://walmart.example/cherry")
	first.ImageURL = "https://img.example/cherry.jpg"

	second := deal("Vanilla", "https://walmart.example/vanilla")
	second.ImageURL = "https://img.example/vanilla.jpg"

	g := NewGrouper()
	g.Add(first)
	g.Add(second)

	fams := g.Families()
	require.Len(t, fams, 1)
	assert.Equal(t, "https://img.example/cherry.jpg", fams[0].ImageURL)
	assert.Equal(t, "https://walmart.example/cherry", fams[0].RetailerURL)
}

func TestGrouper_KeySplits(t *testing.T) {
	t.Parallel()

	base := deal("Cherry", "https://walmart.example/cherry")

	differentPrice := base
	differentPrice.Price = 3.98

	differentRetailer := base
	differentRetailer.Retailer = "Target"

	g := NewGrouper()
	g.Add(base)
	g.Add(differentPrice)
	g.Add(differentRetailer)

	assert.Len(t, g.Families(), 3)
}

func TestGrouper_FloatNoiseDoesNotSplit(t *testing.T) {
	t.Parallel()

	a := deal("Cherry", "https://walmart.example/cherry")
	a.Price = 3.48

	b := deal("Vanilla", "https://walmart.example/vanilla")
	b.Price = 3.480000001 // representation noise, same at 4 decimals

	g := NewGrouper()
	g.Add(a)
	g.Add(b)

	assert.Len(t, g.Families(), 1)
}

func TestGrouper_CaseAndWhitespaceInsensitiveKey(t *testing.T) {
	t.Parallel()

	a := deal("Cherry", "https://walmart.example/cherry")

	b := deal("Vanilla", "https://walmart.example/vanilla")
	b.Retailer = " WALMART "
	b.Brand = "quest"

	g := NewGrouper()
	g.Add(a)
	g.Add(b)

	assert.Len(t, g.Families(), 1)
}

func TestGrouper_NullBaselineIsItsOwnKey(t *testing.T) {
	t.Parallel()

	withBaseline := deal("Cherry", "https://walmart.example/cherry")

	noBaseline := deal("Vanilla", "https://walmart.example/vanilla")
	noBaseline.OldPrice = nil

	g := NewGrouper()
	g.Add(withBaseline)
	g.Add(noBaseline)

	assert.Len(t, g.Families(), 2, "null baseline must not merge with a real one")
}

func TestGrouper_SkipsEmptyFlavorEntries(t *testing.T) {
	t.Parallel()

	g := NewGrouper()
	g.Add(deal("", "https://walmart.example/plain"))
	g.Add(deal("Cherry", ""))
	g.Add(deal("Cherry", "https://walmart.example/cherry"))

	fams := g.Families()
	require.Len(t, fams, 1)
	require.Len(t, fams[0].FlavorData, 1)
	assert.Equal(t, "https://walmart.example/cherry", fams[0].FlavorData[0].URL)
}

func TestGrouper_FlavorSampleSplit(t *testing.T) {
	t.Parallel()

	g := NewGrouper()
	for _, fl := range []string{"Vanilla", "Cherry", "Apple", "Banana"} {
		g.Add(deal(fl, "https://walmart.example/"+fl))
	}

	fams := g.Families()
	require.Len(t, fams, 1)

	f := fams[0]
	require.Len(t, f.FlavorSample, 2)
	assert.Equal(t, "Apple", f.FlavorSample[0].Name)
	assert.Equal(t, "Banana", f.FlavorSample[1].Name)
	require.Len(t, f.FlavorExtra, 2)
	assert.Equal(t, "Cherry", f.FlavorExtra[0].Name)
	assert.Equal(t, "Vanilla", f.FlavorExtra[1].Name)
}

func TestGrouper_AssemblyRoundsAndIDs(t *testing.T) {
	t.Parallel()

	g := NewGrouper()
	g.Add(deal("Cherry", "https://walmart.example/cherry"))

	fams := g.Families()
	require.Len(t, fams, 1)
	assert.Equal(t, 30.1, fams[0].PercentOff, "rounded to 1 decimal at assembly")
	assert.NotEmpty(t, fams[0].ID)

	// Same input again yields the same ID.
	g2 := NewGrouper()
	g2.Add(deal("Cherry", "https://walmart.example/cherry"))
	assert.Equal(t, fams[0].ID, g2.Families()[0].ID)
}

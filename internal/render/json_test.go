package render

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/snackbuddy/deal-tracker/pkg/types"
)

func sampleFamilies() []domain.DealFamily {
	old := 4.98
	return []domain.DealFamily{
		{
			ID:          "f2b7c1de-0000-5000-8000-000000000001",
			ProductName: "Quest Protein Chips (8ct)",
			Retailer:    "Walmart",
			Category:    "chips",
			OldPrice:    &old,
			NewPrice:    3.48,
			PercentOff:  30.1,
			VerifiedAt:  "2026-08-24T09:00:00Z",
			Tier:        domain.TierElite,
			BadgeLabel:  "🔥 Elite Deal",
			FlavorData: []domain.FlavorEntry{
				{Name: "Chili Lime", URL: "https://walmart.example/chili-lime"},
				{Name: "Nacho Cheese", URL: "https://walmart.example/nacho"},
			},
			FlavorSample: []domain.FlavorEntry{
				{Name: "Chili Lime", URL: "https://walmart.example/chili-lime"},
				{Name: "Nacho Cheese", URL: "https://walmart.example/nacho"},
			},
		},
		{
			ID:          "f2b7c1de-0000-5000-8000-000000000002",
			ProductName: "Clif Builders Bar",
			Retailer:    "Target",
			Category:    "bars",
			NewPrice:    1.25,
			PercentOff:  0,
			Tier:        domain.TierEveryday,
			BadgeLabel:  "Everyday Price",
		},
	}
}

func TestJSON_ShapeAndNulls(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, JSON(&buf, sampleFamilies()))

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 2)

	first := decoded[0]
	assert.Equal(t, "Quest Protein Chips (8ct)", first["product_name"])
	assert.Equal(t, 4.98, first["old_price"])
	assert.Equal(t, 30.1, first["percent_off"])

	second := decoded[1]
	assert.Nil(t, second["old_price"], "absent baseline stays null, never defaulted")
	assert.Nil(t, second["pack_count"])
	assert.Nil(t, second["streak_days"])
}

func TestJSON_Deterministic(t *testing.T) {
	t.Parallel()

	var a, b bytes.Buffer
	require.NoError(t, JSON(&a, sampleFamilies()))
	require.NoError(t, JSON(&b, sampleFamilies()))
	assert.Equal(t, a.Bytes(), b.Bytes())
}

func TestJSON_EmptyListIsArray(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, JSON(&buf, nil))
	assert.Equal(t, "[]\n", buf.String())
}

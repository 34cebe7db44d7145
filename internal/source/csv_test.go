package source

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRead_HeaderMapping(t *testing.T) {
	t.Parallel()

	data := "retailer,product_name,price\n" +
		"Walmart,Quest Protein Chips,3.48\n" +
		"Target,Builders Bar,1.25\n"

	records, err := Read(strings.NewReader(data))
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "Walmart", records[0]["retailer"])
	assert.Equal(t, "3.48", records[0]["price"])
	assert.Equal(t, "Builders Bar", records[1]["product_name"])
}

func TestRead_RaggedRows(t *testing.T) {
	t.Parallel()

	data := "retailer,product_name,price\n" +
		"Walmart,Quest Protein Chips\n" +
		"Target,Builders Bar,1.25,extra-cell\n"

	records, err := Read(strings.NewReader(data))
	require.NoError(t, err)
	require.Len(t, records, 2)

	_, ok := records[0]["price"]
	assert.False(t, ok, "short row leaves trailing columns absent")
	assert.Equal(t, "1.25", records[1]["price"], "extra cells are ignored")
}

func TestRead_QuotedCells(t *testing.T) {
	t.Parallel()

	data := "product_name,price\n" +
		"\"Trail Mix, Sweet & Salty\",4.99\n"

	records, err := Read(strings.NewReader(data))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Trail Mix, Sweet & Salty", records[0]["product_name"])
}

func TestRead_Empty(t *testing.T) {
	t.Parallel()

	records, err := Read(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, records)

	records, err = Read(strings.NewReader("retailer,price\n"))
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestReadFile_Missing(t *testing.T) {
	t.Parallel()

	_, err := ReadFile("does-not-exist.csv")
	assert.Error(t, err)
}

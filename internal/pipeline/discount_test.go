package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func fptr(f float64) *float64 { return &f }

func TestResolveDiscount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		pctOff   *float64
		price    float64
		baseline *float64
		want     float64
	}{
		{
			name:     "explicit fraction trusted regardless of baseline",
			pctOff:   fptr(0.37),
			price:    10,
			baseline: fptr(100),
			want:     37.0,
		},
		{
			name:   "explicit fraction without baseline",
			pctOff: fptr(0.37),
			price:  10,
			want:   37.0,
		},
		{
			name:     "negative fraction clamps to zero",
			pctOff:   fptr(-0.2),
			price:    10,
			baseline: fptr(20),
			want:     0,
		},
		{
			name:     "derived from baseline",
			price:    15,
			baseline: fptr(20),
			want:     25.0,
		},
		{
			name:     "price rose above baseline",
			price:    15,
			baseline: fptr(10),
			want:     0,
		},
		{
			name:     "price equals baseline",
			price:    20,
			baseline: fptr(20),
			want:     0,
		},
		{
			name:     "zero baseline never divides",
			price:    15,
			baseline: fptr(0),
			want:     0,
		},
		{
			name:  "nothing to go on",
			price: 15,
			want:  0,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := resolveDiscount(tt.pctOff, tt.price, tt.baseline)
			assert.InDelta(t, tt.want, got, 0.0001)
			assert.GreaterOrEqual(t, got, 0.0, "discount must never be negative")
		})
	}
}

package models

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePrice(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Price(0), ParsePrice(""))
	assert.Equal(t, Price(0), ParsePrice("   "))
	assert.Equal(t, Price(4500), ParsePrice("4500"))
	assert.Equal(t, Price(99.5), ParsePrice(" 99.5 "))

	bad := ParsePrice("abc")
	assert.False(t, bad.Valid())
	assert.True(t, math.IsNaN(float64(bad)))
}

func TestParsePriceNumberEdgeCases(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Price(16), ParsePrice("0x10"))
	assert.Equal(t, Price(8), ParsePrice("0o10"))
	assert.Equal(t, Price(2), ParsePrice("0B10"))
	assert.Equal(t, Price(1e3), ParsePrice("1e3"))
	assert.True(t, math.IsInf(float64(ParsePrice("Infinity")), 1))
	assert.True(t, math.IsInf(float64(ParsePrice("-Infinity")), -1))

	for _, s := range []string{"inf", "-inf", "infinity", "NaN", "-0x10", "0x", "0x1p4", "-0x1p4", "--Infinity", "1_000", "0x_10"} {
		assert.False(t, ParsePrice(s).Valid(), s)
	}
}

func TestPriceJSON(t *testing.T) {
	t.Parallel()

	b, err := json.Marshal(struct {
		A Price `json:"a"`
		B Price `json:"b"`
	}{A: 3200, B: ParsePrice("x")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":3200,"b":null}`, string(b))

	var in struct {
		Num  Price `json:"num"`
		Text Price `json:"text"`
		Bad  Price `json:"bad"`
		Null Price `json:"null"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"num":1500,"text":"2500","bad":"abc","null":null}`), &in))
	assert.Equal(t, Price(1500), in.Num)
	assert.Equal(t, Price(2500), in.Text)
	assert.False(t, in.Bad.Valid())
	assert.False(t, in.Null.Valid())
}

func TestCatalogItemJSON(t *testing.T) {
	t.Parallel()

	it := CatalogItem{ID: "d1", Name: "Test", Category: "saree", PriceWithJewelry: 100, Availability: Held()}
	b, err := json.Marshal(it)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(b, &got))
	assert.Equal(t, "held", got["status"])
	assert.Equal(t, false, got["isAvailable"])
	assert.Equal(t, []any{}, got["sizes"])
	assert.Equal(t, []any{}, got["rentalPeriods"])

	rented := it
	rented.Availability = Rented(RentalPeriod{ID: "r1", Dates: mustRange(t, "2025-02-10", "2025-02-14"), CustomerName: "Priya S."})
	b, err = json.Marshal(rented)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"rentalPeriods":[{"id":"r1","startDate":"2025-02-10","endDate":"2025-02-14","customerName":"Priya S."}]`)
}

func TestCatalogItemCloneIsDeep(t *testing.T) {
	t.Parallel()

	it := CatalogItem{Sizes: []string{"S"}, Availability: Rented(RentalPeriod{ID: "r1"})}
	cp := it.Clone()
	cp.Sizes[0] = "XL"
	assert.Equal(t, "S", it.Sizes[0])
}

func mustRange(t *testing.T, start, end string) DateRange {
	t.Helper()
	r, err := NewDateRange(start, end)
	require.NoError(t, err)
	return r
}

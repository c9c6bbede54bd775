package models

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Price is an amount in rupees. Malformed admin input is kept as NaN rather than rejected.
type Price float64

// ParsePrice coerces form text the way the storefront always has:
// blank is zero, numeric text is its value, anything else is NaN.
// Unsigned 0x/0o/0b integers are read in their base and only the exact
// spelling "Infinity" is infinite, as in a browser's Number().
func ParsePrice(s string) Price {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	if len(s) > 2 && s[0] == '0' {
		if base, ok := radix[s[1]]; ok {
			n, err := strconv.ParseUint(s[2:], base, 64)
			if err != nil {
				return Price(math.NaN())
			}
			return Price(n)
		}
	}
	switch s {
	case "Infinity", "+Infinity":
		return Price(math.Inf(1))
	case "-Infinity":
		return Price(math.Inf(-1))
	}
	// strconv also takes inf, nan and hex floats; a browser takes none of them
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || strings.ContainsAny(s, "xXiInN") {
		return Price(math.NaN())
	}
	return Price(f)
}

var radix = map[byte]int{'x': 16, 'X': 16, 'o': 8, 'O': 8, 'b': 2, 'B': 2}

func (p Price) Valid() bool { return !math.IsNaN(float64(p)) }

// NaN has no JSON representation, so it goes out as null.
func (p Price) MarshalJSON() ([]byte, error) {
	if !p.Valid() || math.IsInf(float64(p), 0) {
		return []byte("null"), nil
	}
	return json.Marshal(float64(p))
}

// UnmarshalJSON accepts a number, numeric text or null.
func (p *Price) UnmarshalJSON(b []byte) error {
	raw := strings.TrimSpace(string(b))
	switch {
	case raw == "null":
		*p = Price(math.NaN())
		return nil
	case strings.HasPrefix(raw, `"`):
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*p = ParsePrice(s)
		return nil
	}
	var f float64
	if err := json.Unmarshal(b, &f); err != nil {
		return err
	}
	*p = Price(f)
	return nil
}

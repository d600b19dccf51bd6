package workshopapi

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// The backend is loosely typed: numeric fields may arrive as numbers or as
// strings ("55.00"). These types coerce defensively at the API boundary and
// fall back to zero on unparsable values instead of failing the decode, so
// the rest of the system never sees a NaN or a type error.

type flexInt int64

func (v *flexInt) UnmarshalJSON(b []byte) error {
	s := unquote(b)
	if s == "" {
		*v = 0
		return nil
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		*v = flexInt(n)
		return nil
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		*v = flexInt(int64(f))
		return nil
	}
	*v = 0
	return nil
}

type flexDecimal struct {
	decimal.Decimal
}

func (v *flexDecimal) UnmarshalJSON(b []byte) error {
	s := unquote(b)
	if s == "" {
		v.Decimal = decimal.Zero
		return nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		v.Decimal = decimal.Zero
		return nil
	}
	v.Decimal = d
	return nil
}

type flexString string

func (v *flexString) UnmarshalJSON(b []byte) error {
	*v = flexString(unquote(b))
	return nil
}

// unquote normalizes a raw JSON scalar token: quotes stripped, null and
// whitespace collapsed to the empty string.
func unquote(b []byte) string {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		return ""
	}
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	return strings.TrimSpace(s)
}

package backend

import (
	"bytes"
	"encoding/json"
	"strconv"

	"github.com/shopspring/decimal"
)

// The flex types absorb the upstream's habit of switching between JSON
// numbers and numeric strings (and occasionally null). Values that cannot
// be interpreted decode to the zero value instead of erroring, per the
// "malformed-but-typed input" policy.

// flexString accepts a string, a number, or null.
type flexString string

func (s *flexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*s = ""
		return nil
	}
	if data[0] == '"' {
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			*s = ""
			return nil
		}
		*s = flexString(v)
		return nil
	}
	// Numbers (ids arrive both quoted and bare) keep their literal text.
	*s = flexString(data)
	return nil
}

// flexFloat accepts a number or a numeric string.
type flexFloat float64

func (f *flexFloat) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(bytes.Trim(bytes.TrimSpace(data), `"`))
	if len(data) == 0 || string(data) == "null" {
		*f = 0
		return nil
	}
	v, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		*f = 0
		return nil
	}
	*f = flexFloat(v)
	return nil
}

// flexInt64 accepts an integer, a float, or a numeric string. Used for
// unix-second timestamps.
type flexInt64 int64

func (i *flexInt64) UnmarshalJSON(data []byte) error {
	var f flexFloat
	if err := f.UnmarshalJSON(data); err != nil {
		*i = 0
		return nil
	}
	*i = flexInt64(f)
	return nil
}

// flexDecimal accepts a number or numeric string, decoding garbage to zero.
type flexDecimal struct {
	decimal.Decimal
}

func (d *flexDecimal) UnmarshalJSON(data []byte) error {
	if err := d.Decimal.UnmarshalJSON(data); err != nil {
		d.Decimal = decimal.Zero
	}
	return nil
}

package dto

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Catalog feeds are inconsistent about scalar types: availability arrives as
// a boolean or as a textual stock status, ratings and review counts as
// numbers or numeric strings. The Flex types absorb that at decode time so
// the service layer only ever sees clean values.

// FlexBool decodes a JSON boolean as-is and coerces a textual stock status:
// "In Stock" means true, any other string means false.
type FlexBool bool

func (b *FlexBool) UnmarshalJSON(data []byte) error {
	var v interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}

	switch val := v.(type) {
	case bool:
		*b = FlexBool(val)
	case string:
		*b = FlexBool(strings.EqualFold(strings.TrimSpace(val), "In Stock"))
	default:
		*b = false
	}

	return nil
}

// FlexFloat decodes a JSON number or a numeric string; anything invalid
// becomes 0.
type FlexFloat float64

func (f *FlexFloat) UnmarshalJSON(data []byte) error {
	var v interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}

	switch val := v.(type) {
	case float64:
		*f = FlexFloat(val)
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil {
			parsed = 0
		}
		*f = FlexFloat(parsed)
	default:
		*f = 0
	}

	return nil
}

// FlexInt decodes a JSON number or a numeric string; anything invalid
// becomes 0. Fractional values are truncated.
type FlexInt int64

func (i *FlexInt) UnmarshalJSON(data []byte) error {
	var v interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}

	switch val := v.(type) {
	case float64:
		*i = FlexInt(val)
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil {
			parsed = 0
		}
		*i = FlexInt(parsed)
	default:
		*i = 0
	}

	return nil
}

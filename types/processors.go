package types

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// Conversion helpers shared by the built-in types and the dialect
// packages. All of them pass nil through untouched.

// ToFloat converts numeric bind values to float64.
func ToFloat(v any) (any, error) {
	switch v := v.(type) {
	case nil:
		return nil, nil
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case decimal.Decimal:
		f, _ := v.Float64()
		return f, nil
	case string:
		return strconv.ParseFloat(v, 64)
	case []byte:
		return strconv.ParseFloat(string(v), 64)
	}
	return nil, fmt.Errorf("types: want a number; got %v (%T)", v, v)
}

// ToString converts bind values to their string form.
func ToString(v any) (any, error) {
	switch v := v.(type) {
	case nil:
		return nil, nil
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	case fmt.Stringer:
		return v.String(), nil
	}
	return fmt.Sprintf("%v", v), nil
}

// ToBytes converts bind values to raw bytes.
func ToBytes(v any) (any, error) {
	switch v := v.(type) {
	case nil:
		return nil, nil
	case []byte:
		return v, nil
	case string:
		return []byte(v), nil
	}
	return nil, fmt.Errorf("types: want bytes; got %v (%T)", v, v)
}

// ToDecimal converts result values to decimal.Decimal.
func ToDecimal(v any) (any, error) {
	switch v := v.(type) {
	case nil:
		return nil, nil
	case decimal.Decimal:
		return v, nil
	case float64:
		return decimal.NewFromFloat(v), nil
	case float32:
		return decimal.NewFromFloat32(v), nil
	case int64:
		return decimal.NewFromInt(v), nil
	case int:
		return decimal.NewFromInt(int64(v)), nil
	case string:
		return decimal.NewFromString(v)
	case []byte:
		return decimal.NewFromString(string(v))
	}
	return nil, fmt.Errorf("types: want a number; got %v (%T)", v, v)
}

// ToDecimalScale is ToDecimal rounded to a fixed scale.
func ToDecimalScale(scale int) ResultFunc {
	return func(v any) (any, error) {
		d, err := ToDecimal(v)
		if d == nil || err != nil {
			return nil, err
		}
		return d.(decimal.Decimal).Round(int32(scale)), nil
	}
}

// IntToBoolean converts integer result values from backends without a
// native boolean type.
func IntToBoolean(v any) (any, error) {
	switch v := v.(type) {
	case nil:
		return nil, nil
	case bool:
		return v, nil
	case int64:
		return v != 0, nil
	case int:
		return v != 0, nil
	}
	return nil, fmt.Errorf("types: want an integer boolean; got %v (%T)", v, v)
}

// BooleanToInt converts bool bind values for backends without a native
// boolean type.
func BooleanToInt(v any) (any, error) {
	switch v := v.(type) {
	case nil:
		return nil, nil
	case bool:
		if v {
			return int64(1), nil
		}
		return int64(0), nil
	}
	return nil, fmt.Errorf("types: want a boolean; got %v (%T)", v, v)
}

// FormatTime returns a bind processor rendering time.Time values in
// the given layout, for backends that store temporal values as text.
func FormatTime(layout string) BindFunc {
	return func(v any) (any, error) {
		switch v := v.(type) {
		case nil:
			return nil, nil
		case time.Time:
			return v.Format(layout), nil
		}
		return nil, fmt.Errorf("types: want a time; got %v (%T)", v, v)
	}
}

// ParseTime returns a result processor parsing text temporal values in
// the given layout.
func ParseTime(layout string) ResultFunc {
	return func(v any) (any, error) {
		switch v := v.(type) {
		case nil:
			return nil, nil
		case time.Time:
			return v, nil
		case string:
			return time.Parse(layout, v)
		case []byte:
			return time.Parse(layout, string(v))
		}
		return nil, fmt.Errorf("types: want a temporal string; got %v (%T)", v, v)
	}
}

// DecodeText returns a result processor converting raw bytes to a
// string. mode selects how invalid UTF-8 is handled: "strict" (or
// empty) fails, "replace" substitutes the replacement rune, and
// "ignore" drops the offending bytes.
func DecodeText(mode string) ResultFunc {
	return func(v any) (any, error) {
		var s string
		switch v := v.(type) {
		case nil:
			return nil, nil
		case string:
			s = v
		case []byte:
			s = string(v)
		default:
			return nil, fmt.Errorf("types: want text; got %v (%T)", v, v)
		}

		if utf8.ValidString(s) {
			return s, nil
		}
		switch mode {
		case "replace":
			return strings.ToValidUTF8(s, string(utf8.RuneError)), nil
		case "ignore":
			return strings.ToValidUTF8(s, ""), nil
		}
		return nil, fmt.Errorf("types: invalid utf8 text: %q", s)
	}
}

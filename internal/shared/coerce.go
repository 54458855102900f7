package shared

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// Payload coercion helpers. Request bodies arrive from web clients that send
// numbers interchangeably as JSON numbers and as strings, so numeric fields
// are decoded into `any` and coerced here before use.

// ToFloat64 coerces a decoded JSON value to float64.
func ToFloat64(value any) (float64, error) {
	switch v := value.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int32:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case json.Number:
		return v.Float64()
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, fmt.Errorf("cannot convert %q to float64", v)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("cannot convert %T to float64", value)
	}
}

// ToInt64 coerces a decoded JSON value to int64. Fractional values are
// truncated, matching how the stored document types are declared.
func ToInt64(value any) (int64, error) {
	switch v := value.(type) {
	case int64:
		return v, nil
	case int:
		return int64(v), nil
	case int32:
		return int64(v), nil
	case float64:
		return int64(v), nil
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return i, nil
		}
		f, err := v.Float64()
		if err != nil {
			return 0, fmt.Errorf("cannot convert %q to int64", v.String())
		}
		return int64(f), nil
	case string:
		if i, err := strconv.ParseInt(v, 10, 64); err == nil {
			return i, nil
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, fmt.Errorf("cannot convert %q to int64", v)
		}
		return int64(f), nil
	default:
		return 0, fmt.Errorf("cannot convert %T to int64", value)
	}
}

// ToInt coerces a decoded JSON value to int.
func ToInt(value any) (int, error) {
	i, err := ToInt64(value)
	if err != nil {
		return 0, err
	}
	return int(i), nil
}

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
	"01/02/2006",
}

// ToTime coerces a decoded JSON value to time.Time. Strings are tried against
// the common client date layouts; numbers are treated as epoch milliseconds.
func ToTime(value any) (time.Time, error) {
	switch v := value.(type) {
	case time.Time:
		return v, nil
	case string:
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, v); err == nil {
				return t, nil
			}
		}
		return time.Time{}, fmt.Errorf("cannot parse %q as a date", v)
	case float64:
		return time.UnixMilli(int64(v)), nil
	case int64:
		return time.UnixMilli(v), nil
	case json.Number:
		ms, err := v.Int64()
		if err != nil {
			return time.Time{}, fmt.Errorf("cannot convert %q to a date", v.String())
		}
		return time.UnixMilli(ms), nil
	default:
		return time.Time{}, fmt.Errorf("cannot convert %T to time.Time", value)
	}
}

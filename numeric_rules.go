package recordkit

import (
	"context"
	"fmt"
	"math"
	"strconv"
)

// Numericality validates that the attribute holds a numeric value or a
// string that parses as one.
func Numericality(attribute string) Rule {
	return Rule{
		Attribute: attribute,
		Check: func(_ context.Context, r Record) bool {
			_, ok := toFloat(r[attribute])
			return ok
		},
		Error: FieldError{
			Field:          attribute,
			Message:        "is not a number",
			TranslationKey: "validation.not_a_number",
			TranslationValues: map[string]any{
				"field": attribute,
			},
		},
	}
}

// OnlyInteger validates that the attribute holds an integer value or a
// string that parses as one.
func OnlyInteger(attribute string) Rule {
	return Rule{
		Attribute: attribute,
		Check: func(_ context.Context, r Record) bool {
			f, ok := toFloat(r[attribute])
			return ok && f == math.Trunc(f)
		},
		Error: FieldError{
			Field:          attribute,
			Message:        "must be an integer",
			TranslationKey: "validation.not_an_integer",
			TranslationValues: map[string]any{
				"field": attribute,
			},
		},
	}
}

// GreaterThanOrEqual validates that the attribute's numeric value is at
// least min. Non-numeric values fail.
func GreaterThanOrEqual(attribute string, min float64) Rule {
	return Rule{
		Attribute: attribute,
		Check: func(_ context.Context, r Record) bool {
			f, ok := toFloat(r[attribute])
			return ok && f >= min
		},
		Error: FieldError{
			Field:          attribute,
			Message:        fmt.Sprintf("must be greater than or equal to %v", min),
			TranslationKey: "validation.greater_than_or_equal",
			TranslationValues: map[string]any{
				"field": attribute,
				"min":   min,
			},
		},
	}
}

// LessThanOrEqual validates that the attribute's numeric value is at most
// max. Non-numeric values fail.
func LessThanOrEqual(attribute string, max float64) Rule {
	return Rule{
		Attribute: attribute,
		Check: func(_ context.Context, r Record) bool {
			f, ok := toFloat(r[attribute])
			return ok && f <= max
		},
		Error: FieldError{
			Field:          attribute,
			Message:        fmt.Sprintf("must be less than or equal to %v", max),
			TranslationKey: "validation.less_than_or_equal",
			TranslationValues: map[string]any{
				"field": attribute,
				"max":   max,
			},
		},
	}
}

// toFloat coerces record values to float64 for numeric comparisons. Record
// values are untyped, so coercion happens per check instead of relying on
// generics.
func toFloat(v any) (float64, bool) {
	switch val := v.(type) {
	case int:
		return float64(val), true
	case int8:
		return float64(val), true
	case int16:
		return float64(val), true
	case int32:
		return float64(val), true
	case int64:
		return float64(val), true
	case uint:
		return float64(val), true
	case uint8:
		return float64(val), true
	case uint16:
		return float64(val), true
	case uint32:
		return float64(val), true
	case uint64:
		return float64(val), true
	case float32:
		return float64(val), true
	case float64:
		return val, true
	case string:
		f, err := strconv.ParseFloat(val, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	}
	return 0, false
}

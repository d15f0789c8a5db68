package recordkit

import (
	"context"
	"fmt"
)

// LengthMin validates that the attribute's length is at least min.
// A value with length exactly min passes.
func LengthMin(attribute string, min int) Rule {
	return Rule{
		Attribute: attribute,
		Check: func(_ context.Context, r Record) bool {
			n, ok := valueLen(r[attribute])
			return ok && n >= min
		},
		Error: FieldError{
			Field:          attribute,
			Message:        fmt.Sprintf("is too short (minimum is %d characters)", min),
			TranslationKey: "validation.too_short",
			TranslationValues: map[string]any{
				"field": attribute,
				"min":   min,
			},
		},
	}
}

// LengthMax validates that the attribute's length is at most max.
func LengthMax(attribute string, max int) Rule {
	return Rule{
		Attribute: attribute,
		Check: func(_ context.Context, r Record) bool {
			n, ok := valueLen(r[attribute])
			return ok && n <= max
		},
		Error: FieldError{
			Field:          attribute,
			Message:        fmt.Sprintf("is too long (maximum is %d characters)", max),
			TranslationKey: "validation.too_long",
			TranslationValues: map[string]any{
				"field": attribute,
				"max":   max,
			},
		},
	}
}

// LengthExact validates that the attribute's length is exactly the given
// count.
func LengthExact(attribute string, exact int) Rule {
	return Rule{
		Attribute: attribute,
		Check: func(_ context.Context, r Record) bool {
			n, ok := valueLen(r[attribute])
			return ok && n == exact
		},
		Error: FieldError{
			Field:          attribute,
			Message:        fmt.Sprintf("is the wrong length (should be %d characters)", exact),
			TranslationKey: "validation.wrong_length",
			TranslationValues: map[string]any{
				"field":  attribute,
				"length": exact,
			},
		},
	}
}

// LengthRange validates that the attribute's length falls within the
// inclusive [min, max] range; both boundaries pass.
func LengthRange(attribute string, min, max int) Rule {
	return Rule{
		Attribute: attribute,
		Check: func(_ context.Context, r Record) bool {
			n, ok := valueLen(r[attribute])
			return ok && n >= min && n <= max
		},
		Error: FieldError{
			Field:          attribute,
			Message:        fmt.Sprintf("length must be between %d and %d characters", min, max),
			TranslationKey: "validation.length_between",
			TranslationValues: map[string]any{
				"field": attribute,
				"min":   min,
				"max":   max,
			},
		},
	}
}

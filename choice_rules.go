package recordkit

import (
	"context"
	"fmt"
	"strings"
)

// Inclusion validates that the attribute's value is one of the allowed
// values. Values are compared with ==, so allowed values must be scalars.
func Inclusion(attribute string, allowed ...any) Rule {
	return Rule{
		Attribute: attribute,
		Check: func(_ context.Context, r Record) bool {
			value := r[attribute]
			for _, a := range allowed {
				if value == a {
					return true
				}
			}
			return false
		},
		Error: FieldError{
			Field:          attribute,
			Message:        "is not included in the list",
			TranslationKey: "validation.inclusion",
			TranslationValues: map[string]any{
				"field":          attribute,
				"allowed_values": formatChoices(allowed),
			},
		},
	}
}

// Exclusion validates that the attribute's value is none of the reserved
// values.
func Exclusion(attribute string, reserved ...any) Rule {
	return Rule{
		Attribute: attribute,
		Check: func(_ context.Context, r Record) bool {
			value := r[attribute]
			for _, res := range reserved {
				if value == res {
					return false
				}
			}
			return true
		},
		Error: FieldError{
			Field:          attribute,
			Message:        "is reserved",
			TranslationKey: "validation.exclusion",
			TranslationValues: map[string]any{
				"field":           attribute,
				"reserved_values": formatChoices(reserved),
			},
		},
	}
}

func formatChoices(values []any) string {
	parts := make([]string, 0, len(values))
	for _, v := range values {
		parts = append(parts, fmt.Sprint(v))
	}
	return strings.Join(parts, ", ")
}

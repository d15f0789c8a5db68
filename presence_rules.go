package recordkit

import "context"

// Presence validates that the attribute carries a non-blank value. Nil,
// missing, whitespace-only string and empty collection values all fail.
func Presence(attribute string) Rule {
	return Rule{
		Attribute: attribute,
		Check: func(_ context.Context, r Record) bool {
			return !isBlank(r[attribute])
		},
		Error: FieldError{
			Field:          attribute,
			Message:        "can't be blank",
			TranslationKey: "validation.blank",
			TranslationValues: map[string]any{
				"field": attribute,
			},
		},
	}
}

// Absence validates that the attribute is blank, the mirror of Presence.
func Absence(attribute string) Rule {
	return Rule{
		Attribute: attribute,
		Check: func(_ context.Context, r Record) bool {
			return isBlank(r[attribute])
		},
		Error: FieldError{
			Field:          attribute,
			Message:        "must be blank",
			TranslationKey: "validation.present",
			TranslationValues: map[string]any{
				"field": attribute,
			},
		},
	}
}

package recordkit

import "context"

// Custom validates the record with a caller-supplied predicate. The message
// is caller-defined; the predicate receives the whole record so checks may
// span attributes.
func Custom(attribute, message string, check func(r Record) bool) Rule {
	return Rule{
		Attribute: attribute,
		Check: func(_ context.Context, r Record) bool {
			return check(r)
		},
		Error: FieldError{
			Field:          attribute,
			Message:        message,
			TranslationKey: "validation.custom",
			TranslationValues: map[string]any{
				"field": attribute,
			},
		},
	}
}

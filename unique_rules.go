package recordkit

import "context"

// Unique validates that no conflicting value already exists elsewhere,
// as reported by the lookup collaborator. Blank values pass; presence is a
// separate concern. True uniqueness requires querying stored data, which is
// the collaborator's job, not the engine's.
func Unique(attribute string, lookup LookupFunc) Rule {
	return Rule{
		Attribute: attribute,
		Check: func(ctx context.Context, r Record) bool {
			value := r[attribute]
			if isBlank(value) {
				return true
			}
			return !lookup(ctx, attribute, value)
		},
		Error: FieldError{
			Field:          attribute,
			Message:        "has already been taken",
			TranslationKey: "validation.taken",
			TranslationValues: map[string]any{
				"field": attribute,
			},
		},
	}
}

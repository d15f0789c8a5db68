package recordkit

import (
	"context"
	"regexp"
)

// Format validates that the attribute's string value matches the pattern.
// The pattern is compiled once at configuration time; an invalid pattern
// panics, consistent with regexp.MustCompile. Non-string and blank values
// fail.
func Format(attribute, pattern string) Rule {
	regex := regexp.MustCompile(pattern)
	return Rule{
		Attribute: attribute,
		Check: func(_ context.Context, r Record) bool {
			str, ok := r[attribute].(string)
			if !ok || isBlank(str) {
				return false
			}
			return regex.MatchString(str)
		},
		Error: FieldError{
			Field:          attribute,
			Message:        "is invalid",
			TranslationKey: "validation.invalid_format",
			TranslationValues: map[string]any{
				"field":   attribute,
				"pattern": pattern,
			},
		},
	}
}

// FormatWithout validates that the attribute's string value does not match
// the pattern. Blank and non-string values pass, mirroring Format.
func FormatWithout(attribute, pattern string) Rule {
	regex := regexp.MustCompile(pattern)
	return Rule{
		Attribute: attribute,
		Check: func(_ context.Context, r Record) bool {
			str, ok := r[attribute].(string)
			if !ok || isBlank(str) {
				return true
			}
			return !regex.MatchString(str)
		},
		Error: FieldError{
			Field:          attribute,
			Message:        "is invalid",
			TranslationKey: "validation.invalid_format_without",
			TranslationValues: map[string]any{
				"field":   attribute,
				"pattern": pattern,
			},
		},
	}
}

package recordkit

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/dmitrymomot/recordkit/pkg/i18n"
)

var titleCaser = cases.Title(language.English)

// humanize turns an attribute name into its human-readable form:
// underscores and hyphens become spaces and the first word is capitalized,
// so "first_name" renders as "First name".
func humanize(field string) string {
	field = strings.ReplaceAll(field, "_", " ")
	field = strings.ReplaceAll(field, "-", " ")

	words := strings.Fields(field)
	if len(words) == 0 {
		return ""
	}
	words[0] = titleCaser.String(words[0])
	return strings.Join(words, " ")
}

// FullMessages renders every failure as "<Attribute> <message>" in insertion
// order, matching rule registration order.
func (e Errors) FullMessages() []string {
	messages := make([]string, 0, len(e))
	for _, fe := range e {
		messages = append(messages, fmt.Sprintf("%s %s", humanize(fe.Field), fe.Message))
	}
	return messages
}

// FullMessagesLocalized renders every failure through the translator using
// each error's translation key and values, falling back to the default
// "<Attribute> <message>" form when no translation exists for the key.
func (e Errors) FullMessagesLocalized(t *i18n.Translator, lang string) []string {
	messages := make([]string, 0, len(e))
	for _, fe := range e {
		fallback := fmt.Sprintf("%s %s", humanize(fe.Field), fe.Message)

		args := make([]string, 0, 2*(len(fe.TranslationValues)+1))
		args = append(args, "field", humanize(fe.Field))
		for k, v := range fe.TranslationValues {
			if k == "field" {
				continue
			}
			args = append(args, k, fmt.Sprint(v))
		}

		messages = append(messages, t.Td(lang, fe.TranslationKey, fallback, args...))
	}
	return messages
}

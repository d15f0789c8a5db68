package i18n

import (
	"io"
	"log/slog"
	"regexp"
	"sort"
	"strings"
)

// DefaultLanguage is used when no language is configured explicitly.
const DefaultLanguage = "en"

// Translator resolves translation keys against an immutable catalog.
// It is safe for concurrent use; the catalog is never modified after
// construction.
type Translator struct {
	catalog       Catalog
	defaultLang   string
	fallbackToKey bool
	missingLog    bool
	logger        *slog.Logger
}

// NewTranslator builds a Translator over the given catalog. The catalog is
// validated up front so malformed data fails at startup rather than at
// render time.
func NewTranslator(catalog Catalog, options ...Option) (*Translator, error) {
	for lang, tree := range catalog {
		if lang == "" {
			return nil, ErrEmptyLanguageCode
		}
		if tree == nil {
			return nil, ErrNilTranslationsMap
		}
	}

	t := &Translator{
		catalog:       catalog,
		defaultLang:   DefaultLanguage,
		fallbackToKey: true,
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, option := range options {
		option(t)
	}
	return t, nil
}

// SupportedLanguages returns the catalog's language codes, sorted.
func (t *Translator) SupportedLanguages() []string {
	langs := make([]string, 0, len(t.catalog))
	for lang := range t.catalog {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

// HasTranslation checks whether a key resolves for the given language.
func (t *Translator) HasTranslation(lang, key string) bool {
	tree, ok := t.catalog[lang]
	if !ok {
		return false
	}
	_, ok = lookup(tree, key)
	return ok
}

// T translates a key for the given language. Additional arguments are
// key-value pairs substituted into %{name} placeholders:
//
//	t.T("en", "validation.too_short", "field", "Name", "min", "2")
//
// When the key does not resolve the key itself is returned, unless
// fallback-to-key was disabled, in which case the result is empty.
func (t *Translator) T(lang, key string, args ...string) string {
	tmpl, ok := t.resolve(lang, key)
	if !ok {
		if t.fallbackToKey {
			return substitute(key, buildParams(args))
		}
		return ""
	}
	return substitute(tmpl, buildParams(args))
}

// Td translates a key with an explicit default used when the key does not
// resolve, instead of falling back to the key itself.
func (t *Translator) Td(lang, key, defaultValue string, args ...string) string {
	tmpl, ok := t.resolve(lang, key)
	if !ok {
		return substitute(defaultValue, buildParams(args))
	}
	return substitute(tmpl, buildParams(args))
}

// resolve finds the template for lang/key, trying the default language when
// the requested one has no catalog entry.
func (t *Translator) resolve(lang, key string) (string, bool) {
	for _, l := range []string{lang, t.defaultLang} {
		tree, ok := t.catalog[l]
		if !ok {
			continue
		}
		val, ok := lookup(tree, key)
		if !ok {
			continue
		}
		if s, ok := val.(string); ok {
			return s, true
		}
		if t.missingLog {
			t.logger.Warn("translation is not a string", "lang", l, "key", key)
		}
		return "", false
	}

	if t.missingLog {
		t.logger.Warn("translation not found", "lang", lang, "key", key)
	}
	return "", false
}

// lookup traverses a nested tree using dot-separated keys, so
// "validation.too_short" walks tree["validation"]["too_short"].
func lookup(tree map[string]any, key string) (any, bool) {
	parts := strings.Split(key, ".")
	current := tree

	for i, part := range parts {
		if i == len(parts)-1 {
			val, ok := current[part]
			return val, ok
		}

		next, ok := current[part]
		if !ok {
			return nil, false
		}

		switch m := next.(type) {
		case map[string]any:
			current = m
		case map[any]any:
			converted := make(map[string]any, len(m))
			for k, v := range m {
				if ks, ok := k.(string); ok {
					converted[ks] = v
				}
			}
			current = converted
		default:
			return nil, false
		}
	}
	return nil, false
}

var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// substitute replaces %{name} placeholders using the provided map; unknown
// placeholders are left intact.
func substitute(tmpl string, params map[string]string) string {
	return paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		name := match[2 : len(match)-1]
		if val, ok := params[name]; ok {
			return val
		}
		return match
	})
}

// buildParams converts (key, value, key, value, …) args into a map; an odd
// trailing argument is ignored.
func buildParams(args []string) map[string]string {
	params := make(map[string]string, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		params[args[i]] = args[i+1]
	}
	return params
}

package i18n

import "log/slog"

// Option configures Translator creation.
type Option func(*Translator)

// WithDefaultLanguage sets the language tried when the requested one has no
// catalog entry.
func WithDefaultLanguage(lang string) Option {
	return func(t *Translator) {
		if lang != "" {
			t.defaultLang = lang
		}
	}
}

// WithoutFallbackToKey makes unresolved keys render as empty strings
// instead of the key itself.
func WithoutFallbackToKey() Option {
	return func(t *Translator) {
		t.fallbackToKey = false
	}
}

// WithLogger sets the logger used for missing-translation reporting.
// Nil loggers are ignored.
func WithLogger(l *slog.Logger) Option {
	return func(t *Translator) {
		if l != nil {
			t.logger = l
		}
	}
}

// WithMissingLog enables logging of lookup misses, useful while building
// out a catalog.
func WithMissingLog() Option {
	return func(t *Translator) {
		t.missingLog = true
	}
}

// Package i18n provides a small translator for rendering validation messages
// in multiple languages.
//
// A Translator holds a catalog mapping language codes to nested translation
// keys. Catalogs are loaded from YAML or JSON content with ParseYAML and
// ParseJSON, keys are looked up with dot notation ("validation.too_short"),
// and templates substitute named parameters written as %{name}.
//
// # Usage
//
//	catalog, err := i18n.ParseYAML(content)
//	if err != nil { ... }
//
//	t, err := i18n.NewTranslator(catalog, i18n.WithDefaultLanguage("en"))
//	if err != nil { ... }
//
//	msg := t.T("en", "validation.too_short", "field", "Name", "min", "2")
//
// Missing keys fall back to the key itself by default, or to an explicit
// default with Td. Lookup misses can be logged through a slog.Logger when
// WithMissingLog is set.
package i18n

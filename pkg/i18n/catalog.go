package i18n

import (
	"encoding/json"
	"errors"

	"gopkg.in/yaml.v3"
)

// Catalog maps language codes to nested translation trees. Leaf values are
// message templates; inner nodes are further maps addressed by dot notation.
type Catalog map[string]map[string]any

// ParseYAML parses YAML content shaped as language → nested keys, e.g.
//
//	en:
//	  validation:
//	    blank: "can't be blank"
//	uk:
//	  validation:
//	    blank: "не може бути порожнім"
func ParseYAML(content []byte) (Catalog, error) {
	var data map[string]any
	if err := yaml.Unmarshal(content, &data); err != nil {
		return nil, errors.Join(ErrFailedToParseYAML, err)
	}
	return toCatalog(data), nil
}

// ParseJSON parses JSON content with the same language → nested keys shape
// as ParseYAML.
func ParseJSON(content []byte) (Catalog, error) {
	var data map[string]any
	if err := json.Unmarshal(content, &data); err != nil {
		return nil, errors.Join(ErrFailedToParseJSON, err)
	}
	return toCatalog(data), nil
}

func toCatalog(data map[string]any) Catalog {
	catalog := make(Catalog, len(data))
	for lang, val := range data {
		if tree, ok := val.(map[string]any); ok {
			catalog[lang] = tree
			continue
		}
		// Scalar at the top level: keep it addressable under its own name.
		catalog[lang] = map[string]any{lang: val}
	}
	return catalog
}

// Merge overlays other on top of the catalog, replacing whole language
// trees. Useful for layering application messages over library defaults.
func (c Catalog) Merge(other Catalog) Catalog {
	merged := make(Catalog, len(c)+len(other))
	for lang, tree := range c {
		merged[lang] = tree
	}
	for lang, tree := range other {
		merged[lang] = tree
	}
	return merged
}

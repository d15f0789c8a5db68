package i18n

import "errors"

var (
	ErrFailedToParseYAML  = errors.New("failed to parse YAML translation content")
	ErrFailedToParseJSON  = errors.New("failed to parse JSON translation content")
	ErrEmptyLanguageCode  = errors.New("empty language code in translation catalog")
	ErrNilTranslationsMap = errors.New("nil translations map in translation catalog")
)

// Package i18n models the fixed set of display languages the site supports.
package i18n

// Language identifies one of the four supported display languages.
type Language string

const (
	English Language = "en"
	French  Language = "fr"
	Arabic  Language = "ar"
	Spanish Language = "es"
)

// Languages lists every supported language in display order.
var Languages = []Language{English, French, Arabic, Spanish}

// Parse maps a wire code to a Language, defaulting to English.
func Parse(code string) Language {
	switch Language(code) {
	case English, French, Arabic, Spanish:
		return Language(code)
	default:
		return English
	}
}

// LocalizedString holds one value per supported language. Using a struct
// instead of a map makes a missing language a compile-time impossibility.
type LocalizedString struct {
	EN string `json:"en" dynamodbav:"en"`
	FR string `json:"fr" dynamodbav:"fr"`
	AR string `json:"ar" dynamodbav:"ar"`
	ES string `json:"es" dynamodbav:"es"`
}

// Get returns the value for the given language.
func (s LocalizedString) Get(lang Language) string {
	switch lang {
	case French:
		return s.FR
	case Arabic:
		return s.AR
	case Spanish:
		return s.ES
	default:
		return s.EN
	}
}

// Complete reports whether every language has a non-empty value.
func (s LocalizedString) Complete() bool {
	return s.EN != "" && s.FR != "" && s.AR != "" && s.ES != ""
}

// Uniform builds a LocalizedString carrying the same text under every
// language. Used as placeholder content pending translation.
func Uniform(text string) LocalizedString {
	return LocalizedString{EN: text, FR: text, AR: text, ES: text}
}

// LocalizedList holds one string list per supported language.
type LocalizedList struct {
	EN []string `json:"en" dynamodbav:"en"`
	FR []string `json:"fr" dynamodbav:"fr"`
	AR []string `json:"ar" dynamodbav:"ar"`
	ES []string `json:"es" dynamodbav:"es"`
}

// Get returns the list for the given language.
func (l LocalizedList) Get(lang Language) []string {
	switch lang {
	case French:
		return l.FR
	case Arabic:
		return l.AR
	case Spanish:
		return l.ES
	default:
		return l.EN
	}
}

// Complete reports whether every language has at least one entry.
func (l LocalizedList) Complete() bool {
	return len(l.EN) > 0 && len(l.FR) > 0 && len(l.AR) > 0 && len(l.ES) > 0
}

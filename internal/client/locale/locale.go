// Package locale resolves the active display locale. The dashboard is a
// closed two-locale system: anything that is not English renders German.
package locale

import "strings"

type Locale string

const (
	German  Locale = "de"
	English Locale = "en"
)

// Resolve picks the active locale, highest priority first: the persisted user
// override when it is exactly "de" or "en" (case-insensitive), then the loaded
// config's locale, then the server status locale, then German. The function is
// pure; callers re-evaluate it whenever state changes.
func Resolve(override, configLocale, statusLocale string) Locale {
	explicit := strings.ToLower(strings.TrimSpace(override))
	if explicit == string(German) || explicit == string(English) {
		return Locale(explicit)
	}

	candidate := strings.TrimSpace(configLocale)
	if candidate == "" {
		candidate = strings.TrimSpace(statusLocale)
	}
	if strings.ToLower(candidate) == string(English) {
		return English
	}
	return German
}

// Coerce maps arbitrary input to a member of the closed locale set, matching
// the language switcher: "en" stays English, everything else becomes German.
func Coerce(value string) Locale {
	if strings.ToLower(strings.TrimSpace(value)) == string(English) {
		return English
	}
	return German
}

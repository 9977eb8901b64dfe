package i18n

import (
	"fmt"
	"strings"
)

// Language is one of the two UI languages. It is a switch, not a locale.
type Language string

const (
	Thai    Language = "th"
	English Language = "en"

	Default = Thai
)

// Toggle returns the other language.
func (l Language) Toggle() Language {
	if l == Thai {
		return English
	}
	return Thai
}

func (l Language) Valid() bool {
	return l == Thai || l == English
}

// Parse accepts "th" or "en" in any case.
func Parse(s string) (Language, error) {
	l := Language(strings.ToLower(strings.TrimSpace(s)))
	if !l.Valid() {
		return "", fmt.Errorf("unsupported language %q (want %q or %q)", s, Thai, English)
	}
	return l, nil
}

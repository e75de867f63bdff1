package task

import "strings"

type Theme string

const (
	ThemeLight Theme = "Light"
	ThemeDark  Theme = "Dark"
	ThemeBlue  Theme = "Blue"
)

var Themes = []Theme{ThemeLight, ThemeDark, ThemeBlue}

func (t Theme) Valid() bool {
	switch t {
	case ThemeLight, ThemeDark, ThemeBlue:
		return true
	}
	return false
}

// ParseTheme не падает: неизвестное значение даёт светлую тему
func ParseTheme(s string) (Theme, bool) {
	for _, v := range Themes {
		if strings.EqualFold(string(v), strings.TrimSpace(s)) {
			return v, true
		}
	}
	return ThemeLight, false
}

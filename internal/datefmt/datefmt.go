// Package datefmt formats publication dates for a locale, e.g.
// "January 15, 2024" for en-US and "15 janvier 2024" for fr-FR.
package datefmt

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/goodsign/monday"
	"github.com/samber/lo"
	"golang.org/x/text/language"
)

// Locales monday knows a long layout for, grouped by language and sorted.
var localesByLanguage = lo.GroupBy(
	sortedLocales(lo.Keys(monday.LongFormatsByLocale)),
	func(l monday.Locale) string {
		lang, _, _ := strings.Cut(string(l), "_")
		return lang
	},
)

func sortedLocales(locales []monday.Locale) []monday.Locale {
	slices.Sort(locales)
	return locales
}

// Format renders t as a long date in the given BCP 47 locale. An invalid
// locale tag is returned as an error.
func Format(t time.Time, locale string) (string, error) {
	tag, err := language.Parse(locale)

	if err != nil {
		return "", fmt.Errorf("invalid locale %q: %w", locale, err)
	}

	resolved := resolve(tag)

	return monday.Format(t, monday.LongFormatsByLocale[resolved], resolved), nil
}

// resolve picks the monday locale for tag: the exact language and region
// when known, otherwise the language's home region (fr_FR for fr-BE), then
// the first region of that language (en_GB for en-AU), then en_US.
func resolve(tag language.Tag) monday.Locale {
	base, _ := tag.Base()
	region, _ := tag.Region()

	exact := monday.Locale(base.String() + "_" + region.String())

	if _, ok := monday.LongFormatsByLocale[exact]; ok {
		return exact
	}

	candidates := localesByLanguage[base.String()]

	if len(candidates) == 0 {
		return monday.LocaleEnUS
	}

	home := monday.Locale(base.String() + "_" + strings.ToUpper(base.String()))

	if slices.Contains(candidates, home) {
		return home
	}

	return candidates[0]
}

package calendar

import (
	"strings"

	"github.com/goodsign/monday"
	"golang.org/x/text/language"
)

// Locale pairs a language tag with the monday locale that formats it.
type Locale struct {
	Tag  language.Tag
	Code monday.Locale
}

var locales = []Locale{
	{Tag: language.English, Code: monday.LocaleEnUS},
	{Tag: language.German, Code: monday.LocaleDeDE},
	{Tag: language.French, Code: monday.LocaleFrFR},
	{Tag: language.Spanish, Code: monday.LocaleEsES},
	{Tag: language.Italian, Code: monday.LocaleItIT},
	{Tag: language.Dutch, Code: monday.LocaleNlNL},
}

var matcher = language.NewMatcher(localeTags())

func localeTags() []language.Tag {
	tags := make([]language.Tag, len(locales))
	for i, l := range locales {
		tags[i] = l.Tag
	}
	return tags
}

// English is the fallback locale.
func English() Locale { return locales[0] }

// MatchLocale picks the closest supported locale for a BCP 47 tag such as
// "de-AT" or "fr". Empty or unparseable tags resolve to English.
func MatchLocale(tag string) Locale {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return English()
	}
	t, err := language.Parse(tag)
	if err != nil {
		return English()
	}
	_, idx, conf := matcher.Match(t)
	if conf == language.No {
		return English()
	}
	return locales[idx]
}

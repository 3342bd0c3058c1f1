package timeconv

import "golang.org/x/text/language"

type parseLayout struct {
	layout   string
	timeOnly bool
}

// isoLayouts are tried first under every locale.  Layouts ending in seconds
// also accept a fractional second, so no separate fractional variants are
// needed.
var isoLayouts = []parseLayout{
	{layout: "2006-01-02T15:04:05Z07:00"},
	{layout: "2006-01-02T15:04:05"},
	{layout: "2006-01-02T15:04"},
	{layout: "2006-01-02 15:04:05Z07:00"},
	{layout: "2006-01-02 15:04:05"},
	{layout: "2006-01-02 15:04"},
	{layout: "2006-01-02"},
}

// timeLayouts carry no date; the current date completes them.
var timeLayouts = []parseLayout{
	{layout: "15:04:05", timeOnly: true},
	{layout: "3:04:05 PM", timeOnly: true},
	{layout: "15:04", timeOnly: true},
	{layout: "3:04 PM", timeOnly: true},
}

// conventions map supported locales to their numeric date layouts.  The
// invariant convention comes first so that unmatched tags fall back to it.
var conventions = []struct {
	tag     language.Tag
	layouts []parseLayout
}{
	{tag: language.Und, layouts: dateVariants("1/2/2006")},
	{tag: language.AmericanEnglish, layouts: dateVariants("1/2/2006")},
	{tag: language.BritishEnglish, layouts: dateVariants("2/1/2006")},
	{tag: language.German, layouts: dateVariants("2.1.2006")},
	{tag: language.French, layouts: dateVariants("2/1/2006")},
	{tag: language.Japanese, layouts: dateVariants("2006/1/2")},
}

var localeMatcher = newLocaleMatcher()

func newLocaleMatcher() language.Matcher {
	tags := make([]language.Tag, len(conventions))
	for i, convention := range conventions {
		tags[i] = convention.tag
	}
	return language.NewMatcher(tags)
}

// dateVariants expands a date layout with the accepted time-of-day suffixes.
func dateVariants(date string) []parseLayout {
	return []parseLayout{
		{layout: date + " 15:04:05"},
		{layout: date + " 3:04:05 PM"},
		{layout: date + " 15:04"},
		{layout: date + " 3:04 PM"},
		{layout: date},
	}
}

func layoutsFor(locale language.Tag) []parseLayout {
	_, index, _ := localeMatcher.Match(locale)
	local := conventions[index].layouts
	layouts := make([]parseLayout, 0, len(isoLayouts)+len(local)+len(timeLayouts))
	layouts = append(layouts, isoLayouts...)
	layouts = append(layouts, local...)
	layouts = append(layouts, timeLayouts...)
	return layouts
}

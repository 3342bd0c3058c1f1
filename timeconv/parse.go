package timeconv

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/benbjohnson/clock"
	"golang.org/x/text/language"
)

var (
	// ErrUnrecognizedFormat is returned when text matches none of the
	// accepted layouts.
	ErrUnrecognizedFormat = errors.New("unrecognized time format")
	// ErrStyleConflict is returned when mutually exclusive styles are
	// combined.
	ErrStyleConflict = errors.New("conflicting parse styles")
)

// Style adjusts how text is interpreted during parsing.  Styles combine with
// the | operator.
type Style uint8

const (
	// StyleAllowWhitespace ignores leading and trailing whitespace.
	StyleAllowWhitespace Style = 1 << iota
	// StyleAssumeLocal interprets text without zone information as local
	// time.  This is the default interpretation.
	StyleAssumeLocal
	// StyleAssumeUniversal interprets text without zone information as UTC.
	StyleAssumeUniversal

	// StyleNone applies none of the adjustments above.
	StyleNone Style = 0
)

// ParseOption customises a single parse call.
type ParseOption func(*parseOptions)

type parseOptions struct {
	locale language.Tag
	style  Style
	clock  clock.Clock
}

// WithLocale selects the date convention used for numeric dates such as
// "03/04/2023".  Unknown tags resolve to their closest supported match and
// ultimately to the invariant month/day/year convention.  ISO-8601 forms are
// accepted under every locale.
func WithLocale(locale language.Tag) ParseOption {
	return func(o *parseOptions) {
		o.locale = locale
	}
}

// WithStyle applies the given parse styles.
func WithStyle(style Style) ParseOption {
	return func(o *parseOptions) {
		o.style = style
	}
}

// WithClock sets the time source consulted when text carries no date, whose
// current date then completes the result.  Defaults to the wall clock.
func WithClock(c clock.Clock) ParseOption {
	return func(o *parseOptions) {
		o.clock = c
	}
}

// ParseLocal parses text into a timestamp in the local zone.  Text without
// zone information is interpreted as local time unless StyleAssumeUniversal
// overrides that; text with an explicit zone or offset is honoured and the
// result converted to local.
func ParseLocal(text string, options ...ParseOption) (time.Time, error) {
	parsed, err := parse(text, options)
	if err != nil {
		return time.Time{}, err
	}
	return parsed.In(time.Local), nil
}

// ParseUTC parses text exactly like ParseLocal and converts the result to
// UTC.  The conversion preserves the instant, so for zoneless text the
// rendered fields shift by the local zone offset.
func ParseUTC(text string, options ...ParseOption) (time.Time, error) {
	parsed, err := parse(text, options)
	if err != nil {
		return time.Time{}, err
	}
	return parsed.UTC(), nil
}

func parse(text string, options []ParseOption) (time.Time, error) {
	opts := parseOptions{locale: language.Und}
	for _, option := range options {
		option(&opts)
	}
	if opts.style&StyleAssumeLocal != 0 && opts.style&StyleAssumeUniversal != 0 {
		return time.Time{}, fmt.Errorf("%w: assume local and assume universal are mutually exclusive", ErrStyleConflict)
	}
	if opts.style&StyleAllowWhitespace != 0 {
		text = strings.TrimSpace(text)
	}
	reference := time.Local
	if opts.style&StyleAssumeUniversal != 0 {
		reference = time.UTC
	}

	for _, candidate := range layoutsFor(opts.locale) {
		parsed, err := time.ParseInLocation(candidate.layout, text, reference)
		if err != nil {
			continue
		}
		if candidate.timeOnly {
			clk := opts.clock
			if clk == nil {
				clk = clock.New()
			}
			now := clk.Now().In(reference)
			parsed = time.Date(now.Year(), now.Month(), now.Day(),
				parsed.Hour(), parsed.Minute(), parsed.Second(), parsed.Nanosecond(), reference)
		}
		return parsed, nil
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrUnrecognizedFormat, text)
}

package timeconv

import (
	"time"

	"github.com/benbjohnson/clock"
)

// ISO8601 selects which timestamp components to render.  Components appear
// in the fixed order year, month, day, hour, minute, second, millisecond;
// each enabled component after the year is preceded by its canonical
// separator ("-", "-", "T", ":", ":", "."), and disabled components are
// omitted together with their separator.
//
// A suffix is always appended: the literal "Z" when UTC is set, otherwise
// the numeric "±HH:MM" offset of Location (local zone when nil).  The offset
// is the one in effect at the moment of formatting, as reported by Clock
// (wall clock when nil), not at the instant being formatted; across a
// daylight-saving change the two can differ.
//
// The rendered fields are the wall-clock fields of t as given.  Setting UTC
// selects the suffix only and never converts t; callers convert first when
// they want the fields in another zone.
type ISO8601 struct {
	Year        bool
	Month       bool
	Day         bool
	Hour        bool
	Minute      bool
	Second      bool
	Millisecond bool

	UTC      bool
	Location *time.Location
	Clock    clock.Clock
}

// ISO8601Date renders year through day.
func ISO8601Date() ISO8601 {
	return ISO8601{Year: true, Month: true, Day: true}
}

// ISO8601DateTime renders year through second.
func ISO8601DateTime() ISO8601 {
	f := ISO8601Date()
	f.Hour, f.Minute, f.Second = true, true, true
	return f
}

// ISO8601Full renders year through millisecond.
func ISO8601Full() ISO8601 {
	f := ISO8601DateTime()
	f.Millisecond = true
	return f
}

// Format renders t according to the descriptor.
func (f ISO8601) Format(t time.Time) string {
	return string(f.AppendFormat(make([]byte, 0, f.width()), t))
}

// AppendFormat appends the rendition of t to dst and returns the extended
// buffer.
func (f ISO8601) AppendFormat(dst []byte, t time.Time) []byte {
	if f.Year {
		dst = appendPadded(dst, t.Year(), 4)
	}
	if f.Month {
		dst = append(dst, '-')
		dst = appendPadded(dst, int(t.Month()), 2)
	}
	if f.Day {
		dst = append(dst, '-')
		dst = appendPadded(dst, t.Day(), 2)
	}
	if f.Hour {
		dst = append(dst, 'T')
		dst = appendPadded(dst, t.Hour(), 2)
	}
	if f.Minute {
		dst = append(dst, ':')
		dst = appendPadded(dst, t.Minute(), 2)
	}
	if f.Second {
		dst = append(dst, ':')
		dst = appendPadded(dst, t.Second(), 2)
	}
	if f.Millisecond {
		dst = append(dst, '.')
		dst = appendPadded(dst, t.Nanosecond()/int(time.Millisecond), 3)
	}
	return f.appendSuffix(dst)
}

func (f ISO8601) appendSuffix(dst []byte) []byte {
	if f.UTC {
		return append(dst, 'Z')
	}
	location := f.Location
	if location == nil {
		location = time.Local
	}
	clk := f.Clock
	if clk == nil {
		clk = clock.New()
	}
	_, offset := clk.Now().In(location).Zone()
	sign := byte('+')
	if offset < 0 {
		sign = '-'
		offset = -offset
	}
	dst = append(dst, sign)
	dst = appendPadded(dst, offset/3600, 2)
	dst = append(dst, ':')
	return appendPadded(dst, offset%3600/60, 2)
}

// width is the exact length Format produces.
func (f ISO8601) width() int {
	width := 0
	if f.Year {
		width += 4
	}
	if f.Month {
		width += 3
	}
	if f.Day {
		width += 3
	}
	if f.Hour {
		width += 3
	}
	if f.Minute {
		width += 3
	}
	if f.Second {
		width += 3
	}
	if f.Millisecond {
		width += 4
	}
	if f.UTC {
		width++
	} else {
		width += 6
	}
	return width
}

// appendPadded appends value in decimal, left padded with zeros to width;
// values wider than width keep all their digits and negative values carry a
// minus sign ahead of the padding.
func appendPadded(dst []byte, value, width int) []byte {
	if value < 0 {
		dst = append(dst, '-')
		value = -value
	}
	var buf [20]byte
	i := len(buf)
	for {
		i--
		buf[i] = byte('0' + value%10)
		value /= 10
		if value == 0 {
			break
		}
	}
	for width > len(buf)-i {
		dst = append(dst, '0')
		width--
	}
	return append(dst, buf[i:]...)
}

package view

import (
	"math"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
)

// FormatNumber returns compact representation of n, eg. 1500 -> "1.5K", 2300000 -> "2.3M".
// Numbers below 1000 are returned as is.
func FormatNumber(n float64) string {
	switch {
	case n >= 1000000:
		return oneDecimal(n/1000000) + "M"
	case n >= 1000:
		return oneDecimal(n/1000) + "K"
	}
	return strconv.FormatFloat(n, 'f', -1, 64)
}

// oneDecimal formats v with exactly one decimal digit.
// Exact ties are rounded up, strconv would round them to even.
// The only representable ties are values ending with .25 or .75, so v*4 is an odd integer.
func oneDecimal(v float64) string {
	if q := v * 4; q == math.Trunc(q) && math.Mod(q, 2) != 0 {
		return strconv.FormatFloat(math.Ceil(v*10)/10, 'f', 1, 64)
	}
	return strconv.FormatFloat(v, 'f', 1, 64)
}

// FormatCount returns n with thousands separators, eg. "1,234,567".
func FormatCount(n int) string {
	return humanize.Comma(int64(n))
}

// FormatDate returns date in "1/2/2006" form.
func FormatDate(t time.Time, loc *time.Location) string {
	return inLocation(t, loc).Format("1/2/2006")
}

// FormatShortDate returns month and day, eg. "Nov 3".
func FormatShortDate(t time.Time, loc *time.Location) string {
	return inLocation(t, loc).Format("Jan 2")
}

// FormatYear returns four digit year.
func FormatYear(t time.Time, loc *time.Location) string {
	return inLocation(t, loc).Format("2006")
}

func inLocation(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		return t.UTC()
	}
	return t.In(loc)
}

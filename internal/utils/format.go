package utils

import (
	"math"

	"github.com/dustin/go-humanize"
)

// FormatMoney formats a USD amount rounded to whole dollars, e.g. "$75,000"
func FormatMoney(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "$0"
	}
	return "$" + humanize.Comma(int64(math.Round(v)))
}

// FormatCount formats a record count with thousands separators
func FormatCount(n int) string {
	return humanize.Comma(int64(n))
}

// FormatCompact formats an amount for chart axes, e.g. "$120k"
func FormatCompact(v float64) string {
	switch {
	case math.Abs(v) >= 1e6:
		return "$" + humanize.FtoaWithDigits(v/1e6, 1) + "M"
	case math.Abs(v) >= 1e3:
		return "$" + humanize.FtoaWithDigits(v/1e3, 0) + "k"
	default:
		return "$" + humanize.FtoaWithDigits(v, 0)
	}
}

// TruncateString truncates a string to the specified length and adds "..." if necessary
func TruncateString(s string, length int) string {
	r := []rune(s)
	if len(r) <= length {
		return s
	}
	if length <= 3 {
		return string(r[:length])
	}
	return string(r[:length-3]) + "..."
}

// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// FormatMoney formats an amount as a dollar value with two decimals and
// comma grouping. e.g., 1234.5 -> "$1,234.50", -3 -> "-$3.00"
func FormatMoney(amount float64) string {
	if amount < 0 {
		return "-" + FormatMoney(-amount)
	}
	s := strconv.FormatFloat(amount, 'f', 2, 64)
	dot := strings.IndexByte(s, '.')
	if dot < 0 {
		// NaN and the infinities format without a decimal point.
		return "$" + s
	}
	return "$" + groupThousands(s[:dot]) + s[dot:]
}

// FormatValue formats a calculator result without forcing decimals.
// e.g., 8 -> "8", 2.5 -> "2.5"
func FormatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatPercent formats a 0-1 float as a percentage string.
func FormatPercent(f float64) string {
	return fmt.Sprintf("%.1f%%", f*100)
}

// groupThousands inserts comma separators into a digit string.
// e.g., "1234567" -> "1,234,567"
func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// TitleCase capitalizes the first rune of a category name for display.
// Category keys are stored lowercase; this is presentation only.
func TitleCase(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	if size == 0 || r == utf8.RuneError {
		return name
	}
	return string(unicode.ToUpper(r)) + name[size:]
}

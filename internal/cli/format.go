// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatMoney formats a whole-dollar amount with comma separators.
// e.g., 1234 -> "$1,234", -35 -> "-$35"
func FormatMoney(n int) string {
	if n < 0 {
		return "-$" + FormatNumber(int64(-n))
	}
	return "$" + FormatNumber(int64(n))
}

// FormatMoneyF formats a dollar amount with cents when they matter.
// e.g., 1056.0 -> "$1,056", 52.5 -> "$52.50"
func FormatMoneyF(v float64) string {
	if v == float64(int64(v)) {
		return FormatMoney(int(v))
	}
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	whole := int64(v)
	cents := int64(v*100+0.5) - whole*100
	return fmt.Sprintf("%s$%s.%02d", sign, FormatNumber(whole), cents)
}

// FormatPoints formats a quiz point total.
// e.g., 1250 -> "1,250 pts"
func FormatPoints(n int) string {
	return FormatNumber(int64(n)) + " pts"
}

// FormatDuration formats seconds into a human-readable duration.
// e.g., 3725 -> "1h 2m", 125 -> "2m 5s", 45 -> "45s"
func FormatDuration(secs int64) string {
	if secs <= 0 {
		return "0s"
	}

	hours := secs / 3600
	mins := (secs % 3600) / 60

	if hours > 0 {
		return fmt.Sprintf("%dh %dm", hours, mins)
	}
	if mins > 0 {
		return fmt.Sprintf("%dm %ds", mins, secs%60)
	}
	return fmt.Sprintf("%ds", secs)
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// FormatPercent formats a 0-1 float as a percentage string.
func FormatPercent(f float64) string {
	return fmt.Sprintf("%.1f%%", f*100)
}

// FormatAccuracy formats a correct/attempted pair.
// e.g., 7, 9 -> "7/9 (77.8%)"
func FormatAccuracy(correct, attempted int) string {
	if attempted <= 0 {
		return "0/0"
	}
	return fmt.Sprintf("%d/%d (%s)", correct, attempted,
		FormatPercent(float64(correct)/float64(attempted)))
}

// FormatDelta formats a signed dollar change.
// e.g., 300, 275 -> "+$25"
func FormatDelta(current, previous int) string {
	delta := current - previous
	if delta >= 0 {
		return "+" + FormatMoney(delta)
	}
	return FormatMoney(delta)
}

package components

import (
	"fmt"
	"strings"

	"moneyquest/internal/tui/theme"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// ColorForCombo returns the meter fill color by combo depth. The
// warmer the color, the faster the bar is moving.
func ColorForCombo(combo int) string {
	t := theme.Active
	switch {
	case combo >= 4:
		return string(t.Red)
	case combo == 3:
		return string(t.Orange)
	case combo == 2:
		return string(t.Yellow)
	default:
		return string(t.Accent)
	}
}

// ProgressMeter renders the quiz progress bar with its percentage.
// The fill color tracks the current combo.
func ProgressMeter(pct float64, combo, width int) string {
	t := theme.Active

	if pct < 0 {
		pct = 0
	}
	if pct > 1 {
		pct = 1
	}

	bar := progress.New(
		progress.WithSolidFill(ColorForCombo(combo)),
		progress.WithWidth(width),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	pctStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorForCombo(combo))).
		Bold(true)

	return bar.ViewAs(pct) + " " + pctStyle.Render(fmt.Sprintf("%3.0f%%", pct*100))
}

// ComboBadge renders the combo multiplier tag, or "" with no combo.
func ComboBadge(combo int) string {
	if combo < 2 {
		return ""
	}
	label := "x1.5"
	switch {
	case combo >= 4:
		label = "x2.0"
	case combo == 3:
		label = "x1.8"
	}
	style := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorForCombo(combo))).
		Bold(true)
	return style.Render(fmt.Sprintf("%s combo %s", strings.Repeat("🔥", min(combo, 4)), label))
}

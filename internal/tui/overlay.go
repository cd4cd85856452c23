package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// overlayBox draws box over base, centred across width and a third of the
// way down height. base keeps at least height rows.
func overlayBox(base, box string, width, height int) string {
	rows := strings.Split(base, "\n")
	for len(rows) < height {
		rows = append(rows, "")
	}
	boxRows := strings.Split(box, "\n")
	w := lipgloss.Width(box)
	x := max((width-w)/2, 0)
	top := max((height-len(boxRows))/3, 0)
	for i, cell := range boxRows {
		if r := top + i; r < len(rows) {
			rows[r] = spliceRow(rows[r], cell, x, w, width)
		}
	}
	return strings.Join(rows, "\n")
}

// spliceRow replaces columns [x, x+w) of row with cell, padding both so the
// result spans width columns. ANSI styling on either side is kept.
func spliceRow(row, cell string, x, w, width int) string {
	left := ansi.Truncate(row, x, "")
	if gap := x - ansi.StringWidth(left); gap > 0 {
		left += strings.Repeat(" ", gap)
	}
	right := ansi.TruncateLeft(row, x+w, "")
	return padRight(left+padRight(cell, w)+right, width)
}

// padRight pads s with spaces so its visual width equals width.
func padRight(s string, width int) string {
	if width <= 0 {
		return s
	}
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

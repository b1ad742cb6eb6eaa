package formatutil

import (
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
)

// FormatNumber renders v with the fewest digits that read back as v.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatStack renders values bottom-to-top as "[a, b, c]".
func FormatStack(values []float64) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, v := range values {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(FormatNumber(v))
	}
	b.WriteByte(']')
	return b.String()
}

type HelpRow struct {
	Key  string
	Text string
}

// FormatTable lays rows out in two columns, padding keys to the widest one.
// Widths are measured in terminal cells.
func FormatTable(title string, rows []HelpRow) string {
	width := 0
	for _, r := range rows {
		if w := runewidth.StringWidth(r.Key); w > width {
			width = w
		}
	}

	var b strings.Builder
	if title != "" {
		b.WriteString(title)
		b.WriteByte('\n')
	}
	for _, r := range rows {
		b.WriteString("  ")
		b.WriteString(runewidth.FillRight(r.Key, width))
		b.WriteString("  ")
		b.WriteString(r.Text)
		b.WriteByte('\n')
	}
	return b.String()
}

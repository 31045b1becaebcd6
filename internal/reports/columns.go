package reports

import (
	"fmt"
	"strings"
)

// column describes one field of a tabular report: a header label, a
// fixed width and an alignment. One renderer consumes these instead of
// each report hand-building its own formatting.
type column struct {
	label      string
	width      int
	alignRight bool
}

func formatCell(value string, width int, alignRight bool) string {
	if alignRight {
		return fmt.Sprintf("%*s", width, value)
	}
	return fmt.Sprintf("%-*s", width, value)
}

func renderRow(cols []column, cells []string) string {
	parts := make([]string, len(cols))
	for i, col := range cols {
		value := ""
		if i < len(cells) {
			value = cells[i]
		}
		parts[i] = formatCell(value, col.width, col.alignRight)
	}
	// two-space gutter so right-aligned cells never touch the next column
	return strings.Join(parts, "  ")
}

func renderHeader(cols []column) string {
	cells := make([]string, len(cols))
	for i, col := range cols {
		cells[i] = col.label
	}
	return renderRow(cols, cells)
}

func tableWidth(cols []column) int {
	width := (len(cols) - 1) * 2
	for _, col := range cols {
		width += col.width
	}
	return width
}

// renderTable lays out a header line, a dash rule and the body rows.
func renderTable(cols []column, rows [][]string) string {
	var b strings.Builder
	b.WriteString(renderHeader(cols))
	b.WriteString("\n")
	b.WriteString(strings.Repeat("-", tableWidth(cols)))
	b.WriteString("\n")
	for _, row := range rows {
		b.WriteString(renderRow(cols, row))
		b.WriteString("\n")
	}
	return b.String()
}

// money renders an amount with thousands grouping and the ruble
// suffix, the format the desktop reports always used.
func money(amount float64, decimals int) string {
	formatted := fmt.Sprintf("%.*f", decimals, amount)

	intPart := formatted
	fracPart := ""
	if i := strings.IndexByte(formatted, '.'); i >= 0 {
		intPart, fracPart = formatted[:i], formatted[i:]
	}

	negative := strings.HasPrefix(intPart, "-")
	if negative {
		intPart = intPart[1:]
	}

	var groups []string
	for len(intPart) > 3 {
		groups = append([]string{intPart[len(intPart)-3:]}, groups...)
		intPart = intPart[:len(intPart)-3]
	}
	groups = append([]string{intPart}, groups...)

	result := strings.Join(groups, ",") + fracPart
	if negative {
		result = "-" + result
	}
	return result + " ₽"
}

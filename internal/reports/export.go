package reports

import (
	"io"
	"regexp"
	"strings"

	internal "github.com/frahmantamala/payroll-management/internal"
)

// ExportText writes the report exactly as rendered.
func ExportText(report *Report, w io.Writer) error {
	if _, err := io.WriteString(w, report.Content); err != nil {
		return internal.NewInternalError("write report text", err)
	}
	return nil
}

var cellSeparator = regexp.MustCompile(`\s{2,}`)

// ExportCSV converts the rendered text to ;-delimited rows by splitting
// each line on runs of whitespace. The conversion is naive and lossy;
// callers that need faithful structured output should export the data
// directly instead of round-tripping the display text.
func ExportCSV(report *Report, w io.Writer) error {
	var b strings.Builder
	for _, line := range strings.Split(report.Content, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		var cells []string
		for _, cell := range cellSeparator.Split(line, -1) {
			cell = strings.TrimSpace(cell)
			if cell != "" {
				cells = append(cells, cell)
			}
		}
		b.WriteString(strings.Join(cells, ";"))
		b.WriteString("\n")
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return internal.NewInternalError("write report CSV", err)
	}
	return nil
}

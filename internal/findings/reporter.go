package findings

import (
	"fmt"
	"io"

	"github.com/gookit/color"
)

// Status glyphs used across all checker output.
const (
	GlyphOK      = "✅"
	GlyphWarning = "⚠️"
	GlyphError   = "❌"
)

// Reporter prints a Report as human-readable, glyph-prefixed text.
type Reporter struct {
	out     io.Writer
	colored bool
}

// NewReporter creates a reporter writing to out.
// Set colored to false for plain output (CI logs, piped output).
func NewReporter(out io.Writer, colored bool) *Reporter {
	return &Reporter{out: out, colored: colored}
}

// Print writes the report for a named checker, ending with a summary line.
func (r *Reporter) Print(checkName string, report *Report) {
	for _, file := range report.Files() {
		for _, f := range report.ForFile(file) {
			r.printFinding(f)
		}
	}
	r.printSummary(checkName, report)
}

func (r *Reporter) printFinding(f Finding) {
	glyph := GlyphWarning
	paint := color.Yellow
	if f.Severity == SeverityError {
		glyph = GlyphError
		paint = color.Red
	}

	r.println(paint, fmt.Sprintf("%s %s", glyph, f.String()))
}

func (r *Reporter) printSummary(checkName string, report *Report) {
	if report.Len() == 0 {
		r.println(color.Green, fmt.Sprintf("%s %s: no findings", GlyphOK, checkName))
		return
	}

	summary := fmt.Sprintf("%s: %d error(s), %d warning(s)",
		checkName, report.ErrorCount(), report.WarningCount())
	if report.HasErrors() {
		r.println(color.Red, GlyphError+" "+summary)
		return
	}
	r.println(color.Yellow, GlyphWarning+" "+summary)
}

func (r *Reporter) println(paint color.Color, line string) {
	if r.colored {
		line = paint.Sprint(line)
	}
	fmt.Fprintln(r.out, line)
}

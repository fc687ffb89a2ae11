// Package output renders check results for operators.
package output

import (
	"fmt"
	"io"

	"github.com/jwalton/go-supportscolor"

	"github.com/vertti/clustercheck/pkg/check"
)

var (
	green  = "\033[32m"
	yellow = "\033[33m"
	red    = "\033[31m"
	reset  = "\033[0m"
)

func init() {
	if !supportscolor.Stdout().SupportsColor {
		DisableColor()
	}
}

// DisableColor turns off ANSI colors for all renderers.
func DisableColor() {
	green, yellow, red, reset = "", "", "", ""
}

// Text renders results as line-oriented, human-readable text.
type Text struct {
	W   io.Writer
	err error
}

// NewText returns a text renderer writing to w.
func NewText(w io.Writer) *Text {
	return &Text{W: w}
}

// BeginGroup prints the group banner.
func (t *Text) BeginGroup(title string) {
	t.printf("============%s============\n", title)
}

// Render prints the check title with its verdict, then one line per finding.
func (t *Text) Render(r check.Result) {
	t.printf("%s %s\n", r.Title, statusTag(r.Status()))
	for _, f := range r.Findings {
		t.printf("  %s %s\n", severityTag(f.Severity), f.Message)
	}
}

// EndGroup separates groups with a blank line.
func (t *Text) EndGroup() {
	t.printf("\n")
}

// Err returns the first write error. Later writes are skipped once one fails.
func (t *Text) Err() error {
	return t.err
}

func (t *Text) printf(format string, args ...any) {
	if t.err != nil {
		return
	}
	if _, err := fmt.Fprintf(t.W, format, args...); err != nil {
		t.err = fmt.Errorf("write report: %w", err)
	}
}

func statusTag(s check.Status) string {
	switch s {
	case check.StatusFail:
		return red + "[FAIL]" + reset
	case check.StatusWarn:
		return yellow + "[WARN]" + reset
	default:
		return green + "[PASS]" + reset
	}
}

func severityTag(s check.Severity) string {
	switch s {
	case check.SeverityError:
		return red + "[ERROR]" + reset
	case check.SeverityWarn:
		return yellow + "[WARN]" + reset
	default:
		return green + "[INFO]" + reset
	}
}

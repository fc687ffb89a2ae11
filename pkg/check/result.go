package check

// Severity classifies a single finding.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarn
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityWarn:
		return "WARN"
	case SeverityError:
		return "ERROR"
	default:
		return "INFO"
	}
}

// Status represents the verdict of a whole check.
type Status string

const (
	StatusPass Status = "PASS"
	StatusWarn Status = "WARN"
	StatusFail Status = "FAIL"
)

// Finding is one observation emitted by a check.
type Finding struct {
	Severity Severity
	Message  string
}

// Result holds the findings of a single check in the order they were appended.
type Result struct {
	Title    string    // e.g., "Checking nodes"
	Findings []Finding // append order is render order
}

// New returns an empty result with the given title.
func New(title string) Result {
	return Result{Title: title}
}

// Worst returns the highest severity among the findings.
// A result without findings is informational.
func (r Result) Worst() Severity {
	worst := SeverityInfo
	for _, f := range r.Findings {
		if f.Severity > worst {
			worst = f.Severity
		}
	}
	return worst
}

// Status maps the worst finding to a verdict.
func (r Result) Status() Status {
	switch r.Worst() {
	case SeverityError:
		return StatusFail
	case SeverityWarn:
		return StatusWarn
	default:
		return StatusPass
	}
}

// Count returns the number of findings with the given severity.
func (r Result) Count(s Severity) int {
	n := 0
	for _, f := range r.Findings {
		if f.Severity == s {
			n++
		}
	}
	return n
}

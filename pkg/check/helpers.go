package check

import "fmt"

// Add appends a finding with the given severity.
func (r *Result) Add(s Severity, message string) *Result {
	r.Findings = append(r.Findings, Finding{Severity: s, Message: message})
	return r
}

// Info appends an informational finding.
func (r *Result) Info(message string) *Result {
	return r.Add(SeverityInfo, message)
}

// Infof appends a formatted informational finding.
func (r *Result) Infof(format string, args ...interface{}) *Result {
	return r.Add(SeverityInfo, fmt.Sprintf(format, args...))
}

// Warn appends a warning: degraded but functioning.
func (r *Result) Warn(message string) *Result {
	return r.Add(SeverityWarn, message)
}

// Warnf appends a formatted warning.
func (r *Result) Warnf(format string, args ...interface{}) *Result {
	return r.Add(SeverityWarn, fmt.Sprintf(format, args...))
}

// Error appends an error: a failed precondition for correct cluster operation.
func (r *Result) Error(message string) *Result {
	return r.Add(SeverityError, message)
}

// Errorf appends a formatted error.
func (r *Result) Errorf(format string, args ...interface{}) *Result {
	return r.Add(SeverityError, fmt.Sprintf(format, args...))
}

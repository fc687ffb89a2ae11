// Package testutil provides fakes for the probe primitives.
package testutil

import (
	"context"
	"errors"
	"strings"

	"github.com/vertti/clustercheck/pkg/check"
	"github.com/vertti/clustercheck/pkg/probe"
)

// FakeRunner answers commands from a table keyed by the exact command line.
// Unknown commands behave like a missing binary (exit 127).
type FakeRunner struct {
	Results map[string]probe.CommandResult
	Errors  map[string]error
	Calls   []string
}

// Run records the call and returns the scripted response.
func (f *FakeRunner) Run(_ context.Context, cmdline string) (probe.CommandResult, error) {
	f.Calls = append(f.Calls, cmdline)
	if err, ok := f.Errors[cmdline]; ok {
		return probe.CommandResult{ExitCode: -1}, err
	}
	if res, ok := f.Results[cmdline]; ok {
		return res, nil
	}
	return probe.CommandResult{ExitCode: 127, Stderr: "sh: 1: command not found"}, nil
}

// Stdout is a successful command printing out.
func Stdout(out string) probe.CommandResult {
	return probe.CommandResult{Stdout: out}
}

// Exit is a command exiting with code and stderr.
func Exit(code int, stderr string) probe.CommandResult {
	return probe.CommandResult{ExitCode: code, Stderr: stderr}
}

// FakeServices answers service queries from name sets.
// Names not listed are missing: not available, not enabled, not active.
type FakeServices struct {
	Active    map[string]bool
	Enabled   map[string]bool
	Available map[string]bool
	Queries   []string
}

func (f *FakeServices) IsActive(_ context.Context, name string) bool {
	f.Queries = append(f.Queries, "active:"+name)
	return f.Active[name]
}

func (f *FakeServices) IsEnabled(_ context.Context, name string) bool {
	f.Queries = append(f.Queries, "enabled:"+name)
	return f.Enabled[name]
}

func (f *FakeServices) IsAvailable(_ context.Context, name string) bool {
	f.Queries = append(f.Queries, "available:"+name)
	return f.Available[name]
}

// Set builds a name set.
func Set(names ...string) map[string]bool {
	m := make(map[string]bool, len(names))
	for _, n := range names {
		m[n] = true
	}
	return m
}

// ErrNoSuchHost is what FakeHost returns for unresolvable names.
var ErrNoSuchHost = errors.New("lookup: no such host")

// FakeHost is a test double for probe.Host.
type FakeHost struct {
	Name        string
	NameErr     error
	Resolvable  map[string]bool
	Watchdog    string
	HasWatchdog bool
}

func (f *FakeHost) Hostname() (string, error) {
	return f.Name, f.NameErr
}

func (f *FakeHost) Resolve(_ context.Context, name string) error {
	if f.Resolvable[name] {
		return nil
	}
	return ErrNoSuchHost
}

func (f *FakeHost) WatchdogDevice() (string, bool) {
	return f.Watchdog, f.HasWatchdog
}

// Probes bundles fakes into a probe.Probes.
func Probes(r probe.Runner, s probe.Services, h probe.Host) probe.Probes {
	return probe.Probes{Runner: r, Services: s, Host: h}
}

// Lines renders findings as "SEVERITY message" strings for compact assertions.
func Lines(r check.Result) []string {
	lines := make([]string, 0, len(r.Findings))
	for _, f := range r.Findings {
		lines = append(lines, f.Severity.String()+" "+f.Message)
	}
	return lines
}

// ContainsFinding checks if any finding with severity s contains substr.
func ContainsFinding(r check.Result, s check.Severity, substr string) bool {
	for _, f := range r.Findings {
		if f.Severity == s && strings.Contains(f.Message, substr) {
			return true
		}
	}
	return false
}

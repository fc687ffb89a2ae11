package check

import "context"

// Checker is implemented by all checks.
// Each check probes one aspect of the node and returns its findings.
// Probe failures must be turned into findings, never returned or panicked.
//
// Implementations:
//   - envcheck.Hostname, envcheck.TimeService, envcheck.Watchdog
//   - clustercheck.Services, clustercheck.Fencing, clustercheck.Nodes,
//     clustercheck.Resources
type Checker interface {
	Title() string
	Run(ctx context.Context) Result
}

// Renderer emits results. A result handed to Render is never modified afterwards.
type Renderer interface {
	BeginGroup(title string)
	Render(r Result)
	EndGroup()
}

// Group is an ordered list of checks sharing a banner.
type Group struct {
	Title  string
	Checks []Checker
}

// Run executes the checks one at a time, rendering each result before the
// next check starts.
func (g Group) Run(ctx context.Context, r Renderer) {
	r.BeginGroup(g.Title)
	for _, c := range g.Checks {
		r.Render(runContained(ctx, c))
	}
	r.EndGroup()
}

// runContained keeps a misbehaving check from aborting its siblings.
func runContained(ctx context.Context, c Checker) (result Result) {
	defer func() {
		if p := recover(); p != nil {
			result = New(c.Title())
			result.Errorf("check aborted: %v", p)
		}
	}()

	result = c.Run(ctx)
	if result.Title == "" {
		result.Title = c.Title()
	}
	return result
}

// Func adapts a plain function to the Checker interface.
type Func struct {
	Name string
	Fn   func(ctx context.Context, r *Result)
}

// Title returns the check title.
func (f Func) Title() string { return f.Name }

// Run creates the result and lets the function fill it.
func (f Func) Run(ctx context.Context) Result {
	r := New(f.Name)
	if f.Fn == nil {
		return *r.Errorf("%s: no check function", f.Name)
	}
	f.Fn(ctx, &r)
	return r
}

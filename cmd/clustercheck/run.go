package main

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/vertti/clustercheck/pkg/check"
	"github.com/vertti/clustercheck/pkg/logging"
	"github.com/vertti/clustercheck/pkg/output"
	"github.com/vertti/clustercheck/pkg/probe"
)

var (
	cmdTimeout   time.Duration
	outputFormat string
	noColor      bool
	logLevel     string
	logFile      string
	failOnError  bool
)

// ErrFindings is returned with --fail-on-error when an ERROR finding was reported.
// The returned error causes Cobra to exit with code 1.
var ErrFindings = errors.New("checks reported errors")

// newProbes is replaced in tests.
var newProbes = probe.New

func init() {
	pf := rootCmd.PersistentFlags()
	pf.DurationVar(&cmdTimeout, "timeout", probe.DefaultTimeout, "timeout for each external command")
	pf.StringVarP(&outputFormat, "output", "o", "text", "output format (text, json)")
	pf.BoolVar(&noColor, "no-color", false, "disable colored output")
	pf.StringVar(&logLevel, "log-level", "warn", "log level (trace, debug, info, warn, error, off)")
	pf.StringVar(&logFile, "log-file", "", "write the log to a rotated file instead of stderr")
	pf.BoolVar(&failOnError, "fail-on-error", false, "exit 1 if any check reports an ERROR finding")
}

// groupBuilder builds a check group on top of the probe primitives.
type groupBuilder func(probe.Probes) check.Group

// runGroups runs the groups in order and renders every result to stdout.
func runGroups(cmd *cobra.Command, builders ...groupBuilder) error {
	if err := validateFlags(); err != nil {
		return err
	}
	if noColor {
		output.DisableColor()
	}

	renderer, err := newRenderer(outputFormat, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	log := logging.New(logging.Config{Level: logLevel, File: logFile})
	p := newProbes(&probe.ShellRunner{Timeout: cmdTimeout, Log: log})

	t := &tally{next: renderer}
	for _, build := range builders {
		g := build(p)
		log.Debug().Str("group", g.Title).Int("checks", len(g.Checks)).Msg("running group")
		g.Run(cmd.Context(), t)
	}

	if fr, ok := renderer.(interface{ Err() error }); ok && fr.Err() != nil {
		log.Error().Err(fr.Err()).Msg("report incomplete")
		return fr.Err()
	}

	log.Info().
		Int("checks", t.checks).
		Int("warnings", t.warnings).
		Int("errors", t.errors).
		Msg("run complete")

	if failOnError && t.errors > 0 {
		return fmt.Errorf("%w: %d error finding(s)", ErrFindings, t.errors)
	}
	return nil
}

// tally counts rendered findings on the way to the real renderer.
type tally struct {
	next     check.Renderer
	checks   int
	warnings int
	errors   int
}

func (t *tally) BeginGroup(title string) { t.next.BeginGroup(title) }
func (t *tally) EndGroup()               { t.next.EndGroup() }

func (t *tally) Render(r check.Result) {
	t.checks++
	t.warnings += r.Count(check.SeverityWarn)
	t.errors += r.Count(check.SeverityError)
	t.next.Render(r)
}

func newRenderer(format string, w io.Writer) (check.Renderer, error) {
	switch format {
	case "text":
		return output.NewText(w), nil
	case "json":
		return output.NewJSON(w), nil
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}

// Package probe wraps the read-only host primitives the checks are built on:
// shell pipelines, service manager queries and host identity.
package probe

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

const (
	// DefaultTimeout bounds a single command invocation.
	DefaultTimeout = 30 * time.Second
	// DefaultShell interprets command lines, so pipelines work.
	DefaultShell = "/bin/sh"
)

// waitDelay caps how long Wait blocks on pipes after the process is killed.
const waitDelay = 2 * time.Second

// ErrTimeout is matched by errors.Is for every TimeoutError.
var ErrTimeout = errors.New("command timed out")

// TimeoutError reports a command killed after exceeding its timeout.
type TimeoutError struct {
	Command string
	After   time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("run %q timed out after %s", e.Command, e.After)
}

// Is makes errors.Is(err, ErrTimeout) true.
func (e *TimeoutError) Is(target error) bool {
	return target == ErrTimeout
}

// CommandResult is the outcome of a command that ran.
// Stdout and Stderr are trimmed of surrounding whitespace.
type CommandResult struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// OK returns true if the command exited with status 0.
func (r CommandResult) OK() bool {
	return r.ExitCode == 0
}

// Runner abstracts command execution for testability.
//
// A non-zero exit status is not an error: it is reported in ExitCode.
// The error is non-nil only when the command could not be run to completion
// (the shell could not be spawned, or the timeout expired); any partial
// output is still returned and ExitCode is -1.
type Runner interface {
	Run(ctx context.Context, cmdline string) (CommandResult, error)
}

// ShellRunner implements Runner by handing the command line to a shell.
type ShellRunner struct {
	Shell   string         // default: /bin/sh
	Timeout time.Duration  // per command (default: 30s)
	Log     zerolog.Logger // debug log of every invocation
}

// Run executes cmdline with "<shell> -c".
func (s *ShellRunner) Run(ctx context.Context, cmdline string) (CommandResult, error) {
	shell := s.Shell
	if shell == "" {
		shell = DefaultShell
	}
	timeout := s.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, shell, "-c", cmdline)
	configureProcess(cmd)
	var outBuf, errBuf bytes.Buffer
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf

	start := time.Now()
	err := cmd.Run()
	result := CommandResult{
		ExitCode: -1,
		Stdout:   strings.TrimSpace(outBuf.String()),
		Stderr:   strings.TrimSpace(errBuf.String()),
	}

	switch {
	case errors.Is(ctx.Err(), context.DeadlineExceeded):
		err = &TimeoutError{Command: cmdline, After: timeout}
	case ctx.Err() != nil:
		err = errors.Wrapf(ctx.Err(), "run %q", cmdline)
	case err == nil:
		result.ExitCode = 0
	default:
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
			err = nil
		} else {
			err = errors.Wrapf(err, "run %q", cmdline)
		}
	}

	s.Log.Debug().
		Str("cmd", cmdline).
		Int("rc", result.ExitCode).
		Dur("took", time.Since(start)).
		Err(err).
		Msg("command finished")

	return result, err
}

// FailureMessage describes a command that did not succeed, for use as a
// finding message. It reports the timeout, the primitive error, or the
// command's stderr.
func FailureMessage(cmdline string, result CommandResult, err error) string {
	var timeoutErr *TimeoutError
	if errors.As(err, &timeoutErr) {
		return timeoutErr.Error()
	}
	if err != nil {
		return fmt.Sprintf("run %q error: %v", cmdline, errors.Cause(err))
	}
	return fmt.Sprintf("run %q error: %s", cmdline, result.Stderr)
}

// Quote returns s as a single-quoted shell word.
func Quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

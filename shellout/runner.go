// Package shellout runs external commands behind a narrow Runner
// interface, so command-line programs built on keryx never depend on a
// specific process-invocation mechanism. Execution is synchronous: Run
// blocks on the child and reports its exit code.
package shellout

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// Cmd names one external command to run: an executable plus its argument
// list and optional stream overrides. Nil streams fall back to the
// process's own stdin/stdout/stderr.
type Cmd struct {
	Name   string
	Args   []string
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// String renders the command the way a shell prompt would show it.
func (c Cmd) String() string {
	if len(c.Args) == 0 {
		return c.Name
	}
	return c.Name + " " + strings.Join(c.Args, " ")
}

// Runner runs a single external command to completion and returns its
// exit code. Implementations must be synchronous.
type Runner interface {
	Run(c Cmd) (int, error)
}

// NotFoundError reports that a required executable could not be located.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("executable %q is not available on this system", e.Name)
}

// ExitError reports a child process that ran but exited non-zero. It
// carries the child's status so callers can propagate it unchanged.
type ExitError struct {
	Cmd  string
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("%s exited with code %d", e.Cmd, e.Code)
}

// ExitCode reports the process exit status for the error.
func (e *ExitError) ExitCode() int { return e.Code }

// ExecRunner is the os/exec-backed Runner used by real binaries.
type ExecRunner struct{}

// Run locates c.Name on PATH, runs it to completion with the configured
// streams, and returns the child's exit code. A missing executable yields
// a NotFoundError; a non-zero exit yields the code and an ExitError.
func (ExecRunner) Run(c Cmd) (int, error) {
	path, err := exec.LookPath(c.Name)
	if err != nil {
		return -1, &NotFoundError{Name: c.Name}
	}

	cmd := exec.Command(path, c.Args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if c.Stdin != nil {
		cmd.Stdin = c.Stdin
	}
	if c.Stdout != nil {
		cmd.Stdout = c.Stdout
	}
	if c.Stderr != nil {
		cmd.Stderr = c.Stderr
	}

	err = cmd.Run()
	if err == nil {
		return 0, nil
	}
	var ee *exec.ExitError
	if errors.As(err, &ee) {
		return ee.ExitCode(), &ExitError{Cmd: c.String(), Code: ee.ExitCode()}
	}
	return 1, err
}

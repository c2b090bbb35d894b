// Package keryx is a small command-tree dispatcher. A program declares a
// tree of Command values once at startup, then hands os.Args to Main. The
// dispatcher resolves a path through the tree by consuming leading tokens
// that match subcommand names, parses each node's flags with pflag along
// the way, and invokes exactly one handler per run.
//
// Flag parsing is delegated to github.com/spf13/pflag; keryx owns tree
// resolution, default-subcommand delegation, usage errors and help output.
package keryx

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

type exitCoder interface {
	ExitCode() int
}

// Main dispatches os.Args against root, prints any failure to stderr and
// exits the process. Usage errors are followed by a synopsis of valid
// usage. Errors carrying an ExitCode() int decide the exit status;
// everything else exits 1.
func Main(root *Command) {
	err := Execute(root, os.Args[1:], os.Stdout, os.Stderr)
	if err == nil {
		return
	}

	// Print a short, single-line error to stderr on failures.
	msg := strings.Join(strings.Fields(err.Error()), " ")
	if msg == "" {
		msg = "error"
	}
	_, _ = os.Stderr.WriteString(msg + "\n")

	var usage *UsageError
	if errors.As(err, &usage) {
		_, _ = os.Stderr.WriteString(usage.Synopsis())
	}

	code := 1
	var ec exitCoder
	if errors.As(err, &ec) {
		if c := ec.ExitCode(); c != 0 {
			code = c
		}
	}
	os.Exit(code)
}

// Execute dispatches args against the tree rooted at root, writing command
// output to out and diagnostics to errw. Unlike Main it never exits the
// process: usage errors and handler failures are returned to the caller,
// which makes trees composable and testable.
func Execute(root *Command, args []string, out, errw io.Writer) error {
	if root == nil {
		return fmt.Errorf("keryx: nil root command")
	}
	root.Name = Slug(root.Name)
	return dispatch(root, args, nil, out, errw, []string{root.Name}, true)
}

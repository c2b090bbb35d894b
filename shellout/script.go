package shellout

import (
	"fmt"
	"io"

	"github.com/spf13/pflag"
)

// Script is an ordered list of commands to run sequentially. Execution
// stops at the first failure.
type Script []Cmd

// Options carries the standard script-running flags. Show and NoShow
// together form a tri-state: by default command lines are echoed only on
// dry runs, -s forces echoing, --no-show suppresses it.
type Options struct {
	Quiet  bool
	DryRun bool
	Show   bool
	NoShow bool
}

// BindFlags registers the standard script flags on fs. They are typically
// declared on a root command so every subcommand honors them.
func (o *Options) BindFlags(fs *pflag.FlagSet) {
	fs.BoolVarP(&o.Quiet, "quiet", "q", false, "do not stream command output")
	fs.BoolVarP(&o.DryRun, "dry-run", "d", false, "print commands without executing them")
	fs.BoolVarP(&o.Show, "show", "s", false, "print each command line before it runs")
	fs.BoolVar(&o.NoShow, "no-show", false, "never print command lines, even on dry runs")
}

func (o Options) echo() bool {
	if o.NoShow {
		return false
	}
	return o.Show || o.DryRun
}

// Run executes the script with r, echoing command lines to errw per the
// options and streaming child output to out/errw unless quieted. The
// first failing command aborts the remainder and its error is returned
// as-is, so exit codes propagate.
func Run(r Runner, o Options, out, errw io.Writer, script Script) error {
	for _, c := range script {
		if o.echo() {
			fmt.Fprintf(errw, "> %s\n", c.String())
		}
		if o.DryRun {
			continue
		}
		if c.Stdout == nil {
			c.Stdout = out
		}
		if c.Stderr == nil {
			c.Stderr = errw
		}
		if o.Quiet {
			c.Stdout = io.Discard
			c.Stderr = io.Discard
		}
		if _, err := r.Run(c); err != nil {
			return err
		}
	}
	return nil
}

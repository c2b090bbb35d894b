// Command listdir1 forwards its arguments verbatim to the system `ls`
// and reproduces that executable's output and exit code. Flag-like
// arguments must follow a `--` separator.
package main

import (
	"errors"

	"github.com/flarebyte/hermes-keryx/internal/buildinfo"
	"github.com/flarebyte/hermes-keryx/keryx"
	"github.com/flarebyte/hermes-keryx/shellout"
)

const lsExecutable = "ls"

func newListdir1(r shellout.Runner) *keryx.Command {
	return &keryx.Command{
		Name:    "listdir1",
		Summary: "pass arguments through to the system ls",
		Version: buildinfo.Summary(),
		Positional: []keryx.Positional{
			{Name: "args", Variadic: true},
		},
		Run: func(inv *keryx.Invocation) error {
			_, err := r.Run(shellout.Cmd{
				Name:   lsExecutable,
				Args:   inv.Args,
				Stdout: inv.Out,
				Stderr: inv.Err,
			})
			var notFound *shellout.NotFoundError
			if errors.As(err, &notFound) {
				return inv.Usagef("%v", notFound)
			}
			return err
		},
	}
}

func main() {
	keryx.Main(newListdir1(shellout.ExecRunner{}))
}

// Command manage drives development of hermes-keryx with hermes-keryx:
// `manage test` and `manage build` run the Go toolchain through the
// shellout script runner, honoring the standard -q/-d/-s script flags.
package main

import (
	"github.com/flarebyte/hermes-keryx/internal/buildinfo"
	"github.com/flarebyte/hermes-keryx/keryx"
	"github.com/flarebyte/hermes-keryx/shellout"
	"github.com/spf13/pflag"
)

func newManage(r shellout.Runner) *keryx.Command {
	var (
		opts  shellout.Options
		goBin *string
	)

	root := &keryx.Command{
		Name:    "manage",
		Summary: "manage development of hermes-keryx (with hermes-keryx)",
		Version: buildinfo.Summary(),
		Flags: func(fs *pflag.FlagSet) {
			opts.BindFlags(fs)
			goBin = keryx.StringEnv(fs, "go-bin", "MANAGE_GO", "go", "go toolchain binary")
		},
	}

	test := &keryx.Command{
		Name:    "test",
		Summary: "run tests",
		Run: func(inv *keryx.Invocation) error {
			return shellout.Run(r, opts, inv.Out, inv.Err, shellout.Script{
				{Name: *goBin, Args: []string{"test", "./..."}},
			})
		},
	}
	build := &keryx.Command{
		Name:    "build",
		Summary: "build every package",
		Run: func(inv *keryx.Invocation) error {
			return shellout.Run(r, opts, inv.Out, inv.Err, shellout.Script{
				{Name: *goBin, Args: []string{"build", "./..."}},
			})
		},
	}

	return root.Subcommands(test, build)
}

func main() {
	keryx.Main(newManage(shellout.ExecRunner{}))
}

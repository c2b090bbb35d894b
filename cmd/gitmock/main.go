// Command gitmock is a toy imitation of the git porcelain: every
// subcommand prints a fixed string instead of touching a repository.
package main

import (
	"github.com/flarebyte/hermes-keryx/cmd/gitmock/stash"
	"github.com/flarebyte/hermes-keryx/internal/buildinfo"
	"github.com/flarebyte/hermes-keryx/keryx"
	"github.com/spf13/pflag"
)

func newGitmock() *keryx.Command {
	root := &keryx.Command{
		Name:    "gitmock",
		Summary: "toy imitation of the git command tree",
		Version: buildinfo.Summary(),
		Flags: func(fs *pflag.FlagSet) {
			// Accepted for git compatibility; the mock subcommands never
			// consult it.
			fs.StringP("directory", "C", "", "run as if started in PATH")
		},
	}
	return root.Subcommands(stash.Cmd())
}

func main() {
	keryx.Main(newGitmock())
}

// Package stash declares the mock `stash` command tree: canned output
// standing in for the real porcelain, used to exercise nested dispatch
// and default-subcommand delegation.
package stash

import (
	"fmt"

	"github.com/flarebyte/hermes-keryx/keryx"
	"github.com/spf13/pflag"
)

// Cmd builds the stash subtree. Bare `stash` delegates to `save`.
func Cmd() *keryx.Command {
	save := &keryx.Command{
		Name:    "save",
		Summary: "record a snapshot of local changes",
		Flags: func(fs *pflag.FlagSet) {
			fs.BoolP("patch", "p", false, "interactively choose hunks to record")
		},
		Run: runSave,
	}
	list := &keryx.Command{
		Name:    "list",
		Summary: "list recorded snapshots",
		Run:     runList,
	}

	root := &keryx.Command{
		Name:    "stash",
		Summary: "shelve local changes away",
		Default: "save",
	}
	return root.Subcommands(save, list)
}

func runSave(inv *keryx.Invocation) error {
	fmt.Fprintln(inv.Out, "stash save")
	fmt.Fprintf(inv.Out, "interactive: %v\n", inv.Bool("patch"))
	return nil
}

func runList(inv *keryx.Invocation) error {
	fmt.Fprintln(inv.Out, "stash list")
	return nil
}

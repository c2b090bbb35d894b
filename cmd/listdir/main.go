// Command listdir prints the entries of the current directory, separated
// by spaces, or one per line with -1.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/flarebyte/hermes-keryx/internal/buildinfo"
	"github.com/flarebyte/hermes-keryx/keryx"
	"github.com/spf13/pflag"
)

func newListdir() *keryx.Command {
	return &keryx.Command{
		Name:    "listdir",
		Summary: "print the entries of the current directory",
		Version: buildinfo.Summary(),
		Flags: func(fs *pflag.FlagSet) {
			fs.BoolP("one-per-line", "1", false, "list one entry per line")
		},
		Run: runListdir,
	}
}

func runListdir(inv *keryx.Invocation) error {
	entries, err := os.ReadDir(".")
	if err != nil {
		return err
	}

	sep := " "
	if inv.Bool("one-per-line") {
		sep = "\n"
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	fmt.Fprintln(inv.Out, strings.Join(names, sep))
	return nil
}

func main() {
	keryx.Main(newListdir())
}

package keryx

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/pflag"
)

// Invocation carries everything a handler receives: the resolved command,
// its positional arguments, the output streams, and the parsed flag sets
// of the command and all its ancestors. It is populated once per dispatch
// and not mutated afterwards.
type Invocation struct {
	// Command is the resolved node being invoked.
	Command *Command

	// Args holds the positional arguments left after flag parsing.
	Args []string

	// Out and Err are the invocation's output and diagnostic streams.
	Out io.Writer
	Err io.Writer

	chain []*pflag.FlagSet // innermost first, root last
	path  []string
}

// FlagSet returns the parsed flag set of the invoked command itself.
func (inv *Invocation) FlagSet() *pflag.FlagSet {
	return inv.chain[0]
}

// lookupSet finds the nearest flag set, own first then ancestors, that
// declares name. Root flags are thereby readable from any descendant.
func (inv *Invocation) lookupSet(name string) *pflag.FlagSet {
	for _, fs := range inv.chain {
		if fs.Lookup(name) != nil {
			return fs
		}
	}
	panic(fmt.Sprintf("keryx: flag %q not declared on %q or its ancestors", name, inv.Command.Name))
}

// Bool returns the named bool flag, consulting ancestor commands when the
// invoked command does not declare it. It panics if no command on the
// resolved path declares the flag: that is a programming error, not user
// input.
func (inv *Invocation) Bool(name string) bool {
	v, err := inv.lookupSet(name).GetBool(name)
	if err != nil {
		panic(err)
	}
	return v
}

// String returns the named string flag, with the same lookup and panic
// semantics as Bool.
func (inv *Invocation) String(name string) string {
	v, err := inv.lookupSet(name).GetString(name)
	if err != nil {
		panic(err)
	}
	return v
}

// Path returns the resolved command names, root first.
func (inv *Invocation) Path() []string {
	return inv.path
}

// Usagef builds a UsageError attributed to the invoked command, for
// handlers that detect unusable input of their own (a missing external
// executable, say).
func (inv *Invocation) Usagef(format string, args ...any) *UsageError {
	return usageError(inv.Command, inv.path, fmt.Sprintf(format, args...))
}

// Delegate forwards the invocation to the named child's handler with the
// given arguments, producing the same output as if the child had been
// resolved from the command line directly.
func (inv *Invocation) Delegate(name string, args ...string) error {
	child, ok := inv.Command.Child(name)
	if !ok {
		return inv.Usagef("command %q has no child %q", inv.Command.Name, name)
	}
	path := append(inv.path[:len(inv.path):len(inv.path)], child.Name)
	return dispatch(child, args, inv.chain, inv.Out, inv.Err, path, false)
}

// dispatch resolves and invokes one node: parse the node's flags, descend
// into a matching child, or settle on this node's handler (or its default
// child). Exactly one handler runs per dispatch.
func dispatch(c *Command, args []string, parents []*pflag.FlagSet, out, errw io.Writer, path []string, root bool) error {
	fs := newFlagSet(c, path, root)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			_, _ = io.WriteString(out, renderHelp(c, path, fs))
			return nil
		}
		return usageError(c, path, err.Error())
	}
	if root && c.Version != "" {
		if v, _ := fs.GetBool("version"); v {
			fmt.Fprintf(out, "%s %s\n", c.Name, c.Version)
			return nil
		}
	}
	if err := checkRequiredFlags(c, path, fs); err != nil {
		return err
	}

	chain := append([]*pflag.FlagSet{fs}, parents...)
	rest := fs.Args()

	if len(rest) > 0 {
		if child, ok := c.Child(rest[0]); ok {
			return dispatch(child, rest[1:], chain, out, errw, append(path, child.Name), false)
		}
	}

	if c.Run == nil {
		if len(c.children) == 0 {
			return usageError(c, path, "command has no handler")
		}
		if len(rest) > 0 {
			return usageError(c, path, fmt.Sprintf("unknown command %q", rest[0]))
		}
		if c.Default != "" {
			child, ok := c.Child(c.Default)
			if !ok {
				return fmt.Errorf("keryx: default subcommand %q is not a child of %q", c.Default, c.Name)
			}
			return dispatch(child, rest, chain, out, errw, append(path, child.Name), false)
		}
		return usageError(c, path, "no subcommand specified")
	}

	if err := checkPositionals(c, path, rest); err != nil {
		return err
	}

	inv := &Invocation{
		Command: c,
		Args:    rest,
		Out:     out,
		Err:     errw,
		chain:   chain,
		path:    path,
	}
	return c.Run(inv)
}

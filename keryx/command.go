package keryx

import (
	"fmt"

	"github.com/spf13/pflag"
)

// Command is one node in a command tree: a named, documented unit of
// behavior with optional flags, positional arguments, subcommands and a
// handler. Trees are built once at startup with Subcommands and are not
// mutated afterwards.
type Command struct {
	// Name is the node's CLI name, unique among siblings. Declared names
	// are normalized with Slug, so a CamelCase identifier works too.
	Name string

	// Summary is a one-line description shown in parent help listings.
	Summary string

	// Help is the long description shown by --help. Optional; Summary is
	// used when empty.
	Help string

	// Version, when set on a root command, adds a --version flag that
	// prints "<name> <version>" and stops dispatch.
	Version string

	// Flags declares the node's flags on the given set. Flags declared on
	// a node are parsed before descending into its children and remain
	// readable from every descendant's Invocation.
	Flags func(fs *pflag.FlagSet)

	// Positional declares the node's positional arguments, checked after
	// flag parsing. A node with subcommands should not declare
	// positionals: leading positionals are consumed as subcommand names.
	Positional []Positional

	// Run is the node's handler. A node with children and no handler
	// requires a subcommand (or a Default child). When both Run and
	// children are present, Run wins only if the remaining arguments
	// start with no matching child name.
	Run func(inv *Invocation) error

	// Default names the child to delegate to when the node has no handler
	// and no arguments remain. Delegation output is identical to invoking
	// the child directly.
	Default string

	children []*Command
	byName   map[string]*Command
	parent   *Command
}

// Positional describes one declared positional argument.
type Positional struct {
	Name     string
	Required bool
	// Variadic marks the final positional as accepting any number of
	// trailing arguments.
	Variadic bool
}

// Subcommands attaches children to c in the given order and returns c.
// Child names are normalized with Slug; insertion order is preserved for
// help output. It panics if a sibling name repeats, since that is a
// construction-time programming error.
func (c *Command) Subcommands(children ...*Command) *Command {
	for _, child := range children {
		name := Slug(child.Name)
		if name == "" {
			panic("keryx: subcommand with empty name")
		}
		if _, exists := c.byName[name]; exists {
			panic(fmt.Sprintf("keryx: subcommand %q already registered on %q", name, c.Name))
		}
		child.Name = name
		child.parent = c
		if c.byName == nil {
			c.byName = make(map[string]*Command)
		}
		c.byName[name] = child
		c.children = append(c.children, child)
	}
	return c
}

// Child returns the direct child with the given name and whether it exists.
func (c *Command) Child(name string) (*Command, bool) {
	child, ok := c.byName[name]
	return child, ok
}

// Children returns the node's children in declaration order.
func (c *Command) Children() []*Command {
	return c.children
}

// Lookup descends through the tree by name and returns the node at the
// given path, e.g. root.Lookup("stash", "save").
func (c *Command) Lookup(path ...string) (*Command, error) {
	node := c
	for _, name := range path {
		child, ok := node.Child(name)
		if !ok {
			return nil, fmt.Errorf("command %q has no child %q", node.Name, name)
		}
		node = child
	}
	return node, nil
}

// Parent returns the node's parent, or nil for a root.
func (c *Command) Parent() *Command {
	return c.parent
}

// Root returns the top of the tree c belongs to.
func (c *Command) Root() *Command {
	node := c
	for node.parent != nil {
		node = node.parent
	}
	return node
}

// Path returns the command names from the root down to c.
func (c *Command) Path() []string {
	if c.parent == nil {
		return []string{c.Name}
	}
	return append(c.parent.Path(), c.Name)
}

// Walk calls fn for c and every descendant, depth-first in declaration
// order.
func (c *Command) Walk(fn func(*Command)) {
	fn(c)
	for _, child := range c.children {
		child.Walk(fn)
	}
}

package keryx

import (
	"fmt"
	"strings"

	"github.com/mitchellh/go-wordwrap"
	"github.com/spf13/pflag"
)

const helpWidth = 78

// usageLine renders the one-line synopsis for a command, e.g.
//
//	usage: gitmock stash save [flags]
func usageLine(c *Command, path []string) string {
	var b strings.Builder
	b.WriteString("usage: ")
	b.WriteString(strings.Join(path, " "))
	if hasFlags(c) {
		b.WriteString(" [flags]")
	}
	if len(c.children) > 0 {
		if c.Run != nil || c.Default != "" {
			b.WriteString(" [command]")
		} else {
			b.WriteString(" <command>")
		}
	}
	for _, p := range c.Positional {
		b.WriteString(" ")
		b.WriteString(positionalToken(p))
	}
	return b.String()
}

func positionalToken(p Positional) string {
	token := strings.ToUpper(p.Name)
	if p.Variadic {
		token += "..."
	}
	if !p.Required {
		token = "[" + token + "]"
	}
	return token
}

func hasFlags(c *Command) bool {
	if c.Flags == nil {
		return c.Version != ""
	}
	return true
}

// renderHelp produces the full --help output for a command: description,
// synopsis, subcommand listing in declaration order, and flag usages.
func renderHelp(c *Command, path []string, fs *pflag.FlagSet) string {
	var b strings.Builder

	description := c.Help
	if description == "" {
		description = c.Summary
	}
	if description != "" {
		b.WriteString(wordwrap.WrapString(description, helpWidth))
		b.WriteString("\n\n")
	}

	b.WriteString(usageLine(c, path))
	b.WriteString("\n")

	if len(c.children) > 0 {
		b.WriteString("\ncommands:\n")
		width := 0
		for _, child := range c.children {
			if len(child.Name) > width {
				width = len(child.Name)
			}
		}
		for _, child := range c.children {
			name := child.Name
			if child.Name == c.Default {
				name += "*"
			}
			b.WriteString(fmt.Sprintf("  %-*s  %s\n", width+1, name, child.Summary))
		}
		if c.Default != "" {
			b.WriteString("  (* runs when no command is given)\n")
		}
	}

	if usages := fs.FlagUsagesWrapped(helpWidth); strings.TrimSpace(usages) != "" {
		b.WriteString("\nflags:\n")
		b.WriteString(usages)
	}

	return b.String()
}

package keryx

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"
)

// requiredAnnotation marks flags that must end up non-empty after parsing.
// pflag itself has no required-flag support; like cobra, keryx records the
// requirement as a flag annotation and checks it post-parse.
const requiredAnnotation = "keryx_flag_required"

func newFlagSet(c *Command, path []string, root bool) *pflag.FlagSet {
	fs := pflag.NewFlagSet(strings.Join(path, " "), pflag.ContinueOnError)
	fs.Usage = func() {} // help and errors are rendered by the dispatcher
	if c.Flags != nil {
		c.Flags(fs)
	}
	if root && c.Version != "" && fs.Lookup("version") == nil {
		fs.Bool("version", false, "print the version and exit")
	}
	// Stop at the first positional so it can be matched against
	// subcommand names; leaves keep pflag's interspersed parsing.
	if len(c.children) > 0 {
		fs.SetInterspersed(false)
	}
	return fs
}

func checkRequiredFlags(c *Command, path []string, fs *pflag.FlagSet) error {
	var missing []string
	fs.VisitAll(func(f *pflag.Flag) {
		if f.Annotations[requiredAnnotation] == nil {
			return
		}
		if !f.Changed && f.Value.String() == "" {
			missing = append(missing, "--"+f.Name)
		}
	})
	if len(missing) == 0 {
		return nil
	}
	return usageError(c, path, "missing required flag: "+strings.Join(missing, ", "))
}

func checkPositionals(c *Command, path []string, args []string) error {
	variadic := false
	for i, p := range c.Positional {
		if p.Variadic {
			variadic = true
		}
		if i < len(args) {
			continue
		}
		if p.Required {
			return usageError(c, path, fmt.Sprintf("missing required argument %s", strings.ToUpper(p.Name)))
		}
	}
	if !variadic && len(args) > len(c.Positional) {
		return usageError(c, path, fmt.Sprintf("unexpected argument %q", args[len(c.Positional)]))
	}
	return nil
}

// StringEnv registers a string flag whose default is taken from the given
// environment variable. Precedence is CLI value, then environment, then
// fallback; when the variable is empty and no fallback is provided the
// flag becomes required. Help text is generated from the description and
// the variable's provenance.
func StringEnv(fs *pflag.FlagSet, name, envvar, fallback, description string) *string {
	if envvar == "" {
		panic("keryx: empty environment variable name for flag --" + name)
	}

	def := fallback
	source := "derived from"
	if v := os.Getenv(envvar); v != "" {
		def = v
		source = "provided by"
	}

	var help string
	if def != "" {
		help = fmt.Sprintf("%s (default %s envvar %s: %s)", description, source, envvar, def)
	} else {
		help = fmt.Sprintf("%s (required because envvar %s is empty)", description, envvar)
	}

	p := fs.String(name, def, help)
	if def == "" {
		if err := fs.SetAnnotation(name, requiredAnnotation, []string{envvar}); err != nil {
			panic(err)
		}
	}
	return p
}

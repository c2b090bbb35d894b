package keryx

import "strings"

const exitCodeUsage = 2

// UsageError reports malformed or unresolvable input: an unknown flag or
// subcommand, a missing required argument, a malformed value. It is
// terminal for the current invocation; Main prints it together with a
// synopsis of valid usage and exits with status 2.
type UsageError struct {
	// Command is the deepest node resolved before the failure; its usage
	// line is the synopsis shown to the user.
	Command *Command

	// Path holds the command names resolved so far, root first.
	Path []string

	// Msg names the offending token or missing piece.
	Msg string
}

func (e *UsageError) Error() string {
	if len(e.Path) == 0 {
		return e.Msg
	}
	return strings.Join(e.Path, " ") + ": " + e.Msg
}

// ExitCode reports the process exit status for the error.
func (e *UsageError) ExitCode() int { return exitCodeUsage }

// Synopsis returns the usage line for the failed command, newline
// terminated, or an empty string when no command was resolved.
func (e *UsageError) Synopsis() string {
	if e.Command == nil {
		return ""
	}
	return usageLine(e.Command, e.Path) + "\n"
}

func usageError(c *Command, path []string, msg string) *UsageError {
	return &UsageError{Command: c, Path: path, Msg: msg}
}

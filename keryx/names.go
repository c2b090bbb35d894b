package keryx

import (
	"strings"
	"unicode"

	"github.com/fatih/camelcase"
)

// Slug normalizes a declared command name to its CLI form: CamelCase
// words become kebab-case ("SaveAll" -> "save-all"), spaces and
// underscores become hyphens, and everything is lowercased. Digit runs
// stay attached to the preceding word ("listdir1" -> "listdir1").
func Slug(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}

	fields := strings.FieldsFunc(name, func(r rune) bool {
		return r == ' ' || r == '_' || r == '-'
	})

	var words []string
	for _, field := range fields {
		for _, part := range camelcase.Split(field) {
			if part == "" {
				continue
			}
			if len(words) > 0 && !hasLetter(part) {
				words[len(words)-1] += part
				continue
			}
			words = append(words, part)
		}
	}
	return strings.ToLower(strings.Join(words, "-"))
}

func hasLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}

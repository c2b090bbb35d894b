// Package testutil holds small filesystem helpers for the example
// program tests.
package testutil

import (
	"os"
	"path/filepath"
)

// WriteTree creates the given files under dir, creating parent
// directories as needed. Keys are slash-separated paths relative to dir.
func WriteTree(dir string, files map[string]string) error {
	for rel, content := range files {
		out := filepath.Join(dir, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
			return err
		}
		if err := os.WriteFile(out, []byte(content), 0o644); err != nil {
			return err
		}
	}
	return nil
}

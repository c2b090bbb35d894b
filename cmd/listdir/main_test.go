package main

import (
	"bytes"
	"os"
	"sort"
	"strings"
	"testing"

	"github.com/flarebyte/hermes-keryx/internal/testutil"
	"github.com/flarebyte/hermes-keryx/keryx"
)

func runListdirIn(t *testing.T, dir string, args ...string) string {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir %s: %v", dir, err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatalf("restore wd: %v", err)
		}
	})
	var out, errw bytes.Buffer
	if err := keryx.Execute(newListdir(), args, &out, &errw); err != nil {
		t.Fatalf("execute %v: %v", args, err)
	}
	return out.String()
}

func TestListdirSeparators(t *testing.T) {
	dir := t.TempDir()
	if err := testutil.WriteTree(dir, map[string]string{
		"alpha.txt": "",
		"beta.txt":  "",
		"sub/x.txt": "",
	}); err != nil {
		t.Fatalf("write tree: %v", err)
	}

	spaced := runListdirIn(t, dir)
	lined := runListdirIn(t, dir, "-1")

	if !strings.HasSuffix(spaced, "\n") || !strings.HasSuffix(lined, "\n") {
		t.Fatalf("output not newline terminated: %q / %q", spaced, lined)
	}

	// Same entries either way, differing only in separator.
	bySpace := strings.Fields(spaced)
	byLine := strings.Split(strings.TrimSuffix(lined, "\n"), "\n")
	sort.Strings(bySpace)
	sort.Strings(byLine)

	want := []string{"alpha.txt", "beta.txt", "sub"}
	if strings.Join(bySpace, ",") != strings.Join(want, ",") {
		t.Fatalf("unexpected entries: %v", bySpace)
	}
	if strings.Join(byLine, ",") != strings.Join(bySpace, ",") {
		t.Fatalf("-1 entries %v differ from default %v", byLine, bySpace)
	}

	if strings.Count(spaced, "\n") != 1 {
		t.Fatalf("default output should be a single line: %q", spaced)
	}
	if strings.Count(lined, "\n") != len(want) {
		t.Fatalf("-1 output should hold one entry per line: %q", lined)
	}
}

func TestListdirEmptyDirectory(t *testing.T) {
	out := runListdirIn(t, t.TempDir())
	if out != "\n" {
		t.Fatalf("unexpected output for empty directory: %q", out)
	}
}

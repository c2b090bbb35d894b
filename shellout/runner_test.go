package shellout

import (
	"bytes"
	"errors"
	"os/exec"
	"strings"
	"testing"
)

func TestExecRunnerNotFound(t *testing.T) {
	_, err := ExecRunner{}.Run(Cmd{Name: "keryx-definitely-not-a-real-binary"})
	var notFound *NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError, got %T: %v", err, err)
	}
	if !strings.Contains(notFound.Error(), "not available") {
		t.Fatalf("unexpected message: %q", notFound.Error())
	}
}

func TestExecRunnerCapturesOutput(t *testing.T) {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}

	var out bytes.Buffer
	code, err := ExecRunner{}.Run(Cmd{
		Name:   "sh",
		Args:   []string{"-c", "echo hello"},
		Stdout: &out,
	})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if code != 0 {
		t.Fatalf("unexpected exit code %d", code)
	}
	if out.String() != "hello\n" {
		t.Fatalf("unexpected output: %q", out.String())
	}
}

func TestExecRunnerPropagatesExitCode(t *testing.T) {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}

	code, err := ExecRunner{}.Run(Cmd{Name: "sh", Args: []string{"-c", "exit 3"}})
	if code != 3 {
		t.Fatalf("unexpected exit code %d", code)
	}
	var ee *ExitError
	if !errors.As(err, &ee) {
		t.Fatalf("expected ExitError, got %T: %v", err, err)
	}
	if ee.ExitCode() != 3 {
		t.Fatalf("unexpected ExitCode() %d", ee.ExitCode())
	}
}

func TestCmdString(t *testing.T) {
	if got := (Cmd{Name: "ls"}).String(); got != "ls" {
		t.Fatalf("unexpected: %q", got)
	}
	if got := (Cmd{Name: "ls", Args: []string{"-la", "/tmp"}}).String(); got != "ls -la /tmp" {
		t.Fatalf("unexpected: %q", got)
	}
}

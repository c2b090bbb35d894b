package main

import (
	"bytes"
	"testing"

	"github.com/flarebyte/hermes-keryx/keryx"
	"github.com/flarebyte/hermes-keryx/shellout"
)

type recordingRunner struct {
	calls []shellout.Cmd
}

func (r *recordingRunner) Run(c shellout.Cmd) (int, error) {
	r.calls = append(r.calls, c)
	return 0, nil
}

func runManage(t *testing.T, r shellout.Runner, args ...string) (string, string) {
	t.Helper()
	var out, errw bytes.Buffer
	if err := keryx.Execute(newManage(r), args, &out, &errw); err != nil {
		t.Fatalf("execute %v: %v", args, err)
	}
	return out.String(), errw.String()
}

func TestManageTestRunsGoTest(t *testing.T) {
	r := &recordingRunner{}
	runManage(t, r, "test")
	if len(r.calls) != 1 {
		t.Fatalf("expected 1 command, got %d", len(r.calls))
	}
	if got := r.calls[0].String(); got != "go test ./..." {
		t.Fatalf("unexpected command: %q", got)
	}
}

func TestManageBuildRunsGoBuild(t *testing.T) {
	r := &recordingRunner{}
	runManage(t, r, "build")
	if len(r.calls) != 1 || r.calls[0].String() != "go build ./..." {
		t.Fatalf("unexpected calls: %v", r.calls)
	}
}

func TestManageHonorsGoBinEnv(t *testing.T) {
	t.Setenv("MANAGE_GO", "go1.24.1")
	r := &recordingRunner{}
	runManage(t, r, "test")
	if len(r.calls) != 1 || r.calls[0].Name != "go1.24.1" {
		t.Fatalf("MANAGE_GO not honored: %v", r.calls)
	}
}

func TestManageGoBinFlagBeatsEnv(t *testing.T) {
	t.Setenv("MANAGE_GO", "go1.24.1")
	r := &recordingRunner{}
	runManage(t, r, "--go-bin", "go-custom", "test")
	if len(r.calls) != 1 || r.calls[0].Name != "go-custom" {
		t.Fatalf("--go-bin not honored: %v", r.calls)
	}
}

func TestManageDryRunEchoesOnly(t *testing.T) {
	r := &recordingRunner{}
	_, errw := runManage(t, r, "-d", "test")
	if len(r.calls) != 0 {
		t.Fatalf("dry run executed commands: %v", r.calls)
	}
	if errw != "> go test ./...\n" {
		t.Fatalf("unexpected echo: %q", errw)
	}
}

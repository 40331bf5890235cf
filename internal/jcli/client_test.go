package jcli

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"
)

type call struct {
	name string
	args []string
}

type fakeRunner struct {
	calls  []call
	result Result
	err    error
}

func (f *fakeRunner) Run(ctx context.Context, name string, args ...string) (Result, error) {
	f.calls = append(f.calls, call{name: name, args: args})
	return f.result, f.err
}

func TestProbeSuccess(t *testing.T) {
	runner := &fakeRunner{}
	if !Probe(context.Background(), runner, "/usr/bin/jcli") {
		t.Fatalf("expected probe to succeed")
	}
	if len(runner.calls) != 1 {
		t.Fatalf("expected one call, got %d", len(runner.calls))
	}
	got := runner.calls[0]
	if got.name != "/usr/bin/jcli" || strings.Join(got.args, " ") != "--version" {
		t.Fatalf("unexpected call %+v", got)
	}
}

func TestProbeFailure(t *testing.T) {
	runner := &fakeRunner{result: Result{ExitCode: 1}}
	if Probe(context.Background(), runner, "/usr/bin/jcli") {
		t.Fatalf("expected probe to fail on non-zero exit")
	}
}

func TestProbeRunError(t *testing.T) {
	runner := &fakeRunner{err: errors.New("exec: not found")}
	if Probe(context.Background(), runner, "/usr/bin/jcli") {
		t.Fatalf("expected probe to fail on run error")
	}
}

func TestWhich(t *testing.T) {
	runner := &fakeRunner{result: Result{Stdout: "/home/u/.local/bin/jcli\n"}}
	path, ok := Which(context.Background(), runner, "jcli")
	if !ok || path != "/home/u/.local/bin/jcli" {
		t.Fatalf("unexpected which result %q %v", path, ok)
	}

	runner = &fakeRunner{result: Result{ExitCode: 1}}
	if _, ok := Which(context.Background(), runner, "jcli"); ok {
		t.Fatalf("expected which to fail")
	}
}

func TestClientMyselfReportsStderr(t *testing.T) {
	runner := &fakeRunner{result: Result{ExitCode: 2, Stderr: "401 Unauthorized\n"}}
	client := NewClient("/bin/jcli", runner)

	err := client.Myself(context.Background())
	var cmdErr *CommandError
	if !errors.As(err, &cmdErr) {
		t.Fatalf("expected CommandError, got %v", err)
	}
	if cmdErr.ExitCode != 2 {
		t.Fatalf("expected exit code 2, got %d", cmdErr.ExitCode)
	}
	if !strings.Contains(err.Error(), "401 Unauthorized") {
		t.Fatalf("expected stderr in error, got %q", err.Error())
	}
}

func TestClientListIssuesArgs(t *testing.T) {
	runner := &fakeRunner{result: Result{Stdout: `{"issues":[]}`}}
	client := NewClient("/bin/jcli", runner)

	out, err := client.ListIssues(context.Background(), 10)
	if err != nil {
		t.Fatalf("ListIssues() error: %v", err)
	}
	if string(out) != `{"issues":[]}` {
		t.Fatalf("unexpected output %s", out)
	}
	want := "issues list --max-issues 10 --output json"
	if got := strings.Join(runner.calls[0].args, " "); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestClientCreateIssue(t *testing.T) {
	runner := &fakeRunner{result: Result{Stdout: "Created NSTL-42\n"}}
	client := NewClient("/bin/jcli", runner)

	out, err := client.CreateIssue(context.Background(), []string{"--project", "NSTL"})
	if err != nil {
		t.Fatalf("CreateIssue() error: %v", err)
	}
	if out != "Created NSTL-42\n" {
		t.Fatalf("unexpected stdout %q", out)
	}
	want := "issues create --project NSTL"
	if got := strings.Join(runner.calls[0].args, " "); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestExecRunnerExitCodes(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}
	dir := t.TempDir()
	script := filepath.Join(dir, "fake-jcli")
	body := "#!/bin/sh\nif [ \"$1\" = \"--version\" ]; then echo jcli 1.0; exit 0; fi\necho boom >&2\nexit 3\n"
	if err := os.WriteFile(script, []byte(body), 0o755); err != nil {
		t.Fatalf("write script: %v", err)
	}

	res, err := ExecRunner{}.Run(context.Background(), script, "--version")
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if !res.Success() || strings.TrimSpace(res.Stdout) != "jcli 1.0" {
		t.Fatalf("unexpected result %+v", res)
	}

	res, err = ExecRunner{}.Run(context.Background(), script, "myself")
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if res.ExitCode != 3 || strings.TrimSpace(res.Stderr) != "boom" {
		t.Fatalf("unexpected result %+v", res)
	}

	if !Probe(context.Background(), ExecRunner{}, script) {
		t.Fatalf("expected probe of script to succeed")
	}
}

func TestExecRunnerMissingBinary(t *testing.T) {
	_, err := ExecRunner{}.Run(context.Background(), filepath.Join(t.TempDir(), "missing"))
	if err == nil {
		t.Fatalf("expected error for missing binary")
	}
}

func TestExecRunnerTimeout(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := ExecRunner{}.Run(ctx, "/bin/sh", "-c", "exec sleep 5")
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
}

func TestCommandLineQuotes(t *testing.T) {
	client := NewClient("/usr/local/bin/jcli", &fakeRunner{})

	got := client.CommandLine("issues", "create", "--summary", "Fix login bug", "--set-field", "Epic Name", "")
	want := `/usr/local/bin/jcli issues create --summary "Fix login bug" --set-field "Epic Name" ""`
	if got != want {
		t.Fatalf("expected %s, got %s", want, got)
	}
}

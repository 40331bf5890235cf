// Package jcli wraps the subset of the jcli command line that issue creation
// relies on. Only exit status and captured output are part of the contract.
package jcli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	CommandName = "jcli"

	ProbeTimeout = 5 * time.Second
	AuthTimeout  = 10 * time.Second
	ListTimeout  = 15 * time.Second
)

// CommandError describes a jcli invocation that exited non-zero.
type CommandError struct {
	Args     []string
	ExitCode int
	Stderr   string
}

func (e *CommandError) Error() string {
	msg := fmt.Sprintf("jcli %s exited with status %d", strings.Join(e.Args, " "), e.ExitCode)
	if stderr := strings.TrimSpace(e.Stderr); stderr != "" {
		msg += ": " + stderr
	}
	return msg
}

// Probe reports whether path answers `--version` successfully within
// ProbeTimeout.
func Probe(ctx context.Context, runner Runner, path string) bool {
	ctx, cancel := context.WithTimeout(ctx, ProbeTimeout)
	defer cancel()

	res, err := runner.Run(ctx, path, "--version")
	return err == nil && res.Success()
}

// Which asks the system `which` for name. It returns false when the lookup
// fails or prints nothing.
func Which(ctx context.Context, runner Runner, name string) (string, bool) {
	ctx, cancel := context.WithTimeout(ctx, ProbeTimeout)
	defer cancel()

	res, err := runner.Run(ctx, "which", name)
	if err != nil || !res.Success() {
		return "", false
	}
	path := strings.TrimSpace(res.Stdout)
	if path == "" {
		return "", false
	}
	return path, true
}

type Client struct {
	Path   string
	Runner Runner
}

func NewClient(path string, runner Runner) *Client {
	return &Client{Path: path, Runner: runner}
}

// Myself checks that jcli can authenticate against JIRA.
func (c *Client) Myself(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, AuthTimeout)
	defer cancel()

	_, err := c.run(ctx, "myself")
	return err
}

// ListIssues returns the raw JSON emitted by `issues list`.
func (c *Client) ListIssues(ctx context.Context, maxIssues int) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, ListTimeout)
	defer cancel()

	res, err := c.run(ctx, "issues", "list", "--max-issues", strconv.Itoa(maxIssues), "--output", "json")
	if err != nil {
		return nil, err
	}
	return []byte(res.Stdout), nil
}

// CreateIssue runs `issues create` with args and returns jcli's stdout.
func (c *Client) CreateIssue(ctx context.Context, args []string) (string, error) {
	full := append([]string{"issues", "create"}, args...)
	res, err := c.run(ctx, full...)
	if err != nil {
		return "", err
	}
	return res.Stdout, nil
}

// CommandLine renders the invocation for display, quoting arguments that
// would not survive a shell as a single word.
func (c *Client) CommandLine(args ...string) string {
	parts := make([]string, 0, len(args)+1)
	for _, arg := range append([]string{c.Path}, args...) {
		if arg == "" || strings.ContainsAny(arg, " \t\n\"'") {
			arg = strconv.Quote(arg)
		}
		parts = append(parts, arg)
	}
	return strings.Join(parts, " ")
}

func (c *Client) run(ctx context.Context, args ...string) (Result, error) {
	res, err := c.Runner.Run(ctx, c.Path, args...)
	if err != nil {
		return res, err
	}
	if !res.Success() {
		return res, &CommandError{Args: args, ExitCode: res.ExitCode, Stderr: res.Stderr}
	}
	return res, nil
}

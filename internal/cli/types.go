package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/duailibe/jcli-create/internal/jcli"
	"github.com/duailibe/jcli-create/internal/jira"
	"github.com/duailibe/jcli-create/internal/pathstore"
)

type Dependencies struct {
	In     io.Reader
	Out    io.Writer
	Err    io.Writer
	Now    func() time.Time
	Logger *slog.Logger

	Getenv   func(string) string
	LookPath func(string) (string, error)

	PathStore *pathstore.Store
	Runner    jcli.Runner

	JiraConfigPath string
	NewJiraClient  func(cfg jira.Config, timeout time.Duration) jira.API
}

type ExitError struct {
	Code int
	Err  error
}

func (e ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit %d", e.Code)
	}
	return e.Err.Error()
}

func exitError(code int, err error) error {
	if err == nil {
		return ExitError{Code: code, Err: errors.New("unknown error")}
	}
	return ExitError{Code: code, Err: err}
}

// silentExit ends the run with code after the failure was already shown.
func silentExit(code int) error {
	return ExitError{Code: code}
}

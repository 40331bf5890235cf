package cli

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"time"

	"github.com/alecthomas/kong"

	"github.com/duailibe/jcli-create/internal/jcli"
	"github.com/duailibe/jcli-create/internal/jira"
	"github.com/duailibe/jcli-create/internal/pathstore"
	"github.com/duailibe/jcli-create/internal/ui"
)

func Execute() int {
	return Run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
}

func Run(args []string, in io.Reader, out io.Writer, errOut io.Writer) int {
	storePath, err := pathstore.DefaultStorePath()
	if err != nil {
		_, _ = errOut.Write([]byte(err.Error() + "\n"))
		return 1
	}
	// A missing home directory only disables the REST fallback.
	jiraConfig, _ := jira.DefaultConfigPath()

	deps := Dependencies{
		In:             in,
		Out:            out,
		Err:            errOut,
		Now:            time.Now,
		Logger:         newLogger(errOut, os.Getenv),
		Getenv:         os.Getenv,
		LookPath:       exec.LookPath,
		PathStore:      pathstore.NewStore(storePath),
		Runner:         jcli.ExecRunner{},
		JiraConfigPath: jiraConfig,
		NewJiraClient: func(cfg jira.Config, timeout time.Duration) jira.API {
			return jira.NewClient(cfg, timeout)
		},
	}

	return ExecuteWith(deps, args)
}

// newLogger logs to w at debug level when DEBUG is "1" or "true", and only
// warnings otherwise.
func newLogger(w io.Writer, getenv func(string) string) *slog.Logger {
	level := slog.LevelWarn
	if v := getenv("DEBUG"); v == "1" || v == "true" {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func ExecuteWith(deps Dependencies, args []string) (code int) {
	cli := &CLI{}

	parser, err := kong.New(
		cli,
		kong.Name("jcli-create"),
		kong.Description("Create a JIRA issue interactively using jcli"),
		kong.Writers(deps.Out, deps.Err),
		kong.Exit(func(code int) { panic(exitPanic{Code: code}) }),
	)
	if err != nil {
		_, _ = deps.Err.Write([]byte(err.Error() + "\n"))
		return 1
	}

	defer func() {
		if r := recover(); r != nil {
			if exit := parseExitPanic(r); exit != nil {
				code = exit.Code
				return
			}
			panic(r)
		}
	}()

	if _, err := parser.Parse(args); err != nil {
		return handleExit(deps, wrapParseError(err))
	}

	if deps.Logger == nil {
		deps.Logger = slog.New(slog.DiscardHandler)
	}
	cmdCtx := &commandContext{deps: deps}
	if err := cli.Run(context.Background(), cmdCtx); err != nil {
		return handleExit(deps, err)
	}
	return 0
}

type exitPanic struct {
	Code int
}

func parseExitPanic(val any) *exitPanic {
	switch cast := val.(type) {
	case exitPanic:
		return &cast
	case *exitPanic:
		return cast
	default:
		return nil
	}
}

func wrapParseError(err error) error {
	if err == nil {
		return nil
	}
	var parseErr *kong.ParseError
	if errors.As(err, &parseErr) {
		return exitError(2, parseErr)
	}
	return err
}

func handleExit(deps Dependencies, err error) int {
	if err == nil {
		return 0
	}
	var exitErr ExitError
	if errors.As(err, &exitErr) {
		if exitErr.Err != nil {
			ui.NewPrinter(deps.Err).Error(exitErr.Err.Error())
		}
		return exitErr.Code
	}
	ui.NewPrinter(deps.Err).Error(err.Error())
	return mapErrorToExitCode(err)
}

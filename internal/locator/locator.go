// Package locator finds a working jcli executable, remembering the answer
// between runs.
package locator

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/duailibe/jcli-create/internal/jcli"
	"github.com/duailibe/jcli-create/internal/pathstore"
)

// VirtualEnvVar marks an active Python virtual environment, where jcli is
// usually installed.
const VirtualEnvVar = "VIRTUAL_ENV"

const systemPath = "/usr/local/bin/jcli"

// Store persists the chosen location.
type Store interface {
	Load() (string, bool, error)
	Save(path string) error
	Delete() error
	Location() string
}

// Asker is the slice of the prompter used when discovery needs the user.
type Asker interface {
	Input(label, def string) (string, error)
	Select(title string, items []string, defaultIndex int) (string, error)
}

// Reporter shows discovery progress.
type Reporter interface {
	Header(text string)
	Success(text string)
	Error(text string)
	Info(text string)
}

type Locator struct {
	Store  Store
	Runner jcli.Runner
	Ask    Asker
	Out    Reporter
	Logger *slog.Logger

	Getenv     func(string) string
	LookPath   func(string) (string, error)
	HomeDir    func() (string, error)
	Exists     func(string) bool
	Executable func(string) bool
}

func New(store Store, runner jcli.Runner, ask Asker, out Reporter, logger *slog.Logger) *Locator {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Locator{
		Store:      store,
		Runner:     runner,
		Ask:        ask,
		Out:        out,
		Logger:     logger,
		Getenv:     os.Getenv,
		LookPath:   exec.LookPath,
		HomeDir:    os.UserHomeDir,
		Exists:     fileExists,
		Executable: pathstore.IsExecutable,
	}
}

// Locate returns a verified jcli path: the saved one if it still works,
// otherwise the best detected installation, otherwise one typed by the user.
// The result is saved before it is returned.
func (l *Locator) Locate(ctx context.Context) (string, error) {
	l.Out.Header("JCLI LOCATION DETECTION")

	if path, ok := l.saved(ctx); ok {
		return path, nil
	}

	var working []string
	for _, candidate := range l.Candidates(ctx) {
		ok := jcli.Probe(ctx, l.Runner, candidate)
		l.Logger.Debug("probed jcli candidate", "path", candidate, "ok", ok)
		if ok {
			working = append(working, candidate)
			l.Out.Success(fmt.Sprintf("Found working jcli at: %s", candidate))
		}
	}

	if len(working) > 0 {
		selected, err := l.choose(working)
		if err != nil {
			return "", err
		}
		l.save(selected)
		return selected, nil
	}

	return l.askForPath(ctx)
}

func (l *Locator) saved(ctx context.Context) (string, bool) {
	path, ok, err := l.Store.Load()
	if err != nil {
		l.Out.Error(fmt.Sprintf("Failed to load saved jcli path: %v", err))
		return "", false
	}
	if !ok {
		return "", false
	}

	l.Out.Info(fmt.Sprintf("Found saved jcli path: %s", path))
	if jcli.Probe(ctx, l.Runner, path) {
		l.Out.Success(fmt.Sprintf("Using saved jcli at: %s", path))
		return path, true
	}

	l.Out.Error("Saved jcli path is no longer working, searching for new location...")
	if err := l.Store.Delete(); err != nil {
		l.Logger.Debug("remove stale jcli path", "error", err)
	}
	return "", false
}

// Candidates lists the places jcli is commonly installed, most specific
// first, without duplicates.
func (l *Locator) Candidates(ctx context.Context) []string {
	var out []string
	add := func(path string) {
		if path == "" {
			return
		}
		for _, existing := range out {
			if existing == path {
				return
			}
		}
		out = append(out, path)
	}

	if venv := l.Getenv(VirtualEnvVar); venv != "" {
		add(filepath.Join(venv, "bin", jcli.CommandName))
	}
	if path, err := l.LookPath(jcli.CommandName); err == nil {
		add(path)
	}
	add(systemPath)
	if home, err := l.HomeDir(); err == nil {
		add(filepath.Join(home, ".local", "bin", jcli.CommandName))
	}
	if path, ok := jcli.Which(ctx, l.Runner, jcli.CommandName); ok {
		add(path)
	}
	return out
}

func (l *Locator) choose(working []string) (string, error) {
	if len(working) == 1 {
		l.Out.Success(fmt.Sprintf("Using jcli at: %s", working[0]))
		return working[0], nil
	}

	if venv := l.Getenv(VirtualEnvVar); venv != "" {
		for _, path := range working {
			if strings.HasPrefix(path, venv) {
				l.Out.Success(fmt.Sprintf("Using jcli from virtual environment: %s", path))
				return path, nil
			}
		}
	}

	l.Out.Info("Multiple jcli installations found:")
	selected, err := l.Ask.Select("Select jcli installation:", working, 0)
	if err != nil {
		return "", fmt.Errorf("select jcli installation: %w", err)
	}
	return selected, nil
}

func (l *Locator) askForPath(ctx context.Context) (string, error) {
	l.Out.Error("Could not automatically detect jcli installation")
	l.Out.Info("Common locations to check:")
	l.Out.Info("- In virtual environment: $VIRTUAL_ENV/bin/jcli")
	l.Out.Info("- User install: ~/.local/bin/jcli")
	l.Out.Info("- System install: " + systemPath)

	for {
		answer, err := l.Ask.Input("Enter full path to jcli command", "")
		if err != nil {
			return "", fmt.Errorf("read jcli path: %w", err)
		}
		if answer == "" {
			l.Out.Error("Path is required!")
			continue
		}

		path := l.expandHome(answer)
		if !l.Exists(path) {
			l.Out.Error(fmt.Sprintf("File not found: %s", path))
			continue
		}
		if !l.Executable(path) {
			l.Out.Error(fmt.Sprintf("File is not executable: %s", path))
			continue
		}
		if !jcli.Probe(ctx, l.Runner, path) {
			l.Out.Error(fmt.Sprintf("Command failed at %s", path))
			continue
		}

		l.Out.Success(fmt.Sprintf("Valid jcli found at: %s", path))
		l.save(path)
		return path, nil
	}
}

// save reports a failed write but never fails discovery; the path still
// works for this run.
func (l *Locator) save(path string) {
	if err := l.Store.Save(path); err != nil {
		l.Out.Error(fmt.Sprintf("Failed to save jcli path: %v", err))
		return
	}
	l.Out.Success(fmt.Sprintf("Saved jcli path to %s", l.Store.Location()))
}

func (l *Locator) expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := l.HomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

package cli

import (
	"os"
	"os/exec"
	"time"

	"github.com/duailibe/jcli-create/internal/jcli"
	"github.com/duailibe/jcli-create/internal/locator"
	"github.com/duailibe/jcli-create/internal/projects"
	"github.com/duailibe/jcli-create/internal/prompt"
	"github.com/duailibe/jcli-create/internal/ui"
)

type commandContext struct {
	deps Dependencies

	out *ui.Printer
	ask *prompt.Prompter
}

func (c *commandContext) printer() *ui.Printer {
	if c.out == nil {
		c.out = ui.NewPrinter(c.deps.Out)
	}
	return c.out
}

func (c *commandContext) prompter() *prompt.Prompter {
	if c.ask == nil {
		c.ask = prompt.New(c.deps.In, c.printer())
	}
	return c.ask
}

func (c *commandContext) now() time.Time {
	if c.deps.Now == nil {
		return time.Now()
	}
	return c.deps.Now()
}

func (c *commandContext) locator() *locator.Locator {
	loc := locator.New(c.deps.PathStore, c.deps.Runner, c.prompter(), c.printer(), c.deps.Logger)
	if c.deps.Getenv != nil {
		loc.Getenv = c.deps.Getenv
	} else {
		loc.Getenv = os.Getenv
	}
	if c.deps.LookPath != nil {
		loc.LookPath = c.deps.LookPath
	} else {
		loc.LookPath = exec.LookPath
	}
	return loc
}

func (c *commandContext) projectChain(client *jcli.Client) projects.Chain {
	return projects.Chain{
		Providers: []projects.Provider{
			projects.IssueListProvider{Lister: client, MaxIssues: projects.DefaultMaxIssues},
			projects.ConnectorProvider{ConfigPath: c.deps.JiraConfigPath, NewClient: c.deps.NewJiraClient},
			projects.DefaultStatic(),
		},
		Logger: c.deps.Logger,
	}
}

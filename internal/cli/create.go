package cli

import (
	"context"
	"errors"

	"github.com/duailibe/jcli-create/internal/issue"
	"github.com/duailibe/jcli-create/internal/jcli"
	"github.com/duailibe/jcli-create/internal/projects"
)

func runCreate(ctx context.Context, cmdCtx *commandContext) error {
	out := cmdCtx.printer()
	out.Header("JIRA Issue Creation Tool")
	out.Info("This tool will guide you through creating a new JIRA issue.")
	out.Info("Tip: Use --clear-path to reset saved jcli location")

	path, err := cmdCtx.locator().Locate(ctx)
	if err != nil {
		out.Error("Could not find a working jcli installation")
		return exitError(1, err)
	}
	client := jcli.NewClient(path, cmdCtx.deps.Runner)

	if err := checkConnection(ctx, cmdCtx, client); err != nil {
		return err
	}

	draft, err := collectDraft(ctx, cmdCtx, client)
	if err != nil {
		msg, _ := describeFailure(err)
		return exitError(1, errors.New(msg))
	}

	out.Header("CONFIRMATION")
	printDraft(out, draft)
	out.Println()
	ok, err := cmdCtx.prompter().Confirm("Create this issue?")
	if err != nil {
		msg, _ := describeFailure(err)
		return exitError(1, errors.New(msg))
	}
	if !ok {
		out.Info("Issue creation cancelled.")
		return nil
	}

	return createIssue(ctx, cmdCtx, client, draft)
}

func checkConnection(ctx context.Context, cmdCtx *commandContext, client *jcli.Client) error {
	out := cmdCtx.printer()
	out.Info("Testing jcli connection...")

	err := client.Myself(ctx)
	if err == nil {
		out.Success("jcli is connected and ready!")
		return nil
	}
	cmdCtx.deps.Logger.Debug("jcli myself failed", "error", err)

	msg, stderr := describeFailure(err)
	if _, isCmd := asCommandError(err); isCmd {
		out.Error("jcli failed to authenticate")
		out.Info("Please check your JIRA configuration in ~/.jira.yml")
		if stderr != "" {
			out.Error("Error: " + stderr)
		}
		return silentExit(1)
	}
	out.Error(msg)
	out.Info("Please check your JIRA configuration and network connection")
	return silentExit(1)
}

func collectDraft(ctx context.Context, cmdCtx *commandContext, client *jcli.Client) (issue.Draft, error) {
	out := cmdCtx.printer()
	ask := cmdCtx.prompter()
	var draft issue.Draft

	out.Header("PROJECT SELECTION")
	available, source := cmdCtx.projectChain(client).Resolve(ctx)
	if len(available) == 0 {
		available = projects.DefaultStatic().List
		source = projects.StaticName
	}
	if source == projects.StaticName {
		out.Info("Using default project list (could not fetch from jcli)")
	}
	selected, err := ask.Select("Select project:", available, issue.DefaultProjectIndex(available))
	if err != nil {
		return draft, err
	}
	draft.ProjectLabel = selected
	draft.Project = issue.ExtractProjectKey(selected)

	out.Header("ISSUE TYPE")
	if draft.Type, err = ask.Select("Select issue type:", issue.Types(), 0); err != nil {
		return draft, err
	}

	out.Header("ISSUE SUMMARY")
	if draft.Summary, err = ask.Required("Enter issue summary", "Summary is required!"); err != nil {
		return draft, err
	}

	if draft.Description, err = issue.DescribeFor(draft.Type, ask, out); err != nil {
		return draft, err
	}

	if draft.IsEpic() {
		out.Header("EPIC NAME")
		out.Info("Epic issues require an Epic Name field to be set.")
		if draft.EpicName, err = ask.Input("Enter Epic Name", draft.Summary); err != nil {
			return draft, err
		}
	}

	out.Header("SELECT DUE DATE")
	if draft.DueDate, err = ask.PickDate(cmdCtx.now()); err != nil {
		return draft, err
	}

	out.Header("PRIORITY SELECTION")
	if draft.Priority, err = ask.Select("Select priority:", issue.PriorityOptions(draft.Project), issue.DefaultPriorityIndex); err != nil {
		return draft, err
	}

	return draft, nil
}

func createIssue(ctx context.Context, cmdCtx *commandContext, client *jcli.Client, draft issue.Draft) error {
	out := cmdCtx.printer()
	out.Header("CREATING ISSUE")

	args := draft.CreateArgs()
	out.Info("Running: " + client.CommandLine(append([]string{"issues", "create"}, args...)...))

	stdout, err := client.CreateIssue(ctx, args)
	if err != nil {
		msg, stderr := describeFailure(err)
		out.Error("Failed to create issue: " + msg)
		if stderr != "" {
			out.Println("Error output: " + stderr)
		}
		return silentExit(1)
	}

	out.Success("Issue created successfully!")
	out.Println(stdout)
	return nil
}

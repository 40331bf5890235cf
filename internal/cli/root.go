package cli

import (
	"context"
	"fmt"
)

type CLI struct {
	ClearPath bool `name:"clear-path" help:"Clear saved jcli path"`
}

func (c *CLI) Run(ctx context.Context, cmdCtx *commandContext) error {
	if c.ClearPath {
		return clearSavedPath(cmdCtx)
	}
	return runCreate(ctx, cmdCtx)
}

func clearSavedPath(ctx *commandContext) error {
	out := ctx.printer()
	store := ctx.deps.PathStore
	if store == nil || !store.Exists() {
		out.Info("No saved jcli path found")
		return nil
	}
	if err := store.Delete(); err != nil {
		return exitError(1, fmt.Errorf("clear saved jcli path: %w", err))
	}
	out.Success("Cleared saved jcli path")
	return nil
}

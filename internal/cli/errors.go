package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/duailibe/jcli-create/internal/jcli"
	"github.com/duailibe/jcli-create/internal/prompt"
)

func mapErrorToExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return 1
}

// describeFailure turns a jcli failure into a message and the stderr jcli
// left behind, if any.
func describeFailure(err error) (string, string) {
	if errors.Is(err, context.DeadlineExceeded) {
		return "jcli command timed out", ""
	}
	if errors.Is(err, prompt.ErrInputClosed) {
		return "input closed before the issue was complete", ""
	}
	if cmdErr, ok := asCommandError(err); ok {
		return fmt.Sprintf("jcli exited with status %d", cmdErr.ExitCode), strings.TrimSpace(cmdErr.Stderr)
	}
	return err.Error(), ""
}

func asCommandError(err error) (*jcli.CommandError, bool) {
	var cmdErr *jcli.CommandError
	if errors.As(err, &cmdErr) {
		return cmdErr, true
	}
	return nil, false
}

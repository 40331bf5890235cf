package cli

import (
	"github.com/duailibe/jcli-create/internal/issue"
	"github.com/duailibe/jcli-create/internal/ui"
)

func printDraft(out *ui.Printer, draft issue.Draft) {
	out.Field("Project", draft.ProjectLabel)
	out.Field("Issue Type", draft.Type)
	out.Field("Summary", draft.Summary)
	out.Field("Description", orNone(draft.Description))
	if draft.EpicName != "" {
		out.Field("Epic Name", draft.EpicName)
	}
	out.Field("Due Date", orNone(draft.DueDate))
	out.Field("Priority", draft.Priority)
}

func orNone(value string) string {
	if value == "" {
		return "(none)"
	}
	return value
}

// Package issue holds the draft collected from the user and turns it into
// jcli arguments.
package issue

import "strings"

const (
	TypeTask = "Task"
	TypeEpic = "Epic"
)

// DefaultPriorityIndex selects "Normal".
const DefaultPriorityIndex = 3

// PreferredProject is offered as the default project when it is available.
const PreferredProject = "NSTL"

// Types lists the issue types offered to the user, default first.
func Types() []string {
	return []string{TypeTask, TypeEpic}
}

// PriorityOptions returns the standard JIRA priorities, highest first. The
// list does not currently vary by project.
func PriorityOptions(project string) []string {
	return []string{"Blocker", "Critical", "Major", "Normal", "Minor"}
}

// ExtractProjectKey turns a "KEY - Name" menu entry into "KEY".
func ExtractProjectKey(display string) string {
	if key, _, found := strings.Cut(display, " - "); found {
		return key
	}
	return display
}

// DefaultProjectIndex returns the index of the preferred project in
// projects, or 0.
func DefaultProjectIndex(projects []string) int {
	for i, project := range projects {
		if strings.HasPrefix(project, PreferredProject) {
			return i
		}
	}
	return 0
}

type Draft struct {
	// ProjectLabel is the menu entry the user picked, Project its key.
	ProjectLabel string
	Project      string
	Type         string
	Summary      string
	Description  string
	EpicName     string
	DueDate      string
	Priority     string
}

func (d Draft) IsEpic() bool {
	return d.Type == TypeEpic
}

// CreateArgs builds the arguments that follow `jcli issues create`.
func (d Draft) CreateArgs() []string {
	args := []string{
		"--project", d.Project,
		"--issue-type", d.Type,
		"--summary", d.Summary,
	}
	if d.Description != "" {
		args = append(args, "--description", d.Description)
	}
	if d.DueDate != "" {
		args = append(args, "--set-field", "duedate", d.DueDate)
	}
	if d.Priority != "" {
		args = append(args, "--set-field", "priority", d.Priority)
	}
	if d.EpicName != "" {
		args = append(args, "--set-field", "Epic Name", d.EpicName)
	}
	return args
}

package issue

const epicTemplate = `### Goal:
*

### Acceptance Criteria:
*

### Open questions:
Any additional details, questions or decisions that need to be made/addressed
*`

const (
	descriptionTemplate = "Use default Epic template"
	descriptionCustom   = "Provide custom description"
	descriptionNone     = "No description"

	descriptionLabel = "Enter issue description (optional)"
)

// EpicTemplate is the structured description offered for epics.
func EpicTemplate() string {
	return epicTemplate
}

// Asker is the slice of the prompter that description collection needs.
type Asker interface {
	Input(label, def string) (string, error)
	Select(title string, items []string, defaultIndex int) (string, error)
}

// Notifier receives the informational lines shown around the prompts.
type Notifier interface {
	Header(text string)
	Info(text string)
}

// DescribeFor asks for the description of an issue of issueType. Epics get
// a choice between the template, free text and nothing; every other type
// goes straight to the optional free-text prompt.
func DescribeFor(issueType string, ask Asker, note Notifier) (string, error) {
	if issueType != TypeEpic {
		note.Header("ISSUE DESCRIPTION")
		return ask.Input(descriptionLabel, "")
	}

	note.Header("EPIC DESCRIPTION")
	note.Info("Epic issues can use a structured template to help organize information.")

	choice, err := ask.Select("Choose description option:", []string{
		descriptionTemplate,
		descriptionCustom,
		descriptionNone,
	}, 0)
	if err != nil {
		return "", err
	}

	switch choice {
	case descriptionTemplate:
		note.Info("Using default Epic template. You can edit this after the issue is created.")
		return EpicTemplate(), nil
	case descriptionCustom:
		note.Info("Enter your custom description:")
		return ask.Input(descriptionLabel, "")
	default:
		return "", nil
	}
}

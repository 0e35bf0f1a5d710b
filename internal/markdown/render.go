package markdown

import (
	"strings"
	"time"

	"github.com/alexanderramin/mdplanner/internal/domain"
)

// Render writes doc in the fixed section order. today fills an empty start
// date in the Configurations section.
func Render(doc Document, today string) string {
	name := strings.TrimSpace(doc.Info.Name)
	if name == "" {
		name = domain.DefaultProjectName
	}
	lines := []string{"# " + name, ""}
	if desc := trimBlankLines(doc.Info.Description); len(desc) > 0 {
		for _, d := range desc {
			lines = append(lines, strings.TrimRight(d, " \t"))
		}
		lines = append(lines, "")
	}
	lines = append(lines, renderConfigurations(doc.Config, today)...)
	lines = append(lines, renderNotes(doc.Info.Notes)...)
	lines = append(lines, renderGoals(doc.Info.Goals)...)
	lines = append(lines, renderCanvas(doc.Info.PostIts)...)
	lines = append(lines, renderMindmaps(doc.Info.Mindmaps)...)
	lines = append(lines, renderBoard(doc.Tasks, doc.Sections)...)
	return strings.Join(lines, "\n")
}

// IntroDescription is the description written into a freshly created
// document. It explains the task line conventions to a reader of the file.
var IntroDescription = []string{
	"this is a project to track task management using markdown and configurable using `{}`",
	"",
	"the configurations:",
	"",
	"**tag**: string[]",
	"**due_date**: Date/Time",
	"**assignee**: string",
	"**priority**: 1-5 (High to Low)",
	"**Effort**: int (number of estimated days to complete the tasks)",
	"**blocked_by**: taskId[] (so string[])",
	"**milestone**: string",
	"**(string)** : is the task id",
	"**[ ]:** mark a task as completed",
	"**Children items without [] and (string)**: it is a multiline description of the parent item",
}

// NewDocument returns an empty document named name with the intro
// description, default configuration and default Board sections.
func NewDocument(name string, now time.Time) Document {
	info := domain.EmptyProjectInfo()
	info.Name = domain.Coalesce(strings.TrimSpace(name), domain.DefaultProjectName)
	info.Description = append([]string{}, IntroDescription...)
	return Document{
		Info:     info,
		Config:   domain.DefaultProjectConfig(now),
		Tasks:    []domain.Task{},
		Sections: append([]string{}, domain.DefaultBoardSections...),
	}
}

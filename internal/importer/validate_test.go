package importer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptrInt(i int) *int { return &i }

func validMinimalSchema() *ImportSchema {
	return &ImportSchema{
		Project: ProjectImport{Name: "Test Project"},
		Tasks: []TaskImport{
			{Title: "Task 1"},
		},
	}
}

func validFullSchema() *ImportSchema {
	return &ImportSchema{
		Project: ProjectImport{Name: "Launch", Description: []string{"Everything for the launch."}},
		Config: &ConfigImport{
			StartDate:   "2025-02-03",
			WorkingDays: ptrInt(4),
			Assignees:   []string{"alice", "bob"},
			Tags:        []string{"web"},
		},
		Sections: []string{"Backlog", "Doing", "Done"},
		Tasks: []TaskImport{
			{ID: "10", Title: "Design", Section: "Doing", Priority: ptrInt(1), Tag: []string{"web"},
				Children: []TaskImport{
					{Title: "Wireframes", Description: []string{"Low fidelity first."}},
				}},
			{Title: "Build", BlockedBy: []string{"10"}, Effort: ptrInt(5)},
		},
		Notes:   []NoteImport{{ID: "note_3", Title: "Kickoff", Content: "Agenda"}, {Title: "Later", Content: "x"}},
		Goals:   []GoalImport{{Title: "Ship", Type: "enterprise", Status: "on-track", KPI: "users"}},
		PostIts: []PostItImport{{Content: "idea\nmore", Color: "pink", X: 5, Y: 6, Width: ptrInt(120)}},
		Mindmaps: []MindmapImport{{Title: "Map", Nodes: []MindmapNodeImport{
			{Text: "root", Level: 0}, {Text: "leaf", Level: 1},
		}}},
	}
}

func TestValidateImportSchema_ValidMinimal(t *testing.T) {
	assert.Empty(t, ValidateImportSchema(validMinimalSchema()))
}

func TestValidateImportSchema_ValidFull(t *testing.T) {
	assert.Empty(t, ValidateImportSchema(validFullSchema()))
}

func TestValidateImportSchema_CollectsEveryError(t *testing.T) {
	schema := &ImportSchema{
		Config:   &ConfigImport{StartDate: "03/02/2025", WorkingDays: ptrInt(9)},
		Sections: []string{"Todo", "Todo", ""},
		Tasks: []TaskImport{
			{ID: "1", Title: "", Priority: ptrInt(7)},
			{ID: "1", Title: "dup", BlockedBy: []string{"404"}, Effort: ptrInt(-1)},
		},
		Notes:    []NoteImport{{ID: "goal_1", Title: "wrong prefix"}},
		Goals:    []GoalImport{{Title: "g", Type: "team", Status: "done"}},
		PostIts:  []PostItImport{{Content: "c", Color: "black", Height: ptrInt(0)}},
		Mindmaps: []MindmapImport{{Title: "m", Nodes: []MindmapNodeImport{{Text: "deep", Level: 2}}}},
	}

	errs := ValidateImportSchema(schema)

	var msgs []string
	for _, e := range errs {
		msgs = append(msgs, e.Error())
	}
	joined := strings.Join(msgs, "\n")
	for _, want := range []string{
		"project.name is required",
		"config.start_date",
		"config.working_days",
		"duplicate section \"Todo\"",
		"sections[2]: name is required",
		"task id \"1\" is duplicated",
		"tasks[0].title is required",
		"tasks[0].priority must be between 1 and 5",
		"tasks[1].blocked_by: unknown task id \"404\"",
		"tasks[1].effort must not be negative",
		"notes[0].id \"goal_1\" must look like note_<number>",
		"goals[0].type: invalid value \"team\"",
		"goals[0].status: invalid value \"done\"",
		"postits[0].color: invalid value \"black\"",
		"postits[0].height must be positive",
		"mindmaps[0].nodes[0].level 2",
	} {
		assert.Contains(t, joined, want)
	}
	require.Len(t, errs, 16)
}

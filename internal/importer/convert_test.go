package importer

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alexanderramin/mdplanner/internal/domain"
	"github.com/alexanderramin/mdplanner/internal/markdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var convertNow = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

func TestConvert_MinimalProject(t *testing.T) {
	doc := Convert(validMinimalSchema(), convertNow)

	assert.Equal(t, "Test Project", doc.Info.Name)
	assert.Equal(t, domain.DefaultBoardSections, doc.Sections)
	assert.Equal(t, "2025-03-10", doc.Config.StartDate)
	require.Len(t, doc.Tasks, 1)
	assert.Equal(t, "1", doc.Tasks[0].ID)
	assert.Equal(t, "Ideas", doc.Tasks[0].Section)
}

func TestConvert_FullProject(t *testing.T) {
	doc := Convert(validFullSchema(), convertNow)

	assert.Equal(t, 4, doc.Config.WorkingDaysPerWeek)
	assert.Equal(t, []string{"alice", "bob"}, doc.Config.Assignees)
	assert.Equal(t, []string{"Backlog", "Doing", "Done"}, doc.Sections)

	require.Len(t, doc.Tasks, 2)
	design := doc.Tasks[0]
	assert.Equal(t, "10", design.ID)
	assert.Equal(t, 1, design.Config.Priority)
	require.Len(t, design.Children, 1)
	assert.Equal(t, "11", design.Children[0].ID, "allocated above the highest supplied id")
	assert.Equal(t, "10", design.Children[0].ParentID)
	assert.Equal(t, "Doing", design.Children[0].Section)

	build := doc.Tasks[1]
	assert.Equal(t, "12", build.ID)
	assert.Equal(t, "Backlog", build.Section)
	assert.Equal(t, 5, build.Config.Effort)

	require.Len(t, doc.Info.Notes, 2)
	assert.Equal(t, "note_3", doc.Info.Notes[0].ID)
	assert.Equal(t, "note_4", doc.Info.Notes[1].ID)

	require.Len(t, doc.Info.Goals, 1)
	assert.Equal(t, "goal_1", doc.Info.Goals[0].ID)
	assert.Equal(t, domain.GoalOnTrack, doc.Info.Goals[0].Status)

	require.Len(t, doc.Info.PostIts, 1)
	p := doc.Info.PostIts[0]
	assert.Equal(t, "idea<br>more", p.Content)
	require.NotNil(t, p.Size)
	assert.Equal(t, domain.Size{Width: 120}, *p.Size)

	require.Len(t, doc.Info.Mindmaps, 1)
	assert.Equal(t, "mindmap_1_node_1", doc.Info.Mindmaps[0].Nodes[1].Parent)
}

func TestConvert_RendersStableDocument(t *testing.T) {
	doc := Convert(validFullSchema(), convertNow)
	text := markdown.Render(*doc, "2025-03-10")

	parser := markdown.Parser{Now: func() time.Time { return convertNow }}
	reparsed := parser.Parse(text)
	assert.Equal(t, text, markdown.Render(*reparsed, "2025-03-10"))
	assert.Equal(t, domain.CountTasks(doc.Tasks), domain.CountTasks(reparsed.Tasks))
}

func TestLoadImportSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "project.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"project": {"name": "From JSON"},
		"tasks": [{"title": "one", "priority": 3, "tag": ["a"]}]
	}`), 0o644))

	schema, err := LoadImportSchema(path)
	require.NoError(t, err)
	assert.Equal(t, "From JSON", schema.Project.Name)
	require.Len(t, schema.Tasks, 1)
	assert.Equal(t, 3, *schema.Tasks[0].Priority)

	require.NoError(t, os.WriteFile(path, []byte(`{not json`), 0o644))
	_, err = LoadImportSchema(path)
	assert.ErrorContains(t, err, "parsing import file")
}

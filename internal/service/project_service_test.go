package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/mdplanner/internal/domain"
	"github.com/alexanderramin/mdplanner/internal/repository"
	"github.com/alexanderramin/mdplanner/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectService_Summary(t *testing.T) {
	svc := NewProjectService(setupStore(t))

	sum, err := svc.Summary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Sample", sum.Name)
	assert.Equal(t, 5, sum.Tasks)
	assert.Equal(t, 1, sum.Completed)
	assert.Equal(t, []SectionCount{
		{Section: "Todo", Total: 4, Completed: 0},
		{Section: "Done", Total: 1, Completed: 1},
	}, sum.Sections)
	assert.Equal(t, 1, sum.Notes)
	assert.Equal(t, 1, sum.Goals)
	assert.Equal(t, 1, sum.PostIts)
	assert.Equal(t, 1, sum.Mindmaps)
	assert.Equal(t, "2025-01-06", sum.Config.StartDate)
}

func TestProjectService_Summary_MissingDocument(t *testing.T) {
	store := repository.NewMarkdownStore(testutil.MissingDocumentPath(t))
	_, err := NewProjectService(store).Summary(context.Background())
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestProjectService_Init(t *testing.T) {
	path := testutil.MissingDocumentPath(t)
	store := repository.NewMarkdownStore(path, repository.WithClock(testutil.FixedClock))
	svc := NewProjectService(store)
	ctx := context.Background()

	assert.ErrorIs(t, svc.Init(ctx, "  ", false), domain.ErrInvalid)
	require.NoError(t, svc.Init(ctx, "Garden", false))

	doc, err := svc.Document(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Garden", doc.Info.Name)
	assert.Equal(t, domain.DefaultBoardSections, doc.Sections)
	assert.Equal(t, "2025-03-10", doc.Config.StartDate)

	assert.ErrorIs(t, svc.Init(ctx, "Again", false), repository.ErrDocumentExists)
	require.NoError(t, svc.Init(ctx, "Again", true))
}

func TestProjectService_RenameAndDescribe(t *testing.T) {
	store := setupStore(t)
	svc := NewProjectService(store)
	ctx := context.Background()

	require.NoError(t, svc.Rename(ctx, "Renamed"))
	require.NoError(t, svc.SetDescription(ctx, []string{"Line one.", "", "Line two."}))

	doc, err := svc.Document(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", doc.Info.Name)
	assert.Equal(t, []string{"Line one.", "", "Line two."}, doc.Info.Description)
	assert.Equal(t, 5, domain.CountTasks(doc.Tasks))

	assert.ErrorIs(t, svc.SetDescription(ctx, []string{"<!-- Board -->"}), domain.ErrInvalid)
	assert.ErrorIs(t, svc.Rename(ctx, ""), domain.ErrInvalid)
}

func TestProjectService_SaveConfig(t *testing.T) {
	store := setupStore(t)
	svc := NewProjectService(store)
	ctx := context.Background()

	cfg := svc.Config(ctx)
	cfg.WorkingDaysPerWeek = 4
	cfg.Assignees = []string{"alice", " bob ", "alice"}
	require.NoError(t, svc.SaveConfig(ctx, cfg))

	saved := svc.Config(ctx)
	assert.Equal(t, 4, saved.WorkingDaysPerWeek)
	assert.Equal(t, []string{"alice", "bob"}, saved.Assignees)
	assert.Equal(t, "2025-01-06", saved.StartDate)

	cfg.WorkingDaysPerWeek = 8
	assert.ErrorIs(t, svc.SaveConfig(ctx, cfg), domain.ErrInvalid)
	cfg.WorkingDaysPerWeek = 5
	cfg.StartDate = "next monday"
	assert.ErrorIs(t, svc.SaveConfig(ctx, cfg), domain.ErrInvalid)
}

func TestProjectService_SaveConfig_WriteFailure(t *testing.T) {
	store := repository.NewMarkdownStore(testutil.UnreadableDocumentPath(t))
	svc := NewProjectService(store)
	ctx := context.Background()

	cfg := domain.DefaultProjectConfig(testutil.FixedTime)
	err := svc.SaveConfig(ctx, cfg)
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrInvalid)
}

func TestImportService_ImportProject(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "project.json")
	require.NoError(t, os.WriteFile(input, []byte(`{
		"project": {"name": "Imported", "description": ["From a snapshot."]},
		"sections": ["Backlog", "Done"],
		"tasks": [
			{"title": "Parent", "children": [{"title": "Child"}]},
			{"id": "20", "title": "Finished", "section": "Done", "completed": true}
		],
		"notes": [{"title": "Readme", "content": "hello"}],
		"goals": [{"title": "Ship", "status": "on-track"}],
		"postits": [{"content": "todo", "color": "green", "x": 1, "y": 2}],
		"mindmaps": [{"title": "Map", "nodes": [{"text": "root", "level": 0}]}]
	}`), 0o644))

	store := repository.NewMarkdownStore(filepath.Join(dir, "structure.md"), repository.WithClock(testutil.FixedClock))
	obs := &recordingObserver{}
	svc := NewImportService(store, obs)
	ctx := context.Background()

	result, err := svc.ImportProject(ctx, input, false)
	require.NoError(t, err)
	assert.Equal(t, &ImportResult{
		Name: "Imported", TaskCount: 3, NoteCount: 1, GoalCount: 1, PostItCount: 1, MindmapCount: 1,
	}, result)
	assert.Equal(t, 3, obs.last(t).Fields["tasks"])

	tasks := store.ReadTasks(ctx)
	require.Len(t, tasks, 2)
	assert.Equal(t, "21", tasks[0].ID)
	assert.Equal(t, "Backlog", tasks[0].Section)
	assert.Equal(t, "22", tasks[0].Children[0].ID)
	assert.Equal(t, []string{"Backlog", "Done"}, store.SectionsFromBoard(ctx))

	_, err = svc.ImportProject(ctx, input, false)
	assert.ErrorIs(t, err, repository.ErrDocumentExists)

	_, err = svc.ImportProject(ctx, input, true)
	assert.NoError(t, err)
}

func TestImportService_RejectsInvalidSnapshot(t *testing.T) {
	path := testutil.MissingDocumentPath(t)
	store := repository.NewMarkdownStore(path)
	svc := NewImportService(store)

	input := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(input, []byte(`{"project": {}, "tasks": [{"title": "", "priority": 0}]}`), 0o644))

	_, err := svc.ImportProject(context.Background(), input, false)
	require.ErrorIs(t, err, domain.ErrInvalid)
	assert.Contains(t, err.Error(), "import validation failed (3 errors)")
	_, statErr := os.Stat(path)
	assert.True(t, errors.Is(statErr, os.ErrNotExist), "nothing written")
}

func TestImportService_MissingInputFile(t *testing.T) {
	svc := NewImportService(repository.NewMarkdownStore(testutil.MissingDocumentPath(t)))
	_, err := svc.ImportProject(context.Background(), filepath.Join(t.TempDir(), "nope.json"), false)
	assert.ErrorContains(t, err, "loading import file")
}

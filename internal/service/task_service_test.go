package service

import (
	"context"
	"testing"

	"github.com/alexanderramin/mdplanner/internal/domain"
	"github.com/alexanderramin/mdplanner/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskService_Add_DefaultsToFirstSection(t *testing.T) {
	store := setupStore(t)
	svc := NewTaskService(store)

	task, err := svc.Add(context.Background(), domain.Task{Title: "  Write changelog  "}, "")
	require.NoError(t, err)
	assert.Equal(t, "6", task.ID)
	assert.Equal(t, "Write changelog", task.Title)
	assert.Equal(t, "Todo", task.Section)
	assert.Empty(t, task.ParentID)
}

func TestTaskService_Add_UnderParentInheritsSection(t *testing.T) {
	store := setupStore(t)
	svc := NewTaskService(store)
	ctx := context.Background()

	task, err := svc.Add(ctx, domain.Task{Title: "Proofread", Section: "Done"}, "2")
	require.NoError(t, err)
	assert.Equal(t, "2", task.ParentID)
	assert.Equal(t, "Todo", task.Section)

	parent, err := svc.Get(ctx, "2")
	require.NoError(t, err)
	require.Len(t, parent.Children, 2)
	assert.Equal(t, task.ID, parent.Children[1].ID)
}

func TestTaskService_Add_UnknownParentLeavesDocumentUntouched(t *testing.T) {
	store := setupStore(t)
	svc := NewTaskService(store)

	before := testutil.ReadDocument(t, store.Path())
	_, err := svc.Add(context.Background(), domain.Task{Title: "Orphan"}, "404")
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, before, testutil.ReadDocument(t, store.Path()))
}

func TestTaskService_Add_RejectsInvalidInput(t *testing.T) {
	store := setupStore(t)
	svc := NewTaskService(store)
	ctx := context.Background()

	tests := []struct {
		name string
		task domain.Task
	}{
		{"empty title", domain.Task{Title: "   "}},
		{"priority too high", domain.Task{Title: "x", Config: domain.TaskConfig{Priority: 9}}},
		{"negative effort", domain.Task{Title: "x", Config: domain.TaskConfig{Effort: -2}}},
		{"bad due date", domain.Task{Title: "x", Config: domain.TaskConfig{DueDate: "tomorrow"}}},
		{"unknown blocker", domain.Task{Title: "x", Config: domain.TaskConfig{BlockedBy: []string{"99"}}}},
		{"unknown section", domain.Task{Title: "x", Section: "Someday"}},
		{"duplicate id", domain.Task{ID: "1", Title: "x"}},
		{"id with parenthesis", domain.Task{ID: "a)b", Title: "x"}},
		{"assignee smuggles a pair", domain.Task{Title: "x", Config: domain.TaskConfig{Assignee: "bob; priority: 9"}}},
		{"milestone with braces", domain.Task{Title: "x", Config: domain.TaskConfig{Milestone: "v1}"}}},
		{"tag with comma", domain.Task{Title: "x", Config: domain.TaskConfig{Tag: []string{"a,b"}}}},
		{"title ending in a block", domain.Task{Title: "Ship {soon}"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Add(ctx, tc.task, "")
			assert.ErrorIs(t, err, domain.ErrInvalid)
		})
	}
	assert.Equal(t, 5, domain.CountTasks(store.ReadTasks(ctx)))
}

func TestTaskService_Update_KeepsUnpatchedFields(t *testing.T) {
	store := setupStore(t)
	svc := NewTaskService(store)

	title := "Write the docs"
	task, err := svc.Update(context.Background(), "1", domain.TaskPatch{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "Write the docs", task.Title)
	assert.Equal(t, 2, task.Config.Priority)
	assert.Equal(t, []string{"Cover the CLI."}, task.Description)
	require.Len(t, task.Children, 1)
	assert.Equal(t, "2", task.Children[0].ID)
}

func TestTaskService_Update_RejectsConfigBreakout(t *testing.T) {
	store := setupStore(t)
	svc := NewTaskService(store)
	ctx := context.Background()
	before := testutil.ReadDocument(t, store.Path())

	cfg := domain.TaskConfig{Assignee: "bob; priority: 9"}
	_, err := svc.Update(ctx, "1", domain.TaskPatch{Config: &cfg})
	require.ErrorIs(t, err, domain.ErrInvalid)

	title := "Plan [draft] {x}"
	_, err = svc.Update(ctx, "1", domain.TaskPatch{Title: &title})
	require.ErrorIs(t, err, domain.ErrInvalid)
	assert.Equal(t, before, testutil.ReadDocument(t, store.Path()))

	title = "Plan {x} later"
	task, err := svc.Update(ctx, "1", domain.TaskPatch{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "Plan {x} later", task.Title)
}

func TestTaskService_Update_UnknownTask(t *testing.T) {
	svc := NewTaskService(setupStore(t))
	done := true
	_, err := svc.Update(context.Background(), "404", domain.TaskPatch{Completed: &done})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTaskService_Move_CarriesSubtree(t *testing.T) {
	store := setupStore(t)
	svc := NewTaskService(store)
	ctx := context.Background()

	require.NoError(t, svc.Move(ctx, "1", "Done"))

	grandchild, err := svc.Get(ctx, "3")
	require.NoError(t, err)
	assert.Equal(t, "Done", grandchild.Section)

	done, err := svc.List(ctx, "Done")
	require.NoError(t, err)
	ids := []string{}
	for _, task := range done {
		ids = append(ids, task.ID)
	}
	assert.ElementsMatch(t, []string{"1", "5"}, ids)
}

func TestTaskService_Move_RejectsSubtask(t *testing.T) {
	svc := NewTaskService(setupStore(t))
	err := svc.Move(context.Background(), "2", "Done")
	assert.ErrorIs(t, err, domain.ErrInvalid)
}

func TestTaskService_SetCompleted(t *testing.T) {
	svc := NewTaskService(setupStore(t))
	ctx := context.Background()

	require.NoError(t, svc.SetCompleted(ctx, "4", true))
	task, err := svc.Get(ctx, "4")
	require.NoError(t, err)
	assert.True(t, task.Completed)
	assert.Equal(t, []string{"1"}, task.Config.BlockedBy)

	require.NoError(t, svc.SetCompleted(ctx, "5", false))
	task, err = svc.Get(ctx, "5")
	require.NoError(t, err)
	assert.False(t, task.Completed)
}

func TestTaskService_Remove_CascadesToSubtree(t *testing.T) {
	svc := NewTaskService(setupStore(t))
	ctx := context.Background()

	require.NoError(t, svc.Remove(ctx, "1"))
	for _, id := range []string{"1", "2", "3"} {
		_, err := svc.Get(ctx, id)
		assert.ErrorIs(t, err, domain.ErrNotFound, "task %s", id)
	}
	assert.ErrorIs(t, svc.Remove(ctx, "1"), domain.ErrNotFound)
}

func TestTaskService_List_UnknownSection(t *testing.T) {
	svc := NewTaskService(setupStore(t))
	_, err := svc.List(context.Background(), "Someday")
	assert.ErrorIs(t, err, domain.ErrInvalid)
}

func TestTaskService_RewriteSections(t *testing.T) {
	svc := NewTaskService(setupStore(t))
	ctx := context.Background()

	require.NoError(t, svc.RewriteSections(ctx, []string{"Todo", " Doing ", "Done"}))
	assert.Equal(t, []string{"Todo", "Doing", "Done"}, svc.Sections(ctx))

	assert.ErrorIs(t, svc.RewriteSections(ctx, []string{"Todo"}), domain.ErrInvalid, "Done still holds task 5")
	assert.ErrorIs(t, svc.RewriteSections(ctx, []string{"Todo", "Todo", "Done"}), domain.ErrInvalid)
	assert.ErrorIs(t, svc.RewriteSections(ctx, nil), domain.ErrInvalid)
	assert.Equal(t, []string{"Todo", "Doing", "Done"}, svc.Sections(ctx))
}

func TestTaskService_ObservesUseCases(t *testing.T) {
	obs := &recordingObserver{}
	svc := NewTaskService(setupStore(t), obs)
	ctx := WithCorrelationID(context.Background(), "req-42")

	_, err := svc.Add(ctx, domain.Task{Title: "Observed"}, "")
	require.NoError(t, err)

	event := obs.last(t)
	assert.Equal(t, "add-task", event.Name)
	assert.Equal(t, "req-42", event.CorrelationID)
	assert.True(t, event.Success)
	assert.Equal(t, "6", event.Fields["task_id"])

	err = svc.Remove(ctx, "404")
	require.Error(t, err)
	event = obs.last(t)
	assert.Equal(t, "remove-task", event.Name)
	assert.False(t, event.Success)
	assert.ErrorIs(t, event.Err, domain.ErrNotFound)
}

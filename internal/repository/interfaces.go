package repository

import (
	"context"

	"github.com/alexanderramin/mdplanner/internal/domain"
	"github.com/alexanderramin/mdplanner/internal/markdown"
)

// AddTaskResult reports the outcome of AddTask. Inserted is false when a
// parent ID was given and no such task exists; nothing is written then.
type AddTaskResult struct {
	ID       string
	Inserted bool
}

// Reads never fail: a missing or unreadable document yields empty or
// default values.
type TaskRepo interface {
	ReadTasks(ctx context.Context) []domain.Task
	SectionsFromBoard(ctx context.Context) []string
	AddTask(ctx context.Context, task domain.Task, parentID string) (AddTaskResult, error)
	UpdateTask(ctx context.Context, id string, patch domain.TaskPatch) (bool, error)
	DeleteTask(ctx context.Context, id string) (bool, error)
	WriteTasks(ctx context.Context, tasks []domain.Task, sections []string) error
}

type ProjectRepo interface {
	ReadProjectInfo(ctx context.Context) domain.ProjectInfo
	ReadProjectConfig(ctx context.Context) domain.ProjectConfig
	ReadDocument(ctx context.Context) (*markdown.Document, error)
	SaveProjectConfig(ctx context.Context, cfg domain.ProjectConfig) bool
	UpdateProjectMeta(ctx context.Context, name *string, description *[]string) error
	ReplaceDocument(ctx context.Context, doc markdown.Document) error
	Init(ctx context.Context, name string, force bool) error
}

type NoteRepo interface {
	AddNote(ctx context.Context, note domain.Note) (domain.Note, error)
	UpdateNote(ctx context.Context, id string, patch domain.NotePatch) (bool, error)
	DeleteNote(ctx context.Context, id string) (bool, error)
}

type GoalRepo interface {
	AddGoal(ctx context.Context, goal domain.Goal) (domain.Goal, error)
	UpdateGoal(ctx context.Context, id string, patch domain.GoalPatch) (bool, error)
	DeleteGoal(ctx context.Context, id string) (bool, error)
}

type PostItRepo interface {
	AddPostIt(ctx context.Context, p domain.PostIt) (domain.PostIt, error)
	UpdatePostIt(ctx context.Context, id string, patch domain.PostItPatch) (bool, error)
	DeletePostIt(ctx context.Context, id string) (bool, error)
}

type MindmapRepo interface {
	AddMindmap(ctx context.Context, title string, outline []domain.OutlineEntry) (domain.Mindmap, error)
	UpdateMindmap(ctx context.Context, id string, patch domain.MindmapPatch) (bool, error)
	DeleteMindmap(ctx context.Context, id string) (bool, error)
}

// Store is everything MarkdownStore offers.
type Store interface {
	TaskRepo
	ProjectRepo
	NoteRepo
	GoalRepo
	PostItRepo
	MindmapRepo
}

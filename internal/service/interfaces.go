package service

import (
	"context"

	"github.com/alexanderramin/mdplanner/internal/domain"
	"github.com/alexanderramin/mdplanner/internal/importer"
	"github.com/alexanderramin/mdplanner/internal/markdown"
)

// TaskService manages the Board. Unknown IDs yield errors wrapping
// domain.ErrNotFound; rejected input wraps domain.ErrInvalid.
type TaskService interface {
	// List returns top-level tasks, optionally only those in section.
	List(ctx context.Context, section string) ([]domain.Task, error)
	Get(ctx context.Context, id string) (*domain.Task, error)
	// Add inserts task at the top level, or under parentID when set.
	Add(ctx context.Context, task domain.Task, parentID string) (*domain.Task, error)
	Update(ctx context.Context, id string, patch domain.TaskPatch) (*domain.Task, error)
	SetCompleted(ctx context.Context, id string, completed bool) error
	// Move changes the section of a top-level task and its subtree.
	Move(ctx context.Context, id, section string) error
	Remove(ctx context.Context, id string) error
	Sections(ctx context.Context) []string
	// RewriteSections replaces the Board section order. A section that
	// still holds tasks cannot be dropped.
	RewriteSections(ctx context.Context, sections []string) error
}

type NoteService interface {
	List(ctx context.Context) []domain.Note
	Get(ctx context.Context, id string) (*domain.Note, error)
	Add(ctx context.Context, title, content string) (*domain.Note, error)
	Update(ctx context.Context, id string, patch domain.NotePatch) (*domain.Note, error)
	Remove(ctx context.Context, id string) error
	// Blocks splits an enhanced note into its paragraph and custom-section
	// blocks. Plain notes come back as a single paragraph.
	Blocks(ctx context.Context, id string) ([]domain.NoteBlock, error)
}

type GoalService interface {
	List(ctx context.Context) []domain.Goal
	Get(ctx context.Context, id string) (*domain.Goal, error)
	Add(ctx context.Context, goal domain.Goal) (*domain.Goal, error)
	Update(ctx context.Context, id string, patch domain.GoalPatch) (*domain.Goal, error)
	Remove(ctx context.Context, id string) error
}

type CanvasService interface {
	List(ctx context.Context) []domain.PostIt
	Get(ctx context.Context, id string) (*domain.PostIt, error)
	Add(ctx context.Context, p domain.PostIt) (*domain.PostIt, error)
	Update(ctx context.Context, id string, patch domain.PostItPatch) (*domain.PostIt, error)
	Remove(ctx context.Context, id string) error
}

type MindmapService interface {
	List(ctx context.Context) []domain.Mindmap
	Get(ctx context.Context, id string) (*domain.Mindmap, error)
	Add(ctx context.Context, title string, outline []domain.OutlineEntry) (*domain.Mindmap, error)
	Update(ctx context.Context, id string, patch domain.MindmapPatch) (*domain.Mindmap, error)
	Remove(ctx context.Context, id string) error
}

// SectionCount is the number of tasks filed under one Board section,
// subtasks included.
type SectionCount struct {
	Section   string
	Total     int
	Completed int
}

// ProjectSummary aggregates a document for display.
type ProjectSummary struct {
	Name        string
	Description []string
	Config      domain.ProjectConfig
	Sections    []SectionCount
	Tasks       int
	Completed   int
	Notes       int
	Goals       int
	PostIts     int
	Mindmaps    int
}

type ProjectService interface {
	// Document returns the parsed file, or an error when it cannot be read.
	Document(ctx context.Context) (*markdown.Document, error)
	Summary(ctx context.Context) (*ProjectSummary, error)
	Init(ctx context.Context, name string, force bool) error
	Rename(ctx context.Context, name string) error
	SetDescription(ctx context.Context, lines []string) error
	Config(ctx context.Context) domain.ProjectConfig
	SaveConfig(ctx context.Context, cfg domain.ProjectConfig) error
}

// ImportResult holds the outcome of a project import.
type ImportResult struct {
	Name         string
	TaskCount    int
	NoteCount    int
	GoalCount    int
	PostItCount  int
	MindmapCount int
}

type ImportService interface {
	ImportProject(ctx context.Context, filePath string, force bool) (*ImportResult, error)
	ImportProjectFromSchema(ctx context.Context, schema *importer.ImportSchema, force bool) (*ImportResult, error)
}

package repository

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/alexanderramin/mdplanner/internal/domain"
	"github.com/alexanderramin/mdplanner/internal/idalloc"
	"github.com/alexanderramin/mdplanner/internal/markdown"
)

const documentPerm fs.FileMode = 0o644

// MarkdownStore keeps a project in a single Markdown file. Every mutation
// reads the file, changes the parsed model and writes the file back while
// holding the store's mutex. Other processes are not coordinated with: the
// last write wins.
type MarkdownStore struct {
	path   string
	mu     sync.Mutex
	now    func() time.Time
	logger *slog.Logger
}

type Option func(*MarkdownStore)

// WithClock replaces the wall clock used for timestamps and default dates.
func WithClock(now func() time.Time) Option {
	return func(s *MarkdownStore) { s.now = now }
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *MarkdownStore) {
		if logger != nil {
			s.logger = logger
		}
	}
}

func NewMarkdownStore(path string, opts ...Option) *MarkdownStore {
	s := &MarkdownStore{
		path:   path,
		now:    time.Now,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Path returns the document location.
func (s *MarkdownStore) Path() string { return s.path }

func (s *MarkdownStore) parser() markdown.Parser {
	return markdown.Parser{Now: s.now}
}

func (s *MarkdownStore) today() string {
	return s.now().Format("2006-01-02")
}

func (s *MarkdownStore) regenerate(doc *markdown.Document) markdown.Rewriter {
	return markdown.Regenerate{Doc: *doc, Today: s.today()}
}

// load reads and parses the document. Callers hold s.mu.
func (s *MarkdownStore) load() (string, *markdown.Document, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		return "", nil, err
	}
	content := string(b)
	return content, s.parser().Parse(content), nil
}

// snapshot is the read path shared by every query.
func (s *MarkdownStore) snapshot(ctx context.Context, op string) (*markdown.Document, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, doc, err := s.load()
	if err != nil {
		s.logger.WarnContext(ctx, "document read failed, using defaults", "op", op, "path", s.path, "error", err)
		return nil, false
	}
	return doc, true
}

// mutate runs one read-modify-write cycle. fn returns the writer to apply,
// or nil to leave the file untouched.
func (s *MarkdownStore) mutate(ctx context.Context, op string, fn func(content string, doc *markdown.Document) (markdown.Rewriter, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}
	content, doc, err := s.load()
	if err != nil {
		return fmt.Errorf("%s: reading %s: %w", op, s.path, err)
	}
	rw, err := fn(content, doc)
	if err != nil || rw == nil {
		return err
	}
	return s.apply(ctx, op, content, rw)
}

// apply renders and persists. Callers hold s.mu.
func (s *MarkdownStore) apply(ctx context.Context, op, content string, rw markdown.Rewriter) error {
	out, err := rw.Rewrite(content)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := atomicWriteFile(s.path, []byte(out), documentPerm); err != nil {
		return fmt.Errorf("%s: writing %s: %w", op, s.path, err)
	}
	s.logger.DebugContext(ctx, "document written", "op", op, "path", s.path, "bytes", len(out))
	return nil
}

// --- reads ---

func (s *MarkdownStore) ReadTasks(ctx context.Context) []domain.Task {
	doc, ok := s.snapshot(ctx, "read-tasks")
	if !ok {
		return []domain.Task{}
	}
	return doc.Tasks
}

func (s *MarkdownStore) SectionsFromBoard(ctx context.Context) []string {
	doc, ok := s.snapshot(ctx, "read-sections")
	if !ok {
		return append([]string{}, domain.DefaultBoardSections...)
	}
	return doc.Sections
}

func (s *MarkdownStore) ReadProjectInfo(ctx context.Context) domain.ProjectInfo {
	doc, ok := s.snapshot(ctx, "read-project-info")
	if !ok {
		return domain.EmptyProjectInfo()
	}
	return doc.Info
}

func (s *MarkdownStore) ReadProjectConfig(ctx context.Context) domain.ProjectConfig {
	doc, ok := s.snapshot(ctx, "read-project-config")
	if !ok {
		return domain.DefaultProjectConfig(s.now())
	}
	return doc.Config
}

// ReadDocument is the only read that reports a missing file, for callers
// that must tell an empty project from an absent one.
func (s *MarkdownStore) ReadDocument(ctx context.Context) (*markdown.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, doc, err := s.load()
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", s.path, err)
	}
	return doc, nil
}

// --- project ---

// SaveProjectConfig patches the Configurations section in place. Failures
// are logged and reported as false.
func (s *MarkdownStore) SaveProjectConfig(ctx context.Context, cfg domain.ProjectConfig) bool {
	err := s.mutate(ctx, "save-project-config", func(string, *markdown.Document) (markdown.Rewriter, error) {
		return markdown.ConfigPatch{Config: cfg, Today: s.today()}, nil
	})
	if err != nil {
		s.logger.WarnContext(ctx, "saving project config failed", "path", s.path, "error", err)
		return false
	}
	return true
}

func (s *MarkdownStore) UpdateProjectMeta(ctx context.Context, name *string, description *[]string) error {
	return s.mutate(ctx, "update-project-meta", func(_ string, doc *markdown.Document) (markdown.Rewriter, error) {
		doc.Info.Name = domain.ValueOr(doc.Info.Name, name)
		if description != nil {
			doc.Info.Description = *description
		}
		return s.regenerate(doc), nil
	})
}

// ReplaceDocument writes doc whether or not the file exists yet.
func (s *MarkdownStore) ReplaceDocument(ctx context.Context, doc markdown.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.apply(ctx, "replace-document", "", s.regenerate(&doc))
}

// ErrDocumentExists is returned by Init when the file is already present.
var ErrDocumentExists = errors.New("document already exists")

// Init creates a new document. An existing file is only replaced with force.
func (s *MarkdownStore) Init(ctx context.Context, name string, force bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := os.Stat(s.path); err == nil && !force {
		return fmt.Errorf("init %s: %w", s.path, ErrDocumentExists)
	}
	doc := markdown.NewDocument(name, s.now())
	return s.apply(ctx, "init", "", s.regenerate(&doc))
}

// --- tasks ---

// AddTask assigns the next numeric ID when task has none. With a parentID
// the task is appended to that parent's children and inherits its section;
// an unknown parent leaves the document unchanged and Inserted false.
// Without a parentID an empty section defaults to the first Board section.
func (s *MarkdownStore) AddTask(ctx context.Context, task domain.Task, parentID string) (AddTaskResult, error) {
	var result AddTaskResult
	err := s.mutate(ctx, "add-task", func(content string, doc *markdown.Document) (markdown.Rewriter, error) {
		if task.ID == "" {
			task.ID = allocatorFor(content, doc).NextTask()
		}
		result.ID = task.ID
		if parentID != "" {
			if !domain.AddChildTask(doc.Tasks, parentID, task) {
				return nil, nil
			}
		} else {
			task.ParentID = ""
			if task.Section == "" && len(doc.Sections) > 0 {
				task.Section = doc.Sections[0]
			}
			domain.TaskPatch{Section: &task.Section}.Apply(&task)
			doc.Tasks = append(doc.Tasks, task)
		}
		result.Inserted = true
		return s.regenerate(doc), nil
	})
	if err != nil {
		return AddTaskResult{}, err
	}
	return result, nil
}

// UpdateTask merges patch into the task with id. It returns false without
// writing when no such task exists.
func (s *MarkdownStore) UpdateTask(ctx context.Context, id string, patch domain.TaskPatch) (bool, error) {
	found := false
	err := s.mutate(ctx, "update-task", func(_ string, doc *markdown.Document) (markdown.Rewriter, error) {
		t := domain.FindTask(doc.Tasks, id)
		if t == nil {
			return nil, nil
		}
		found = true
		patch.Apply(t)
		return s.regenerate(doc), nil
	})
	return found, err
}

// DeleteTask removes the task and its descendants.
func (s *MarkdownStore) DeleteTask(ctx context.Context, id string) (bool, error) {
	removed := false
	err := s.mutate(ctx, "delete-task", func(_ string, doc *markdown.Document) (markdown.Rewriter, error) {
		doc.Tasks, removed = domain.RemoveTask(doc.Tasks, id)
		if !removed {
			return nil, nil
		}
		return s.regenerate(doc), nil
	})
	return removed, err
}

// WriteTasks replaces the whole task tree. A nil sections keeps the
// current Board order.
func (s *MarkdownStore) WriteTasks(ctx context.Context, tasks []domain.Task, sections []string) error {
	return s.mutate(ctx, "write-tasks", func(_ string, doc *markdown.Document) (markdown.Rewriter, error) {
		doc.Tasks = tasks
		if sections != nil {
			doc.Sections = sections
		}
		return s.regenerate(doc), nil
	})
}

// --- notes ---

func (s *MarkdownStore) AddNote(ctx context.Context, note domain.Note) (domain.Note, error) {
	err := s.mutate(ctx, "add-note", func(content string, doc *markdown.Document) (markdown.Rewriter, error) {
		if note.ID == "" {
			note.ID = allocatorFor(content, doc).Next(idalloc.Note)
		}
		stamp := markdown.Timestamp(s.now())
		note.CreatedAt, note.UpdatedAt = stamp, stamp
		doc.Info.Notes = append(doc.Info.Notes, note)
		return s.regenerate(doc), nil
	})
	if err != nil {
		return domain.Note{}, err
	}
	return note, nil
}

func (s *MarkdownStore) UpdateNote(ctx context.Context, id string, patch domain.NotePatch) (bool, error) {
	found := false
	err := s.mutate(ctx, "update-note", func(_ string, doc *markdown.Document) (markdown.Rewriter, error) {
		for i := range doc.Info.Notes {
			if doc.Info.Notes[i].ID == id {
				found = true
				patch.Apply(&doc.Info.Notes[i], markdown.Timestamp(s.now()))
				return s.regenerate(doc), nil
			}
		}
		return nil, nil
	})
	return found, err
}

func (s *MarkdownStore) DeleteNote(ctx context.Context, id string) (bool, error) {
	removed := false
	err := s.mutate(ctx, "delete-note", func(_ string, doc *markdown.Document) (markdown.Rewriter, error) {
		doc.Info.Notes, removed = removeByID(doc.Info.Notes, id, func(n domain.Note) string { return n.ID })
		if !removed {
			return nil, nil
		}
		return s.regenerate(doc), nil
	})
	return removed, err
}

// --- goals ---

func (s *MarkdownStore) AddGoal(ctx context.Context, goal domain.Goal) (domain.Goal, error) {
	err := s.mutate(ctx, "add-goal", func(content string, doc *markdown.Document) (markdown.Rewriter, error) {
		if goal.ID == "" {
			goal.ID = allocatorFor(content, doc).Next(idalloc.Goal)
		}
		doc.Info.Goals = append(doc.Info.Goals, goal)
		return s.regenerate(doc), nil
	})
	if err != nil {
		return domain.Goal{}, err
	}
	return goal, nil
}

func (s *MarkdownStore) UpdateGoal(ctx context.Context, id string, patch domain.GoalPatch) (bool, error) {
	found := false
	err := s.mutate(ctx, "update-goal", func(_ string, doc *markdown.Document) (markdown.Rewriter, error) {
		for i := range doc.Info.Goals {
			if doc.Info.Goals[i].ID == id {
				found = true
				patch.Apply(&doc.Info.Goals[i])
				return s.regenerate(doc), nil
			}
		}
		return nil, nil
	})
	return found, err
}

func (s *MarkdownStore) DeleteGoal(ctx context.Context, id string) (bool, error) {
	removed := false
	err := s.mutate(ctx, "delete-goal", func(_ string, doc *markdown.Document) (markdown.Rewriter, error) {
		doc.Info.Goals, removed = removeByID(doc.Info.Goals, id, func(g domain.Goal) string { return g.ID })
		if !removed {
			return nil, nil
		}
		return s.regenerate(doc), nil
	})
	return removed, err
}

// --- canvas ---

// AddPostIt splices the new note into the Canvas section without
// regenerating the rest of the document.
func (s *MarkdownStore) AddPostIt(ctx context.Context, p domain.PostIt) (domain.PostIt, error) {
	err := s.mutate(ctx, "add-postit", func(content string, doc *markdown.Document) (markdown.Rewriter, error) {
		if p.ID == "" {
			p.ID = allocatorFor(content, doc).Next(idalloc.PostIt)
		}
		p.Content = domain.NormalizePostItContent(p.Content)
		if p.Color == "" {
			p.Color = domain.ColorYellow
		}
		return markdown.PostItPatch{PostIt: p, Insert: true, Existing: doc.Info.PostIts}, nil
	})
	if err != nil {
		return domain.PostIt{}, err
	}
	return p, nil
}

// UpdatePostIt replaces the note's block in place. A note whose ID was
// generated by the parse has no block to patch; the document is then
// regenerated instead.
func (s *MarkdownStore) UpdatePostIt(ctx context.Context, id string, patch domain.PostItPatch) (bool, error) {
	found := false
	err := s.mutate(ctx, "update-postit", func(_ string, doc *markdown.Document) (markdown.Rewriter, error) {
		for i := range doc.Info.PostIts {
			if doc.Info.PostIts[i].ID == id {
				found = true
				patch.Apply(&doc.Info.PostIts[i])
				return fallback{
					primary:   markdown.PostItPatch{PostIt: doc.Info.PostIts[i]},
					secondary: s.regenerate(doc),
				}, nil
			}
		}
		return nil, nil
	})
	return found, err
}

func (s *MarkdownStore) DeletePostIt(ctx context.Context, id string) (bool, error) {
	removed := false
	err := s.mutate(ctx, "delete-postit", func(_ string, doc *markdown.Document) (markdown.Rewriter, error) {
		doc.Info.PostIts, removed = removeByID(doc.Info.PostIts, id, func(p domain.PostIt) string { return p.ID })
		if !removed {
			return nil, nil
		}
		return s.regenerate(doc), nil
	})
	return removed, err
}

// --- mindmaps ---

func (s *MarkdownStore) AddMindmap(ctx context.Context, title string, outline []domain.OutlineEntry) (domain.Mindmap, error) {
	var m domain.Mindmap
	err := s.mutate(ctx, "add-mindmap", func(content string, doc *markdown.Document) (markdown.Rewriter, error) {
		id := allocatorFor(content, doc).Next(idalloc.Mindmap)
		m = domain.Mindmap{ID: id, Title: title, Nodes: domain.LinkMindmapNodes(id, outline)}
		doc.Info.Mindmaps = append(doc.Info.Mindmaps, m)
		return s.regenerate(doc), nil
	})
	if err != nil {
		return domain.Mindmap{}, err
	}
	return m, nil
}

func (s *MarkdownStore) UpdateMindmap(ctx context.Context, id string, patch domain.MindmapPatch) (bool, error) {
	found := false
	err := s.mutate(ctx, "update-mindmap", func(_ string, doc *markdown.Document) (markdown.Rewriter, error) {
		for i := range doc.Info.Mindmaps {
			if doc.Info.Mindmaps[i].ID == id {
				found = true
				patch.Apply(&doc.Info.Mindmaps[i])
				return s.regenerate(doc), nil
			}
		}
		return nil, nil
	})
	return found, err
}

func (s *MarkdownStore) DeleteMindmap(ctx context.Context, id string) (bool, error) {
	removed := false
	err := s.mutate(ctx, "delete-mindmap", func(_ string, doc *markdown.Document) (markdown.Rewriter, error) {
		doc.Info.Mindmaps, removed = removeByID(doc.Info.Mindmaps, id, func(m domain.Mindmap) string { return m.ID })
		if !removed {
			return nil, nil
		}
		return s.regenerate(doc), nil
	})
	return removed, err
}

func removeByID[T any](items []T, id string, idOf func(T) string) ([]T, bool) {
	out := make([]T, 0, len(items))
	removed := false
	for _, it := range items {
		if idOf(it) == id {
			removed = true
			continue
		}
		out = append(out, it)
	}
	return out, removed
}

var _ Store = (*MarkdownStore)(nil)

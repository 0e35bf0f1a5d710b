package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/mdplanner/internal/domain"
	"github.com/alexanderramin/mdplanner/internal/repository"
)

type taskService struct {
	tasks    repository.TaskRepo
	observer UseCaseObserver
}

func NewTaskService(tasks repository.TaskRepo, observers ...UseCaseObserver) TaskService {
	return &taskService{tasks: tasks, observer: useCaseObserverOrNoop(observers)}
}

func (s *taskService) List(ctx context.Context, section string) ([]domain.Task, error) {
	all := s.tasks.ReadTasks(ctx)
	if section == "" {
		return all, nil
	}
	if !containsString(s.tasks.SectionsFromBoard(ctx), section) {
		return nil, invalidf("unknown section %q", section)
	}
	out := make([]domain.Task, 0, len(all))
	for _, t := range all {
		if t.Section == section {
			out = append(out, t)
		}
	}
	return out, nil
}

func (s *taskService) Get(ctx context.Context, id string) (*domain.Task, error) {
	t := domain.FindTask(s.tasks.ReadTasks(ctx), id)
	if t == nil {
		return nil, notFound("task", id)
	}
	return t, nil
}

func (s *taskService) Add(ctx context.Context, task domain.Task, parentID string) (created *domain.Task, err error) {
	fields := map[string]any{"parent_id": parentID, "section": task.Section}
	done := startUseCase(ctx, s.observer, "add-task", fields)
	defer func() { done(err) }()

	if task.Title, err = headingText("title", task.Title); err != nil {
		return nil, err
	}
	if strings.ContainsAny(task.ID, "() \t") {
		return nil, invalidf("task id %q must not contain spaces or parentheses", task.ID)
	}
	existing := s.tasks.ReadTasks(ctx)
	if task.ID != "" && domain.FindTask(existing, task.ID) != nil {
		return nil, invalidf("task id %q already exists", task.ID)
	}
	if parentID == "" && task.Section != "" && !containsString(s.tasks.SectionsFromBoard(ctx), task.Section) {
		return nil, invalidf("unknown section %q", task.Section)
	}
	if err = validateTaskConfig(task.ID, task.Config, existing); err != nil {
		return nil, err
	}

	var result repository.AddTaskResult
	result, err = s.tasks.AddTask(ctx, task, parentID)
	if err != nil {
		return nil, fmt.Errorf("adding task: %w", err)
	}
	if !result.Inserted {
		err = notFound("parent task", parentID)
		return nil, err
	}
	fields["task_id"] = result.ID
	return s.Get(ctx, result.ID)
}

func (s *taskService) Update(ctx context.Context, id string, patch domain.TaskPatch) (updated *domain.Task, err error) {
	done := startUseCase(ctx, s.observer, "update-task", map[string]any{"task_id": id})
	defer func() { done(err) }()

	existing := s.tasks.ReadTasks(ctx)
	current := domain.FindTask(existing, id)
	if current == nil {
		return nil, notFound("task", id)
	}
	if patch.Title != nil {
		title, terr := headingText("title", *patch.Title)
		if terr != nil {
			return nil, terr
		}
		patch.Title = &title
	}
	if patch.Section != nil {
		if current.ParentID != "" {
			return nil, invalidf("task %q is a subtask and follows its parent's section", id)
		}
		if !containsString(s.tasks.SectionsFromBoard(ctx), *patch.Section) {
			return nil, invalidf("unknown section %q", *patch.Section)
		}
	}
	if patch.Config != nil {
		if err = validateTaskConfig(id, *patch.Config, existing); err != nil {
			return nil, err
		}
	}

	var found bool
	found, err = s.tasks.UpdateTask(ctx, id, patch)
	if err != nil {
		return nil, fmt.Errorf("updating task: %w", err)
	}
	if !found {
		err = notFound("task", id)
		return nil, err
	}
	return s.Get(ctx, id)
}

func (s *taskService) SetCompleted(ctx context.Context, id string, completed bool) error {
	_, err := s.Update(ctx, id, domain.TaskPatch{Completed: &completed})
	return err
}

func (s *taskService) Move(ctx context.Context, id, section string) error {
	_, err := s.Update(ctx, id, domain.TaskPatch{Section: &section})
	return err
}

func (s *taskService) Remove(ctx context.Context, id string) (err error) {
	done := startUseCase(ctx, s.observer, "remove-task", map[string]any{"task_id": id})
	defer func() { done(err) }()

	var removed bool
	removed, err = s.tasks.DeleteTask(ctx, id)
	if err != nil {
		return fmt.Errorf("removing task: %w", err)
	}
	if !removed {
		err = notFound("task", id)
	}
	return err
}

func (s *taskService) Sections(ctx context.Context) []string {
	return s.tasks.SectionsFromBoard(ctx)
}

func (s *taskService) RewriteSections(ctx context.Context, sections []string) (err error) {
	fields := map[string]any{"sections": len(sections)}
	done := startUseCase(ctx, s.observer, "rewrite-sections", fields)
	defer func() { done(err) }()

	cleaned := make([]string, 0, len(sections))
	for _, name := range sections {
		name = strings.TrimSpace(name)
		if name == "" {
			return invalidf("section name is required")
		}
		if containsString(cleaned, name) {
			return invalidf("duplicate section %q", name)
		}
		cleaned = append(cleaned, name)
	}
	if len(cleaned) == 0 {
		return invalidf("at least one section is required")
	}

	tasks := s.tasks.ReadTasks(ctx)
	for _, t := range tasks {
		if !containsString(cleaned, t.Section) {
			return invalidf("section %q still holds task %q", t.Section, t.ID)
		}
	}
	if err = s.tasks.WriteTasks(ctx, tasks, cleaned); err != nil {
		return fmt.Errorf("rewriting sections: %w", err)
	}
	return nil
}

// validateTaskConfig checks ranges, that values cannot break out of the
// config block, and that every blocked_by entry names another task in the tree.
func validateTaskConfig(id string, cfg domain.TaskConfig, tasks []domain.Task) error {
	if cfg.Priority != 0 && (cfg.Priority < domain.MinPriority || cfg.Priority > domain.MaxPriority) {
		return invalidf("priority must be between %d and %d, got %d", domain.MinPriority, domain.MaxPriority, cfg.Priority)
	}
	if cfg.Effort < 0 {
		return invalidf("effort must not be negative, got %d", cfg.Effort)
	}
	if err := validDate("due_date", cfg.DueDate); err != nil {
		return err
	}
	if err := plainValue("assignee", cfg.Assignee); err != nil {
		return err
	}
	if err := plainValue("milestone", cfg.Milestone); err != nil {
		return err
	}
	if err := plainList("tag", cfg.Tag); err != nil {
		return err
	}
	if err := plainList("blocked_by", cfg.BlockedBy); err != nil {
		return err
	}
	for _, ref := range cfg.BlockedBy {
		if id != "" && ref == id {
			return invalidf("task %q cannot block itself", id)
		}
		if domain.FindTask(tasks, ref) == nil {
			return invalidf("blocked_by: unknown task %q", ref)
		}
	}
	return nil
}

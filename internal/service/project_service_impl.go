package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/mdplanner/internal/domain"
	"github.com/alexanderramin/mdplanner/internal/markdown"
	"github.com/alexanderramin/mdplanner/internal/repository"
)

type projectService struct {
	projects repository.ProjectRepo
	observer UseCaseObserver
}

func NewProjectService(projects repository.ProjectRepo, observers ...UseCaseObserver) ProjectService {
	return &projectService{projects: projects, observer: useCaseObserverOrNoop(observers)}
}

func (s *projectService) Document(ctx context.Context) (*markdown.Document, error) {
	return s.projects.ReadDocument(ctx)
}

func (s *projectService) Summary(ctx context.Context) (*ProjectSummary, error) {
	doc, err := s.projects.ReadDocument(ctx)
	if err != nil {
		return nil, err
	}
	return summarize(doc), nil
}

// summarize counts tasks per section in Board order. Subtasks count toward
// the section of their top-level ancestor.
func summarize(doc *markdown.Document) *ProjectSummary {
	sum := &ProjectSummary{
		Name:        doc.Info.Name,
		Description: doc.Info.Description,
		Config:      doc.Config,
		Notes:       len(doc.Info.Notes),
		Goals:       len(doc.Info.Goals),
		PostIts:     len(doc.Info.PostIts),
		Mindmaps:    len(doc.Info.Mindmaps),
	}
	index := make(map[string]int, len(doc.Sections))
	for _, name := range doc.Sections {
		index[name] = len(sum.Sections)
		sum.Sections = append(sum.Sections, SectionCount{Section: name})
	}
	for _, top := range doc.Tasks {
		i, ok := index[top.Section]
		if !ok {
			i = len(sum.Sections)
			index[top.Section] = i
			sum.Sections = append(sum.Sections, SectionCount{Section: top.Section})
		}
		domain.WalkTasks([]domain.Task{top}, func(t *domain.Task, _ int) {
			sum.Sections[i].Total++
			sum.Tasks++
			if t.Completed {
				sum.Sections[i].Completed++
				sum.Completed++
			}
		})
	}
	return sum
}

func (s *projectService) Init(ctx context.Context, name string, force bool) (err error) {
	done := startUseCase(ctx, s.observer, "init-project", map[string]any{"force": force})
	defer func() { done(err) }()

	if name, err = requireText("project name", name); err != nil {
		return err
	}
	return s.projects.Init(ctx, name, force)
}

func (s *projectService) Rename(ctx context.Context, name string) (err error) {
	done := startUseCase(ctx, s.observer, "rename-project", nil)
	defer func() { done(err) }()

	if name, err = requireText("project name", name); err != nil {
		return err
	}
	if err = s.projects.UpdateProjectMeta(ctx, &name, nil); err != nil {
		return fmt.Errorf("renaming project: %w", err)
	}
	return nil
}

func (s *projectService) SetDescription(ctx context.Context, lines []string) (err error) {
	done := startUseCase(ctx, s.observer, "set-description", map[string]any{"lines": len(lines)})
	defer func() { done(err) }()

	for _, l := range lines {
		if strings.HasPrefix(strings.TrimSpace(l), "<!-- ") || strings.HasPrefix(l, "# ") {
			return invalidf("description line %q would start a new section", l)
		}
	}
	if err = s.projects.UpdateProjectMeta(ctx, nil, &lines); err != nil {
		return fmt.Errorf("setting description: %w", err)
	}
	return nil
}

func (s *projectService) Config(ctx context.Context) domain.ProjectConfig {
	return s.projects.ReadProjectConfig(ctx)
}

func (s *projectService) SaveConfig(ctx context.Context, cfg domain.ProjectConfig) (err error) {
	done := startUseCase(ctx, s.observer, "save-config", map[string]any{"assignees": len(cfg.Assignees), "tags": len(cfg.Tags)})
	defer func() { done(err) }()

	if _, err = requireText("start date", cfg.StartDate); err != nil {
		return err
	}
	if err = validDate("start date", cfg.StartDate); err != nil {
		return err
	}
	if cfg.WorkingDaysPerWeek < 1 || cfg.WorkingDaysPerWeek > 7 {
		return invalidf("working days per week must be between 1 and 7, got %d", cfg.WorkingDaysPerWeek)
	}
	cfg.Assignees = cleanList(cfg.Assignees)
	cfg.Tags = cleanList(cfg.Tags)
	if !s.projects.SaveProjectConfig(ctx, cfg) {
		err = fmt.Errorf("saving project config failed")
	}
	return err
}

// cleanList trims entries and drops blanks and repeats.
func cleanList(items []string) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		it = strings.TrimSpace(it)
		if it != "" && !containsString(out, it) {
			out = append(out, it)
		}
	}
	return out
}

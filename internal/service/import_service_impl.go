package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/mdplanner/internal/domain"
	"github.com/alexanderramin/mdplanner/internal/importer"
	"github.com/alexanderramin/mdplanner/internal/repository"
)

type importService struct {
	projects repository.ProjectRepo
	now      func() time.Time
	observer UseCaseObserver
}

func NewImportService(projects repository.ProjectRepo, observers ...UseCaseObserver) ImportService {
	return &importService{
		projects: projects,
		now:      time.Now,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *importService) ImportProject(ctx context.Context, filePath string, force bool) (*ImportResult, error) {
	schema, err := importer.LoadImportSchema(filePath)
	if err != nil {
		return nil, fmt.Errorf("loading import file: %w", err)
	}
	return s.importSchema(ctx, schema, force)
}

func (s *importService) ImportProjectFromSchema(ctx context.Context, schema *importer.ImportSchema, force bool) (*ImportResult, error) {
	return s.importSchema(ctx, schema, force)
}

func (s *importService) importSchema(ctx context.Context, schema *importer.ImportSchema, force bool) (result *ImportResult, err error) {
	fields := map[string]any{"project": schema.Project.Name, "force": force}
	done := startUseCase(ctx, s.observer, "import-project", fields)
	defer func() { done(err) }()

	if errs := importer.ValidateImportSchema(schema); len(errs) > 0 {
		err = formatValidationErrors(errs)
		return nil, err
	}
	if !force {
		if _, readErr := s.projects.ReadDocument(ctx); readErr == nil {
			err = fmt.Errorf("importing project: %w", repository.ErrDocumentExists)
			return nil, err
		}
	}

	doc := importer.Convert(schema, s.now())
	if err = s.projects.ReplaceDocument(ctx, *doc); err != nil {
		return nil, fmt.Errorf("writing imported project: %w", err)
	}

	result = &ImportResult{
		Name:         doc.Info.Name,
		TaskCount:    domain.CountTasks(doc.Tasks),
		NoteCount:    len(doc.Info.Notes),
		GoalCount:    len(doc.Info.Goals),
		PostItCount:  len(doc.Info.PostIts),
		MindmapCount: len(doc.Info.Mindmaps),
	}
	fields["tasks"] = result.TaskCount
	return result, nil
}

func formatValidationErrors(errs []error) error {
	msg := fmt.Sprintf("import validation failed (%d errors):", len(errs))
	for _, e := range errs {
		msg += "\n  - " + e.Error()
	}
	return fmt.Errorf("%s: %w", msg, domain.ErrInvalid)
}

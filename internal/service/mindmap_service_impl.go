package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/mdplanner/internal/domain"
	"github.com/alexanderramin/mdplanner/internal/repository"
)

type mindmapService struct {
	mindmaps repository.MindmapRepo
	projects repository.ProjectRepo
	observer UseCaseObserver
}

func NewMindmapService(mindmaps repository.MindmapRepo, projects repository.ProjectRepo, observers ...UseCaseObserver) MindmapService {
	return &mindmapService{mindmaps: mindmaps, projects: projects, observer: useCaseObserverOrNoop(observers)}
}

func mindmapID(m domain.Mindmap) string { return m.ID }

func (s *mindmapService) List(ctx context.Context) []domain.Mindmap {
	return s.projects.ReadProjectInfo(ctx).Mindmaps
}

func (s *mindmapService) Get(ctx context.Context, id string) (*domain.Mindmap, error) {
	m, ok := findByID(s.List(ctx), id, mindmapID)
	if !ok {
		return nil, notFound("mindmap", id)
	}
	return m, nil
}

func (s *mindmapService) Add(ctx context.Context, title string, outline []domain.OutlineEntry) (created *domain.Mindmap, err error) {
	fields := map[string]any{"nodes": len(outline)}
	done := startUseCase(ctx, s.observer, "add-mindmap", fields)
	defer func() { done(err) }()

	if title, err = requireText("title", title); err != nil {
		return nil, err
	}
	if err = validateOutline(outline); err != nil {
		return nil, err
	}
	var m domain.Mindmap
	m, err = s.mindmaps.AddMindmap(ctx, title, outline)
	if err != nil {
		return nil, fmt.Errorf("adding mindmap: %w", err)
	}
	fields["mindmap_id"] = m.ID
	return &m, nil
}

func (s *mindmapService) Update(ctx context.Context, id string, patch domain.MindmapPatch) (updated *domain.Mindmap, err error) {
	done := startUseCase(ctx, s.observer, "update-mindmap", map[string]any{"mindmap_id": id})
	defer func() { done(err) }()

	if patch.Title != nil {
		title, terr := requireText("title", *patch.Title)
		if terr != nil {
			return nil, terr
		}
		patch.Title = &title
	}
	if patch.Nodes != nil {
		if err = validateOutline(*patch.Nodes); err != nil {
			return nil, err
		}
	}
	var found bool
	found, err = s.mindmaps.UpdateMindmap(ctx, id, patch)
	if err != nil {
		return nil, fmt.Errorf("updating mindmap: %w", err)
	}
	if !found {
		err = notFound("mindmap", id)
		return nil, err
	}
	return s.Get(ctx, id)
}

func (s *mindmapService) Remove(ctx context.Context, id string) (err error) {
	done := startUseCase(ctx, s.observer, "remove-mindmap", map[string]any{"mindmap_id": id})
	defer func() { done(err) }()

	var removed bool
	removed, err = s.mindmaps.DeleteMindmap(ctx, id)
	if err != nil {
		return fmt.Errorf("removing mindmap: %w", err)
	}
	if !removed {
		err = notFound("mindmap", id)
	}
	return err
}

// validateOutline rejects empty nodes and levels that skip a step.
func validateOutline(outline []domain.OutlineEntry) error {
	prev := -1
	for i, n := range outline {
		if strings.TrimSpace(n.Text) == "" {
			return invalidf("node %d: text is required", i+1)
		}
		if n.Level < 0 || n.Level > prev+1 {
			return invalidf("node %d (%q): level %d does not follow level %d", i+1, n.Text, n.Level, prev)
		}
		prev = n.Level
	}
	return nil
}

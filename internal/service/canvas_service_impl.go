package service

import (
	"context"
	"fmt"

	"github.com/alexanderramin/mdplanner/internal/domain"
	"github.com/alexanderramin/mdplanner/internal/repository"
)

type canvasService struct {
	postIts  repository.PostItRepo
	projects repository.ProjectRepo
	observer UseCaseObserver
}

func NewCanvasService(postIts repository.PostItRepo, projects repository.ProjectRepo, observers ...UseCaseObserver) CanvasService {
	return &canvasService{postIts: postIts, projects: projects, observer: useCaseObserverOrNoop(observers)}
}

func postItID(p domain.PostIt) string { return p.ID }

func (s *canvasService) List(ctx context.Context) []domain.PostIt {
	return s.projects.ReadProjectInfo(ctx).PostIts
}

func (s *canvasService) Get(ctx context.Context, id string) (*domain.PostIt, error) {
	p, ok := findByID(s.List(ctx), id, postItID)
	if !ok {
		return nil, notFound("post-it", id)
	}
	return p, nil
}

func (s *canvasService) Add(ctx context.Context, p domain.PostIt) (created *domain.PostIt, err error) {
	fields := map[string]any{"color": string(p.Color)}
	done := startUseCase(ctx, s.observer, "add-postit", fields)
	defer func() { done(err) }()

	if p.Color == "" {
		p.Color = domain.ColorYellow
	}
	if err = validatePostIt(p); err != nil {
		return nil, err
	}
	var saved domain.PostIt
	saved, err = s.postIts.AddPostIt(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("adding post-it: %w", err)
	}
	fields["postit_id"] = saved.ID
	return &saved, nil
}

func (s *canvasService) Update(ctx context.Context, id string, patch domain.PostItPatch) (updated *domain.PostIt, err error) {
	done := startUseCase(ctx, s.observer, "update-postit", map[string]any{"postit_id": id})
	defer func() { done(err) }()

	current, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	candidate := *current
	patch.Apply(&candidate)
	if err = validatePostIt(candidate); err != nil {
		return nil, err
	}

	var found bool
	found, err = s.postIts.UpdatePostIt(ctx, id, patch)
	if err != nil {
		return nil, fmt.Errorf("updating post-it: %w", err)
	}
	if !found {
		err = notFound("post-it", id)
		return nil, err
	}
	return s.Get(ctx, id)
}

func (s *canvasService) Remove(ctx context.Context, id string) (err error) {
	done := startUseCase(ctx, s.observer, "remove-postit", map[string]any{"postit_id": id})
	defer func() { done(err) }()

	var removed bool
	removed, err = s.postIts.DeletePostIt(ctx, id)
	if err != nil {
		return fmt.Errorf("removing post-it: %w", err)
	}
	if !removed {
		err = notFound("post-it", id)
	}
	return err
}

func validatePostIt(p domain.PostIt) error {
	if !domain.ValidPostItColors[string(p.Color)] {
		return invalidf("post-it color %q is not recognised", p.Color)
	}
	if p.Size != nil && (p.Size.Width <= 0 || p.Size.Height <= 0) {
		return invalidf("post-it size must be positive, got %dx%d", p.Size.Width, p.Size.Height)
	}
	return bodyLines("content", domain.PostItLines(p.Content))
}

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/mdplanner/internal/domain"
	"github.com/alexanderramin/mdplanner/internal/repository"
)

type goalService struct {
	goals    repository.GoalRepo
	projects repository.ProjectRepo
	observer UseCaseObserver
}

func NewGoalService(goals repository.GoalRepo, projects repository.ProjectRepo, observers ...UseCaseObserver) GoalService {
	return &goalService{goals: goals, projects: projects, observer: useCaseObserverOrNoop(observers)}
}

func goalID(g domain.Goal) string { return g.ID }

func (s *goalService) List(ctx context.Context) []domain.Goal {
	return s.projects.ReadProjectInfo(ctx).Goals
}

func (s *goalService) Get(ctx context.Context, id string) (*domain.Goal, error) {
	g, ok := findByID(s.List(ctx), id, goalID)
	if !ok {
		return nil, notFound("goal", id)
	}
	return g, nil
}

// Add fills in the default type and status for a goal that has none.
func (s *goalService) Add(ctx context.Context, goal domain.Goal) (created *domain.Goal, err error) {
	fields := map[string]any{"type": string(goal.Type)}
	done := startUseCase(ctx, s.observer, "add-goal", fields)
	defer func() { done(err) }()

	defaults := domain.NewGoal(goal.Title)
	if goal.Title, err = headingText("title", goal.Title); err != nil {
		return nil, err
	}
	if goal.Type == "" {
		goal.Type = defaults.Type
	}
	if goal.Status == "" {
		goal.Status = defaults.Status
	}
	if err = validateGoal(goal); err != nil {
		return nil, err
	}
	var saved domain.Goal
	saved, err = s.goals.AddGoal(ctx, goal)
	if err != nil {
		return nil, fmt.Errorf("adding goal: %w", err)
	}
	fields["goal_id"] = saved.ID
	return &saved, nil
}

func (s *goalService) Update(ctx context.Context, id string, patch domain.GoalPatch) (updated *domain.Goal, err error) {
	done := startUseCase(ctx, s.observer, "update-goal", map[string]any{"goal_id": id})
	defer func() { done(err) }()

	current, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if patch.Title != nil {
		title, terr := headingText("title", *patch.Title)
		if terr != nil {
			return nil, terr
		}
		patch.Title = &title
	}
	candidate := *current
	patch.Apply(&candidate)
	if err = validateGoal(candidate); err != nil {
		return nil, err
	}

	var found bool
	found, err = s.goals.UpdateGoal(ctx, id, patch)
	if err != nil {
		return nil, fmt.Errorf("updating goal: %w", err)
	}
	if !found {
		err = notFound("goal", id)
		return nil, err
	}
	return s.Get(ctx, id)
}

func (s *goalService) Remove(ctx context.Context, id string) (err error) {
	done := startUseCase(ctx, s.observer, "remove-goal", map[string]any{"goal_id": id})
	defer func() { done(err) }()

	var removed bool
	removed, err = s.goals.DeleteGoal(ctx, id)
	if err != nil {
		return fmt.Errorf("removing goal: %w", err)
	}
	if !removed {
		err = notFound("goal", id)
	}
	return err
}

func validateGoal(g domain.Goal) error {
	if !domain.ValidGoalTypes[string(g.Type)] {
		return invalidf("goal type %q is not one of enterprise, project", g.Type)
	}
	if !domain.ValidGoalStatuses[string(g.Status)] {
		return invalidf("goal status %q is not recognised", g.Status)
	}
	if err := plainValue("kpi", g.KPI); err != nil {
		return err
	}
	if err := bodyLines("description", strings.Split(g.Description, "\n")); err != nil {
		return err
	}
	if err := validDate("start", g.StartDate); err != nil {
		return err
	}
	if err := validDate("end", g.EndDate); err != nil {
		return err
	}
	if g.StartDate != "" && g.EndDate != "" && g.EndDate < g.StartDate {
		return invalidf("goal ends (%s) before it starts (%s)", g.EndDate, g.StartDate)
	}
	return nil
}

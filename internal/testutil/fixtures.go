package testutil

import (
	"github.com/alexanderramin/mdplanner/internal/domain"
)

// Task options
type TaskOption func(*domain.Task)

func WithTaskID(id string) TaskOption {
	return func(t *domain.Task) {
		t.ID = id
	}
}

func WithSection(s string) TaskOption {
	return func(t *domain.Task) {
		t.Section = s
	}
}

func WithCompleted() TaskOption {
	return func(t *domain.Task) {
		t.Completed = true
	}
}

func WithPriority(p int) TaskOption {
	return func(t *domain.Task) {
		t.Config.Priority = p
	}
}

func WithTags(tags ...string) TaskOption {
	return func(t *domain.Task) {
		t.Config.Tag = tags
	}
}

func WithAssignee(a string) TaskOption {
	return func(t *domain.Task) {
		t.Config.Assignee = a
	}
}

func WithBlockedBy(ids ...string) TaskOption {
	return func(t *domain.Task) {
		t.Config.BlockedBy = ids
	}
}

func WithDescription(lines ...string) TaskOption {
	return func(t *domain.Task) {
		t.Description = lines
	}
}

func WithChildren(children ...domain.Task) TaskOption {
	return func(t *domain.Task) {
		for i := range children {
			children[i].ParentID = t.ID
			children[i].Section = t.Section
		}
		t.Children = children
	}
}

// NewTestTask builds a top-level task in the "Todo" section. Options apply
// in order, so WithChildren should come after WithTaskID and WithSection.
func NewTestTask(title string, opts ...TaskOption) domain.Task {
	t := domain.Task{
		Title:   title,
		Section: "Todo",
	}
	for _, opt := range opts {
		opt(&t)
	}
	return t
}

// Goal options
type GoalOption func(*domain.Goal)

func WithGoalStatus(s domain.GoalStatus) GoalOption {
	return func(g *domain.Goal) {
		g.Status = s
	}
}

func WithGoalType(gt domain.GoalType) GoalOption {
	return func(g *domain.Goal) {
		g.Type = gt
	}
}

func WithKPI(kpi string) GoalOption {
	return func(g *domain.Goal) {
		g.KPI = kpi
	}
}

func NewTestGoal(title string, opts ...GoalOption) domain.Goal {
	g := domain.NewGoal(title)
	for _, opt := range opts {
		opt(&g)
	}
	return g
}

// PostIt options
type PostItOption func(*domain.PostIt)

func WithColor(c domain.PostItColor) PostItOption {
	return func(p *domain.PostIt) {
		p.Color = c
	}
}

func WithPosition(x, y int) PostItOption {
	return func(p *domain.PostIt) {
		p.Position = domain.Position{X: x, Y: y}
	}
}

func WithSize(w, h int) PostItOption {
	return func(p *domain.PostIt) {
		p.Size = &domain.Size{Width: w, Height: h}
	}
}

func NewTestPostIt(content string, opts ...PostItOption) domain.PostIt {
	p := domain.PostIt{Content: content, Color: domain.ColorYellow}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

func NewTestNote(title, content string) domain.Note {
	return domain.Note{Title: title, Content: content}
}

package domain

type Goal struct {
	ID          string     `json:"id" yaml:"id"`
	Title       string     `json:"title" yaml:"title"`
	Description string     `json:"description" yaml:"description"`
	Type        GoalType   `json:"type" yaml:"type"`
	KPI         string     `json:"kpi" yaml:"kpi"`
	StartDate   string     `json:"startDate" yaml:"startDate"`
	EndDate     string     `json:"endDate" yaml:"endDate"`
	Status      GoalStatus `json:"status" yaml:"status"`
}

// NewGoal returns a goal with the default type and status.
func NewGoal(title string) Goal {
	return Goal{Title: title, Type: GoalProject, Status: GoalPlanning}
}

type GoalPatch struct {
	Title       *string     `json:"title,omitempty"`
	Description *string     `json:"description,omitempty"`
	Type        *GoalType   `json:"type,omitempty"`
	KPI         *string     `json:"kpi,omitempty"`
	StartDate   *string     `json:"startDate,omitempty"`
	EndDate     *string     `json:"endDate,omitempty"`
	Status      *GoalStatus `json:"status,omitempty"`
}

func (p GoalPatch) Apply(g *Goal) {
	g.Title = ValueOr(g.Title, p.Title)
	g.Description = ValueOr(g.Description, p.Description)
	g.KPI = ValueOr(g.KPI, p.KPI)
	g.StartDate = ValueOr(g.StartDate, p.StartDate)
	g.EndDate = ValueOr(g.EndDate, p.EndDate)
	if p.Type != nil {
		g.Type = *p.Type
	}
	if p.Status != nil {
		g.Status = *p.Status
	}
}

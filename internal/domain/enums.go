package domain

type GoalType string

const (
	GoalEnterprise GoalType = "enterprise"
	GoalProject    GoalType = "project"
)

type GoalStatus string

const (
	GoalPlanning GoalStatus = "planning"
	GoalOnTrack  GoalStatus = "on-track"
	GoalAtRisk   GoalStatus = "at-risk"
	GoalLate     GoalStatus = "late"
	GoalSuccess  GoalStatus = "success"
	GoalFailed   GoalStatus = "failed"
)

type PostItColor string

const (
	ColorYellow PostItColor = "yellow"
	ColorPink   PostItColor = "pink"
	ColorBlue   PostItColor = "blue"
	ColorGreen  PostItColor = "green"
	ColorPurple PostItColor = "purple"
	ColorOrange PostItColor = "orange"
)

// ValidGoalTypes is the canonical set of accepted goal type strings.
var ValidGoalTypes = map[string]bool{
	"enterprise": true, "project": true,
}

// ValidGoalStatuses is the canonical set of accepted goal status strings.
var ValidGoalStatuses = map[string]bool{
	"planning": true, "on-track": true, "at-risk": true,
	"late": true, "success": true, "failed": true,
}

// ValidPostItColors is the canonical set of accepted sticky note colors.
var ValidPostItColors = map[string]bool{
	"yellow": true, "pink": true, "blue": true,
	"green": true, "purple": true, "orange": true,
}

// DefaultBoardSections is used when a document has no Board sections yet.
var DefaultBoardSections = []string{"Ideas", "Todo", "In Progress", "Done"}

const (
	DefaultWorkingDays = 5
	MinPriority        = 1
	MaxPriority        = 5
)

package domain

import "time"

type ProjectConfig struct {
	StartDate          string   `json:"startDate" yaml:"startDate"`
	WorkingDaysPerWeek int      `json:"workingDaysPerWeek" yaml:"workingDaysPerWeek"`
	Assignees          []string `json:"assignees" yaml:"assignees"`
	Tags               []string `json:"tags" yaml:"tags"`
}

// DefaultProjectConfig starts today with a five-day working week.
func DefaultProjectConfig(now time.Time) ProjectConfig {
	return ProjectConfig{
		StartDate:          now.Format("2006-01-02"),
		WorkingDaysPerWeek: DefaultWorkingDays,
		Assignees:          []string{},
		Tags:               []string{},
	}
}

type ProjectInfo struct {
	Name        string    `json:"name" yaml:"name"`
	Description []string  `json:"description" yaml:"description"`
	Notes       []Note    `json:"notes" yaml:"notes"`
	Goals       []Goal    `json:"goals" yaml:"goals"`
	PostIts     []PostIt  `json:"postIts" yaml:"postIts"`
	Mindmaps    []Mindmap `json:"mindmaps" yaml:"mindmaps"`
}

const DefaultProjectName = "Untitled Project"

// EmptyProjectInfo is returned when a document cannot be read.
func EmptyProjectInfo() ProjectInfo {
	return ProjectInfo{
		Name:        DefaultProjectName,
		Description: []string{},
		Notes:       []Note{},
		Goals:       []Goal{},
		PostIts:     []PostIt{},
		Mindmaps:    []Mindmap{},
	}
}

package importer

import (
	"encoding/json"
	"fmt"
	"os"
)

// ImportSchema is the top-level JSON structure for project import.
type ImportSchema struct {
	Project  ProjectImport   `json:"project"`
	Config   *ConfigImport   `json:"config,omitempty"`
	Sections []string        `json:"sections,omitempty"`
	Tasks    []TaskImport    `json:"tasks"`
	Notes    []NoteImport    `json:"notes,omitempty"`
	Goals    []GoalImport    `json:"goals,omitempty"`
	PostIts  []PostItImport  `json:"postits,omitempty"`
	Mindmaps []MindmapImport `json:"mindmaps,omitempty"`
}

// ProjectImport defines the document title and description.
type ProjectImport struct {
	Name        string   `json:"name"`
	Description []string `json:"description,omitempty"`
}

// ConfigImport defines the Configurations section.
type ConfigImport struct {
	StartDate   string   `json:"start_date,omitempty"`
	WorkingDays *int     `json:"working_days,omitempty"`
	Assignees   []string `json:"assignees,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

// TaskImport defines a task and, recursively, its subtasks. An empty ID is
// assigned on conversion.
type TaskImport struct {
	ID          string       `json:"id,omitempty"`
	Title       string       `json:"title"`
	Section     string       `json:"section,omitempty"`
	Completed   bool         `json:"completed,omitempty"`
	Tag         []string     `json:"tag,omitempty"`
	DueDate     string       `json:"due_date,omitempty"`
	Assignee    string       `json:"assignee,omitempty"`
	Priority    *int         `json:"priority,omitempty"`
	Effort      *int         `json:"effort,omitempty"`
	BlockedBy   []string     `json:"blocked_by,omitempty"`
	Milestone   string       `json:"milestone,omitempty"`
	Description []string     `json:"description,omitempty"`
	Children    []TaskImport `json:"children,omitempty"`
}

type NoteImport struct {
	ID      string `json:"id,omitempty"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

type GoalImport struct {
	ID          string `json:"id,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Type        string `json:"type,omitempty"`
	KPI         string `json:"kpi,omitempty"`
	Start       string `json:"start,omitempty"`
	End         string `json:"end,omitempty"`
	Status      string `json:"status,omitempty"`
}

type PostItImport struct {
	ID      string `json:"id,omitempty"`
	Content string `json:"content"`
	Color   string `json:"color,omitempty"`
	X       int    `json:"x"`
	Y       int    `json:"y"`
	Width   *int   `json:"width,omitempty"`
	Height  *int   `json:"height,omitempty"`
}

type MindmapImport struct {
	ID    string              `json:"id,omitempty"`
	Title string              `json:"title"`
	Nodes []MindmapNodeImport `json:"nodes"`
}

// MindmapNodeImport is one outline entry; Level 0 is a root.
type MindmapNodeImport struct {
	Text  string `json:"text"`
	Level int    `json:"level"`
}

// LoadImportSchema reads and parses a project import JSON file.
func LoadImportSchema(path string) (*ImportSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var schema ImportSchema
	if err := json.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("parsing import file: %w", err)
	}
	return &schema, nil
}

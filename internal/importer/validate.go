package importer

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/alexanderramin/mdplanner/internal/domain"
	"github.com/alexanderramin/mdplanner/internal/idalloc"
)

var classIDPattern = regexp.MustCompile(`^([a-z]+)_(\d+)$`)

// ValidateImportSchema checks the import schema for errors before conversion.
// Returns a slice of all validation errors found.
func ValidateImportSchema(schema *ImportSchema) []error {
	var errs []error

	if strings.TrimSpace(schema.Project.Name) == "" {
		errs = append(errs, fmt.Errorf("project.name is required"))
	}
	errs = append(errs, validateConfig(schema.Config)...)
	errs = append(errs, validateSections(schema.Sections)...)

	taskIDs := make(map[string]bool)
	collectTaskIDs(schema.Tasks, taskIDs, &errs)
	errs = append(errs, validateTasks("tasks", schema.Tasks, taskIDs)...)

	errs = append(errs, validateNotes(schema.Notes)...)
	errs = append(errs, validateGoals(schema.Goals)...)
	errs = append(errs, validatePostIts(schema.PostIts)...)
	errs = append(errs, validateMindmaps(schema.Mindmaps)...)

	return errs
}

func validateConfig(c *ConfigImport) []error {
	if c == nil {
		return nil
	}
	var errs []error
	if c.StartDate != "" {
		if _, err := time.Parse("2006-01-02", c.StartDate); err != nil {
			errs = append(errs, fmt.Errorf("config.start_date: invalid date format %q (expected YYYY-MM-DD)", c.StartDate))
		}
	}
	if c.WorkingDays != nil && (*c.WorkingDays < 1 || *c.WorkingDays > 7) {
		errs = append(errs, fmt.Errorf("config.working_days must be between 1 and 7, got %d", *c.WorkingDays))
	}
	return errs
}

func validateSections(sections []string) []error {
	var errs []error
	seen := make(map[string]bool, len(sections))
	for i, s := range sections {
		name := strings.TrimSpace(s)
		if name == "" {
			errs = append(errs, fmt.Errorf("sections[%d]: name is required", i))
			continue
		}
		if seen[name] {
			errs = append(errs, fmt.Errorf("sections[%d]: duplicate section %q", i, name))
		}
		seen[name] = true
	}
	return errs
}

func collectTaskIDs(tasks []TaskImport, ids map[string]bool, errs *[]error) {
	for _, t := range tasks {
		if t.ID != "" {
			if ids[t.ID] {
				*errs = append(*errs, fmt.Errorf("task id %q is duplicated", t.ID))
			}
			if strings.ContainsAny(t.ID, "() \t") {
				*errs = append(*errs, fmt.Errorf("task id %q must not contain spaces or parentheses", t.ID))
			}
			ids[t.ID] = true
		}
		collectTaskIDs(t.Children, ids, errs)
	}
}

func validateTasks(prefix string, tasks []TaskImport, ids map[string]bool) []error {
	var errs []error
	for i, t := range tasks {
		path := fmt.Sprintf("%s[%d]", prefix, i)
		if strings.TrimSpace(t.Title) == "" {
			errs = append(errs, fmt.Errorf("%s.title is required", path))
		}
		if t.Priority != nil && (*t.Priority < domain.MinPriority || *t.Priority > domain.MaxPriority) {
			errs = append(errs, fmt.Errorf("%s.priority must be between %d and %d, got %d", path, domain.MinPriority, domain.MaxPriority, *t.Priority))
		}
		if t.Effort != nil && *t.Effort < 0 {
			errs = append(errs, fmt.Errorf("%s.effort must not be negative", path))
		}
		for _, ref := range t.BlockedBy {
			if !ids[ref] {
				errs = append(errs, fmt.Errorf("%s.blocked_by: unknown task id %q", path, ref))
			}
			if ref == t.ID && ref != "" {
				errs = append(errs, fmt.Errorf("%s.blocked_by: task cannot block itself", path))
			}
		}
		errs = append(errs, validateTasks(path+".children", t.Children, ids)...)
	}
	return errs
}

// validateEntityID checks an optional `<class>_<N>` identifier and records it.
func validateEntityID(path, id string, class idalloc.Class, seen map[string]bool) []error {
	if id == "" {
		return nil
	}
	var errs []error
	m := classIDPattern.FindStringSubmatch(id)
	if m == nil || m[1] != string(class) {
		errs = append(errs, fmt.Errorf("%s.id %q must look like %s_<number>", path, id, class))
	}
	if seen[id] {
		errs = append(errs, fmt.Errorf("%s.id %q is duplicated", path, id))
	}
	seen[id] = true
	return errs
}

func validateNotes(notes []NoteImport) []error {
	var errs []error
	seen := make(map[string]bool)
	for i, n := range notes {
		path := fmt.Sprintf("notes[%d]", i)
		errs = append(errs, validateEntityID(path, n.ID, idalloc.Note, seen)...)
		if strings.TrimSpace(n.Title) == "" {
			errs = append(errs, fmt.Errorf("%s.title is required", path))
		}
	}
	return errs
}

func validateGoals(goals []GoalImport) []error {
	var errs []error
	seen := make(map[string]bool)
	for i, g := range goals {
		path := fmt.Sprintf("goals[%d]", i)
		errs = append(errs, validateEntityID(path, g.ID, idalloc.Goal, seen)...)
		if strings.TrimSpace(g.Title) == "" {
			errs = append(errs, fmt.Errorf("%s.title is required", path))
		}
		if g.Type != "" && !domain.ValidGoalTypes[g.Type] {
			errs = append(errs, fmt.Errorf("%s.type: invalid value %q", path, g.Type))
		}
		if g.Status != "" && !domain.ValidGoalStatuses[g.Status] {
			errs = append(errs, fmt.Errorf("%s.status: invalid value %q", path, g.Status))
		}
	}
	return errs
}

func validatePostIts(postIts []PostItImport) []error {
	var errs []error
	seen := make(map[string]bool)
	for i, p := range postIts {
		path := fmt.Sprintf("postits[%d]", i)
		errs = append(errs, validateEntityID(path, p.ID, idalloc.PostIt, seen)...)
		if p.Color != "" && !domain.ValidPostItColors[p.Color] {
			errs = append(errs, fmt.Errorf("%s.color: invalid value %q", path, p.Color))
		}
		if p.Width != nil && *p.Width <= 0 {
			errs = append(errs, fmt.Errorf("%s.width must be positive", path))
		}
		if p.Height != nil && *p.Height <= 0 {
			errs = append(errs, fmt.Errorf("%s.height must be positive", path))
		}
	}
	return errs
}

func validateMindmaps(mindmaps []MindmapImport) []error {
	var errs []error
	seen := make(map[string]bool)
	for i, m := range mindmaps {
		path := fmt.Sprintf("mindmaps[%d]", i)
		errs = append(errs, validateEntityID(path, m.ID, idalloc.Mindmap, seen)...)
		if strings.TrimSpace(m.Title) == "" {
			errs = append(errs, fmt.Errorf("%s.title is required", path))
		}
		prev := -1
		for j, n := range m.Nodes {
			if strings.TrimSpace(n.Text) == "" {
				errs = append(errs, fmt.Errorf("%s.nodes[%d].text is required", path, j))
			}
			if n.Level < 0 || n.Level > prev+1 {
				errs = append(errs, fmt.Errorf("%s.nodes[%d].level %d does not follow level %d", path, j, n.Level, prev))
			}
			prev = n.Level
		}
	}
	return errs
}

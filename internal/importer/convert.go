package importer

import (
	"strings"
	"time"

	"github.com/alexanderramin/mdplanner/internal/domain"
	"github.com/alexanderramin/mdplanner/internal/idalloc"
	"github.com/alexanderramin/mdplanner/internal/markdown"
)

// Convert transforms a validated ImportSchema into a document ready to be
// written. Call ValidateImportSchema first; Convert assumes the schema is
// valid. Entities without an ID get the next free one of their class, above
// every ID the schema supplies.
func Convert(schema *ImportSchema, now time.Time) *markdown.Document {
	alloc := idalloc.New("")
	observeSchemaIDs(schema, alloc)

	info := domain.EmptyProjectInfo()
	info.Name = strings.TrimSpace(schema.Project.Name)
	info.Description = append([]string{}, schema.Project.Description...)

	doc := &markdown.Document{
		Info:   info,
		Config: convertConfig(schema.Config, now),
		Tasks:  convertTasks(schema.Tasks, "", "", alloc),
	}

	for _, s := range schema.Sections {
		doc.Sections = append(doc.Sections, strings.TrimSpace(s))
	}
	if len(doc.Sections) == 0 {
		doc.Sections = append([]string{}, domain.DefaultBoardSections...)
	}
	// Tasks without a section land in the first column.
	for i := range doc.Tasks {
		if doc.Tasks[i].Section == "" {
			section := doc.Sections[0]
			domain.TaskPatch{Section: &section}.Apply(&doc.Tasks[i])
		}
	}

	stamp := markdown.Timestamp(now)
	for _, n := range schema.Notes {
		id := n.ID
		if id == "" {
			id = alloc.Next(idalloc.Note)
		}
		doc.Info.Notes = append(doc.Info.Notes, domain.Note{
			ID: id, Title: n.Title, Content: n.Content, CreatedAt: stamp, UpdatedAt: stamp,
		})
	}

	for _, g := range schema.Goals {
		goal := domain.NewGoal(g.Title)
		goal.ID = g.ID
		if goal.ID == "" {
			goal.ID = alloc.Next(idalloc.Goal)
		}
		goal.Description = g.Description
		goal.KPI = g.KPI
		goal.StartDate = g.Start
		goal.EndDate = g.End
		if g.Type != "" {
			goal.Type = domain.GoalType(g.Type)
		}
		if g.Status != "" {
			goal.Status = domain.GoalStatus(g.Status)
		}
		doc.Info.Goals = append(doc.Info.Goals, goal)
	}

	for _, p := range schema.PostIts {
		postIt := domain.PostIt{
			ID:       p.ID,
			Content:  domain.NormalizePostItContent(p.Content),
			Color:    domain.PostItColor(domain.Coalesce(p.Color, string(domain.ColorYellow))),
			Position: domain.Position{X: p.X, Y: p.Y},
		}
		if postIt.ID == "" {
			postIt.ID = alloc.Next(idalloc.PostIt)
		}
		if p.Width != nil || p.Height != nil {
			postIt.Size = &domain.Size{
				Width:  domain.ValueOr(0, p.Width),
				Height: domain.ValueOr(0, p.Height),
			}
		}
		doc.Info.PostIts = append(doc.Info.PostIts, postIt)
	}

	for _, m := range schema.Mindmaps {
		id := m.ID
		if id == "" {
			id = alloc.Next(idalloc.Mindmap)
		}
		outline := make([]domain.OutlineEntry, 0, len(m.Nodes))
		for _, n := range m.Nodes {
			outline = append(outline, domain.OutlineEntry{Text: strings.TrimSpace(n.Text), Level: n.Level})
		}
		doc.Info.Mindmaps = append(doc.Info.Mindmaps, domain.Mindmap{
			ID: id, Title: m.Title, Nodes: domain.LinkMindmapNodes(id, outline),
		})
	}

	return doc
}

func observeSchemaIDs(schema *ImportSchema, alloc *idalloc.Allocator) {
	var walk func([]TaskImport)
	walk = func(tasks []TaskImport) {
		for _, t := range tasks {
			alloc.Observe(t.ID)
			walk(t.Children)
		}
	}
	walk(schema.Tasks)
	for _, n := range schema.Notes {
		alloc.Observe(n.ID)
	}
	for _, g := range schema.Goals {
		alloc.Observe(g.ID)
	}
	for _, p := range schema.PostIts {
		alloc.Observe(p.ID)
	}
	for _, m := range schema.Mindmaps {
		alloc.Observe(m.ID)
	}
}

func convertConfig(c *ConfigImport, now time.Time) domain.ProjectConfig {
	cfg := domain.DefaultProjectConfig(now)
	if c == nil {
		return cfg
	}
	cfg.StartDate = domain.Coalesce(c.StartDate, cfg.StartDate)
	cfg.WorkingDaysPerWeek = domain.ValueOr(cfg.WorkingDaysPerWeek, c.WorkingDays)
	cfg.Assignees = append(cfg.Assignees, c.Assignees...)
	cfg.Tags = append(cfg.Tags, c.Tags...)
	return cfg
}

// convertTasks assigns IDs in document order, parents before children.
func convertTasks(tasks []TaskImport, parentID, section string, alloc *idalloc.Allocator) []domain.Task {
	out := make([]domain.Task, 0, len(tasks))
	for _, t := range tasks {
		task := domain.Task{
			ID:        t.ID,
			Title:     strings.TrimSpace(t.Title),
			Completed: t.Completed,
			Section:   domain.Coalesce(section, strings.TrimSpace(t.Section)),
			Config: domain.TaskConfig{
				Tag:       t.Tag,
				DueDate:   t.DueDate,
				Assignee:  t.Assignee,
				Priority:  domain.ValueOr(0, t.Priority),
				Effort:    domain.ValueOr(0, t.Effort),
				BlockedBy: t.BlockedBy,
				Milestone: t.Milestone,
			},
			Description: t.Description,
			ParentID:    parentID,
		}
		if task.ID == "" {
			task.ID = alloc.NextTask()
		}
		if len(t.Children) > 0 {
			task.Children = convertTasks(t.Children, task.ID, task.Section, alloc)
		}
		out = append(out, task)
	}
	return out
}

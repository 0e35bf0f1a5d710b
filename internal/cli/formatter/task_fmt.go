package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/mdplanner/internal/domain"
)

// taskTreeItems flattens a task forest into tree rows.
func taskTreeItems(tasks []domain.Task, level int, items []TreeItem) []TreeItem {
	for i, t := range tasks {
		items = append(items, TreeItem{
			Title:     t.Title,
			ID:        t.ID,
			Level:     level,
			IsLast:    i == len(tasks)-1,
			Completed: t.Completed,
			Detail:    TaskBadges(t.Config),
		})
		items = taskTreeItems(t.Children, level+1, items)
	}
	return items
}

// FormatBoard renders each section in order with its task tree. Tasks whose
// section is not listed are shown under their own heading at the end.
func FormatBoard(sections []string, tasks []domain.Task) string {
	bySection := make(map[string][]domain.Task)
	order := append([]string{}, sections...)
	for _, t := range tasks {
		if _, ok := bySection[t.Section]; !ok && !containsStr(order, t.Section) {
			order = append(order, t.Section)
		}
		bySection[t.Section] = append(bySection[t.Section], t)
	}

	var b strings.Builder
	for i, section := range order {
		if i > 0 {
			b.WriteString("\n")
		}
		list := bySection[section]
		title := section
		if title == "" {
			title = "Unsectioned"
		}
		b.WriteString(Header(fmt.Sprintf("%s (%d)", title, domain.CountTasks(list))) + "\n")
		if len(list) == 0 {
			b.WriteString(Dim("(empty)") + "\n")
			continue
		}
		b.WriteString(RenderTree(taskTreeItems(list, 0, nil)))
	}
	return b.String()
}

// FormatTaskDetail renders one task with its attributes and subtasks.
func FormatTaskDetail(t domain.Task) string {
	var b strings.Builder
	b.WriteString(Checkbox(t.Completed) + " " + StyleBold.Render(t.Title) + "\n\n")

	field := func(label, value string) {
		b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render(fmt.Sprintf("%-10s", label)), value))
	}
	field("ID", t.ID)
	field("SECTION", OrDash(t.Section))
	if t.ParentID != "" {
		field("PARENT", t.ParentID)
	}
	field("PRIORITY", PriorityBadge(t.Config.Priority))
	field("DUE", OrDash(t.Config.DueDate))
	field("ASSIGNEE", OrDash(t.Config.Assignee))
	field("TAGS", OrDash(strings.Join(t.Config.Tag, ", ")))
	if t.Config.Effort != 0 {
		field("EFFORT", itoa(t.Config.Effort))
	}
	if len(t.Config.BlockedBy) > 0 {
		field("BLOCKED BY", strings.Join(t.Config.BlockedBy, ", "))
	}
	if t.Config.Milestone != "" {
		field("MILESTONE", t.Config.Milestone)
	}
	if len(t.Description) > 0 {
		b.WriteString("\n" + strings.Join(t.Description, "\n") + "\n")
	}
	if len(t.Children) > 0 {
		b.WriteString("\n" + Header("Subtasks") + "\n")
		b.WriteString(RenderTree(taskTreeItems(t.Children, 0, nil)))
	}
	return RenderBox("Task", strings.TrimRight(b.String(), "\n"))
}

func containsStr(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

package markdown

import (
	"regexp"
	"strings"

	"github.com/alexanderramin/mdplanner/internal/domain"
	"github.com/alexanderramin/mdplanner/internal/idalloc"
	"github.com/alexanderramin/mdplanner/internal/inlineconfig"
)

// taskIndent is the number of spaces per subtask level.
const taskIndent = "  "

var (
	checkboxPattern = regexp.MustCompile(`^(\s*)- \[([ xX])\](?:\s+(.*))?$`)
	taskIDPrefix    = regexp.MustCompile(`^\(([^)]+)\)\s*`)
)

func isCheckboxLine(line string) bool {
	return checkboxPattern.MatchString(strings.TrimRight(line, " \t"))
}

// splitTaskID detaches a leading `(id)` from the text after the checkbox.
func splitTaskID(rest string) (id, remainder string) {
	if m := taskIDPrefix.FindStringSubmatch(rest); m != nil {
		return strings.TrimSpace(m[1]), rest[len(m[0]):]
	}
	return "", rest
}

// observeTaskIDs reports every explicit ID in the Board to alloc before any
// ID is generated, so an ID-less task never takes an ID written further down.
func observeTaskIDs(lines []string, start int, alloc *idalloc.Allocator) {
	for _, line := range lines[start:] {
		if indentOf(line) == 0 && isSectionEnd(strings.TrimSpace(line), SectionBoard) {
			return
		}
		m := checkboxPattern.FindStringSubmatch(strings.TrimRight(line, " \t"))
		if m == nil {
			continue
		}
		if id, _ := splitTaskID(strings.TrimSpace(m[3])); id != "" {
			alloc.Observe(id)
		}
	}
}

// scanBoard reads `## Section` headings and the task trees beneath them.
// Tasks above the first section heading get an empty section.
func scanBoard(lines []string, start int, alloc *idalloc.Allocator) ([]domain.Task, []string, int) {
	var (
		tasks    []domain.Task
		sections []string
		current  string
	)
	observeTaskIDs(lines, start, alloc)
	i := start
	for i < len(lines) {
		trimmed := strings.TrimSpace(lines[i])
		if indentOf(lines[i]) == 0 && isSectionEnd(trimmed, SectionBoard) {
			break
		}
		if isEntityHeading(trimmed) {
			current = strings.TrimSpace(trimmed[3:])
			if current != "" && !contains(sections, current) {
				sections = append(sections, current)
			}
			i++
			continue
		}
		if isCheckboxLine(lines[i]) {
			task, next, ok := parseTask(lines, i, current, alloc)
			if ok {
				tasks = append(tasks, task)
			}
			i = next
			continue
		}
		i++
	}
	return tasks, sections, i
}

// parseTask reads the checkbox line at start and everything indented below
// it. Deeper checkbox lines become children, other deeper lines become
// description. The subtree ends at the first non-blank line indented no
// deeper than the task itself.
func parseTask(lines []string, start int, section string, alloc *idalloc.Allocator) (domain.Task, int, bool) {
	line := strings.TrimRight(lines[start], " \t")
	m := checkboxPattern.FindStringSubmatch(line)
	i := start + 1
	if m == nil {
		return domain.Task{}, i, false
	}
	level := len(m[1])

	task := domain.Task{
		Completed: strings.EqualFold(m[2], "x"),
		Section:   section,
	}
	var rest string
	task.ID, rest = splitTaskID(strings.TrimSpace(m[3]))
	title, cfg, ok := inlineconfig.SplitTrailing(rest)
	if ok {
		task.Config = inlineconfig.DecodeTaskConfig(inlineconfig.Parse(cfg))
	} else {
		title = rest
	}
	task.Title = strings.TrimSpace(title)
	if task.ID == "" {
		task.ID = alloc.NextTask()
	}

	for i < len(lines) {
		next := lines[i]
		trimmed := strings.TrimSpace(next)
		if trimmed == "" {
			i++
			continue
		}
		// Deeper lines belong to the task even when they look like headings.
		if indentOf(next) <= level {
			break
		}
		if isCheckboxLine(next) {
			child, after, ok := parseTask(lines, i, section, alloc)
			if ok {
				child.ParentID = task.ID
				task.Children = append(task.Children, child)
			}
			i = after
			continue
		}
		task.Description = append(task.Description, trimmed)
		i++
	}

	if task.Title == "" {
		return domain.Task{}, i, false
	}
	return task, i, true
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// boardSections returns order followed by any section that a top-level
// task uses but order leaves out, so that no task is dropped on write.
func boardSections(order []string, tasks []domain.Task) []string {
	out := make([]string, 0, len(order))
	for _, s := range order {
		if s != "" && !contains(out, s) {
			out = append(out, s)
		}
	}
	for _, t := range tasks {
		if t.Section != "" && !contains(out, t.Section) {
			out = append(out, t.Section)
		}
	}
	return out
}

// RenderTask writes a task line with its description and children at the
// given nesting level.
func RenderTask(t domain.Task, level int) []string {
	indent := strings.Repeat(taskIndent, level)
	checkbox := "[ ]"
	if t.Completed {
		checkbox = "[x]"
	}
	line := indent + "- " + checkbox
	if t.ID != "" {
		line += " (" + t.ID + ")"
	}
	line += " " + t.Title
	if cfg := inlineconfig.Format(inlineconfig.EncodeTaskConfig(t.Config)); cfg != "" {
		line += " " + cfg
	}
	out := []string{line}
	for _, d := range t.Description {
		if d = strings.TrimSpace(d); d != "" {
			out = append(out, indent+taskIndent+d)
		}
	}
	for _, c := range t.Children {
		out = append(out, RenderTask(c, level+1)...)
	}
	return out
}

func renderBoard(tasks []domain.Task, order []string) []string {
	out := []string{SectionBoard.Marker(), SectionBoard.Heading(), ""}

	var unsectioned []string
	for _, t := range tasks {
		if t.Section == "" {
			unsectioned = append(unsectioned, RenderTask(t, 0)...)
		}
	}
	if len(unsectioned) > 0 {
		out = append(out, unsectioned...)
		out = append(out, "")
	}

	for _, section := range boardSections(order, tasks) {
		out = append(out, "## "+section, "")
		for _, t := range tasks {
			if t.Section == section {
				out = append(out, RenderTask(t, 0)...)
			}
		}
		out = append(out, "")
	}
	return out
}

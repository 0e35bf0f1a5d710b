package domain

// TaskConfig holds the optional inline attributes of a task line.
// Zero values mean "unset": Priority and Effort of 0 are never written.
type TaskConfig struct {
	Tag       []string `json:"tag,omitempty" yaml:"tag,omitempty"`
	DueDate   string   `json:"due_date,omitempty" yaml:"due_date,omitempty"`
	Assignee  string   `json:"assignee,omitempty" yaml:"assignee,omitempty"`
	Priority  int      `json:"priority,omitempty" yaml:"priority,omitempty"`
	Effort    int      `json:"effort,omitempty" yaml:"effort,omitempty"`
	BlockedBy []string `json:"blocked_by,omitempty" yaml:"blocked_by,omitempty"`
	Milestone string   `json:"milestone,omitempty" yaml:"milestone,omitempty"`
}

// IsZero reports whether no config attribute is set.
func (c TaskConfig) IsZero() bool {
	return len(c.Tag) == 0 && c.DueDate == "" && c.Assignee == "" &&
		c.Priority == 0 && c.Effort == 0 && len(c.BlockedBy) == 0 && c.Milestone == ""
}

type Task struct {
	ID          string     `json:"id" yaml:"id"`
	Title       string     `json:"title" yaml:"title"`
	Completed   bool       `json:"completed" yaml:"completed"`
	Section     string     `json:"section" yaml:"section"`
	Config      TaskConfig `json:"config" yaml:"config"`
	Description []string   `json:"description,omitempty" yaml:"description,omitempty"`
	Children    []Task     `json:"children,omitempty" yaml:"children,omitempty"`
	ParentID    string     `json:"parentId,omitempty" yaml:"parentId,omitempty"`
}

// TaskPatch is a partial task update. Nil fields are left untouched, which
// keeps Children and ParentID intact unless a caller supplies them.
type TaskPatch struct {
	Title       *string     `json:"title,omitempty"`
	Completed   *bool       `json:"completed,omitempty"`
	Section     *string     `json:"section,omitempty"`
	Config      *TaskConfig `json:"config,omitempty"`
	Description *[]string   `json:"description,omitempty"`
	Children    *[]Task     `json:"children,omitempty"`
	ParentID    *string     `json:"parentId,omitempty"`
}

// IsEmpty reports whether the patch changes nothing.
func (p TaskPatch) IsEmpty() bool {
	return p.Title == nil && p.Completed == nil && p.Section == nil && p.Config == nil &&
		p.Description == nil && p.Children == nil && p.ParentID == nil
}

// Apply merges the patch into t.
func (p TaskPatch) Apply(t *Task) {
	t.Title = ValueOr(t.Title, p.Title)
	t.Completed = ValueOr(t.Completed, p.Completed)
	if p.Config != nil {
		t.Config = *p.Config
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Children != nil {
		t.Children = *p.Children
	}
	t.ParentID = ValueOr(t.ParentID, p.ParentID)
	if p.Section != nil {
		t.Section = *p.Section
		setSection(t.Children, t.Section)
	}
}

func setSection(tasks []Task, section string) {
	for i := range tasks {
		tasks[i].Section = section
		setSection(tasks[i].Children, section)
	}
}

// FindTask searches the tree depth-first and returns a pointer into the
// owning slice, or nil.
func FindTask(tasks []Task, id string) *Task {
	for i := range tasks {
		if tasks[i].ID == id {
			return &tasks[i]
		}
		if found := FindTask(tasks[i].Children, id); found != nil {
			return found
		}
	}
	return nil
}

// AddChildTask appends child to the children of parentID. It returns false
// when no task with that ID exists.
func AddChildTask(tasks []Task, parentID string, child Task) bool {
	parent := FindTask(tasks, parentID)
	if parent == nil {
		return false
	}
	child.ParentID = parent.ID
	child.Section = parent.Section
	setSection(child.Children, parent.Section)
	parent.Children = append(parent.Children, child)
	return true
}

// RemoveTask filters id out of whichever list owns it. Descendants go with
// it. The returned flag reports whether anything was removed.
func RemoveTask(tasks []Task, id string) ([]Task, bool) {
	out := make([]Task, 0, len(tasks))
	removed := false
	for _, t := range tasks {
		if t.ID == id {
			removed = true
			continue
		}
		if len(t.Children) > 0 {
			children, childRemoved := RemoveTask(t.Children, id)
			if childRemoved {
				t.Children = children
				removed = true
			}
		}
		out = append(out, t)
	}
	return out, removed
}

// CountTasks returns the number of tasks in the tree, descendants included.
func CountTasks(tasks []Task) int {
	n := 0
	for _, t := range tasks {
		n += 1 + CountTasks(t.Children)
	}
	return n
}

// WalkTasks calls fn for every task in pre-order with its nesting depth.
func WalkTasks(tasks []Task, fn func(t *Task, depth int)) {
	var walk func(list []Task, depth int)
	walk = func(list []Task, depth int) {
		for i := range list {
			fn(&list[i], depth)
			walk(list[i].Children, depth+1)
		}
	}
	walk(tasks, 0)
}

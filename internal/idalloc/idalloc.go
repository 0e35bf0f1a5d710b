// Package idalloc derives the next free identifier for each entity class
// from a snapshot of the document text. Nothing is persisted: the highest
// numeric suffix currently present determines the next ID.
package idalloc

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
)

// Class is an entity prefix used in ID comments.
type Class string

const (
	Note    Class = "note"
	Goal    Class = "goal"
	PostIt  Class = "postit"
	Mindmap Class = "mindmap"
)

// Classes lists every comment-identified class.
var Classes = []Class{Note, Goal, PostIt, Mindmap}

var (
	taskIDPattern    = regexp.MustCompile(`(?m)^[ \t]*- \[[ xX]\][ \t]+\(([^)]+)\)`)
	commentIDPattern = regexp.MustCompile(`<!-- id: ([a-z]+)_(\d+) -->`)
)

// MaxTaskID returns the highest numeric task ID on a checkbox line, or 0.
// Non-numeric IDs are valid but do not count.
func MaxTaskID(content string) int {
	maxID := 0
	for _, m := range taskIDPattern.FindAllStringSubmatch(content, -1) {
		n, err := strconv.Atoi(strings.TrimSpace(m[1]))
		if err != nil {
			continue
		}
		if n > maxID {
			maxID = n
		}
	}
	return maxID
}

// MaxID returns the highest N over `<!-- id: <class>_N -->` comments, or 0.
func MaxID(content string, class Class) int {
	return maxIDs(content)[class]
}

func maxIDs(content string) map[Class]int {
	out := make(map[Class]int)
	for _, m := range commentIDPattern.FindAllStringSubmatch(content, -1) {
		n, err := strconv.Atoi(m[2])
		if err != nil {
			continue
		}
		c := Class(m[1])
		if n > out[c] {
			out[c] = n
		}
	}
	return out
}

// NextTaskID returns max+1 over the task IDs in content.
func NextTaskID(content string) string {
	return strconv.Itoa(MaxTaskID(content) + 1)
}

// Next returns `<class>_<max+1>` for content.
func Next(content string, class Class) string {
	return Format(class, MaxID(content, class)+1)
}

// Format builds an ID from a class and a sequence number.
func Format(class Class, n int) string {
	return fmt.Sprintf("%s_%d", class, n)
}

// NextTaskIDFromFile reads path and returns the next task ID. A read
// failure yields "1".
func NextTaskIDFromFile(path string) string {
	b, err := os.ReadFile(path)
	if err != nil {
		return "1"
	}
	return NextTaskID(string(b))
}

// NextFromFile reads path and returns the next ID of class. A read failure
// yields the class's first ID.
func NextFromFile(path string, class Class) string {
	b, err := os.ReadFile(path)
	if err != nil {
		return Format(class, 1)
	}
	return Next(string(b), class)
}

// Allocator hands out IDs from one snapshot. Every call advances the
// counter, so several ID-less entities found in a single parse never share
// an ID.
type Allocator struct {
	task int
	max  map[Class]int
}

// New seeds an Allocator from content.
func New(content string) *Allocator {
	return &Allocator{task: MaxTaskID(content), max: maxIDs(content)}
}

// NextTask returns the next numeric task ID.
func (a *Allocator) NextTask() string {
	a.task++
	return strconv.Itoa(a.task)
}

// Next returns the next ID of class.
func (a *Allocator) Next(class Class) string {
	a.max[class]++
	return Format(class, a.max[class])
}

// Observe raises the counters so that id is never handed out again.
// Explicit IDs supplied by callers go through here.
func (a *Allocator) Observe(id string) {
	if n, err := strconv.Atoi(id); err == nil {
		if n > a.task {
			a.task = n
		}
		return
	}
	for _, c := range Classes {
		prefix := string(c) + "_"
		if len(id) <= len(prefix) || id[:len(prefix)] != prefix {
			continue
		}
		if n, err := strconv.Atoi(id[len(prefix):]); err == nil && n > a.max[c] {
			a.max[c] = n
		}
		return
	}
}

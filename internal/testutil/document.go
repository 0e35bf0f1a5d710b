package testutil

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// FixedTime is the instant returned by FixedClock.
var FixedTime = time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)

// FixedClock always returns FixedTime.
func FixedClock() time.Time { return FixedTime }

// WriteTestDocument writes content to a fresh file in a temp directory and
// returns its path. The directory is removed when the test completes.
func WriteTestDocument(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "structure.md")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write test document: %v", err)
	}
	return path
}

// MissingDocumentPath returns a path inside a temp directory where no file
// exists yet.
func MissingDocumentPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "missing.md")
}

// UnreadableDocumentPath returns a path occupied by a directory, so reading
// and writing it as a file both fail regardless of the user's privileges.
func UnreadableDocumentPath(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "structure.md")
	if err := os.MkdirAll(filepath.Join(path, "child"), 0o755); err != nil {
		t.Fatalf("failed to create directory: %v", err)
	}
	return path
}

// ReadDocument returns the file content or fails the test.
func ReadDocument(t *testing.T, path string) string {
	t.Helper()
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read document: %v", err)
	}
	return string(b)
}

// SampleDocument is a small project with every section populated.
const SampleDocument = `# Sample

A sample project.

<!-- Configurations -->
# Configurations

Start Date: 2025-01-06

Assignees:
- alice

<!-- Notes -->
# Notes

## Kickoff

<!-- id: note_1 -->
First meeting.

<!-- Goals -->
# Goals

## Launch {type: enterprise; kpi: signups; start: 2025-01-06; end: 2025-06-30; status: on-track}

<!-- id: goal_1 -->
Public launch.

<!-- Canvas -->
# Canvas

## Idea {color: blue; position: {x: 10, y: 20}}

<!-- id: postit_1 -->
Idea

<!-- Mindmap -->
# Mindmap

## Plan

<!-- id: mindmap_1 -->
- Root
  - Leaf

<!-- Board -->
# Board

## Todo

- [ ] (1) Write docs {priority: 2}
  Cover the CLI.
  - [ ] (2) Draft outline
    - [ ] (3) Collect examples
- [ ] (4) Release {blocked_by: [1]}

## Done

- [x] (5) Set up repo
`

package idalloc

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `# Demo

<!-- Notes -->
# Notes

## First

<!-- id: note_1 -->
body

## Third

<!-- id: note_3 -->

<!-- Goals -->
# Goals

## Grow {type: project; status: planning}

<!-- id: goal_7 -->

<!-- Board -->
# Board

## Todo

- [ ] (1) One
  - [x] (12) Nested
- [ ] (abc) Named
- [ ] No id
`

func TestNextTaskID(t *testing.T) {
	assert.Equal(t, "13", NextTaskID(sample))
	assert.Equal(t, "1", NextTaskID(""))
}

func TestNextTaskID_IgnoresNonNumeric(t *testing.T) {
	assert.Equal(t, "1", NextTaskID("- [ ] (alpha) Task\n- [x] (beta) Other\n"))
}

func TestNext_PerClass(t *testing.T) {
	assert.Equal(t, "note_4", Next(sample, Note))
	assert.Equal(t, "goal_8", Next(sample, Goal))
	assert.Equal(t, "postit_1", Next(sample, PostIt))
	assert.Equal(t, "mindmap_1", Next(sample, Mindmap))
}

func TestNext_GapsDoNotGetReused(t *testing.T) {
	// note_2 was deleted; the next ID still follows the maximum.
	content := "<!-- id: note_1 -->\n<!-- id: note_3 -->\n"
	assert.Equal(t, "note_4", Next(content, Note))
}

func TestFromFile_MissingFileFallsBack(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.md")
	assert.Equal(t, "1", NextTaskIDFromFile(missing))
	assert.Equal(t, "note_1", NextFromFile(missing, Note))
	assert.Equal(t, "mindmap_1", NextFromFile(missing, Mindmap))
}

func TestFromFile_ReadsContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.md")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o644))
	assert.Equal(t, "13", NextTaskIDFromFile(path))
	assert.Equal(t, "goal_8", NextFromFile(path, Goal))
}

func TestAllocator_StrictlyIncreasing(t *testing.T) {
	a := New(sample)
	assert.Equal(t, "note_4", a.Next(Note))
	assert.Equal(t, "note_5", a.Next(Note))
	assert.Equal(t, "13", a.NextTask())
	assert.Equal(t, "14", a.NextTask())
	assert.Equal(t, "postit_1", a.Next(PostIt))
}

func TestAllocator_Observe(t *testing.T) {
	a := New("")
	a.Observe("40")
	a.Observe("note_9")
	a.Observe("custom")
	assert.Equal(t, "41", a.NextTask())
	assert.Equal(t, "note_10", a.Next(Note))
	assert.Equal(t, "goal_1", a.Next(Goal))
}

func TestNextTaskID_ToleratesExtraSpacing(t *testing.T) {
	assert.Equal(t, "8", NextTaskID("- [ ]  (7) Wide\n\t- [x]\t( 2 ) Tabbed\n"))
}

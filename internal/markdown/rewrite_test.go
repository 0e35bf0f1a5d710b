package markdown

import (
	"strings"
	"testing"

	"github.com/alexanderramin/mdplanner/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const patchDocument = `# P

Intro text.

<!-- Configurations -->
# Configurations

Start Date: 2024-01-01

<!-- Canvas -->
# Canvas

## first {color: yellow; position: {x: 0, y: 0}}

<!-- id: postit_1 -->
first

## second   {color: blue; position: {x: 5, y: 5}}

<!-- id: postit_2 -->
second

<!-- Board -->
# Board

## Todo

-  [ ] odd spacing kept verbatim
`

func TestConfigPatch_ReplacesOnlyConfigurations(t *testing.T) {
	cfg := domain.ProjectConfig{StartDate: "2025-05-05", WorkingDaysPerWeek: 6, Assignees: []string{"carol"}}
	out, err := ConfigPatch{Config: cfg}.Rewrite(patchDocument)
	require.NoError(t, err)

	assert.Contains(t, out, "# Configurations\n\nStart Date: 2025-05-05\nWorking Days: 6\n\nAssignees:\n- carol\n\n<!-- Canvas -->")
	before, _, _ := strings.Cut(patchDocument, "<!-- Configurations -->")
	_, after, _ := strings.Cut(patchDocument, "<!-- Canvas -->")
	assert.True(t, strings.HasPrefix(out, before))
	assert.True(t, strings.HasSuffix(out, after))

	doc := testParser().Parse(out)
	assert.Equal(t, 6, doc.Config.WorkingDaysPerWeek)
	assert.Equal(t, []string{"carol"}, doc.Config.Assignees)
}

func TestConfigPatch_InsertsMissingSection(t *testing.T) {
	content := "# P\n\nIntro.\n\n<!-- Board -->\n# Board\n\n## Todo\n"
	out, err := ConfigPatch{Config: domain.ProjectConfig{}, Today: "2025-01-02"}.Rewrite(content)
	require.NoError(t, err)

	assert.Equal(t, "# P\n\nIntro.\n\n<!-- Configurations -->\n# Configurations\n\nStart Date: 2025-01-02\n\n<!-- Board -->\n# Board\n\n## Todo\n", out)
}

func TestConfigPatch_AppendsWhenNoSections(t *testing.T) {
	out, err := ConfigPatch{Config: domain.ProjectConfig{StartDate: "2025-01-02"}}.Rewrite("# P\n")
	require.NoError(t, err)

	assert.Equal(t, "# P\n\n<!-- Configurations -->\n# Configurations\n\nStart Date: 2025-01-02\n", out)
}

func TestPostItPatch_ReplaceLeavesNeighboursUntouched(t *testing.T) {
	updated := domain.PostIt{ID: "postit_1", Content: "changed<br>twice", Color: domain.ColorGreen}
	out, err := PostItPatch{PostIt: updated}.Rewrite(patchDocument)
	require.NoError(t, err)

	assert.Contains(t, out, "## changed {color: green; position: {x: 0, y: 0}}\n\n<!-- id: postit_1 -->\nchanged\ntwice\n\n## second   {color: blue")
	assert.Contains(t, out, "-  [ ] odd spacing kept verbatim\n")

	doc := testParser().Parse(out)
	require.Len(t, doc.Info.PostIts, 2)
	assert.Equal(t, "changed<br>twice", doc.Info.PostIts[0].Content)
	assert.Equal(t, "second", doc.Info.PostIts[1].Content)
}

func TestPostItPatch_InsertAppendsToCanvas(t *testing.T) {
	added := domain.PostIt{ID: "postit_3", Content: "third", Color: domain.ColorOrange, Position: domain.Position{X: 1, Y: 2}}
	out, err := PostItPatch{PostIt: added, Insert: true}.Rewrite(patchDocument)
	require.NoError(t, err)

	assert.Contains(t, out, "second\n\n## third {color: orange; position: {x: 1, y: 2}}\n\n<!-- id: postit_3 -->\nthird\n\n<!-- Board -->")
	doc := testParser().Parse(out)
	require.Len(t, doc.Info.PostIts, 3)
	assert.Equal(t, "postit_3", doc.Info.PostIts[2].ID)
}

func TestPostItPatch_InsertCreatesCanvasBeforeBoard(t *testing.T) {
	content := "# P\n\n<!-- Goals -->\n# Goals\n\n<!-- Board -->\n# Board\n"
	added := domain.PostIt{ID: "postit_1", Content: "hello"}
	out, err := PostItPatch{PostIt: added, Insert: true}.Rewrite(content)
	require.NoError(t, err)

	assert.Equal(t, "# P\n\n<!-- Goals -->\n# Goals\n\n<!-- Canvas -->\n# Canvas\n\n## hello {color: yellow; position: {x: 0, y: 0}}\n\n<!-- id: postit_1 -->\nhello\n\n<!-- Board -->\n# Board\n", out)
}

func TestPostItPatch_InsertStampsMissingIDs(t *testing.T) {
	content := "# P\n\n<!-- Canvas -->\n# Canvas\n\n## legacy {color: blue; position: {x: 1, y: 1}}\n\nold\n\n## kept {color: pink}\n\n<!-- id: postit_7 -->\nkept\n"
	before := testParser().Parse(content).Info.PostIts
	require.Len(t, before, 2)
	legacyID := before[0].ID

	added := domain.PostIt{ID: "postit_20", Content: "new"}
	out, err := PostItPatch{PostIt: added, Insert: true, Existing: before}.Rewrite(content)
	require.NoError(t, err)

	assert.Equal(t, 1, strings.Count(out, "<!-- id: "+legacyID+" -->"))
	assert.Equal(t, 1, strings.Count(out, "<!-- id: postit_7 -->"))
	after := testParser().Parse(out).Info.PostIts
	require.Len(t, after, 3)
	assert.Equal(t, legacyID, after[0].ID)
	assert.Equal(t, "old", after[0].Content)
	assert.Equal(t, "postit_7", after[1].ID)
	assert.Equal(t, "postit_20", after[2].ID)
}

func TestPostItPatch_UnknownID(t *testing.T) {
	_, err := PostItPatch{PostIt: domain.PostIt{ID: "postit_9"}}.Rewrite(patchDocument)
	assert.ErrorIs(t, err, ErrBlockNotFound)
}

func TestRegenerate_IgnoresInput(t *testing.T) {
	doc := testParser().Parse(patchDocument)
	out, err := Regenerate{Doc: *doc, Today: "2025-01-01"}.Rewrite("garbage")
	require.NoError(t, err)
	assert.Equal(t, Render(*doc, "2025-01-01"), out)
}

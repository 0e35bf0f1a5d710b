package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/alexanderramin/mdplanner/internal/domain"
	"github.com/alexanderramin/mdplanner/internal/repository"
	"github.com/alexanderramin/mdplanner/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testOpener wires a full App over the file at path with a fixed clock.
func testOpener(path string) *App {
	return NewApp(repository.NewMarkdownStore(path, repository.WithClock(testutil.FixedClock)))
}

// sampleDoc writes the shared fixture and returns its path.
func sampleDoc(t *testing.T) string {
	t.Helper()
	return testutil.WriteTestDocument(t, testutil.SampleDocument)
}

// executeCmd runs a cobra command against the document at path and captures
// stdout/stderr.
func executeCmd(t *testing.T, path string, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(testOpener, path)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

// decodeJSON runs a command ending in --json and decodes its output into v.
func decodeJSON(t *testing.T, path string, v any, args ...string) {
	t.Helper()
	out, err := executeCmd(t, path, append(args, "--json")...)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), v), out)
}

func TestRootCmd_RequiresDocument(t *testing.T) {
	_, err := executeCmd(t, "", "task", "list")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no document given")
}

func TestRootCmd_FileFlagOverridesDefault(t *testing.T) {
	path := sampleDoc(t)

	out, err := executeCmd(t, testutil.MissingDocumentPath(t), "--file", path, "project", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "Sample")
}

func TestRootCmd_NotFoundSurfacesAsError(t *testing.T) {
	path := sampleDoc(t)

	_, err := executeCmd(t, path, "task", "show", "404")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestEnumValue(t *testing.T) {
	v := "json"
	e := newEnumValue(&v, []string{"json", "yaml"})

	assert.Equal(t, "json", e.String())
	require.NoError(t, e.Set("yaml"))
	assert.Equal(t, "yaml", v)

	err := e.Set("xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "json, yaml")
	assert.Equal(t, "yaml", v)
}

func TestSortedKeys(t *testing.T) {
	assert.Equal(t, []string{"enterprise", "project"}, sortedKeys(domain.ValidGoalTypes))
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, splitList(" a, ,b ,"))
	assert.Nil(t, splitList(""))
}

func TestFormValidators(t *testing.T) {
	assert.NoError(t, validateOptionalDate(""))
	assert.NoError(t, validateOptionalDate("2025-06-30"))
	assert.Error(t, validateOptionalDate("30/06/2025"))

	assert.NoError(t, validatePriority(""))
	assert.NoError(t, validatePriority("5"))
	assert.Error(t, validatePriority("6"))

	assert.NoError(t, validateNonNegativeInt("0"))
	assert.Error(t, validateNonNegativeInt("-1"))

	assert.NoError(t, validateWorkingDays("7"))
	assert.Error(t, validateWorkingDays("0"))
	assert.Error(t, validateWorkingDays(""))
}

func TestRunForm_NonInteractive(t *testing.T) {
	app := &App{}
	assert.ErrorIs(t, runForm(app, nil), errNotInteractive)

	app.IsInteractive = func() bool { return false }
	assert.ErrorIs(t, runForm(app, nil), errNotInteractive)
}

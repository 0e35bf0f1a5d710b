package inlineconfig

import (
	"testing"

	"github.com/alexanderramin/mdplanner/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_OrderedPairs(t *testing.T) {
	pairs := Parse("type: enterprise; kpi: 30% revenue; start: 2024-01-01")
	require.Len(t, pairs, 3)
	assert.Equal(t, Pair{Key: "type", Value: "enterprise"}, pairs[0])
	assert.Equal(t, Pair{Key: "kpi", Value: "30% revenue"}, pairs[1])

	v, ok := pairs.Get("start")
	assert.True(t, ok)
	assert.Equal(t, "2024-01-01", v)
}

func TestParse_NestedBracesKeepSemicolons(t *testing.T) {
	pairs := Parse("color: pink; position: {x: 1; y: 2}; size: {width: 3, height: 4}")
	require.Len(t, pairs, 3)
	assert.Equal(t, "{x: 1; y: 2}", pairs[1].Value)
	assert.Equal(t, "{width: 3, height: 4}", pairs[2].Value)
}

func TestParse_ValueKeepsInnerColons(t *testing.T) {
	pairs := Parse("kpi: ratio 1:2; status: late")
	require.Len(t, pairs, 2)
	assert.Equal(t, "ratio 1:2", pairs[0].Value)
}

func TestParse_DropsMalformedPairs(t *testing.T) {
	pairs := Parse("novalue; : orphan; key:; ok: yes;")
	require.Len(t, pairs, 1)
	assert.Equal(t, "ok", pairs[0].Key)
}

func TestSplitTrailing(t *testing.T) {
	cases := []struct {
		line string
		head string
		body string
		ok   bool
	}{
		{"Buy milk {priority: 2}", "Buy milk", "priority: 2", true},
		{"Note {color: blue; position: {x: 1, y: 2}}", "Note", "color: blue; position: {x: 1, y: 2}", true},
		{"use {x} here {color: pink}", "use {x} here", "color: pink", true},
		{"Plain title", "Plain title", "", false},
		{"Broken }", "Broken }", "", false},
		{"Empty {}  ", "Empty", "", true},
	}
	for _, tc := range cases {
		head, body, ok := SplitTrailing(tc.line)
		assert.Equal(t, tc.ok, ok, tc.line)
		assert.Equal(t, tc.head, head, tc.line)
		assert.Equal(t, tc.body, body, tc.line)
	}
}

func TestFormat_SkipsEmpty(t *testing.T) {
	assert.Equal(t, "{a: 1; c: 3}", Format(Pairs{{"a", "1"}, {"b", ""}, {"c", "3"}}))
	assert.Equal(t, "", Format(Pairs{{"a", ""}}))
}

func TestLists(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, ParseList("[a, b]"))
	assert.Equal(t, []string{"a", "b"}, ParseList(" a ,, b "))
	assert.Nil(t, ParseList("[]"))
	assert.Equal(t, "[a, b]", FormatList([]string{"a", "b"}))
	assert.Equal(t, "", FormatList(nil))
}

func TestLeadingInt(t *testing.T) {
	n, ok := LeadingInt("3 days")
	assert.True(t, ok)
	assert.Equal(t, 3, n)

	n, ok = LeadingInt("-12")
	assert.True(t, ok)
	assert.Equal(t, -12, n)

	_, ok = LeadingInt("high")
	assert.False(t, ok)
}

func TestTaskConfig_RoundTrip(t *testing.T) {
	cfg := DecodeTaskConfig(Parse("tag: [a, b]; priority: 2; blocked_by: [t1, t2]"))
	assert.Equal(t, domain.TaskConfig{
		Tag:       []string{"a", "b"},
		Priority:  2,
		BlockedBy: []string{"t1", "t2"},
	}, cfg)

	assert.Equal(t, "{tag: [a, b]; priority: 2; blocked_by: [t1, t2]}", Format(EncodeTaskConfig(cfg)))
}

func TestTaskConfig_UnknownKeysIgnored(t *testing.T) {
	cfg := DecodeTaskConfig(Parse("colour: red; effort: 4; assignee: Ana"))
	assert.Equal(t, domain.TaskConfig{Effort: 4, Assignee: "Ana"}, cfg)
}

func TestTaskConfig_CanonicalOrder(t *testing.T) {
	cfg := domain.TaskConfig{
		Milestone: "v1", Effort: 3, DueDate: "2025-01-01", Assignee: "Bo", Tag: []string{"x"}, Priority: 1,
	}
	assert.Equal(t, "{tag: [x]; due_date: 2025-01-01; assignee: Bo; priority: 1; effort: 3; milestone: v1}",
		Format(EncodeTaskConfig(cfg)))
}

func TestGoal_DecodeEncode(t *testing.T) {
	g := domain.NewGoal("Grow")
	DecodeGoal(Parse("type: enterprise; kpi: 30% revenue; start: 2024-01-01; end: 2024-12-31; status: on-track; owner: me"), &g)
	assert.Equal(t, domain.GoalEnterprise, g.Type)
	assert.Equal(t, domain.GoalOnTrack, g.Status)
	assert.Equal(t, "2024-12-31", g.EndDate)

	assert.Equal(t, "{type: enterprise; kpi: 30% revenue; start: 2024-01-01; end: 2024-12-31; status: on-track}",
		Format(EncodeGoal(g)))
}

func TestGoal_EmptyKPIOmitted(t *testing.T) {
	g := domain.NewGoal("Plain")
	assert.Equal(t, "{type: project; status: planning}", Format(EncodeGoal(g)))
}

func TestPostIt_DecodeEncode(t *testing.T) {
	var p domain.PostIt
	DecodePostIt(Parse("color: green; position: {x: 120, y: -40}; size: {width: 200, height: 150}"), &p)
	assert.Equal(t, domain.ColorGreen, p.Color)
	assert.Equal(t, domain.Position{X: 120, Y: -40}, p.Position)
	require.NotNil(t, p.Size)
	assert.Equal(t, domain.Size{Width: 200, Height: 150}, *p.Size)

	assert.Equal(t, "{color: green; position: {x: 120, y: -40}; size: {width: 200, height: 150}}",
		Format(EncodePostIt(p)))
}

func TestPostIt_UnknownColorDefaultsYellow(t *testing.T) {
	var p domain.PostIt
	DecodePostIt(Parse("color: magenta"), &p)
	assert.Equal(t, domain.ColorYellow, p.Color)
	assert.Nil(t, p.Size)
}

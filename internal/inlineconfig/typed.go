package inlineconfig

import (
	"strconv"

	"github.com/alexanderramin/mdplanner/internal/domain"
)

// Canonical key order for each decorated entity. Encoders emit keys in this
// order; decoders ignore any key not listed.
var (
	TaskKeys   = []string{"tag", "due_date", "assignee", "priority", "effort", "blocked_by", "milestone"}
	GoalKeys   = []string{"type", "kpi", "start", "end", "status"}
	PostItKeys = []string{"color", "position", "size"}
)

func DecodeTaskConfig(pairs Pairs) domain.TaskConfig {
	var cfg domain.TaskConfig
	for _, kv := range pairs {
		switch kv.Key {
		case "tag":
			cfg.Tag = ParseList(kv.Value)
		case "due_date":
			cfg.DueDate = kv.Value
		case "assignee":
			cfg.Assignee = kv.Value
		case "priority":
			if n, ok := LeadingInt(kv.Value); ok {
				cfg.Priority = n
			}
		case "effort":
			if n, ok := LeadingInt(kv.Value); ok {
				cfg.Effort = n
			}
		case "blocked_by":
			cfg.BlockedBy = ParseList(kv.Value)
		case "milestone":
			cfg.Milestone = kv.Value
		}
	}
	return cfg
}

func EncodeTaskConfig(cfg domain.TaskConfig) Pairs {
	return Pairs{
		{Key: "tag", Value: FormatList(cfg.Tag)},
		{Key: "due_date", Value: cfg.DueDate},
		{Key: "assignee", Value: cfg.Assignee},
		{Key: "priority", Value: itoaNonZero(cfg.Priority)},
		{Key: "effort", Value: itoaNonZero(cfg.Effort)},
		{Key: "blocked_by", Value: FormatList(cfg.BlockedBy)},
		{Key: "milestone", Value: cfg.Milestone},
	}
}

// DecodeGoal fills the attribute fields of g from pairs. Missing keys keep
// whatever g already holds.
func DecodeGoal(pairs Pairs, g *domain.Goal) {
	for _, kv := range pairs {
		switch kv.Key {
		case "type":
			g.Type = domain.GoalType(kv.Value)
		case "kpi":
			g.KPI = kv.Value
		case "start":
			g.StartDate = kv.Value
		case "end":
			g.EndDate = kv.Value
		case "status":
			g.Status = domain.GoalStatus(kv.Value)
		}
	}
}

func EncodeGoal(g domain.Goal) Pairs {
	return Pairs{
		{Key: "type", Value: string(g.Type)},
		{Key: "kpi", Value: g.KPI},
		{Key: "start", Value: g.StartDate},
		{Key: "end", Value: g.EndDate},
		{Key: "status", Value: string(g.Status)},
	}
}

// DecodePostIt fills color, position and size. Unknown colors fall back to
// yellow.
func DecodePostIt(pairs Pairs, p *domain.PostIt) {
	p.Color = domain.ColorYellow
	for _, kv := range pairs {
		switch kv.Key {
		case "color":
			if domain.ValidPostItColors[kv.Value] {
				p.Color = domain.PostItColor(kv.Value)
			}
		case "position":
			obj := ParseObject(kv.Value)
			p.Position = domain.Position{X: objInt(obj, "x"), Y: objInt(obj, "y")}
		case "size":
			obj := ParseObject(kv.Value)
			_, hasW := obj.Get("width")
			_, hasH := obj.Get("height")
			if hasW || hasH {
				p.Size = &domain.Size{Width: objInt(obj, "width"), Height: objInt(obj, "height")}
			}
		}
	}
}

func EncodePostIt(p domain.PostIt) Pairs {
	color := p.Color
	if color == "" {
		color = domain.ColorYellow
	}
	pairs := Pairs{
		{Key: "color", Value: string(color)},
		{Key: "position", Value: FormatObject(Pairs{
			{Key: "x", Value: strconv.Itoa(p.Position.X)},
			{Key: "y", Value: strconv.Itoa(p.Position.Y)},
		})},
	}
	if p.Size != nil {
		pairs = append(pairs, Pair{Key: "size", Value: FormatObject(Pairs{
			{Key: "width", Value: strconv.Itoa(p.Size.Width)},
			{Key: "height", Value: strconv.Itoa(p.Size.Height)},
		})})
	}
	return pairs
}

func objInt(obj Pairs, key string) int {
	v, ok := obj.Get(key)
	if !ok {
		return 0
	}
	n, _ := LeadingInt(v)
	return n
}

func itoaNonZero(n int) string {
	if n == 0 {
		return ""
	}
	return strconv.Itoa(n)
}

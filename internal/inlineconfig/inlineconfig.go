// Package inlineconfig reads and writes the `{key: value; key2: value2}`
// attribute blocks that decorate task lines and section headings.
package inlineconfig

import (
	"strconv"
	"strings"
)

// Pair is one key/value entry of a block, in source order.
type Pair struct {
	Key   string
	Value string
}

// Pairs keeps the order in which keys appeared.
type Pairs []Pair

// Get returns the value of the first pair with key.
func (p Pairs) Get(key string) (string, bool) {
	for _, kv := range p {
		if kv.Key == key {
			return kv.Value, true
		}
	}
	return "", false
}

// Parse splits the inside of a block into pairs. A `;` nested inside `{}`
// or `[]` does not end a pair. The value is everything after the first
// colon. Pairs with an empty key or value are dropped.
func Parse(s string) Pairs {
	var out Pairs
	for _, part := range splitTopLevel(s, ';') {
		kv, ok := parsePair(part)
		if ok {
			out = append(out, kv)
		}
	}
	return out
}

func parsePair(part string) (Pair, bool) {
	idx := strings.Index(part, ":")
	if idx < 0 {
		return Pair{}, false
	}
	key := strings.TrimSpace(part[:idx])
	value := strings.TrimSpace(part[idx+1:])
	if key == "" || value == "" {
		return Pair{}, false
	}
	return Pair{Key: key, Value: value}, true
}

func splitTopLevel(s string, sep byte) []string {
	var parts []string
	depth := 0
	start := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '{', '[':
			depth++
		case '}', ']':
			if depth > 0 {
				depth--
			}
		case sep:
			if depth == 0 {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}
	return append(parts, s[start:])
}

// SplitTrailing detaches a trailing balanced `{...}` block from line.
// head is the text before the block with trailing space removed; body is
// the text between the braces.
func SplitTrailing(line string) (head, body string, ok bool) {
	trimmed := strings.TrimRight(line, " \t")
	if !strings.HasSuffix(trimmed, "}") {
		return line, "", false
	}
	depth := 0
	for i := len(trimmed) - 1; i >= 0; i-- {
		switch trimmed[i] {
		case '}':
			depth++
		case '{':
			depth--
			if depth == 0 {
				return strings.TrimRight(trimmed[:i], " \t"), trimmed[i+1 : len(trimmed)-1], true
			}
		}
	}
	return line, "", false
}

// Format renders pairs as `{k: v; k2: v2}` in the given order, skipping empty
// values. It returns "" when no pair has a value.
func Format(pairs Pairs) string {
	parts := make([]string, 0, len(pairs))
	for _, kv := range pairs {
		if kv.Key == "" || kv.Value == "" {
			continue
		}
		parts = append(parts, kv.Key+": "+kv.Value)
	}
	if len(parts) == 0 {
		return ""
	}
	return "{" + strings.Join(parts, "; ") + "}"
}

// ParseList reads `[a, b]` (brackets optional) into trimmed, non-empty items.
func ParseList(s string) []string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "[")
	s = strings.TrimSuffix(s, "]")
	var out []string
	for _, item := range strings.Split(s, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}

// FormatList renders items as `[a, b]`, or "" for an empty list.
func FormatList(items []string) string {
	if len(items) == 0 {
		return ""
	}
	return "[" + strings.Join(items, ", ") + "]"
}

// ParseObject reads a nested `{x: 1, y: 2}` value. Both `,` and `;` separate
// entries.
func ParseObject(s string) Pairs {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "{")
	s = strings.TrimSuffix(s, "}")
	var out Pairs
	for _, part := range splitTopLevel(strings.ReplaceAll(s, ";", ","), ',') {
		if kv, ok := parsePair(part); ok {
			out = append(out, kv)
		}
	}
	return out
}

// FormatObject renders pairs as `{x: 1, y: 2}`.
func FormatObject(pairs Pairs) string {
	parts := make([]string, 0, len(pairs))
	for _, kv := range pairs {
		parts = append(parts, kv.Key+": "+kv.Value)
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// LeadingInt parses the optional sign and digits at the start of s, so
// "3 days" reads as 3. ok is false when s has no leading digits.
func LeadingInt(s string) (int, bool) {
	s = strings.TrimSpace(s)
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, false
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}

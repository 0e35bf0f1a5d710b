package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/mdplanner/internal/domain"
	"github.com/alexanderramin/mdplanner/internal/inlineconfig"
)

const dateLayout = "2006-01-02"

func notFound(kind, id string) error {
	return fmt.Errorf("%s %q: %w", kind, id, domain.ErrNotFound)
}

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), domain.ErrInvalid)
}

// validDate accepts an empty string or a YYYY-MM-DD date.
func validDate(field, value string) error {
	if value == "" {
		return nil
	}
	if _, err := time.Parse(dateLayout, value); err != nil {
		return invalidf("%s: invalid date %q (expected YYYY-MM-DD)", field, value)
	}
	return nil
}

func requireText(field, value string) (string, error) {
	v := strings.TrimSpace(value)
	if v == "" {
		return "", invalidf("%s is required", field)
	}
	return v, nil
}

// headingText is requireText for text written in front of an inline config
// block, which must not end in a block of its own.
func headingText(field, value string) (string, error) {
	v, err := requireText(field, value)
	if err != nil {
		return "", err
	}
	if _, _, ok := inlineconfig.SplitTrailing(v); ok {
		return "", invalidf("%s %q must not end in a {...} block", field, v)
	}
	return v, nil
}

// configReserved delimits pairs, objects and lists inside an inline config block.
const configReserved = ";{}[]"

func plainValue(field, value string) error {
	if strings.ContainsAny(value, configReserved) {
		return invalidf("%s %q must not contain any of %s", field, value, configReserved)
	}
	return nil
}

// plainList also rejects commas, which separate list items.
func plainList(field string, values []string) error {
	for _, v := range values {
		if strings.ContainsAny(v, configReserved+",") {
			return invalidf("%s entry %q must not contain any of %s,", field, v, configReserved)
		}
	}
	return nil
}

// bodyLines rejects lines that would be read back as a heading or a
// section marker.
func bodyLines(field string, lines []string) error {
	for _, line := range lines {
		t := strings.TrimSpace(line)
		if strings.HasPrefix(t, "#") || strings.HasPrefix(t, "<!--") {
			return invalidf("%s line %q must not start with # or <!--", field, t)
		}
	}
	return nil
}

// findByID returns a copy of the first item whose ID matches.
func findByID[T any](items []T, id string, idOf func(T) string) (*T, bool) {
	for i := range items {
		if idOf(items[i]) == id {
			item := items[i]
			return &item, true
		}
	}
	return nil, false
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

package service

import (
	"context"
	"sync"
	"testing"

	"github.com/alexanderramin/mdplanner/internal/domain"
	"github.com/alexanderramin/mdplanner/internal/repository"
	"github.com/alexanderramin/mdplanner/internal/testutil"
	"github.com/stretchr/testify/assert"
)

// setupStore returns a store over a fresh copy of the sample document.
func setupStore(t *testing.T) *repository.MarkdownStore {
	t.Helper()
	path := testutil.WriteTestDocument(t, testutil.SampleDocument)
	return repository.NewMarkdownStore(path, repository.WithClock(testutil.FixedClock))
}

type recordingObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (o *recordingObserver) ObserveUseCase(_ context.Context, event UseCaseEvent) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, event)
}

func (o *recordingObserver) last(t *testing.T) UseCaseEvent {
	t.Helper()
	o.mu.Lock()
	defer o.mu.Unlock()
	if len(o.events) == 0 {
		t.Fatal("no use case observed")
	}
	return o.events[len(o.events)-1]
}

func TestCleanList(t *testing.T) {
	assert.Equal(t, []string{"alice", "bob"}, cleanList([]string{" alice", "", "bob", "alice "}))
	assert.Empty(t, cleanList(nil))
}

func TestValidDate(t *testing.T) {
	assert.NoError(t, validDate("due", ""))
	assert.NoError(t, validDate("due", "2025-02-28"))
	assert.ErrorIs(t, validDate("due", "2025-02-30"), domain.ErrInvalid)
	assert.ErrorIs(t, validDate("due", "28/02/2025"), domain.ErrInvalid)
}

func TestConfigSafeValues(t *testing.T) {
	assert.NoError(t, plainValue("assignee", "bob smith"))
	assert.ErrorIs(t, plainValue("assignee", "bob; priority: 9"), domain.ErrInvalid)
	assert.NoError(t, plainList("tag", []string{"ui", "v2"}))
	assert.ErrorIs(t, plainList("tag", []string{"ui]"}), domain.ErrInvalid)

	title, err := headingText("title", "  Fix {a} bug ")
	assert.NoError(t, err)
	assert.Equal(t, "Fix {a} bug", title)
	_, err = headingText("title", "Fix {a}")
	assert.ErrorIs(t, err, domain.ErrInvalid)

	assert.NoError(t, bodyLines("content", []string{"a #1 fan"}))
	assert.ErrorIs(t, bodyLines("content", []string{"ok", "  ## next"}), domain.ErrInvalid)
}

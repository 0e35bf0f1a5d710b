package service

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLogUseCaseObserver_WritesEvent(t *testing.T) {
	var buf bytes.Buffer
	obs := NewLogUseCaseObserver(&buf, slog.LevelInfo)

	obs.ObserveUseCase(context.Background(), UseCaseEvent{
		Name:          "add-task",
		CorrelationID: "abc",
		Duration:      3 * time.Millisecond,
		Success:       true,
		Fields:        map[string]any{"task_id": "7"},
	})

	out := buf.String()
	assert.Contains(t, out, "use_case=add-task")
	assert.Contains(t, out, "correlation_id=abc")
	assert.Contains(t, out, "task_id=7")
	assert.Contains(t, out, "level=INFO")
}

func TestLogUseCaseObserver_LevelFiltersSuccess(t *testing.T) {
	var buf bytes.Buffer
	obs := NewLogUseCaseObserver(&buf, slog.LevelWarn)

	obs.ObserveUseCase(context.Background(), UseCaseEvent{Name: "list", Success: true})
	assert.Empty(t, buf.String())

	obs.ObserveUseCase(context.Background(), UseCaseEvent{Name: "remove-task", Err: errors.New("boom")})
	assert.Contains(t, buf.String(), "level=ERROR")
	assert.Contains(t, buf.String(), "error=boom")
}

func TestNewLogUseCaseObserver_NilWriter(t *testing.T) {
	assert.IsType(t, NoopUseCaseObserver{}, NewLogUseCaseObserver(nil, slog.LevelInfo))
}

func TestCorrelationID(t *testing.T) {
	ctx := WithCorrelationID(context.Background(), "fixed")
	assert.Equal(t, "fixed", CorrelationID(ctx))

	a, b := CorrelationID(context.Background()), CorrelationID(context.Background())
	assert.Len(t, a, 36)
	assert.NotEqual(t, a, b)
}

func TestUseCaseObserverOrNoop(t *testing.T) {
	assert.IsType(t, NoopUseCaseObserver{}, useCaseObserverOrNoop(nil))
	rec := &recordingObserver{}
	assert.Same(t, rec, useCaseObserverOrNoop([]UseCaseObserver{nil, rec}))
}

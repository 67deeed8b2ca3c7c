package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soundhaus/locale-service/internal/domain/model"
)

// recordingReporting captures recorded events in memory.
type recordingReporting struct {
	mu     sync.Mutex
	events []*model.Event
	block  chan struct{}
}

func (r *recordingReporting) Record(ctx context.Context, event *model.Event) error {
	if r.block != nil {
		<-r.block
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
	return nil
}

func (r *recordingReporting) RecordBatch(ctx context.Context, events []*model.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, events...)
	return nil
}

func (r *recordingReporting) Query(context.Context, model.EventQueryOptions) ([]model.Event, error) {
	return nil, nil
}

func (r *recordingReporting) Count(context.Context, model.EventQueryOptions) (int64, error) {
	return 0, nil
}

func (r *recordingReporting) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.events)
}

// TestAsyncReporter_Report tests enqueueing and background writes.
func TestAsyncReporter_Report(t *testing.T) {
	reporting := &recordingReporting{}
	reporter := NewAsyncReporter(reporting, AsyncReporterConfig{
		BufferSize:   16,
		NumWorkers:   2,
		WriteTimeout: time.Second,
	})
	require.NotNil(t, reporter)

	for i := 0; i < 5; i++ {
		assert.True(t, reporter.Report(model.NewEvent(model.EventMissingKey)))
	}

	reporter.Stop()
	assert.Equal(t, 5, reporting.count())

	enqueued, dropped, written, errs := reporter.Stats()
	assert.Equal(t, int64(5), enqueued)
	assert.Equal(t, int64(0), dropped)
	assert.Equal(t, int64(5), written)
	assert.Equal(t, int64(0), errs)
}

// TestAsyncReporter_DropsWhenFull verifies the buffer never blocks callers.
func TestAsyncReporter_DropsWhenFull(t *testing.T) {
	block := make(chan struct{})
	reporting := &recordingReporting{block: block}
	reporter := NewAsyncReporter(reporting, AsyncReporterConfig{
		BufferSize:   1,
		NumWorkers:   1,
		WriteTimeout: time.Second,
	})
	require.NotNil(t, reporter)

	// Fill the worker and the buffer, then overflow.
	dropped := 0
	for i := 0; i < 10; i++ {
		if !reporter.Report(model.NewEvent(model.EventMissingKey)) {
			dropped++
		}
	}
	assert.Greater(t, dropped, 0)

	close(block)
	reporter.Stop()
}

// TestAsyncReporter_StopIsIdempotent verifies repeated Stop calls are safe.
func TestAsyncReporter_StopIsIdempotent(t *testing.T) {
	reporter := NewAsyncReporter(&recordingReporting{}, DefaultAsyncReporterConfig())
	require.NotNil(t, reporter)

	reporter.Stop()
	reporter.Stop()
}

// TestNewAsyncReporter_NilReporting verifies a nil service yields no reporter.
func TestNewAsyncReporter_NilReporting(t *testing.T) {
	assert.Nil(t, NewAsyncReporter(nil, DefaultAsyncReporterConfig()))
}

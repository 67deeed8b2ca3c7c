package service

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/soundhaus/locale-service/internal/domain/model"
)

// AsyncReporterConfig holds configuration for the async reporter.
type AsyncReporterConfig struct {
	// BufferSize is the size of the event channel buffer.
	BufferSize int
	// NumWorkers is the number of worker goroutines writing events.
	NumWorkers int
	// WriteTimeout is the timeout for writing one event to the database.
	WriteTimeout time.Duration
}

// DefaultAsyncReporterConfig returns sensible defaults for the async reporter.
func DefaultAsyncReporterConfig() AsyncReporterConfig {
	return AsyncReporterConfig{
		BufferSize:   1000,
		NumWorkers:   4,
		WriteTimeout: 5 * time.Second,
	}
}

// AsyncReporter provides buffered, worker-pool based event reporting so
// recording never blocks translation or switching. When the buffer is full
// events are dropped rather than queued unboundedly.
type AsyncReporter struct {
	reporting    ReportingService
	eventCh      chan *model.Event
	wg           sync.WaitGroup
	stopCh       chan struct{}
	stopOnce     sync.Once
	writeTimeout time.Duration

	// Metrics
	enqueued int64
	dropped  int64
	written  int64
	errors   int64
}

// NewAsyncReporter creates a new async reporter with the given configuration.
func NewAsyncReporter(reporting ReportingService, cfg AsyncReporterConfig) *AsyncReporter {
	if reporting == nil {
		return nil
	}

	ar := &AsyncReporter{
		reporting:    reporting,
		eventCh:      make(chan *model.Event, cfg.BufferSize),
		stopCh:       make(chan struct{}),
		writeTimeout: cfg.WriteTimeout,
	}

	for i := 0; i < cfg.NumWorkers; i++ {
		ar.wg.Add(1)
		go ar.worker()
	}

	return ar
}

// worker writes events from the channel.
func (ar *AsyncReporter) worker() {
	defer ar.wg.Done()

	for {
		select {
		case event, ok := <-ar.eventCh:
			if !ok {
				return
			}
			ar.writeEvent(event)
		case <-ar.stopCh:
			// Drain remaining events before stopping
			for {
				select {
				case event := <-ar.eventCh:
					ar.writeEvent(event)
				default:
					return
				}
			}
		}
	}
}

// writeEvent writes a single event to the database.
func (ar *AsyncReporter) writeEvent(event *model.Event) {
	ctx, cancel := context.WithTimeout(context.Background(), ar.writeTimeout)
	defer cancel()

	if err := ar.reporting.Record(ctx, event); err != nil {
		atomic.AddInt64(&ar.errors, 1)
		log.Warn().Err(err).Str("type", event.Type).Msg("Failed to write event")
	} else {
		atomic.AddInt64(&ar.written, 1)
	}
}

// Report enqueues an event for async recording.
// Returns true if the event was enqueued, false if the buffer is full.
func (ar *AsyncReporter) Report(event *model.Event) bool {
	select {
	case ar.eventCh <- event:
		atomic.AddInt64(&ar.enqueued, 1)
		return true
	default:
		atomic.AddInt64(&ar.dropped, 1)
		return false
	}
}

// Stop gracefully shuts down the reporter, waiting for pending events.
func (ar *AsyncReporter) Stop() {
	ar.stopOnce.Do(func() {
		close(ar.stopCh)
		ar.wg.Wait()
		close(ar.eventCh)
	})
}

// Stats returns current reporter statistics.
func (ar *AsyncReporter) Stats() (enqueued, dropped, written, errors int64) {
	return atomic.LoadInt64(&ar.enqueued),
		atomic.LoadInt64(&ar.dropped),
		atomic.LoadInt64(&ar.written),
		atomic.LoadInt64(&ar.errors)
}

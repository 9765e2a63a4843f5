// Package observers adapts outbound ports into store listeners.
package observers

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/emiliopalmerini/projectboard/internal/domain"
	"github.com/emiliopalmerini/projectboard/internal/ports"
	"github.com/emiliopalmerini/projectboard/internal/state"
)

const (
	exportTimeout  = 2 * time.Second
	publishTimeout = 2 * time.Second

	// relayBuffer is the number of snapshots a Relay holds while its
	// publisher is busy.
	relayBuffer = 8
)

func Summarize(projects []domain.Project) *ports.BoardMetrics {
	m := &ports.BoardMetrics{Total: int64(len(projects))}
	for _, p := range projects {
		switch p.Status {
		case domain.StatusActive:
			m.Active++
		case domain.StatusFinished:
			m.Finished++
		}
	}
	return m
}

// Metrics returns a listener that exports a summary of each snapshot. The
// exporter must only record in memory; collection happens on its own reader.
func Metrics(exp ports.MetricsExporter, logger *zap.Logger) state.Listener {
	return func(projects []domain.Project) {
		ctx, cancel := context.WithTimeout(context.Background(), exportTimeout)
		defer cancel()
		if err := exp.ExportBoardMetrics(ctx, Summarize(projects)); err != nil {
			logger.Warn("failed to export board metrics", zap.Error(err))
		}
	}
}

// Relay forwards snapshots to a SnapshotPublisher from its own goroutine.
// Listen never blocks the store: when the queue is full the oldest pending
// snapshot is dropped.
type Relay struct {
	pub   ports.SnapshotPublisher
	log   *zap.Logger
	queue chan []domain.Project

	ctx    context.Context
	cancel context.CancelFunc
	done   chan struct{}
	start  sync.Once
	stop   sync.Once
}

func NewRelay(pub ports.SnapshotPublisher, logger *zap.Logger) *Relay {
	ctx, cancel := context.WithCancel(context.Background())
	return &Relay{
		pub:    pub,
		log:    logger,
		queue:  make(chan []domain.Project, relayBuffer),
		ctx:    ctx,
		cancel: cancel,
		done:   make(chan struct{}),
	}
}

// Listen is a store listener.
func (r *Relay) Listen(projects []domain.Project) {
	select {
	case r.queue <- projects:
		return
	default:
	}
	select {
	case <-r.queue:
		r.log.Warn("snapshot publisher lagging, dropping oldest snapshot")
	default:
	}
	select {
	case r.queue <- projects:
	default:
		r.log.Warn("dropping snapshot, publisher queue full")
	}
}

// Start launches the publishing goroutine. Calling it more than once has no
// effect.
func (r *Relay) Start() {
	r.start.Do(func() { go r.run() })
}

// Stop cancels any in-flight publish and waits for the goroutine to exit.
// Snapshots still queued are discarded.
func (r *Relay) Stop() {
	r.stop.Do(func() {
		r.cancel()
		r.start.Do(func() { close(r.done) })
	})
	<-r.done
}

func (r *Relay) run() {
	defer close(r.done)
	for {
		select {
		case <-r.ctx.Done():
			return
		case projects := <-r.queue:
			if r.ctx.Err() != nil {
				return
			}
			r.publish(projects)
		}
	}
}

func (r *Relay) publish(projects []domain.Project) {
	ctx, cancel := context.WithTimeout(r.ctx, publishTimeout)
	defer cancel()
	if err := r.pub.PublishSnapshot(ctx, projects); err != nil {
		r.log.Warn("failed to publish snapshot", zap.Int("projects", len(projects)), zap.Error(err))
	}
}

// Copyright Venturely Inc., 2026. All rights reserved.

package task

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/venturely/intel-engine/pkg/types"
)

// UnitOfWork is the function a task runs. It reports progress in [0, 100)
// over the channel (the orchestrator clamps and caps, so units may report
// loosely) and returns its result or an error. The context is cancelled
// when the task owner cancels the task.
type UnitOfWork func(ctx context.Context, progress chan<- float64) (any, error)

// Handle identifies a running task to its owner.
type Handle struct {
	ID string

	cancel context.CancelFunc
	done   chan struct{}
}

// Wait blocks until the task reaches a terminal state.
func (h *Handle) Wait() {
	<-h.done
}

// Orchestrator starts units of work as registered tasks.
type Orchestrator struct {
	registry *Registry
	logger   *zap.Logger
}

// NewOrchestrator builds an Orchestrator over registry.
func NewOrchestrator(registry *Registry, logger *zap.Logger) *Orchestrator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Orchestrator{registry: registry, logger: logger}
}

// Registry exposes the task registry for reads.
func (o *Orchestrator) Registry() *Registry {
	return o.registry
}

// Start creates a Task in pending state, transitions it to in-progress, and
// runs work on its own goroutine. Progress updates are monotonically
// non-decreasing and stay below 100 until the final transition; completed
// and failed are terminal.
func (o *Orchestrator) Start(ctx context.Context, name string, work UnitOfWork) (*Handle, error) {
	t := &types.Task{
		ID:        uuid.NewString(),
		Name:      name,
		Status:    types.TaskPending,
		StartedAt: time.Now().UTC(),
	}
	if err := o.registry.insert(t); err != nil {
		return nil, err
	}

	wctx, cancel := context.WithCancel(ctx)
	h := &Handle{ID: t.ID, cancel: cancel, done: make(chan struct{})}

	o.registry.update(t.ID, func(t *types.Task) {
		t.Status = types.TaskInProgress
	})
	o.logger.Info("task started", zap.String("task", t.ID), zap.String("name", name))

	progress := make(chan float64, 16)
	outcome := make(chan result, 1)

	go func() {
		value, err := work(wctx, progress)
		close(progress)
		outcome <- result{value: value, err: err}
	}()

	go o.supervise(wctx, h, progress, outcome)
	return h, nil
}

// Cancel moves an in-progress task directly to failed with a cancellation
// reason and releases the unit's context. Cancelling a terminal task is a
// no-op.
func (o *Orchestrator) Cancel(h *Handle, reason string) {
	o.registry.update(h.ID, func(t *types.Task) {
		if t.Status.Terminal() {
			return
		}
		t.Status = types.TaskFailed
		t.Error = fmt.Sprintf("cancelled: %s", reason)
		t.FinishedAt = time.Now().UTC()
	})
	h.cancel()
	o.logger.Info("task cancelled", zap.String("task", h.ID), zap.String("reason", reason))
}

type result struct {
	value any
	err   error
}

// supervise consumes progress updates and applies the terminal transition.
// After cancellation the registry update becomes a no-op (terminal states
// are final), so late progress from the unit is ignored.
func (o *Orchestrator) supervise(ctx context.Context, h *Handle, progress <-chan float64, outcome <-chan result) {
	defer close(h.done)
	defer h.cancel()

	for p := range progress {
		o.registry.update(h.ID, func(t *types.Task) {
			if t.Status != types.TaskInProgress {
				return
			}
			// Clamp: monotonic, never reaching 100 before the terminal
			// transition.
			if p > t.Progress && p < 100 {
				t.Progress = p
			}
		})
	}

	res := <-outcome

	o.registry.update(h.ID, func(t *types.Task) {
		if t.Status.Terminal() {
			return
		}
		t.FinishedAt = time.Now().UTC()
		if res.err != nil {
			t.Status = types.TaskFailed
			t.Error = summarize(res.err, ctx.Err())
			return
		}
		t.Status = types.TaskCompleted
		t.Progress = 100
		t.Result = res.value
	})

	final, _ := o.registry.Get(h.ID)
	o.logger.Info("task finished",
		zap.String("task", h.ID),
		zap.String("status", string(final.Status)),
		zap.String("error", final.Error))
}

// summarize produces the short, non-sensitive error string stored on a
// failed task.
func summarize(workErr, ctxErr error) string {
	if ctxErr != nil {
		return fmt.Sprintf("cancelled: %v", ctxErr)
	}
	return workErr.Error()
}

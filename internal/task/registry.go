// Copyright Venturely Inc., 2026. All rights reserved.

// Package task wraps units of work in cancellable, progress-reporting
// asynchronous tasks with a concurrency-safe registry.
package task

import (
	"fmt"
	"sort"
	"sync"

	"github.com/venturely/intel-engine/pkg/types"
)

// Registry is the one mutable shared structure in the engine. All access
// goes through the mutex; reads return copies so callers never observe a
// task mid-mutation.
type Registry struct {
	mu    sync.RWMutex
	tasks map[string]*types.Task
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{tasks: make(map[string]*types.Task)}
}

// insert stores a new task. The orchestrator generates unique ids, so a
// collision means a programming error.
func (r *Registry) insert(t *types.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.tasks[t.ID]; exists {
		return fmt.Errorf("task id %s already registered", t.ID)
	}
	r.tasks[t.ID] = t
	return nil
}

// update applies fn to the stored task under the write lock.
func (r *Registry) update(id string, fn func(*types.Task)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if t, ok := r.tasks[id]; ok {
		fn(t)
	}
}

// Get returns a copy of the task, or false when the id is unknown.
func (r *Registry) Get(id string) (types.Task, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.tasks[id]
	if !ok {
		return types.Task{}, false
	}
	return *t, true
}

// List returns copies of all tasks, ordered by start time then id.
func (r *Registry) List() []types.Task {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]types.Task, 0, len(r.tasks))
	for _, t := range r.tasks {
		out = append(out, *t)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].StartedAt.Equal(out[j].StartedAt) {
			return out[i].StartedAt.Before(out[j].StartedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out
}

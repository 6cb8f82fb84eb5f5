// Copyright Venturely Inc., 2026. All rights reserved.

package types

import "time"

// TaskStatus is the lifecycle state of an asynchronous task.
type TaskStatus string

const (
	TaskPending    TaskStatus = "pending"
	TaskInProgress TaskStatus = "in-progress"
	TaskCompleted  TaskStatus = "completed"
	TaskFailed     TaskStatus = "failed"
)

// Terminal reports whether the status is final.
func (s TaskStatus) Terminal() bool {
	return s == TaskCompleted || s == TaskFailed
}

// Task is a cancellable, progress-tracked unit of asynchronous work.
// Mutated only by the task orchestrator; registry reads return copies.
type Task struct {
	ID     string     `json:"id" yaml:"id"`
	Name   string     `json:"name" yaml:"name"`
	Status TaskStatus `json:"status" yaml:"status"`

	// Progress is in [0, 100], monotonically non-decreasing, and reaches
	// 100 only on completion.
	Progress float64 `json:"progress" yaml:"progress"`

	// Result holds the unit of work's output once Status is completed.
	Result any `json:"result,omitempty" yaml:"result,omitempty"`

	// Error is a short, non-sensitive summary set when Status is failed.
	Error string `json:"error,omitempty" yaml:"error,omitempty"`

	StartedAt  time.Time `json:"started_at" yaml:"started_at"`
	FinishedAt time.Time `json:"finished_at,omitempty" yaml:"finished_at,omitempty"`
}

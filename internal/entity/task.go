package entity

import (
	"time"

	"github.com/google/uuid"
)

// TaskStatus is the lifecycle state of an asynchronous task.
// Transitions: pending -> processing -> exactly one of completed/failed.
type TaskStatus string

const (
	TaskPending    TaskStatus = "pending"
	TaskProcessing TaskStatus = "processing"
	TaskCompleted  TaskStatus = "completed"
	TaskFailed     TaskStatus = "failed"
)

// Terminal reports whether no further transitions are allowed.
func (s TaskStatus) Terminal() bool {
	return s == TaskCompleted || s == TaskFailed
}

// TaskResult carries the id of the order produced by a completed task
// plus its full representation, so pollers need no extra fetch.
type TaskResult struct {
	OrderID uuid.UUID `json:"order_id"`
	Order   Order     `json:"order"`
}

// Task is the pollable status resource for deferred order processing.
// Result is set only on completion, Error only on failure.
type Task struct {
	TaskID    uuid.UUID         `json:"task_id"`
	Status    TaskStatus        `json:"status"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
	Result    *TaskResult       `json:"result"`
	Error     *string           `json:"error"`
	Links     map[string]string `json:"links"`
}

// TaskAccepted is the 202 response body returned when background
// processing has been scheduled.
type TaskAccepted struct {
	TaskID    uuid.UUID         `json:"task_id"`
	StatusURL string            `json:"status_url"`
	Message   string            `json:"message"`
	Links     map[string]string `json:"links"`
}

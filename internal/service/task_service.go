package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/COMS4153EcommerceProject/Order-Service/internal/apperr"
	"github.com/COMS4153EcommerceProject/Order-Service/internal/entity"
	"github.com/COMS4153EcommerceProject/Order-Service/internal/links"
)

const taskQueueSize = 64

type taskJob struct {
	taskID uuid.UUID
	input  entity.OrderCreate
}

// TaskService defers slow order creation behind a pollable task. A fixed
// pool of workers drains the job queue; each task is processed by exactly
// one worker. Tasks move pending -> processing -> completed/failed and
// are immutable once terminal.
type TaskService struct {
	orders    *OrderService
	stepDelay time.Duration

	mu    sync.RWMutex
	tasks map[uuid.UUID]entity.Task

	jobs chan taskJob
}

func NewTaskService(orders *OrderService, workers int, stepDelay time.Duration) *TaskService {
	if workers < 1 {
		workers = 1
	}
	s := &TaskService{
		orders:    orders,
		stepDelay: stepDelay,
		tasks:     make(map[uuid.UUID]entity.Task),
		jobs:      make(chan taskJob, taskQueueSize),
	}
	for i := 0; i < workers; i++ {
		go s.worker()
	}
	return s
}

// StartOrderProcessing registers a pending task, schedules the work and
// returns immediately; the caller never waits on the background phases.
func (s *TaskService) StartOrderProcessing(input entity.OrderCreate) entity.TaskAccepted {
	taskID := uuid.New()
	now := time.Now().UTC()

	task := entity.Task{
		TaskID:    taskID,
		Status:    entity.TaskPending,
		CreatedAt: now,
		UpdatedAt: now,
		Links:     links.ForTask(taskID),
	}

	s.mu.Lock()
	s.tasks[taskID] = task
	s.mu.Unlock()

	select {
	case s.jobs <- taskJob{taskID: taskID, input: input}:
	default:
		// queue full: fail the task instead of blocking the caller
		s.transition(taskID, func(t *entity.Task) {
			t.Status = entity.TaskFailed
			msg := "processing queue is full"
			t.Error = &msg
		})
	}

	return entity.TaskAccepted{
		TaskID:    taskID,
		StatusURL: links.TaskStatusURL(taskID),
		Message:   "Order processing started. Poll the status URL for updates.",
		Links:     links.ForTask(taskID),
	}
}

// GetTaskStatus returns a consistent snapshot of the task.
func (s *TaskService) GetTaskStatus(taskID uuid.UUID) (entity.Task, error) {
	s.mu.RLock()
	task, ok := s.tasks[taskID]
	s.mu.RUnlock()
	if !ok {
		return entity.Task{}, apperr.ErrNotFound
	}
	if task.Links == nil {
		task.Links = links.ForTask(task.TaskID)
	}
	return task, nil
}

func (s *TaskService) worker() {
	for job := range s.jobs {
		s.process(job)
	}
}

func (s *TaskService) process(job taskJob) {
	s.transition(job.taskID, func(t *entity.Task) {
		t.Status = entity.TaskProcessing
	})

	steps := []struct {
		name string
		run  func() error
	}{
		{"validation", func() error { return job.input.Validate() }},
		{"inventory check", func() error { return nil }},
		{"payment processing", func() error { return nil }},
	}
	for _, step := range steps {
		time.Sleep(s.stepDelay)
		if err := step.run(); err != nil {
			s.transition(job.taskID, func(t *entity.Task) {
				t.Status = entity.TaskFailed
				msg := fmt.Sprintf("%s failed: %v", step.name, err)
				t.Error = &msg
			})
			return
		}
	}

	order, err := s.orders.CreateOrder(context.Background(), job.input, "")
	if err != nil {
		s.transition(job.taskID, func(t *entity.Task) {
			t.Status = entity.TaskFailed
			msg := err.Error()
			t.Error = &msg
		})
		return
	}

	s.transition(job.taskID, func(t *entity.Task) {
		t.Status = entity.TaskCompleted
		t.Result = &entity.TaskResult{OrderID: order.OrderID, Order: order}
	})
}

// transition mutates a task under the write lock. Terminal tasks are
// left untouched, which makes the terminal transition exactly-once.
func (s *TaskService) transition(taskID uuid.UUID, mutate func(*entity.Task)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, ok := s.tasks[taskID]
	if !ok || task.Status.Terminal() {
		return
	}
	mutate(&task)
	task.UpdatedAt = time.Now().UTC()
	s.tasks[taskID] = task
}

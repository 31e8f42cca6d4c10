package testutil

import (
	"time"

	"github.com/gmolchanov/quadrant/internal/domain"
	"github.com/google/uuid"
)

// Task options
type TaskOption func(*domain.Task)

func WithFlags(urgent, important bool) TaskOption {
	return func(t *domain.Task) {
		t.Urgent = urgent
		t.Important = important
	}
}

func WithDescription(desc string) TaskOption {
	return func(t *domain.Task) {
		t.Description = desc
	}
}

func WithDueDate(d time.Time) TaskOption {
	return func(t *domain.Task) {
		t.DueDate = &d
	}
}

func WithDone(completedAt time.Time) TaskOption {
	return func(t *domain.Task) {
		t.Done = true
		t.CompletedAt = &completedAt
	}
}

func NewTestTask(title string, opts ...TaskOption) *domain.Task {
	now := time.Now().UTC()
	t := &domain.Task{
		ID:        uuid.New().String(),
		Title:     title,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

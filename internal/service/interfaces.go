package service

import (
	"context"
	"time"

	"github.com/gmolchanov/quadrant/internal/domain"
)

// CreateTaskInput carries caller-supplied fields for a new task. ID and
// timestamps are assigned by the service.
type CreateTaskInput struct {
	Title       string
	Description string
	Urgent      bool
	Important   bool
	DueDate     *time.Time
}

// UpdateTaskInput carries a partial update; nil fields are left unchanged.
type UpdateTaskInput struct {
	Title       *string
	Description *string
	Urgent      *bool
	Important   *bool
	DueDate     *time.Time
}

// QuadrantGroup is one quadrant's slice of a grouped listing.
type QuadrantGroup struct {
	Quadrant domain.Quadrant
	Label    string
	Tasks    []*domain.Task
}

type TaskService interface {
	Create(ctx context.Context, input CreateTaskInput) (*domain.Task, error)
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	List(ctx context.Context) ([]*domain.Task, error)
	ListByQuadrant(ctx context.Context, q domain.Quadrant) ([]*domain.Task, error)
	ListByDone(ctx context.Context, done bool) ([]*domain.Task, error)
	ListGrouped(ctx context.Context) ([]QuadrantGroup, error)
	Search(ctx context.Context, query string) ([]*domain.Task, error)
	Update(ctx context.Context, id string, input UpdateTaskInput) (*domain.Task, error)
	MarkDone(ctx context.Context, id string) (*domain.Task, error)
	Delete(ctx context.Context, id string) error
}

// TaskTotals aggregates counts by quadrant and completion status.
type TaskTotals struct {
	Total      int
	ByQuadrant map[domain.Quadrant]int
	Completed  int
	Pending    int
}

// TimingStats classifies deadline adherence. Only tasks with a due date are
// counted.
type TimingStats struct {
	CompletedOnTime int
	CompletedLate   int
	OnPlanPending   int
	OvertimePending int
}

type StatsService interface {
	Totals(ctx context.Context) (*TaskTotals, error)
	Timing(ctx context.Context) (*TimingStats, error)
}

package repository

import (
	"context"

	"github.com/gmolchanov/quadrant/internal/domain"
)

// StatusCount holds done/pending task counts.
type StatusCount struct {
	Completed int
	Pending   int
}

type TaskRepo interface {
	Create(ctx context.Context, t *domain.Task) error
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	List(ctx context.Context) ([]*domain.Task, error)
	ListByQuadrant(ctx context.Context, q domain.Quadrant) ([]*domain.Task, error)
	ListByDone(ctx context.Context, done bool) ([]*domain.Task, error)
	Search(ctx context.Context, query string) ([]*domain.Task, error)
	Update(ctx context.Context, t *domain.Task) error
	Delete(ctx context.Context, id string) error
	CountByQuadrant(ctx context.Context) (map[domain.Quadrant]int, error)
	CountByStatus(ctx context.Context) (StatusCount, error)
}

package service

import (
	"context"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/gmolchanov/quadrant/internal/db"
	"github.com/gmolchanov/quadrant/internal/domain"
	"github.com/gmolchanov/quadrant/internal/repository"
	"github.com/google/uuid"
)

// minSearchLen is the shortest accepted search query, in runes.
const minSearchLen = 2

type taskService struct {
	tasks        repository.TaskRepo
	uow          db.UnitOfWork
	urgentWindow time.Duration
}

// NewTaskService creates a TaskService. urgentWindowDays controls deadline
// promotion: a task due within that many days is forced urgent.
func NewTaskService(tasks repository.TaskRepo, uow db.UnitOfWork, urgentWindowDays int) TaskService {
	return &taskService{
		tasks:        tasks,
		uow:          uow,
		urgentWindow: time.Duration(urgentWindowDays) * 24 * time.Hour,
	}
}

// promoteUrgency forces urgent=true when the due date falls inside the
// urgency window. Promotion only; an explicit urgent flag is never demoted.
func (s *taskService) promoteUrgency(t *domain.Task, now time.Time) {
	if t.Done || t.DueDate == nil {
		return
	}
	if t.DueDate.Sub(now) <= s.urgentWindow {
		t.Urgent = true
	}
}

func (s *taskService) Create(ctx context.Context, input CreateTaskInput) (*domain.Task, error) {
	now := time.Now().UTC()
	t := &domain.Task{
		ID:          uuid.New().String(),
		Title:       input.Title,
		Description: input.Description,
		Urgent:      input.Urgent,
		Important:   input.Important,
		DueDate:     input.DueDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	s.promoteUrgency(t, now)
	if err := s.tasks.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *taskService) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	return s.tasks.GetByID(ctx, id)
}

func (s *taskService) List(ctx context.Context) ([]*domain.Task, error) {
	return s.tasks.List(ctx)
}

func (s *taskService) ListByQuadrant(ctx context.Context, q domain.Quadrant) ([]*domain.Task, error) {
	return s.tasks.ListByQuadrant(ctx, q)
}

func (s *taskService) ListByDone(ctx context.Context, done bool) ([]*domain.Task, error) {
	return s.tasks.ListByDone(ctx, done)
}

func (s *taskService) ListGrouped(ctx context.Context) ([]QuadrantGroup, error) {
	all, err := s.tasks.List(ctx)
	if err != nil {
		return nil, err
	}

	byQuadrant := make(map[domain.Quadrant][]*domain.Task, len(domain.Quadrants))
	for _, t := range all {
		q := t.Quadrant()
		byQuadrant[q] = append(byQuadrant[q], t)
	}

	groups := make([]QuadrantGroup, 0, len(domain.Quadrants))
	for _, q := range domain.Quadrants {
		groups = append(groups, QuadrantGroup{
			Quadrant: q,
			Label:    q.Label(),
			Tasks:    byQuadrant[q],
		})
	}
	return groups, nil
}

func (s *taskService) Search(ctx context.Context, query string) ([]*domain.Task, error) {
	if utf8.RuneCountInString(query) < minSearchLen {
		return nil, fmt.Errorf("search query must be at least %d characters: %w", minSearchLen, domain.ErrInvalid)
	}
	return s.tasks.Search(ctx, query)
}

func (s *taskService) Update(ctx context.Context, id string, input UpdateTaskInput) (*domain.Task, error) {
	var out *domain.Task
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txTasks := repository.NewSQLiteTaskRepo(tx)

		t, err := txTasks.GetByID(ctx, id)
		if err != nil {
			return err
		}

		if input.Title != nil {
			t.Title = *input.Title
		}
		if input.Description != nil {
			t.Description = *input.Description
		}
		if input.Urgent != nil {
			t.Urgent = *input.Urgent
		}
		if input.Important != nil {
			t.Important = *input.Important
		}
		if input.DueDate != nil {
			t.DueDate = input.DueDate
		}
		if err := t.Validate(); err != nil {
			return err
		}

		now := time.Now().UTC()
		s.promoteUrgency(t, now)
		t.UpdatedAt = now

		err = txTasks.Update(ctx, t)
		if err != nil {
			return err
		}
		out = t
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *taskService) MarkDone(ctx context.Context, id string) (*domain.Task, error) {
	var out *domain.Task
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txTasks := repository.NewSQLiteTaskRepo(tx)

		t, err := txTasks.GetByID(ctx, id)
		if err != nil {
			return err
		}

		t.MarkDone(time.Now().UTC())

		if err := txTasks.Update(ctx, t); err != nil {
			return err
		}
		out = t
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *taskService) Delete(ctx context.Context, id string) error {
	return s.tasks.Delete(ctx, id)
}

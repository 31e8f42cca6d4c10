package service

import (
	"context"
	"time"

	"github.com/gmolchanov/quadrant/internal/repository"
)

type statsService struct {
	tasks repository.TaskRepo
}

func NewStatsService(tasks repository.TaskRepo) StatsService {
	return &statsService{tasks: tasks}
}

func (s *statsService) Totals(ctx context.Context) (*TaskTotals, error) {
	byQuadrant, err := s.tasks.CountByQuadrant(ctx)
	if err != nil {
		return nil, err
	}
	byStatus, err := s.tasks.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	return &TaskTotals{
		Total:      byStatus.Completed + byStatus.Pending,
		ByQuadrant: byQuadrant,
		Completed:  byStatus.Completed,
		Pending:    byStatus.Pending,
	}, nil
}

func (s *statsService) Timing(ctx context.Context) (*TimingStats, error) {
	all, err := s.tasks.List(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	var stats TimingStats
	for _, t := range all {
		if t.DueDate == nil {
			continue
		}
		switch {
		case t.Done && t.CompletedAt != nil && t.CompletedAt.After(*t.DueDate):
			stats.CompletedLate++
		case t.Done:
			stats.CompletedOnTime++
		case now.After(*t.DueDate):
			stats.OvertimePending++
		default:
			stats.OnPlanPending++
		}
	}
	return &stats, nil
}

package server

import (
	"net/http"

	"github.com/gmolchanov/quadrant/internal/domain"
)

func (s *Server) handleTaskStats(w http.ResponseWriter, r *http.Request) {
	totals, err := s.stats.Totals(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}

	byQuadrant := make(map[string]int, len(domain.Quadrants))
	for q, n := range totals.ByQuadrant {
		byQuadrant[string(q)] = n
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"total_tasks": totals.Total,
		"by_quadrant": byQuadrant,
		"by_status": map[string]int{
			"completed": totals.Completed,
			"pending":   totals.Pending,
		},
	})
}

func (s *Server) handleTimingStats(w http.ResponseWriter, r *http.Request) {
	timing, err := s.stats.Timing(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{
		"completed_on_time": timing.CompletedOnTime,
		"completed_late":    timing.CompletedLate,
		"on_plan_pending":   timing.OnPlanPending,
		"overtime_pending":  timing.OvertimePending,
	})
}

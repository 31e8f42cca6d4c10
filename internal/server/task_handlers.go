package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gmolchanov/quadrant/internal/domain"
	"github.com/gmolchanov/quadrant/internal/service"
)

// taskResponse is the wire shape of a task, including the derived fields.
type taskResponse struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Description  string     `json:"description,omitempty"`
	Urgent       bool       `json:"urgent"`
	Important    bool       `json:"important"`
	Quadrant     string     `json:"quadrant"`
	Done         bool       `json:"done"`
	DueDate      *time.Time `json:"due_date,omitempty"`
	CompletedAt  *time.Time `json:"completed_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	DaysUntilDue *int       `json:"days_until_due,omitempty"`
	StatusMsg    string     `json:"status_message,omitempty"`
}

func toTaskResponse(t *domain.Task) taskResponse {
	now := time.Now().UTC()
	return taskResponse{
		ID:           t.ID,
		Title:        t.Title,
		Description:  t.Description,
		Urgent:       t.Urgent,
		Important:    t.Important,
		Quadrant:     string(t.Quadrant()),
		Done:         t.Done,
		DueDate:      t.DueDate,
		CompletedAt:  t.CompletedAt,
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
		DaysUntilDue: t.DaysUntilDue(now),
		StatusMsg:    t.StatusMessage(now),
	}
}

func toTaskResponses(tasks []*domain.Task) []taskResponse {
	out := make([]taskResponse, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, toTaskResponse(t))
	}
	return out
}

// taskListResponse is the {count, tasks} envelope used by all listings.
type taskListResponse struct {
	Count int            `json:"count"`
	Tasks []taskResponse `json:"tasks"`
}

func (s *Server) handleListTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := s.tasks.List(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, taskListResponse{Count: len(tasks), Tasks: toTaskResponses(tasks)})
}

type createTaskRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Urgent      bool       `json:"urgent"`
	Important   bool       `json:"important"`
	DueDate     *time.Time `json:"due_date"`
}

func (s *Server) handleCreateTask(w http.ResponseWriter, r *http.Request) {
	var body createTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		badRequest(w, "invalid json")
		return
	}

	task, err := s.tasks.Create(r.Context(), service.CreateTaskInput{
		Title:       body.Title,
		Description: body.Description,
		Urgent:      body.Urgent,
		Important:   body.Important,
		DueDate:     body.DueDate,
	})
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toTaskResponse(task))
}

func (s *Server) handleGetTask(w http.ResponseWriter, r *http.Request) {
	task, err := s.tasks.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toTaskResponse(task))
}

type updateTaskRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Urgent      *bool      `json:"urgent"`
	Important   *bool      `json:"important"`
	DueDate     *time.Time `json:"due_date"`
}

func (s *Server) handleUpdateTask(w http.ResponseWriter, r *http.Request) {
	var body updateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		badRequest(w, "invalid json")
		return
	}

	task, err := s.tasks.Update(r.Context(), r.PathValue("id"), service.UpdateTaskInput{
		Title:       body.Title,
		Description: body.Description,
		Urgent:      body.Urgent,
		Important:   body.Important,
		DueDate:     body.DueDate,
	})
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toTaskResponse(task))
}

func (s *Server) handleDeleteTask(w http.ResponseWriter, r *http.Request) {
	if err := s.tasks.Delete(r.Context(), r.PathValue("id")); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleMarkDone(w http.ResponseWriter, r *http.Request) {
	task, err := s.tasks.MarkDone(r.Context(), r.PathValue("id"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toTaskResponse(task))
}

type quadrantGroupResponse struct {
	Quadrant string         `json:"quadrant"`
	Label    string         `json:"label"`
	Count    int            `json:"count"`
	Tasks    []taskResponse `json:"tasks"`
}

func (s *Server) handleListGrouped(w http.ResponseWriter, r *http.Request) {
	groups, err := s.tasks.ListGrouped(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}

	out := make([]quadrantGroupResponse, 0, len(groups))
	total := 0
	for _, g := range groups {
		out = append(out, quadrantGroupResponse{
			Quadrant: string(g.Quadrant),
			Label:    g.Label,
			Count:    len(g.Tasks),
			Tasks:    toTaskResponses(g.Tasks),
		})
		total += len(g.Tasks)
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"count":     total,
		"quadrants": out,
	})
}

func (s *Server) handleListByQuadrant(w http.ResponseWriter, r *http.Request) {
	q, err := domain.ParseQuadrant(r.PathValue("quadrant"))
	if err != nil {
		s.writeError(w, err)
		return
	}

	tasks, err := s.tasks.ListByQuadrant(r.Context(), q)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"quadrant": string(q),
		"label":    q.Label(),
		"count":    len(tasks),
		"tasks":    toTaskResponses(tasks),
	})
}

func (s *Server) handleListByStatus(w http.ResponseWriter, r *http.Request) {
	status := r.PathValue("status")
	var done bool
	switch status {
	case "completed":
		done = true
	case "pending":
		done = false
	default:
		badRequest(w, "unknown status (use completed or pending)")
		return
	}

	tasks, err := s.tasks.ListByDone(r.Context(), done)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"status": status,
		"count":  len(tasks),
		"tasks":  toTaskResponses(tasks),
	})
}

func (s *Server) handleSearchTasks(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	tasks, err := s.tasks.Search(r.Context(), query)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"query": query,
		"count": len(tasks),
		"tasks": toTaskResponses(tasks),
	})
}

package domain

import (
	"fmt"
	"math"
	"strings"
	"time"
)

type Task struct {
	ID          string
	Title       string
	Description string
	Urgent      bool
	Important   bool
	Done        bool

	DueDate     *time.Time
	CompletedAt *time.Time

	// Seq preserves insertion order; assigned by the store.
	Seq int64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Quadrant derives the Eisenhower classification from the two flags.
func (t *Task) Quadrant() Quadrant {
	return QuadrantFor(t.Urgent, t.Important)
}

// Validate checks invariants the store must never persist a violation of.
func (t *Task) Validate() error {
	if strings.TrimSpace(t.Title) == "" {
		return fmt.Errorf("title is required: %w", ErrInvalid)
	}
	return nil
}

// MarkDone completes the task at the given time.
func (t *Task) MarkDone(now time.Time) {
	t.Done = true
	t.CompletedAt = &now
	t.UpdatedAt = now
}

// DaysUntilDue returns the number of full days between now and the due date,
// negative when the deadline has passed. Nil when the task has no due date.
func (t *Task) DaysUntilDue(now time.Time) *int {
	if t.DueDate == nil {
		return nil
	}
	days := int(math.Floor(t.DueDate.Sub(now).Hours() / 24))
	return &days
}

// StatusMessage describes the task relative to its deadline. Empty when the
// task has no due date.
func (t *Task) StatusMessage(now time.Time) string {
	if t.DueDate == nil {
		return ""
	}
	if t.Done {
		if t.CompletedAt != nil && t.CompletedAt.After(*t.DueDate) {
			return "completed late"
		}
		return "completed on time"
	}
	days := *t.DaysUntilDue(now)
	switch {
	case days < 0:
		return "overdue"
	case days == 0:
		return "due today"
	case days == 1:
		return "1 day left"
	default:
		return fmt.Sprintf("%d days left", days)
	}
}

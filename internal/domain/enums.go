package domain

import "fmt"

// Quadrant is the Eisenhower-matrix classification code for a task.
// It is always derived from the urgent/important flags, never stored.
type Quadrant string

const (
	QuadrantDoNow     Quadrant = "Q1"
	QuadrantSchedule  Quadrant = "Q2"
	QuadrantDelegate  Quadrant = "Q3"
	QuadrantEliminate Quadrant = "Q4"
)

// Quadrants is the canonical emission order for grouped listings.
var Quadrants = []Quadrant{QuadrantDoNow, QuadrantSchedule, QuadrantDelegate, QuadrantEliminate}

// QuadrantFor classifies a pair of flags into a quadrant.
func QuadrantFor(urgent, important bool) Quadrant {
	switch {
	case urgent && important:
		return QuadrantDoNow
	case !urgent && important:
		return QuadrantSchedule
	case urgent && !important:
		return QuadrantDelegate
	default:
		return QuadrantEliminate
	}
}

// Flags returns the (urgent, important) pair that maps to this quadrant.
func (q Quadrant) Flags() (urgent, important bool) {
	switch q {
	case QuadrantDoNow:
		return true, true
	case QuadrantSchedule:
		return false, true
	case QuadrantDelegate:
		return true, false
	default:
		return false, false
	}
}

// Label returns the human-readable quadrant name.
func (q Quadrant) Label() string {
	switch q {
	case QuadrantDoNow:
		return "Do now"
	case QuadrantSchedule:
		return "Schedule"
	case QuadrantDelegate:
		return "Delegate"
	case QuadrantEliminate:
		return "Eliminate"
	}
	return string(q)
}

// ParseQuadrant parses a quadrant code (Q1..Q4). Invalid codes wrap ErrInvalid.
func ParseQuadrant(s string) (Quadrant, error) {
	switch Quadrant(s) {
	case QuadrantDoNow, QuadrantSchedule, QuadrantDelegate, QuadrantEliminate:
		return Quadrant(s), nil
	}
	return "", fmt.Errorf("unknown quadrant %q (use Q1, Q2, Q3 or Q4): %w", s, ErrInvalid)
}

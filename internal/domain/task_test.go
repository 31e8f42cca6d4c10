package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

func TestQuadrantFor(t *testing.T) {
	cases := []struct {
		urgent    bool
		important bool
		want      Quadrant
		label     string
	}{
		{true, true, QuadrantDoNow, "Do now"},
		{false, true, QuadrantSchedule, "Schedule"},
		{true, false, QuadrantDelegate, "Delegate"},
		{false, false, QuadrantEliminate, "Eliminate"},
	}
	for _, tc := range cases {
		q := QuadrantFor(tc.urgent, tc.important)
		assert.Equal(t, tc.want, q, "urgent=%v important=%v", tc.urgent, tc.important)
		assert.Equal(t, tc.label, q.Label())

		urgent, important := q.Flags()
		assert.Equal(t, tc.urgent, urgent)
		assert.Equal(t, tc.important, important)
	}
}

func TestParseQuadrant(t *testing.T) {
	for _, q := range Quadrants {
		parsed, err := ParseQuadrant(string(q))
		require.NoError(t, err)
		assert.Equal(t, q, parsed)
	}

	_, err := ParseQuadrant("Q5")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestTaskQuadrant(t *testing.T) {
	task := &Task{Title: "Pay taxes", Urgent: true, Important: true}
	assert.Equal(t, QuadrantDoNow, task.Quadrant())

	task = &Task{Title: "Read book"}
	assert.Equal(t, QuadrantEliminate, task.Quadrant())
}

func TestValidate_EmptyTitle(t *testing.T) {
	for _, title := range []string{"", "   ", "\t"} {
		task := &Task{Title: title}
		err := task.Validate()
		require.Error(t, err, "title=%q", title)
		assert.ErrorIs(t, err, ErrInvalid)
	}
}

func TestValidate_OK(t *testing.T) {
	task := &Task{Title: "Water plants"}
	require.NoError(t, task.Validate())
}

func TestMarkDone(t *testing.T) {
	task := &Task{Title: "Submit report"}
	task.MarkDone(testNow)
	assert.True(t, task.Done)
	require.NotNil(t, task.CompletedAt)
	assert.Equal(t, testNow, *task.CompletedAt)
	assert.Equal(t, testNow, task.UpdatedAt)
}

func TestDaysUntilDue(t *testing.T) {
	task := &Task{Title: "No deadline"}
	assert.Nil(t, task.DaysUntilDue(testNow))

	due := testNow.Add(49 * time.Hour)
	task.DueDate = &due
	require.NotNil(t, task.DaysUntilDue(testNow))
	assert.Equal(t, 2, *task.DaysUntilDue(testNow))

	past := testNow.Add(-time.Hour)
	task.DueDate = &past
	assert.Equal(t, -1, *task.DaysUntilDue(testNow))
}

func TestStatusMessage(t *testing.T) {
	task := &Task{Title: "No deadline"}
	assert.Equal(t, "", task.StatusMessage(testNow))

	overdue := testNow.Add(-48 * time.Hour)
	task.DueDate = &overdue
	assert.Equal(t, "overdue", task.StatusMessage(testNow))

	today := testNow.Add(2 * time.Hour)
	task.DueDate = &today
	assert.Equal(t, "due today", task.StatusMessage(testNow))

	tomorrow := testNow.Add(26 * time.Hour)
	task.DueDate = &tomorrow
	assert.Equal(t, "1 day left", task.StatusMessage(testNow))

	nextWeek := testNow.Add(7 * 24 * time.Hour)
	task.DueDate = &nextWeek
	assert.Equal(t, "7 days left", task.StatusMessage(testNow))
}

func TestStatusMessage_Completed(t *testing.T) {
	due := testNow
	onTime := testNow.Add(-time.Hour)
	task := &Task{Title: "Report", Done: true, DueDate: &due, CompletedAt: &onTime}
	assert.Equal(t, "completed on time", task.StatusMessage(testNow))

	late := testNow.Add(time.Hour)
	task.CompletedAt = &late
	assert.Equal(t, "completed late", task.StatusMessage(testNow.Add(2*time.Hour)))
}

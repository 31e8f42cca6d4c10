package service

import (
	"context"
	"testing"
	"time"

	"github.com/gmolchanov/quadrant/internal/domain"
	"github.com/gmolchanov/quadrant/internal/repository"
	"github.com/gmolchanov/quadrant/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testUrgentWindowDays = 3

func setupTaskService(t *testing.T) TaskService {
	t.Helper()
	db := testutil.NewTestDB(t)
	repo := repository.NewSQLiteTaskRepo(db)
	uow := testutil.NewTestUoW(db)
	return NewTaskService(repo, uow, testUrgentWindowDays)
}

func TestTaskService_CreateAndGet(t *testing.T) {
	svc := setupTaskService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateTaskInput{Title: "Pay taxes", Urgent: true, Important: true})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID, "service should assign UUID")
	assert.False(t, created.Done, "done defaults to false")

	fetched, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.QuadrantDoNow, fetched.Quadrant())
}

func TestTaskService_Create_EmptyTitle(t *testing.T) {
	svc := setupTaskService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateTaskInput{Title: "   "})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalid)

	// No record added.
	list, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestTaskService_Create_PromotesUrgencyNearDeadline(t *testing.T) {
	svc := setupTaskService(t)
	ctx := context.Background()

	soon := time.Now().UTC().Add(24 * time.Hour)
	created, err := svc.Create(ctx, CreateTaskInput{Title: "Hand in thesis", Important: true, DueDate: &soon})
	require.NoError(t, err)
	assert.True(t, created.Urgent, "due date inside the window forces urgent")
	assert.Equal(t, domain.QuadrantDoNow, created.Quadrant())

	distant := time.Now().UTC().AddDate(0, 1, 0)
	relaxed, err := svc.Create(ctx, CreateTaskInput{Title: "Plan vacation", Important: true, DueDate: &distant})
	require.NoError(t, err)
	assert.False(t, relaxed.Urgent, "distant deadline does not promote")

	// An explicit urgent flag survives a distant deadline.
	explicit, err := svc.Create(ctx, CreateTaskInput{Title: "Fix prod bug", Urgent: true, DueDate: &distant})
	require.NoError(t, err)
	assert.True(t, explicit.Urgent)
}

func TestTaskService_ListGrouped_PartitionsAllTasks(t *testing.T) {
	svc := setupTaskService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateTaskInput{Title: "Pay taxes", Urgent: true, Important: true})
	require.NoError(t, err)
	_, err = svc.Create(ctx, CreateTaskInput{Title: "Learn Go", Important: true})
	require.NoError(t, err)
	_, err = svc.Create(ctx, CreateTaskInput{Title: "Answer mail", Urgent: true})
	require.NoError(t, err)
	_, err = svc.Create(ctx, CreateTaskInput{Title: "Read book"})
	require.NoError(t, err)

	groups, err := svc.ListGrouped(ctx)
	require.NoError(t, err)
	require.Len(t, groups, 4, "exactly four quadrants, always")

	// Fixed emission order.
	wantOrder := []domain.Quadrant{
		domain.QuadrantDoNow, domain.QuadrantSchedule,
		domain.QuadrantDelegate, domain.QuadrantEliminate,
	}
	total := 0
	seen := map[string]bool{}
	for i, g := range groups {
		assert.Equal(t, wantOrder[i], g.Quadrant)
		assert.Equal(t, wantOrder[i].Label(), g.Label)
		for _, task := range g.Tasks {
			assert.False(t, seen[task.ID], "no task duplicated across groups")
			seen[task.ID] = true
			assert.Equal(t, g.Quadrant, task.Quadrant())
		}
		total += len(g.Tasks)
	}
	assert.Equal(t, 4, total, "no task omitted")

	assert.Equal(t, "Pay taxes", groups[0].Tasks[0].Title)
	assert.Equal(t, "Read book", groups[3].Tasks[0].Title)
}

func TestTaskService_ListGrouped_EmptyStore(t *testing.T) {
	svc := setupTaskService(t)

	groups, err := svc.ListGrouped(context.Background())
	require.NoError(t, err)
	require.Len(t, groups, 4)
	for _, g := range groups {
		assert.Empty(t, g.Tasks)
	}
}

func TestTaskService_Update_PartialFields(t *testing.T) {
	svc := setupTaskService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateTaskInput{
		Title:       "Draft report",
		Description: "for the quarterly review",
		Important:   true,
	})
	require.NoError(t, err)

	newTitle := "Draft Q2 report"
	updated, err := svc.Update(ctx, created.ID, UpdateTaskInput{Title: &newTitle})
	require.NoError(t, err)
	assert.Equal(t, newTitle, updated.Title)
	assert.Equal(t, "for the quarterly review", updated.Description, "unspecified fields unchanged")
	assert.True(t, updated.Important)

	fetched, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, newTitle, fetched.Title)
}

func TestTaskService_Update_EmptyTitle(t *testing.T) {
	svc := setupTaskService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateTaskInput{Title: "Valid"})
	require.NoError(t, err)

	empty := ""
	_, err = svc.Update(ctx, created.ID, UpdateTaskInput{Title: &empty})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalid)

	// Rolled back: stored title untouched.
	fetched, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Valid", fetched.Title)
}

func TestTaskService_Update_NotFound(t *testing.T) {
	svc := setupTaskService(t)

	title := "anything"
	_, err := svc.Update(context.Background(), "nonexistent", UpdateTaskInput{Title: &title})
	require.Error(t, err)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestTaskService_MarkDone(t *testing.T) {
	svc := setupTaskService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateTaskInput{Title: "Finish me"})
	require.NoError(t, err)

	done, err := svc.MarkDone(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, done.Done)
	require.NotNil(t, done.CompletedAt)

	_, err = svc.MarkDone(ctx, "nonexistent")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestTaskService_DeleteThenGet(t *testing.T) {
	svc := setupTaskService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateTaskInput{Title: "Short-lived"})
	require.NoError(t, err)
	require.NoError(t, svc.Delete(ctx, created.ID))

	_, err = svc.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	err = svc.Delete(ctx, created.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound, "second delete fails")
}

func TestTaskService_Search_QueryTooShort(t *testing.T) {
	svc := setupTaskService(t)

	_, err := svc.Search(context.Background(), "a")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalid)
}

func TestTaskService_Search(t *testing.T) {
	svc := setupTaskService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateTaskInput{Title: "Buy milk"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, CreateTaskInput{Title: "Return library books", Description: "milk the overdue fines"})
	require.NoError(t, err)

	found, err := svc.Search(ctx, "milk")
	require.NoError(t, err)
	assert.Len(t, found, 2)

	none, err := svc.Search(ctx, "caviar")
	require.NoError(t, err)
	assert.Empty(t, none, "no matches is an empty result, not an error")
}

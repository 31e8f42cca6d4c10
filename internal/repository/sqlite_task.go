package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/gmolchanov/quadrant/internal/db"
	"github.com/gmolchanov/quadrant/internal/domain"
)

// taskColumns is the canonical SELECT column list for tasks.
const taskColumns = `seq, id, title, description, urgent, important, done,
		due_date, completed_at, created_at, updated_at`

// SQLiteTaskRepo implements TaskRepo over a db.DBTX, so the same code serves
// both plain connections and UnitOfWork transactions.
type SQLiteTaskRepo struct {
	db db.DBTX
}

// NewSQLiteTaskRepo creates a new SQLiteTaskRepo.
func NewSQLiteTaskRepo(dbtx db.DBTX) *SQLiteTaskRepo {
	return &SQLiteTaskRepo{db: dbtx}
}

func (r *SQLiteTaskRepo) Create(ctx context.Context, t *domain.Task) error {
	query := `INSERT INTO tasks (id, title, description, urgent, important, done,
		due_date, completed_at, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query,
		t.ID,
		t.Title,
		t.Description,
		boolToInt(t.Urgent),
		boolToInt(t.Important),
		boolToInt(t.Done),
		nullableTimeToString(t.DueDate),
		nullableTimeToString(t.CompletedAt),
		t.CreatedAt.Format(time.RFC3339),
		t.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting task: %w", err)
	}
	seq, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading task seq: %w", err)
	}
	t.Seq = seq
	return nil
}

func (r *SQLiteTaskRepo) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	return r.scanTask(row)
}

func (r *SQLiteTaskRepo) List(ctx context.Context) ([]*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks ORDER BY seq`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}
	defer rows.Close()
	return r.scanTasks(rows)
}

func (r *SQLiteTaskRepo) ListByQuadrant(ctx context.Context, q domain.Quadrant) ([]*domain.Task, error) {
	urgent, important := q.Flags()
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE urgent = ? AND important = ? ORDER BY seq`
	rows, err := r.db.QueryContext(ctx, query, boolToInt(urgent), boolToInt(important))
	if err != nil {
		return nil, fmt.Errorf("listing tasks by quadrant: %w", err)
	}
	defer rows.Close()
	return r.scanTasks(rows)
}

func (r *SQLiteTaskRepo) ListByDone(ctx context.Context, done bool) ([]*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE done = ? ORDER BY seq`
	rows, err := r.db.QueryContext(ctx, query, boolToInt(done))
	if err != nil {
		return nil, fmt.Errorf("listing tasks by status: %w", err)
	}
	defer rows.Close()
	return r.scanTasks(rows)
}

func (r *SQLiteTaskRepo) Search(ctx context.Context, query string) ([]*domain.Task, error) {
	// SQLite's lower() only folds ASCII, so case-insensitive matching happens
	// here in Go. This also sidesteps LIKE wildcard interpretation of user input.
	sqlQuery := `SELECT ` + taskColumns + ` FROM tasks ORDER BY seq`
	rows, err := r.db.QueryContext(ctx, sqlQuery)
	if err != nil {
		return nil, fmt.Errorf("searching tasks: %w", err)
	}
	defer rows.Close()
	all, err := r.scanTasks(rows)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(query)
	var tasks []*domain.Task
	for _, t := range all {
		if strings.Contains(strings.ToLower(t.Title), needle) ||
			strings.Contains(strings.ToLower(t.Description), needle) {
			tasks = append(tasks, t)
		}
	}
	return tasks, nil
}

func (r *SQLiteTaskRepo) Update(ctx context.Context, t *domain.Task) error {
	query := `UPDATE tasks SET title = ?, description = ?, urgent = ?, important = ?, done = ?,
		due_date = ?, completed_at = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		t.Title,
		t.Description,
		boolToInt(t.Urgent),
		boolToInt(t.Important),
		boolToInt(t.Done),
		nullableTimeToString(t.DueDate),
		nullableTimeToString(t.CompletedAt),
		t.UpdatedAt.Format(time.RFC3339),
		t.ID,
	)
	if err != nil {
		return fmt.Errorf("updating task: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating task: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("task %s: %w", t.ID, ErrNotFound)
	}
	return nil
}

func (r *SQLiteTaskRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting task: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting task: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("task %s: %w", id, ErrNotFound)
	}
	return nil
}

func (r *SQLiteTaskRepo) CountByQuadrant(ctx context.Context) (map[domain.Quadrant]int, error) {
	query := `SELECT urgent, important, COUNT(*) FROM tasks GROUP BY urgent, important`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("counting tasks by quadrant: %w", err)
	}
	defer rows.Close()

	counts := make(map[domain.Quadrant]int, len(domain.Quadrants))
	for _, q := range domain.Quadrants {
		counts[q] = 0
	}
	for rows.Next() {
		var urgentInt, importantInt, n int
		if err := rows.Scan(&urgentInt, &importantInt, &n); err != nil {
			return nil, fmt.Errorf("scanning quadrant count: %w", err)
		}
		counts[domain.QuadrantFor(intToBool(urgentInt), intToBool(importantInt))] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating quadrant counts: %w", err)
	}
	return counts, nil
}

func (r *SQLiteTaskRepo) CountByStatus(ctx context.Context) (StatusCount, error) {
	query := `SELECT
		COALESCE(SUM(CASE WHEN done = 1 THEN 1 ELSE 0 END), 0),
		COALESCE(SUM(CASE WHEN done = 0 THEN 1 ELSE 0 END), 0)
		FROM tasks`
	var c StatusCount
	if err := r.db.QueryRowContext(ctx, query).Scan(&c.Completed, &c.Pending); err != nil {
		return StatusCount{}, fmt.Errorf("counting tasks by status: %w", err)
	}
	return c, nil
}

// scanTask scans a single task from a *sql.Row.
func (r *SQLiteTaskRepo) scanTask(row *sql.Row) (*domain.Task, error) {
	var t domain.Task
	var urgentInt, importantInt, doneInt int
	var dueDateStr, completedAtStr sql.NullString
	var createdAtStr, updatedAtStr string

	err := row.Scan(
		&t.Seq, &t.ID, &t.Title, &t.Description, &urgentInt, &importantInt, &doneInt,
		&dueDateStr, &completedAtStr, &createdAtStr, &updatedAtStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("task: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning task: %w", err)
	}

	return r.populateTask(&t, urgentInt, importantInt, doneInt, dueDateStr, completedAtStr, createdAtStr, updatedAtStr)
}

// scanTasks scans multiple tasks from *sql.Rows.
func (r *SQLiteTaskRepo) scanTasks(rows *sql.Rows) ([]*domain.Task, error) {
	var tasks []*domain.Task
	for rows.Next() {
		var t domain.Task
		var urgentInt, importantInt, doneInt int
		var dueDateStr, completedAtStr sql.NullString
		var createdAtStr, updatedAtStr string

		err := rows.Scan(
			&t.Seq, &t.ID, &t.Title, &t.Description, &urgentInt, &importantInt, &doneInt,
			&dueDateStr, &completedAtStr, &createdAtStr, &updatedAtStr,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning task row: %w", err)
		}

		task, err := r.populateTask(&t, urgentInt, importantInt, doneInt, dueDateStr, completedAtStr, createdAtStr, updatedAtStr)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tasks: %w", err)
	}
	return tasks, nil
}

// populateTask fills in parsed fields on a Task after scanning raw values.
func (r *SQLiteTaskRepo) populateTask(
	t *domain.Task,
	urgentInt, importantInt, doneInt int,
	dueDateStr, completedAtStr sql.NullString,
	createdAtStr, updatedAtStr string,
) (*domain.Task, error) {
	t.Urgent = intToBool(urgentInt)
	t.Important = intToBool(importantInt)
	t.Done = intToBool(doneInt)
	t.DueDate = parseNullableTime(dueDateStr)
	t.CompletedAt = parseNullableTime(completedAtStr)

	var parseErr error
	t.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	t.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}

	return t, nil
}

package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/sayed725/express-server/internal/database"
	"github.com/sayed725/express-server/internal/models"
	"github.com/sayed725/express-server/pkg/logger"
)

const todoColumns = `id, user_id, title, description, completed, due_date, created_at, updated_at`

// Todos issues the SQL statements behind the /todos endpoints.
type Todos struct {
	db      *sql.DB
	timeout time.Duration
}

func NewTodos(pg *database.Postgres, timeout time.Duration) *Todos {
	return &Todos{db: pg.DB(), timeout: timeout}
}

func scanTodo(row rowScanner) (*models.Todo, error) {
	var t models.Todo
	err := row.Scan(&t.ID, &t.UserID, &t.Title, &t.Description, &t.Completed, &t.DueDate, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// Create inserts a todo and returns the row as the store echoed it. Nil
// values insert NULL: the store rejects a missing title (NOT NULL) and
// user ids that reference no user.
func (r *Todos) Create(ctx context.Context, userID *int64, title *string) (*models.Todo, error) {
	ctx, cancel := withDeadline(ctx, r.timeout)
	defer cancel()
	row := r.db.QueryRowContext(ctx,
		`INSERT INTO todos (user_id, title) VALUES ($1, $2) RETURNING `+todoColumns,
		userID, title)
	t, err := scanTodo(row)
	if err != nil {
		logger.Error(ctx, "Repository create todo failed", "error", err)
		return nil, err
	}
	return t, nil
}

// List returns all todos in store-defined order.
func (r *Todos) List(ctx context.Context) ([]models.Todo, error) {
	ctx, cancel := withDeadline(ctx, r.timeout)
	defer cancel()
	rows, err := r.db.QueryContext(ctx, `SELECT `+todoColumns+` FROM todos`)
	if err != nil {
		logger.Error(ctx, "Repository list todos failed", "error", err)
		return nil, err
	}
	defer rows.Close()
	var todos []models.Todo
	for rows.Next() {
		t, err := scanTodo(rows)
		if err != nil {
			logger.Error(ctx, "Repository scan todo failed", "error", err)
			return nil, err
		}
		todos = append(todos, *t)
	}
	return todos, rows.Err()
}

// GetByID returns the matching todo, or (nil, nil) when no row matches.
func (r *Todos) GetByID(ctx context.Context, id int64) (*models.Todo, error) {
	ctx, cancel := withDeadline(ctx, r.timeout)
	defer cancel()
	row := r.db.QueryRowContext(ctx, `SELECT `+todoColumns+` FROM todos WHERE id = $1`, id)
	t, err := scanTodo(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		logger.Error(ctx, "Repository get todo failed", "error", err, "id", id)
		return nil, err
	}
	return t, nil
}

// Update rewrites the title on the matching row; other columns are left as
// they are, and a nil title is written as NULL for the store to reject.
// Returns (nil, nil) when no row matches.
func (r *Todos) Update(ctx context.Context, id int64, title *string) (*models.Todo, error) {
	ctx, cancel := withDeadline(ctx, r.timeout)
	defer cancel()
	row := r.db.QueryRowContext(ctx,
		`UPDATE todos SET title = $1 WHERE id = $2 RETURNING `+todoColumns,
		title, id)
	t, err := scanTodo(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		logger.Error(ctx, "Repository update todo failed", "error", err, "id", id)
		return nil, err
	}
	return t, nil
}

// Delete removes the matching row and returns the removed rows (empty when
// nothing matched).
func (r *Todos) Delete(ctx context.Context, id int64) ([]models.Todo, error) {
	ctx, cancel := withDeadline(ctx, r.timeout)
	defer cancel()
	rows, err := r.db.QueryContext(ctx,
		`DELETE FROM todos WHERE id = $1 RETURNING `+todoColumns, id)
	if err != nil {
		logger.Error(ctx, "Repository delete todo failed", "error", err, "id", id)
		return nil, err
	}
	defer rows.Close()
	var deleted []models.Todo
	for rows.Next() {
		t, err := scanTodo(rows)
		if err != nil {
			logger.Error(ctx, "Repository scan deleted todo failed", "error", err)
			return nil, err
		}
		deleted = append(deleted, *t)
	}
	return deleted, rows.Err()
}

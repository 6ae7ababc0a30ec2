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

const userColumns = `id, name, email, age, phone, address, created_at, updated_at`

// Users issues the SQL statements behind the /users endpoints. Every method
// is a single round-trip bounded by the configured query timeout.
type Users struct {
	db      *sql.DB
	timeout time.Duration
}

func NewUsers(pg *database.Postgres, timeout time.Duration) *Users {
	return &Users{db: pg.DB(), timeout: timeout}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.Age, &u.Phone, &u.Address, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func withDeadline(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, timeout)
}

// Create inserts a user and returns the row as the store echoed it. Nil
// fields insert NULL; the NOT NULL columns make the store reject those rows.
func (r *Users) Create(ctx context.Context, name, email *string) (*models.User, error) {
	ctx, cancel := withDeadline(ctx, r.timeout)
	defer cancel()
	row := r.db.QueryRowContext(ctx,
		`INSERT INTO users (name, email) VALUES ($1, $2) RETURNING `+userColumns,
		name, email)
	u, err := scanUser(row)
	if err != nil {
		logger.Error(ctx, "Repository create user failed", "error", err)
		return nil, err
	}
	return u, nil
}

// List returns all users in store-defined order.
func (r *Users) List(ctx context.Context) ([]models.User, error) {
	ctx, cancel := withDeadline(ctx, r.timeout)
	defer cancel()
	rows, err := r.db.QueryContext(ctx, `SELECT `+userColumns+` FROM users`)
	if err != nil {
		logger.Error(ctx, "Repository list users failed", "error", err)
		return nil, err
	}
	defer rows.Close()
	var users []models.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			logger.Error(ctx, "Repository scan user failed", "error", err)
			return nil, err
		}
		users = append(users, *u)
	}
	return users, rows.Err()
}

// GetByID returns the matching user, or (nil, nil) when no row matches.
func (r *Users) GetByID(ctx context.Context, id int64) (*models.User, error) {
	ctx, cancel := withDeadline(ctx, r.timeout)
	defer cancel()
	row := r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	u, err := scanUser(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		logger.Error(ctx, "Repository get user failed", "error", err, "id", id)
		return nil, err
	}
	return u, nil
}

// Update rewrites name and email on the matching row; nil fields are written
// as NULL and rejected by the store. Returns (nil, nil) when no row matches.
func (r *Users) Update(ctx context.Context, id int64, name, email *string) (*models.User, error) {
	ctx, cancel := withDeadline(ctx, r.timeout)
	defer cancel()
	row := r.db.QueryRowContext(ctx,
		`UPDATE users SET name = $1, email = $2 WHERE id = $3 RETURNING `+userColumns,
		name, email, id)
	u, err := scanUser(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		logger.Error(ctx, "Repository update user failed", "error", err, "id", id)
		return nil, err
	}
	return u, nil
}

// Delete removes the matching row and returns the removed rows (empty when
// nothing matched). The store cascades the delete to the user's todos.
func (r *Users) Delete(ctx context.Context, id int64) ([]models.User, error) {
	ctx, cancel := withDeadline(ctx, r.timeout)
	defer cancel()
	rows, err := r.db.QueryContext(ctx,
		`DELETE FROM users WHERE id = $1 RETURNING `+userColumns, id)
	if err != nil {
		logger.Error(ctx, "Repository delete user failed", "error", err, "id", id)
		return nil, err
	}
	defer rows.Close()
	var deleted []models.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			logger.Error(ctx, "Repository scan deleted user failed", "error", err)
			return nil, err
		}
		deleted = append(deleted, *u)
	}
	return deleted, rows.Err()
}

package repository

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sayed725/express-server/internal/config"
	"github.com/sayed725/express-server/internal/database"
	"github.com/sayed725/express-server/internal/models"
)

// These tests need a real Postgres. Set TEST_DATABASE_URL to run them;
// they are skipped otherwise.
func testDB(t *testing.T) *database.Postgres {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set; skipping database tests")
	}
	cfg := &config.Config{DatabaseURL: dsn, DBPoolSize: 4, QueryTimeout: 5 * time.Second}
	pg, err := database.Open(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pg.Close() })
	require.NoError(t, pg.EnsureSchema(context.Background()))
	return pg
}

func strPtr(s string) *string { return &s }

func uniqueEmail() string {
	return fmt.Sprintf("t-%s@example.com", uuid.New().String()[:12])
}

func TestEnsureSchemaIsIdempotent(t *testing.T) {
	pg := testDB(t)
	ctx := context.Background()

	users := NewUsers(pg, 5*time.Second)
	created, err := users.Create(ctx, strPtr("Idem"), strPtr(uniqueEmail()))
	require.NoError(t, err)

	// Running the initializer again must neither fail nor touch existing rows.
	require.NoError(t, pg.EnsureSchema(ctx))
	again, err := users.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, again)
	assert.Equal(t, created.Email, again.Email)
}

func TestUserLifecycle(t *testing.T) {
	pg := testDB(t)
	ctx := context.Background()
	users := NewUsers(pg, 5*time.Second)

	email := uniqueEmail()
	created, err := users.Create(ctx, strPtr("A"), strPtr(email))
	require.NoError(t, err)
	assert.Positive(t, created.ID)
	assert.Equal(t, email, created.Email)
	assert.Nil(t, created.Age)
	assert.False(t, created.CreatedAt.IsZero())

	t.Run("duplicate email is rejected by the store", func(t *testing.T) {
		_, err := users.Create(ctx, strPtr("B"), strPtr(email))
		assert.Error(t, err)
	})

	t.Run("omitted name reaches the store as NULL and is rejected", func(t *testing.T) {
		_, err := users.Create(ctx, nil, strPtr(uniqueEmail()))
		assert.Error(t, err)
	})

	t.Run("get by id", func(t *testing.T) {
		got, err := users.GetByID(ctx, created.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, created.ID, got.ID)
	})

	t.Run("get missing id is not an error", func(t *testing.T) {
		got, err := users.GetByID(ctx, -1)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("update rewrites name and email", func(t *testing.T) {
		newEmail := uniqueEmail()
		updated, err := users.Update(ctx, created.ID, strPtr("A2"), strPtr(newEmail))
		require.NoError(t, err)
		require.NotNil(t, updated)
		assert.Equal(t, "A2", updated.Name)
		assert.Equal(t, newEmail, updated.Email)
	})

	t.Run("update missing id returns no row", func(t *testing.T) {
		updated, err := users.Update(ctx, -1, strPtr("X"), strPtr(uniqueEmail()))
		require.NoError(t, err)
		assert.Nil(t, updated)
	})

	t.Run("delete returns the removed row", func(t *testing.T) {
		deleted, err := users.Delete(ctx, created.ID)
		require.NoError(t, err)
		require.Len(t, deleted, 1)
		assert.Equal(t, created.ID, deleted[0].ID)

		deleted, err = users.Delete(ctx, created.ID)
		require.NoError(t, err)
		assert.Empty(t, deleted)
	})
}

func TestTodoLifecycle(t *testing.T) {
	pg := testDB(t)
	ctx := context.Background()
	users := NewUsers(pg, 5*time.Second)
	todos := NewTodos(pg, 5*time.Second)

	owner, err := users.Create(ctx, strPtr("Owner"), strPtr(uniqueEmail()))
	require.NoError(t, err)
	t.Cleanup(func() { _, _ = users.Delete(context.Background(), owner.ID) })

	created, err := todos.Create(ctx, &owner.ID, strPtr("buy milk"))
	require.NoError(t, err)
	assert.Positive(t, created.ID)
	require.NotNil(t, created.UserID)
	assert.Equal(t, owner.ID, *created.UserID)
	assert.False(t, created.Completed)
	assert.Nil(t, created.Description)
	assert.Nil(t, created.DueDate)

	t.Run("create with unknown user is rejected by the store", func(t *testing.T) {
		bad := int64(-1)
		_, err := todos.Create(ctx, &bad, strPtr("orphan"))
		assert.Error(t, err)
	})

	t.Run("omitted title reaches the store as NULL and is rejected", func(t *testing.T) {
		_, err := todos.Create(ctx, &owner.ID, nil)
		assert.Error(t, err)
	})

	t.Run("update rewrites title only", func(t *testing.T) {
		updated, err := todos.Update(ctx, created.ID, strPtr("buy oat milk"))
		require.NoError(t, err)
		require.NotNil(t, updated)
		assert.Equal(t, "buy oat milk", updated.Title)
		assert.False(t, updated.Completed)
		assert.Nil(t, updated.Description)
		assert.Nil(t, updated.DueDate)
	})

	t.Run("list includes the todo", func(t *testing.T) {
		all, err := todos.List(ctx)
		require.NoError(t, err)
		assert.True(t, containsTodo(all, created.ID))
	})

	t.Run("deleting the user cascades to its todos", func(t *testing.T) {
		deleted, err := users.Delete(ctx, owner.ID)
		require.NoError(t, err)
		require.Len(t, deleted, 1)

		got, err := todos.GetByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Nil(t, got)

		all, err := todos.List(ctx)
		require.NoError(t, err)
		assert.False(t, containsTodo(all, created.ID))
	})
}

func containsTodo(todos []models.Todo, id int64) bool {
	for _, t := range todos {
		if t.ID == id {
			return true
		}
	}
	return false
}

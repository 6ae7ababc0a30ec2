// Seed inserts demo users and todos. Run from project root: go run ./scripts/seed
package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"

	"github.com/sayed725/express-server/internal/config"
	"github.com/sayed725/express-server/internal/database"
)

const (
	userCount     = 50
	todosPerUser  = 20
	todoBatchSize = 500
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Config failed:", err)
		os.Exit(1)
	}
	pg, err := database.Open(ctx, cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "DB connection failed:", err)
		os.Exit(1)
	}
	defer pg.Close()
	if err := pg.EnsureSchema(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Schema failed:", err)
		os.Exit(1)
	}
	db := pg.DB()

	userIDs := make([]int64, 0, userCount)
	for i := 1; i <= userCount; i++ {
		// uuid keeps emails unique across repeated seed runs
		email := fmt.Sprintf("user%d-%s@example.com", i, uuid.New().String()[:8])
		var id int64
		err := db.QueryRowContext(ctx,
			`INSERT INTO users (name, email) VALUES ($1, $2) RETURNING id`,
			fmt.Sprintf("User %d", i), email).Scan(&id)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Insert user failed:", err)
			os.Exit(1)
		}
		userIDs = append(userIDs, id)
	}
	fmt.Printf("Inserted %d users\n", len(userIDs))

	total := userCount * todosPerUser
	inserted := 0
	for inserted < total {
		n := todoBatchSize
		if total-inserted < n {
			n = total - inserted
		}
		args := make([]interface{}, 0, n*2)
		placeholders := make([]string, 0, n)
		for i := 0; i < n; i++ {
			seq := inserted + i + 1
			placeholders = append(placeholders, fmt.Sprintf("($%d,$%d)", 2*i+1, 2*i+2))
			args = append(args, userIDs[seq%len(userIDs)], fmt.Sprintf("Todo %d", seq))
		}
		q := `INSERT INTO todos (user_id, title) VALUES ` + strings.Join(placeholders, ",")
		if _, err := db.ExecContext(ctx, q, args...); err != nil {
			fmt.Fprintln(os.Stderr, "Insert todos failed:", err)
			os.Exit(1)
		}
		inserted += n
		fmt.Printf("\rInserted %d / %d todos", inserted, total)
	}
	fmt.Println("\nDone")
}

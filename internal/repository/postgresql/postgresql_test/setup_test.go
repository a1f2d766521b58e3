package postgresql_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/cmlabs-hris/hris-payroll-go/internal/pkg/database"
	"github.com/stretchr/testify/require"
)

// newTestDB connects to TEST_DATABASE_URL, applies migrations and empties every table.
// Tests are skipped when the variable is not set.
func newTestDB(t *testing.T) *database.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	db, err := database.NewPostgreSQLDB(ctx, dsn, database.PoolOptions{MaxConns: 4})
	require.NoError(t, err)
	t.Cleanup(db.Close)

	require.NoError(t, db.Migrate(ctx))
	require.NoError(t, truncateAllTables(ctx, db))

	return db
}

func truncateAllTables(ctx context.Context, db *database.DB) error {
	tx, err := db.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	tables := []string{
		"support_requests",
		"leave_requests",
		"payroll",
		"attendance",
		"employees",
	}

	for _, table := range tables {
		_, err := tx.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE", table))
		if err != nil {
			return fmt.Errorf("failed to truncate table %s: %w", table, err)
		}
	}

	return tx.Commit(ctx)
}

// insertEmployee adds an EMPLOYEE row with the given salary, or a NULL salary when salary is empty.
func insertEmployee(t *testing.T, db *database.DB, name, salary string) int64 {
	t.Helper()

	var salaryArg *string
	if salary != "" {
		salaryArg = &salary
	}

	var id int64
	err := db.QueryRow(context.Background(), `
		INSERT INTO employees (name, email, role, salary_per_day)
		VALUES ($1, $2, 'EMPLOYEE', $3::numeric)
		RETURNING id
	`, name, name+"@example.com", salaryArg).Scan(&id)
	require.NoError(t, err)
	return id
}

func backdateEmployee(t *testing.T, db *database.DB, id int64, createdAt time.Time) {
	t.Helper()

	_, err := db.Exec(context.Background(), `UPDATE employees SET created_at = $2 WHERE id = $1`, id, createdAt)
	require.NoError(t, err)
}

package postgresql_test

import (
	"context"
	"testing"

	"github.com/cmlabs-hris/hris-payroll-go/internal/domain/support"
	"github.com/cmlabs-hris/hris-payroll-go/internal/repository/postgresql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSupportRequestRepository_List(t *testing.T) {
	db := newTestDB(t)
	repo := postgresql.NewSupportRequestRepository(db)
	ctx := context.Background()

	_, err := db.Exec(ctx, `
		INSERT INTO support_requests (request_type, status, subject) VALUES
			('IT', 'Open', 'laptop'),
			('IT', 'Closed', 'vpn'),
			('HR', 'Open', 'contract')
	`)
	require.NoError(t, err)

	all, err := repo.List(ctx, support.Filter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "laptop", all[0]["subject"])

	it, err := repo.List(ctx, support.Filter{Type: "IT"})
	require.NoError(t, err)
	assert.Len(t, it, 2)

	itOpen, err := repo.List(ctx, support.Filter{Type: "IT", Status: "Open"})
	require.NoError(t, err)
	require.Len(t, itOpen, 1)
	assert.Equal(t, "laptop", itOpen[0]["subject"])
}

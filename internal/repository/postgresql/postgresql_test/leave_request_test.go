package postgresql_test

import (
	"context"
	"testing"

	"github.com/cmlabs-hris/hris-payroll-go/internal/domain/leave"
	"github.com/cmlabs-hris/hris-payroll-go/internal/repository/postgresql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeaveRequestRepository_CreateAndList(t *testing.T) {
	db := newTestDB(t)
	repo := postgresql.NewLeaveRequestRepository(db)
	ctx := context.Background()
	employeeID := insertEmployee(t, db, "Gita", "300")

	id, err := repo.Create(ctx, leave.LeaveRequest{
		EmployeeID: employeeID,
		Date:       "2024-06-01",
		Reason:     "family event",
		Status:     leave.StatusPending,
	})
	require.NoError(t, err)
	assert.Positive(t, id)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Gita", list[0].EmployeeName)
	assert.Equal(t, "2024-06-01", list[0].Date)
	assert.Equal(t, "family event", list[0].Reason)
	assert.Equal(t, leave.StatusPending, list[0].Status)
}

func TestLeaveRequestRepository_StoreRejectsBadInput(t *testing.T) {
	db := newTestDB(t)
	repo := postgresql.NewLeaveRequestRepository(db)
	ctx := context.Background()
	employeeID := insertEmployee(t, db, "Hadi", "300")

	_, err := repo.Create(ctx, leave.LeaveRequest{EmployeeID: employeeID, Date: "not-a-date", Status: leave.StatusPending})
	assert.Error(t, err)

	_, err = repo.Create(ctx, leave.LeaveRequest{EmployeeID: employeeID + 50, Date: "2024-06-01", Status: leave.StatusPending})
	assert.Error(t, err)
}

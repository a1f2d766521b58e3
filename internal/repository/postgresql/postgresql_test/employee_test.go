package postgresql_test

import (
	"context"
	"testing"

	"github.com/cmlabs-hris/hris-payroll-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-payroll-go/internal/pkg/money"
	"github.com/cmlabs-hris/hris-payroll-go/internal/repository/postgresql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmployeeRepository_CRUD(t *testing.T) {
	db := newTestDB(t)
	repo := postgresql.NewEmployeeRepository(db)
	ctx := context.Background()

	id, err := repo.Create(ctx, employee.Employee{
		Name:         "Ana",
		Email:        "ana@example.com",
		Role:         employee.RoleHR,
		SalaryPerDay: money.Parse("512.75"),
	})
	require.NoError(t, err)
	assert.Positive(t, id)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	updated, err := repo.Update(ctx, employee.Employee{
		ID:           id,
		Name:         "Ana Maria",
		Email:        "ana@example.com",
		Role:         employee.RoleAdmin,
		SalaryPerDay: money.Parse("600"),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), updated)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Ana Maria", list[0].Name)
	assert.Equal(t, employee.RoleAdmin, list[0].Role)
	assert.Equal(t, "600", list[0].SalaryPerDay.String())

	missing, err := repo.Update(ctx, employee.Employee{ID: id + 100, Role: employee.RoleHR})
	require.NoError(t, err)
	assert.Zero(t, missing)

	deleted, err := repo.Delete(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	deleted, err = repo.Delete(ctx, id)
	require.NoError(t, err)
	assert.Zero(t, deleted)
}

func TestEmployeeRepository_ListDefaultsNullSalary(t *testing.T) {
	db := newTestDB(t)
	repo := postgresql.NewEmployeeRepository(db)
	ctx := context.Background()

	_, err := db.Exec(ctx, `INSERT INTO employees (name, email, role, salary_per_day) VALUES ('Budi', 'budi@example.com', 'EMPLOYEE', NULL)`)
	require.NoError(t, err)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.True(t, list[0].SalaryPerDay.IsZero())
}

func TestEmployeeRepository_GetByEmail(t *testing.T) {
	db := newTestDB(t)
	repo := postgresql.NewEmployeeRepository(db)
	ctx := context.Background()

	_, err := db.Exec(ctx, `INSERT INTO employees (name, email, password, role) VALUES ('Citra', 'citra@example.com', 'secret', 'ADMIN')`)
	require.NoError(t, err)

	emp, err := repo.GetByEmail(ctx, "citra@example.com")
	require.NoError(t, err)
	require.NotNil(t, emp.Password)
	assert.Equal(t, "secret", *emp.Password)

	_, err = repo.GetByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestEmployeeRepository_RejectsInvalidRoleAtStore(t *testing.T) {
	db := newTestDB(t)
	repo := postgresql.NewEmployeeRepository(db)

	_, err := repo.Create(context.Background(), employee.Employee{Name: "X", Role: employee.Role("CEO")})
	assert.Error(t, err)
}

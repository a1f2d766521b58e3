package postgresql_test

import (
	"context"
	"testing"

	"github.com/cmlabs-hris/hris-payroll-go/internal/domain/payroll"
	"github.com/cmlabs-hris/hris-payroll-go/internal/pkg/money"
	"github.com/cmlabs-hris/hris-payroll-go/internal/repository/postgresql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPayrollRepository_CreateBatchAndFilter(t *testing.T) {
	db := newTestDB(t)
	repo := postgresql.NewPayrollRepository(db)
	ctx := context.Background()

	first := insertEmployee(t, db, "Indah", "500")
	second := insertEmployee(t, db, "Joko", "")

	salary := money.Parse("500")
	pending := payroll.StatusPending
	inserted, err := repo.CreateBatch(ctx, []payroll.Payroll{
		{EmployeeID: first, Month: "2024-05", BasicSalary: &salary, TaxWithheld: &money.Zero, NetPay: &salary, Status: &pending},
		{EmployeeID: second, Month: "2024-05", Status: &pending},
		{EmployeeID: first, Month: "2024-06", BasicSalary: &salary, NetPay: &salary, Status: &pending},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3), inserted)

	may, err := repo.List(ctx, payroll.PayrollFilter{Month: "2024-05"})
	require.NoError(t, err)
	require.Len(t, may, 2)
	for _, rec := range may {
		assert.Equal(t, "2024-05", rec.Month)
	}
	assert.Equal(t, "500", may[0].NetPay.String())
	assert.True(t, may[1].NetPay.IsZero())

	all, err := repo.List(ctx, payroll.PayrollFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestPayrollRepository_ListFallsBackToEmployeeSalary(t *testing.T) {
	db := newTestDB(t)
	repo := postgresql.NewPayrollRepository(db)
	ctx := context.Background()
	employeeID := insertEmployee(t, db, "Kartika", "420.50")

	_, err := db.Exec(ctx, `INSERT INTO payroll (employee_id, month) VALUES ($1, '2024-07')`, employeeID)
	require.NoError(t, err)

	list, err := repo.List(ctx, payroll.PayrollFilter{Month: "2024-07"})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "420.5", list[0].BasicSalary.String())
	assert.Equal(t, "420.5", list[0].NetPay.String())
	assert.True(t, list[0].TaxWithheld.IsZero())
	assert.Equal(t, payroll.StatusPending, list[0].Status)
}

func TestPayrollRepository_CreateBatchEmpty(t *testing.T) {
	db := newTestDB(t)
	repo := postgresql.NewPayrollRepository(db)

	inserted, err := repo.CreateBatch(context.Background(), nil)
	require.NoError(t, err)
	assert.Zero(t, inserted)
}

func TestPayrollRepository_CreateBatchKeepsNilAmountsNull(t *testing.T) {
	db := newTestDB(t)
	repo := postgresql.NewPayrollRepository(db)
	ctx := context.Background()
	employeeID := insertEmployee(t, db, "Lestari", "310")

	_, err := repo.CreateBatch(ctx, []payroll.Payroll{{EmployeeID: employeeID, Month: "2024-08"}})
	require.NoError(t, err)

	var basicNull, taxNull, netNull, statusNull bool
	err = db.QueryRow(ctx, `
		SELECT basic_salary IS NULL, tax_withheld IS NULL, net_pay IS NULL, status IS NULL
		FROM payroll WHERE employee_id = $1
	`, employeeID).Scan(&basicNull, &taxNull, &netNull, &statusNull)
	require.NoError(t, err)
	assert.True(t, basicNull)
	assert.True(t, taxNull)
	assert.True(t, netNull)
	assert.True(t, statusNull)

	list, err := repo.List(ctx, payroll.PayrollFilter{Month: "2024-08"})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "310", list[0].BasicSalary.String())
	assert.Equal(t, "310", list[0].NetPay.String())
}

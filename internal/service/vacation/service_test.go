package vacation

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/retailops/turnos-backend/internal/config"
	"github.com/retailops/turnos-backend/internal/domain/employee"
	"github.com/retailops/turnos-backend/internal/domain/schedule"
	"github.com/retailops/turnos-backend/internal/domain/vacation"
	"github.com/retailops/turnos-backend/internal/pkg/database"
	"github.com/retailops/turnos-backend/internal/repository/postgresql"
)

type vacationTestEnv struct {
	svc          vacation.VacationService
	employeeRepo employee.EmployeeRepository
	scheduleRepo schedule.ScheduleRepository
	totalRepo    schedule.MonthlyTotalRepository
}

func newVacationTestEnv(t *testing.T) *vacationTestEnv {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	db, err := database.NewPostgreSQLDB(dsn)
	require.NoError(t, err)
	t.Cleanup(db.Close)

	ctx := context.Background()
	tables := []string{"monthly_totals", "schedule_entries", "vacation_bookings", "employees"}
	for _, table := range tables {
		_, err := db.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table))
		require.NoError(t, err)
	}

	env := &vacationTestEnv{
		employeeRepo: postgresql.NewEmployeeRepository(db),
		scheduleRepo: postgresql.NewScheduleRepository(db),
		totalRepo:    postgresql.NewMonthlyTotalRepository(db),
	}
	env.svc = NewVacationService(
		db,
		postgresql.NewVacationRepository(db),
		env.employeeRepo,
		env.scheduleRepo,
		env.totalRepo,
		config.PayrollConfig{
			HolidayMultiplier:   decimal.NewFromInt(2),
			VacationWeekDivisor: 5,
			ConsumptionDiscount: decimal.NewFromFloat(0.8),
			ScheduleYearFrom:    2024,
			ScheduleYearTo:      2027,
		},
	)
	return env
}

func (e *vacationTestEnv) createEmployee(t *testing.T) employee.Employee {
	t.Helper()
	emp, err := e.employeeRepo.Create(context.Background(), employee.Employee{
		FirstName:                "Bruno",
		LastName:                 "Díaz",
		Email:                    "bruno.diaz@example.com",
		HireDate:                 time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		HourlyRate:               decimal.NewFromInt(1000),
		VacationDaysRemaining:    10,
		VacationHoursEntitlement: 40,
	})
	require.NoError(t, err)
	return emp
}

func TestBook_PaidDecrementsBalanceAndSyncsTotals(t *testing.T) {
	env := newVacationTestEnv(t)
	ctx := context.Background()
	emp := env.createEmployee(t)

	resp, err := env.svc.Book(ctx, vacation.BookVacationRequest{
		EmployeeID: emp.ID,
		Days:       3,
		StartDate:  "02/06/2025",
		EndDate:    "04/06/2025",
		Type:       string(vacation.TypePaid),
	})
	require.NoError(t, err)

	// 40 entitlement hours over a 5-day week
	assert.Equal(t, "8", resp.PerDayHours.String())
	assert.Equal(t, "8000", resp.PerDayPay.String())
	assert.Equal(t, 7, resp.DaysRemaining)

	reloaded, err := env.employeeRepo.GetByID(ctx, emp.ID)
	require.NoError(t, err)
	assert.Equal(t, 7, reloaded.VacationDaysRemaining)

	from := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC)
	entries, err := env.scheduleRepo.ListByEmployeeRange(ctx, emp.ID, from, to)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	for _, entry := range entries {
		assert.Equal(t, schedule.VacationCode, entry.ShiftCode)
		assert.Equal(t, "8", entry.Hours.String())
		assert.Equal(t, "8000", entry.Pay.String())
	}

	total, err := env.totalRepo.Get(ctx, emp.ID, 2025, 6)
	require.NoError(t, err)
	assert.Equal(t, "24", total.Hours.String())
	assert.Equal(t, "24000", total.Pay.String())

	sumHours, sumPay, err := env.scheduleRepo.SumMonth(ctx, emp.ID, 2025, 6)
	require.NoError(t, err)
	assert.True(t, total.Hours.Equal(sumHours))
	assert.True(t, total.Pay.Equal(sumPay))
}

func TestBook_RangeAcrossMonthsSyncsBothTotals(t *testing.T) {
	env := newVacationTestEnv(t)
	ctx := context.Background()
	emp := env.createEmployee(t)

	_, err := env.svc.Book(ctx, vacation.BookVacationRequest{
		EmployeeID: emp.ID,
		Days:       2,
		StartDate:  "30/06/2025",
		EndDate:    "01/07/2025",
		Type:       string(vacation.TypePaid),
	})
	require.NoError(t, err)

	for _, month := range []int{6, 7} {
		total, err := env.totalRepo.Get(ctx, emp.ID, 2025, month)
		require.NoError(t, err)
		assert.Equal(t, "8000", total.Pay.String())

		sumHours, sumPay, err := env.scheduleRepo.SumMonth(ctx, emp.ID, 2025, month)
		require.NoError(t, err)
		assert.True(t, total.Hours.Equal(sumHours))
		assert.True(t, total.Pay.Equal(sumPay))
	}
}

func TestBook_UnpaidKeepsBalance(t *testing.T) {
	env := newVacationTestEnv(t)
	ctx := context.Background()
	emp := env.createEmployee(t)

	resp, err := env.svc.Book(ctx, vacation.BookVacationRequest{
		EmployeeID: emp.ID,
		Days:       2,
		StartDate:  "02/06/2025",
		EndDate:    "03/06/2025",
		Type:       string(vacation.TypeUnpaid),
	})
	require.NoError(t, err)
	assert.True(t, resp.PerDayPay.IsZero())
	assert.Equal(t, 10, resp.DaysRemaining)

	reloaded, err := env.employeeRepo.GetByID(ctx, emp.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, reloaded.VacationDaysRemaining)

	total, err := env.totalRepo.Get(ctx, emp.ID, 2025, 6)
	require.NoError(t, err)
	assert.True(t, total.Pay.IsZero())
}

func TestBook_InsufficientBalanceWritesNothing(t *testing.T) {
	env := newVacationTestEnv(t)
	ctx := context.Background()
	emp := env.createEmployee(t)

	_, err := env.svc.Book(ctx, vacation.BookVacationRequest{
		EmployeeID: emp.ID,
		Days:       30,
		StartDate:  "01/06/2025",
		EndDate:    "30/06/2025",
		Type:       string(vacation.TypePaid),
	})
	var balanceErr *vacation.InsufficientBalanceError
	require.ErrorAs(t, err, &balanceErr)
	assert.Equal(t, 30, balanceErr.Requested)
	assert.Equal(t, 10, balanceErr.Remaining)

	from := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)
	entries, err := env.scheduleRepo.ListByEmployeeRange(ctx, emp.ID, from, to)
	require.NoError(t, err)
	assert.Empty(t, entries)

	reloaded, err := env.employeeRepo.GetByID(ctx, emp.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, reloaded.VacationDaysRemaining)
}

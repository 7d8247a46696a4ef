package schedule

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
	"github.com/retailops/turnos-backend/internal/domain/holiday"
	"github.com/retailops/turnos-backend/internal/domain/schedule"
	"github.com/retailops/turnos-backend/internal/domain/shift"
	"github.com/retailops/turnos-backend/internal/pkg/database"
	"github.com/retailops/turnos-backend/internal/repository/postgresql"
)

type scheduleTestEnv struct {
	svc          *ScheduleServiceImpl
	employeeRepo employee.EmployeeRepository
	scheduleRepo schedule.ScheduleRepository
	totalRepo    schedule.MonthlyTotalRepository
	shiftRepo    shift.ShiftRepository
	holidayRepo  holiday.HolidayRepository
}

func testPayroll() config.PayrollConfig {
	return config.PayrollConfig{
		HolidayMultiplier:   decimal.NewFromInt(2),
		VacationWeekDivisor: 5,
		ConsumptionDiscount: decimal.NewFromFloat(0.8),
		ScheduleYearFrom:    2024,
		ScheduleYearTo:      2027,
	}
}

func newScheduleTestEnv(t *testing.T) *scheduleTestEnv {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	db, err := database.NewPostgreSQLDB(dsn)
	require.NoError(t, err)
	t.Cleanup(db.Close)

	ctx := context.Background()
	tables := []string{"monthly_totals", "schedule_entries", "holidays", "shift_definitions", "employees"}
	for _, table := range tables {
		_, err := db.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table))
		require.NoError(t, err)
	}

	env := &scheduleTestEnv{
		employeeRepo: postgresql.NewEmployeeRepository(db),
		scheduleRepo: postgresql.NewScheduleRepository(db),
		totalRepo:    postgresql.NewMonthlyTotalRepository(db),
		shiftRepo:    postgresql.NewShiftRepository(db),
		holidayRepo:  postgresql.NewHolidayRepository(db),
	}
	env.svc = NewScheduleService(
		db, env.scheduleRepo, env.totalRepo, env.shiftRepo, env.holidayRepo,
		env.employeeRepo, testPayroll(),
	)
	return env
}

func (e *scheduleTestEnv) createEmployee(t *testing.T, rate int64) employee.Employee {
	t.Helper()
	emp, err := e.employeeRepo.Create(context.Background(), employee.Employee{
		FirstName:                "Ana",
		LastName:                 "García",
		Email:                    "ana.garcia@example.com",
		HireDate:                 time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		HourlyRate:               decimal.NewFromInt(rate),
		VacationDaysRemaining:    10,
		VacationHoursEntitlement: 40,
	})
	require.NoError(t, err)
	return emp
}

func (e *scheduleTestEnv) createMorningShift(t *testing.T) {
	t.Helper()
	_, err := e.shiftRepo.Create(context.Background(), shift.Definition{
		Name:          "M",
		StartHour:     8,
		EndHour:       16,
		DurationHours: 8,
	})
	require.NoError(t, err)
}

// The cached monthly total must equal the sum of the month's schedule
// rows after every assignment.
func TestAssignShift_SyncsMonthlyTotal(t *testing.T) {
	env := newScheduleTestEnv(t)
	ctx := context.Background()
	emp := env.createEmployee(t, 1000)
	env.createMorningShift(t)

	for _, date := range []string{"02/06/2025", "03/06/2025"} {
		_, err := env.svc.AssignShift(ctx, schedule.AssignShiftRequest{
			EmployeeID: emp.ID,
			Date:       date,
			ShiftName:  "M",
		})
		require.NoError(t, err)
	}

	total, err := env.totalRepo.Get(ctx, emp.ID, 2025, 6)
	require.NoError(t, err)
	assert.Equal(t, "16", total.Hours.String())
	assert.Equal(t, "16000", total.Pay.String())

	sumHours, sumPay, err := env.scheduleRepo.SumMonth(ctx, emp.ID, 2025, 6)
	require.NoError(t, err)
	assert.True(t, total.Hours.Equal(sumHours))
	assert.True(t, total.Pay.Equal(sumPay))
}

func TestAssignShift_HolidayDoublesPay(t *testing.T) {
	env := newScheduleTestEnv(t)
	ctx := context.Background()
	emp := env.createEmployee(t, 1000)
	env.createMorningShift(t)

	_, err := env.holidayRepo.Create(ctx, holiday.Entry{
		Date:  time.Date(2025, 12, 25, 0, 0, 0, 0, time.UTC),
		Label: "Navidad",
	})
	require.NoError(t, err)

	resp, err := env.svc.AssignShift(ctx, schedule.AssignShiftRequest{
		EmployeeID: emp.ID,
		Date:       "25/12/2025",
		ShiftName:  "M",
	})
	require.NoError(t, err)
	assert.Equal(t, "16000", resp.Pay.String())

	total, err := env.totalRepo.Get(ctx, emp.ID, 2025, 12)
	require.NoError(t, err)
	assert.Equal(t, "16000", total.Pay.String())
}

func TestPropagateRate_RewritesWindowAndTotals(t *testing.T) {
	env := newScheduleTestEnv(t)
	ctx := context.Background()
	emp := env.createEmployee(t, 1000)
	env.createMorningShift(t)

	for _, date := range []string{"10/06/2025", "15/07/2025"} {
		_, err := env.svc.AssignShift(ctx, schedule.AssignShiftRequest{
			EmployeeID: emp.ID,
			Date:       date,
			ShiftName:  "M",
		})
		require.NoError(t, err)
	}

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	err := env.svc.PropagateRate(ctx, emp.ID, decimal.NewFromInt(1500), schedule.PolicyFromToday, now)
	require.NoError(t, err)

	from := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)
	entries, err := env.scheduleRepo.ListByEmployeeRange(ctx, emp.ID, from, to)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	for _, entry := range entries {
		assert.Equal(t, "12000", entry.Pay.String())
	}

	for _, month := range []int{6, 7} {
		total, err := env.totalRepo.Get(ctx, emp.ID, 2025, month)
		require.NoError(t, err)
		assert.Equal(t, "12000", total.Pay.String())

		sumHours, sumPay, err := env.scheduleRepo.SumMonth(ctx, emp.ID, 2025, month)
		require.NoError(t, err)
		assert.True(t, total.Hours.Equal(sumHours))
		assert.True(t, total.Pay.Equal(sumPay))
	}
}

func TestPropagateRate_RetroactiveMonthLeavesOtherMonthsAlone(t *testing.T) {
	env := newScheduleTestEnv(t)
	ctx := context.Background()
	emp := env.createEmployee(t, 1000)
	env.createMorningShift(t)

	for _, date := range []string{"10/06/2025", "15/07/2025"} {
		_, err := env.svc.AssignShift(ctx, schedule.AssignShiftRequest{
			EmployeeID: emp.ID,
			Date:       date,
			ShiftName:  "M",
		})
		require.NoError(t, err)
	}

	now := time.Date(2025, 6, 20, 12, 0, 0, 0, time.UTC)
	err := env.svc.PropagateRate(ctx, emp.ID, decimal.NewFromInt(2000), schedule.PolicyRetroactiveMonth, now)
	require.NoError(t, err)

	june, err := env.totalRepo.Get(ctx, emp.ID, 2025, 6)
	require.NoError(t, err)
	assert.Equal(t, "16000", june.Pay.String())

	july, err := env.totalRepo.Get(ctx, emp.ID, 2025, 7)
	require.NoError(t, err)
	assert.Equal(t, "8000", july.Pay.String())
}

package timeclock

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
	"github.com/retailops/turnos-backend/internal/domain/timeclock"
	"github.com/retailops/turnos-backend/internal/pkg/database"
	"github.com/retailops/turnos-backend/internal/repository/postgresql"
)

type timeclockTestEnv struct {
	svc           timeclock.TimeclockService
	employeeRepo  employee.EmployeeRepository
	timesheetRepo timeclock.TimesheetRepository
}

func newTimeclockTestEnv(t *testing.T) *timeclockTestEnv {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	db, err := database.NewPostgreSQLDB(dsn)
	require.NoError(t, err)
	t.Cleanup(db.Close)

	ctx := context.Background()
	tables := []string{"timesheet_entries", "clock_events", "holidays", "employees"}
	for _, table := range tables {
		_, err := db.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table))
		require.NoError(t, err)
	}

	env := &timeclockTestEnv{
		employeeRepo:  postgresql.NewEmployeeRepository(db),
		timesheetRepo: postgresql.NewTimesheetRepository(db),
	}
	env.svc = NewTimeclockService(
		db,
		postgresql.NewClockEventRepository(db),
		env.timesheetRepo,
		env.employeeRepo,
		postgresql.NewHolidayRepository(db),
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

func (e *timeclockTestEnv) createEmployee(t *testing.T) employee.Employee {
	t.Helper()
	emp, err := e.employeeRepo.Create(context.Background(), employee.Employee{
		FirstName:                "Carla",
		LastName:                 "Moreno",
		Email:                    "carla.moreno@example.com",
		HireDate:                 time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		HourlyRate:               decimal.NewFromInt(1000),
		VacationDaysRemaining:    10,
		VacationHoursEntitlement: 40,
	})
	require.NoError(t, err)
	return emp
}

func (e *timeclockTestEnv) punch(t *testing.T, employeeID, action, date, clock string) timeclock.EventResponse {
	t.Helper()
	resp, err := e.svc.Punch(context.Background(), timeclock.PunchRequest{
		EmployeeID: employeeID,
		Action:     action,
		Date:       date,
		Time:       clock,
	})
	require.NoError(t, err)
	return resp
}

func TestPunch_CompletedPairWritesTimesheet(t *testing.T) {
	env := newTimeclockTestEnv(t)
	ctx := context.Background()
	emp := env.createEmployee(t)

	env.punch(t, emp.ID, "INGRESO", "02/06/2025", "08:00:00")
	env.punch(t, emp.ID, "EGRESO", "02/06/2025", "16:00:00")

	entries, err := env.timesheetRepo.List(ctx, 2025, 6, &emp.ID)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, 480, entries[0].WorkedMinutes)
	assert.Equal(t, "8000", entries[0].Pay.String())
	assert.Equal(t, "08:00:00", entries[0].ClockIn)
	assert.Equal(t, "16:00:00", entries[0].ClockOut)
}

func TestPunch_RejectsDoubleIngreso(t *testing.T) {
	env := newTimeclockTestEnv(t)
	emp := env.createEmployee(t)

	env.punch(t, emp.ID, "INGRESO", "02/06/2025", "08:00:00")

	_, err := env.svc.Punch(context.Background(), timeclock.PunchRequest{
		EmployeeID: emp.ID,
		Action:     "INGRESO",
		Date:       "02/06/2025",
		Time:       "09:00:00",
	})
	assert.ErrorIs(t, err, timeclock.ErrAlreadyClockedIn)
}

func TestEditEvent_RecomputesPair(t *testing.T) {
	env := newTimeclockTestEnv(t)
	ctx := context.Background()
	emp := env.createEmployee(t)

	env.punch(t, emp.ID, "INGRESO", "02/06/2025", "08:00:00")
	out := env.punch(t, emp.ID, "EGRESO", "02/06/2025", "16:00:00")

	_, err := env.svc.EditEvent(ctx, timeclock.EditEventRequest{
		ID:   out.ID,
		Time: "17:00:00",
	})
	require.NoError(t, err)

	entries, err := env.timesheetRepo.List(ctx, 2025, 6, &emp.ID)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, 540, entries[0].WorkedMinutes)
	assert.Equal(t, "9000", entries[0].Pay.String())
}

// Editing an INGRESO that has no closing EGRESO leaves the day without a
// completed pair, so its timesheet row is removed until the next EGRESO
// rewrites it.
func TestEditEvent_OpenIngresoDropsStaleRow(t *testing.T) {
	env := newTimeclockTestEnv(t)
	ctx := context.Background()
	emp := env.createEmployee(t)

	env.punch(t, emp.ID, "INGRESO", "02/06/2025", "08:00:00")
	env.punch(t, emp.ID, "EGRESO", "02/06/2025", "16:00:00")
	reopened := env.punch(t, emp.ID, "INGRESO", "02/06/2025", "17:00:00")

	entries, err := env.timesheetRepo.List(ctx, 2025, 6, &emp.ID)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	_, err = env.svc.EditEvent(ctx, timeclock.EditEventRequest{
		ID:   reopened.ID,
		Time: "18:00:00",
	})
	require.NoError(t, err)

	entries, err = env.timesheetRepo.List(ctx, 2025, 6, &emp.ID)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

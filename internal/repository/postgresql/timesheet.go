package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/retailops/turnos-backend/internal/domain/timeclock"
	"github.com/retailops/turnos-backend/internal/pkg/database"
)

type timesheetRepository struct {
	db *database.DB
}

func NewTimesheetRepository(db *database.DB) timeclock.TimesheetRepository {
	return &timesheetRepository{db: db}
}

// Upsert implements timeclock.TimesheetRepository. One row per
// employee-day; a re-completed clock pair overwrites the previous values.
func (r *timesheetRepository) Upsert(ctx context.Context, entry timeclock.TimesheetEntry) (timeclock.TimesheetEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO timesheet_entries (
			employee_id, employee_name, date, clock_in, clock_out, worked_minutes, pay
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (employee_id, date)
		DO UPDATE SET clock_in = EXCLUDED.clock_in,
					  clock_out = EXCLUDED.clock_out,
					  worked_minutes = EXCLUDED.worked_minutes,
					  pay = EXCLUDED.pay,
					  employee_name = EXCLUDED.employee_name
		RETURNING id
	`

	err := q.QueryRow(ctx, query,
		entry.EmployeeID, entry.EmployeeName, entry.Date,
		entry.ClockIn, entry.ClockOut, entry.WorkedMinutes, entry.Pay,
	).Scan(&entry.ID)
	if err != nil {
		return timeclock.TimesheetEntry{}, fmt.Errorf("failed to upsert timesheet entry: %w", err)
	}

	return entry, nil
}

// List implements timeclock.TimesheetRepository.
func (r *timesheetRepository) List(ctx context.Context, year, month int, employeeID *string) ([]timeclock.TimesheetEntry, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "EXTRACT(YEAR FROM date) = $1 AND EXTRACT(MONTH FROM date) = $2"
	args := []interface{}{year, month}
	if employeeID != nil && *employeeID != "" {
		baseWhere += " AND employee_id = $3"
		args = append(args, *employeeID)
	}

	query := `
		SELECT id, employee_id, employee_name, date, clock_in, clock_out, worked_minutes, pay
		FROM timesheet_entries
		WHERE ` + baseWhere + `
		ORDER BY employee_name, date
	`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list timesheet entries: %w", err)
	}
	defer rows.Close()

	var entries []timeclock.TimesheetEntry
	for rows.Next() {
		var entry timeclock.TimesheetEntry
		err := rows.Scan(
			&entry.ID, &entry.EmployeeID, &entry.EmployeeName, &entry.Date,
			&entry.ClockIn, &entry.ClockOut, &entry.WorkedMinutes, &entry.Pay,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan timesheet entry: %w", err)
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

// SumMonth implements timeclock.TimesheetRepository.
func (r *timesheetRepository) SumMonth(ctx context.Context, employeeID string, year, month int) (int, decimal.Decimal, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COALESCE(SUM(worked_minutes), 0), COALESCE(SUM(pay), 0)
		FROM timesheet_entries
		WHERE employee_id = $1
		  AND EXTRACT(YEAR FROM date) = $2
		  AND EXTRACT(MONTH FROM date) = $3
	`

	var minutes int
	var pay decimal.Decimal
	if err := q.QueryRow(ctx, query, employeeID, year, month).Scan(&minutes, &pay); err != nil {
		return 0, decimal.Zero, fmt.Errorf("failed to sum timesheet month: %w", err)
	}

	return minutes, pay, nil
}

// DeleteByEmployeeAndDate implements timeclock.TimesheetRepository.
func (r *timesheetRepository) DeleteByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx,
		`DELETE FROM timesheet_entries WHERE employee_id = $1 AND date = $2`,
		employeeID, date,
	)
	if err != nil {
		return fmt.Errorf("failed to delete timesheet entry: %w", err)
	}

	return nil
}

package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/retailops/turnos-backend/internal/domain/schedule"
	"github.com/retailops/turnos-backend/internal/pkg/database"
)

type scheduleRepository struct {
	db *database.DB
}

func NewScheduleRepository(db *database.DB) schedule.ScheduleRepository {
	return &scheduleRepository{db: db}
}

// BulkInsertDays implements schedule.ScheduleRepository. Rows are batched
// so seeding a multi-year grid is a single round-trip per batch.
func (r *scheduleRepository) BulkInsertDays(ctx context.Context, employeeID, employeeName string, days []time.Time) error {
	batch := &pgx.Batch{}
	query := `
		INSERT INTO schedule_entries (id, employee_id, employee_name, date, shift_code, hours, pay)
		VALUES ($1, $2, $3, $4, '', 0, 0)
		ON CONFLICT (employee_id, date) DO NOTHING
	`
	for _, day := range days {
		batch.Queue(query, uuid.New().String(), employeeID, employeeName, day)
	}

	var br pgx.BatchResults
	if tx, ok := ctx.Value("tx").(pgx.Tx); ok {
		br = tx.SendBatch(ctx, batch)
	} else {
		br = r.db.Pool.SendBatch(ctx, batch)
	}
	defer br.Close()

	for range days {
		if _, err := br.Exec(); err != nil {
			return fmt.Errorf("failed to seed schedule day: %w", err)
		}
	}

	return nil
}

// ListGrid implements schedule.ScheduleRepository.
func (r *scheduleRepository) ListGrid(ctx context.Context, filter schedule.GridFilter) ([]schedule.Entry, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "EXTRACT(YEAR FROM date) = $1 AND EXTRACT(MONTH FROM date) = $2"
	args := []interface{}{filter.Year, filter.Month}

	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		baseWhere += " AND employee_id = $3"
		args = append(args, *filter.EmployeeID)
	}

	query := `
		SELECT id, employee_id, employee_name, date, shift_code, hours, pay
		FROM schedule_entries
		WHERE ` + baseWhere + `
		ORDER BY employee_name, date
	`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query schedule grid: %w", err)
	}
	defer rows.Close()

	return scanScheduleEntries(rows)
}

// ListByEmployeeRange implements schedule.ScheduleRepository.
func (r *scheduleRepository) ListByEmployeeRange(ctx context.Context, employeeID string, from, to time.Time) ([]schedule.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, employee_name, date, shift_code, hours, pay
		FROM schedule_entries
		WHERE employee_id = $1 AND date >= $2 AND date <= $3
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, employeeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query schedule range: %w", err)
	}
	defer rows.Close()

	return scanScheduleEntries(rows)
}

// UpsertEntry implements schedule.ScheduleRepository.
func (r *scheduleRepository) UpsertEntry(ctx context.Context, entry schedule.Entry) (schedule.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO schedule_entries (employee_id, employee_name, date, shift_code, hours, pay)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (employee_id, date)
		DO UPDATE SET shift_code = EXCLUDED.shift_code,
					  hours = EXCLUDED.hours,
					  pay = EXCLUDED.pay,
					  employee_name = EXCLUDED.employee_name
		RETURNING id
	`

	err := q.QueryRow(ctx, query,
		entry.EmployeeID, entry.EmployeeName, entry.Date,
		entry.ShiftCode, entry.Hours, entry.Pay,
	).Scan(&entry.ID)
	if err != nil {
		return schedule.Entry{}, fmt.Errorf("failed to upsert schedule entry: %w", err)
	}

	return entry, nil
}

// UpdateEntryPay implements schedule.ScheduleRepository.
func (r *scheduleRepository) UpdateEntryPay(ctx context.Context, id string, pay decimal.Decimal) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx,
		`UPDATE schedule_entries SET pay = $1 WHERE id = $2`,
		pay, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update entry pay: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return schedule.ErrEntryNotFound
	}

	return nil
}

// SumMonth implements schedule.ScheduleRepository.
func (r *scheduleRepository) SumMonth(ctx context.Context, employeeID string, year, month int) (decimal.Decimal, decimal.Decimal, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COALESCE(SUM(hours), 0), COALESCE(SUM(pay), 0)
		FROM schedule_entries
		WHERE employee_id = $1
		  AND EXTRACT(YEAR FROM date) = $2
		  AND EXTRACT(MONTH FROM date) = $3
	`

	var hours, pay decimal.Decimal
	err := q.QueryRow(ctx, query, employeeID, year, month).Scan(&hours, &pay)
	if err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("failed to sum schedule month: %w", err)
	}

	return hours, pay, nil
}

func scanScheduleEntries(rows pgx.Rows) ([]schedule.Entry, error) {
	var entries []schedule.Entry
	for rows.Next() {
		var entry schedule.Entry
		err := rows.Scan(
			&entry.ID, &entry.EmployeeID, &entry.EmployeeName, &entry.Date,
			&entry.ShiftCode, &entry.Hours, &entry.Pay,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan schedule entry: %w", err)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

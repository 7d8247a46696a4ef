package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/retailops/turnos-backend/internal/domain/schedule"
	"github.com/retailops/turnos-backend/internal/pkg/database"
)

type monthlyTotalRepository struct {
	db *database.DB
}

func NewMonthlyTotalRepository(db *database.DB) schedule.MonthlyTotalRepository {
	return &monthlyTotalRepository{db: db}
}

// Upsert implements schedule.MonthlyTotalRepository.
func (r *monthlyTotalRepository) Upsert(ctx context.Context, total schedule.MonthlyTotal) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO monthly_totals (employee_id, employee_name, year, month, hours, pay)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (employee_id, year, month)
		DO UPDATE SET hours = EXCLUDED.hours,
					  pay = EXCLUDED.pay,
					  employee_name = EXCLUDED.employee_name
	`

	_, err := q.Exec(ctx, query,
		total.EmployeeID, total.EmployeeName, total.Year, total.Month,
		total.Hours, total.Pay,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert monthly total: %w", err)
	}

	return nil
}

// List implements schedule.MonthlyTotalRepository.
func (r *monthlyTotalRepository) List(ctx context.Context, year int, employeeID *string) ([]schedule.MonthlyTotal, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "year = $1"
	args := []interface{}{year}
	if employeeID != nil && *employeeID != "" {
		baseWhere += " AND employee_id = $2"
		args = append(args, *employeeID)
	}

	query := `
		SELECT id, employee_id, employee_name, year, month, hours, pay
		FROM monthly_totals
		WHERE ` + baseWhere + `
		ORDER BY employee_name, month
	`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list monthly totals: %w", err)
	}
	defer rows.Close()

	var totals []schedule.MonthlyTotal
	for rows.Next() {
		var total schedule.MonthlyTotal
		err := rows.Scan(
			&total.ID, &total.EmployeeID, &total.EmployeeName,
			&total.Year, &total.Month, &total.Hours, &total.Pay,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan monthly total: %w", err)
		}
		totals = append(totals, total)
	}

	return totals, nil
}

// Get implements schedule.MonthlyTotalRepository.
func (r *monthlyTotalRepository) Get(ctx context.Context, employeeID string, year, month int) (schedule.MonthlyTotal, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, employee_name, year, month, hours, pay
		FROM monthly_totals
		WHERE employee_id = $1 AND year = $2 AND month = $3
	`

	var total schedule.MonthlyTotal
	err := q.QueryRow(ctx, query, employeeID, year, month).Scan(
		&total.ID, &total.EmployeeID, &total.EmployeeName,
		&total.Year, &total.Month, &total.Hours, &total.Pay,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return schedule.MonthlyTotal{}, schedule.ErrEntryNotFound
		}
		return schedule.MonthlyTotal{}, fmt.Errorf("failed to get monthly total: %w", err)
	}

	return total, nil
}

package postgresql

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/retailops/turnos-backend/internal/domain/extras"
	"github.com/retailops/turnos-backend/internal/pkg/database"
)

type extrasRepository struct {
	db *database.DB
}

func NewExtrasRepository(db *database.DB) extras.ExtrasRepository {
	return &extrasRepository{db: db}
}

// Create implements extras.ExtrasRepository.
func (r *extrasRepository) Create(ctx context.Context, payment extras.Payment) (extras.Payment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO extra_payments (
			employee_id, employee_name, year, month, category, amount, detail, kind
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query,
		payment.EmployeeID, payment.EmployeeName, payment.Year, payment.Month,
		payment.Category, payment.Amount, payment.Detail, payment.Kind,
	).Scan(&payment.ID, &payment.CreatedAt)
	if err != nil {
		return extras.Payment{}, fmt.Errorf("failed to create extra payment: %w", err)
	}

	return payment, nil
}

// List implements extras.ExtrasRepository.
func (r *extrasRepository) List(ctx context.Context, filter extras.ExtraFilter) ([]extras.Payment, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "year = $1"
	args := []interface{}{filter.Year}
	argIdx := 2

	if filter.Month != nil {
		baseWhere += fmt.Sprintf(" AND month = $%d", argIdx)
		args = append(args, *filter.Month)
		argIdx++
	}
	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		baseWhere += fmt.Sprintf(" AND employee_id = $%d", argIdx)
		args = append(args, *filter.EmployeeID)
		argIdx++
	}

	query := `
		SELECT id, employee_id, employee_name, year, month, category, amount, detail, kind, created_at
		FROM extra_payments
		WHERE ` + baseWhere + `
		ORDER BY month, employee_name, created_at
	`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list extra payments: %w", err)
	}
	defer rows.Close()

	var payments []extras.Payment
	for rows.Next() {
		var payment extras.Payment
		err := rows.Scan(
			&payment.ID, &payment.EmployeeID, &payment.EmployeeName,
			&payment.Year, &payment.Month, &payment.Category,
			&payment.Amount, &payment.Detail, &payment.Kind, &payment.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan extra payment: %w", err)
		}
		payments = append(payments, payment)
	}

	return payments, nil
}

// Delete implements extras.ExtrasRepository.
func (r *extrasRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM extra_payments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete extra payment: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return extras.ErrPaymentNotFound
	}

	return nil
}

// SumByKind implements extras.ExtrasRepository.
func (r *extrasRepository) SumByKind(ctx context.Context, employeeID string, year, month int) (decimal.Decimal, decimal.Decimal, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			COALESCE(SUM(amount) FILTER (WHERE kind = 1), 0),
			COALESCE(SUM(amount) FILTER (WHERE kind = 2), 0)
		FROM extra_payments
		WHERE employee_id = $1 AND year = $2 AND month = $3
	`

	var bonuses, deductions decimal.Decimal
	if err := q.QueryRow(ctx, query, employeeID, year, month).Scan(&bonuses, &deductions); err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("failed to sum extra payments: %w", err)
	}

	return bonuses, deductions, nil
}

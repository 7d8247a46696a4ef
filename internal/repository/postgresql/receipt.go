package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/retailops/turnos-backend/internal/domain/receipt"
	"github.com/retailops/turnos-backend/internal/pkg/database"
)

type receiptRepository struct {
	db *database.DB
}

func NewReceiptRepository(db *database.DB) receipt.ReceiptRepository {
	return &receiptRepository{db: db}
}

// Get implements receipt.ReceiptRepository.
func (r *receiptRepository) Get(ctx context.Context, employeeID string, year, month int) (receipt.Receipt, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, year, month, planned_hours, planned_pay,
			   worked_hours, worked_pay, consumption, created_at, updated_at
		FROM receipts
		WHERE employee_id = $1 AND year = $2 AND month = $3
	`

	var rec receipt.Receipt
	err := q.QueryRow(ctx, query, employeeID, year, month).Scan(
		&rec.ID, &rec.EmployeeID, &rec.Year, &rec.Month,
		&rec.PlannedHours, &rec.PlannedPay, &rec.WorkedHours, &rec.WorkedPay,
		&rec.Consumption, &rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return receipt.Receipt{}, receipt.ErrReceiptNotFound
		}
		return receipt.Receipt{}, fmt.Errorf("failed to get receipt: %w", err)
	}

	return rec, nil
}

// Upsert implements receipt.ReceiptRepository.
func (r *receiptRepository) Upsert(ctx context.Context, rec receipt.Receipt) (receipt.Receipt, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO receipts (
			employee_id, year, month, planned_hours, planned_pay,
			worked_hours, worked_pay, consumption
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (employee_id, year, month)
		DO UPDATE SET planned_hours = EXCLUDED.planned_hours,
					  planned_pay = EXCLUDED.planned_pay,
					  worked_hours = EXCLUDED.worked_hours,
					  worked_pay = EXCLUDED.worked_pay,
					  consumption = EXCLUDED.consumption,
					  updated_at = NOW()
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		rec.EmployeeID, rec.Year, rec.Month,
		rec.PlannedHours, rec.PlannedPay, rec.WorkedHours, rec.WorkedPay,
		rec.Consumption,
	).Scan(&rec.ID, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		return receipt.Receipt{}, fmt.Errorf("failed to upsert receipt: %w", err)
	}

	return rec, nil
}

// Delete implements receipt.ReceiptRepository.
func (r *receiptRepository) Delete(ctx context.Context, employeeID string, year, month int) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx,
		`DELETE FROM receipts WHERE employee_id = $1 AND year = $2 AND month = $3`,
		employeeID, year, month,
	)
	if err != nil {
		return fmt.Errorf("failed to delete receipt: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return receipt.ErrReceiptNotFound
	}

	return nil
}

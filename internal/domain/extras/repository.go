package extras

import (
	"context"

	"github.com/shopspring/decimal"
)

type ExtrasRepository interface {
	Create(ctx context.Context, payment Payment) (Payment, error)
	List(ctx context.Context, filter ExtraFilter) ([]Payment, error)
	Delete(ctx context.Context, id string) error
	// SumByKind returns bonus and deduction totals for one employee-month.
	SumByKind(ctx context.Context, employeeID string, year, month int) (bonuses, deductions decimal.Decimal, err error)
}

type ExtrasService interface {
	Create(ctx context.Context, req CreateExtraRequest) (ExtraResponse, error)
	List(ctx context.Context, filter ExtraFilter) ([]ExtraResponse, error)
	Delete(ctx context.Context, id string) error
}

package schedule

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type ScheduleRepository interface {
	// BulkInsertDays seeds one empty row per day. Used at employee creation.
	BulkInsertDays(ctx context.Context, employeeID, employeeName string, days []time.Time) error
	ListGrid(ctx context.Context, filter GridFilter) ([]Entry, error)
	ListByEmployeeRange(ctx context.Context, employeeID string, from, to time.Time) ([]Entry, error)
	UpsertEntry(ctx context.Context, entry Entry) (Entry, error)
	UpdateEntryPay(ctx context.Context, id string, pay decimal.Decimal) error
	SumMonth(ctx context.Context, employeeID string, year, month int) (hours, pay decimal.Decimal, err error)
}

type MonthlyTotalRepository interface {
	Upsert(ctx context.Context, total MonthlyTotal) error
	List(ctx context.Context, year int, employeeID *string) ([]MonthlyTotal, error)
	Get(ctx context.Context, employeeID string, year, month int) (MonthlyTotal, error)
}

// RatePropagator recomputes schedule pay after an hourly rate change.
// Implemented by the schedule service, consumed by the employee service.
type RatePropagator interface {
	PropagateRate(ctx context.Context, employeeID string, rate decimal.Decimal, policy RatePolicy, now time.Time) error
}

type ScheduleService interface {
	GetGrid(ctx context.Context, filter GridFilter) ([]EntryResponse, error)
	AssignShift(ctx context.Context, req AssignShiftRequest) (EntryResponse, error)
	GetTotals(ctx context.Context, year int, employeeID *string) ([]MonthlyTotalResponse, error)
	RenderGridPDF(ctx context.Context, year, month int) ([]byte, string, error)
}

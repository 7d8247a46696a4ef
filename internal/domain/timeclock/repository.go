package timeclock

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type ClockEventRepository interface {
	Insert(ctx context.Context, event Event) (Event, error)
	GetByID(ctx context.Context, id string) (Event, error)
	// GetLatest returns the employee's most recent event within year,
	// ordered by date then time of day.
	GetLatest(ctx context.Context, employeeID string, year int) (*Event, error)
	// GetAdjacent returns the event immediately before (or after) the given
	// event for the same employee, used to re-pair after an edit.
	GetAdjacent(ctx context.Context, event Event, after bool) (*Event, error)
	UpdateTime(ctx context.Context, id string, clock string) error
	List(ctx context.Context, year int, employeeID *string) ([]Event, error)
}

type TimesheetRepository interface {
	Upsert(ctx context.Context, entry TimesheetEntry) (TimesheetEntry, error)
	List(ctx context.Context, year, month int, employeeID *string) ([]TimesheetEntry, error)
	// SumMonth aggregates worked minutes and pay for one employee-month.
	SumMonth(ctx context.Context, employeeID string, year, month int) (minutes int, pay decimal.Decimal, err error)
	DeleteByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) error
}

type TimeclockService interface {
	Punch(ctx context.Context, req PunchRequest) (EventResponse, error)
	EditEvent(ctx context.Context, req EditEventRequest) (EventResponse, error)
	ListEvents(ctx context.Context, year int, employeeID *string) ([]EventResponse, error)
	ListTimesheet(ctx context.Context, year, month int, employeeID *string) ([]TimesheetEntryResponse, error)
}

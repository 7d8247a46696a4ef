package holiday

import (
	"context"
	"time"
)

type HolidayRepository interface {
	Create(ctx context.Context, entry Entry) (Entry, error)
	ExistsOnDate(ctx context.Context, date time.Time) (bool, error)
	ListByYear(ctx context.Context, year int) ([]Entry, error)
	Delete(ctx context.Context, id string) error
}

type HolidayService interface {
	Create(ctx context.Context, req CreateHolidayRequest) (HolidayResponse, error)
	ListByYear(ctx context.Context, year int) ([]HolidayResponse, error)
	Delete(ctx context.Context, id string) error
}

package vacation

import "context"

type VacationRepository interface {
	Create(ctx context.Context, booking Booking) (Booking, error)
	List(ctx context.Context, employeeID *string) ([]Booking, error)
}

type VacationService interface {
	Book(ctx context.Context, req BookVacationRequest) (BookingResponse, error)
	List(ctx context.Context, employeeID *string) ([]BookingResponse, error)
}

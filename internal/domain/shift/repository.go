package shift

import "context"

type ShiftRepository interface {
	Create(ctx context.Context, def Definition) (Definition, error)
	GetByID(ctx context.Context, id string) (Definition, error)
	GetByName(ctx context.Context, name string) (Definition, error)
	List(ctx context.Context) ([]Definition, error)
	Update(ctx context.Context, def Definition) error
	Delete(ctx context.Context, id string) error
}

type ShiftService interface {
	Create(ctx context.Context, req CreateShiftRequest) (ShiftResponse, error)
	GetByID(ctx context.Context, id string) (ShiftResponse, error)
	List(ctx context.Context) ([]ShiftResponse, error)
	Update(ctx context.Context, req UpdateShiftRequest) (ShiftResponse, error)
	Delete(ctx context.Context, id string) error
}

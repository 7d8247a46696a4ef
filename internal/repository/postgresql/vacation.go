package postgresql

import (
	"context"
	"fmt"

	"github.com/retailops/turnos-backend/internal/domain/vacation"
	"github.com/retailops/turnos-backend/internal/pkg/database"
)

type vacationRepository struct {
	db *database.DB
}

func NewVacationRepository(db *database.DB) vacation.VacationRepository {
	return &vacationRepository{db: db}
}

// Create implements vacation.VacationRepository.
func (r *vacationRepository) Create(ctx context.Context, booking vacation.Booking) (vacation.Booking, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO vacation_bookings (employee_id, days, start_date, end_date, type)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query,
		booking.EmployeeID, booking.Days, booking.StartDate, booking.EndDate, booking.Type,
	).Scan(&booking.ID, &booking.CreatedAt)
	if err != nil {
		return vacation.Booking{}, fmt.Errorf("failed to create vacation booking: %w", err)
	}

	return booking, nil
}

// List implements vacation.VacationRepository.
func (r *vacationRepository) List(ctx context.Context, employeeID *string) ([]vacation.Booking, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "TRUE"
	args := []interface{}{}
	if employeeID != nil && *employeeID != "" {
		baseWhere = "employee_id = $1"
		args = append(args, *employeeID)
	}

	query := `
		SELECT id, employee_id, days, start_date, end_date, type, created_at
		FROM vacation_bookings
		WHERE ` + baseWhere + `
		ORDER BY start_date DESC
	`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list vacation bookings: %w", err)
	}
	defer rows.Close()

	var bookings []vacation.Booking
	for rows.Next() {
		var booking vacation.Booking
		err := rows.Scan(
			&booking.ID, &booking.EmployeeID, &booking.Days,
			&booking.StartDate, &booking.EndDate, &booking.Type, &booking.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan vacation booking: %w", err)
		}
		bookings = append(bookings, booking)
	}

	return bookings, nil
}

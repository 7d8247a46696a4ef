package postgresql

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/retailops/turnos-backend/internal/domain/timeclock"
	"github.com/retailops/turnos-backend/internal/pkg/database"
)

type clockEventRepository struct {
	db *database.DB
}

func NewClockEventRepository(db *database.DB) timeclock.ClockEventRepository {
	return &clockEventRepository{db: db}
}

// Insert implements timeclock.ClockEventRepository.
func (r *clockEventRepository) Insert(ctx context.Context, event timeclock.Event) (timeclock.Event, error) {
	q := GetQuerier(ctx, r.db)

	if event.ID == "" {
		event.ID = uuid.New().String()
	}

	query := `
		INSERT INTO clock_events (id, employee_id, date, action, clock_time)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at
	`

	err := q.QueryRow(ctx, query, event.ID, event.EmployeeID, event.Date, event.Action, event.Time).
		Scan(&event.CreatedAt)
	if err != nil {
		return timeclock.Event{}, fmt.Errorf("failed to insert clock event: %w", err)
	}

	return event, nil
}

// GetByID implements timeclock.ClockEventRepository.
func (r *clockEventRepository) GetByID(ctx context.Context, id string) (timeclock.Event, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, date, action, clock_time, created_at
		FROM clock_events
		WHERE id = $1
	`

	var event timeclock.Event
	err := q.QueryRow(ctx, query, id).Scan(
		&event.ID, &event.EmployeeID, &event.Date, &event.Action, &event.Time, &event.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return timeclock.Event{}, timeclock.ErrEventNotFound
		}
		return timeclock.Event{}, fmt.Errorf("failed to get clock event: %w", err)
	}

	return event, nil
}

// GetLatest implements timeclock.ClockEventRepository.
func (r *clockEventRepository) GetLatest(ctx context.Context, employeeID string, year int) (*timeclock.Event, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, date, action, clock_time, created_at
		FROM clock_events
		WHERE employee_id = $1 AND EXTRACT(YEAR FROM date) = $2
		ORDER BY date DESC, clock_time DESC, created_at DESC
		LIMIT 1
	`

	var event timeclock.Event
	err := q.QueryRow(ctx, query, employeeID, year).Scan(
		&event.ID, &event.EmployeeID, &event.Date, &event.Action, &event.Time, &event.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil // fresh year, no events yet
		}
		return nil, fmt.Errorf("failed to get latest clock event: %w", err)
	}

	return &event, nil
}

// GetAdjacent implements timeclock.ClockEventRepository.
func (r *clockEventRepository) GetAdjacent(ctx context.Context, event timeclock.Event, after bool) (*timeclock.Event, error) {
	q := GetQuerier(ctx, r.db)

	comparison := "<"
	ordering := "DESC"
	if after {
		comparison = ">"
		ordering = "ASC"
	}

	query := fmt.Sprintf(`
		SELECT id, employee_id, date, action, clock_time, created_at
		FROM clock_events
		WHERE employee_id = $1
		  AND (date, clock_time) %s ($2, $3)
		ORDER BY date %s, clock_time %s
		LIMIT 1
	`, comparison, ordering, ordering)

	var adjacent timeclock.Event
	err := q.QueryRow(ctx, query, event.EmployeeID, event.Date, event.Time).Scan(
		&adjacent.ID, &adjacent.EmployeeID, &adjacent.Date, &adjacent.Action,
		&adjacent.Time, &adjacent.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get adjacent clock event: %w", err)
	}

	return &adjacent, nil
}

// UpdateTime implements timeclock.ClockEventRepository.
func (r *clockEventRepository) UpdateTime(ctx context.Context, id string, clock string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx,
		`UPDATE clock_events SET clock_time = $1 WHERE id = $2`,
		clock, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update clock event time: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return timeclock.ErrEventNotFound
	}

	return nil
}

// List implements timeclock.ClockEventRepository.
func (r *clockEventRepository) List(ctx context.Context, year int, employeeID *string) ([]timeclock.Event, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "EXTRACT(YEAR FROM date) = $1"
	args := []interface{}{year}
	if employeeID != nil && *employeeID != "" {
		baseWhere += " AND employee_id = $2"
		args = append(args, *employeeID)
	}

	query := `
		SELECT id, employee_id, date, action, clock_time, created_at
		FROM clock_events
		WHERE ` + baseWhere + `
		ORDER BY date, clock_time
	`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list clock events: %w", err)
	}
	defer rows.Close()

	var events []timeclock.Event
	for rows.Next() {
		var event timeclock.Event
		err := rows.Scan(
			&event.ID, &event.EmployeeID, &event.Date, &event.Action,
			&event.Time, &event.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan clock event: %w", err)
		}
		events = append(events, event)
	}

	return events, nil
}

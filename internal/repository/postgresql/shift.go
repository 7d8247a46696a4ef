package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/retailops/turnos-backend/internal/domain/shift"
	"github.com/retailops/turnos-backend/internal/pkg/database"
)

type shiftRepository struct {
	db *database.DB
}

func NewShiftRepository(db *database.DB) shift.ShiftRepository {
	return &shiftRepository{db: db}
}

// Create implements shift.ShiftRepository.
func (r *shiftRepository) Create(ctx context.Context, def shift.Definition) (shift.Definition, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO shift_definitions (name, start_hour, end_hour, duration_hours)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query, def.Name, def.StartHour, def.EndHour, def.DurationHours).
		Scan(&def.ID, &def.CreatedAt, &def.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return shift.Definition{}, shift.ErrShiftNameExists
		}
		return shift.Definition{}, fmt.Errorf("failed to create shift definition: %w", err)
	}

	return def, nil
}

// GetByID implements shift.ShiftRepository.
func (r *shiftRepository) GetByID(ctx context.Context, id string) (shift.Definition, error) {
	return r.getBy(ctx, "id", id)
}

// GetByName implements shift.ShiftRepository.
func (r *shiftRepository) GetByName(ctx context.Context, name string) (shift.Definition, error) {
	return r.getBy(ctx, "name", name)
}

func (r *shiftRepository) getBy(ctx context.Context, column, value string) (shift.Definition, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT id, name, start_hour, end_hour, duration_hours, created_at, updated_at
		FROM shift_definitions
		WHERE %s = $1
	`, column)

	var def shift.Definition
	err := q.QueryRow(ctx, query, value).Scan(
		&def.ID, &def.Name, &def.StartHour, &def.EndHour, &def.DurationHours,
		&def.CreatedAt, &def.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return shift.Definition{}, shift.ErrShiftNotFound
		}
		return shift.Definition{}, fmt.Errorf("failed to get shift definition: %w", err)
	}

	return def, nil
}

// List implements shift.ShiftRepository.
func (r *shiftRepository) List(ctx context.Context) ([]shift.Definition, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, start_hour, end_hour, duration_hours, created_at, updated_at
		FROM shift_definitions
		ORDER BY start_hour, name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list shift definitions: %w", err)
	}
	defer rows.Close()

	var defs []shift.Definition
	for rows.Next() {
		var def shift.Definition
		err := rows.Scan(
			&def.ID, &def.Name, &def.StartHour, &def.EndHour, &def.DurationHours,
			&def.CreatedAt, &def.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan shift definition: %w", err)
		}
		defs = append(defs, def)
	}

	return defs, nil
}

// Update implements shift.ShiftRepository.
func (r *shiftRepository) Update(ctx context.Context, def shift.Definition) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE shift_definitions
		SET name = $1, start_hour = $2, end_hour = $3, duration_hours = $4, updated_at = NOW()
		WHERE id = $5
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query, def.Name, def.StartHour, def.EndHour, def.DurationHours, def.ID).
		Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return shift.ErrShiftNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return shift.ErrShiftNameExists
		}
		return fmt.Errorf("failed to update shift definition: %w", err)
	}

	return nil
}

// Delete implements shift.ShiftRepository.
func (r *shiftRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM shift_definitions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete shift definition: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return shift.ErrShiftNotFound
	}

	return nil
}

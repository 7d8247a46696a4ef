package holiday

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/retailops/turnos-backend/internal/domain/holiday"
)

type fakeHolidayRepo struct {
	entries []holiday.Entry
}

func (f *fakeHolidayRepo) Create(ctx context.Context, entry holiday.Entry) (holiday.Entry, error) {
	for _, existing := range f.entries {
		if existing.Date.Equal(entry.Date) {
			return holiday.Entry{}, holiday.ErrHolidayExists
		}
	}
	entry.ID = "hol-1"
	f.entries = append(f.entries, entry)
	return entry, nil
}

func (f *fakeHolidayRepo) ExistsOnDate(ctx context.Context, date time.Time) (bool, error) {
	for _, entry := range f.entries {
		if entry.Date.Equal(date) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeHolidayRepo) ListByYear(ctx context.Context, year int) ([]holiday.Entry, error) {
	var result []holiday.Entry
	for _, entry := range f.entries {
		if entry.Date.Year() == year {
			result = append(result, entry)
		}
	}
	return result, nil
}

func (f *fakeHolidayRepo) Delete(ctx context.Context, id string) error {
	for i, entry := range f.entries {
		if entry.ID == id {
			f.entries = append(f.entries[:i], f.entries[i+1:]...)
			return nil
		}
	}
	return holiday.ErrHolidayNotFound
}

func TestCreate_ResolvesWeekday(t *testing.T) {
	service := NewHolidayService(&fakeHolidayRepo{})

	// 25/12/2025 is a Thursday
	resp, err := service.Create(context.Background(), holiday.CreateHolidayRequest{
		Date:  "25/12/2025",
		Label: "Navidad",
	})
	require.NoError(t, err)

	assert.Equal(t, "25/12/2025", resp.Date)
	assert.Equal(t, "jueves", resp.Weekday)
	assert.Equal(t, 2025, resp.Year)
	assert.Equal(t, "Navidad", resp.Label)
}

func TestCreate_DuplicateDate(t *testing.T) {
	service := NewHolidayService(&fakeHolidayRepo{})

	req := holiday.CreateHolidayRequest{Date: "01/05/2025", Label: "Día del Trabajador"}
	_, err := service.Create(context.Background(), req)
	require.NoError(t, err)

	_, err = service.Create(context.Background(), req)
	assert.ErrorIs(t, err, holiday.ErrHolidayExists)
}

func TestCreate_BadDate(t *testing.T) {
	service := NewHolidayService(&fakeHolidayRepo{})

	_, err := service.Create(context.Background(), holiday.CreateHolidayRequest{
		Date:  "2025-05-01",
		Label: "Día del Trabajador",
	})
	assert.Error(t, err)
}

func TestListByYear_FiltersYear(t *testing.T) {
	repo := &fakeHolidayRepo{}
	service := NewHolidayService(repo)

	_, err := service.Create(context.Background(), holiday.CreateHolidayRequest{Date: "01/01/2025", Label: "Año Nuevo"})
	require.NoError(t, err)

	listed, err := service.ListByYear(context.Background(), 2025)
	require.NoError(t, err)
	assert.Len(t, listed, 1)

	empty, err := service.ListByYear(context.Background(), 2024)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

package holiday

import (
	"context"
	"time"

	"github.com/retailops/turnos-backend/internal/domain/holiday"
	"github.com/retailops/turnos-backend/internal/pkg/validator"
)

var weekdayNames = map[time.Weekday]string{
	time.Sunday:    "domingo",
	time.Monday:    "lunes",
	time.Tuesday:   "martes",
	time.Wednesday: "miércoles",
	time.Thursday:  "jueves",
	time.Friday:    "viernes",
	time.Saturday:  "sábado",
}

type HolidayServiceImpl struct {
	holidayRepo holiday.HolidayRepository
}

func NewHolidayService(holidayRepo holiday.HolidayRepository) holiday.HolidayService {
	return &HolidayServiceImpl{holidayRepo: holidayRepo}
}

func (s *HolidayServiceImpl) Create(ctx context.Context, req holiday.CreateHolidayRequest) (holiday.HolidayResponse, error) {
	if err := req.Validate(); err != nil {
		return holiday.HolidayResponse{}, err
	}

	date, _ := validator.ParseDate(req.Date)

	created, err := s.holidayRepo.Create(ctx, holiday.Entry{
		Date:  date,
		Label: req.Label,
	})
	if err != nil {
		return holiday.HolidayResponse{}, err
	}

	return toResponse(created), nil
}

func (s *HolidayServiceImpl) ListByYear(ctx context.Context, year int) ([]holiday.HolidayResponse, error) {
	entries, err := s.holidayRepo.ListByYear(ctx, year)
	if err != nil {
		return nil, err
	}

	responses := make([]holiday.HolidayResponse, 0, len(entries))
	for _, entry := range entries {
		responses = append(responses, toResponse(entry))
	}
	return responses, nil
}

func (s *HolidayServiceImpl) Delete(ctx context.Context, id string) error {
	return s.holidayRepo.Delete(ctx, id)
}

func toResponse(entry holiday.Entry) holiday.HolidayResponse {
	return holiday.HolidayResponse{
		ID:      entry.ID,
		Date:    validator.FormatDate(entry.Date),
		Label:   entry.Label,
		Weekday: weekdayNames[entry.Date.Weekday()],
		Year:    entry.Date.Year(),
	}
}

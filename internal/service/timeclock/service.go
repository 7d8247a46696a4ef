package timeclock

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/retailops/turnos-backend/internal/config"
	"github.com/retailops/turnos-backend/internal/domain/employee"
	"github.com/retailops/turnos-backend/internal/domain/holiday"
	"github.com/retailops/turnos-backend/internal/domain/schedule"
	"github.com/retailops/turnos-backend/internal/domain/timeclock"
	"github.com/retailops/turnos-backend/internal/pkg/database"
	"github.com/retailops/turnos-backend/internal/pkg/validator"
	"github.com/retailops/turnos-backend/internal/repository/postgresql"
)

type TimeclockServiceImpl struct {
	db            *database.DB
	eventRepo     timeclock.ClockEventRepository
	timesheetRepo timeclock.TimesheetRepository
	employeeRepo  employee.EmployeeRepository
	holidayRepo   holiday.HolidayRepository
	payroll       config.PayrollConfig
}

func NewTimeclockService(
	db *database.DB,
	eventRepo timeclock.ClockEventRepository,
	timesheetRepo timeclock.TimesheetRepository,
	employeeRepo employee.EmployeeRepository,
	holidayRepo holiday.HolidayRepository,
	payroll config.PayrollConfig,
) timeclock.TimeclockService {
	return &TimeclockServiceImpl{
		db:            db,
		eventRepo:     eventRepo,
		timesheetRepo: timesheetRepo,
		employeeRepo:  employeeRepo,
		holidayRepo:   holidayRepo,
		payroll:       payroll,
	}
}

// Punch records a clock event. Events must alternate per employee:
// INGRESO opens a shift, EGRESO closes it and derives the timesheet row.
func (s *TimeclockServiceImpl) Punch(ctx context.Context, req timeclock.PunchRequest) (timeclock.EventResponse, error) {
	if err := req.Validate(); err != nil {
		return timeclock.EventResponse{}, err
	}

	date, _ := validator.ParseDate(req.Date)

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return timeclock.EventResponse{}, err
	}

	last, err := s.eventRepo.GetLatest(ctx, req.EmployeeID, date.Year())
	if err != nil {
		return timeclock.EventResponse{}, err
	}

	expected := timeclock.NextAction(last)
	if timeclock.Action(req.Action) != expected {
		if expected == timeclock.ActionOut {
			return timeclock.EventResponse{}, timeclock.ErrAlreadyClockedIn
		}
		return timeclock.EventResponse{}, timeclock.ErrNotClockedIn
	}

	var saved timeclock.Event
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		var err error
		saved, err = s.eventRepo.Insert(txCtx, timeclock.Event{
			EmployeeID: req.EmployeeID,
			Date:       date,
			Action:     timeclock.Action(req.Action),
			Time:       req.Time,
		})
		if err != nil {
			return err
		}

		if saved.Action == timeclock.ActionOut {
			// last is the open INGRESO; the timesheet row keys on its date
			return s.writeTimesheet(txCtx, emp, *last, saved)
		}
		return nil
	})
	if err != nil {
		return timeclock.EventResponse{}, err
	}

	return toEventResponse(saved), nil
}

// EditEvent corrects a past event's time and recomputes the timesheet
// row from whichever adjacent event completes its pair.
func (s *TimeclockServiceImpl) EditEvent(ctx context.Context, req timeclock.EditEventRequest) (timeclock.EventResponse, error) {
	if err := req.Validate(); err != nil {
		return timeclock.EventResponse{}, err
	}

	event, err := s.eventRepo.GetByID(ctx, req.ID)
	if err != nil {
		return timeclock.EventResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, event.EmployeeID)
	if err != nil {
		return timeclock.EventResponse{}, err
	}

	adjacent, err := s.eventRepo.GetAdjacent(ctx, event, event.Action == timeclock.ActionIn)
	if err != nil {
		return timeclock.EventResponse{}, err
	}

	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if err := s.eventRepo.UpdateTime(txCtx, event.ID, req.Time); err != nil {
			return err
		}
		event.Time = req.Time

		if adjacent == nil {
			if event.Action == timeclock.ActionOut {
				return timeclock.ErrNoMatchingPair
			}
			// open INGRESO: the day has no completed pair, so any row
			// written for it earlier is stale until the next EGRESO
			return s.timesheetRepo.DeleteByEmployeeAndDate(txCtx, event.EmployeeID, event.Date)
		}
		if adjacent.Action == event.Action {
			return timeclock.ErrNoMatchingPair
		}

		in, out := event, *adjacent
		if event.Action == timeclock.ActionOut {
			in, out = *adjacent, event
		}
		return s.writeTimesheet(txCtx, emp, in, out)
	})
	if err != nil {
		return timeclock.EventResponse{}, err
	}

	return toEventResponse(event), nil
}

func (s *TimeclockServiceImpl) ListEvents(ctx context.Context, year int, employeeID *string) ([]timeclock.EventResponse, error) {
	events, err := s.eventRepo.List(ctx, year, employeeID)
	if err != nil {
		return nil, err
	}

	responses := make([]timeclock.EventResponse, 0, len(events))
	for _, event := range events {
		responses = append(responses, toEventResponse(event))
	}
	return responses, nil
}

func (s *TimeclockServiceImpl) ListTimesheet(ctx context.Context, year, month int, employeeID *string) ([]timeclock.TimesheetEntryResponse, error) {
	entries, err := s.timesheetRepo.List(ctx, year, month, employeeID)
	if err != nil {
		return nil, err
	}

	responses := make([]timeclock.TimesheetEntryResponse, 0, len(entries))
	for _, entry := range entries {
		responses = append(responses, timeclock.TimesheetEntryResponse{
			ID:            entry.ID,
			EmployeeID:    entry.EmployeeID,
			EmployeeName:  entry.EmployeeName,
			Date:          validator.FormatDate(entry.Date),
			ClockIn:       entry.ClockIn,
			ClockOut:      entry.ClockOut,
			WorkedMinutes: entry.WorkedMinutes,
			WorkedHours:   timeclock.WorkedHours(entry.WorkedMinutes),
			Pay:           entry.Pay,
		})
	}
	return responses, nil
}

// writeTimesheet derives the worked-time row for a completed clock pair.
// The row keys on the INGRESO date; a shift past midnight stays on the
// day it started.
func (s *TimeclockServiceImpl) writeTimesheet(ctx context.Context, emp employee.Employee, in, out timeclock.Event) error {
	minutes, err := timeclock.WorkedMinutes(in.Time, out.Time)
	if err != nil {
		return err
	}

	isHoliday, err := s.holidayRepo.ExistsOnDate(ctx, in.Date)
	if err != nil {
		return err
	}

	hours := timeclock.WorkedHours(minutes)
	pay := schedule.Pay(emp.HourlyRate, hours, isHoliday, s.payroll.HolidayMultiplier)

	_, err = s.timesheetRepo.Upsert(ctx, timeclock.TimesheetEntry{
		EmployeeID:    emp.ID,
		EmployeeName:  emp.FullName(),
		Date:          in.Date,
		ClockIn:       in.Time,
		ClockOut:      out.Time,
		WorkedMinutes: minutes,
		Pay:           pay,
	})
	return err
}

func toEventResponse(event timeclock.Event) timeclock.EventResponse {
	return timeclock.EventResponse{
		ID:         event.ID,
		EmployeeID: event.EmployeeID,
		Date:       validator.FormatDate(event.Date),
		Action:     string(event.Action),
		Time:       event.Time,
	}
}

package vacation

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/retailops/turnos-backend/internal/config"
	"github.com/retailops/turnos-backend/internal/domain/employee"
	"github.com/retailops/turnos-backend/internal/domain/schedule"
	"github.com/retailops/turnos-backend/internal/domain/vacation"
	"github.com/retailops/turnos-backend/internal/pkg/database"
	"github.com/retailops/turnos-backend/internal/pkg/validator"
	"github.com/retailops/turnos-backend/internal/repository/postgresql"
)

type VacationServiceImpl struct {
	db           *database.DB
	vacationRepo vacation.VacationRepository
	employeeRepo employee.EmployeeRepository
	scheduleRepo schedule.ScheduleRepository
	totalRepo    schedule.MonthlyTotalRepository
	payroll      config.PayrollConfig
}

func NewVacationService(
	db *database.DB,
	vacationRepo vacation.VacationRepository,
	employeeRepo employee.EmployeeRepository,
	scheduleRepo schedule.ScheduleRepository,
	totalRepo schedule.MonthlyTotalRepository,
	payroll config.PayrollConfig,
) vacation.VacationService {
	return &VacationServiceImpl{
		db:           db,
		vacationRepo: vacationRepo,
		employeeRepo: employeeRepo,
		scheduleRepo: scheduleRepo,
		totalRepo:    totalRepo,
		payroll:      payroll,
	}
}

// Book registers a vacation and stamps VACACIONES over the date range.
// Paid bookings credit per-day hours and pay and consume balance; unpaid
// bookings stamp zero-value days and leave the balance alone.
func (s *VacationServiceImpl) Book(ctx context.Context, req vacation.BookVacationRequest) (vacation.BookingResponse, error) {
	if err := req.Validate(); err != nil {
		return vacation.BookingResponse{}, err
	}

	startDate, _ := validator.ParseDate(req.StartDate)
	endDate, _ := validator.ParseDate(req.EndDate)

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return vacation.BookingResponse{}, err
	}

	paid := vacation.Type(req.Type) == vacation.TypePaid
	if paid && emp.VacationDaysRemaining < req.Days {
		return vacation.BookingResponse{}, &vacation.InsufficientBalanceError{
			Requested: req.Days,
			Remaining: emp.VacationDaysRemaining,
		}
	}

	perDayHours := decimal.Zero
	perDayPay := decimal.Zero
	if paid {
		perDayHours = vacation.PerDayHours(emp.VacationHoursEntitlement, s.payroll.VacationWeekDivisor)
		perDayPay = emp.HourlyRate.Mul(perDayHours).Round(2)
	}

	remaining := emp.VacationDaysRemaining
	var booking vacation.Booking
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		var err error
		booking, err = s.vacationRepo.Create(txCtx, vacation.Booking{
			EmployeeID: emp.ID,
			Days:       req.Days,
			StartDate:  startDate,
			EndDate:    endDate,
			Type:       vacation.Type(req.Type),
		})
		if err != nil {
			return err
		}

		touched := map[schedule.YearMonth]bool{}
		for day := startDate; !day.After(endDate); day = day.AddDate(0, 0, 1) {
			_, err := s.scheduleRepo.UpsertEntry(txCtx, schedule.Entry{
				EmployeeID:   emp.ID,
				EmployeeName: emp.FullName(),
				Date:         day,
				ShiftCode:    schedule.VacationCode,
				Hours:        perDayHours,
				Pay:          perDayPay,
			})
			if err != nil {
				return err
			}
			touched[schedule.YearMonth{Year: day.Year(), Month: int(day.Month())}] = true
		}

		for ym := range touched {
			hours, pay, err := s.scheduleRepo.SumMonth(txCtx, emp.ID, ym.Year, ym.Month)
			if err != nil {
				return err
			}
			err = s.totalRepo.Upsert(txCtx, schedule.MonthlyTotal{
				EmployeeID:   emp.ID,
				EmployeeName: emp.FullName(),
				Year:         ym.Year,
				Month:        ym.Month,
				Hours:        hours,
				Pay:          pay,
			})
			if err != nil {
				return err
			}
		}

		if paid {
			remaining = emp.VacationDaysRemaining - req.Days
			return s.employeeRepo.UpdateVacationDays(txCtx, emp.ID, remaining)
		}
		return nil
	})
	if err != nil {
		return vacation.BookingResponse{}, err
	}

	return vacation.BookingResponse{
		ID:            booking.ID,
		EmployeeID:    booking.EmployeeID,
		Days:          booking.Days,
		StartDate:     validator.FormatDate(booking.StartDate),
		EndDate:       validator.FormatDate(booking.EndDate),
		Type:          string(booking.Type),
		PerDayHours:   perDayHours,
		PerDayPay:     perDayPay,
		DaysRemaining: remaining,
	}, nil
}

func (s *VacationServiceImpl) List(ctx context.Context, employeeID *string) ([]vacation.BookingResponse, error) {
	bookings, err := s.vacationRepo.List(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	responses := make([]vacation.BookingResponse, 0, len(bookings))
	for _, booking := range bookings {
		responses = append(responses, vacation.BookingResponse{
			ID:         booking.ID,
			EmployeeID: booking.EmployeeID,
			Days:       booking.Days,
			StartDate:  validator.FormatDate(booking.StartDate),
			EndDate:    validator.FormatDate(booking.EndDate),
			Type:       string(booking.Type),
		})
	}
	return responses, nil
}

package schedule

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/retailops/turnos-backend/internal/config"
	"github.com/retailops/turnos-backend/internal/domain/employee"
	"github.com/retailops/turnos-backend/internal/domain/holiday"
	"github.com/retailops/turnos-backend/internal/domain/schedule"
	"github.com/retailops/turnos-backend/internal/domain/shift"
	"github.com/retailops/turnos-backend/internal/pkg/database"
	"github.com/retailops/turnos-backend/internal/pkg/pdf"
	"github.com/retailops/turnos-backend/internal/pkg/validator"
	"github.com/retailops/turnos-backend/internal/repository/postgresql"
)

type ScheduleServiceImpl struct {
	db           *database.DB
	scheduleRepo schedule.ScheduleRepository
	totalRepo    schedule.MonthlyTotalRepository
	shiftRepo    shift.ShiftRepository
	holidayRepo  holiday.HolidayRepository
	employeeRepo employee.EmployeeRepository
	payroll      config.PayrollConfig
}

func NewScheduleService(
	db *database.DB,
	scheduleRepo schedule.ScheduleRepository,
	totalRepo schedule.MonthlyTotalRepository,
	shiftRepo shift.ShiftRepository,
	holidayRepo holiday.HolidayRepository,
	employeeRepo employee.EmployeeRepository,
	payroll config.PayrollConfig,
) *ScheduleServiceImpl {
	return &ScheduleServiceImpl{
		db:           db,
		scheduleRepo: scheduleRepo,
		totalRepo:    totalRepo,
		shiftRepo:    shiftRepo,
		holidayRepo:  holidayRepo,
		employeeRepo: employeeRepo,
		payroll:      payroll,
	}
}

func (s *ScheduleServiceImpl) GetGrid(ctx context.Context, filter schedule.GridFilter) ([]schedule.EntryResponse, error) {
	entries, err := s.scheduleRepo.ListGrid(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]schedule.EntryResponse, 0, len(entries))
	for _, entry := range entries {
		responses = append(responses, toEntryResponse(entry))
	}
	return responses, nil
}

func (s *ScheduleServiceImpl) AssignShift(ctx context.Context, req schedule.AssignShiftRequest) (schedule.EntryResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.EntryResponse{}, err
	}

	date, _ := validator.ParseDate(req.Date)

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return schedule.EntryResponse{}, err
	}

	def, err := s.shiftRepo.GetByName(ctx, req.ShiftName)
	if err != nil {
		return schedule.EntryResponse{}, err
	}

	isHoliday, err := s.holidayRepo.ExistsOnDate(ctx, date)
	if err != nil {
		return schedule.EntryResponse{}, err
	}

	hours := decimal.NewFromInt(int64(def.DurationHours))
	pay := schedule.Pay(emp.HourlyRate, hours, isHoliday, s.payroll.HolidayMultiplier)

	var saved schedule.Entry
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		saved, err = s.scheduleRepo.UpsertEntry(txCtx, schedule.Entry{
			EmployeeID:   emp.ID,
			EmployeeName: emp.FullName(),
			Date:         date,
			ShiftCode:    def.Name,
			Hours:        hours,
			Pay:          pay,
		})
		if err != nil {
			return err
		}

		return s.resyncMonth(txCtx, emp, date.Year(), int(date.Month()))
	})
	if err != nil {
		return schedule.EntryResponse{}, err
	}

	return toEntryResponse(saved), nil
}

func (s *ScheduleServiceImpl) GetTotals(ctx context.Context, year int, employeeID *string) ([]schedule.MonthlyTotalResponse, error) {
	totals, err := s.totalRepo.List(ctx, year, employeeID)
	if err != nil {
		return nil, err
	}

	responses := make([]schedule.MonthlyTotalResponse, 0, len(totals))
	for _, total := range totals {
		responses = append(responses, schedule.MonthlyTotalResponse{
			EmployeeID:   total.EmployeeID,
			EmployeeName: total.EmployeeName,
			Year:         total.Year,
			Month:        total.Month,
			Hours:        total.Hours,
			Pay:          total.Pay,
		})
	}
	return responses, nil
}

func (s *ScheduleServiceImpl) RenderGridPDF(ctx context.Context, year, month int) ([]byte, string, error) {
	entries, err := s.scheduleRepo.ListGrid(ctx, schedule.GridFilter{Year: year, Month: month})
	if err != nil {
		return nil, "", err
	}

	rows := make([]pdf.GridRow, 0, len(entries))
	for _, entry := range entries {
		rows = append(rows, pdf.GridRow{
			EmployeeName: entry.EmployeeName,
			Date:         validator.FormatDate(entry.Date),
			Shift:        entry.ShiftCode,
			Hours:        entry.Hours.String(),
			Pay:          entry.Pay.String(),
		})
	}

	content, err := pdf.ScheduleGrid(month, year, rows)
	if err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("planilla_%02d_%d.pdf", month, year)
	return content, filename, nil
}

// PropagateRate recomputes pay for every schedule row inside the policy
// window and resyncs the touched monthly totals. Holiday doubling is not
// re-applied here: propagated pay is always rate times stored hours.
func (s *ScheduleServiceImpl) PropagateRate(ctx context.Context, employeeID string, rate decimal.Decimal, policy schedule.RatePolicy, now time.Time) error {
	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return err
	}
	emp.HourlyRate = rate

	from, to, err := schedule.ResolveWindow(policy, now)
	if err != nil {
		return err
	}

	return postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		entries, err := s.scheduleRepo.ListByEmployeeRange(txCtx, employeeID, from, to)
		if err != nil {
			return err
		}

		for _, entry := range entries {
			if entry.Hours.IsZero() {
				continue
			}
			pay := rate.Mul(entry.Hours).Round(2)
			if err := s.scheduleRepo.UpdateEntryPay(txCtx, entry.ID, pay); err != nil {
				return err
			}
		}

		for _, ym := range schedule.MonthsBetween(from, to) {
			if err := s.resyncMonth(txCtx, emp, ym.Year, ym.Month); err != nil {
				return err
			}
		}
		return nil
	})
}

// resyncMonth rewrites one cached monthly total from the schedule rows.
func (s *ScheduleServiceImpl) resyncMonth(ctx context.Context, emp employee.Employee, year, month int) error {
	hours, pay, err := s.scheduleRepo.SumMonth(ctx, emp.ID, year, month)
	if err != nil {
		return err
	}

	return s.totalRepo.Upsert(ctx, schedule.MonthlyTotal{
		EmployeeID:   emp.ID,
		EmployeeName: emp.FullName(),
		Year:         year,
		Month:        month,
		Hours:        hours,
		Pay:          pay,
	})
}

func toEntryResponse(entry schedule.Entry) schedule.EntryResponse {
	return schedule.EntryResponse{
		ID:           entry.ID,
		EmployeeID:   entry.EmployeeID,
		EmployeeName: entry.EmployeeName,
		Date:         validator.FormatDate(entry.Date),
		ShiftCode:    entry.ShiftCode,
		Hours:        entry.Hours,
		Pay:          entry.Pay,
	}
}

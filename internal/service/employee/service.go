package employee

import (
	"context"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/retailops/turnos-backend/internal/config"
	"github.com/retailops/turnos-backend/internal/domain/employee"
	"github.com/retailops/turnos-backend/internal/domain/schedule"
	"github.com/retailops/turnos-backend/internal/pkg/database"
	"github.com/retailops/turnos-backend/internal/pkg/validator"
	"github.com/retailops/turnos-backend/internal/repository/postgresql"
)

type EmployeeServiceImpl struct {
	db           *database.DB
	employeeRepo employee.EmployeeRepository
	scheduleRepo schedule.ScheduleRepository
	totalRepo    schedule.MonthlyTotalRepository
	propagator   schedule.RatePropagator
	payroll      config.PayrollConfig
	logger       *slog.Logger
}

func NewEmployeeService(
	db *database.DB,
	employeeRepo employee.EmployeeRepository,
	scheduleRepo schedule.ScheduleRepository,
	totalRepo schedule.MonthlyTotalRepository,
	propagator schedule.RatePropagator,
	payroll config.PayrollConfig,
	logger *slog.Logger,
) employee.EmployeeService {
	return &EmployeeServiceImpl{
		db:           db,
		employeeRepo: employeeRepo,
		scheduleRepo: scheduleRepo,
		totalRepo:    totalRepo,
		propagator:   propagator,
		payroll:      payroll,
		logger:       logger,
	}
}

// Create registers the employee and seeds their full schedule grid: one
// empty row per day of the seed window plus zeroed monthly totals, all in
// one transaction so a failed seed leaves no half-registered employee.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	hireDate, _ := validator.ParseDate(req.HireDate)

	var created employee.Employee
	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		var err error
		created, err = s.employeeRepo.Create(txCtx, employee.Employee{
			FirstName:                req.FirstName,
			LastName:                 req.LastName,
			Email:                    req.Email,
			HireDate:                 hireDate,
			HourlyRate:               req.HourlyRate,
			VacationDaysRemaining:    req.VacationDaysRemaining,
			VacationHoursEntitlement: req.VacationHoursEntitlement,
			PhotoURL:                 req.PhotoURL,
		})
		if err != nil {
			return err
		}

		days := seedDays(s.payroll.ScheduleYearFrom, s.payroll.ScheduleYearTo)
		if err := s.scheduleRepo.BulkInsertDays(txCtx, created.ID, created.FullName(), days); err != nil {
			return err
		}

		for year := s.payroll.ScheduleYearFrom; year <= s.payroll.ScheduleYearTo; year++ {
			for month := 1; month <= 12; month++ {
				err := s.totalRepo.Upsert(txCtx, schedule.MonthlyTotal{
					EmployeeID:   created.ID,
					EmployeeName: created.FullName(),
					Year:         year,
					Month:        month,
					Hours:        decimal.Zero,
					Pay:          decimal.Zero,
				})
				if err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return toResponse(created), nil
}

func (s *EmployeeServiceImpl) GetByID(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return toResponse(emp), nil
}

func (s *EmployeeServiceImpl) List(ctx context.Context) ([]employee.EmployeeResponse, error) {
	emps, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]employee.EmployeeResponse, 0, len(emps))
	for _, emp := range emps {
		responses = append(responses, toResponse(emp))
	}
	return responses, nil
}

func (s *EmployeeServiceImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.ID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.FirstName != nil {
		emp.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		emp.LastName = *req.LastName
	}
	if req.Email != nil {
		emp.Email = *req.Email
	}
	if req.HireDate != nil {
		emp.HireDate, _ = validator.ParseDate(*req.HireDate)
	}
	if req.VacationDaysRemaining != nil {
		emp.VacationDaysRemaining = *req.VacationDaysRemaining
	}
	if req.VacationHoursEntitlement != nil {
		emp.VacationHoursEntitlement = *req.VacationHoursEntitlement
	}
	if req.PhotoURL != nil {
		emp.PhotoURL = req.PhotoURL
	}

	if err := s.employeeRepo.Update(ctx, emp); err != nil {
		return employee.EmployeeResponse{}, err
	}

	return toResponse(emp), nil
}

// ChangeRate saves the new hourly rate, then recomputes the schedule
// window the policy selects. A propagation failure does not undo the
// saved rate; it is logged and reported in the response instead.
func (s *EmployeeServiceImpl) ChangeRate(ctx context.Context, req employee.ChangeRateRequest) (employee.ChangeRateResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.ChangeRateResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.ID)
	if err != nil {
		return employee.ChangeRateResponse{}, err
	}

	if err := s.employeeRepo.UpdateRate(ctx, req.ID, req.Rate); err != nil {
		return employee.ChangeRateResponse{}, err
	}
	emp.HourlyRate = req.Rate

	resp := employee.ChangeRateResponse{
		Employee:   toResponse(emp),
		Propagated: true,
	}

	err = s.propagator.PropagateRate(ctx, req.ID, req.Rate, schedule.RatePolicy(req.Policy), time.Now())
	if err != nil {
		s.logger.Error("rate propagation failed",
			slog.String("employee_id", req.ID),
			slog.String("policy", req.Policy),
			slog.String("error", err.Error()),
		)
		msg := err.Error()
		resp.Propagated = false
		resp.PropagationError = &msg
	}

	return resp, nil
}

// Delete removes the employee row only. Schedule, timesheet and extras
// rows keep their employee_id and become orphans the reports skip.
func (s *EmployeeServiceImpl) Delete(ctx context.Context, id string) error {
	if _, err := s.employeeRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.employeeRepo.Delete(ctx, id)
}

// seedDays lists every calendar day of the seed window.
func seedDays(yearFrom, yearTo int) []time.Time {
	var days []time.Time
	cursor := time.Date(yearFrom, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(yearTo, 12, 31, 0, 0, 0, 0, time.UTC)
	for !cursor.After(end) {
		days = append(days, cursor)
		cursor = cursor.AddDate(0, 0, 1)
	}
	return days
}

func toResponse(emp employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		ID:                       emp.ID,
		FirstName:                emp.FirstName,
		LastName:                 emp.LastName,
		FullName:                 emp.FullName(),
		Email:                    emp.Email,
		HireDate:                 validator.FormatDate(emp.HireDate),
		HourlyRate:               emp.HourlyRate,
		VacationDaysRemaining:    emp.VacationDaysRemaining,
		VacationHoursEntitlement: emp.VacationHoursEntitlement,
		PhotoURL:                 emp.PhotoURL,
	}
}

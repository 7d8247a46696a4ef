package receipt

import (
	"context"
	"errors"
	"fmt"

	"github.com/retailops/turnos-backend/internal/config"
	"github.com/retailops/turnos-backend/internal/domain/employee"
	"github.com/retailops/turnos-backend/internal/domain/extras"
	"github.com/retailops/turnos-backend/internal/domain/receipt"
	"github.com/retailops/turnos-backend/internal/domain/schedule"
	"github.com/retailops/turnos-backend/internal/domain/timeclock"
	"github.com/retailops/turnos-backend/internal/pkg/pdf"
	"github.com/shopspring/decimal"
)

type ReceiptServiceImpl struct {
	receiptRepo   receipt.ReceiptRepository
	totalRepo     schedule.MonthlyTotalRepository
	timesheetRepo timeclock.TimesheetRepository
	extrasRepo    extras.ExtrasRepository
	employeeRepo  employee.EmployeeRepository
	payroll       config.PayrollConfig
}

func NewReceiptService(
	receiptRepo receipt.ReceiptRepository,
	totalRepo schedule.MonthlyTotalRepository,
	timesheetRepo timeclock.TimesheetRepository,
	extrasRepo extras.ExtrasRepository,
	employeeRepo employee.EmployeeRepository,
	payroll config.PayrollConfig,
) receipt.ReceiptService {
	return &ReceiptServiceImpl{
		receiptRepo:   receiptRepo,
		totalRepo:     totalRepo,
		timesheetRepo: timesheetRepo,
		extrasRepo:    extrasRepo,
		employeeRepo:  employeeRepo,
		payroll:       payroll,
	}
}

// Get returns the persisted receipt for the month when one exists, and
// otherwise synthesizes one from the monthly total, the timesheet and
// the month's extras.
func (s *ReceiptServiceImpl) Get(ctx context.Context, query receipt.ReceiptQuery) (receipt.ReceiptResponse, error) {
	if err := query.Validate(); err != nil {
		return receipt.ReceiptResponse{}, err
	}
	return s.assemble(ctx, query)
}

// Save persists the month's receipt snapshot, optionally overriding the
// staff consumption amount.
func (s *ReceiptServiceImpl) Save(ctx context.Context, req receipt.SaveReceiptRequest) (receipt.ReceiptResponse, error) {
	if err := req.Validate(); err != nil {
		return receipt.ReceiptResponse{}, err
	}

	query := receipt.ReceiptQuery{EmployeeID: req.EmployeeID, Year: req.Year, Month: req.Month}
	current, err := s.assemble(ctx, query)
	if err != nil {
		return receipt.ReceiptResponse{}, err
	}

	if req.Consumption != nil {
		current.Consumption = *req.Consumption
	}

	_, err = s.receiptRepo.Upsert(ctx, receipt.Receipt{
		EmployeeID:   req.EmployeeID,
		Year:         req.Year,
		Month:        req.Month,
		PlannedHours: current.PlannedHours,
		PlannedPay:   current.PlannedPay,
		WorkedHours:  current.WorkedHours,
		WorkedPay:    current.WorkedPay,
		Consumption:  current.Consumption,
	})
	if err != nil {
		return receipt.ReceiptResponse{}, err
	}

	return s.assemble(ctx, query)
}

// Reset deletes the persisted snapshot; the next Get synthesizes again.
func (s *ReceiptServiceImpl) Reset(ctx context.Context, query receipt.ReceiptQuery) (receipt.ReceiptResponse, error) {
	if err := query.Validate(); err != nil {
		return receipt.ReceiptResponse{}, err
	}

	if err := s.receiptRepo.Delete(ctx, query.EmployeeID, query.Year, query.Month); err != nil {
		if !errors.Is(err, receipt.ErrReceiptNotFound) {
			return receipt.ReceiptResponse{}, err
		}
	}

	return s.assemble(ctx, query)
}

func (s *ReceiptServiceImpl) RenderPDF(ctx context.Context, query receipt.ReceiptQuery) ([]byte, string, error) {
	if err := query.Validate(); err != nil {
		return nil, "", err
	}

	resp, err := s.assemble(ctx, query)
	if err != nil {
		return nil, "", err
	}

	content, err := pdf.Receipt(pdf.ReceiptData{
		EmployeeName: resp.EmployeeName,
		Month:        resp.Month,
		Year:         resp.Year,
		PlannedHours: resp.PlannedHours.String(),
		PlannedPay:   resp.PlannedPay.String(),
		WorkedHours:  resp.WorkedHours.String(),
		WorkedPay:    resp.WorkedPay.String(),
		Consumption:  resp.Consumption.String(),
		Bonuses:      resp.Bonuses.String(),
		Deductions:   resp.Deductions.String(),
		NetPay:       resp.NetPay.String(),
	})
	if err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("recibo_%s_%02d_%d.pdf", query.EmployeeID, query.Month, query.Year)
	return content, filename, nil
}

func (s *ReceiptServiceImpl) assemble(ctx context.Context, query receipt.ReceiptQuery) (receipt.ReceiptResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, query.EmployeeID)
	if err != nil {
		return receipt.ReceiptResponse{}, err
	}

	resp := receipt.ReceiptResponse{
		EmployeeID:   emp.ID,
		EmployeeName: emp.FullName(),
		Year:         query.Year,
		Month:        query.Month,
		Consumption:  decimal.Zero,
	}

	rec, err := s.receiptRepo.Get(ctx, query.EmployeeID, query.Year, query.Month)
	switch {
	case err == nil:
		resp.Persisted = true
		resp.PlannedHours = rec.PlannedHours
		resp.PlannedPay = rec.PlannedPay
		resp.WorkedHours = rec.WorkedHours
		resp.WorkedPay = rec.WorkedPay
		resp.Consumption = rec.Consumption
	case errors.Is(err, receipt.ErrReceiptNotFound):
		total, err := s.totalRepo.Get(ctx, query.EmployeeID, query.Year, query.Month)
		if err != nil && !errors.Is(err, schedule.ErrEntryNotFound) {
			return receipt.ReceiptResponse{}, err
		}
		resp.PlannedHours = total.Hours
		resp.PlannedPay = total.Pay

		minutes, workedPay, err := s.timesheetRepo.SumMonth(ctx, query.EmployeeID, query.Year, query.Month)
		if err != nil {
			return receipt.ReceiptResponse{}, err
		}
		resp.WorkedHours = timeclock.WorkedHours(minutes)
		resp.WorkedPay = workedPay
	default:
		return receipt.ReceiptResponse{}, err
	}

	bonuses, deductions, err := s.extrasRepo.SumByKind(ctx, query.EmployeeID, query.Year, query.Month)
	if err != nil {
		return receipt.ReceiptResponse{}, err
	}
	resp.Bonuses = bonuses
	resp.Deductions = deductions
	resp.NetPay = receipt.Net(resp.WorkedPay, resp.Consumption, s.payroll.ConsumptionDiscount, bonuses, deductions)

	return resp, nil
}

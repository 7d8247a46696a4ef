package extras

import (
	"context"

	"github.com/retailops/turnos-backend/internal/domain/employee"
	"github.com/retailops/turnos-backend/internal/domain/extras"
)

type ExtrasServiceImpl struct {
	extrasRepo   extras.ExtrasRepository
	employeeRepo employee.EmployeeRepository
}

func NewExtrasService(extrasRepo extras.ExtrasRepository, employeeRepo employee.EmployeeRepository) extras.ExtrasService {
	return &ExtrasServiceImpl{
		extrasRepo:   extrasRepo,
		employeeRepo: employeeRepo,
	}
}

func (s *ExtrasServiceImpl) Create(ctx context.Context, req extras.CreateExtraRequest) (extras.ExtraResponse, error) {
	if err := req.Validate(); err != nil {
		return extras.ExtraResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return extras.ExtraResponse{}, err
	}

	created, err := s.extrasRepo.Create(ctx, extras.Payment{
		EmployeeID:   emp.ID,
		EmployeeName: emp.FullName(),
		Year:         req.Year,
		Month:        req.Month,
		Category:     req.Category,
		Amount:       req.Amount,
		Detail:       req.Detail,
		Kind:         extras.Kind(req.Kind),
	})
	if err != nil {
		return extras.ExtraResponse{}, err
	}

	return toResponse(created), nil
}

func (s *ExtrasServiceImpl) List(ctx context.Context, filter extras.ExtraFilter) ([]extras.ExtraResponse, error) {
	payments, err := s.extrasRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]extras.ExtraResponse, 0, len(payments))
	for _, payment := range payments {
		responses = append(responses, toResponse(payment))
	}
	return responses, nil
}

func (s *ExtrasServiceImpl) Delete(ctx context.Context, id string) error {
	return s.extrasRepo.Delete(ctx, id)
}

func toResponse(payment extras.Payment) extras.ExtraResponse {
	return extras.ExtraResponse{
		ID:           payment.ID,
		EmployeeID:   payment.EmployeeID,
		EmployeeName: payment.EmployeeName,
		Year:         payment.Year,
		Month:        payment.Month,
		Category:     payment.Category,
		Amount:       payment.Amount,
		Detail:       payment.Detail,
		Kind:         int(payment.Kind),
	}
}

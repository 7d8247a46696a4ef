package shift

import (
	"context"

	"github.com/retailops/turnos-backend/internal/domain/shift"
)

type ShiftServiceImpl struct {
	shiftRepo shift.ShiftRepository
}

func NewShiftService(shiftRepo shift.ShiftRepository) shift.ShiftService {
	return &ShiftServiceImpl{shiftRepo: shiftRepo}
}

func (s *ShiftServiceImpl) Create(ctx context.Context, req shift.CreateShiftRequest) (shift.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.ShiftResponse{}, err
	}

	created, err := s.shiftRepo.Create(ctx, shift.Definition{
		Name:          req.Name,
		StartHour:     req.StartHour,
		EndHour:       req.EndHour,
		DurationHours: req.DurationHours,
	})
	if err != nil {
		return shift.ShiftResponse{}, err
	}

	return toResponse(created), nil
}

func (s *ShiftServiceImpl) GetByID(ctx context.Context, id string) (shift.ShiftResponse, error) {
	def, err := s.shiftRepo.GetByID(ctx, id)
	if err != nil {
		return shift.ShiftResponse{}, err
	}
	return toResponse(def), nil
}

func (s *ShiftServiceImpl) List(ctx context.Context) ([]shift.ShiftResponse, error) {
	defs, err := s.shiftRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]shift.ShiftResponse, 0, len(defs))
	for _, def := range defs {
		responses = append(responses, toResponse(def))
	}
	return responses, nil
}

func (s *ShiftServiceImpl) Update(ctx context.Context, req shift.UpdateShiftRequest) (shift.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.ShiftResponse{}, err
	}

	def, err := s.shiftRepo.GetByID(ctx, req.ID)
	if err != nil {
		return shift.ShiftResponse{}, err
	}

	def.Name = req.Name
	def.StartHour = req.StartHour
	def.EndHour = req.EndHour
	def.DurationHours = req.DurationHours

	if err := s.shiftRepo.Update(ctx, def); err != nil {
		return shift.ShiftResponse{}, err
	}

	return toResponse(def), nil
}

func (s *ShiftServiceImpl) Delete(ctx context.Context, id string) error {
	return s.shiftRepo.Delete(ctx, id)
}

func toResponse(def shift.Definition) shift.ShiftResponse {
	return shift.ShiftResponse{
		ID:            def.ID,
		Name:          def.Name,
		StartHour:     def.StartHour,
		EndHour:       def.EndHour,
		DurationHours: def.DurationHours,
	}
}

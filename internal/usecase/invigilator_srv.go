package usecase

import (
	"context"
	"fmt"
	"time"

	"exam-seating/internal/data/entity"
	"exam-seating/internal/data/repository"
	"exam-seating/internal/dto/request"
	"exam-seating/internal/dto/response"
	"exam-seating/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type InvigilatorService interface {
	List(ctx context.Context) ([]*response.InvigilatorResponse, error)
	Create(ctx context.Context, req *request.CreateInvigilatorRequest) (*response.InvigilatorResponse, error)
	Delete(ctx context.Context, id string) error
}

type invigilatorService struct {
	invigilators repository.InvigilatorRepository
	log          *zap.Logger
}

func NewInvigilatorService(invigilators repository.InvigilatorRepository, log *zap.Logger) InvigilatorService {
	return &invigilatorService{
		invigilators: invigilators,
		log:          log.With(zap.String("service", "invigilator")),
	}
}

func (s *invigilatorService) List(ctx context.Context) ([]*response.InvigilatorResponse, error) {
	invigilators, err := s.invigilators.FindAllActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("list invigilators: %w", err)
	}

	out := make([]*response.InvigilatorResponse, 0, len(invigilators))
	for _, inv := range invigilators {
		out = append(out, toInvigilatorResponse(inv))
	}
	return out, nil
}

func (s *invigilatorService) Create(ctx context.Context, req *request.CreateInvigilatorRequest) (*response.InvigilatorResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create invigilator validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	inv := &entity.Invigilator{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		Name:        req.Name,
		Department:  req.Department,
		Designation: req.Designation,
		Active:      true,
	}
	if err := s.invigilators.Create(ctx, inv); err != nil {
		return nil, fmt.Errorf("create invigilator: %w", err)
	}

	s.log.Info("Invigilator created",
		zap.String("invigilator_id", inv.ID.String()),
		zap.String("name", inv.Name),
	)

	return toInvigilatorResponse(inv), nil
}

func (s *invigilatorService) Delete(ctx context.Context, id string) error {
	invID, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("invalid invigilator ID format %s: %w", id, err)
	}
	if err := s.invigilators.Deactivate(ctx, invID); err != nil {
		return fmt.Errorf("delete invigilator: %w", err)
	}
	return nil
}

func toInvigilatorResponse(inv *entity.Invigilator) *response.InvigilatorResponse {
	return &response.InvigilatorResponse{
		ID:          inv.ID.String(),
		Name:        inv.Name,
		Department:  inv.Department,
		Designation: inv.Designation,
	}
}

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

type TimetableService interface {
	List(ctx context.Context, department, year, examType string) ([]*response.TimetableResponse, error)
	Create(ctx context.Context, req *request.TimetableRequest) (*response.TimetableResponse, error)
	Update(ctx context.Context, id string, req *request.TimetableRequest) (*response.TimetableResponse, error)
	Delete(ctx context.Context, id string) error
}

type timetableService struct {
	timetables repository.TimetableRepository
	log        *zap.Logger
}

func NewTimetableService(timetables repository.TimetableRepository, log *zap.Logger) TimetableService {
	return &timetableService{
		timetables: timetables,
		log:        log.With(zap.String("service", "timetable")),
	}
}

func (s *timetableService) List(ctx context.Context, department, year, examType string) ([]*response.TimetableResponse, error) {
	timetables, err := s.timetables.FindFiltered(ctx, department, year, examType)
	if err != nil {
		return nil, fmt.Errorf("list timetables: %w", err)
	}

	out := make([]*response.TimetableResponse, 0, len(timetables))
	for _, tt := range timetables {
		out = append(out, toTimetableResponse(tt))
	}
	return out, nil
}

func (s *timetableService) Create(ctx context.Context, req *request.TimetableRequest) (*response.TimetableResponse, error) {
	tt, err := s.buildEntity(uuid.New(), req)
	if err != nil {
		return nil, err
	}

	if err := s.timetables.Create(ctx, tt); err != nil {
		return nil, fmt.Errorf("create timetable entry: %w", err)
	}

	s.log.Info("Timetable entry created",
		zap.String("timetable_id", tt.ID.String()),
		zap.String("subject", tt.SubjectName),
	)

	return toTimetableResponse(tt), nil
}

func (s *timetableService) Update(ctx context.Context, id string, req *request.TimetableRequest) (*response.TimetableResponse, error) {
	ttID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid timetable ID format %s: %w", id, err)
	}

	tt, err := s.buildEntity(ttID, req)
	if err != nil {
		return nil, err
	}

	if err := s.timetables.Update(ctx, tt); err != nil {
		return nil, fmt.Errorf("update timetable entry: %w", err)
	}

	return toTimetableResponse(tt), nil
}

func (s *timetableService) Delete(ctx context.Context, id string) error {
	ttID, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("invalid timetable ID format %s: %w", id, err)
	}
	if err := s.timetables.Delete(ctx, ttID); err != nil {
		return fmt.Errorf("delete timetable entry: %w", err)
	}
	return nil
}

func (s *timetableService) buildEntity(id uuid.UUID, req *request.TimetableRequest) (*entity.Timetable, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Timetable validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	examDate, err := time.Parse("2006-01-02", req.ExamDate)
	if err != nil {
		return nil, fmt.Errorf("invalid exam date %s: %w", req.ExamDate, err)
	}

	return &entity.Timetable{
		Base: entity.Base{
			ID:        id,
			CreatedAt: time.Now(),
		},
		Department:  req.Department,
		Year:        req.Year,
		SubjectName: req.SubjectName,
		ExamDate:    examDate,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		ExamType:    req.ExamType,
	}, nil
}

func toTimetableResponse(tt *entity.Timetable) *response.TimetableResponse {
	return &response.TimetableResponse{
		ID:          tt.ID.String(),
		Department:  tt.Department,
		Year:        tt.Year,
		SubjectName: tt.SubjectName,
		ExamDate:    tt.ExamDate.Format("2006-01-02"),
		StartTime:   tt.StartTime,
		EndTime:     tt.EndTime,
		ExamType:    tt.ExamType,
	}
}

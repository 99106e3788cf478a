package usecase

import (
	"context"
	"fmt"

	"exam-seating/internal/data/entity"
	"exam-seating/internal/data/repository"
	"exam-seating/internal/dto/request"
	"exam-seating/internal/dto/response"
	"exam-seating/pkg/utils"

	"go.uber.org/zap"
)

type ClassroomService interface {
	List(ctx context.Context) ([]*response.ClassroomResponse, error)
	Create(ctx context.Context, req *request.CreateClassroomRequest) (*response.ClassroomResponse, error)
	Delete(ctx context.Context, roomNo string) error
}

type classroomService struct {
	rooms repository.ClassroomRepository
	log   *zap.Logger
}

func NewClassroomService(rooms repository.ClassroomRepository, log *zap.Logger) ClassroomService {
	return &classroomService{
		rooms: rooms,
		log:   log.With(zap.String("service", "classroom")),
	}
}

func (s *classroomService) List(ctx context.Context) ([]*response.ClassroomResponse, error) {
	rooms, err := s.rooms.FindAllActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("list classrooms: %w", err)
	}

	out := make([]*response.ClassroomResponse, 0, len(rooms))
	for _, room := range rooms {
		out = append(out, toClassroomResponse(room))
	}
	return out, nil
}

func (s *classroomService) Create(ctx context.Context, req *request.CreateClassroomRequest) (*response.ClassroomResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create classroom validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	room := &entity.Classroom{
		RoomNo:    req.RoomNo,
		BlockName: req.BlockName,
		FloorName: req.FloorName,
		Capacity:  req.Capacity,
		Active:    true,
	}
	if err := s.rooms.Upsert(ctx, room); err != nil {
		return nil, fmt.Errorf("create classroom: %w", err)
	}

	s.log.Info("Classroom saved",
		zap.String("room_no", room.RoomNo),
		zap.Int("capacity", room.Capacity),
	)

	return toClassroomResponse(room), nil
}

func (s *classroomService) Delete(ctx context.Context, roomNo string) error {
	if err := s.rooms.Deactivate(ctx, roomNo); err != nil {
		return fmt.Errorf("delete classroom: %w", err)
	}
	return nil
}

func toClassroomResponse(room *entity.Classroom) *response.ClassroomResponse {
	return &response.ClassroomResponse{
		RoomNo:    room.RoomNo,
		BlockName: room.BlockName,
		FloorName: room.FloorName,
		Capacity:  room.Capacity,
	}
}

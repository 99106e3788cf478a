package usecase

import (
	"exam-seating/internal/data/repository"
	"exam-seating/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth        AuthService
	Student     StudentService
	Classroom   ClassroomService
	Invigilator InvigilatorService
	Timetable   TimetableService
	Seating     SeatingService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:        NewAuthService(repo, config, log),
		Student:     NewStudentService(repo, log),
		Classroom:   NewClassroomService(repo.Classroom, log),
		Invigilator: NewInvigilatorService(repo.Invigilator, log),
		Timetable:   NewTimetableService(repo.Timetable, log),
		Seating:     NewSeatingService(repo, config, log),
	}
}

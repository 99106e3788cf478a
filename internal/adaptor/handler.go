package adaptor

import (
	"errors"
	"net/http"
	"strings"

	"exam-seating/internal/seating"
	"exam-seating/internal/usecase"
	"exam-seating/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth        *AuthHandler
	Student     *StudentHandler
	Classroom   *ClassroomHandler
	Invigilator *InvigilatorHandler
	Timetable   *TimetableHandler
	Seating     *SeatingHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:        NewAuthHandler(service.Auth, log),
		Student:     NewStudentHandler(service.Student, log),
		Classroom:   NewClassroomHandler(service.Classroom, log),
		Invigilator: NewInvigilatorHandler(service.Invigilator, log),
		Timetable:   NewTimetableHandler(service.Timetable, log),
		Seating:     NewSeatingHandler(service.Seating, log),
	}
}

// serviceError maps service layer failures onto HTTP responses. Engine
// configuration errors are client mistakes, everything unrecognised is a 500.
func serviceError(log *zap.Logger, w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case errors.Is(err, seating.ErrNoRooms),
		errors.Is(err, seating.ErrNoStudents),
		errors.Is(err, seating.ErrSingleBranch),
		errors.Is(err, seating.ErrExamType):
		log.Warn(operation+" rejected",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, errMsg, nil)

	case strings.Contains(errMsg, "not found"):
		log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "validation failed"):
		log.Warn(operation+" validation failed",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, errMsg, nil)

	case strings.Contains(errMsg, "invalid"):
		log.Warn("Invalid input for "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, errMsg, nil)

	default:
		log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}

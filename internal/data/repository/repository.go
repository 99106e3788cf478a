package repository

import (
	"exam-seating/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	Admin       AdminRepository
	Student     StudentRepository
	Classroom   ClassroomRepository
	Invigilator InvigilatorRepository
	Timetable   TimetableRepository
	Seating     SeatingRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Admin:       NewAdminRepository(db, log),
		Student:     NewStudentRepository(db, log),
		Classroom:   NewClassroomRepository(db, log),
		Invigilator: NewInvigilatorRepository(db, log),
		Timetable:   NewTimetableRepository(db, log),
		Seating:     NewSeatingRepository(db, log),
	}
}

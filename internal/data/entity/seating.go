package entity

import "github.com/google/uuid"

// SeatingRecord is one persisted non-empty seat of a batch. Empty seats are
// never stored; readers rebuild them from the room capacity's label sequence
// minus the occupied labels.
type SeatingRecord struct {
	Base
	BatchID      uuid.UUID  `db:"batch_id"`
	ExamType     string     `db:"exam_type"`
	Year         string     `db:"year"`
	RoomNo       string     `db:"room_no"`
	SeatLabel    string     `db:"seat_label"`
	StudentOneID uuid.UUID  `db:"student_one_id"`
	StudentTwoID *uuid.UUID `db:"student_two_id"`
}

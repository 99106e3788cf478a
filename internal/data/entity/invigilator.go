package entity

import "github.com/google/uuid"

type Invigilator struct {
	Base
	Name        string `db:"name"`
	Department  string `db:"department"`
	Designation string `db:"designation"`
	Active      bool   `db:"active"`
}

// RoomInvigilator links one invigilator to one room within one batch.
type RoomInvigilator struct {
	Base
	BatchID       uuid.UUID `db:"batch_id"`
	RoomNo        string    `db:"room_no"`
	InvigilatorID uuid.UUID `db:"invigilator_id"`
}

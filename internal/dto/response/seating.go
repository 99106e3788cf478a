package response

// SeatOccupantResponse is one student rendered into a seat.
type SeatOccupantResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	RollNo string `json:"roll_no"`
	Branch string `json:"branch"`
	Year   string `json:"year"`
}

// SeatResponse always carries a label; occupants are nil for reconstructed
// empty seats.
type SeatResponse struct {
	SeatLabel  string                `json:"seat_label"`
	StudentOne *SeatOccupantResponse `json:"student_one"`
	StudentTwo *SeatOccupantResponse `json:"student_two"`
}

type RoomSeatingResponse struct {
	RoomNo       string                `json:"room_no"`
	BlockName    string                `json:"block_name"`
	FloorName    string                `json:"floor_name"`
	Capacity     int                   `json:"capacity"`
	Invigilators []InvigilatorResponse `json:"invigilators"`
	Seats        []SeatResponse        `json:"seats"`
}

type BatchSeatingResponse struct {
	BatchID  string                `json:"batch_id"`
	ExamType string                `json:"exam_type"`
	Rooms    []RoomSeatingResponse `json:"rooms"`
}

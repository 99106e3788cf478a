package entity

// Classroom is keyed by room number, not a surrogate id. Block and floor are
// display-only; the seating engine ignores them.
type Classroom struct {
	RoomNo    string `db:"room_no"`
	BlockName string `db:"block_name"`
	FloorName string `db:"floor_name"`
	Capacity  int    `db:"capacity"`
	Active    bool   `db:"active"`
}

package response

type ClassroomResponse struct {
	RoomNo    string `json:"room_no"`
	BlockName string `json:"block_name"`
	FloorName string `json:"floor_name"`
	Capacity  int    `json:"capacity"`
}

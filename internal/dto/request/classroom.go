package request

type CreateClassroomRequest struct {
	RoomNo    string `json:"room_no" validate:"required"`
	BlockName string `json:"block_name" validate:"required"`
	FloorName string `json:"floor_name" validate:"required"`
	Capacity  int    `json:"capacity" validate:"required,min=1,max=500"`
}

package response

type GroupStatsResponse struct {
	Branch     string `json:"branch"`
	Year       string `json:"year"`
	Total      int    `json:"total"`
	Assigned   int    `json:"assigned"`
	Unassigned int    `json:"unassigned"`
}

type BatchStatsResponse struct {
	TotalStudents int                  `json:"total_students"`
	TotalSeats    int                  `json:"total_seats"`
	SeatsFilled   int                  `json:"seats_filled"`
	EmptySeats    int                  `json:"empty_seats"`
	PerGroup      []GroupStatsResponse `json:"per_group"`
}

type GenerateResponse struct {
	BatchID  string             `json:"batch_id"`
	ExamType string             `json:"exam_type"`
	Stats    BatchStatsResponse `json:"stats"`
}

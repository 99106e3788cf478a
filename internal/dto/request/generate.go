package request

// GroupSelection picks one (branch, year) cohort for a generation run.
type GroupSelection struct {
	Branch string `json:"branch" validate:"required"`
	Year   string `json:"year" validate:"required,oneof=1 2 3 4"`
}

// GenerateRequest triggers one seating batch. InvigilatorMap optionally pins
// invigilators to rooms; when absent, Invigilators (a flat id list) is
// distributed round-robin, one per room.
type GenerateRequest struct {
	ExamType       string              `json:"exam_type" validate:"required,oneof=MID SEMESTER"`
	Groups         []GroupSelection    `json:"groups" validate:"required,min=1,dive"`
	Rooms          []string            `json:"rooms" validate:"required,min=1,dive,required"`
	InvigilatorMap map[string][]string `json:"invigilator_map" validate:"omitempty,dive,dive,uuid4"`
	Invigilators   []string            `json:"invigilators" validate:"omitempty,dive,uuid4"`
}

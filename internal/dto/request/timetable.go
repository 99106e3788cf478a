package request

type TimetableRequest struct {
	Department  string `json:"department" validate:"required"`
	Year        string `json:"year" validate:"required,oneof=1 2 3 4"`
	SubjectName string `json:"subject_name" validate:"required"`
	ExamDate    string `json:"exam_date" validate:"required,datetime=2006-01-02"`
	StartTime   string `json:"start_time" validate:"required,datetime=15:04"`
	EndTime     string `json:"end_time" validate:"required,datetime=15:04"`
	ExamType    string `json:"exam_type" validate:"required,oneof=MID SEMESTER"`
}

package response

type TimetableResponse struct {
	ID          string `json:"id"`
	Department  string `json:"department"`
	Year        string `json:"year"`
	SubjectName string `json:"subject_name"`
	ExamDate    string `json:"exam_date"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	ExamType    string `json:"exam_type"`
}

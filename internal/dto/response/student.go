package response

type StudentResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	RollNo string `json:"roll_no"`
	Branch string `json:"branch"`
	Year   string `json:"year"`
	Status string `json:"status"`
}

type UploadResponse struct {
	Inserted int `json:"inserted"`
	Rejected int `json:"rejected"`
}

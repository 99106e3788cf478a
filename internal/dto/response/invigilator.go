package response

type InvigilatorResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Department  string `json:"department"`
	Designation string `json:"designation,omitempty"`
}

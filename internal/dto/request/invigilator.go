package request

type CreateInvigilatorRequest struct {
	Name        string `json:"name" validate:"required"`
	Department  string `json:"department" validate:"required"`
	Designation string `json:"designation"`
}

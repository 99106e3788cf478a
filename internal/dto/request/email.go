package request

type EmailSeatingRequest struct {
	Recipients []string `json:"recipients" validate:"required,min=1,dive,email"`
}

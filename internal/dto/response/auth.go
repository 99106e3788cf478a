package response

type AuthResponse struct {
	Email string `json:"email"`
	Token string `json:"token"`
}

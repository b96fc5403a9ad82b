package response_models

type AccountLoginResponse struct {
	Token string `json:"token"`
	Role  string `json:"role"`
}

type PersonResponse struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Handle    string `json:"handle"`
	Role      string `json:"role"`
	IsSpeaker bool   `json:"is_speaker"`
}

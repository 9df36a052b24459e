package dto

type AuthResponse struct {
	Token    string `json:"token"`
	UserID   string `json:"user_id"`
	Username string `json:"username,omitempty"`
	Email    string `json:"email,omitempty"`
}

type ProfileResponse struct {
	Email    string `json:"email"`
	Username string `json:"username"`
}

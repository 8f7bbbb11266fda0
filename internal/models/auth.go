package models

type LoginRequest struct {
	Email    string `json:"email" example:"admin@leasinprofessionnel.fr"`
	Password string `json:"password" example:"secret"`
}

type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresIn int    `json:"expires_in"` // seconds
}

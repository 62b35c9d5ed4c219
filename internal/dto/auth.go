package dto

// RegisterRequest defines the data needed to create a new user account.
// Password is capped at 72 bytes, the bcrypt input limit.
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=64"`
	Password string `json:"password" binding:"required,min=8,max=72"`
}

// RegisterResponse is returned after a successful registration.
type RegisterResponse struct {
	UserID string `json:"userID"`
}

// LoginRequest defines login credentials.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the opaque session token issued at login.
type LoginResponse struct {
	SessionID string `json:"sessionID"`
	UserID    string `json:"userID"`
	Username  string `json:"username"`
}

package dto

// LoginRequest carries the login credentials.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse returns the signed token plus the account payload the
// dashboard needs for role-dependent UI.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

package admin

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Message string `json:"message"`
	IsAdmin bool   `json:"isAdmin"`
	Name    string `json:"name"`
}

type ChangePasswordRequest struct {
	NewPassword string `json:"new_password" binding:"required,max=100"`
}

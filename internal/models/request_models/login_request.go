package request_models

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type SignUpRequest struct {
	DisplayName string `json:"display_name" binding:"required,min=2,max=50"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=6"`
}

// ElevateRequest carries the shared admin code a staff member enters to
// receive an admin token.
type ElevateRequest struct {
	AdminCode string `json:"admin_code" binding:"required"`
}

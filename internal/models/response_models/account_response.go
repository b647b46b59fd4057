package response_models

type AccountLoginResponse struct {
	Token string `json:"token"`
	Role  string `json:"role"`
}

type AccountResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	SoldierID string `json:"soldier_id,omitempty"`
}

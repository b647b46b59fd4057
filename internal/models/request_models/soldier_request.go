package request_models

type CreateSoldierRequest struct {
	FullName       string   `json:"full_name" binding:"required,min=2,max=100"`
	PersonalNumber string   `json:"personal_number" binding:"required"`
	Room           string   `json:"room"`
	Phone          string   `json:"phone"`
	Languages      []string `json:"languages"`
}

type UpdateSoldierRequest struct {
	FullName  string   `json:"full_name"`
	Room      string   `json:"room"`
	Phone     string   `json:"phone"`
	Languages []string `json:"languages"`
}

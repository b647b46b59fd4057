package response_models

type SoldierResponse struct {
	ID             string   `json:"id"`
	FullName       string   `json:"full_name"`
	PersonalNumber string   `json:"personal_number"`
	Room           string   `json:"room"`
	Phone          string   `json:"phone"`
	Languages      []string `json:"languages"`
	Active         bool     `json:"active"`
	LeftAt         int64    `json:"left_at,omitempty"`
}

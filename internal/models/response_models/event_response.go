package response_models

type EventResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Location    string `json:"location"`
	StartsAt    int64  `json:"starts_at"`
	CreatedBy   string `json:"created_by"`
}

package request_models

type CreateEventRequest struct {
	Title       string `json:"title" binding:"required,min=2,max=200"`
	Description string `json:"description"`
	Location    string `json:"location"`
	StartsAt    int64  `json:"starts_at" binding:"required"`
}

package db_models

type Event struct {
	BaseModel
	Title       string
	Description string
	Location    string
	StartsAt    int64 `gorm:"index"` // unix seconds
	CreatedBy   string
}

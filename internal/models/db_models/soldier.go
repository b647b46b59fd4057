package db_models

import "github.com/lib/pq"

type Soldier struct {
	BaseModel
	FullName       string `gorm:"index"`
	PersonalNumber string `gorm:"uniqueIndex"`
	Room           string
	Phone          string
	Languages      pq.StringArray `gorm:"type:text[]"`
	Active         bool           `gorm:"default:true"`
	LeftAt         int64          // unix seconds, zero while active
}

package db_models

type Account struct {
	BaseModel
	Name         string
	Email        string `gorm:"unique"`
	PasswordHash string
	Role         string `gorm:"default:resident"` // resident | admin
	// A resident account maps onto one soldier record; staff accounts
	// may have none.
	SoldierID *string `gorm:"index"`
}

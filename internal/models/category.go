package models

type Category struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"size:40;uniqueIndex;not null" json:"name"`
	Description string `gorm:"size:100" json:"description"`
}

package models

import "time"

type MenuItem struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Name        string  `gorm:"type:varchar(255);unique;not null" json:"name"`
	Price       float64 `gorm:"type:decimal(10,2);not null" json:"price"`
	Rating      int     `gorm:"default:5" json:"rating"`
	Description string  `gorm:"type:text" json:"description"`
	ImagePath   string  `gorm:"type:varchar(255)" json:"image_path"`
	Category    string  `gorm:"type:varchar(100)" json:"category"`
	Active      bool    `gorm:"not null;default:true" json:"active"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

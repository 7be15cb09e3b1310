package models

import "time"

type Order struct {
	ID         uint        `gorm:"primaryKey" json:"id"`
	UserID     uint        `gorm:"not null;index" json:"user_id"`
	User       User        `gorm:"foreignKey:UserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	MenuItemID uint        `gorm:"not null;index" json:"menu_item_id"`
	// No DB constraint on the item reference: menu-item delete is
	// unconditional and must not be blocked by in-flight orders.
	MenuItem   MenuItem    `gorm:"foreignKey:MenuItemID;references:ID;constraint:-" json:"menu_item"`
	Quantity   int         `gorm:"not null;default:1" json:"quantity"`
	Status     OrderStatus `gorm:"type:varchar(20);not null;default:'PENDING'" json:"status"`
	TotalPrice float64     `gorm:"type:decimal(10,2);not null" json:"total_price"`
	CreatedAt  time.Time   `gorm:"not null" json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
}

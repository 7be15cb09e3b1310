package models

import "time"

// SiteSetting is a key-value row read by the presentation layer for
// background images and logos.
type SiteSetting struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	SettingName  string `gorm:"type:varchar(100);unique;not null" json:"setting_name"`
	SettingValue string `gorm:"type:text" json:"setting_value"`
	Description  string `gorm:"type:text" json:"description"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// BackgroundSettingKeys is the fixed set of keys the admin panel may upsert
// and the page endpoints expose.
var BackgroundSettingKeys = []string{
	"main_background_image",
	"menu_background_image",
	"admin_panel_background_image",
	"cart_background_image",
	"order_history_background_image",
	"logo_image",
	"mini_logo_image",
}

func IsBackgroundSettingKey(name string) bool {
	for _, key := range BackgroundSettingKeys {
		if key == name {
			return true
		}
	}
	return false
}

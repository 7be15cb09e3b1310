package services

import (
	"gorm.io/gorm"

	"github.com/sushimonsters/restaurant-app/models"
)

// SettingsService is the read path over site settings used by the public page
// endpoints.
type SettingsService struct {
	DB *gorm.DB
}

func NewSettingsService(db *gorm.DB) *SettingsService {
	return &SettingsService{DB: db}
}

// GetBackgrounds returns the background/logo keys as a name -> value map.
// Missing keys are simply absent.
func (ss *SettingsService) GetBackgrounds() (map[string]string, error) {
	var settings []models.SiteSetting
	err := ss.DB.Where("setting_name IN ?", models.BackgroundSettingKeys).Find(&settings).Error
	if err != nil {
		return nil, err
	}

	backgrounds := make(map[string]string, len(settings))
	for _, setting := range settings {
		backgrounds[setting.SettingName] = setting.SettingValue
	}
	return backgrounds, nil
}

package database

import (
	"errors"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/sushimonsters/restaurant-app/models"
	"github.com/sushimonsters/restaurant-app/utils"
)

// Seed creates the bootstrap admin account and the site-setting rows if they
// are missing. Safe to run on every start.
func Seed(db *gorm.DB) error {
	if err := seedAdmin(db); err != nil {
		return err
	}
	return seedSettings(db)
}

func seedAdmin(db *gorm.DB) error {
	username := os.Getenv("ADMIN_USERNAME")
	password := os.Getenv("ADMIN_PASSWORD")
	if username == "" || password == "" {
		utils.InfoLogger.Println("ADMIN_USERNAME/ADMIN_PASSWORD not set, skipping admin seed")
		return nil
	}

	var existing models.User
	err := db.Where("username = ?", username).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := models.User{
		Username: username,
		Email:    os.Getenv("ADMIN_EMAIL"),
		Password: string(hashed),
		IsAdmin:  true,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	utils.InfoLogger.Printf("seeded admin account %q", username)
	return nil
}

var settingDescriptions = map[string]string{
	"main_background_image":          "Landing page background",
	"menu_background_image":          "Menu page background",
	"admin_panel_background_image":   "Admin panel background",
	"cart_background_image":          "Cart page background",
	"order_history_background_image": "Order history page background",
	"logo_image":                     "Site logo",
	"mini_logo_image":                "Navigation bar logo",
}

func seedSettings(db *gorm.DB) error {
	for _, key := range models.BackgroundSettingKeys {
		var existing models.SiteSetting
		err := db.Where("setting_name = ?", key).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		setting := models.SiteSetting{
			SettingName: key,
			Description: settingDescriptions[key],
		}
		if err := db.Create(&setting).Error; err != nil {
			return err
		}
	}
	return nil
}

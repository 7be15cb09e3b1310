package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/sushimonsters/restaurant-app/models"
	"github.com/sushimonsters/restaurant-app/utils"
)

// AdminService is the privileged mutation surface: menu CRUD, order status
// overrides, site settings and user administration. Every method checks the
// acting principal's admin capability before touching the store.
type AdminService struct {
	DB *gorm.DB
}

func NewAdminService(db *gorm.DB) *AdminService {
	return &AdminService{DB: db}
}

// MenuItemInput carries the admin-editable fields of a menu item.
type MenuItemInput struct {
	Name        string  `json:"name" form:"name"`
	Price       float64 `json:"price" form:"price"`
	Rating      int     `json:"rating" form:"rating"`
	Description string  `json:"description" form:"description"`
	ImagePath   string  `json:"image_path" form:"image_path"`
	Category    string  `json:"category" form:"category"`
	Active      bool    `json:"active" form:"active"`
}

func (as *AdminService) CreateMenuItem(admin models.Principal, in MenuItemInput) (models.MenuItem, error) {
	if !admin.IsAdmin {
		return models.MenuItem{}, models.ErrForbidden
	}
	if in.Name == "" || in.Price < 0 {
		return models.MenuItem{}, models.ErrInvalidInput
	}

	item := models.MenuItem{
		Name:        in.Name,
		Price:       in.Price,
		Rating:      in.Rating,
		Description: in.Description,
		ImagePath:   in.ImagePath,
		Category:    in.Category,
		Active:      in.Active,
	}
	if item.Rating == 0 {
		item.Rating = 5
	}
	if err := as.DB.Create(&item).Error; err != nil {
		return models.MenuItem{}, err
	}
	return item, nil
}

func (as *AdminService) UpdateMenuItem(admin models.Principal, itemID uint, in MenuItemInput) (models.MenuItem, error) {
	if !admin.IsAdmin {
		return models.MenuItem{}, models.ErrForbidden
	}
	if in.Name == "" || in.Price < 0 {
		return models.MenuItem{}, models.ErrInvalidInput
	}

	var item models.MenuItem
	err := as.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&item, itemID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.ErrNotFound
			}
			return err
		}
		item.Name = in.Name
		item.Price = in.Price
		item.Rating = in.Rating
		item.Description = in.Description
		item.ImagePath = in.ImagePath
		item.Category = in.Category
		item.Active = in.Active
		return tx.Save(&item).Error
	})
	return item, err
}

// DeleteMenuItem removes the item unconditionally. Orders referencing it keep
// their rows; there is no DB constraint on menu_item_id.
func (as *AdminService) DeleteMenuItem(admin models.Principal, itemID uint) error {
	if !admin.IsAdmin {
		return models.ErrForbidden
	}

	res := as.DB.Delete(&models.MenuItem{}, itemID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (as *AdminService) ListMenuItems(admin models.Principal) ([]models.MenuItem, error) {
	if !admin.IsAdmin {
		return nil, models.ErrForbidden
	}

	var items []models.MenuItem
	err := as.DB.Order("name asc").Find(&items).Error
	return items, err
}

// ListOrders returns every order of every user, newest first, with the user
// and menu item joined for the back-office table.
func (as *AdminService) ListOrders(admin models.Principal) ([]models.Order, error) {
	if !admin.IsAdmin {
		return nil, models.ErrForbidden
	}

	var orders []models.Order
	err := as.DB.Preload("User").Preload("MenuItem").
		Order("created_at desc").
		Find(&orders).Error
	return orders, err
}

// ForceSetStatus is the single entry point for admin status overrides. Unlike
// the customer-facing machine it applies no transition table: an admin may
// move any order from any state to any state, including out of COMPLETED.
// Every override is logged for auditability.
func (as *AdminService) ForceSetStatus(admin models.Principal, orderID uint, status models.OrderStatus) error {
	if !admin.IsAdmin {
		return models.ErrForbidden
	}
	if !status.Valid() {
		return models.ErrInvalidStatus
	}

	return as.DB.Transaction(func(tx *gorm.DB) error {
		var order models.Order
		if err := tx.First(&order, orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.ErrNotFound
			}
			return err
		}

		previous := order.Status
		order.Status = status
		if err := tx.Save(&order).Error; err != nil {
			return err
		}

		utils.InfoLogger.Printf("admin %d forced order %d status %s -> %s",
			admin.ID, orderID, previous, status)
		if previous.Terminal() && previous != status {
			utils.InfoLogger.Printf("admin %d reopened terminal order %d", admin.ID, orderID)
		}
		return nil
	})
}

// UpdateStatus validates and applies an admin status change.
func (as *AdminService) UpdateStatus(admin models.Principal, orderID uint, status models.OrderStatus) error {
	return as.ForceSetStatus(admin, orderID, status)
}

// CancelOrder forces an order to CANCELLED regardless of its current state.
func (as *AdminService) CancelOrder(admin models.Principal, orderID uint) error {
	return as.ForceSetStatus(admin, orderID, models.StatusCancelled)
}

// UpsertSettings writes the background/logo settings. Only the fixed key set
// is accepted; each key is independently created or updated.
func (as *AdminService) UpsertSettings(admin models.Principal, values map[string]string) error {
	if !admin.IsAdmin {
		return models.ErrForbidden
	}

	for name := range values {
		if !models.IsBackgroundSettingKey(name) {
			return models.ErrInvalidInput
		}
	}

	return as.DB.Transaction(func(tx *gorm.DB) error {
		for name, value := range values {
			var setting models.SiteSetting
			err := tx.Where("setting_name = ?", name).First(&setting).Error
			switch {
			case err == nil:
				setting.SettingValue = value
				if err := tx.Save(&setting).Error; err != nil {
					return err
				}
			case errors.Is(err, gorm.ErrRecordNotFound):
				setting = models.SiteSetting{SettingName: name, SettingValue: value}
				if err := tx.Create(&setting).Error; err != nil {
					return err
				}
			default:
				return err
			}
		}
		return nil
	})
}

func (as *AdminService) ListUsers(admin models.Principal) ([]models.User, error) {
	if !admin.IsAdmin {
		return nil, models.ErrForbidden
	}

	var users []models.User
	err := as.DB.Order("id asc").Find(&users).Error
	return users, err
}

// ToggleAdmin grants or revokes the admin capability. Admins cannot change
// their own flag.
func (as *AdminService) ToggleAdmin(admin models.Principal, targetID uint, grant bool) error {
	if !admin.IsAdmin {
		return models.ErrForbidden
	}
	if targetID == admin.ID {
		return models.ErrSelfModification
	}

	return as.DB.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, targetID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.ErrNotFound
			}
			return err
		}
		user.IsAdmin = grant
		return tx.Save(&user).Error
	})
}

// DeleteUser removes a user together with their orders and reservations in
// one atomic unit. Self-deletion is blocked.
func (as *AdminService) DeleteUser(admin models.Principal, targetID uint) error {
	if !admin.IsAdmin {
		return models.ErrForbidden
	}
	if targetID == admin.ID {
		return models.ErrSelfModification
	}

	return as.DB.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, targetID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.ErrNotFound
			}
			return err
		}

		if err := tx.Where("user_id = ?", targetID).Delete(&models.Order{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", targetID).Delete(&models.Reservation{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&user).Error; err != nil {
			return err
		}

		utils.InfoLogger.Printf("admin %d deleted user %d with orders and reservations", admin.ID, targetID)
		return nil
	})
}

// DashboardStats summarizes the back-office landing page counters.
type DashboardStats struct {
	TotalOrders     int64 `json:"total_orders"`
	PendingOrders   int64 `json:"pending_orders"`
	ActiveMenuItems int64 `json:"active_menu_items"`
}

func (as *AdminService) GetDashboardStats(admin models.Principal) (DashboardStats, error) {
	if !admin.IsAdmin {
		return DashboardStats{}, models.ErrForbidden
	}

	var stats DashboardStats
	if err := as.DB.Model(&models.Order{}).Count(&stats.TotalOrders).Error; err != nil {
		return DashboardStats{}, err
	}
	if err := as.DB.Model(&models.Order{}).
		Where("status = ?", models.StatusPending).
		Count(&stats.PendingOrders).Error; err != nil {
		return DashboardStats{}, err
	}
	if err := as.DB.Model(&models.MenuItem{}).
		Where("active = ?", true).
		Count(&stats.ActiveMenuItems).Error; err != nil {
		return DashboardStats{}, err
	}
	return stats, nil
}

package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/sushimonsters/restaurant-app/models"
	"github.com/sushimonsters/restaurant-app/utils"
)

// OrderService owns the order lifecycle for a single authenticated user:
// cart accumulation (PENDING rows), checkout and order history. Every
// operation runs in exactly one transaction; nothing is cached between
// requests.
type OrderService struct {
	DB *gorm.DB
}

func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{DB: db}
}

// Cart is the working set returned to the cart view.
type Cart struct {
	Items []models.Order `json:"items"`
	Total float64        `json:"total"`
}

// AddToCart merges quantity into the user's single PENDING row for the item,
// or creates one. The total is always recomputed from the current menu price,
// so a stale cart row catches up with a price change on its next mutation.
// Inactive items are still addable; the active flag only hides them from the
// catalog listing.
func (s *OrderService) AddToCart(user models.Principal, itemID uint, quantity int) (models.Order, error) {
	if quantity < 1 {
		return models.Order{}, models.ErrInvalidInput
	}

	var order models.Order
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var item models.MenuItem
		if err := tx.First(&item, itemID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.ErrNotFound
			}
			return err
		}

		err := tx.Where("user_id = ? AND menu_item_id = ? AND status = ?",
			user.ID, itemID, models.StatusPending).First(&order).Error
		switch {
		case err == nil:
			order.Quantity += quantity
			order.TotalPrice = item.Price * float64(order.Quantity)
			return tx.Save(&order).Error
		case errors.Is(err, gorm.ErrRecordNotFound):
			order = models.Order{
				UserID:     user.ID,
				MenuItemID: itemID,
				Quantity:   quantity,
				Status:     models.StatusPending,
				TotalPrice: item.Price * float64(quantity),
				CreatedAt:  time.Now(),
			}
			return tx.Create(&order).Error
		default:
			return err
		}
	})
	return order, err
}

// ViewCart returns the user's PENDING orders with menu items joined, plus the
// cart total.
func (s *OrderService) ViewCart(user models.Principal) (Cart, error) {
	var cart Cart
	err := s.DB.Preload("MenuItem").
		Where("user_id = ? AND status = ?", user.ID, models.StatusPending).
		Order("created_at asc").
		Find(&cart.Items).Error
	if err != nil {
		return Cart{}, err
	}

	for _, item := range cart.Items {
		cart.Total += item.TotalPrice
	}
	return cart, nil
}

// UpdateQuantity changes a cart row. Quantity zero removes the row. Rows that
// are missing, owned by someone else or already past PENDING all answer
// ErrNotFound so the response does not leak order state.
func (s *OrderService) UpdateQuantity(user models.Principal, orderID uint, quantity int) error {
	if quantity < 0 {
		return models.ErrInvalidInput
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		var order models.Order
		err := tx.Where("id = ? AND user_id = ? AND status = ?",
			orderID, user.ID, models.StatusPending).First(&order).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.ErrNotFound
			}
			return err
		}

		if quantity == 0 {
			return tx.Delete(&order).Error
		}

		var item models.MenuItem
		if err := tx.First(&item, order.MenuItemID).Error; err != nil {
			return err
		}

		order.Quantity = quantity
		order.TotalPrice = item.Price * float64(quantity)
		return tx.Save(&order).Error
	})
}

// Checkout confirms the whole cart in one batch: every PENDING order becomes
// CONFIRMED, all-or-nothing. An empty cart is a no-op success.
func (s *OrderService) Checkout(user models.Principal) (int64, error) {
	var confirmed int64
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Order{}).
			Where("user_id = ? AND status = ?", user.ID, models.StatusPending).
			Update("status", models.StatusConfirmed)
		if res.Error != nil {
			return res.Error
		}
		confirmed = res.RowsAffected
		return nil
	})
	if err != nil {
		return 0, err
	}

	if confirmed > 0 {
		utils.InfoLogger.Printf("user %d checked out %d order(s)", user.ID, confirmed)
	}
	return confirmed, nil
}

// Cancel removes a cart row. Only the owner may cancel, and only while the
// order is still PENDING; anything later belongs to the admin panel.
func (s *OrderService) Cancel(user models.Principal, orderID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ? AND user_id = ? AND status = ?",
			orderID, user.ID, models.StatusPending).Delete(&models.Order{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return models.ErrNotFound
		}
		return nil
	})
}

// OrderHistory returns all of the user's orders in every status, newest
// first, menu items joined.
func (s *OrderService) OrderHistory(user models.Principal) ([]models.Order, error) {
	var orders []models.Order
	err := s.DB.Preload("MenuItem").
		Where("user_id = ?", user.ID).
		Order("created_at desc").
		Find(&orders).Error
	return orders, err
}

package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sushimonsters/restaurant-app/middlewares"
	"github.com/sushimonsters/restaurant-app/models"
	"github.com/sushimonsters/restaurant-app/services"
	"github.com/sushimonsters/restaurant-app/utils"
)

// OrderController exposes the cart/order lifecycle to the authenticated
// customer.
type OrderController struct {
	orders   *services.OrderService
	settings *services.SettingsService
}

func NewOrderController(db *gorm.DB) *OrderController {
	return &OrderController{
		orders:   services.NewOrderService(db),
		settings: services.NewSettingsService(db),
	}
}

func pathID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		utils.RespondJSON(c, http.StatusBadRequest, "invalid_id", nil)
		return 0, false
	}
	return uint(id), true
}

// AddToCart merges the posted quantity into the user's pending order for the
// item.
func (oc *OrderController) AddToCart(c *gin.Context) {
	principal, ok := middlewares.CurrentPrincipal(c)
	if !ok {
		utils.RespondJSON(c, http.StatusUnauthorized, "login_required", nil)
		return
	}
	itemID, ok := pathID(c, "item_id")
	if !ok {
		return
	}

	quantity := 1
	if raw := c.PostForm("quantity"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			utils.RespondJSON(c, http.StatusBadRequest, "invalid_quantity", nil)
			return
		}
		quantity = parsed
	}

	order, err := oc.orders.AddToCart(principal, itemID, quantity)
	if err != nil {
		if errors.Is(err, models.ErrInvalidInput) {
			utils.RespondJSON(c, http.StatusBadRequest, "invalid_quantity", nil)
			return
		}
		utils.RespondServiceError(c, err, "dish_not_found")
		return
	}

	utils.RespondJSON(c, http.StatusOK, "dish_added", order)
}

// Cart returns the user's pending orders and cart total.
func (oc *OrderController) Cart(c *gin.Context) {
	principal, ok := middlewares.CurrentPrincipal(c)
	if !ok {
		utils.RespondJSON(c, http.StatusUnauthorized, "login_required", nil)
		return
	}

	cart, err := oc.orders.ViewCart(principal)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	backgrounds, err := oc.settings.GetBackgrounds()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "cart", gin.H{
		"cart_items":       cart.Items,
		"total":            cart.Total,
		"background_image": backgrounds["cart_background_image"],
		"language":         middlewares.CurrentLocale(c),
	})
}

// UpdateCart sets a cart row's quantity; zero removes the row.
func (oc *OrderController) UpdateCart(c *gin.Context) {
	principal, ok := middlewares.CurrentPrincipal(c)
	if !ok {
		utils.RespondJSON(c, http.StatusUnauthorized, "login_required", nil)
		return
	}
	orderID, ok := pathID(c, "order_id")
	if !ok {
		return
	}

	quantity, err := strconv.Atoi(c.PostForm("quantity"))
	if err != nil {
		utils.RespondJSON(c, http.StatusBadRequest, "invalid_quantity", nil)
		return
	}

	if err := oc.orders.UpdateQuantity(principal, orderID, quantity); err != nil {
		utils.RespondServiceError(c, err, "order_update_error")
		return
	}

	key := "quantity_updated"
	if quantity == 0 {
		key = "item_removed_from_cart"
	}
	utils.RespondJSON(c, http.StatusOK, key, nil)
}

// Checkout confirms everything in the cart. An empty cart still answers
// success.
func (oc *OrderController) Checkout(c *gin.Context) {
	principal, ok := middlewares.CurrentPrincipal(c)
	if !ok {
		utils.RespondJSON(c, http.StatusUnauthorized, "login_required", nil)
		return
	}

	confirmed, err := oc.orders.Checkout(principal)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "order_placed", gin.H{
		"confirmed": confirmed,
	})
}

// CancelOrder removes one of the user's pending orders.
func (oc *OrderController) CancelOrder(c *gin.Context) {
	principal, ok := middlewares.CurrentPrincipal(c)
	if !ok {
		utils.RespondJSON(c, http.StatusUnauthorized, "login_required", nil)
		return
	}
	orderID, ok := pathID(c, "order_id")
	if !ok {
		return
	}

	if err := oc.orders.Cancel(principal, orderID); err != nil {
		utils.RespondServiceError(c, err, "order_cancel_error")
		return
	}

	utils.RespondJSON(c, http.StatusOK, "order_cancelled", nil)
}

// OrderHistory lists the user's orders across all statuses, newest first.
func (oc *OrderController) OrderHistory(c *gin.Context) {
	principal, ok := middlewares.CurrentPrincipal(c)
	if !ok {
		utils.RespondJSON(c, http.StatusUnauthorized, "login_required", nil)
		return
	}

	orders, err := oc.orders.OrderHistory(principal)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	backgrounds, err := oc.settings.GetBackgrounds()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "order_history", gin.H{
		"orders":           orders,
		"background_image": backgrounds["order_history_background_image"],
		"language":         middlewares.CurrentLocale(c),
	})
}

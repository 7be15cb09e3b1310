package controllers

import (
	"bytes"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sushimonsters/restaurant-app/middlewares"
	"github.com/sushimonsters/restaurant-app/models"
	"github.com/sushimonsters/restaurant-app/services"
	"github.com/sushimonsters/restaurant-app/utils"
)

// AdminController is the HTTP surface of the back office. The capability
// check itself happens inside AdminService; this layer only translates errors
// into flash keys.
type AdminController struct {
	admin    *services.AdminService
	reports  *services.ReportService
	settings *services.SettingsService
}

func NewAdminController(db *gorm.DB) *AdminController {
	return &AdminController{
		admin:    services.NewAdminService(db),
		reports:  services.NewReportService(db),
		settings: services.NewSettingsService(db),
	}
}

// respondAdminError keeps the capability and self-modification flash keys
// uniform across all admin endpoints.
func respondAdminError(c *gin.Context, err error, fallbackKey string) {
	switch {
	case errors.Is(err, models.ErrSelfModification):
		utils.RespondJSON(c, http.StatusForbidden, "self_modification_error", nil)
	case errors.Is(err, models.ErrForbidden):
		utils.RespondJSON(c, http.StatusForbidden, "access_denied", nil)
	default:
		utils.RespondServiceError(c, err, fallbackKey)
	}
}

func adminPrincipal(c *gin.Context) (models.Principal, bool) {
	principal, ok := middlewares.CurrentPrincipal(c)
	if !ok {
		utils.RespondJSON(c, http.StatusUnauthorized, "login_required", nil)
		return models.Principal{}, false
	}
	return principal, true
}

// Dashboard returns the back-office landing counters.
func (ac *AdminController) Dashboard(c *gin.Context) {
	principal, ok := adminPrincipal(c)
	if !ok {
		return
	}

	stats, err := ac.admin.GetDashboardStats(principal)
	if err != nil {
		respondAdminError(c, err, "dashboard_error")
		return
	}

	backgrounds, err := ac.settings.GetBackgrounds()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "dashboard", gin.H{
		"stats":            stats,
		"background_image": backgrounds["admin_panel_background_image"],
	})
}

// ListMenu returns every menu item, active or not.
func (ac *AdminController) ListMenu(c *gin.Context) {
	principal, ok := adminPrincipal(c)
	if !ok {
		return
	}

	items, err := ac.admin.ListMenuItems(principal)
	if err != nil {
		respondAdminError(c, err, "dish_list_error")
		return
	}
	utils.RespondJSON(c, http.StatusOK, "menu_items", items)
}

func bindMenuItemInput(c *gin.Context) (services.MenuItemInput, bool) {
	var in services.MenuItemInput
	if err := c.ShouldBind(&in); err != nil {
		utils.RespondJSON(c, http.StatusBadRequest, "invalid_dish_data", nil)
		return in, false
	}
	return in, true
}

func (ac *AdminController) CreateMenuItem(c *gin.Context) {
	principal, ok := adminPrincipal(c)
	if !ok {
		return
	}
	in, ok := bindMenuItemInput(c)
	if !ok {
		return
	}

	item, err := ac.admin.CreateMenuItem(principal, in)
	if err != nil {
		respondAdminError(c, err, "invalid_dish_data")
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "dish_added", item)
}

func (ac *AdminController) UpdateMenuItem(c *gin.Context) {
	principal, ok := adminPrincipal(c)
	if !ok {
		return
	}
	itemID, ok := pathID(c, "item_id")
	if !ok {
		return
	}
	in, ok := bindMenuItemInput(c)
	if !ok {
		return
	}

	item, err := ac.admin.UpdateMenuItem(principal, itemID, in)
	if err != nil {
		respondAdminError(c, err, "dish_not_found")
		return
	}
	utils.RespondJSON(c, http.StatusOK, "dish_updated", item)
}

func (ac *AdminController) DeleteMenuItem(c *gin.Context) {
	principal, ok := adminPrincipal(c)
	if !ok {
		return
	}
	itemID, ok := pathID(c, "item_id")
	if !ok {
		return
	}

	if err := ac.admin.DeleteMenuItem(principal, itemID); err != nil {
		respondAdminError(c, err, "dish_not_found")
		return
	}
	utils.RespondJSON(c, http.StatusOK, "dish_deleted", nil)
}

// ListOrders shows every order of every user, newest first.
func (ac *AdminController) ListOrders(c *gin.Context) {
	principal, ok := adminPrincipal(c)
	if !ok {
		return
	}

	orders, err := ac.admin.ListOrders(principal)
	if err != nil {
		respondAdminError(c, err, "order_list_error")
		return
	}
	utils.RespondJSON(c, http.StatusOK, "orders", orders)
}

// UpdateOrderStatus force-sets an order status; any of the seven values is
// accepted from any current state.
func (ac *AdminController) UpdateOrderStatus(c *gin.Context) {
	principal, ok := adminPrincipal(c)
	if !ok {
		return
	}
	orderID, ok := pathID(c, "order_id")
	if !ok {
		return
	}

	status := models.OrderStatus(c.PostForm("status"))
	if err := ac.admin.UpdateStatus(principal, orderID, status); err != nil {
		respondAdminError(c, err, "status_update_error")
		return
	}
	utils.RespondJSON(c, http.StatusOK, "order_status_updated", nil)
}

// CancelOrder forces an order to CANCELLED.
func (ac *AdminController) CancelOrder(c *gin.Context) {
	principal, ok := adminPrincipal(c)
	if !ok {
		return
	}
	orderID, ok := pathID(c, "order_id")
	if !ok {
		return
	}

	if err := ac.admin.CancelOrder(principal, orderID); err != nil {
		respondAdminError(c, err, "status_update_error")
		return
	}
	utils.RespondJSON(c, http.StatusOK, "order_cancelled_by_admin", nil)
}

// UpdateSettings bulk-upserts the background/logo keys.
func (ac *AdminController) UpdateSettings(c *gin.Context) {
	principal, ok := adminPrincipal(c)
	if !ok {
		return
	}

	values := make(map[string]string)
	for _, key := range models.BackgroundSettingKeys {
		if value, exists := c.GetPostForm(key); exists {
			values[key] = value
		}
	}
	if len(values) == 0 {
		utils.RespondJSON(c, http.StatusBadRequest, "settings_empty", nil)
		return
	}

	if err := ac.admin.UpsertSettings(principal, values); err != nil {
		respondAdminError(c, err, "settings_error")
		return
	}
	utils.RespondJSON(c, http.StatusOK, "settings_saved", nil)
}

// ListUsers shows all registered users.
func (ac *AdminController) ListUsers(c *gin.Context) {
	principal, ok := adminPrincipal(c)
	if !ok {
		return
	}

	users, err := ac.admin.ListUsers(principal)
	if err != nil {
		respondAdminError(c, err, "user_list_error")
		return
	}
	utils.RespondJSON(c, http.StatusOK, "users", users)
}

// ToggleAdmin grants or revokes another user's admin flag.
func (ac *AdminController) ToggleAdmin(c *gin.Context) {
	principal, ok := adminPrincipal(c)
	if !ok {
		return
	}
	targetID, ok := pathID(c, "user_id")
	if !ok {
		return
	}

	grant := c.PostForm("grant") == "true"
	if err := ac.admin.ToggleAdmin(principal, targetID, grant); err != nil {
		respondAdminError(c, err, "user_not_found")
		return
	}
	utils.RespondJSON(c, http.StatusOK, "admin_rights_updated", nil)
}

// DeleteUser removes a user and cascades their orders and reservations.
func (ac *AdminController) DeleteUser(c *gin.Context) {
	principal, ok := adminPrincipal(c)
	if !ok {
		return
	}
	targetID, ok := pathID(c, "user_id")
	if !ok {
		return
	}

	if err := ac.admin.DeleteUser(principal, targetID); err != nil {
		respondAdminError(c, err, "user_not_found")
		return
	}
	utils.RespondJSON(c, http.StatusOK, "user_deleted", nil)
}

// ExportOrdersPDF streams the order report as a PDF download.
func (ac *AdminController) ExportOrdersPDF(c *gin.Context) {
	principal, ok := adminPrincipal(c)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := ac.reports.ExportOrdersPDF(principal, &buf); err != nil {
		respondAdminError(c, err, "report_error")
		return
	}

	c.Header("Content-Disposition", "attachment; filename=orders-report.pdf")
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}

// RevenueChart streams the daily revenue chart as a PNG.
func (ac *AdminController) RevenueChart(c *gin.Context) {
	principal, ok := adminPrincipal(c)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := ac.reports.RenderRevenueChart(principal, &buf); err != nil {
		respondAdminError(c, err, "report_no_data")
		return
	}

	c.Data(http.StatusOK, "image/png", buf.Bytes())
}

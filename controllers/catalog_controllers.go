package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sushimonsters/restaurant-app/middlewares"
	"github.com/sushimonsters/restaurant-app/services"
	"github.com/sushimonsters/restaurant-app/utils"
)

type CatalogController struct {
	catalog  *services.CatalogService
	settings *services.SettingsService
}

func NewCatalogController(db *gorm.DB) *CatalogController {
	return &CatalogController{
		catalog:  services.NewCatalogService(db),
		settings: services.NewSettingsService(db),
	}
}

// Index returns the landing page data: backgrounds, logo, locale.
func (cc *CatalogController) Index(c *gin.Context) {
	backgrounds, err := cc.settings.GetBackgrounds()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "index", gin.H{
		"backgrounds": backgrounds,
		"language":    middlewares.CurrentLocale(c),
	})
}

// Menu lists the active catalog grouped data: items, their categories and the
// page background.
func (cc *CatalogController) Menu(c *gin.Context) {
	items, categories, err := cc.catalog.ListActive()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	backgrounds, err := cc.settings.GetBackgrounds()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "menu", gin.H{
		"menu_items":       items,
		"categories":       categories,
		"background_image": backgrounds["menu_background_image"],
		"language":         middlewares.CurrentLocale(c),
	})
}

package services

import (
	"sort"

	"gorm.io/gorm"

	"github.com/sushimonsters/restaurant-app/models"
)

// CatalogService exposes the set of currently orderable menu items.
type CatalogService struct {
	DB *gorm.DB
}

func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{DB: db}
}

// ListActive returns every active menu item together with the distinct,
// lexicographically sorted set of non-empty categories among them.
func (cs *CatalogService) ListActive() ([]models.MenuItem, []string, error) {
	var items []models.MenuItem
	if err := cs.DB.Where("active = ?", true).Order("name asc").Find(&items).Error; err != nil {
		return nil, nil, err
	}

	seen := make(map[string]bool)
	var categories []string
	for _, item := range items {
		if item.Category != "" && !seen[item.Category] {
			seen[item.Category] = true
			categories = append(categories, item.Category)
		}
	}
	sort.Strings(categories)

	return items, categories, nil
}

package services_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/sushimonsters/restaurant-app/models"
	"github.com/sushimonsters/restaurant-app/services"
	"github.com/sushimonsters/restaurant-app/utils"
)

func TestMain(m *testing.M) {
	utils.InitLogger()
	os.Exit(m.Run())
}

// setupTestDB migrates all models into an in-memory SQLite database.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	err = db.AutoMigrate(
		&models.User{},
		&models.MenuItem{},
		&models.Order{},
		&models.Reservation{},
		&models.SiteSetting{},
	)
	if err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func seedUser(t *testing.T, db *gorm.DB, username string, isAdmin bool) models.Principal {
	t.Helper()
	user := models.User{
		Username: username,
		Email:    username + "@example.com",
		Password: "irrelevant",
		IsAdmin:  isAdmin,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	return models.Principal{ID: user.ID, IsAdmin: isAdmin}
}

func seedMenuItem(t *testing.T, db *gorm.DB, name string, price float64) models.MenuItem {
	t.Helper()
	item := models.MenuItem{Name: name, Price: price, Category: "Rolls", Active: true}
	if err := db.Create(&item).Error; err != nil {
		t.Fatalf("failed to seed menu item: %v", err)
	}
	return item
}

func TestAddToCartMergesQuantities(t *testing.T) {
	db := setupTestDB(t)
	svc := services.NewOrderService(db)
	alice := seedUser(t, db, "alice", false)
	tea := seedMenuItem(t, db, "Tea", 50)

	_, err := svc.AddToCart(alice, tea.ID, 2)
	assert.NoError(t, err)
	_, err = svc.AddToCart(alice, tea.ID, 3)
	assert.NoError(t, err)

	var orders []models.Order
	db.Where("user_id = ? AND status = ?", alice.ID, models.StatusPending).Find(&orders)
	assert.Len(t, orders, 1)
	assert.Equal(t, 5, orders[0].Quantity)
	assert.Equal(t, 250.0, orders[0].TotalPrice)
}

func TestAddToCartRecomputesFromCurrentPrice(t *testing.T) {
	db := setupTestDB(t)
	svc := services.NewOrderService(db)
	alice := seedUser(t, db, "alice", false)
	tea := seedMenuItem(t, db, "Tea", 50)

	_, err := svc.AddToCart(alice, tea.ID, 2)
	assert.NoError(t, err)

	// Price change takes effect on the next cart mutation.
	db.Model(&models.MenuItem{}).Where("id = ?", tea.ID).Update("price", 60)

	_, err = svc.AddToCart(alice, tea.ID, 1)
	assert.NoError(t, err)

	var order models.Order
	db.Where("user_id = ?", alice.ID).First(&order)
	assert.Equal(t, 3, order.Quantity)
	assert.Equal(t, 180.0, order.TotalPrice)
}

func TestAddToCartUnknownItem(t *testing.T) {
	db := setupTestDB(t)
	svc := services.NewOrderService(db)
	alice := seedUser(t, db, "alice", false)

	_, err := svc.AddToCart(alice, 999, 1)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestAddToCartAcceptsInactiveItem(t *testing.T) {
	db := setupTestDB(t)
	svc := services.NewOrderService(db)
	alice := seedUser(t, db, "alice", false)
	item := seedMenuItem(t, db, "Seasonal roll", 120)
	db.Model(&models.MenuItem{}).Where("id = ?", item.ID).Update("active", false)

	// The active flag only hides items from the catalog listing.
	order, err := svc.AddToCart(alice, item.ID, 1)
	assert.NoError(t, err)
	assert.Equal(t, models.StatusPending, order.Status)
}

func TestUpdateQuantityZeroRemovesRow(t *testing.T) {
	db := setupTestDB(t)
	svc := services.NewOrderService(db)
	alice := seedUser(t, db, "alice", false)
	tea := seedMenuItem(t, db, "Tea", 50)

	order, err := svc.AddToCart(alice, tea.ID, 2)
	assert.NoError(t, err)

	assert.NoError(t, svc.UpdateQuantity(alice, order.ID, 0))

	cart, err := svc.ViewCart(alice)
	assert.NoError(t, err)
	assert.Empty(t, cart.Items)
	assert.Equal(t, 0.0, cart.Total)
}

func TestUpdateQuantityRecomputesTotal(t *testing.T) {
	db := setupTestDB(t)
	svc := services.NewOrderService(db)
	alice := seedUser(t, db, "alice", false)
	tea := seedMenuItem(t, db, "Tea", 50)

	order, err := svc.AddToCart(alice, tea.ID, 2)
	assert.NoError(t, err)

	assert.NoError(t, svc.UpdateQuantity(alice, order.ID, 4))

	var updated models.Order
	db.First(&updated, order.ID)
	assert.Equal(t, 4, updated.Quantity)
	assert.Equal(t, 200.0, updated.TotalPrice)
}

func TestUpdateQuantityRejectsForeignAndConfirmedOrders(t *testing.T) {
	db := setupTestDB(t)
	svc := services.NewOrderService(db)
	alice := seedUser(t, db, "alice", false)
	bob := seedUser(t, db, "bob", false)
	tea := seedMenuItem(t, db, "Tea", 50)

	order, err := svc.AddToCart(alice, tea.ID, 2)
	assert.NoError(t, err)

	assert.ErrorIs(t, svc.UpdateQuantity(bob, order.ID, 3), models.ErrNotFound)

	_, err = svc.Checkout(alice)
	assert.NoError(t, err)
	assert.ErrorIs(t, svc.UpdateQuantity(alice, order.ID, 3), models.ErrNotFound)
}

func TestCheckoutConfirmsWholeCart(t *testing.T) {
	db := setupTestDB(t)
	svc := services.NewOrderService(db)
	alice := seedUser(t, db, "alice", false)
	tea := seedMenuItem(t, db, "Tea", 50)
	rolls := seedMenuItem(t, db, "Philadelphia", 320)

	_, err := svc.AddToCart(alice, tea.ID, 1)
	assert.NoError(t, err)
	_, err = svc.AddToCart(alice, rolls.ID, 2)
	assert.NoError(t, err)

	confirmed, err := svc.Checkout(alice)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), confirmed)

	var pending, confirmedCount, total int64
	db.Model(&models.Order{}).Where("user_id = ? AND status = ?", alice.ID, models.StatusPending).Count(&pending)
	db.Model(&models.Order{}).Where("user_id = ? AND status = ?", alice.ID, models.StatusConfirmed).Count(&confirmedCount)
	db.Model(&models.Order{}).Where("user_id = ?", alice.ID).Count(&total)
	assert.Equal(t, int64(0), pending)
	assert.Equal(t, int64(2), confirmedCount)
	assert.Equal(t, int64(2), total)
}

func TestCheckoutEmptyCartIsNoOp(t *testing.T) {
	db := setupTestDB(t)
	svc := services.NewOrderService(db)
	alice := seedUser(t, db, "alice", false)

	confirmed, err := svc.Checkout(alice)
	assert.NoError(t, err)
	assert.Equal(t, int64(0), confirmed)
}

func TestCancelOnlyPendingAndOwned(t *testing.T) {
	db := setupTestDB(t)
	svc := services.NewOrderService(db)
	alice := seedUser(t, db, "alice", false)
	bob := seedUser(t, db, "bob", false)
	tea := seedMenuItem(t, db, "Tea", 50)

	order, err := svc.AddToCart(alice, tea.ID, 1)
	assert.NoError(t, err)

	// Someone else's order is invisible.
	assert.ErrorIs(t, svc.Cancel(bob, order.ID), models.ErrNotFound)

	_, err = svc.Checkout(alice)
	assert.NoError(t, err)

	// Confirmed orders are out of the customer's hands.
	assert.ErrorIs(t, svc.Cancel(alice, order.ID), models.ErrNotFound)

	var count int64
	db.Model(&models.Order{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestCancelDeletesPendingRow(t *testing.T) {
	db := setupTestDB(t)
	svc := services.NewOrderService(db)
	alice := seedUser(t, db, "alice", false)
	tea := seedMenuItem(t, db, "Tea", 50)

	order, err := svc.AddToCart(alice, tea.ID, 1)
	assert.NoError(t, err)

	assert.NoError(t, svc.Cancel(alice, order.ID))

	var count int64
	db.Model(&models.Order{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestOrderHistoryNewestFirstAllStatuses(t *testing.T) {
	db := setupTestDB(t)
	svc := services.NewOrderService(db)
	admin := seedUser(t, db, "sushi_admin", true)
	alice := seedUser(t, db, "alice", false)
	tea := seedMenuItem(t, db, "Tea", 50)
	rolls := seedMenuItem(t, db, "Philadelphia", 320)

	first, err := svc.AddToCart(alice, tea.ID, 1)
	assert.NoError(t, err)
	_, err = svc.Checkout(alice)
	assert.NoError(t, err)

	adminSvc := services.NewAdminService(db)
	assert.NoError(t, adminSvc.ForceSetStatus(admin, first.ID, models.StatusCompleted))

	_, err = svc.AddToCart(alice, rolls.ID, 1)
	assert.NoError(t, err)

	history, err := svc.OrderHistory(alice)
	assert.NoError(t, err)
	assert.Len(t, history, 2)
	assert.Equal(t, "Tea", history[0].MenuItem.Name)
	assert.Equal(t, models.StatusCompleted, history[0].Status)
	assert.Equal(t, models.StatusPending, history[1].Status)
}

// TestTeaScenario walks the full lifecycle: accumulate, checkout, admin
// completes, admin cancels even out of COMPLETED.
func TestTeaScenario(t *testing.T) {
	db := setupTestDB(t)
	svc := services.NewOrderService(db)
	adminSvc := services.NewAdminService(db)
	admin := seedUser(t, db, "sushi_admin", true)
	alice := seedUser(t, db, "alice", false)
	tea := seedMenuItem(t, db, "Tea", 50)

	order, err := svc.AddToCart(alice, tea.ID, 2)
	assert.NoError(t, err)
	assert.Equal(t, 100.0, order.TotalPrice)

	order, err = svc.AddToCart(alice, tea.ID, 1)
	assert.NoError(t, err)
	assert.Equal(t, 3, order.Quantity)
	assert.Equal(t, 150.0, order.TotalPrice)

	_, err = svc.Checkout(alice)
	assert.NoError(t, err)

	var current models.Order
	db.First(&current, order.ID)
	assert.Equal(t, models.StatusConfirmed, current.Status)
	assert.Equal(t, 150.0, current.TotalPrice)

	assert.NoError(t, adminSvc.UpdateStatus(admin, order.ID, models.StatusCompleted))
	db.First(&current, order.ID)
	assert.Equal(t, models.StatusCompleted, current.Status)

	// Admin override ignores terminality.
	assert.NoError(t, adminSvc.CancelOrder(admin, order.ID))
	db.First(&current, order.ID)
	assert.Equal(t, models.StatusCancelled, current.Status)
}

package services_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/sushimonsters/restaurant-app/models"
	"github.com/sushimonsters/restaurant-app/services"
)

func TestReservationRejectsPastAndEmptyBookings(t *testing.T) {
	db := setupTestDB(t)
	svc := services.NewReservationService(db)
	alice := seedUser(t, db, "alice", false)

	_, err := svc.Create(alice, time.Now().Add(-time.Hour), 2, "")
	assert.ErrorIs(t, err, models.ErrInvalidInput)

	_, err = svc.Create(alice, time.Now().Add(time.Hour), 0, "")
	assert.ErrorIs(t, err, models.ErrInvalidInput)

	var count int64
	db.Model(&models.Reservation{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestReservationCreateAndListSoonestFirst(t *testing.T) {
	db := setupTestDB(t)
	svc := services.NewReservationService(db)
	alice := seedUser(t, db, "alice", false)
	bob := seedUser(t, db, "bob", false)

	later, err := svc.Create(alice, time.Now().Add(48*time.Hour), 4, "window table")
	assert.NoError(t, err)
	assert.Equal(t, "pending", later.Status)

	sooner, err := svc.Create(alice, time.Now().Add(2*time.Hour), 2, "")
	assert.NoError(t, err)

	mine, err := svc.ListMine(alice)
	assert.NoError(t, err)
	assert.Len(t, mine, 2)
	assert.Equal(t, sooner.ID, mine[0].ID)
	assert.Equal(t, later.ID, mine[1].ID)

	// Bob only sees his own bookings.
	others, err := svc.ListMine(bob)
	assert.NoError(t, err)
	assert.Empty(t, others)
}

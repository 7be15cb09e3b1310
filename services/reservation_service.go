package services

import (
	"time"

	"gorm.io/gorm"

	"github.com/sushimonsters/restaurant-app/models"
)

type ReservationService struct {
	DB *gorm.DB
}

func NewReservationService(db *gorm.DB) *ReservationService {
	return &ReservationService{DB: db}
}

// Create books a table for the user. New reservations start as "pending";
// the status is a plain stored string with no machine behind it.
func (rs *ReservationService) Create(user models.Principal, timeStart time.Time, guests int, notes string) (models.Reservation, error) {
	if guests < 1 || timeStart.Before(time.Now()) {
		return models.Reservation{}, models.ErrInvalidInput
	}

	reservation := models.Reservation{
		UserID:    user.ID,
		TimeStart: timeStart,
		Guests:    guests,
		Notes:     notes,
		Status:    "pending",
	}
	if err := rs.DB.Create(&reservation).Error; err != nil {
		return models.Reservation{}, err
	}
	return reservation, nil
}

// ListMine returns the user's reservations, soonest first.
func (rs *ReservationService) ListMine(user models.Principal) ([]models.Reservation, error) {
	var reservations []models.Reservation
	err := rs.DB.Where("user_id = ?", user.ID).
		Order("time_start asc").
		Find(&reservations).Error
	return reservations, err
}

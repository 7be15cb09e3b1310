package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sushimonsters/restaurant-app/middlewares"
	"github.com/sushimonsters/restaurant-app/services"
	"github.com/sushimonsters/restaurant-app/utils"
)

type ReservationController struct {
	reservations *services.ReservationService
}

func NewReservationController(db *gorm.DB) *ReservationController {
	return &ReservationController{
		reservations: services.NewReservationService(db),
	}
}

// CreateReservation books a table for the authenticated user.
func (rc *ReservationController) CreateReservation(c *gin.Context) {
	principal, ok := middlewares.CurrentPrincipal(c)
	if !ok {
		utils.RespondJSON(c, http.StatusUnauthorized, "login_required", nil)
		return
	}

	var req struct {
		TimeStart string `json:"time_start" form:"time_start" binding:"required"`
		Guests    int    `json:"guests" form:"guests" binding:"required"`
		Notes     string `json:"notes" form:"notes"`
	}
	if err := c.ShouldBind(&req); err != nil {
		utils.RespondJSON(c, http.StatusBadRequest, "reservation_invalid", nil)
		return
	}

	timeStart, err := time.Parse(time.RFC3339, req.TimeStart)
	if err != nil {
		utils.RespondJSON(c, http.StatusBadRequest, "reservation_invalid", nil)
		return
	}

	reservation, err := rc.reservations.Create(principal, timeStart, req.Guests, req.Notes)
	if err != nil {
		utils.RespondServiceError(c, err, "reservation_invalid")
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "reservation_created", reservation)
}

// MyReservations lists the user's reservations.
func (rc *ReservationController) MyReservations(c *gin.Context) {
	principal, ok := middlewares.CurrentPrincipal(c)
	if !ok {
		utils.RespondJSON(c, http.StatusUnauthorized, "login_required", nil)
		return
	}

	reservations, err := rc.reservations.ListMine(principal)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "reservations", reservations)
}

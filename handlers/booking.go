package handlers

import (
	"net/http"

	"eventra/models"
	"eventra/services/booking"
	"eventra/utils"

	"github.com/gin-gonic/gin"
)

// BookingHandler serves the booking lifecycle endpoints.
type BookingHandler struct {
	Bookings booking.BookingService
}

// Create handles POST /api/bookings.
func (h *BookingHandler) Create(c *gin.Context) {
	userID := c.GetString("userID")

	var input models.BookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, utils.ValidationError("Invalid request: "+err.Error()))
		return
	}

	bk, err := h.Bookings.Create(userID, input)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, bk)
}

// List handles GET /api/bookings. The shape depends on the caller's role.
func (h *BookingHandler) List(c *gin.Context) {
	userID := c.GetString("userID")
	role := c.GetString("userRole")

	list, err := h.Bookings.ListForUser(userID, role)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

type bookingStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateStatus handles PUT /api/bookings/:id/status. Vendor only.
func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	userID := c.GetString("userID")

	var req bookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.ValidationError("Invalid request: "+err.Error()))
		return
	}

	bk, err := h.Bookings.UpdateStatus(userID, c.Param("id"), req.Status)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bk)
}

package handlers

import (
	"net/http"

	"eventra/services/booking"
	"eventra/services/user"
	"eventra/services/vendor"
	"eventra/utils"

	"github.com/gin-gonic/gin"
)

// AdminHandler serves the moderation endpoints. All routes behind it require
// the admin role.
type AdminHandler struct {
	Users    user.UserService
	Vendors  vendor.VendorService
	Bookings booking.BookingService
}

// ListUsers handles GET /api/admin/users.
func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.Users.GetAllUsers()
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// DeleteUser handles DELETE /api/admin/users/:id.
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	if err := h.Users.DeleteUser(c.Param("id")); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "user deleted"})
}

// ListVendors handles GET /api/admin/vendors.
func (h *AdminHandler) ListVendors(c *gin.Context) {
	vendors, err := h.Vendors.GetAllWithOwners()
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, vendors)
}

// ToggleVerified handles PUT /api/admin/vendors/:id/verify.
func (h *AdminHandler) ToggleVerified(c *gin.Context) {
	profile, err := h.Vendors.ToggleVerified(c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// ListBookings handles GET /api/admin/bookings. Newest first.
func (h *AdminHandler) ListBookings(c *gin.Context) {
	bookings, err := h.Bookings.AdminList()
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// DeleteBooking handles DELETE /api/admin/bookings/:id.
func (h *AdminHandler) DeleteBooking(c *gin.Context) {
	if err := h.Bookings.AdminDelete(c.Param("id")); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "booking deleted"})
}

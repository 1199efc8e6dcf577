package handlers

import (
	"net/http"

	"eventra/models"
	"eventra/services/vendor"
	"eventra/utils"

	"github.com/gin-gonic/gin"
)

// VendorHandler serves the public vendor directory and the vendor's own
// profile management.
type VendorHandler struct {
	Vendors vendor.VendorService
}

// Upsert handles POST /api/vendors. Creates or overwrites the caller's
// profile.
func (h *VendorHandler) Upsert(c *gin.Context) {
	userID := c.GetString("userID")

	var input models.VendorProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, utils.ValidationError("Invalid request: "+err.Error()))
		return
	}

	profile, err := h.Vendors.UpsertProfile(userID, input)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// GetOwn handles GET /api/vendors/me.
func (h *VendorHandler) GetOwn(c *gin.Context) {
	userID := c.GetString("userID")
	profile, err := h.Vendors.GetOwnProfile(userID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// List handles GET /api/vendors with optional city, category, priceRange and
// search query filters.
func (h *VendorHandler) List(c *gin.Context) {
	filter := models.VendorSearchFilter{
		City:       c.Query("city"),
		Category:   c.Query("category"),
		PriceRange: c.Query("priceRange"),
		Search:     c.Query("search"),
	}

	results, err := h.Vendors.Search(filter)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, results)
}

// GetByID handles GET /api/vendors/:id.
func (h *VendorHandler) GetByID(c *gin.Context) {
	result, err := h.Vendors.GetByID(c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

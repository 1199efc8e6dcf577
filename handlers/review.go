package handlers

import (
	"net/http"
	"strconv"

	"eventra/models"
	"eventra/services/review"
	"eventra/utils"

	"github.com/gin-gonic/gin"
)

// ReviewHandler serves review submission and listing.
type ReviewHandler struct {
	Reviews review.ReviewService
}

// Create handles POST /api/reviews.
func (h *ReviewHandler) Create(c *gin.Context) {
	userID := c.GetString("userID")

	var input models.ReviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, utils.ValidationError("Invalid request: "+err.Error()))
		return
	}

	rev, err := h.Reviews.Create(userID, input)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, rev)
}

// ListByVendor handles GET /api/reviews/vendor/:vendorId with optional cursor
// and limit query params. Public.
func (h *ReviewHandler) ListByVendor(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			utils.RespondError(c, utils.ValidationError("limit must be a non-negative integer"))
			return
		}
		limit = parsed
	}

	page, err := h.Reviews.ListByVendor(c.Param("vendorId"), c.Query("cursor"), limit)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

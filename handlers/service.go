package handlers

import (
	"net/http"

	"eventra/models"
	"eventra/services/catalog"
	"eventra/utils"

	"github.com/gin-gonic/gin"
)

// ServiceHandler serves the vendor service catalog.
type ServiceHandler struct {
	Catalog catalog.CatalogService
}

// Add handles POST /api/services. Vendor only.
func (h *ServiceHandler) Add(c *gin.Context) {
	userID := c.GetString("userID")

	var input models.ServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, utils.ValidationError("Invalid request: "+err.Error()))
		return
	}

	service, err := h.Catalog.AddService(userID, input)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, service)
}

// ListByVendor handles GET /api/services/vendor/:vendorId. Public.
func (h *ServiceHandler) ListByVendor(c *gin.Context) {
	services, err := h.Catalog.ListByVendor(c.Param("vendorId"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, services)
}

// Delete handles DELETE /api/services/:id. Owning vendor only.
func (h *ServiceHandler) Delete(c *gin.Context) {
	userID := c.GetString("userID")
	if err := h.Catalog.DeleteService(userID, c.Param("id")); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "service deleted"})
}

package handlers

import (
	"net/http"

	"eventra/services/storage"
	"eventra/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const uploadFolder = "eventra"

// StorageHandler proxies image uploads to the configured storage backend and
// returns the public URL.
type StorageHandler struct {
	Storage storage.StorageService
}

// Upload handles POST /api/upload. Expects a multipart form with an "image"
// field.
func (h *StorageHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		utils.RespondError(c, utils.ValidationError("an 'image' file field is required"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		utils.RespondError(c, utils.ValidationError("could not read uploaded file"))
		return
	}
	defer file.Close()

	url, err := h.Storage.UploadImage(c.Request.Context(), file, uploadFolder)
	if err != nil {
		utils.GetLogger().Error("image upload failed", zap.Error(err))
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}

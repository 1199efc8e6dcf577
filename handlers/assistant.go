package handlers

import (
	"net/http"

	"eventra/services/assistant"
	"eventra/utils"

	"github.com/gin-gonic/gin"
)

// AssistantHandler serves the planning assistant.
type AssistantHandler struct {
	Assistant assistant.AssistantService
}

type askRequest struct {
	Message string `json:"message" binding:"required"`
}

// Ask handles POST /api/assistant.
func (h *AssistantHandler) Ask(c *gin.Context) {
	var req askRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.ValidationError("Invalid request: "+err.Error()))
		return
	}

	answer, err := h.Assistant.Ask(c.Request.Context(), req.Message)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"answer": answer})
}

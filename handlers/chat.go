package handlers

import (
	"net/http"

	"eventra/services/chat"
	"eventra/utils"

	"github.com/gin-gonic/gin"
)

// ChatHandler serves the REST reads and writes of the messaging relay. Live
// delivery runs through the websocket.
type ChatHandler struct {
	Chat chat.ChatService
}

type sendMessageRequest struct {
	ReceiverID string `json:"receiverId" binding:"required"`
	Content    string `json:"content" binding:"required"`
}

// Send handles POST /api/chat/send.
func (h *ChatHandler) Send(c *gin.Context) {
	userID := c.GetString("userID")

	var req sendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.ValidationError("Invalid request: "+err.Error()))
		return
	}

	msg, err := h.Chat.SendMessage(c.Request.Context(), userID, req.ReceiverID, req.Content)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, msg)
}

// History handles GET /api/chat/history/:userId. Returns the full thread with
// the given user, oldest first.
func (h *ChatHandler) History(c *gin.Context) {
	userID := c.GetString("userID")

	messages, err := h.Chat.History(c.Request.Context(), userID, c.Param("userId"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, messages)
}

// Conversations handles GET /api/chat/conversations. Returns the caller's
// chat partners, most recent first.
func (h *ChatHandler) Conversations(c *gin.Context) {
	userID := c.GetString("userID")

	conversations, err := h.Chat.Conversations(c.Request.Context(), userID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, conversations)
}

package handlers

import (
	"net/http"

	"eventra/services/chat"
	"eventra/services/user"
	"eventra/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler serves registration, login and the authenticated profile.
type AuthHandler struct {
	Users user.UserService
	Chat  chat.ChatService
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var input user.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, utils.ValidationError("Invalid request: "+err.Error()))
		return
	}

	resp, err := h.Users.Register(input)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.ValidationError("Invalid request: "+err.Error()))
		return
	}

	resp, err := h.Users.Authenticate(req.Email, req.Password)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Me handles GET /api/auth/me.
func (h *AuthHandler) Me(c *gin.Context) {
	userID := c.GetString("userID")
	usr, err := h.Users.GetUserByID(userID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, usr)
}

type profilePictureRequest struct {
	ProfilePicture string `json:"profilePicture" binding:"required"`
}

// UpdateProfilePicture handles PUT /api/auth/profile-picture. The new URL is
// relayed live to the user's conversation counterparts.
func (h *AuthHandler) UpdateProfilePicture(c *gin.Context) {
	userID := c.GetString("userID")

	var req profilePictureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.ValidationError("Invalid request: "+err.Error()))
		return
	}

	usr, err := h.Users.UpdateProfilePicture(userID, req.ProfilePicture)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	if h.Chat != nil {
		data := map[string]interface{}{
			"userId":         usr.ID,
			"name":           usr.Name,
			"profilePicture": usr.ProfilePicture,
		}
		if err := h.Chat.BroadcastProfileUpdate(c.Request.Context(), usr.ID, data); err != nil {
			utils.GetLogger().Warn("failed to relay profile update", zap.Error(err))
		}
	}

	c.JSON(http.StatusOK, usr)
}

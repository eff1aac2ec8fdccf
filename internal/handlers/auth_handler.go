package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Souley97/Kalpe-sante/internal/models"
	"github.com/Souley97/Kalpe-sante/internal/services"
	"github.com/Souley97/Kalpe-sante/pkg/common"
)

type AuthHandler struct {
	Auth *services.AuthService
}

func NewAuthHandler(auth *services.AuthService) *AuthHandler {
	return &AuthHandler{Auth: auth}
}

type LoginRequest struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone"`
	Role  string `json:"role" binding:"required"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(err.Error(), nil, http.StatusBadRequest))
		return
	}

	user, err := h.Auth.Login(services.LoginDTO{
		Name:  req.Name,
		Phone: req.Phone,
		Role:  models.Role(req.Role),
	})
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, common.NewSuccessResponse(user, "Logged in"))
}

func (h *AuthHandler) Me(c *gin.Context) {
	userID, err := strconv.Atoi(c.Query("user_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse("Invalid user_id", nil, http.StatusBadRequest))
		return
	}

	user, err := h.Auth.Me(userID)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, common.NewSuccessResponse(user, "User fetched"))
}

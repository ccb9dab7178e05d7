package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"nurturebloom/config"
	"nurturebloom/middleware"
	"nurturebloom/models"
	"nurturebloom/services/user"
	"nurturebloom/utils"
)

// AuthHandler serves registration, sessions and role changes.
type AuthHandler struct {
	UserService user.UserService
}

func (h *AuthHandler) setTokenCookie(c *gin.Context, token string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(utils.TokenCookieName, token, maxAge, "/", "", config.IsProduction(), true)
}

// RegisterHandler handles POST /api/auth/register.
func (h *AuthHandler) RegisterHandler(c *gin.Context) {
	var req models.UserRegistration
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, err)
		return
	}

	resp, err := h.UserService.Register(c.Request.Context(), req)
	if err != nil {
		utils.RespondError(c, "Register", err)
		return
	}
	h.setTokenCookie(c, resp.Token, int(config.AppConfig.TokenTTL.Seconds()))
	c.JSON(http.StatusCreated, resp)
}

// LoginHandler handles POST /api/auth/login.
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, err)
		return
	}

	resp, err := h.UserService.Login(c.Request.Context(), req)
	if err != nil {
		utils.RespondError(c, "Login", err)
		return
	}
	h.setTokenCookie(c, resp.Token, int(config.AppConfig.TokenTTL.Seconds()))
	c.JSON(http.StatusOK, resp)
}

// MeHandler handles GET /api/auth/user.
func (h *AuthHandler) MeHandler(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	u, err := h.UserService.Me(c.Request.Context(), actor)
	if err != nil {
		utils.RespondError(c, "Me", err)
		return
	}
	c.JSON(http.StatusOK, u)
}

// LogoutHandler handles POST /api/auth/logout.
func (h *AuthHandler) LogoutHandler(c *gin.Context) {
	if err := h.UserService.Logout(c.Request.Context(), middleware.TokenFrom(c)); err != nil {
		utils.RespondError(c, "Logout", err)
		return
	}
	h.setTokenCookie(c, "", -1)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

type setRoleRequest struct {
	Role models.Role `json:"role" binding:"required"`
}

// SetRoleHandler handles PATCH /api/users/:id/role.
func (h *AuthHandler) SetRoleHandler(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	var req setRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, err)
		return
	}

	u, err := h.UserService.SetRole(c.Request.Context(), actor, c.Param("id"), req.Role)
	if err != nil {
		utils.RespondError(c, "SetRole", err)
		return
	}
	getLogger(c).Info("Role updated", zap.String("userId", u.ID), zap.String("role", string(u.Role)))
	c.JSON(http.StatusOK, u)
}

// ListProfessionalsHandler handles GET /api/users/professionals.
func (h *AuthHandler) ListProfessionalsHandler(c *gin.Context) {
	pros, err := h.UserService.ListProfessionals(c.Request.Context())
	if err != nil {
		utils.RespondError(c, "ListProfessionals", err)
		return
	}
	c.JSON(http.StatusOK, pros)
}

package handlers

import (
	"net/http"
	"strings"
	"time"

	staffRepo "clinicsched/database/repository/staff"
	"clinicsched/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 24 * time.Hour

// AuthHandler serves staff login and token revocation.
type AuthHandler struct {
	Repo   staffRepo.StaffRepository
	Logger *zap.Logger
}

// NewAuthHandler wires the handler.
func NewAuthHandler(repo staffRepo.StaffRepository, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{Repo: repo, Logger: logger}
}

// LoginHandler authenticates a staff member and issues a JWT.
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	staff, err := h.Repo.GetByEmail(c.Request.Context(), input.Email)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "login failed", err.Error())
		return
	}
	if staff == nil || bcrypt.CompareHashAndPassword([]byte(staff.PasswordHash), []byte(input.Password)) != nil {
		utils.JSONError(c, http.StatusUnauthorized, "invalid credentials", "")
		return
	}

	token, err := utils.GenerateToken(staff.ID, staff.Email, tokenTTL)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to issue token", err.Error())
		return
	}

	h.Logger.Info("Staff login", zap.String("staffId", staff.ID))
	c.JSON(http.StatusOK, gin.H{"token": token, "staff": staff})
}

// RevokeTokenHandler places the caller's token on the revocation list.
func (h *AuthHandler) RevokeTokenHandler(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == "" {
		utils.JSONError(c, http.StatusBadRequest, "missing token", "")
		return
	}

	key := utils.AuthCachePrefix + "revoked:" + utils.HashToken(tokenString)
	if err := utils.GetAuthCacheClient().Set(c.Request.Context(), key, "1", tokenTTL).Err(); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to revoke token", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "revoked"})
}

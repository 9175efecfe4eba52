package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"lightfield/middleware"
	"lightfield/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const (
	accessTokenTTL  = 1 * time.Hour
	refreshTokenTTL = 7 * 24 * time.Hour
)

// Login authenticates an admin and issues access and refresh tokens.
func Login(c *gin.Context) {
	var input struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}

	admin, err := AdminRepo.GetByUsername(input.Username)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Login failed", err.Error())
		return
	}
	if admin == nil || bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(input.Password)) != nil {
		utils.JSONError(c, http.StatusUnauthorized, "Invalid credentials", "")
		return
	}

	access, err := utils.GenerateToken(admin.ID, admin.Email, accessTokenTTL)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to issue token", err.Error())
		return
	}
	refresh, err := utils.GenerateToken(admin.ID, admin.Email, refreshTokenTTL)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to issue token", err.Error())
		return
	}

	utils.GetLogger().Info("Admin login", zap.String("username", admin.Username))
	c.JSON(http.StatusOK, gin.H{
		"access":  access,
		"refresh": refresh,
		"user": gin.H{
			"id":       admin.ID,
			"username": admin.Username,
			"email":    admin.Email,
		},
	})
}

// Logout blacklists the presented token until it would have expired.
func Logout(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	token := strings.TrimPrefix(authHeader, "Bearer ")
	if token == "" || token == authHeader {
		utils.JSONError(c, http.StatusBadRequest, "Missing bearer token", "")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()
	if err := middleware.BlacklistToken(ctx, token, refreshTokenTTL); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Logout failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// Refresh exchanges a valid refresh token for a new access token.
func Refresh(c *gin.Context) {
	var input struct {
		Refresh string `json:"refresh" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}

	adminID, err := utils.ExtractIDFromToken(input.Refresh)
	if err != nil {
		utils.JSONError(c, http.StatusUnauthorized, "Invalid refresh token", "")
		return
	}
	admin, err := AdminRepo.GetByID(adminID)
	if err != nil || admin == nil {
		utils.JSONError(c, http.StatusUnauthorized, "Unknown account", "")
		return
	}

	access, err := utils.GenerateToken(admin.ID, admin.Email, accessTokenTTL)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to issue token", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"access": access})
}

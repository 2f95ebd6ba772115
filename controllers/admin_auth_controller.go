package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	config "github.com/aidlink/aidlink-go/config"
	repositories "github.com/aidlink/aidlink-go/repositories"
	utils "github.com/aidlink/aidlink-go/utils"
)

// ---------------- LOGIN ----------------
func AdminLogin(cfg *config.Config, admins repositories.AdminRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Username string `json:"username" binding:"required"`
			Password string `json:"password" binding:"required"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		admin, err := admins.FindByUsername(ctx, input.Username)
		if err != nil || bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(input.Password)) != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
			return
		}

		token, err := utils.GenerateToken(cfg.JWTSecret, admin.Username, "admin")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not issue token"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message":  "ok",
			"username": admin.Username,
			"token":    token,
		})
	}
}

// ---------------- LOGOUT ----------------
func AdminLogout() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "logged out"})
	}
}

// ---------------- ME ----------------
func AdminMe() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString("role") != "admin" {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "not authenticated"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"username": c.GetString("user_email")})
	}
}

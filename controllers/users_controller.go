package controllers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	config "github.com/aidlink/aidlink-go/config"
	models "github.com/aidlink/aidlink-go/models"
	repositories "github.com/aidlink/aidlink-go/repositories"
	utils "github.com/aidlink/aidlink-go/utils"
)

// ---------------- REGISTER ----------------
func RegisterUser(users repositories.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Email    string `json:"email" binding:"required,email"`
			Password string `json:"password" binding:"required,min=8"`
			Username string `json:"username" binding:"required"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		// Uniqueness pre-checks (application-level, matching the unique
		// indexes on email and username).
		if _, err := users.FindByEmail(ctx, input.Email); err == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email already exists"})
			return
		} else if !errors.Is(err, repositories.ErrNotFound) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not register user"})
			return
		}
		if _, err := users.FindByUsername(ctx, input.Username); err == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Username already exists"})
			return
		} else if !errors.Is(err, repositories.ErrNotFound) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not register user"})
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not register user"})
			return
		}

		now := time.Now()
		user := models.User{
			Email:         input.Email,
			Username:      input.Username,
			Password:      string(hash),
			DonatedAmount: 0,
			CreatedAt:     now,
			UpdatedAt:     now,
		}

		if err := users.Insert(ctx, &user); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not register user"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "User registered successfully"})
	}
}

// ---------------- LOGIN ----------------
func LoginUser(cfg *config.Config, users repositories.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Email    string `json:"email" binding:"required"`
			Password string `json:"password" binding:"required"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		user, err := users.FindByEmail(ctx, input.Email)
		if err != nil || bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)) != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
			return
		}

		token, err := utils.GenerateToken(cfg.JWTSecret, user.Email, "user")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not issue token"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message":  "Login successful",
			"token":    token,
			"email":    user.Email,
			"username": user.Username,
		})
	}
}

// ---------------- LOGOUT ----------------
// Tokens are stateless; logout is a client-side discard.
func LogoutUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
	}
}

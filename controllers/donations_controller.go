package controllers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	models "github.com/aidlink/aidlink-go/models"
	services "github.com/aidlink/aidlink-go/services"
)

// ---------------- DONATE ----------------
// POST /api/admin/events/:id/donate — credits the amount to the event's
// running total and, best effort, to the user's lifetime total. The
// response reports both outcomes separately so a partial settlement is
// visible to the caller.
func DonateToEvent(svc services.DonationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid event id", "code": "INVALID_EVENT_ID"})
			return
		}

		var input struct {
			Amount    int    `json:"amount"`
			UserEmail string `json:"userEmail"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "code": "INVALID_BODY"})
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		result, err := svc.Settle(ctx, id, input.Amount, input.UserEmail)
		switch {
		case errors.Is(err, services.ErrInvalidAmount):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "code": "INVALID_AMOUNT"})
			return
		case errors.Is(err, services.ErrMissingEmail):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "code": "MISSING_EMAIL"})
			return
		case errors.Is(err, services.ErrEventNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "event not found", "code": "EVENT_NOT_FOUND"})
			return
		case err != nil:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not settle donation", "code": "SETTLEMENT_FAILED"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"event":         result.Event,
			"event_updated": result.EventUpdated,
			"user_updated":  result.UserUpdated,
			"reference":     result.Reference,
		})
	}
}

// ---------------- LIST ----------------
func ListEventDonations(svc services.DonationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid event id", "code": "INVALID_EVENT_ID"})
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		donations, err := svc.ListByEvent(ctx, id)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch donations"})
			return
		}

		if len(donations) == 0 {
			c.JSON(http.StatusOK, []models.Donation{})
			return
		}

		c.JSON(http.StatusOK, donations)
	}
}

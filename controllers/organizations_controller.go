package controllers

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	models "github.com/aidlink/aidlink-go/models"
	repositories "github.com/aidlink/aidlink-go/repositories"
	utils "github.com/aidlink/aidlink-go/utils"
)

// ---------------- REGISTER ----------------
// Organizations supply their own string id and always start pending review.
func RegisterOrganization(orgs repositories.OrganizationRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.Organization
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if input.ID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "organization id is required"})
			return
		}

		now := time.Now()
		input.RegistrationStatus = models.RegistrationStatus{ApprovalStatus: "pending"}
		input.CreatedAt = now
		input.UpdatedAt = now

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := orgs.Insert(ctx, &input); err != nil {
			if errors.Is(err, repositories.ErrDuplicateID) {
				c.JSON(http.StatusConflict, gin.H{"error": "organization id already exists"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not register organization"})
			return
		}

		c.JSON(http.StatusOK, input)
	}
}

// ---------------- PENDING ----------------
func ListPendingOrganizations(orgs repositories.OrganizationRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		pending, err := orgs.FindPending(ctx)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch organizations"})
			return
		}

		if len(pending) == 0 {
			c.JSON(http.StatusOK, []models.Organization{})
			return
		}

		c.JSON(http.StatusOK, pending)
	}
}

// ---------------- APPROVE ----------------
func ApproveOrganization(orgs repositories.OrganizationRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		org, err := orgs.FindByID(ctx, c.Param("id"))
		if errors.Is(err, repositories.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "organization not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch organization"})
			return
		}

		now := time.Now()
		org.RegistrationStatus.ApprovalStatus = "approved"
		org.RegistrationStatus.ReviewedBy = c.GetString("user_email")
		org.RegistrationStatus.ReviewedAt = &now
		org.UpdatedAt = now

		if err := orgs.Save(ctx, org); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update organization"})
			return
		}

		// Approval notice is best effort.
		if org.OrganizationInfo.Email != "" {
			go func(to, name string) {
				body := fmt.Sprintf("<p>Your organization %s has been approved on AidLink.</p>", name)
				if err := utils.SendEmail(to, name, "Organization approved", body); err != nil {
					log.Printf("approval email to %s failed: %v", to, err)
				}
			}(org.OrganizationInfo.Email, org.OrganizationInfo.LegalName)
		}

		c.JSON(http.StatusOK, org)
	}
}

// ---------------- REJECT ----------------
// Rejection deletes the organization record.
func RejectOrganization(orgs repositories.OrganizationRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		id := c.Param("id")
		if _, err := orgs.FindByID(ctx, id); err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "organization not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch organization"})
			return
		}

		if err := orgs.Delete(ctx, id); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not delete organization"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Organization rejected and deleted successfully"})
	}
}

// ---------------- REGISTER FOR EVENT ----------------
func RegisterOrgForEvent(orgs repositories.OrganizationRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		eventID, err := strconv.Atoi(c.Param("eventId"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid event id", "code": "INVALID_EVENT_ID"})
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		org, err := orgs.FindByID(ctx, c.Param("id"))
		if errors.Is(err, repositories.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "organization not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch organization"})
			return
		}

		org.EventRegistrations = append(org.EventRegistrations, models.EventRegistration{
			EventID:      eventID,
			Status:       "registered",
			RegisteredAt: time.Now(),
		})
		org.UpdatedAt = time.Now()

		if err := orgs.Save(ctx, org); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update organization"})
			return
		}

		c.JSON(http.StatusOK, org)
	}
}

// ---------------- APPROVED FOR EVENT ----------------
func ListApprovedOrgsForEvent(orgs repositories.OrganizationRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		eventID, err := strconv.Atoi(c.Param("eventId"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid event id", "code": "INVALID_EVENT_ID"})
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		approved, err := orgs.FindApprovedForEvent(ctx, eventID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch organizations"})
			return
		}

		if len(approved) == 0 {
			c.JSON(http.StatusOK, []models.Organization{})
			return
		}

		c.JSON(http.StatusOK, approved)
	}
}

// ---------------- GET ----------------
func GetOrganization(orgs repositories.OrganizationRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		org, err := orgs.FindByID(ctx, c.Param("id"))
		if errors.Is(err, repositories.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "organization not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch organization"})
			return
		}

		c.JSON(http.StatusOK, org)
	}
}

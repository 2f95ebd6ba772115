package models

import "time"

type Event struct {
	ID                      int       `bson:"_id,omitempty" json:"id"`
	Title                   string    `bson:"title" json:"title"`
	Description             string    `bson:"description,omitempty" json:"description,omitempty"`
	Category                string    `bson:"category,omitempty" json:"category,omitempty"`
	IsOngoing               bool      `bson:"is_ongoing" json:"isOngoing"`
	EstimatedAffectedPeople int       `bson:"estimated_affected_people,omitempty" json:"estimatedAffectedPeople,omitempty"`
	Severity                string    `bson:"severity,omitempty" json:"severity,omitempty"`
	Location                string    `bson:"location,omitempty" json:"location,omitempty"`
	StartDate               string    `bson:"start_date,omitempty" json:"startDate,omitempty"` // opaque date string, never parsed
	EndDate                 string    `bson:"end_date,omitempty" json:"endDate,omitempty"`
	CoverImage              string    `bson:"cover_image,omitempty" json:"coverImage,omitempty"`
	UrgencyLevel            string    `bson:"urgency_level,omitempty" json:"urgencyLevel,omitempty"`
	FundingGoal             int       `bson:"funding_goal" json:"fundingGoal"`
	CurrentFunding          int       `bson:"current_funding" json:"currentFunding"`
	CreatedAt               time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt               time.Time `bson:"updated_at" json:"updatedAt"`
}

package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Donation is a ledger entry written for every settled donation. The event
// and user running totals stay authoritative; the ledger exists for audit.
type Donation struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Reference    string             `bson:"reference" json:"reference"`
	EventID      int                `bson:"event_id" json:"eventId"`
	UserEmail    string             `bson:"user_email" json:"userEmail"`
	Amount       int                `bson:"amount" json:"amount"`
	UserCredited bool               `bson:"user_credited" json:"userCredited"`
	CreatedAt    time.Time          `bson:"created_at" json:"createdAt"`
}

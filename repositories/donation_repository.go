package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	models "github.com/aidlink/aidlink-go/models"
)

// DonationRepository keeps the append-only donation ledger.
type DonationRepository interface {
	Insert(ctx context.Context, donation *models.Donation) error
	FindByEvent(ctx context.Context, eventID int) ([]models.Donation, error)
}

type mongoDonationRepository struct {
	col *mongo.Collection
}

func NewMongoDonationRepository(db *mongo.Database) DonationRepository {
	return &mongoDonationRepository{col: db.Collection("donations")}
}

func (r *mongoDonationRepository) Insert(ctx context.Context, donation *models.Donation) error {
	_, err := r.col.InsertOne(ctx, donation)
	return err
}

func (r *mongoDonationRepository) FindByEvent(ctx context.Context, eventID int) ([]models.Donation, error) {
	opts := options.Find().SetSort(bson.M{"created_at": -1})
	cursor, err := r.col.Find(ctx, bson.M{"event_id": eventID}, opts)
	if err != nil {
		return nil, err
	}

	var donations []models.Donation
	if err := cursor.All(ctx, &donations); err != nil {
		return nil, err
	}
	return donations, nil
}

package repositories

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	models "github.com/aidlink/aidlink-go/models"
)

// OrganizationRepository persists organizations keyed by their
// caller-supplied string id.
type OrganizationRepository interface {
	FindByID(ctx context.Context, id string) (*models.Organization, error)
	FindPending(ctx context.Context) ([]models.Organization, error)
	FindApprovedForEvent(ctx context.Context, eventID int) ([]models.Organization, error)
	Insert(ctx context.Context, org *models.Organization) error
	Save(ctx context.Context, org *models.Organization) error
	Delete(ctx context.Context, id string) error
}

type mongoOrganizationRepository struct {
	col *mongo.Collection
}

func NewMongoOrganizationRepository(db *mongo.Database) OrganizationRepository {
	return &mongoOrganizationRepository{col: db.Collection("organizations")}
}

func (r *mongoOrganizationRepository) FindByID(ctx context.Context, id string) (*models.Organization, error) {
	var org models.Organization
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&org)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &org, nil
}

func (r *mongoOrganizationRepository) FindPending(ctx context.Context) ([]models.Organization, error) {
	return r.find(ctx, bson.M{"registration_status.approval_status": "pending"})
}

func (r *mongoOrganizationRepository) FindApprovedForEvent(ctx context.Context, eventID int) ([]models.Organization, error) {
	return r.find(ctx, bson.M{
		"registration_status.approval_status": "approved",
		"event_registrations.event_id":        eventID,
	})
}

func (r *mongoOrganizationRepository) find(ctx context.Context, filter bson.M) ([]models.Organization, error) {
	cursor, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}

	var orgs []models.Organization
	if err := cursor.All(ctx, &orgs); err != nil {
		return nil, err
	}
	return orgs, nil
}

func (r *mongoOrganizationRepository) Insert(ctx context.Context, org *models.Organization) error {
	_, err := r.col.InsertOne(ctx, org)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicateID
	}
	return err
}

func (r *mongoOrganizationRepository) Save(ctx context.Context, org *models.Organization) error {
	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": org.ID}, org)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *mongoOrganizationRepository) Delete(ctx context.Context, id string) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

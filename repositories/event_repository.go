package repositories

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	models "github.com/aidlink/aidlink-go/models"
)

// EventRepository persists events keyed by integer _id.
type EventRepository interface {
	FindByID(ctx context.Context, id int) (*models.Event, error)
	FindAll(ctx context.Context) ([]models.Event, error)

	// MaxID returns the highest stored event id, 0 when the collection is empty.
	MaxID(ctx context.Context) (int, error)

	// Insert stores the event under its id. Returns ErrDuplicateID when the
	// id is already taken.
	Insert(ctx context.Context, event *models.Event) error

	// IncrementFunding atomically adds amount to current_funding and returns
	// the updated event. The increment happens storage-side ($inc), so
	// concurrent donations cannot lose updates.
	IncrementFunding(ctx context.Context, id, amount int) (*models.Event, error)

	// SetCoverImage updates the cover image URL and returns the updated event.
	SetCoverImage(ctx context.Context, id int, url string) (*models.Event, error)
}

type mongoEventRepository struct {
	col *mongo.Collection
}

func NewMongoEventRepository(db *mongo.Database) EventRepository {
	return &mongoEventRepository{col: db.Collection("events")}
}

func (r *mongoEventRepository) FindByID(ctx context.Context, id int) (*models.Event, error) {
	var event models.Event
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&event)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *mongoEventRepository) FindAll(ctx context.Context) ([]models.Event, error) {
	cursor, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	var events []models.Event
	if err := cursor.All(ctx, &events); err != nil {
		return nil, err
	}
	return events, nil
}

func (r *mongoEventRepository) MaxID(ctx context.Context) (int, error) {
	opts := options.FindOne().SetSort(bson.M{"_id": -1}).SetProjection(bson.M{"_id": 1})

	var doc struct {
		ID int `bson:"_id"`
	}
	err := r.col.FindOne(ctx, bson.M{}, opts).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return doc.ID, nil
}

func (r *mongoEventRepository) Insert(ctx context.Context, event *models.Event) error {
	_, err := r.col.InsertOne(ctx, event)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicateID
	}
	return err
}

func (r *mongoEventRepository) IncrementFunding(ctx context.Context, id, amount int) (*models.Event, error) {
	update := bson.M{
		"$inc": bson.M{"current_funding": amount},
		"$set": bson.M{"updated_at": time.Now()},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var event models.Event
	err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&event)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *mongoEventRepository) SetCoverImage(ctx context.Context, id int, url string) (*models.Event, error) {
	update := bson.M{
		"$set": bson.M{"cover_image": url, "updated_at": time.Now()},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var event models.Event
	err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&event)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &event, nil
}

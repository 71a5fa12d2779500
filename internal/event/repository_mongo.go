package event

import (
	"context"

	"github.com/ktmtfamily/family-tree-api/internal/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoRepository stores events in the events collection. Documents are
// matched on the id field; the native _id stays internal.
type MongoRepository struct {
	coll *mongo.Collection
}

func NewMongoRepository(coll *mongo.Collection) *MongoRepository {
	return &MongoRepository{coll: coll}
}

var _ Repository = (*MongoRepository)(nil)

func (r *MongoRepository) List(ctx context.Context) ([]model.Event, error) {
	opts := options.Find().SetProjection(bson.D{{Key: "_id", Value: 0}})

	cursor, err := r.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, err
	}

	events := []model.Event{}
	if err := cursor.All(ctx, &events); err != nil {
		return nil, err
	}
	return events, nil
}

func (r *MongoRepository) Create(ctx context.Context, event *model.Event) error {
	_, err := r.coll.InsertOne(ctx, event)
	return err
}

func (r *MongoRepository) Update(ctx context.Context, event *model.Event) error {
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "title", Value: event.Title},
		{Key: "description", Value: event.Description},
		{Key: "date", Value: event.Date},
		{Key: "location", Value: event.Location},
		{Key: "image_url", Value: event.ImageURL},
		{Key: "registration_link", Value: event.RegistrationLink},
	}}}

	_, err := r.coll.UpdateOne(ctx, bson.D{{Key: "id", Value: event.ID}}, update)
	return err
}

func (r *MongoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.coll.DeleteOne(ctx, bson.D{{Key: "id", Value: id}})
	return err
}

package admin

import (
	"context"
	"errors"

	"github.com/ktmtfamily/family-tree-api/internal/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoRepository keeps settings in the settings collection, keyed by type
type MongoRepository struct {
	coll *mongo.Collection
}

func NewMongoRepository(coll *mongo.Collection) *MongoRepository {
	return &MongoRepository{coll: coll}
}

var _ Repository = (*MongoRepository)(nil)

func adminFilter() bson.D {
	return bson.D{{Key: "type", Value: model.AdminCredentialsType}}
}

func (r *MongoRepository) FindAdminPassword(ctx context.Context) (string, bool, error) {
	var setting model.Setting
	err := r.coll.FindOne(ctx, adminFilter()).Decode(&setting)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "", false, nil
		}
		return "", false, err
	}

	if setting.Password == nil {
		return "", false, nil
	}
	return *setting.Password, true, nil
}

func (r *MongoRepository) UpsertAdminPassword(ctx context.Context, password string) error {
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "password", Value: password},
		{Key: "type", Value: model.AdminCredentialsType},
	}}}

	_, err := r.coll.UpdateOne(ctx, adminFilter(), update, options.Update().SetUpsert(true))
	return err
}

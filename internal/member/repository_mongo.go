package member

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ktmtfamily/family-tree-api/internal/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// memberDocument maps the hex ID of model.Member onto the native _id.
type memberDocument struct {
	ObjectID     primitive.ObjectID `bson:"_id"`
	model.Member `bson:",inline"`
}

func (d *memberDocument) toModel() model.Member {
	m := d.Member
	m.ID = d.ObjectID.Hex()
	return m
}

// MongoRepository stores members in the users collection
type MongoRepository struct {
	coll *mongo.Collection
	now  func() time.Time
}

func NewMongoRepository(coll *mongo.Collection) *MongoRepository {
	return &MongoRepository{
		coll: coll,
		now:  func() time.Time { return time.Now().UTC() },
	}
}

var _ Repository = (*MongoRepository)(nil)

func (r *MongoRepository) ExistsByPhone(ctx context.Context, phone string) (bool, error) {
	opts := options.FindOne().SetProjection(bson.D{{Key: "_id", Value: 1}})

	err := r.coll.FindOne(ctx, bson.D{{Key: "phone", Value: phone}}, opts).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *MongoRepository) Create(ctx context.Context, member *model.Member) error {
	oid, err := primitive.ObjectIDFromHex(member.ID)
	if err != nil {
		return fmt.Errorf("member id %q: %w", member.ID, err)
	}

	member.Touch(r.now())
	_, err = r.coll.InsertOne(ctx, memberDocument{ObjectID: oid, Member: *member})
	return err
}

func (r *MongoRepository) FindByPhone(ctx context.Context, phone string) (*model.Member, error) {
	var doc memberDocument
	err := r.coll.FindOne(ctx, bson.D{{Key: "phone", Value: phone}}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("find by phone: %w", ErrNoRecord)
		}
		return nil, err
	}

	m := doc.toModel()
	return &m, nil
}

func (r *MongoRepository) FindByStatus(ctx context.Context, status model.MemberStatus) ([]model.Member, error) {
	cursor, err := r.coll.Find(ctx, bson.D{{Key: "status", Value: status}})
	if err != nil {
		return nil, err
	}

	var docs []memberDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	members := make([]model.Member, 0, len(docs))
	for i := range docs {
		members = append(members, docs[i].toModel())
	}
	return members, nil
}

func (r *MongoRepository) UpdateStatus(ctx context.Context, id string, status model.MemberStatus) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, fmt.Errorf("member id %q: %w", id, err)
	}

	result, err := r.coll.UpdateOne(ctx,
		bson.D{{Key: "_id", Value: oid}},
		bson.D{{Key: "$set", Value: bson.D{
			{Key: "status", Value: status},
			{Key: "updatedAt", Value: r.now()},
		}}},
	)
	if err != nil {
		return false, err
	}
	return result.MatchedCount > 0, nil
}

func (r *MongoRepository) Delete(ctx context.Context, id string) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, fmt.Errorf("member id %q: %w", id, err)
	}

	result, err := r.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: oid}})
	if err != nil {
		return false, err
	}
	return result.DeletedCount > 0, nil
}

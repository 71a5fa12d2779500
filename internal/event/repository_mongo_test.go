package event_test

import (
	"context"
	"testing"

	"github.com/ktmtfamily/family-tree-api/internal/event"
	"github.com/ktmtfamily/family-tree-api/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestMongoRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()

	mt.Run("list", func(mt *mtest.T) {
		repo := event.NewMongoRepository(mt.Coll)
		ns := mt.Coll.Database().Name() + "." + mt.Coll.Name()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
			bson.D{
				{Key: "id", Value: "8c1f4f3e-5f43-4a8e-9d2b-2f0c6a1d9e11"},
				{Key: "title", Value: "Annual Gathering"},
				{Key: "image_url", Value: "https://example.com/a.jpg"},
			},
			bson.D{
				{Key: "id", Value: "0e7b1c55-3d4a-4f0f-8a77-6a9c2b1d3e44"},
				{Key: "title", Value: "Wedding"},
				{Key: "registration_link", Value: "https://example.com/rsvp"},
			},
		))

		events, err := repo.List(ctx)
		require.NoError(mt, err)
		require.Len(mt, events, 2)
		assert.Equal(mt, "8c1f4f3e-5f43-4a8e-9d2b-2f0c6a1d9e11", events[0].ID)
		assert.Equal(mt, "https://example.com/a.jpg", events[0].ImageURL)
		assert.Equal(mt, "https://example.com/rsvp", events[1].RegistrationLink)
	})

	mt.Run("list empty", func(mt *mtest.T) {
		repo := event.NewMongoRepository(mt.Coll)
		ns := mt.Coll.Database().Name() + "." + mt.Coll.Name()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		events, err := repo.List(ctx)
		require.NoError(mt, err)
		assert.NotNil(mt, events)
		assert.Empty(mt, events)
	})

	mt.Run("create", func(mt *mtest.T) {
		repo := event.NewMongoRepository(mt.Coll)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		assert.NoError(mt, repo.Create(ctx, &model.Event{ID: "e1", Title: "T"}))
	})

	mt.Run("update unknown id", func(mt *mtest.T) {
		repo := event.NewMongoRepository(mt.Coll)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}, bson.E{Key: "nModified", Value: 0}))

		assert.NoError(mt, repo.Update(ctx, &model.Event{ID: "missing", Title: "T"}))
	})

	mt.Run("delete unknown id", func(mt *mtest.T) {
		repo := event.NewMongoRepository(mt.Coll)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}))

		assert.NoError(mt, repo.Delete(ctx, "missing"))
	})

	mt.Run("list error", func(mt *mtest.T) {
		repo := event.NewMongoRepository(mt.Coll)
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    2,
			Name:    "BadValue",
			Message: "bad value",
		}))

		_, err := repo.List(ctx)
		assert.Error(mt, err)
	})
}

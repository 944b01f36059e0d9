package mongo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/DhairyaPatel2210/portfolio/internal/core/domain"
)

func newMockT(t *testing.T) *mtest.T {
	return mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
}

// sentCommand decodes the next command the driver sent to the mock server.
func sentCommand(mt *mtest.T) bson.M {
	evt := mt.GetStartedEvent()
	require.NotNil(mt, evt)
	var cmd bson.M
	require.NoError(mt, bson.Unmarshal(evt.Command, &cmd))
	return cmd
}

type sentUpdate struct {
	Updates []struct {
		Q bson.M `bson:"q"`
		U bson.M `bson:"u"`
	} `bson:"updates"`
}

func sentUpdateCommand(mt *mtest.T) sentUpdate {
	evt := mt.GetStartedEvent()
	require.NotNil(mt, evt)
	var cmd sentUpdate
	require.NoError(mt, bson.Unmarshal(evt.Command, &cmd))
	require.Len(mt, cmd.Updates, 1)
	return cmd
}

func userDoc(id primitive.ObjectID, extra ...bson.E) bson.D {
	doc := bson.D{
		{Key: "_id", Value: id},
		{Key: "firstName", Value: "Ada"},
		{Key: "email", Value: "ada@example.com"},
		{Key: "password", Value: "$2a$10$hash"},
	}
	return append(doc, extra...)
}

func TestUserRepository_FindByIDHidesSecrets(t *testing.T) {
	mt := newMockT(t)

	mt.Run("default projection", func(mt *mtest.T) {
		repo := &UserRepository{col: mt.Coll}
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "portfolio.users", mtest.FirstBatch, userDoc(id)))

		u, err := repo.FindByID(context.Background(), id.Hex())
		require.NoError(mt, err)
		assert.Equal(mt, id.Hex(), u.ID)
		assert.Equal(mt, "ada@example.com", u.Email)

		cmd := sentCommand(mt)
		proj, ok := cmd["projection"].(bson.M)
		require.True(mt, ok, "find must carry a projection")
		assert.EqualValues(mt, 0, proj["apiKey"])
		assert.EqualValues(mt, 0, proj["rsaKeys.privateKey"])
		assert.EqualValues(mt, 0, proj["contact"])
	})

	mt.Run("not found", func(mt *mtest.T) {
		repo := &UserRepository{col: mt.Coll}
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "portfolio.users", mtest.FirstBatch))

		_, err := repo.FindByID(context.Background(), primitive.NewObjectID().Hex())
		assert.ErrorIs(mt, err, domain.ErrUserNotFound)
	})

	mt.Run("malformed id skips the round trip", func(mt *mtest.T) {
		repo := &UserRepository{col: mt.Coll}

		_, err := repo.FindByID(context.Background(), "not-an-object-id")
		assert.ErrorIs(mt, err, domain.ErrUserNotFound)
		assert.Nil(mt, mt.GetStartedEvent())
	})
}

func TestUserRepository_FindByEmailWithSecrets(t *testing.T) {
	mt := newMockT(t)

	mt.Run("reads the full document", func(mt *mtest.T) {
		repo := &UserRepository{col: mt.Coll}
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "portfolio.users", mtest.FirstBatch, userDoc(id,
			bson.E{Key: "apiKey", Value: "key-1"},
			bson.E{Key: "rsaKeys", Value: bson.D{{Key: "publicKey", Value: "PUB"}, {Key: "privateKey", Value: "PRIV"}}},
		)))

		u, err := repo.FindByEmailWithSecrets(context.Background(), "ada@example.com")
		require.NoError(mt, err)
		assert.Equal(mt, "key-1", u.APIKey)
		require.NotNil(mt, u.RSAKeys)
		assert.Equal(mt, "PRIV", u.RSAKeys.PrivateKey)

		cmd := sentCommand(mt)
		_, hasProjection := cmd["projection"]
		assert.False(mt, hasProjection)
		assert.Equal(mt, bson.M{"email": "ada@example.com"}, cmd["filter"])
	})
}

func TestUserRepository_FindAPIKeyReadsOnlyTheKey(t *testing.T) {
	mt := newMockT(t)

	mt.Run("inclusion projection", func(mt *mtest.T) {
		repo := &UserRepository{col: mt.Coll}
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "portfolio.users", mtest.FirstBatch,
			bson.D{{Key: "_id", Value: id}, {Key: "apiKey", Value: "key-1"}}))

		key, err := repo.FindAPIKey(context.Background(), id.Hex())
		require.NoError(mt, err)
		assert.Equal(mt, "key-1", key)

		proj, ok := sentCommand(mt)["projection"].(bson.M)
		require.True(mt, ok)
		assert.Len(mt, proj, 1)
		assert.EqualValues(mt, 1, proj["apiKey"])
	})
}

func TestUserRepository_SetRSAKeysIfAbsent(t *testing.T) {
	mt := newMockT(t)
	keys := domain.RSAKeys{PublicKey: "PUB", PrivateKey: "PRIV"}

	mt.Run("first writer wins", func(mt *mtest.T) {
		repo := &UserRepository{col: mt.Coll}
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1},
			bson.E{Key: "nModified", Value: 1},
		))

		stored, err := repo.SetRSAKeysIfAbsent(context.Background(), id.Hex(), keys)
		require.NoError(mt, err)
		assert.True(mt, stored)

		q := sentUpdateCommand(mt).Updates[0].Q
		assert.Equal(mt, id, q["_id"])
		assert.Equal(mt, bson.M{"$exists": false}, q["rsaKeys.publicKey"])
	})

	mt.Run("existing pair is left alone", func(mt *mtest.T) {
		repo := &UserRepository{col: mt.Coll}
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 0},
			bson.E{Key: "nModified", Value: 0},
		))

		stored, err := repo.SetRSAKeysIfAbsent(context.Background(), primitive.NewObjectID().Hex(), keys)
		require.NoError(mt, err)
		assert.False(mt, stored)
	})
}

func TestUserRepository_DuplicateKeys(t *testing.T) {
	mt := newMockT(t)
	duplicate := mtest.CreateWriteErrorsResponse(mtest.WriteError{
		Index:   0,
		Code:    11000,
		Message: "E11000 duplicate key error",
	})

	mt.Run("signup with a taken email", func(mt *mtest.T) {
		repo := &UserRepository{col: mt.Coll}
		mt.AddMockResponses(duplicate)

		_, err := repo.Create(context.Background(), &domain.User{Email: "ada@example.com"})
		assert.ErrorIs(mt, err, domain.ErrEmailTaken)
	})

	mt.Run("api key collision", func(mt *mtest.T) {
		repo := &UserRepository{col: mt.Coll}
		mt.AddMockResponses(duplicate)

		err := repo.SetAPIKey(context.Background(), primitive.NewObjectID().Hex(), "key-1")
		assert.ErrorIs(mt, err, domain.ErrConflict)
	})

	mt.Run("other write errors are dependency failures", func(mt *mtest.T) {
		repo := &UserRepository{col: mt.Coll}
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{Index: 0, Code: 121, Message: "validation failed"}))

		_, err := repo.Create(context.Background(), &domain.User{Email: "ada@example.com"})
		assert.ErrorIs(mt, err, domain.ErrDependency)
		assert.NotErrorIs(mt, err, domain.ErrEmailTaken)
	})
}

func TestUserRepository_Contact(t *testing.T) {
	mt := newMockT(t)

	mt.Run("read projects out write-only fields", func(mt *mtest.T) {
		repo := &UserRepository{col: mt.Coll}
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "portfolio.users", mtest.FirstBatch, bson.D{
			{Key: "_id", Value: id},
			{Key: "contact", Value: bson.D{{Key: "location", Value: "London"}}},
		}))

		c, err := repo.FindContact(context.Background(), id.Hex())
		require.NoError(mt, err)
		assert.Equal(mt, "London", c.Location)

		proj, ok := sentCommand(mt)["projection"].(bson.M)
		require.True(mt, ok)
		assert.Len(mt, proj, 1)
		assert.EqualValues(mt, 1, proj["contact.location"])
	})

	mt.Run("update without a sendgrid key keeps the stored one", func(mt *mtest.T) {
		repo := &UserRepository{col: mt.Coll}
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1},
			bson.E{Key: "nModified", Value: 1},
		))

		err := repo.UpdateContact(context.Background(), primitive.NewObjectID().Hex(), domain.Contact{
			Location:      "London",
			PersonalEmail: "ada@example.com",
			FromEmail:     "noreply@example.com",
		})
		require.NoError(mt, err)

		set, ok := sentUpdateCommand(mt).Updates[0].U["$set"].(bson.M)
		require.True(mt, ok)
		assert.Equal(mt, "London", set["contact.location"])
		assert.NotContains(mt, set, "contact.sendGridApiKey")
		assert.NotContains(mt, set, "contact")
	})

	mt.Run("unknown user", func(mt *mtest.T) {
		repo := &UserRepository{col: mt.Coll}
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 0},
			bson.E{Key: "nModified", Value: 0},
		))

		err := repo.UpdateContact(context.Background(), primitive.NewObjectID().Hex(), domain.Contact{Location: "London"})
		assert.ErrorIs(mt, err, domain.ErrUserNotFound)
	})
}

package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/DhairyaPatel2210/portfolio/internal/core/domain"
)

const collectionOrigins = "origins"

type OriginRepository struct {
	col *mongo.Collection
}

func NewOriginRepository(db *mongo.Database) *OriginRepository {
	return &OriginRepository{col: db.Collection(collectionOrigins)}
}

type mongoOrigin struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Origin      string             `bson:"origin"`
	Description string             `bson:"description"`
	User        primitive.ObjectID `bson:"user"`
	CreatedAt   time.Time          `bson:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt"`
}

func (r *OriginRepository) Create(ctx context.Context, o *domain.Origin) (*domain.Origin, error) {
	userID, err := primitive.ObjectIDFromHex(o.UserID)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoOrigin{
		Origin:      o.Value,
		Description: o.Description,
		User:        userID,
		CreatedAt:   o.CreatedAt.UTC(),
		UpdatedAt:   o.UpdatedAt.UTC(),
	}
	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrOriginExists
		}
		return nil, dependencyErr("insert origin", err)
	}

	created := *o
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *OriginRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Origin, error) {
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return []*domain.Origin{}, nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{"user": uid}, options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}}))
	if err != nil {
		return nil, dependencyErr("list origins", err)
	}
	defer cur.Close(ctx)

	var docs []mongoOrigin
	if err := cur.All(ctx, &docs); err != nil {
		return nil, dependencyErr("decode origins", err)
	}

	out := make([]*domain.Origin, 0, len(docs))
	for i := range docs {
		out = append(out, docs[i].toDomain())
	}
	return out, nil
}

func (r *OriginRepository) ListValues(ctx context.Context) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	raw, err := r.col.Distinct(ctx, "origin", bson.M{})
	if err != nil {
		return nil, dependencyErr("distinct origins", err)
	}

	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *OriginRepository) DeleteForUser(ctx context.Context, id, userID string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrOriginNotFound
	}
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return domain.ErrOriginNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid, "user": uid})
	if err != nil {
		return dependencyErr("delete origin", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrOriginNotFound
	}
	return nil
}

// EnsureIndexes creates the unique (origin, user) index.
func (r *OriginRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "origin", Value: 1}, {Key: "user", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("origin indexes: %w", err)
	}
	return nil
}

func (mo *mongoOrigin) toDomain() *domain.Origin {
	return &domain.Origin{
		ID:          mo.ID.Hex(),
		Value:       mo.Origin,
		Description: mo.Description,
		UserID:      mo.User.Hex(),
		CreatedAt:   mo.CreatedAt,
		UpdatedAt:   mo.UpdatedAt,
	}
}

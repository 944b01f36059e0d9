package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/DhairyaPatel2210/portfolio/internal/core/domain"
)

const collectionUsers = "users"

// defaultUserProjection hides secrets from ordinary reads.
var defaultUserProjection = bson.M{"apiKey": 0, "rsaKeys.privateKey": 0, "contact": 0}

// contactProjection reads the public part of the contact block only.
var contactProjection = bson.M{"contact.location": 1}

type UserRepository struct {
	col *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{col: db.Collection(collectionUsers)}
}

type mongoRSAKeys struct {
	PublicKey  string `bson:"publicKey"`
	PrivateKey string `bson:"privateKey,omitempty"`
}

type mongoInterests struct {
	BusinessDomain      []string `bson:"businessDomain"`
	ProgrammingLanguage []string `bson:"programmingLanguage"`
	Framework           []string `bson:"framework"`
}

type mongoSEO struct {
	Title       string   `bson:"title"`
	Description string   `bson:"description"`
	Keywords    []string `bson:"keywords"`
}

type mongoContact struct {
	Location       string `bson:"location"`
	PersonalEmail  string `bson:"personalEmail,omitempty"`
	FromEmail      string `bson:"fromEmail,omitempty"`
	SendGridAPIKey string `bson:"sendGridApiKey,omitempty"`
}

type mongoUser struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	FirstName string             `bson:"firstName"`
	LastName  string             `bson:"lastName"`
	Email     string             `bson:"email"`
	Password  string             `bson:"password"`
	APIKey    string             `bson:"apiKey,omitempty"`
	RSAKeys   *mongoRSAKeys      `bson:"rsaKeys,omitempty"`
	About     string             `bson:"about"`
	Status    string             `bson:"status"`
	Interests mongoInterests     `bson:"interests"`
	SEO       mongoSEO           `bson:"seo"`
	CreatedAt time.Time          `bson:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt"`
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoUser{
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		Password:  user.PasswordHash,
		Interests: mongoInterests{BusinessDomain: []string{}, ProgrammingLanguage: []string{}, Framework: []string{}},
		SEO:       mongoSEO{Keywords: []string{}},
		CreatedAt: user.CreatedAt.UTC(),
		UpdatedAt: user.UpdatedAt.UTC(),
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrEmailTaken
		}
		return nil, dependencyErr("insert user", err)
	}

	created := *user
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}
	return r.findOne(ctx, bson.M{"_id": oid}, defaultUserProjection)
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"email": email}, defaultUserProjection)
}

func (r *UserRepository) FindByEmailWithSecrets(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"email": email}, nil)
}

func (r *UserRepository) FindAPIKey(ctx context.Context, id string) (string, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return "", domain.ErrUserNotFound
	}
	u, err := r.findOne(ctx, bson.M{"_id": oid}, bson.M{"apiKey": 1})
	if err != nil {
		return "", err
	}
	return u.APIKey, nil
}

func (r *UserRepository) SetAPIKey(ctx context.Context, id, apiKey string) error {
	err := r.updateByID(ctx, id, bson.M{"apiKey": apiKey})
	if mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("%w: api key", domain.ErrConflict)
	}
	return err
}

func (r *UserRepository) SetRSAKeys(ctx context.Context, id string, keys domain.RSAKeys) error {
	return r.updateByID(ctx, id, bson.M{"rsaKeys": toMongoRSAKeys(keys)})
}

func (r *UserRepository) SetRSAKeysIfAbsent(ctx context.Context, id string, keys domain.RSAKeys) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, domain.ErrUserNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"_id": oid, "rsaKeys.publicKey": bson.M{"$exists": false}}
	update := bson.M{"$set": bson.M{"rsaKeys": toMongoRSAKeys(keys), "updatedAt": time.Now().UTC()}}

	res, err := r.col.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, dependencyErr("set rsa keys", err)
	}
	return res.ModifiedCount == 1, nil
}

func (r *UserRepository) UpdateProfile(ctx context.Context, id string, p domain.Profile) (*domain.User, error) {
	set := bson.M{
		"about":  p.About,
		"status": p.Status,
		"interests": mongoInterests{
			BusinessDomain:      nonNil(p.Interests.BusinessDomain),
			ProgrammingLanguage: nonNil(p.Interests.ProgrammingLanguage),
			Framework:           nonNil(p.Interests.Framework),
		},
		"seo": mongoSEO{
			Title:       p.SEO.Title,
			Description: p.SEO.Description,
			Keywords:    nonNil(p.SEO.Keywords),
		},
	}
	if err := r.updateByID(ctx, id, set); err != nil {
		return nil, err
	}
	return r.FindByID(ctx, id)
}

func (r *UserRepository) FindContact(ctx context.Context, id string) (*domain.Contact, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc struct {
		Contact mongoContact `bson:"contact"`
	}
	opts := options.FindOne().SetProjection(contactProjection)
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}, opts).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, dependencyErr("find contact", err)
	}
	return &domain.Contact{Location: doc.Contact.Location}, nil
}

// UpdateContact sets the contact fields one by one so an omitted SendGrid
// key leaves the stored one in place.
func (r *UserRepository) UpdateContact(ctx context.Context, id string, c domain.Contact) error {
	set := bson.M{
		"contact.location":      c.Location,
		"contact.personalEmail": c.PersonalEmail,
		"contact.fromEmail":     c.FromEmail,
	}
	if c.SendGridAPIKey != "" {
		set["contact.sendGridApiKey"] = c.SendGridAPIKey
	}
	return r.updateByID(ctx, id, set)
}

// EnsureIndexes creates the unique indexes the credential store relies on.
func (r *UserRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "apiKey", Value: 1}}, Options: options.Index().SetUnique(true).SetSparse(true)},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}

func (r *UserRepository) findOne(ctx context.Context, filter, projection bson.M) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.FindOne()
	if projection != nil {
		opts.SetProjection(projection)
	}

	var mu mongoUser
	if err := r.col.FindOne(ctx, filter, opts).Decode(&mu); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, dependencyErr("find user", err)
	}
	return mu.toDomain(), nil
}

func (r *UserRepository) updateByID(ctx context.Context, id string, set bson.M) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrUserNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	set["updatedAt"] = time.Now().UTC()
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return err
		}
		return dependencyErr("update user", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (mu *mongoUser) toDomain() *domain.User {
	u := &domain.User{
		ID:           mu.ID.Hex(),
		FirstName:    mu.FirstName,
		LastName:     mu.LastName,
		Email:        mu.Email,
		PasswordHash: mu.Password,
		APIKey:       mu.APIKey,
		Profile: domain.Profile{
			About:  mu.About,
			Status: mu.Status,
			Interests: domain.Interests{
				BusinessDomain:      nonNil(mu.Interests.BusinessDomain),
				ProgrammingLanguage: nonNil(mu.Interests.ProgrammingLanguage),
				Framework:           nonNil(mu.Interests.Framework),
			},
			SEO: domain.SEO{
				Title:       mu.SEO.Title,
				Description: mu.SEO.Description,
				Keywords:    nonNil(mu.SEO.Keywords),
			},
		},
		CreatedAt: mu.CreatedAt,
		UpdatedAt: mu.UpdatedAt,
	}
	if mu.RSAKeys != nil {
		u.RSAKeys = &domain.RSAKeys{PublicKey: mu.RSAKeys.PublicKey, PrivateKey: mu.RSAKeys.PrivateKey}
	}
	return u
}

func toMongoRSAKeys(k domain.RSAKeys) mongoRSAKeys {
	return mongoRSAKeys{PublicKey: k.PublicKey, PrivateKey: k.PrivateKey}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func dependencyErr(op string, err error) error {
	return fmt.Errorf("%s: %w: %v", op, domain.ErrDependency, err)
}

package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/msomdec/exercise-tracker/internal/domain"
)

type userDocument struct {
	ID        primitive.ObjectID `bson:"_id"`
	Username  string             `bson:"username"`
	CreatedAt time.Time          `bson:"createdAt"`
}

func (d userDocument) toDomain() domain.User {
	return domain.User{
		ID:        d.ID.Hex(),
		Username:  d.Username,
		CreatedAt: d.CreatedAt,
	}
}

// userRepo implements domain.UserRepository on the users collection.
type userRepo struct {
	coll *mongo.Collection
}

func (r *userRepo) Create(ctx context.Context, user *domain.User) error {
	doc := userDocument{
		ID:        primitive.NewObjectID(),
		Username:  user.Username,
		CreatedAt: time.Now().UTC().Truncate(time.Millisecond),
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrDuplicateUsername
		}
		return fmt.Errorf("insert user: %w", err)
	}

	user.ID = doc.ID.Hex()
	user.CreatedAt = doc.CreatedAt
	return nil
}

func (r *userRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// Not an ObjectID, so no document can carry it.
		return nil, domain.ErrNotFound
	}

	var doc userDocument
	if err := r.coll.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("find user by id: %w", err)
	}

	user := doc.toDomain()
	return &user, nil
}

func (r *userRepo) List(ctx context.Context) ([]domain.User, error) {
	cur, err := r.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	var docs []userDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode users: %w", err)
	}

	users := make([]domain.User, 0, len(docs))
	for _, d := range docs {
		users = append(users, d.toDomain())
	}
	return users, nil
}

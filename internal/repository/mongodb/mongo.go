package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/msomdec/exercise-tracker/internal/domain"
)

const (
	usersCollection     = "users"
	exercisesCollection = "exercises"
)

// DB is the MongoDB-backed implementation of domain.Database.
type DB struct {
	client *mongo.Client
	db     *mongo.Database
}

var _ domain.Database = (*DB)(nil)

// New connects to the MongoDB deployment at uri and uses the named database.
func New(ctx context.Context, uri, database string) (*DB, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}

	return &DB{client: client, db: client.Database(database)}, nil
}

// Migrate creates the indexes the repositories rely on. The unique index on
// users.username is what rejects duplicate registrations.
func (db *DB) Migrate(ctx context.Context) error {
	_, err := db.db.Collection(usersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("username_unique"),
	})
	if err != nil {
		return fmt.Errorf("create users index: %w", err)
	}

	_, err = db.db.Collection(exercisesCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "date", Value: 1}},
		Options: options.Index().SetName("user_date"),
	})
	if err != nil {
		return fmt.Errorf("create exercises index: %w", err)
	}
	return nil
}

func (db *DB) Ping(ctx context.Context) error {
	return db.client.Ping(ctx, nil)
}

func (db *DB) Close() error {
	return db.client.Disconnect(context.Background())
}

func (db *DB) Users() domain.UserRepository {
	return &userRepo{coll: db.db.Collection(usersCollection)}
}

func (db *DB) Exercises() domain.ExerciseRepository {
	return &exerciseRepo{coll: db.db.Collection(exercisesCollection)}
}

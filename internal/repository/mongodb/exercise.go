package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/msomdec/exercise-tracker/internal/domain"
)

// exerciseDocument stores date as a BSON date at UTC midnight so that
// $gte/$lte on calendar days are inclusive.
type exerciseDocument struct {
	ID          primitive.ObjectID `bson:"_id"`
	UserID      primitive.ObjectID `bson:"userId"`
	Description string             `bson:"description"`
	Duration    int                `bson:"duration"`
	Date        time.Time          `bson:"date"`
	CreatedAt   time.Time          `bson:"createdAt"`
}

func (d exerciseDocument) toDomain() domain.Exercise {
	return domain.Exercise{
		ID:          d.ID.Hex(),
		UserID:      d.UserID.Hex(),
		Description: d.Description,
		Duration:    d.Duration,
		Date:        domain.NewDay(d.Date.UTC()),
		CreatedAt:   d.CreatedAt,
	}
}

// exerciseRepo implements domain.ExerciseRepository on the exercises collection.
type exerciseRepo struct {
	coll *mongo.Collection
}

func (r *exerciseRepo) Create(ctx context.Context, exercise *domain.Exercise) error {
	userID, err := primitive.ObjectIDFromHex(exercise.UserID)
	if err != nil {
		return fmt.Errorf("%w: user id %q", domain.ErrNotFound, exercise.UserID)
	}

	doc := exerciseDocument{
		ID:          primitive.NewObjectID(),
		UserID:      userID,
		Description: exercise.Description,
		Duration:    exercise.Duration,
		Date:        exercise.Date.Time(),
		CreatedAt:   time.Now().UTC().Truncate(time.Millisecond),
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert exercise: %w", err)
	}

	exercise.ID = doc.ID.Hex()
	exercise.CreatedAt = doc.CreatedAt
	return nil
}

func (r *exerciseRepo) List(ctx context.Context, filter domain.LogFilter) ([]domain.Exercise, error) {
	userID, err := primitive.ObjectIDFromHex(filter.UserID)
	if err != nil {
		return nil, fmt.Errorf("%w: user id %q", domain.ErrNotFound, filter.UserID)
	}

	query := bson.D{{Key: "userId", Value: userID}}
	if dateRange := dateRangeFilter(filter.From, filter.To); dateRange != nil {
		query = append(query, bson.E{Key: "date", Value: dateRange})
	}

	opts := options.Find()
	if filter.Limit > 0 {
		opts.SetLimit(int64(filter.Limit))
	}

	cur, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("list exercises: %w", err)
	}

	var docs []exerciseDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode exercises: %w", err)
	}

	exercises := make([]domain.Exercise, 0, len(docs))
	for _, d := range docs {
		exercises = append(exercises, d.toDomain())
	}
	return exercises, nil
}

func dateRangeFilter(from, to domain.Day) bson.D {
	var cond bson.D
	if !from.IsZero() {
		cond = append(cond, bson.E{Key: "$gte", Value: from.Time()})
	}
	if !to.IsZero() {
		cond = append(cond, bson.E{Key: "$lte", Value: to.Time()})
	}
	return cond
}

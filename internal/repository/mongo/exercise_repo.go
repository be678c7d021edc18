package mongo

import (
	"context"
	"errors"

	"fittrack/webfitness/internal/domain"
	"fittrack/webfitness/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const exerciseCollectionName = "exercises"

// mongoExerciseRepository implements repository.ExerciseRepository using
// MongoDB.
type mongoExerciseRepository struct {
	db         *mongo.Database
	collection *mongo.Collection
}

// NewMongoExerciseRepository creates an exercise repository over the given
// database.
func NewMongoExerciseRepository(db *mongo.Database) repository.ExerciseRepository {
	return &mongoExerciseRepository{
		db:         db,
		collection: db.Collection(exerciseCollectionName),
	}
}

func (r *mongoExerciseRepository) Create(ctx context.Context, exercise *domain.Exercise) (int, error) {
	id, err := nextID(ctx, r.db, exerciseCollectionName)
	if err != nil {
		return 0, err
	}
	exercise.ID = id

	if _, err := r.collection.InsertOne(ctx, exercise); err != nil {
		return 0, err
	}
	return id, nil
}

func (r *mongoExerciseRepository) GetByID(ctx context.Context, id int) (*domain.Exercise, error) {
	var exercise domain.Exercise
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&exercise)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &exercise, nil
}

func (r *mongoExerciseRepository) GetAll(ctx context.Context) ([]domain.Exercise, error) {
	return r.find(ctx, bson.M{})
}

func (r *mongoExerciseRepository) GetByCategory(ctx context.Context, category string) ([]domain.Exercise, error) {
	return r.find(ctx, bson.M{"category": category})
}

// GetByAgeRange fetches the catalog and filters in Go. The range is encoded
// as a display string ("Age 30-45"), so the overlap test lives in the domain
// package rather than in a query; the catalog is small.
func (r *mongoExerciseRepository) GetByAgeRange(ctx context.Context, minAge, maxAge int) ([]domain.Exercise, error) {
	all, err := r.find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	matched := make([]domain.Exercise, 0, len(all))
	for _, exercise := range all {
		if exercise.MatchesAgeRange(minAge, maxAge) {
			matched = append(matched, exercise)
		}
	}
	return matched, nil
}

func (r *mongoExerciseRepository) find(ctx context.Context, filter bson.M) ([]domain.Exercise, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	exercises := make([]domain.Exercise, 0)
	if err := cursor.All(ctx, &exercises); err != nil {
		return nil, err
	}
	return exercises, nil
}

// EnsureExerciseIndexes creates the indexes for the exercises collection.
func EnsureExerciseIndexes(ctx context.Context, collection *mongo.Collection) error {
	_, err := collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "category", Value: 1}},
	})
	return err
}

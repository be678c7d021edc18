package mongo

import (
	"context"
	"errors"
	"time"

	"fittrack/webfitness/internal/domain"
	"fittrack/webfitness/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const routineCollectionName = "routines"

// mongoRoutineRepository implements repository.RoutineRepository using
// MongoDB.
type mongoRoutineRepository struct {
	db         *mongo.Database
	collection *mongo.Collection
}

// NewMongoRoutineRepository creates a routine repository over the given
// database.
func NewMongoRoutineRepository(db *mongo.Database) repository.RoutineRepository {
	return &mongoRoutineRepository{
		db:         db,
		collection: db.Collection(routineCollectionName),
	}
}

func (r *mongoRoutineRepository) Create(ctx context.Context, routine *domain.Routine) (int, error) {
	id, err := nextID(ctx, r.db, routineCollectionName)
	if err != nil {
		return 0, err
	}
	routine.ID = id
	routine.CreatedAt = time.Now().UTC()

	if _, err := r.collection.InsertOne(ctx, routine); err != nil {
		return 0, err
	}
	return id, nil
}

func (r *mongoRoutineRepository) GetByID(ctx context.Context, id int) (*domain.Routine, error) {
	var routine domain.Routine
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&routine)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &routine, nil
}

func (r *mongoRoutineRepository) GetByUserID(ctx context.Context, userID int) ([]domain.Routine, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	routines := make([]domain.Routine, 0)
	if err := cursor.All(ctx, &routines); err != nil {
		return nil, err
	}
	return routines, nil
}

func (r *mongoRoutineRepository) Update(ctx context.Context, id int, patch domain.RoutinePatch) (*domain.Routine, error) {
	set := bson.M{}
	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.Exercises != nil {
		set["exercises"] = *patch.Exercises
	}
	if patch.Duration != nil {
		set["duration"] = *patch.Duration
	}
	if patch.LastCompleted != nil {
		set["lastCompleted"] = *patch.LastCompleted
	}
	if len(set) == 0 {
		return r.GetByID(ctx, id)
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var routine domain.Routine
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&routine)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &routine, nil
}

func (r *mongoRoutineRepository) Delete(ctx context.Context, id int) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// EnsureRoutineIndexes creates the indexes for the routines collection.
func EnsureRoutineIndexes(ctx context.Context, collection *mongo.Collection) error {
	_, err := collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "userId", Value: 1}},
	})
	return err
}

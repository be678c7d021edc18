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

const workoutCollectionName = "workouts"

// mongoWorkoutRepository implements repository.WorkoutRepository using
// MongoDB.
type mongoWorkoutRepository struct {
	db         *mongo.Database
	collection *mongo.Collection
}

// NewMongoWorkoutRepository creates a workout repository over the given
// database.
func NewMongoWorkoutRepository(db *mongo.Database) repository.WorkoutRepository {
	return &mongoWorkoutRepository{
		db:         db,
		collection: db.Collection(workoutCollectionName),
	}
}

func (r *mongoWorkoutRepository) Create(ctx context.Context, workout *domain.Workout) (int, error) {
	id, err := nextID(ctx, r.db, workoutCollectionName)
	if err != nil {
		return 0, err
	}
	workout.ID = id
	// Stamped at creation, re-stamped on completion.
	workout.CompletedAt = time.Now().UTC()

	if _, err := r.collection.InsertOne(ctx, workout); err != nil {
		return 0, err
	}
	return id, nil
}

func (r *mongoWorkoutRepository) GetByID(ctx context.Context, id int) (*domain.Workout, error) {
	var workout domain.Workout
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&workout)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &workout, nil
}

func (r *mongoWorkoutRepository) GetByUserID(ctx context.Context, userID int) ([]domain.Workout, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	workouts := make([]domain.Workout, 0)
	if err := cursor.All(ctx, &workouts); err != nil {
		return nil, err
	}
	return workouts, nil
}

func (r *mongoWorkoutRepository) GetActiveByUserID(ctx context.Context, userID int) (*domain.Workout, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "_id", Value: 1}})
	var workout domain.Workout
	err := r.collection.FindOne(ctx, bson.M{"userId": userID, "completed": false}, opts).Decode(&workout)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &workout, nil
}

func (r *mongoWorkoutRepository) Update(ctx context.Context, id int, patch domain.WorkoutPatch) (*domain.Workout, error) {
	set := bson.M{}
	if patch.CompletedExercises != nil {
		set["completedExercises"] = *patch.CompletedExercises
	}
	if patch.Duration != nil {
		set["duration"] = *patch.Duration
	}
	if patch.Completed != nil {
		set["completed"] = *patch.Completed
	}
	if len(set) == 0 {
		return r.GetByID(ctx, id)
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var workout domain.Workout
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&workout)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &workout, nil
}

// UpdateExercise patches the single entry whose exercise id matches, via
// read-modify-write on the embedded array. No matching entry means the array
// is written back unchanged; that is not an error.
func (r *mongoWorkoutRepository) UpdateExercise(ctx context.Context, workoutID, exerciseID int, patch domain.CompletedExercisePatch) (*domain.Workout, error) {
	workout, err := r.GetByID(ctx, workoutID)
	if err != nil {
		return nil, err
	}

	for i := range workout.CompletedExercises {
		if workout.CompletedExercises[i].ExerciseID == exerciseID {
			patch.Apply(&workout.CompletedExercises[i])
		}
	}

	update := bson.M{"$set": bson.M{"completedExercises": workout.CompletedExercises}}
	if _, err := r.collection.UpdateOne(ctx, bson.M{"_id": workoutID}, update); err != nil {
		return nil, err
	}
	return workout, nil
}

// Complete marks the workout and every exercise entry finished, re-stamps
// CompletedAt, then bumps the parent routine's LastCompleted to the same
// timestamp. The routine update is best-effort: the workout write has already
// landed, and a deleted routine is skipped silently.
func (r *mongoWorkoutRepository) Complete(ctx context.Context, id int) (*domain.Workout, error) {
	workout, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	workout.Completed = true
	workout.CompletedAt = now
	for i := range workout.CompletedExercises {
		workout.CompletedExercises[i].Completed = true
	}

	update := bson.M{"$set": bson.M{
		"completed":          true,
		"completedAt":        now,
		"completedExercises": workout.CompletedExercises,
	}}
	if _, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update); err != nil {
		return nil, err
	}

	routineUpdate := bson.M{"$set": bson.M{"lastCompleted": now}}
	if _, err := r.db.Collection(routineCollectionName).UpdateOne(ctx, bson.M{"_id": workout.RoutineID}, routineUpdate); err != nil {
		return nil, err
	}

	return workout, nil
}

// EnsureWorkoutIndexes creates the indexes for the workouts collection.
func EnsureWorkoutIndexes(ctx context.Context, collection *mongo.Collection) error {
	_, err := collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "userId", Value: 1}, {Key: "completed", Value: 1}},
	})
	return err
}

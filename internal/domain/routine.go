package domain

import "time"

// Routine is a user-authored, ordered workout template.
type Routine struct {
	ID            int               `bson:"_id" json:"id"`
	UserID        int               `bson:"userId" json:"userId"`
	Name          string            `bson:"name" json:"name"`
	Exercises     []RoutineExercise `bson:"exercises" json:"exercises"`
	Duration      int               `bson:"duration" json:"duration"` // Estimated total, in seconds
	LastCompleted *time.Time        `bson:"lastCompleted,omitempty" json:"lastCompleted,omitempty"`
	CreatedAt     time.Time         `bson:"createdAt" json:"createdAt"`
}

// RoutineExercise is one entry in a routine. It references the exercise by id
// only; the referenced exercise is not required to exist. Reps and Duration
// are both optional (a plank is timed, a push-up is counted).
type RoutineExercise struct {
	ExerciseID int  `bson:"exerciseId" json:"exerciseId"`
	Sets       int  `bson:"sets" json:"sets"`
	Reps       *int `bson:"reps,omitempty" json:"reps"`
	Duration   *int `bson:"duration,omitempty" json:"duration"` // Seconds per set
}

// RoutinePatch lists the mutable routine fields. Nil fields are left
// untouched by an update.
type RoutinePatch struct {
	Name          *string            `json:"name,omitempty"`
	Exercises     *[]RoutineExercise `json:"exercises,omitempty"`
	Duration      *int               `json:"duration,omitempty"`
	LastCompleted *time.Time         `json:"lastCompleted,omitempty"`
}

// Apply merges the patch over the routine, field by field.
func (p RoutinePatch) Apply(r *Routine) {
	if p.Name != nil {
		r.Name = *p.Name
	}
	if p.Exercises != nil {
		r.Exercises = *p.Exercises
	}
	if p.Duration != nil {
		r.Duration = *p.Duration
	}
	if p.LastCompleted != nil {
		t := *p.LastCompleted
		r.LastCompleted = &t
	}
}

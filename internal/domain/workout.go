package domain

import "time"

// Workout is a single execution of a routine, in progress or finished.
// CompletedAt is stamped at creation and stamped again when the workout is
// completed, so an unfinished workout carries its creation time there.
type Workout struct {
	ID                 int                 `bson:"_id" json:"id"`
	UserID             int                 `bson:"userId" json:"userId"`
	RoutineID          int                 `bson:"routineId" json:"routineId"`
	CompletedExercises []CompletedExercise `bson:"completedExercises" json:"completedExercises"`
	Duration           int                 `bson:"duration" json:"duration"` // Seconds, copied from the routine
	Completed          bool                `bson:"completed" json:"completed"`
	CompletedAt        time.Time           `bson:"completedAt" json:"completedAt"`
}

// CompletedExercise mirrors a routine entry at the time the workout started,
// plus the per-entry progress flag.
type CompletedExercise struct {
	ExerciseID int  `bson:"exerciseId" json:"exerciseId"`
	Sets       int  `bson:"sets" json:"sets"`
	Reps       *int `bson:"reps,omitempty" json:"reps"`
	Duration   *int `bson:"duration,omitempty" json:"duration"`
	Completed  bool `bson:"completed" json:"completed"`
}

// AllCompleted reports whether every exercise entry has been finished.
// A workout with no entries is never considered finished, otherwise it would
// auto-complete the moment it starts.
func (w *Workout) AllCompleted() bool {
	if len(w.CompletedExercises) == 0 {
		return false
	}
	for _, ex := range w.CompletedExercises {
		if !ex.Completed {
			return false
		}
	}
	return true
}

// WorkoutPatch lists the mutable workout fields. Nil fields are left
// untouched by an update.
type WorkoutPatch struct {
	CompletedExercises *[]CompletedExercise `json:"completedExercises,omitempty"`
	Duration           *int                 `json:"duration,omitempty"`
	Completed          *bool                `json:"completed,omitempty"`
}

// Apply merges the patch over the workout, field by field.
func (p WorkoutPatch) Apply(w *Workout) {
	if p.CompletedExercises != nil {
		w.CompletedExercises = *p.CompletedExercises
	}
	if p.Duration != nil {
		w.Duration = *p.Duration
	}
	if p.Completed != nil {
		w.Completed = *p.Completed
	}
}

// CompletedExercisePatch updates a single entry inside a workout's
// CompletedExercises list.
type CompletedExercisePatch struct {
	Sets      *int  `json:"sets,omitempty"`
	Reps      *int  `json:"reps,omitempty"`
	Duration  *int  `json:"duration,omitempty"`
	Completed *bool `json:"completed,omitempty"`
}

// Apply merges the patch over one exercise entry.
func (p CompletedExercisePatch) Apply(ex *CompletedExercise) {
	if p.Sets != nil {
		ex.Sets = *p.Sets
	}
	if p.Reps != nil {
		v := *p.Reps
		ex.Reps = &v
	}
	if p.Duration != nil {
		v := *p.Duration
		ex.Duration = &v
	}
	if p.Completed != nil {
		ex.Completed = *p.Completed
	}
}

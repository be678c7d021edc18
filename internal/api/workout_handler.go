package api

import (
	"errors"
	"net/http"
	"strconv"

	"fittrack/webfitness/internal/domain"
	"fittrack/webfitness/internal/service"

	"github.com/gin-gonic/gin"
)

// WorkoutHandler holds the workout service dependency.
type WorkoutHandler struct {
	workoutService service.WorkoutService
}

// NewWorkoutHandler creates a new WorkoutHandler.
func NewWorkoutHandler(workoutService service.WorkoutService) *WorkoutHandler {
	return &WorkoutHandler{workoutService: workoutService}
}

// --- DTOs for API ---

// StartWorkoutRequest defines the expected JSON for starting a workout from a
// routine.
type StartWorkoutRequest struct {
	RoutineID int `json:"routineId" binding:"required,gt=0"`
}

// --- Handler Methods ---

// ListWorkouts handles GET /api/workouts, scoped to the current user.
func (h *WorkoutHandler) ListWorkouts(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	workouts, err := h.workoutService.GetWorkoutsForUser(c.Request.Context(), userID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve workouts.")
		return
	}

	c.JSON(http.StatusOK, workouts)
}

// GetActiveWorkout handles GET /api/workouts/active. The client checks this
// before starting a new workout; the store itself allows several active ones.
func (h *WorkoutHandler) GetActiveWorkout(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	workout, err := h.workoutService.GetActiveWorkout(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrNoActiveWorkout) {
			abortWithError(c, http.StatusNotFound, "No active workout.")
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to retrieve workout.")
		}
		return
	}

	c.JSON(http.StatusOK, workout)
}

// StartWorkout handles POST /api/workouts.
func (h *WorkoutHandler) StartWorkout(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req StartWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid workout data: "+err.Error())
		return
	}

	workout, err := h.workoutService.StartWorkout(c.Request.Context(), userID, req.RoutineID)
	if err != nil {
		if errors.Is(err, service.ErrRoutineNotFound) {
			abortWithError(c, http.StatusNotFound, "Routine not found.")
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to start workout.")
		}
		return
	}

	c.JSON(http.StatusCreated, workout)
}

// UpdateWorkout handles PATCH /api/workouts/:id. Flipping completed to true
// also stamps the routine's lastCompleted.
func (h *WorkoutHandler) UpdateWorkout(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid workout id.")
		return
	}

	var patch domain.WorkoutPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid workout data: "+err.Error())
		return
	}

	workout, err := h.workoutService.UpdateWorkout(c.Request.Context(), id, patch)
	if err != nil {
		if errors.Is(err, service.ErrWorkoutNotFound) {
			abortWithError(c, http.StatusNotFound, "Workout not found.")
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to update workout.")
		}
		return
	}

	c.JSON(http.StatusOK, workout)
}

// UpdateWorkoutExercise handles PATCH /api/workouts/:id/exercise/:exerciseId.
// Marking the last remaining exercise complete completes the whole workout.
func (h *WorkoutHandler) UpdateWorkoutExercise(c *gin.Context) {
	workoutID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid workout id.")
		return
	}
	exerciseID, err := strconv.Atoi(c.Param("exerciseId"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid exercise id.")
		return
	}

	var patch domain.CompletedExercisePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid exercise data: "+err.Error())
		return
	}

	workout, err := h.workoutService.UpdateWorkoutExercise(c.Request.Context(), workoutID, exerciseID, patch)
	if err != nil {
		if errors.Is(err, service.ErrWorkoutNotFound) {
			abortWithError(c, http.StatusNotFound, "Workout not found.")
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to update workout exercise.")
		}
		return
	}

	c.JSON(http.StatusOK, workout)
}

package api

import (
	"errors"
	"net/http"
	"strconv"

	"fittrack/webfitness/internal/domain"
	"fittrack/webfitness/internal/service"

	"github.com/gin-gonic/gin"
)

// ExerciseHandler holds the exercise service dependency.
type ExerciseHandler struct {
	exerciseService service.ExerciseService
}

// NewExerciseHandler creates a new ExerciseHandler.
func NewExerciseHandler(exerciseService service.ExerciseService) *ExerciseHandler {
	return &ExerciseHandler{exerciseService: exerciseService}
}

// --- DTOs for API ---

// CreateExerciseRequest defines the expected JSON for adding a catalog entry.
type CreateExerciseRequest struct {
	Name          string                `json:"name" binding:"required"`
	Description   string                `json:"description" binding:"required"`
	ImageURL      string                `json:"imageUrl" binding:"required,url"`
	VideoURL      string                `json:"videoUrl" binding:"omitempty,url"`
	Instructions  []domain.Instruction  `json:"instructions"`
	Category      string                `json:"category" binding:"required"`
	Difficulty    string                `json:"difficulty" binding:"required"`
	AgeRange      string                `json:"ageRange" binding:"required"`
	MuscleGroups  string                `json:"muscleGroups" binding:"required"`
	Modifications []domain.Modification `json:"modifications"`
}

// --- Handler Methods ---

// ListExercises handles GET /api/exercises. The catalog can be narrowed with
// either ?category=... or ?minAge=...&maxAge=...; with no query parameters
// the full catalog is returned.
func (h *ExerciseHandler) ListExercises(c *gin.Context) {
	ctx := c.Request.Context()

	minAgeStr, maxAgeStr := c.Query("minAge"), c.Query("maxAge")
	if minAgeStr != "" && maxAgeStr != "" {
		minAge, err := strconv.Atoi(minAgeStr)
		if err != nil {
			abortWithError(c, http.StatusBadRequest, "Invalid minAge.")
			return
		}
		maxAge, err := strconv.Atoi(maxAgeStr)
		if err != nil {
			abortWithError(c, http.StatusBadRequest, "Invalid maxAge.")
			return
		}
		exercises, err := h.exerciseService.GetExercisesByAgeRange(ctx, minAge, maxAge)
		if err != nil {
			abortWithError(c, http.StatusInternalServerError, "Failed to retrieve exercises.")
			return
		}
		c.JSON(http.StatusOK, exercises)
		return
	}

	if category := c.Query("category"); category != "" {
		exercises, err := h.exerciseService.GetExercisesByCategory(ctx, category)
		if err != nil {
			abortWithError(c, http.StatusInternalServerError, "Failed to retrieve exercises.")
			return
		}
		c.JSON(http.StatusOK, exercises)
		return
	}

	exercises, err := h.exerciseService.GetAllExercises(ctx)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve exercises.")
		return
	}
	c.JSON(http.StatusOK, exercises)
}

// GetExercise handles GET /api/exercises/:id.
func (h *ExerciseHandler) GetExercise(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid exercise id.")
		return
	}

	exercise, err := h.exerciseService.GetExercise(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrExerciseNotFound) {
			abortWithError(c, http.StatusNotFound, "Exercise not found.")
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to retrieve exercise.")
		}
		return
	}

	c.JSON(http.StatusOK, exercise)
}

// CreateExercise handles POST /api/exercises.
func (h *ExerciseHandler) CreateExercise(c *gin.Context) {
	var req CreateExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid exercise data: "+err.Error())
		return
	}

	exercise := &domain.Exercise{
		Name:          req.Name,
		Description:   req.Description,
		ImageURL:      req.ImageURL,
		VideoURL:      req.VideoURL,
		Instructions:  req.Instructions,
		Category:      req.Category,
		Difficulty:    req.Difficulty,
		AgeRange:      req.AgeRange,
		MuscleGroups:  req.MuscleGroups,
		Modifications: req.Modifications,
	}

	created, err := h.exerciseService.CreateExercise(c.Request.Context(), exercise)
	if err != nil {
		if errors.Is(err, service.ErrValidationFailed) {
			abortWithError(c, http.StatusBadRequest, "Invalid exercise data.")
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to create exercise.")
		}
		return
	}

	c.JSON(http.StatusCreated, created)
}

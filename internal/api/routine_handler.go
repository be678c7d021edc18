package api

import (
	"errors"
	"net/http"
	"strconv"

	"fittrack/webfitness/internal/domain"
	"fittrack/webfitness/internal/service"

	"github.com/gin-gonic/gin"
)

// RoutineHandler holds the routine service dependency.
type RoutineHandler struct {
	routineService service.RoutineService
}

// NewRoutineHandler creates a new RoutineHandler.
func NewRoutineHandler(routineService service.RoutineService) *RoutineHandler {
	return &RoutineHandler{routineService: routineService}
}

// --- DTOs for API ---

// CreateRoutineRequest defines the expected JSON for creating a routine. The
// owner is always the current user; a userId in the payload is ignored.
type CreateRoutineRequest struct {
	Name      string                   `json:"name" binding:"required"`
	Exercises []domain.RoutineExercise `json:"exercises" binding:"required"`
	Duration  int                      `json:"duration" binding:"required,gt=0"`
}

// --- Handler Methods ---

// ListRoutines handles GET /api/routines, scoped to the current user.
func (h *RoutineHandler) ListRoutines(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	routines, err := h.routineService.GetRoutinesForUser(c.Request.Context(), userID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve routines.")
		return
	}

	c.JSON(http.StatusOK, routines)
}

// CreateRoutine handles POST /api/routines.
func (h *RoutineHandler) CreateRoutine(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req CreateRoutineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid routine data: "+err.Error())
		return
	}

	routine, err := h.routineService.CreateRoutine(c.Request.Context(), userID, req.Name, req.Exercises, req.Duration)
	if err != nil {
		if errors.Is(err, service.ErrValidationFailed) {
			abortWithError(c, http.StatusBadRequest, "Invalid routine data.")
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to create routine.")
		}
		return
	}

	c.JSON(http.StatusCreated, routine)
}

// UpdateRoutine handles PATCH /api/routines/:id. Fields absent from the
// payload are left unchanged.
func (h *RoutineHandler) UpdateRoutine(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid routine id.")
		return
	}

	var patch domain.RoutinePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid routine data: "+err.Error())
		return
	}

	routine, err := h.routineService.UpdateRoutine(c.Request.Context(), id, patch)
	if err != nil {
		if errors.Is(err, service.ErrRoutineNotFound) {
			abortWithError(c, http.StatusNotFound, "Routine not found.")
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to update routine.")
		}
		return
	}

	c.JSON(http.StatusOK, routine)
}

// DeleteRoutine handles DELETE /api/routines/:id.
func (h *RoutineHandler) DeleteRoutine(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid routine id.")
		return
	}

	if err := h.routineService.DeleteRoutine(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrRoutineNotFound) {
			abortWithError(c, http.StatusNotFound, "Routine not found.")
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to delete routine.")
		}
		return
	}

	c.Status(http.StatusNoContent)
}

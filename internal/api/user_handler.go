package api

import (
	"errors"
	"net/http"
	"strconv"

	"fittrack/webfitness/internal/domain"
	"fittrack/webfitness/internal/service"

	"github.com/gin-gonic/gin"
)

// UserHandler holds the user service dependency.
type UserHandler struct {
	userService service.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// --- DTOs for API ---

// CreateUserRequest defines the expected JSON for onboarding a user.
type CreateUserRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	Age      int    `json:"age" binding:"required,gt=0"`
	Name     string `json:"name" binding:"required"`
}

// UserResponse is the DTO for returning user details. The password never
// leaves the server in any payload.
type UserResponse struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Age      int    `json:"age"`
	Name     string `json:"name"`
}

// MapUserToResponse converts a domain.User to UserResponse.
func MapUserToResponse(u *domain.User) UserResponse {
	if u == nil {
		return UserResponse{}
	}
	return UserResponse{
		ID:       u.ID,
		Username: u.Username,
		Age:      u.Age,
		Name:     u.Name,
	}
}

// --- Handler Methods ---

// GetCurrentUser handles GET /api/users/current.
func (h *UserHandler) GetCurrentUser(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	user, err := h.userService.GetUser(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			abortWithError(c, http.StatusNotFound, "User not found.")
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to load user.")
		}
		return
	}

	c.JSON(http.StatusOK, MapUserToResponse(user))
}

// CreateUser handles POST /api/users.
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid user data: "+err.Error())
		return
	}

	user, err := h.userService.CreateUser(c.Request.Context(), req.Username, req.Password, req.Age, req.Name)
	if err != nil {
		if errors.Is(err, service.ErrValidationFailed) {
			abortWithError(c, http.StatusBadRequest, "Invalid user data.")
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to create user.")
		}
		return
	}

	c.JSON(http.StatusCreated, MapUserToResponse(user))
}

// UpdateUser handles PATCH /api/users/:id. Fields absent from the payload are
// left unchanged.
func (h *UserHandler) UpdateUser(c *gin.Context) {
	userID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid user id.")
		return
	}

	var patch domain.UserPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid user data: "+err.Error())
		return
	}

	user, err := h.userService.UpdateUser(c.Request.Context(), userID, patch)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			abortWithError(c, http.StatusNotFound, "User not found.")
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to update user.")
		}
		return
	}

	c.JSON(http.StatusOK, MapUserToResponse(user))
}

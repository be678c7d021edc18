package api

import (
	"net/http"

	"fittrack/webfitness/internal/service"

	"github.com/gin-gonic/gin"
)

// SetupRoutes wires all API endpoints onto the router. The store and services
// are constructed by the caller and injected here; nothing in this package
// holds global state.
func SetupRoutes(
	router *gin.Engine,
	currentUserID int,
	userService service.UserService,
	exerciseService service.ExerciseService,
	routineService service.RoutineService,
	workoutService service.WorkoutService,
) {
	userHandler := NewUserHandler(userService)
	exerciseHandler := NewExerciseHandler(exerciseService)
	routineHandler := NewRoutineHandler(routineService)
	workoutHandler := NewWorkoutHandler(workoutService)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	apiGroup := router.Group("/api")
	apiGroup.Use(CurrentUserMiddleware(currentUserID))
	{
		userGroup := apiGroup.Group("/users")
		{
			userGroup.GET("/current", userHandler.GetCurrentUser)
			userGroup.POST("", userHandler.CreateUser)
			userGroup.PATCH("/:id", userHandler.UpdateUser)
		}

		exerciseGroup := apiGroup.Group("/exercises")
		{
			exerciseGroup.GET("", exerciseHandler.ListExercises)
			exerciseGroup.GET("/:id", exerciseHandler.GetExercise)
			exerciseGroup.POST("", exerciseHandler.CreateExercise)
		}

		routineGroup := apiGroup.Group("/routines")
		{
			routineGroup.GET("", routineHandler.ListRoutines)
			routineGroup.POST("", routineHandler.CreateRoutine)
			routineGroup.PATCH("/:id", routineHandler.UpdateRoutine)
			routineGroup.DELETE("/:id", routineHandler.DeleteRoutine)
		}

		workoutGroup := apiGroup.Group("/workouts")
		{
			workoutGroup.GET("", workoutHandler.ListWorkouts)
			workoutGroup.GET("/active", workoutHandler.GetActiveWorkout)
			workoutGroup.POST("", workoutHandler.StartWorkout)
			workoutGroup.PATCH("/:id", workoutHandler.UpdateWorkout)
			workoutGroup.PATCH("/:id/exercise/:exerciseId", workoutHandler.UpdateWorkoutExercise)
		}
	}
}

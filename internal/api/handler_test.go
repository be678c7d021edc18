package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"fittrack/webfitness/internal/repository/memory"
	"fittrack/webfitness/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

const testUserID = 1

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := memory.NewStore()
	router := gin.New()
	router.Use(RequestIDMiddleware())
	SetupRoutes(
		router,
		testUserID,
		service.NewUserService(store.Users()),
		service.NewExerciseService(store.Exercises()),
		service.NewRoutineService(store.Routines()),
		service.NewWorkoutService(store.Workouts(), store.Routines()),
	)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req, err := http.NewRequest(method, path, strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func TestCurrentUserLifecycle(t *testing.T) {
	router := newTestRouter(t)

	// Nobody onboarded yet.
	rr := doJSON(t, router, http.MethodGet, "/api/users/current", "")
	require.Equal(t, http.StatusNotFound, rr.Code)

	// Onboard. The first created user gets id 1, the configured current id.
	rr = doJSON(t, router, http.MethodPost, "/api/users",
		`{"username":"maria","password":"hunter2","age":34,"name":"Maria"}`)
	require.Equal(t, http.StatusCreated, rr.Code)
	require.NotContains(t, rr.Body.String(), "hunter2")
	require.NotContains(t, rr.Body.String(), "password")

	rr = doJSON(t, router, http.MethodGet, "/api/users/current", "")
	require.Equal(t, http.StatusOK, rr.Code)

	var user struct {
		ID       int    `json:"id"`
		Username string `json:"username"`
		Age      int    `json:"age"`
		Name     string `json:"name"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &user))
	require.Equal(t, testUserID, user.ID)
	require.Equal(t, "maria", user.Username)
	require.NotContains(t, rr.Body.String(), "password")
}

func TestCreateUserValidation(t *testing.T) {
	router := newTestRouter(t)

	rr := doJSON(t, router, http.MethodPost, "/api/users", `{"username":"maria"}`)
	require.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestUpdateUserPartial(t *testing.T) {
	router := newTestRouter(t)

	rr := doJSON(t, router, http.MethodPost, "/api/users",
		`{"username":"maria","password":"hunter2","age":34,"name":"Maria"}`)
	require.Equal(t, http.StatusCreated, rr.Code)

	rr = doJSON(t, router, http.MethodPatch, "/api/users/1", `{"age":35}`)
	require.Equal(t, http.StatusOK, rr.Code)

	var user struct {
		Age  int    `json:"age"`
		Name string `json:"name"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &user))
	require.Equal(t, 35, user.Age)
	require.Equal(t, "Maria", user.Name)

	rr = doJSON(t, router, http.MethodPatch, "/api/users/99", `{"age":40}`)
	require.Equal(t, http.StatusNotFound, rr.Code)
}

func TestExerciseEndpoints(t *testing.T) {
	router := newTestRouter(t)

	create := func(name, category, ageRange string) {
		body := `{"name":"` + name + `","description":"d","imageUrl":"https://example.com/img.jpg",` +
			`"category":"` + category + `","difficulty":"Beginner","ageRange":"` + ageRange + `","muscleGroups":"Core"}`
		rr := doJSON(t, router, http.MethodPost, "/api/exercises", body)
		require.Equal(t, http.StatusCreated, rr.Code)
	}

	create("Plank", "Core", "All Ages")
	create("Push-ups", "Upper Body", "Age 30-45")
	create("Heavy Deadlifts", "Lower Body", "Age 50-60")

	rr := doJSON(t, router, http.MethodGet, "/api/exercises", "")
	require.Equal(t, http.StatusOK, rr.Code)
	var all []map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &all))
	require.Len(t, all, 3)

	rr = doJSON(t, router, http.MethodGet, "/api/exercises?category=Core", "")
	require.Equal(t, http.StatusOK, rr.Code)
	var core []map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &core))
	require.Len(t, core, 1)
	require.Equal(t, "Plank", core[0]["name"])

	rr = doJSON(t, router, http.MethodGet, "/api/exercises?minAge=30&maxAge=45", "")
	require.Equal(t, http.StatusOK, rr.Code)
	var matched []map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &matched))
	require.Len(t, matched, 2)

	rr = doJSON(t, router, http.MethodGet, "/api/exercises/1", "")
	require.Equal(t, http.StatusOK, rr.Code)

	rr = doJSON(t, router, http.MethodGet, "/api/exercises/42", "")
	require.Equal(t, http.StatusNotFound, rr.Code)

	rr = doJSON(t, router, http.MethodPost, "/api/exercises", `{"name":"incomplete"}`)
	require.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestRoutineEndpoints(t *testing.T) {
	router := newTestRouter(t)

	rr := doJSON(t, router, http.MethodPost, "/api/routines",
		`{"name":"Morning","exercises":[{"exerciseId":1,"sets":3,"reps":10,"duration":null}],"duration":300}`)
	require.Equal(t, http.StatusCreated, rr.Code)

	var routine struct {
		ID     int `json:"id"`
		UserID int `json:"userId"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &routine))
	require.Equal(t, 1, routine.ID)
	require.Equal(t, testUserID, routine.UserID)

	rr = doJSON(t, router, http.MethodGet, "/api/routines", "")
	require.Equal(t, http.StatusOK, rr.Code)
	var routines []map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &routines))
	require.Len(t, routines, 1)

	rr = doJSON(t, router, http.MethodPatch, "/api/routines/1", `{"name":"Evening"}`)
	require.Equal(t, http.StatusOK, rr.Code)
	require.Contains(t, rr.Body.String(), "Evening")

	rr = doJSON(t, router, http.MethodDelete, "/api/routines/1", "")
	require.Equal(t, http.StatusNoContent, rr.Code)

	rr = doJSON(t, router, http.MethodDelete, "/api/routines/1", "")
	require.Equal(t, http.StatusNotFound, rr.Code)
}

func TestStartWorkoutRequiresRoutine(t *testing.T) {
	router := newTestRouter(t)

	rr := doJSON(t, router, http.MethodPost, "/api/workouts", `{"routineId":42}`)
	require.Equal(t, http.StatusNotFound, rr.Code)

	rr = doJSON(t, router, http.MethodPost, "/api/workouts", `{}`)
	require.Equal(t, http.StatusBadRequest, rr.Code)
}

// Full session over HTTP: build a routine, start it, finish its one exercise,
// and watch the workout complete and the routine get stamped without any
// explicit complete call.
func TestWorkoutSessionFlow(t *testing.T) {
	router := newTestRouter(t)

	rr := doJSON(t, router, http.MethodPost, "/api/routines",
		`{"name":"A","exercises":[{"exerciseId":5,"sets":3,"reps":10,"duration":null}],"duration":300}`)
	require.Equal(t, http.StatusCreated, rr.Code)

	rr = doJSON(t, router, http.MethodPost, "/api/workouts", `{"routineId":1}`)
	require.Equal(t, http.StatusCreated, rr.Code)

	var workout struct {
		ID                 int  `json:"id"`
		Completed          bool `json:"completed"`
		CompletedExercises []struct {
			ExerciseID int  `json:"exerciseId"`
			Completed  bool `json:"completed"`
		} `json:"completedExercises"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &workout))
	require.False(t, workout.Completed)
	require.Len(t, workout.CompletedExercises, 1)
	require.False(t, workout.CompletedExercises[0].Completed)

	rr = doJSON(t, router, http.MethodGet, "/api/workouts/active", "")
	require.Equal(t, http.StatusOK, rr.Code)

	rr = doJSON(t, router, http.MethodPatch, "/api/workouts/1/exercise/5", `{"completed":true}`)
	require.Equal(t, http.StatusOK, rr.Code)
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &workout))
	require.True(t, workout.Completed)
	require.True(t, workout.CompletedExercises[0].Completed)

	rr = doJSON(t, router, http.MethodGet, "/api/routines", "")
	require.Equal(t, http.StatusOK, rr.Code)
	var routines []struct {
		LastCompleted *string `json:"lastCompleted"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &routines))
	require.Len(t, routines, 1)
	require.NotNil(t, routines[0].LastCompleted)

	rr = doJSON(t, router, http.MethodGet, "/api/workouts/active", "")
	require.Equal(t, http.StatusNotFound, rr.Code)

	rr = doJSON(t, router, http.MethodGet, "/api/workouts", "")
	require.Equal(t, http.StatusOK, rr.Code)
	var workouts []map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &workouts))
	require.Len(t, workouts, 1)
}

func TestUpdateWorkoutExerciseUnknownIDIsAccepted(t *testing.T) {
	router := newTestRouter(t)

	rr := doJSON(t, router, http.MethodPost, "/api/routines",
		`{"name":"A","exercises":[{"exerciseId":5,"sets":3,"reps":10,"duration":null}],"duration":300}`)
	require.Equal(t, http.StatusCreated, rr.Code)

	rr = doJSON(t, router, http.MethodPost, "/api/workouts", `{"routineId":1}`)
	require.Equal(t, http.StatusCreated, rr.Code)

	rr = doJSON(t, router, http.MethodPatch, "/api/workouts/1/exercise/99", `{"completed":true}`)
	require.Equal(t, http.StatusOK, rr.Code)
	require.Contains(t, rr.Body.String(), `"completed":false`)

	rr = doJSON(t, router, http.MethodPatch, "/api/workouts/42/exercise/5", `{"completed":true}`)
	require.Equal(t, http.StatusNotFound, rr.Code)
}

func TestRequestIDHeader(t *testing.T) {
	router := newTestRouter(t)

	rr := doJSON(t, router, http.MethodGet, "/ping", "")
	require.Equal(t, http.StatusOK, rr.Code)
	require.NotEmpty(t, rr.Header().Get(RequestIDHeaderName))

	req, err := http.NewRequest(http.MethodGet, "/ping", nil)
	require.NoError(t, err)
	req.Header.Set(RequestIDHeaderName, "abc-123")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, "abc-123", rec.Header().Get(RequestIDHeaderName))
}

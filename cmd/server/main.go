package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fittrack/webfitness/internal/api"
	"fittrack/webfitness/internal/config"
	"fittrack/webfitness/internal/repository"
	"fittrack/webfitness/internal/repository/memory"
	mongorepo "fittrack/webfitness/internal/repository/mongo"
	"fittrack/webfitness/internal/repository/seed"
	"fittrack/webfitness/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	log.Println("Starting WebFitness server...")

	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("FATAL: Could not load config: %v", err)
	}
	log.Printf("Configuration loaded (driver=%s).", cfg.Database.Driver)

	// --- Storage ---
	var (
		userRepo     repository.UserRepository
		exerciseRepo repository.ExerciseRepository
		routineRepo  repository.RoutineRepository
		workoutRepo  repository.WorkoutRepository
	)

	switch cfg.Database.Driver {
	case config.DriverMemory:
		store := memory.NewStore()
		userRepo = store.Users()
		exerciseRepo = store.Exercises()
		routineRepo = store.Routines()
		workoutRepo = store.Workouts()

	case config.DriverMongo:
		dbClient, err := mongorepo.ConnectDB(cfg.Database.URI)
		if err != nil {
			log.Fatalf("FATAL: Could not connect to MongoDB: %v", err)
		}
		defer func() {
			log.Println("Disconnecting MongoDB...")
			if err := mongorepo.DisconnectDB(dbClient); err != nil {
				log.Printf("ERROR: Failed to disconnect MongoDB: %v", err)
			}
		}()
		appDB := dbClient.Database(cfg.Database.Name)
		log.Println("Database connection established.")

		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
			defer cancel()
			if err := mongorepo.EnsureUserIndexes(ctx, appDB.Collection("users")); err != nil {
				log.Printf("WARN: user indexes: %v", err)
			}
			if err := mongorepo.EnsureExerciseIndexes(ctx, appDB.Collection("exercises")); err != nil {
				log.Printf("WARN: exercise indexes: %v", err)
			}
			if err := mongorepo.EnsureRoutineIndexes(ctx, appDB.Collection("routines")); err != nil {
				log.Printf("WARN: routine indexes: %v", err)
			}
			if err := mongorepo.EnsureWorkoutIndexes(ctx, appDB.Collection("workouts")); err != nil {
				log.Printf("WARN: workout indexes: %v", err)
			}
		}()

		userRepo = mongorepo.NewMongoUserRepository(appDB)
		exerciseRepo = mongorepo.NewMongoExerciseRepository(appDB)
		routineRepo = mongorepo.NewMongoRoutineRepository(appDB)
		workoutRepo = mongorepo.NewMongoWorkoutRepository(appDB)

	default:
		log.Fatalf("FATAL: Unknown database driver %q", cfg.Database.Driver)
	}

	// --- Seed the exercise catalog ---
	seedCtx, seedCancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := seed.Ensure(seedCtx, exerciseRepo); err != nil {
		seedCancel()
		log.Fatalf("FATAL: Could not seed exercise catalog: %v", err)
	}
	seedCancel()
	log.Println("Exercise catalog ready.")

	// --- Services ---
	userService := service.NewUserService(userRepo)
	exerciseService := service.NewExerciseService(exerciseRepo)
	routineService := service.NewRoutineService(routineRepo)
	workoutService := service.NewWorkoutService(workoutRepo, routineRepo)

	// --- Router ---
	router := gin.Default() // Includes Logger and Recovery middleware
	router.Use(api.RequestIDMiddleware())
	router.Use(cors.Default())

	log.Println("Setting up API routes...")
	api.SetupRoutes(router, cfg.User.CurrentID, userService, exerciseService, routineService, workoutService)

	// --- HTTP Server ---
	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	log.Printf("Server starting on %s", cfg.Server.Address)

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("FATAL: ListenAndServe Error: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Fatalf("FATAL: Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting.")
}

// Package seed holds the built-in exercise catalog and loads it into an
// empty catalog repository at startup.
package seed

import (
	"context"

	"fittrack/webfitness/internal/domain"
	"fittrack/webfitness/internal/repository"
)

// Ensure loads the built-in catalog when the repository is empty. A non-empty
// catalog (a persistent backend already seeded on an earlier run) is left
// untouched.
func Ensure(ctx context.Context, exercises repository.ExerciseRepository) error {
	existing, err := exercises.GetAll(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}
	for i := range catalog {
		if _, err := exercises.Create(ctx, &catalog[i]); err != nil {
			return err
		}
	}
	return nil
}

var catalog = []domain.Exercise{
	{
		Name:        "Push-ups",
		Description: "A classic exercise that targets your chest, shoulders, and triceps.",
		ImageURL:    "https://images.unsplash.com/photo-1581009146145-b5ef050c2e1e?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80",
		VideoURL:    "https://storage.googleapis.com/webfitness-content/exercises/push-ups-demo.mp4",
		Instructions: []domain.Instruction{
			{
				Step:        1,
				Title:       "Starting Position",
				Description: "Begin in a plank position with your hands slightly wider than shoulder-width apart, fingers pointing forward. Your body should form a straight line from head to heels.",
				KeyPoint:    "Keep your core engaged and avoid sagging your hips or arching your back.",
			},
			{
				Step:        2,
				Title:       "Lowering Phase",
				Description: "Begin bending your elbows to lower your body towards the floor. Keep your elbows at about a 45-degree angle to your body, not flared out to the sides.",
				KeyPoint:    "Lower until your chest is about an inch from the ground.",
			},
			{
				Step:        3,
				Title:       "Pushing Phase",
				Description: "Push through your palms to straighten your arms and return to the starting position. Fully extend your arms without locking your elbows.",
				KeyPoint:    "Exhale as you push up and maintain that straight line from head to heels.",
			},
		},
		Category:     domain.CategoryUpperBody,
		Difficulty:   "Beginner",
		AgeRange:     "Age 30-45",
		MuscleGroups: "Chest, Shoulders, Triceps",
		Modifications: []domain.Modification{
			{Type: "easier", Name: "Knee Push-ups", Description: "Perform with knees on the ground to reduce the weight you're pushing."},
			{Type: "harder", Name: "Decline Push-ups", Description: "Place your feet on an elevated surface to increase the challenge."},
		},
	},
	{
		Name:        "Squats",
		Description: "Build leg strength with this fundamental exercise targeting quads and glutes.",
		ImageURL:    "https://images.unsplash.com/photo-1574680178050-55c6a6a96e0a?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80",
		Instructions: []domain.Instruction{
			{
				Step:        1,
				Title:       "Starting Position",
				Description: "Stand with feet slightly wider than hip-width apart, toes pointing slightly outward. Keep your chest up and shoulders back.",
				KeyPoint:    "Distribute your weight evenly through your feet.",
			},
			{
				Step:        2,
				Title:       "Descending Phase",
				Description: "Initiate the movement by hinging at the hips, then bend your knees to lower your body. Keep your back straight and chest up throughout the movement.",
				KeyPoint:    "Aim to lower until your thighs are parallel to the ground, or as low as you can with proper form.",
			},
			{
				Step:        3,
				Title:       "Rising Phase",
				Description: "Push through your heels to stand back up to the starting position, fully extending your hips and knees at the top.",
				KeyPoint:    "Keep your knees tracking over (not collapsing inward) your toes as you rise.",
			},
		},
		Category:     domain.CategoryLowerBody,
		Difficulty:   "Intermediate",
		AgeRange:     "Age 30-45",
		MuscleGroups: "Quadriceps, Glutes, Hamstrings",
		Modifications: []domain.Modification{
			{Type: "easier", Name: "Box Squats", Description: "Squat down to a box or chair to control the depth of the movement."},
			{Type: "harder", Name: "Weighted Squats", Description: "Hold a dumbbell or kettlebell at your chest to add resistance."},
		},
	},
	{
		Name:        "Plank",
		Description: "Strengthen your core with this isometric hold that builds endurance.",
		ImageURL:    "https://images.unsplash.com/photo-1566241142559-40e1dab266c6?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80",
		Instructions: []domain.Instruction{
			{
				Step:        1,
				Title:       "Starting Position",
				Description: "Place your forearms on the ground with elbows directly beneath your shoulders. Extend your legs behind you with toes tucked.",
				KeyPoint:    "Your body should form a straight line from head to heels.",
			},
			{
				Step:        2,
				Title:       "The Hold",
				Description: "Brace your core and hold the position while breathing steadily. Avoid letting your hips rise or sag.",
				KeyPoint:    "Squeeze your glutes and keep your neck neutral by looking at the floor.",
			},
		},
		Category:     domain.CategoryCore,
		Difficulty:   "All Levels",
		AgeRange:     domain.AgeRangeAll,
		MuscleGroups: "Core, Shoulders, Back",
		Modifications: []domain.Modification{
			{Type: "easier", Name: "Knee Plank", Description: "Hold the position with your knees on the ground."},
			{Type: "harder", Name: "Side Plank", Description: "Rotate to one side, supporting your body on one forearm."},
		},
	},
	{
		Name:        "Lunges",
		Description: "A unilateral leg exercise that improves balance, coordination, and strength.",
		ImageURL:    "https://images.unsplash.com/photo-1540474211005-7b3758a8ed23?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80",
		Instructions: []domain.Instruction{
			{
				Step:        1,
				Title:       "Starting Position",
				Description: "Stand tall with feet hip-width apart and hands on your hips or at your sides.",
				KeyPoint:    "Keep your torso upright and core engaged.",
			},
			{
				Step:        2,
				Title:       "Stepping Phase",
				Description: "Take a controlled step forward with one leg and lower your hips until both knees are bent at about 90 degrees.",
				KeyPoint:    "Your front knee should stay above your ankle, not pushed out past your toes.",
			},
			{
				Step:        3,
				Title:       "Return Phase",
				Description: "Push through the heel of your front foot to return to the starting position, then repeat on the other side.",
				KeyPoint:    "Avoid letting your back knee slam into the ground.",
			},
		},
		Category:     domain.CategoryLowerBody,
		Difficulty:   "Intermediate",
		AgeRange:     "Age 20-60",
		MuscleGroups: "Quadriceps, Glutes, Calves",
		Modifications: []domain.Modification{
			{Type: "easier", Name: "Stationary Lunges", Description: "Keep your feet in a split stance and lower straight down instead of stepping."},
			{Type: "harder", Name: "Walking Lunges", Description: "Step forward continuously, alternating legs as you travel."},
		},
	},
	{
		Name:        "Jumping Jacks",
		Description: "A full-body cardio move that raises your heart rate and warms up your muscles.",
		ImageURL:    "https://images.unsplash.com/photo-1601422407692-ec4eeec1d9b3?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80",
		Instructions: []domain.Instruction{
			{
				Step:        1,
				Title:       "Starting Position",
				Description: "Stand upright with your feet together and arms at your sides.",
				KeyPoint:    "Keep a slight bend in your knees, ready to move.",
			},
			{
				Step:        2,
				Title:       "The Jump",
				Description: "Jump your feet out to the sides while raising your arms overhead, then jump back to the starting position in one fluid motion.",
				KeyPoint:    "Land softly on the balls of your feet to protect your joints.",
			},
		},
		Category:     domain.CategoryCardio,
		Difficulty:   "Beginner",
		AgeRange:     "Age 8-80",
		MuscleGroups: "Full Body, Cardiovascular",
		Modifications: []domain.Modification{
			{Type: "easier", Name: "Half Jacks", Description: "Step one foot out at a time instead of jumping."},
			{Type: "harder", Name: "Weighted Jumping Jacks", Description: "Hold light dumbbells to increase the resistance."},
		},
	},
	{
		Name:        "Bicycle Crunches",
		Description: "A dynamic core exercise that works the obliques and deep abdominal muscles.",
		ImageURL:    "https://images.unsplash.com/photo-1544033527-b192daee1f5b?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80",
		Instructions: []domain.Instruction{
			{
				Step:        1,
				Title:       "Starting Position",
				Description: "Lie on your back with your hands behind your head and legs lifted, knees bent at 90 degrees.",
				KeyPoint:    "Press your lower back into the floor before you begin.",
			},
			{
				Step:        2,
				Title:       "The Twist",
				Description: "Bring one elbow towards the opposite knee while extending the other leg, then switch sides in a pedaling motion.",
				KeyPoint:    "Rotate from your torso, not your neck. Don't pull on your head.",
			},
		},
		Category:     domain.CategoryCore,
		Difficulty:   "Intermediate",
		AgeRange:     "Age 15-65",
		MuscleGroups: "Abs, Obliques",
		Modifications: []domain.Modification{
			{Type: "easier", Name: "Seated Bicycle Crunches", Description: "Perform the movement seated on a chair, lifting one knee at a time."},
			{Type: "harder", Name: "Slow Bicycle Crunches", Description: "Slow the tempo and hold each twist for two seconds."},
		},
	},
}

package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseAgeRange(t *testing.T) {
	testCases := []struct {
		ageRange string
		min      int
		max      int
		ok       bool
	}{
		{"Age 30-45", 30, 45, true},
		{"Age 8-80", 8, 80, true},
		{"All Ages", 0, 0, false},
		{"", 0, 0, false},
		{"30-45", 0, 0, false},
		{"Age thirty-forty", 0, 0, false},
	}

	for _, tc := range testCases {
		t.Run(tc.ageRange, func(t *testing.T) {
			min, max, ok := ParseAgeRange(tc.ageRange)
			require.Equal(t, tc.ok, ok)
			require.Equal(t, tc.min, min)
			require.Equal(t, tc.max, max)
		})
	}
}

func TestMatchesAgeRange(t *testing.T) {
	allAges := Exercise{AgeRange: AgeRangeAll}
	require.True(t, allAges.MatchesAgeRange(30, 45))
	require.True(t, allAges.MatchesAgeRange(99, 120))

	midRange := Exercise{AgeRange: "Age 30-45"}
	require.True(t, midRange.MatchesAgeRange(30, 45))
	require.True(t, midRange.MatchesAgeRange(45, 60))  // touches the upper bound
	require.True(t, midRange.MatchesAgeRange(20, 30))  // touches the lower bound
	require.False(t, midRange.MatchesAgeRange(46, 60)) // just outside
	require.False(t, midRange.MatchesAgeRange(10, 29))

	// Unparsable ranges never match (fail closed).
	broken := Exercise{AgeRange: "Ages vary"}
	require.False(t, broken.MatchesAgeRange(30, 45))
}

func TestWorkoutAllCompleted(t *testing.T) {
	empty := Workout{}
	require.False(t, empty.AllCompleted())

	partial := Workout{CompletedExercises: []CompletedExercise{
		{ExerciseID: 1, Completed: true},
		{ExerciseID: 2, Completed: false},
	}}
	require.False(t, partial.AllCompleted())

	done := Workout{CompletedExercises: []CompletedExercise{
		{ExerciseID: 1, Completed: true},
		{ExerciseID: 2, Completed: true},
	}}
	require.True(t, done.AllCompleted())
}

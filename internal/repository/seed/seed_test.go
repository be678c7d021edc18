package seed

import (
	"context"
	"testing"

	"fittrack/webfitness/internal/domain"
	"fittrack/webfitness/internal/repository/memory"

	"github.com/stretchr/testify/require"
)

func TestEnsurePopulatesEmptyCatalog(t *testing.T) {
	ctx := context.Background()
	exercises := memory.NewStore().Exercises()

	require.NoError(t, Ensure(ctx, exercises))

	all, err := exercises.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, len(catalog))

	for _, exercise := range all {
		require.NotZero(t, exercise.ID)
		require.NotEmpty(t, exercise.Name)
		require.NotEmpty(t, exercise.Category)
		require.NotEmpty(t, exercise.AgeRange)
		if exercise.AgeRange != domain.AgeRangeAll {
			_, _, ok := domain.ParseAgeRange(exercise.AgeRange)
			require.True(t, ok, "seed exercise %q has unparsable age range", exercise.Name)
		}
	}
}

func TestEnsureLeavesExistingCatalogAlone(t *testing.T) {
	ctx := context.Background()
	exercises := memory.NewStore().Exercises()

	require.NoError(t, Ensure(ctx, exercises))
	require.NoError(t, Ensure(ctx, exercises))

	all, err := exercises.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, len(catalog))
}

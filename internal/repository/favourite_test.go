package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/healthplate/healthplate/internal/model"
)

func newFavourite(userID, slug string) *model.Favourite {
	return &model.Favourite{
		UserID:      userID,
		RecipeSlug:  slug,
		RecipeTitle: "Green Salad",
		RecipeImage: "/img/salad.jpg",
		RecipeMeta:  `{"calories":180}`,
		CreatedAt:   time.Now(),
	}
}

func TestFavouriteRepository_ToggleRoundTrip(t *testing.T) {
	repo := NewFavouriteRepository(newTestDB(t))

	added, err := repo.Toggle(newFavourite("u1", "green-salad"))
	require.NoError(t, err)
	assert.True(t, added)

	favourites, err := repo.ByUser("u1")
	require.NoError(t, err)
	require.Len(t, favourites, 1)
	assert.Equal(t, "green-salad", favourites[0].RecipeSlug)
	assert.Equal(t, "Green Salad", favourites[0].RecipeTitle)

	// Toggling again removes the row and leaves nothing behind.
	added, err = repo.Toggle(newFavourite("u1", "green-salad"))
	require.NoError(t, err)
	assert.False(t, added)

	favourites, err = repo.ByUser("u1")
	require.NoError(t, err)
	assert.Empty(t, favourites)
}

func TestFavouriteRepository_ScopedToUser(t *testing.T) {
	repo := NewFavouriteRepository(newTestDB(t))

	_, err := repo.Toggle(newFavourite("u1", "green-salad"))
	require.NoError(t, err)
	_, err = repo.Toggle(newFavourite("u2", "green-salad"))
	require.NoError(t, err)
	_, err = repo.Toggle(newFavourite("u2", "oat-bowl"))
	require.NoError(t, err)

	forU1, err := repo.ByUser("u1")
	require.NoError(t, err)
	assert.Len(t, forU1, 1)

	forU2, err := repo.ByUser("u2")
	require.NoError(t, err)
	assert.Len(t, forU2, 2)

	// Removing u2's favourite does not touch u1's row for the same slug.
	added, err := repo.Toggle(newFavourite("u2", "green-salad"))
	require.NoError(t, err)
	assert.False(t, added)

	forU1, err = repo.ByUser("u1")
	require.NoError(t, err)
	assert.Len(t, forU1, 1)
}

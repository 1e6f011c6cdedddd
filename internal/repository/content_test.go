package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/healthplate/healthplate/internal/model"
)

func TestStoryRepository_CRUD(t *testing.T) {
	repo := NewStoryRepository(newTestDB(t))

	story := &model.Story{
		Slug:     "mindful-eating",
		Title:    "Mindful Eating",
		Category: "wellness",
		Date:     "2025-03-01",
		Author:   "Jo",
		Content:  "First paragraph.\n\nSecond paragraph.",
		Tags:     "wellness, habits",
	}
	require.NoError(t, repo.Create(story))
	assert.NotZero(t, story.ID)

	got, err := repo.BySlug("mindful-eating")
	require.NoError(t, err)
	assert.Equal(t, "Mindful Eating", got.Title)

	got.Title = "Mindful Eating, Revisited"
	require.NoError(t, repo.Update(got))

	byID, err := repo.ByID(story.ID)
	require.NoError(t, err)
	assert.Equal(t, "Mindful Eating, Revisited", byID.Title)

	require.NoError(t, repo.Delete(story.ID))
	assert.ErrorIs(t, repo.Delete(story.ID), ErrStoryNotFound)

	_, err = repo.BySlug("mindful-eating")
	assert.ErrorIs(t, err, ErrStoryNotFound)
}

func TestStoryRepository_AllOrderedByDateDesc(t *testing.T) {
	repo := NewStoryRepository(newTestDB(t))

	require.NoError(t, repo.Create(&model.Story{Slug: "older", Title: "Older", Date: "2025-01-10"}))
	require.NoError(t, repo.Create(&model.Story{Slug: "newer", Title: "Newer", Date: "2025-04-02"}))

	stories, err := repo.All()
	require.NoError(t, err)
	require.Len(t, stories, 2)
	assert.Equal(t, "newer", stories[0].Slug)
	assert.Equal(t, "older", stories[1].Slug)
}

func TestStoryRepository_UpsertBySlug(t *testing.T) {
	repo := NewStoryRepository(newTestDB(t))

	require.NoError(t, repo.UpsertBySlug(&model.Story{Slug: "s", Title: "v1"}))
	require.NoError(t, repo.UpsertBySlug(&model.Story{Slug: "s", Title: "v2", Featured: true}))

	got, err := repo.BySlug("s")
	require.NoError(t, err)
	assert.Equal(t, "v2", got.Title)
	assert.True(t, got.Featured)

	stories, err := repo.All()
	require.NoError(t, err)
	assert.Len(t, stories, 1)
}

func TestRecipeRepository_CRUD(t *testing.T) {
	repo := NewRecipeRepository(newTestDB(t))

	recipe := &model.Recipe{
		Slug:        "oat-bowl",
		Title:       "Oat Bowl",
		Category:    "breakfast",
		CookingTime: "10 min",
		Calories:    320,
		Tags:        "oats,quick",
	}
	require.NoError(t, repo.Create(recipe))
	assert.NotZero(t, recipe.ID)

	got, err := repo.BySlug("oat-bowl")
	require.NoError(t, err)
	assert.Equal(t, 320, got.Calories)

	got.Calories = 340
	require.NoError(t, repo.Update(got))

	byID, err := repo.ByID(recipe.ID)
	require.NoError(t, err)
	assert.Equal(t, 340, byID.Calories)

	require.NoError(t, repo.Delete(recipe.ID))
	assert.ErrorIs(t, repo.Delete(recipe.ID), ErrRecipeNotFound)
}

func TestRecipeRepository_UpsertBySlug(t *testing.T) {
	repo := NewRecipeRepository(newTestDB(t))

	require.NoError(t, repo.UpsertBySlug(&model.Recipe{Slug: "r", Title: "v1", Calories: 200}))
	require.NoError(t, repo.UpsertBySlug(&model.Recipe{Slug: "r", Title: "v2", Calories: 250}))

	got, err := repo.BySlug("r")
	require.NoError(t, err)
	assert.Equal(t, "v2", got.Title)
	assert.Equal(t, 250, got.Calories)

	recipes, err := repo.All()
	require.NoError(t, err)
	assert.Len(t, recipes, 1)
}

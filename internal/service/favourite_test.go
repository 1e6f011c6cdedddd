package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/healthplate/healthplate/internal/model"
)

// fakeFavouriteRepository mimics the toggle semantics of the real store.
type fakeFavouriteRepository struct {
	rows []*model.Favourite
}

func (f *fakeFavouriteRepository) ByUser(userID string) ([]*model.Favourite, error) {
	var out []*model.Favourite
	for _, row := range f.rows {
		if row.UserID == userID {
			out = append(out, row)
		}
	}
	return out, nil
}

func (f *fakeFavouriteRepository) Toggle(fav *model.Favourite) (bool, error) {
	for i, row := range f.rows {
		if row.UserID == fav.UserID && row.RecipeSlug == fav.RecipeSlug {
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			return false, nil
		}
	}
	f.rows = append(f.rows, fav)
	return true, nil
}

func TestFavouriteToggle(t *testing.T) {
	svc := NewFavouriteService(&fakeFavouriteRepository{})
	recipe := RecipeRef{Slug: "oat-bowl", Title: "Oat Bowl"}

	favourited, err := svc.Toggle("u1", recipe)
	require.NoError(t, err)
	assert.True(t, favourited)

	list, err := svc.List("u1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Oat Bowl", list[0].RecipeTitle)

	favourited, err = svc.Toggle("u1", recipe)
	require.NoError(t, err)
	assert.False(t, favourited)

	list, err = svc.List("u1")
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestFavouriteToggle_InvalidPayload(t *testing.T) {
	svc := NewFavouriteService(&fakeFavouriteRepository{})

	_, err := svc.Toggle("", RecipeRef{Slug: "oat-bowl"})
	assert.ErrorIs(t, err, ErrInvalidFavourite)

	_, err = svc.Toggle("u1", RecipeRef{})
	assert.ErrorIs(t, err, ErrInvalidFavourite)
}

func TestFavouriteList_NeverNil(t *testing.T) {
	svc := NewFavouriteService(&fakeFavouriteRepository{})

	list, err := svc.List("u1")
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

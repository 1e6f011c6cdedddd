package service

import (
	"errors"
	"log/slog"
	"time"

	"github.com/healthplate/healthplate/internal/model"
	"github.com/healthplate/healthplate/internal/repository"
)

var ErrInvalidFavourite = errors.New("invalid favourite payload")

// RecipeRef is the client-supplied reference to a recipe being favourited,
// carrying the display snapshot stored alongside the bookmark.
type RecipeRef struct {
	Slug  string `json:"slug"`
	Title string `json:"title"`
	Image string `json:"image"`
	Meta  string `json:"meta"`
}

type FavouriteService struct {
	favouriteRepository repository.FavouriteRepository
}

func NewFavouriteService(favouriteRepository repository.FavouriteRepository) *FavouriteService {
	return &FavouriteService{
		favouriteRepository: favouriteRepository,
	}
}

func (s *FavouriteService) List(userID string) ([]*model.Favourite, error) {
	favourites, err := s.favouriteRepository.ByUser(userID)
	if err != nil {
		return nil, err
	}
	if favourites == nil {
		favourites = []*model.Favourite{}
	}
	return favourites, nil
}

// Toggle adds the recipe to the user's favourites if absent, removes it if
// present. Returns whether the recipe is favourited after the call.
func (s *FavouriteService) Toggle(userID string, recipe RecipeRef) (bool, error) {
	if userID == "" || recipe.Slug == "" {
		return false, ErrInvalidFavourite
	}

	fav := &model.Favourite{
		UserID:      userID,
		RecipeSlug:  recipe.Slug,
		RecipeTitle: recipe.Title,
		RecipeImage: recipe.Image,
		RecipeMeta:  recipe.Meta,
		CreatedAt:   time.Now(),
	}

	favourited, err := s.favouriteRepository.Toggle(fav)
	if err != nil {
		return false, err
	}

	slog.Debug("favourite toggled", "user_id", userID, "slug", recipe.Slug, "favourited", favourited)
	return favourited, nil
}

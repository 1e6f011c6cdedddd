package repository

import (
	"github.com/jmoiron/sqlx"

	"github.com/healthplate/healthplate/internal/model"
)

type FavouriteRepository interface {
	ByUser(userID string) ([]*model.Favourite, error)
	Toggle(fav *model.Favourite) (bool, error)
}

type favouriteRepository struct {
	db *sqlx.DB
}

func NewFavouriteRepository(db *sqlx.DB) FavouriteRepository {
	return &favouriteRepository{db: db}
}

func (r *favouriteRepository) ByUser(userID string) ([]*model.Favourite, error) {
	var favourites []*model.Favourite
	query := `SELECT * FROM favourite_recipes WHERE user_id = $1 ORDER BY created_at DESC`

	err := r.db.Select(&favourites, query, userID)
	if err != nil {
		return nil, err
	}

	return favourites, nil
}

// Toggle removes the favourite if present, otherwise inserts it. Returns true
// when the row exists after the call. Delete-then-conditional-insert under the
// UNIQUE(user_id, recipe_slug) constraint keeps concurrent toggles from ever
// producing duplicate rows.
func (r *favouriteRepository) Toggle(fav *model.Favourite) (bool, error) {
	result, err := r.db.Exec(
		`DELETE FROM favourite_recipes WHERE user_id = $1 AND recipe_slug = $2`,
		fav.UserID, fav.RecipeSlug,
	)
	if err != nil {
		return false, err
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	if deleted > 0 {
		return false, nil
	}

	_, err = r.db.Exec(
		`INSERT INTO favourite_recipes (user_id, recipe_slug, recipe_title, recipe_image, recipe_meta, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (user_id, recipe_slug) DO NOTHING`,
		fav.UserID, fav.RecipeSlug, fav.RecipeTitle, fav.RecipeImage, fav.RecipeMeta, fav.CreatedAt,
	)
	if err != nil {
		return false, err
	}

	// A lost insert race still means the row exists.
	return true, nil
}

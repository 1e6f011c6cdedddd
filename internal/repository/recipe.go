package repository

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/healthplate/healthplate/internal/model"
)

var ErrRecipeNotFound = errors.New("recipe not found")

type RecipeRepository interface {
	All() ([]*model.Recipe, error)
	BySlug(slug string) (*model.Recipe, error)
	ByID(id int64) (*model.Recipe, error)
	Create(recipe *model.Recipe) error
	Update(recipe *model.Recipe) error
	Delete(id int64) error
	UpsertBySlug(recipe *model.Recipe) error
}

type recipeRepository struct {
	db *sqlx.DB
}

func NewRecipeRepository(db *sqlx.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

func (r *recipeRepository) All() ([]*model.Recipe, error) {
	var recipes []*model.Recipe
	query := `SELECT * FROM recipes ORDER BY id DESC`

	err := r.db.Select(&recipes, query)
	if err != nil {
		return nil, err
	}

	return recipes, nil
}

func (r *recipeRepository) BySlug(slug string) (*model.Recipe, error) {
	recipe := &model.Recipe{}
	query := `SELECT * FROM recipes WHERE slug = $1`

	err := r.db.Get(recipe, query, slug)
	if err == sql.ErrNoRows {
		return nil, ErrRecipeNotFound
	}

	return recipe, err
}

func (r *recipeRepository) ByID(id int64) (*model.Recipe, error) {
	recipe := &model.Recipe{}
	query := `SELECT * FROM recipes WHERE id = $1`

	err := r.db.Get(recipe, query, id)
	if err == sql.ErrNoRows {
		return nil, ErrRecipeNotFound
	}

	return recipe, err
}

func (r *recipeRepository) Create(recipe *model.Recipe) error {
	query := `INSERT INTO recipes (slug, title, category, cooking_time, calories, image, short_desc, content, tags)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	result, err := r.db.Exec(query,
		recipe.Slug, recipe.Title, recipe.Category, recipe.CookingTime, recipe.Calories,
		recipe.Image, recipe.ShortDesc, recipe.Content, recipe.Tags,
	)
	if err != nil {
		return err
	}

	recipe.ID, err = result.LastInsertId()
	return err
}

func (r *recipeRepository) Update(recipe *model.Recipe) error {
	query := `UPDATE recipes
	          SET slug = $1, title = $2, category = $3, cooking_time = $4, calories = $5,
	              image = $6, short_desc = $7, content = $8, tags = $9
	          WHERE id = $10`

	result, err := r.db.Exec(query,
		recipe.Slug, recipe.Title, recipe.Category, recipe.CookingTime, recipe.Calories,
		recipe.Image, recipe.ShortDesc, recipe.Content, recipe.Tags,
		recipe.ID,
	)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrRecipeNotFound
	}

	return nil
}

func (r *recipeRepository) Delete(id int64) error {
	result, err := r.db.Exec(`DELETE FROM recipes WHERE id = $1`, id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrRecipeNotFound
	}

	return nil
}

// UpsertBySlug inserts the recipe or replaces an existing one with the same
// slug. Used by the content importer.
func (r *recipeRepository) UpsertBySlug(recipe *model.Recipe) error {
	query := `INSERT INTO recipes (slug, title, category, cooking_time, calories, image, short_desc, content, tags)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	          ON CONFLICT (slug) DO UPDATE SET
	              title = excluded.title, category = excluded.category, cooking_time = excluded.cooking_time,
	              calories = excluded.calories, image = excluded.image, short_desc = excluded.short_desc,
	              content = excluded.content, tags = excluded.tags`

	_, err := r.db.Exec(query,
		recipe.Slug, recipe.Title, recipe.Category, recipe.CookingTime, recipe.Calories,
		recipe.Image, recipe.ShortDesc, recipe.Content, recipe.Tags,
	)
	return err
}

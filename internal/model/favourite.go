package model

import "time"

// Favourite is a user-owned bookmark referencing a recipe by slug, carrying a
// denormalized display snapshot taken at the moment it was favourited.
type Favourite struct {
	ID          int64     `db:"id" json:"id"`
	UserID      string    `db:"user_id" json:"userId"`
	RecipeSlug  string    `db:"recipe_slug" json:"recipeSlug"`
	RecipeTitle string    `db:"recipe_title" json:"recipeTitle"`
	RecipeImage string    `db:"recipe_image" json:"recipeImage"`
	RecipeMeta  string    `db:"recipe_meta" json:"recipeMeta"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
}

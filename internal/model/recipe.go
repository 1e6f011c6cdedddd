package model

type Recipe struct {
	ID          int64  `db:"id"`
	Slug        string `db:"slug"`
	Title       string `db:"title"`
	Category    string `db:"category"`
	CookingTime string `db:"cooking_time"`
	Calories    int    `db:"calories"`
	Image       string `db:"image"`
	ShortDesc   string `db:"short_desc"`
	Content     string `db:"content"`
	Tags        string `db:"tags"`
}

// RecipeSummary is the list projection, without the long-form body.
type RecipeSummary struct {
	ID          int64    `json:"id"`
	Slug        string   `json:"slug"`
	Title       string   `json:"title"`
	Category    string   `json:"category"`
	CookingTime string   `json:"cookingTime"`
	Calories    int      `json:"calories"`
	Image       string   `json:"image"`
	ShortDesc   string   `json:"shortDesc"`
	Tags        []string `json:"tags"`
}

// RecipeDetail adds the body split into paragraphs.
type RecipeDetail struct {
	RecipeSummary
	Content []string `json:"content"`
}

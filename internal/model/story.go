package model

type Story struct {
	ID       int64   `db:"id"`
	Slug     string  `db:"slug"`
	Title    string  `db:"title"`
	Category string  `db:"category"`
	Date     string  `db:"date"`
	ReadTime *string `db:"read_time"`
	Author   string  `db:"author"`
	Image    string  `db:"image"`
	Excerpt  string  `db:"excerpt"`
	Content  string  `db:"content"`
	Tags     string  `db:"tags"`
	Featured bool    `db:"featured"`
}

// StorySummary is the list projection, without the long-form body.
type StorySummary struct {
	ID       int64    `json:"id"`
	Slug     string   `json:"slug"`
	Title    string   `json:"title"`
	Category string   `json:"category"`
	Date     string   `json:"date"`
	ReadTime *string  `json:"readTime"`
	Author   string   `json:"author"`
	Image    string   `json:"image"`
	Excerpt  string   `json:"excerpt"`
	Tags     []string `json:"tags"`
	Featured bool     `json:"featured"`
}

// StoryDetail adds the body split into paragraphs.
type StoryDetail struct {
	StorySummary
	Content []string `json:"content"`
}

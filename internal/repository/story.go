package repository

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/healthplate/healthplate/internal/model"
)

var ErrStoryNotFound = errors.New("story not found")

type StoryRepository interface {
	All() ([]*model.Story, error)
	BySlug(slug string) (*model.Story, error)
	ByID(id int64) (*model.Story, error)
	Create(story *model.Story) error
	Update(story *model.Story) error
	Delete(id int64) error
	UpsertBySlug(story *model.Story) error
}

type storyRepository struct {
	db *sqlx.DB
}

func NewStoryRepository(db *sqlx.DB) StoryRepository {
	return &storyRepository{db: db}
}

func (r *storyRepository) All() ([]*model.Story, error) {
	var stories []*model.Story
	query := `SELECT * FROM stories ORDER BY date DESC`

	err := r.db.Select(&stories, query)
	if err != nil {
		return nil, err
	}

	return stories, nil
}

func (r *storyRepository) BySlug(slug string) (*model.Story, error) {
	story := &model.Story{}
	query := `SELECT * FROM stories WHERE slug = $1`

	err := r.db.Get(story, query, slug)
	if err == sql.ErrNoRows {
		return nil, ErrStoryNotFound
	}

	return story, err
}

func (r *storyRepository) ByID(id int64) (*model.Story, error) {
	story := &model.Story{}
	query := `SELECT * FROM stories WHERE id = $1`

	err := r.db.Get(story, query, id)
	if err == sql.ErrNoRows {
		return nil, ErrStoryNotFound
	}

	return story, err
}

func (r *storyRepository) Create(story *model.Story) error {
	query := `INSERT INTO stories (slug, title, category, date, read_time, author, image, excerpt, content, tags, featured)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	result, err := r.db.Exec(query,
		story.Slug, story.Title, story.Category, story.Date, story.ReadTime,
		story.Author, story.Image, story.Excerpt, story.Content, story.Tags, story.Featured,
	)
	if err != nil {
		return err
	}

	story.ID, err = result.LastInsertId()
	return err
}

func (r *storyRepository) Update(story *model.Story) error {
	query := `UPDATE stories
	          SET slug = $1, title = $2, category = $3, date = $4, read_time = $5,
	              author = $6, image = $7, excerpt = $8, content = $9, tags = $10, featured = $11
	          WHERE id = $12`

	result, err := r.db.Exec(query,
		story.Slug, story.Title, story.Category, story.Date, story.ReadTime,
		story.Author, story.Image, story.Excerpt, story.Content, story.Tags, story.Featured,
		story.ID,
	)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrStoryNotFound
	}

	return nil
}

func (r *storyRepository) Delete(id int64) error {
	result, err := r.db.Exec(`DELETE FROM stories WHERE id = $1`, id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrStoryNotFound
	}

	return nil
}

// UpsertBySlug inserts the story or replaces an existing one with the same
// slug. Used by the content importer.
func (r *storyRepository) UpsertBySlug(story *model.Story) error {
	query := `INSERT INTO stories (slug, title, category, date, read_time, author, image, excerpt, content, tags, featured)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	          ON CONFLICT (slug) DO UPDATE SET
	              title = excluded.title, category = excluded.category, date = excluded.date,
	              read_time = excluded.read_time, author = excluded.author, image = excluded.image,
	              excerpt = excluded.excerpt, content = excluded.content, tags = excluded.tags,
	              featured = excluded.featured`

	_, err := r.db.Exec(query,
		story.Slug, story.Title, story.Category, story.Date, story.ReadTime,
		story.Author, story.Image, story.Excerpt, story.Content, story.Tags, story.Featured,
	)
	return err
}

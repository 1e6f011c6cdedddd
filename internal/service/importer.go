package service

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/healthplate/healthplate/internal/markdown"
	"github.com/healthplate/healthplate/internal/model"
	"github.com/healthplate/healthplate/internal/repository"
)

// ImporterService loads editorial content from markdown files with
// frontmatter metadata and upserts it into the store by slug. This is how
// content ships without touching the admin endpoints.
type ImporterService struct {
	parser           *markdown.Parser
	storyRepository  repository.StoryRepository
	recipeRepository repository.RecipeRepository
}

func NewImporterService(storyRepository repository.StoryRepository, recipeRepository repository.RecipeRepository) *ImporterService {
	return &ImporterService{
		parser:           markdown.NewParser(),
		storyRepository:  storyRepository,
		recipeRepository: recipeRepository,
	}
}

// ImportDir walks <dir>/stories/*.md and <dir>/recipes/*.md. Files that fail
// to parse are skipped with a warning; a missing subdirectory is not an error.
func (s *ImporterService) ImportDir(dir string) error {
	storyFiles, err := filepath.Glob(filepath.Join(dir, "stories", "*.md"))
	if err != nil {
		return err
	}
	for _, file := range storyFiles {
		err = s.importStory(file)
		if err != nil {
			slog.Warn("story import failed", "file", file, "error", err)
		}
	}

	recipeFiles, err := filepath.Glob(filepath.Join(dir, "recipes", "*.md"))
	if err != nil {
		return err
	}
	for _, file := range recipeFiles {
		err = s.importRecipe(file)
		if err != nil {
			slog.Warn("recipe import failed", "file", file, "error", err)
		}
	}

	slog.Info("content import finished", "dir", dir, "stories", len(storyFiles), "recipes", len(recipeFiles))
	return nil
}

func (s *ImporterService) importStory(path string) error {
	slug, meta, body, err := s.parseFile(path)
	if err != nil {
		return err
	}

	story := &model.Story{
		Slug:     slug,
		Title:    metaString(meta, "title", titleFromSlug(slug)),
		Category: metaString(meta, "category", ""),
		Date:     metaString(meta, "date", ""),
		Author:   metaString(meta, "author", ""),
		Image:    metaString(meta, "image", ""),
		Excerpt:  metaString(meta, "excerpt", ""),
		Content:  body,
		Tags:     metaTags(meta),
		Featured: metaBool(meta, "featured"),
	}
	if readTime := metaString(meta, "read_time", ""); readTime != "" {
		story.ReadTime = &readTime
	}

	return s.storyRepository.UpsertBySlug(story)
}

func (s *ImporterService) importRecipe(path string) error {
	slug, meta, body, err := s.parseFile(path)
	if err != nil {
		return err
	}

	recipe := &model.Recipe{
		Slug:        slug,
		Title:       metaString(meta, "title", titleFromSlug(slug)),
		Category:    metaString(meta, "category", ""),
		CookingTime: metaString(meta, "cooking_time", ""),
		Calories:    metaInt(meta, "calories"),
		Image:       metaString(meta, "image", ""),
		ShortDesc:   metaString(meta, "short_desc", ""),
		Content:     body,
		Tags:        metaTags(meta),
	}

	return s.recipeRepository.UpsertBySlug(recipe)
}

func (s *ImporterService) parseFile(path string) (slug string, meta map[string]any, body string, err error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return "", nil, "", fmt.Errorf("failed to read %s: %w", path, err)
	}

	meta, rawBody, err := s.parser.Frontmatter(source)
	if err != nil {
		return "", nil, "", fmt.Errorf("failed to parse %s: %w", path, err)
	}

	slug = strings.TrimSuffix(filepath.Base(path), ".md")
	return slug, meta, string(rawBody), nil
}

func titleFromSlug(slug string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(slug, "-", " "))
}

func metaString(meta map[string]any, key, def string) string {
	v, ok := meta[key].(string)
	if !ok {
		return def
	}
	return v
}

func metaBool(meta map[string]any, key string) bool {
	v, ok := meta[key].(bool)
	if !ok {
		return false
	}
	return v
}

func metaInt(meta map[string]any, key string) int {
	switch v := meta[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	}
	return 0
}

func metaTags(meta map[string]any) string {
	tags, ok := meta["tags"].([]any)
	if !ok {
		return metaString(meta, "tags", "")
	}

	var out []string
	for _, tag := range tags {
		tagStr, ok := tag.(string)
		if ok {
			out = append(out, tagStr)
		}
	}
	return strings.Join(out, ",")
}

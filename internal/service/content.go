package service

import (
	"regexp"
	"strings"

	"github.com/healthplate/healthplate/internal/model"
	"github.com/healthplate/healthplate/internal/repository"
)

var paragraphBoundary = regexp.MustCompile(`\n\s*\n`)

type ContentService struct {
	storyRepository  repository.StoryRepository
	recipeRepository repository.RecipeRepository
}

func NewContentService(storyRepository repository.StoryRepository, recipeRepository repository.RecipeRepository) *ContentService {
	return &ContentService{
		storyRepository:  storyRepository,
		recipeRepository: recipeRepository,
	}
}

// Stories lists all stories newest-date-first, without the long-form body.
func (s *ContentService) Stories() ([]*model.StorySummary, error) {
	stories, err := s.storyRepository.All()
	if err != nil {
		return nil, err
	}

	summaries := make([]*model.StorySummary, 0, len(stories))
	for _, story := range stories {
		summaries = append(summaries, storySummary(story))
	}

	return summaries, nil
}

func (s *ContentService) Story(slug string) (*model.StoryDetail, error) {
	story, err := s.storyRepository.BySlug(slug)
	if err != nil {
		return nil, err
	}

	return &model.StoryDetail{
		StorySummary: *storySummary(story),
		Content:      SplitParagraphs(story.Content),
	}, nil
}

// Recipes lists all recipes newest-id-first, without the long-form body.
func (s *ContentService) Recipes() ([]*model.RecipeSummary, error) {
	recipes, err := s.recipeRepository.All()
	if err != nil {
		return nil, err
	}

	summaries := make([]*model.RecipeSummary, 0, len(recipes))
	for _, recipe := range recipes {
		summaries = append(summaries, recipeSummary(recipe))
	}

	return summaries, nil
}

func (s *ContentService) Recipe(slug string) (*model.RecipeDetail, error) {
	recipe, err := s.recipeRepository.BySlug(slug)
	if err != nil {
		return nil, err
	}

	return &model.RecipeDetail{
		RecipeSummary: *recipeSummary(recipe),
		Content:       SplitParagraphs(recipe.Content),
	}, nil
}

// Admin CRUD

// AllStories returns raw rows, long-form body included.
func (s *ContentService) AllStories() ([]*model.Story, error) {
	return s.storyRepository.All()
}

// AllRecipes returns raw rows, long-form body included.
func (s *ContentService) AllRecipes() ([]*model.Recipe, error) {
	return s.recipeRepository.All()
}

func (s *ContentService) CreateStory(story *model.Story) error {
	return s.storyRepository.Create(story)
}

func (s *ContentService) UpdateStory(story *model.Story) error {
	return s.storyRepository.Update(story)
}

func (s *ContentService) DeleteStory(id int64) error {
	return s.storyRepository.Delete(id)
}

func (s *ContentService) StoryByID(id int64) (*model.Story, error) {
	return s.storyRepository.ByID(id)
}

func (s *ContentService) CreateRecipe(recipe *model.Recipe) error {
	return s.recipeRepository.Create(recipe)
}

func (s *ContentService) UpdateRecipe(recipe *model.Recipe) error {
	return s.recipeRepository.Update(recipe)
}

func (s *ContentService) DeleteRecipe(id int64) error {
	return s.recipeRepository.Delete(id)
}

func (s *ContentService) RecipeByID(id int64) (*model.Recipe, error) {
	return s.recipeRepository.ByID(id)
}

func storySummary(story *model.Story) *model.StorySummary {
	return &model.StorySummary{
		ID:       story.ID,
		Slug:     story.Slug,
		Title:    story.Title,
		Category: story.Category,
		Date:     story.Date,
		ReadTime: story.ReadTime,
		Author:   story.Author,
		Image:    story.Image,
		Excerpt:  story.Excerpt,
		Tags:     SplitTags(story.Tags),
		Featured: story.Featured,
	}
}

func recipeSummary(recipe *model.Recipe) *model.RecipeSummary {
	return &model.RecipeSummary{
		ID:          recipe.ID,
		Slug:        recipe.Slug,
		Title:       recipe.Title,
		Category:    recipe.Category,
		CookingTime: recipe.CookingTime,
		Calories:    recipe.Calories,
		Image:       recipe.Image,
		ShortDesc:   recipe.ShortDesc,
		Tags:        SplitTags(recipe.Tags),
	}
}

// SplitTags turns the stored comma-delimited tag string into a slice,
// trimming whitespace and dropping empties.
func SplitTags(tags string) []string {
	out := []string{}
	for _, tag := range strings.Split(tags, ",") {
		tag = strings.TrimSpace(tag)
		if tag != "" {
			out = append(out, tag)
		}
	}
	return out
}

// SplitParagraphs splits long-form content into paragraph units on blank-line
// boundaries.
func SplitParagraphs(content string) []string {
	out := []string{}
	for _, p := range paragraphBoundary.Split(content, -1) {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

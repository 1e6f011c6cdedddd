package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/healthplate/healthplate/internal/model"
	"github.com/healthplate/healthplate/internal/repository"
	"github.com/healthplate/healthplate/internal/service"
)

// AdminHandler exposes editorial CRUD over the content tables. All routes
// require an authenticated, verified account.
type AdminHandler struct {
	contentService *service.ContentService
}

func NewAdminHandler(contentService *service.ContentService) *AdminHandler {
	return &AdminHandler{
		contentService: contentService,
	}
}

func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return id, true
}

type storyRequest struct {
	Slug     string  `json:"slug"`
	Title    string  `json:"title"`
	Category string  `json:"category"`
	Date     string  `json:"date"`
	ReadTime *string `json:"readTime"`
	Author   string  `json:"author"`
	Image    string  `json:"image"`
	Excerpt  string  `json:"excerpt"`
	Content  string  `json:"content"`
	Tags     string  `json:"tags"`
	Featured bool    `json:"featured"`
}

type storyResponseBody struct {
	ID int64 `json:"id"`
	storyRequest
}

func storyResponse(story *model.Story) *storyResponseBody {
	return &storyResponseBody{
		ID: story.ID,
		storyRequest: storyRequest{
			Slug:     story.Slug,
			Title:    story.Title,
			Category: story.Category,
			Date:     story.Date,
			ReadTime: story.ReadTime,
			Author:   story.Author,
			Image:    story.Image,
			Excerpt:  story.Excerpt,
			Content:  story.Content,
			Tags:     story.Tags,
			Featured: story.Featured,
		},
	}
}

func (req *storyRequest) model(id int64) *model.Story {
	return &model.Story{
		ID:       id,
		Slug:     req.Slug,
		Title:    req.Title,
		Category: req.Category,
		Date:     req.Date,
		ReadTime: req.ReadTime,
		Author:   req.Author,
		Image:    req.Image,
		Excerpt:  req.Excerpt,
		Content:  req.Content,
		Tags:     req.Tags,
		Featured: req.Featured,
	}
}

func (h *AdminHandler) CreateStory(w http.ResponseWriter, r *http.Request) {
	var req storyRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Slug == "" || req.Title == "" {
		writeError(w, http.StatusBadRequest, "slug and title are required")
		return
	}

	story := req.model(0)
	err := h.contentService.CreateStory(story)
	if err != nil {
		slog.Error("story create failed", "error", err, "slug", req.Slug)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true, "id": story.ID})
}

func (h *AdminHandler) ListStories(w http.ResponseWriter, r *http.Request) {
	stories, err := h.contentService.AllStories()
	if err != nil {
		slog.Error("story listing failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	out := make([]*storyResponseBody, 0, len(stories))
	for _, story := range stories {
		out = append(out, storyResponse(story))
	}
	writeJSON(w, http.StatusOK, map[string]any{"stories": out})
}

// ShowStory returns the raw story row, long-form body included, for editing.
func (h *AdminHandler) ShowStory(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	story, err := h.contentService.StoryByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrStoryNotFound) {
			writeError(w, http.StatusNotFound, "story not found")
			return
		}
		slog.Error("story lookup failed", "error", err, "id", id)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, storyResponse(story))
}

func (h *AdminHandler) UpdateStory(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req storyRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	err := h.contentService.UpdateStory(req.model(id))
	if err != nil {
		if errors.Is(err, repository.ErrStoryNotFound) {
			writeError(w, http.StatusNotFound, "story not found")
			return
		}
		slog.Error("story update failed", "error", err, "id", id)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

func (h *AdminHandler) DeleteStory(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	err := h.contentService.DeleteStory(id)
	if err != nil {
		if errors.Is(err, repository.ErrStoryNotFound) {
			writeError(w, http.StatusNotFound, "story not found")
			return
		}
		slog.Error("story delete failed", "error", err, "id", id)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

type recipeRequest struct {
	Slug        string `json:"slug"`
	Title       string `json:"title"`
	Category    string `json:"category"`
	CookingTime string `json:"cookingTime"`
	Calories    int    `json:"calories"`
	Image       string `json:"image"`
	ShortDesc   string `json:"shortDesc"`
	Content     string `json:"content"`
	Tags        string `json:"tags"`
}

type recipeResponseBody struct {
	ID int64 `json:"id"`
	recipeRequest
}

func recipeResponse(recipe *model.Recipe) *recipeResponseBody {
	return &recipeResponseBody{
		ID: recipe.ID,
		recipeRequest: recipeRequest{
			Slug:        recipe.Slug,
			Title:       recipe.Title,
			Category:    recipe.Category,
			CookingTime: recipe.CookingTime,
			Calories:    recipe.Calories,
			Image:       recipe.Image,
			ShortDesc:   recipe.ShortDesc,
			Content:     recipe.Content,
			Tags:        recipe.Tags,
		},
	}
}

func (req *recipeRequest) model(id int64) *model.Recipe {
	return &model.Recipe{
		ID:          id,
		Slug:        req.Slug,
		Title:       req.Title,
		Category:    req.Category,
		CookingTime: req.CookingTime,
		Calories:    req.Calories,
		Image:       req.Image,
		ShortDesc:   req.ShortDesc,
		Content:     req.Content,
		Tags:        req.Tags,
	}
}

func (h *AdminHandler) CreateRecipe(w http.ResponseWriter, r *http.Request) {
	var req recipeRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Slug == "" || req.Title == "" {
		writeError(w, http.StatusBadRequest, "slug and title are required")
		return
	}

	recipe := req.model(0)
	err := h.contentService.CreateRecipe(recipe)
	if err != nil {
		slog.Error("recipe create failed", "error", err, "slug", req.Slug)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true, "id": recipe.ID})
}

func (h *AdminHandler) ListRecipes(w http.ResponseWriter, r *http.Request) {
	recipes, err := h.contentService.AllRecipes()
	if err != nil {
		slog.Error("recipe listing failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	out := make([]*recipeResponseBody, 0, len(recipes))
	for _, recipe := range recipes {
		out = append(out, recipeResponse(recipe))
	}
	writeJSON(w, http.StatusOK, map[string]any{"recipes": out})
}

// ShowRecipe returns the raw recipe row, long-form body included, for editing.
func (h *AdminHandler) ShowRecipe(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	recipe, err := h.contentService.RecipeByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrRecipeNotFound) {
			writeError(w, http.StatusNotFound, "recipe not found")
			return
		}
		slog.Error("recipe lookup failed", "error", err, "id", id)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, recipeResponse(recipe))
}

func (h *AdminHandler) UpdateRecipe(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req recipeRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	err := h.contentService.UpdateRecipe(req.model(id))
	if err != nil {
		if errors.Is(err, repository.ErrRecipeNotFound) {
			writeError(w, http.StatusNotFound, "recipe not found")
			return
		}
		slog.Error("recipe update failed", "error", err, "id", id)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

func (h *AdminHandler) DeleteRecipe(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	err := h.contentService.DeleteRecipe(id)
	if err != nil {
		if errors.Is(err, repository.ErrRecipeNotFound) {
			writeError(w, http.StatusNotFound, "recipe not found")
			return
		}
		slog.Error("recipe delete failed", "error", err, "id", id)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

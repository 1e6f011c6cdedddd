package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/healthplate/healthplate/internal/repository"
	"github.com/healthplate/healthplate/internal/service"
)

type ContentHandler struct {
	contentService *service.ContentService
	menuService    *service.MenuService
}

func NewContentHandler(contentService *service.ContentService, menuService *service.MenuService) *ContentHandler {
	return &ContentHandler{
		contentService: contentService,
		menuService:    menuService,
	}
}

func (h *ContentHandler) ListStories(w http.ResponseWriter, r *http.Request) {
	stories, err := h.contentService.Stories()
	if err != nil {
		slog.Error("story listing failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"stories": stories})
}

func (h *ContentHandler) ShowStory(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")

	story, err := h.contentService.Story(slug)
	if err != nil {
		if errors.Is(err, repository.ErrStoryNotFound) {
			writeError(w, http.StatusNotFound, "not found")
			return
		}
		slog.Error("story lookup failed", "error", err, "slug", slug)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, story)
}

func (h *ContentHandler) ListRecipes(w http.ResponseWriter, r *http.Request) {
	recipes, err := h.contentService.Recipes()
	if err != nil {
		slog.Error("recipe listing failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"recipes": recipes})
}

func (h *ContentHandler) ShowRecipe(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")

	recipe, err := h.contentService.Recipe(slug)
	if err != nil {
		if errors.Is(err, repository.ErrRecipeNotFound) {
			writeError(w, http.StatusNotFound, "not found")
			return
		}
		slog.Error("recipe lookup failed", "error", err, "slug", slug)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, recipe)
}

// Menu generates recipe suggestions for a goal and meal type.
func (h *ContentHandler) Menu(w http.ResponseWriter, r *http.Request) {
	goal := r.URL.Query().Get("goal")
	mealType := r.URL.Query().Get("mealType")

	menu, err := h.menuService.Suggest(goal, mealType)
	if err != nil {
		if errors.Is(err, service.ErrInvalidMenuGoal) {
			writeError(w, http.StatusBadRequest, "goal must be one of: lose, maintain, gain")
			return
		}
		slog.Error("menu suggestion failed", "error", err, "goal", goal, "meal_type", mealType)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, menu)
}

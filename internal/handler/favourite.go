package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/healthplate/healthplate/internal/service"
)

type FavouriteHandler struct {
	favouriteService *service.FavouriteService
}

func NewFavouriteHandler(favouriteService *service.FavouriteService) *FavouriteHandler {
	return &FavouriteHandler{
		favouriteService: favouriteService,
	}
}

func (h *FavouriteHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		writeError(w, http.StatusBadRequest, "userId is required")
		return
	}

	favourites, err := h.favouriteService.List(userID)
	if err != nil {
		slog.Error("favourites lookup failed", "error", err, "user_id", userID)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"favourites": favourites})
}

type toggleRequest struct {
	UserID string            `json:"userId"`
	Recipe service.RecipeRef `json:"recipe"`
}

func (h *FavouriteHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	var req toggleRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	favourited, err := h.favouriteService.Toggle(req.UserID, req.Recipe)
	if err != nil {
		if errors.Is(err, service.ErrInvalidFavourite) {
			writeError(w, http.StatusBadRequest, "invalid favourite payload")
			return
		}
		slog.Error("favourite toggle failed", "error", err, "user_id", req.UserID, "slug", req.Recipe.Slug)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"favourite": favourited})
}

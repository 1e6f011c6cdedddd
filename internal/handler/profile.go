package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/healthplate/healthplate/internal/repository"
	"github.com/healthplate/healthplate/internal/service"
)

const maxAvatarBytes = 2 << 20 // 2MB

type ProfileHandler struct {
	profileService *service.ProfileService
}

func NewProfileHandler(profileService *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
	}
}

type profileUpdateRequest struct {
	ID       string   `json:"id"`
	FullName *string  `json:"fullname"`
	Weight   *float64 `json:"weight"`
	Height   *float64 `json:"height"`
	Goal     *string  `json:"goal"`
}

// Update is a full replace of the mutable profile fields: omitted fields are
// cleared, so callers must resend values they want to keep.
func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req profileUpdateRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if req.ID == "" {
		writeError(w, http.StatusBadRequest, "user id is required")
		return
	}

	err := h.profileService.Update(req.ID, req.FullName, req.Weight, req.Height, req.Goal)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			writeError(w, http.StatusNotFound, "user not found")
			return
		}
		slog.Error("profile update failed", "error", err, "user_id", req.ID)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

func (h *ProfileHandler) UploadAvatar(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxAvatarBytes+4096)

	err := r.ParseMultipartForm(maxAvatarBytes)
	if err != nil {
		writeError(w, http.StatusBadRequest, "avatar must be an image up to 2 MB")
		return
	}

	userID := r.FormValue("userId")
	if userID == "" {
		writeError(w, http.StatusBadRequest, "user id is required")
		return
	}

	file, header, err := r.FormFile("avatar")
	if err != nil {
		writeError(w, http.StatusBadRequest, "avatar file is required")
		return
	}
	defer func() { _ = file.Close() }()

	avatarURL, err := h.profileService.UploadAvatar(userID, file, header)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			writeError(w, http.StatusNotFound, "user not found")
			return
		}
		if errors.Is(err, service.ErrStorageFailed) {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		slog.Warn("avatar upload rejected", "error", err, "user_id", userID)
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":   true,
		"avatarUrl": avatarURL,
	})
}

package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/healthplate/healthplate/internal/service"
)

type ContactHandler struct {
	contactService *service.ContactService
}

func NewContactHandler(contactService *service.ContactService) *ContactHandler {
	return &ContactHandler{
		contactService: contactService,
	}
}

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req contactRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	err := h.contactService.Submit(req.Name, req.Email, req.Message)
	if err != nil {
		if errors.Is(err, service.ErrMissingContactFields) {
			writeError(w, http.StatusBadRequest, "missing fields")
			return
		}
		slog.Error("contact message write failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]any{"success": false})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

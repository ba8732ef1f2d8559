package api

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/iowah/garagelog/internal/model"
	"github.com/iowah/garagelog/internal/service"
	"github.com/iowah/garagelog/internal/wire"
)

// ModsHandler handles the mod CRUD endpoints.
type ModsHandler struct {
	Mods *service.ModService
}

// List handles GET /mods.
func (h *ModsHandler) List(w http.ResponseWriter, r *http.Request) {
	mods, err := h.Mods.GetAll(r.Context())
	if err != nil {
		slog.Error("failed to list mods", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to list mods")
		return
	}
	if mods == nil {
		mods = []model.Mod{}
	}
	jsonResponse(w, http.StatusOK, mods)
}

// Get handles GET /mods/{id}.
func (h *ModsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid mod id")
		return
	}

	mod, err := h.Mods.GetByID(r.Context(), id)
	if err != nil {
		slog.Error("failed to get mod", "id", id, "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to get mod")
		return
	}
	if mod == nil {
		jsonError(w, http.StatusNotFound, "mod not found")
		return
	}
	jsonResponse(w, http.StatusOK, mod)
}

// Create handles POST /mods.
func (h *ModsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var payload wire.ModPayload
	if err := decodeJSON(r, &payload); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	mod := payload.Normalize()
	if mod.Name == "" {
		jsonError(w, http.StatusBadRequest, "name required")
		return
	}

	created, err := h.Mods.Add(r.Context(), mod)
	if err != nil {
		if isValidationErr(err) {
			jsonError(w, http.StatusBadRequest, err.Error())
			return
		}
		slog.Error("failed to create mod", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to create mod")
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/mods/%d", created.ID))
	jsonResponse(w, http.StatusCreated, created)
}

// Update handles PATCH /mods/{id}.
func (h *ModsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid mod id")
		return
	}

	var payload wire.ModPayload
	if err := decodeJSON(r, &payload); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	mod, err := h.Mods.Update(r.Context(), id, payload.Update())
	if err != nil {
		if isValidationErr(err) {
			jsonError(w, http.StatusBadRequest, err.Error())
			return
		}
		slog.Error("failed to update mod", "id", id, "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to update mod")
		return
	}
	if mod == nil {
		jsonError(w, http.StatusNotFound, "mod not found")
		return
	}
	jsonResponse(w, http.StatusOK, mod)
}

// Delete handles DELETE /mods/{id}.
func (h *ModsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid mod id")
		return
	}

	ok, err := h.Mods.Delete(r.Context(), id)
	if err != nil {
		slog.Error("failed to delete mod", "id", id, "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to delete mod")
		return
	}
	if !ok {
		jsonError(w, http.StatusNotFound, "mod not found")
		return
	}
	jsonResponse(w, http.StatusNoContent, nil)
}

func isValidationErr(err error) bool {
	return errors.Is(err, service.ErrCarNotFound) ||
		errors.Is(err, service.ErrInvalidStatus) ||
		errors.Is(err, service.ErrNegativeCost)
}

package rest

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/society-service/internal/acs"
	"github.com/s21platform/society-service/internal/config"
)

type UpdateProfileRequest struct {
	Nickname  string `json:"nickname"`
	AvatarURL string `json:"avatar_url"`
}

func (h *Handler) GetUserProfile(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetUserProfile")

	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		h.writeError(w, "invalid user id", http.StatusBadRequest)
		return
	}

	user, err := h.repository.GetUser(r.Context(), userID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get user %s: %v", userID, err))
		h.writeDomainError(w, err)
		return
	}

	h.writeJSON(w, user, http.StatusOK)
}

func (h *Handler) UpdateUserProfile(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("UpdateUserProfile")

	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		h.writeError(w, "invalid user id", http.StatusBadRequest)
		return
	}

	var req UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.guard.Check(r.Context(), requesterID(r), acs.UserResource(userID), acs.ActionUpdate); err != nil {
		logger.Error(fmt.Sprintf("profile update denied: %v", err))
		h.writeDomainError(w, err)
		return
	}

	if err := h.repository.UpdateUserProfile(r.Context(), userID, req.Nickname, req.AvatarURL); err != nil {
		logger.Error(fmt.Sprintf("failed to update user %s: %v", userID, err))
		h.writeDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("DeleteUser")

	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		h.writeError(w, "invalid user id", http.StatusBadRequest)
		return
	}

	if err := h.guard.Check(r.Context(), requesterID(r), acs.UserResource(userID), acs.ActionDelete); err != nil {
		logger.Error(fmt.Sprintf("account deletion denied: %v", err))
		h.writeDomainError(w, err)
		return
	}

	if err := h.repository.DeleteUser(r.Context(), userID); err != nil {
		logger.Error(fmt.Sprintf("failed to delete user %s: %v", userID, err))
		h.writeDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/society-service/internal/acs"
	"github.com/s21platform/society-service/internal/config"
	"github.com/s21platform/society-service/internal/model"
	"github.com/s21platform/society-service/internal/pkg/tx"
)

type CreateCommunityRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type UpdateCommunityRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (h *Handler) CreateCommunity(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("CreateCommunity")

	var req CreateCommunityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	ownerID := requesterID(r)
	if err := h.guard.Check(r.Context(), ownerID, acs.CommunityResource(uuid.Nil, uuid.Nil), acs.ActionCreate); err != nil {
		logger.Error(fmt.Sprintf("community creation denied: %v", err))
		h.writeDomainError(w, err)
		return
	}

	var community *model.Community
	err := tx.TxExecute(r.Context(), func(ctx context.Context) error {
		communityID, err := h.repository.CreateCommunity(ctx, &model.Community{
			OwnerID:     *ownerID,
			Name:        req.Name,
			Description: req.Description,
		})
		if err != nil {
			logger.Error(fmt.Sprintf("failed to create community: %v", err))
			return err
		}

		community, err = h.repository.GetCommunity(ctx, communityID)
		return err
	})
	if err != nil {
		h.writeDomainError(w, err)
		return
	}

	h.writeJSON(w, community, http.StatusOK)
}

func (h *Handler) GetCommunity(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetCommunity")

	communityID, err := uuid.Parse(chi.URLParam(r, "communityId"))
	if err != nil {
		h.writeError(w, "invalid community id", http.StatusBadRequest)
		return
	}

	community, err := h.repository.GetCommunity(r.Context(), communityID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get community %s: %v", communityID, err))
		h.writeDomainError(w, err)
		return
	}

	h.writeJSON(w, community, http.StatusOK)
}

func (h *Handler) ListCommunities(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("ListCommunities")

	communities, err := h.repository.GetCommunities(r.Context())
	if err != nil {
		logger.Error(fmt.Sprintf("failed to list communities: %v", err))
		h.writeDomainError(w, err)
		return
	}

	h.writeJSON(w, communities, http.StatusOK)
}

func (h *Handler) UpdateCommunity(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("UpdateCommunity")

	communityID, err := uuid.Parse(chi.URLParam(r, "communityId"))
	if err != nil {
		h.writeError(w, "invalid community id", http.StatusBadRequest)
		return
	}

	var req UpdateCommunityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	community, err := h.repository.GetCommunity(r.Context(), communityID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get community %s: %v", communityID, err))
		h.writeDomainError(w, err)
		return
	}

	if err := h.guard.Check(r.Context(), requesterID(r), acs.CommunityResource(community.ID, community.OwnerID), acs.ActionUpdate); err != nil {
		logger.Error(fmt.Sprintf("community update denied: %v", err))
		h.writeDomainError(w, err)
		return
	}

	if err := h.repository.UpdateCommunity(r.Context(), communityID, req.Name, req.Description); err != nil {
		logger.Error(fmt.Sprintf("failed to update community %s: %v", communityID, err))
		h.writeDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) DeleteCommunity(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("DeleteCommunity")

	communityID, err := uuid.Parse(chi.URLParam(r, "communityId"))
	if err != nil {
		h.writeError(w, "invalid community id", http.StatusBadRequest)
		return
	}

	community, err := h.repository.GetCommunity(r.Context(), communityID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get community %s: %v", communityID, err))
		h.writeDomainError(w, err)
		return
	}

	if err := h.guard.Check(r.Context(), requesterID(r), acs.CommunityResource(community.ID, community.OwnerID), acs.ActionDelete); err != nil {
		logger.Error(fmt.Sprintf("community deletion denied: %v", err))
		h.writeDomainError(w, err)
		return
	}

	if err := h.repository.DeleteCommunity(r.Context(), communityID); err != nil {
		logger.Error(fmt.Sprintf("failed to delete community %s: %v", communityID, err))
		h.writeDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

package rest

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/society-service/internal/acs"
	"github.com/s21platform/society-service/internal/config"
)

func (h *Handler) FollowCommunity(w http.ResponseWriter, r *http.Request) {
	h.changeFollow(w, r, acs.ActionFollow)
}

func (h *Handler) UnfollowCommunity(w http.ResponseWriter, r *http.Request) {
	h.changeFollow(w, r, acs.ActionUnfollow)
}

// changeFollow handles both directions; the access matrix rejects guests
// and community owners following their own community.
func (h *Handler) changeFollow(w http.ResponseWriter, r *http.Request, action acs.Action) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName(fmt.Sprintf("%sCommunity", action))

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

	followerID := requesterID(r)
	if err := h.guard.Check(r.Context(), followerID, acs.CommunityResource(community.ID, community.OwnerID), action); err != nil {
		logger.Error(fmt.Sprintf("%s denied: %v", action, err))
		h.writeDomainError(w, err)
		return
	}

	if action == acs.ActionFollow {
		err = h.repository.FollowCommunity(r.Context(), *followerID, communityID)
	} else {
		err = h.repository.UnfollowCommunity(r.Context(), *followerID, communityID)
	}
	if err != nil {
		logger.Error(fmt.Sprintf("failed to %s community %s: %v", action, communityID, err))
		h.writeDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

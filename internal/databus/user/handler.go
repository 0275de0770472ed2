package user

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/society-service/internal/config"
	"github.com/s21platform/society-service/internal/model"
)

// UpdatedEvent is the platform user topic payload. Role is optional:
// most profile updates carry only nickname and avatar.
type UpdatedEvent struct {
	UserID    uuid.UUID `json:"uuid"`
	Nickname  string    `json:"nickname"`
	AvatarURL string    `json:"avatar_url"`
	Role      string    `json:"role,omitempty"`
}

type Handler struct {
	repository DBRepo
}

func New(repo DBRepo) *Handler {
	return &Handler{repository: repo}
}

// Handler consumes one user update message and mirrors it into the
// local users table. Malformed messages are logged and dropped; storage
// errors are returned so the consumer redelivers.
func (h *Handler) Handler(ctx context.Context, in []byte) error {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)
	logger.AddFuncName("UserUpdateHandler")

	var event UpdatedEvent
	if err := json.Unmarshal(in, &event); err != nil {
		logger.Error(fmt.Sprintf("failed to unmarshal user event: %v", err))
		return nil
	}

	if event.UserID == uuid.Nil {
		logger.Error("user event without uuid, skipping")
		return nil
	}

	if err := h.repository.UpsertUser(ctx, event.UserID, event.Nickname, event.AvatarURL); err != nil {
		logger.Error(fmt.Sprintf("failed to upsert user %s: %v", event.UserID, err))
		return err
	}

	if event.Role == "" {
		return nil
	}

	role, err := model.ParseRole(event.Role)
	if err != nil || role == model.RoleGuest {
		logger.Error(fmt.Sprintf("unknown role %q for user %s, skipping", event.Role, event.UserID))
		return nil
	}

	if err := h.repository.UpdateUserRole(ctx, event.UserID, string(role)); err != nil {
		logger.Error(fmt.Sprintf("failed to update role of user %s: %v", event.UserID, err))
		return err
	}

	return nil
}

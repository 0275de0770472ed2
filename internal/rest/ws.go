package rest

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/society-service/internal/config"
	"github.com/s21platform/society-service/internal/ws"
)

// ChatWS upgrades the request into a chat room socket. The auth
// interceptor has already validated the access token, so an absent user
// id means the caller never presented one.
func (h *Handler) ChatWS(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("ChatWS")

	userID := requesterID(r)
	if userID == nil {
		h.writeError(w, "authentication required", http.StatusUnauthorized)
		return
	}

	chatID, err := uuid.Parse(chi.URLParam(r, "chatId"))
	if err != nil {
		h.writeError(w, "invalid chat id", http.StatusBadRequest)
		return
	}

	isMember, err := h.chat.IsChatMember(r.Context(), chatID, *userID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to check chat membership: %v", err))
		h.writeDomainError(w, err)
		return
	}
	if !isMember {
		h.writeError(w, "user is not a member of the chat", http.StatusForbidden)
		return
	}

	socket, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to upgrade chat socket: %v", err))
		return
	}

	session := ws.NewChatSession(chatID, *userID, socket, h.wsChat, h.hub.Router, h.hub.Rooms, logger)
	session.Run(r.Context())
}

// NotificationWS upgrades the request into the user's notification
// socket. A second connection replaces the first.
func (h *Handler) NotificationWS(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("NotificationWS")

	userID := requesterID(r)
	if userID == nil {
		h.writeError(w, "authentication required", http.StatusUnauthorized)
		return
	}

	socket, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to upgrade notification socket: %v", err))
		return
	}

	session := ws.NewNotificationSession(*userID, socket, h.hub.Notifications, logger)
	session.Run(r.Context())
}

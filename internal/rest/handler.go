package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/s21platform/society-service/internal/acs"
	"github.com/s21platform/society-service/internal/config"
	"github.com/s21platform/society-service/internal/model"
	"github.com/s21platform/society-service/internal/ws"
)

type Handler struct {
	repository  DBRepo
	chat        ChatService
	guard       AccessGuard
	dispatcher  Notifier
	broadcaster Broadcaster
	hub         *ws.Hub
	wsChat      ws.ChatService
	upgrader    websocket.Upgrader
}

func New(
	repo DBRepo,
	chat ChatService,
	guard AccessGuard,
	dispatcher Notifier,
	broadcaster Broadcaster,
	hub *ws.Hub,
	wsChat ws.ChatService,
) *Handler {
	return &Handler{
		repository:  repo,
		chat:        chat,
		guard:       guard,
		dispatcher:  dispatcher,
		broadcaster: broadcaster,
		hub:         hub,
		wsChat:      wsChat,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

// requesterID extracts the authenticated user id placed into the context
// by the auth interceptor. Nil means the request is a guest.
func requesterID(r *http.Request) *uuid.UUID {
	raw, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		return nil
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return nil
	}

	return &id
}

// ----------------------------- helpers -----------------------------

type errorResponse struct {
	Error string `json:"error"`
}

func (h *Handler) writeJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(errorResponse{Error: message})
}

// writeDomainError maps the error taxonomy onto HTTP statuses: denied
// access and forbidden operations become 403, missing entities 404,
// everything else 500.
func (h *Handler) writeDomainError(w http.ResponseWriter, err error) {
	var denied *acs.AccessDeniedError
	switch {
	case errors.As(err, &denied):
		h.writeError(w, denied.Error(), http.StatusForbidden)
	case errors.Is(err, model.ErrForbidden):
		h.writeError(w, err.Error(), http.StatusForbidden)
	case errors.Is(err, model.ErrNotFound):
		h.writeError(w, err.Error(), http.StatusNotFound)
	default:
		h.writeError(w, err.Error(), http.StatusInternalServerError)
	}
}

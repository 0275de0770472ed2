package rest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/society-service/internal/config"
	"github.com/s21platform/society-service/internal/model"
)

type CreateGroupChatRequest struct {
	Name      string      `json:"name"`
	MemberIDs []uuid.UUID `json:"member_ids"`
}

type CreatePrivateChatRequest struct {
	UserID uuid.UUID `json:"user_id"`
}

type ChatMemberRequest struct {
	UserID uuid.UUID `json:"user_id"`
}

func (h *Handler) CreateGroupChat(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("CreateGroupChat")

	ownerID := requesterID(r)
	if ownerID == nil {
		h.writeError(w, "authentication required", http.StatusUnauthorized)
		return
	}

	var req CreateGroupChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	chat, err := h.chat.CreateGroupChat(r.Context(), *ownerID, req.Name, req.MemberIDs)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to create group chat: %v", err))
		h.writeDomainError(w, err)
		return
	}

	h.writeJSON(w, chat, http.StatusOK)
}

func (h *Handler) CreatePrivateChat(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("CreatePrivateChat")

	creatorID := requesterID(r)
	if creatorID == nil {
		h.writeError(w, "authentication required", http.StatusUnauthorized)
		return
	}

	var req CreatePrivateChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	chat, err := h.chat.CreatePrivateChat(r.Context(), *creatorID, req.UserID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to create private chat: %v", err))
		h.writeDomainError(w, err)
		return
	}

	h.writeJSON(w, chat, http.StatusOK)
}

func (h *Handler) ListUserChats(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("ListUserChats")

	userID := requesterID(r)
	if userID == nil {
		h.writeError(w, "authentication required", http.StatusUnauthorized)
		return
	}

	chats, err := h.chat.GetUserChats(r.Context(), *userID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to list chats of user %s: %v", userID, err))
		h.writeDomainError(w, err)
		return
	}

	h.writeJSON(w, chats, http.StatusOK)
}

func (h *Handler) ListChatMessages(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("ListChatMessages")

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

	var limit uint64
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err = strconv.ParseUint(raw, 10, 64)
		if err != nil {
			h.writeError(w, "invalid limit", http.StatusBadRequest)
			return
		}
	}

	messages, err := h.chat.GetChatRecentMessages(r.Context(), *userID, chatID, limit)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to list messages of chat %s: %v", chatID, err))
		h.writeDomainError(w, err)
		return
	}

	h.writeJSON(w, messages, http.StatusOK)
}

func (h *Handler) AddChatMember(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("AddChatMember")

	actorID := requesterID(r)
	if actorID == nil {
		h.writeError(w, "authentication required", http.StatusUnauthorized)
		return
	}

	chatID, err := uuid.Parse(chi.URLParam(r, "chatId"))
	if err != nil {
		h.writeError(w, "invalid chat id", http.StatusBadRequest)
		return
	}

	var req ChatMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	isMember, err := h.chat.IsChatMember(r.Context(), chatID, *actorID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to check chat membership: %v", err))
		h.writeDomainError(w, err)
		return
	}
	if !isMember {
		h.writeError(w, "only chat members can invite users", http.StatusForbidden)
		return
	}

	chat, user, err := h.chat.AddMember(r.Context(), chatID, req.UserID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to add member %s to chat %s: %v", req.UserID, chatID, err))
		h.writeDomainError(w, err)
		return
	}

	h.broadcaster.Broadcast(r.Context(), chatID, *actorID, model.UserAddedEvent(chat, user))

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) RemoveChatMember(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("RemoveChatMember")

	actorID := requesterID(r)
	if actorID == nil {
		h.writeError(w, "authentication required", http.StatusUnauthorized)
		return
	}

	chatID, err := uuid.Parse(chi.URLParam(r, "chatId"))
	if err != nil {
		h.writeError(w, "invalid chat id", http.StatusBadRequest)
		return
	}

	var req ChatMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	// Members can leave; anyone else must be removed by the actor being
	// in the chat themselves.
	if req.UserID != *actorID {
		isMember, err := h.chat.IsChatMember(r.Context(), chatID, *actorID)
		if err != nil {
			logger.Error(fmt.Sprintf("failed to check chat membership: %v", err))
			h.writeDomainError(w, err)
			return
		}
		if !isMember {
			h.writeError(w, "only chat members can remove users", http.StatusForbidden)
			return
		}
	}

	chat, user, ownerRemoved, err := h.chat.RemoveMember(r.Context(), chatID, req.UserID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to remove member %s from chat %s: %v", req.UserID, chatID, err))
		h.writeDomainError(w, err)
		return
	}

	// Peers hear about the removal before the delivery paths close.
	h.broadcaster.Broadcast(r.Context(), chatID, *actorID, model.UserRemovedEvent(chat, user))

	if ownerRemoved {
		h.hub.Rooms.DropRoom(chatID)
	} else {
		h.hub.Rooms.Deregister(chatID, req.UserID)
	}

	w.WriteHeader(http.StatusNoContent)
}

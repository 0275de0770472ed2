package ws

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/society-service/internal/model"
)

// FanoutRouter delivers one chat event to every member of a room except
// the acting user. Delivery is attempted per member through the chat
// registry first; a member without an open room socket falls back to
// their notification socket, so users browsing elsewhere in the app still
// see the event.
type FanoutRouter struct {
	rooms         *ChatRegistry
	notifications *NotificationRegistry
	members       MemberProvider
	logger        logger_lib.LoggerInterface
}

func NewFanoutRouter(
	rooms *ChatRegistry,
	notifications *NotificationRegistry,
	members MemberProvider,
	logger logger_lib.LoggerInterface,
) *FanoutRouter {
	return &FanoutRouter{
		rooms:         rooms,
		notifications: notifications,
		members:       members,
		logger:        logger,
	}
}

func (f *FanoutRouter) Broadcast(ctx context.Context, chatID, actorID uuid.UUID, event model.Event) {
	payload, err := json.Marshal(event)
	if err != nil {
		f.logger.Error(fmt.Sprintf("failed to serialize %s event for chat %s: %v", event.Type, chatID, err))
		return
	}

	members, err := f.members.GetChatMembers(ctx, chatID)
	if err != nil {
		f.logger.Error(fmt.Sprintf("failed to get members of chat %s: %v", chatID, err))
		return
	}

	for _, member := range members {
		if member.UserID == actorID {
			continue
		}

		if f.rooms.Send(chatID, member.UserID, payload) {
			continue
		}

		if !f.notifications.Send(member.UserID, payload) {
			f.logger.Warn(fmt.Sprintf("user %s unreachable, %s event dropped", member.UserID, event.Type))
		}
	}
}

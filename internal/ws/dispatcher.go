package ws

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/society-service/internal/model"
)

// NotificationDispatcher pushes an event to the target user's open
// notification socket. Delivery is best-effort: a missing connection or a
// failed write is logged and dropped, the triggering operation is never
// blocked or failed by it.
type NotificationDispatcher struct {
	registry *NotificationRegistry
	logger   logger_lib.LoggerInterface
}

func NewNotificationDispatcher(registry *NotificationRegistry, logger logger_lib.LoggerInterface) *NotificationDispatcher {
	return &NotificationDispatcher{
		registry: registry,
		logger:   logger,
	}
}

func (d *NotificationDispatcher) Notify(userID uuid.UUID, event model.Event) {
	payload, err := json.Marshal(event)
	if err != nil {
		d.logger.Error(fmt.Sprintf("failed to serialize %s event for user %s: %v", event.Type, userID, err))
		return
	}

	if !d.registry.Send(userID, payload) {
		d.logger.Warn(fmt.Sprintf("user %s has no open notification socket, %s event dropped", userID, event.Type))
	}
}

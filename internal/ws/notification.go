package ws

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	logger_lib "github.com/s21platform/logger-lib"
)

// NotificationSession drives a user's generic notification socket. The
// client never sends commands over it; the read loop only watches for
// close and keeps the pong deadline fresh.
type NotificationSession struct {
	userID   uuid.UUID
	socket   *websocket.Conn
	conn     *Conn
	registry *NotificationRegistry
	logger   logger_lib.LoggerInterface
}

func NewNotificationSession(
	userID uuid.UUID,
	socket *websocket.Conn,
	registry *NotificationRegistry,
	logger logger_lib.LoggerInterface,
) *NotificationSession {
	return &NotificationSession{
		userID:   userID,
		socket:   socket,
		conn:     NewConn(userID),
		registry: registry,
		logger:   logger,
	}
}

func (s *NotificationSession) Run(ctx context.Context) {
	s.registry.Register(s.userID, s.conn)
	defer s.registry.Deregister(s.userID)
	defer s.conn.Close()

	go writePump(s.socket, s.conn, s.conn.Close)

	s.socket.SetReadLimit(maxMessageSize)
	_ = s.socket.SetReadDeadline(time.Now().Add(pongWait))
	s.socket.SetPongHandler(func(string) error {
		return s.socket.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := s.socket.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.logger.Warn(fmt.Sprintf("notification socket of user %s closed: %v", s.userID, err))
			}
			return
		}
	}
}

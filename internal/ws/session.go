package ws

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/society-service/internal/model"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 8192
)

// ChatSession drives one websocket opened into a chat room: a write loop
// draining the registry conn's outbound queue and a read loop decoding
// client frames into chat commands. Whichever loop finishes first ends
// the session and actively shuts down the other.
type ChatSession struct {
	chatID uuid.UUID
	userID uuid.UUID
	socket *websocket.Conn
	conn   *Conn
	chat   ChatService
	router *FanoutRouter
	rooms  *ChatRegistry
	logger logger_lib.LoggerInterface
}

func NewChatSession(
	chatID, userID uuid.UUID,
	socket *websocket.Conn,
	chat ChatService,
	router *FanoutRouter,
	rooms *ChatRegistry,
	logger logger_lib.LoggerInterface,
) *ChatSession {
	return &ChatSession{
		chatID: chatID,
		userID: userID,
		socket: socket,
		conn:   NewConn(userID),
		chat:   chat,
		router: router,
		rooms:  rooms,
		logger: logger,
	}
}

// Run blocks until the session ends. The connection is registered in the
// room on entry and deregistered on every exit path.
func (s *ChatSession) Run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	s.rooms.Register(s.chatID, s.conn)
	defer s.rooms.Deregister(s.chatID, s.userID)
	defer s.conn.Close()

	go writePump(s.socket, s.conn, cancel)
	s.readLoop(ctx)
}

func (s *ChatSession) readLoop(ctx context.Context) {
	defer s.conn.Close()

	s.socket.SetReadLimit(maxMessageSize)
	_ = s.socket.SetReadDeadline(time.Now().Add(pongWait))
	s.socket.SetPongHandler(func(string) error {
		return s.socket.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, raw, err := s.socket.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.logger.Warn(fmt.Sprintf("chat socket of user %s closed: %v", s.userID, err))
			}
			return
		}

		s.handleFrame(ctx, raw)
	}
}

// handleFrame decodes and executes one inbound frame. Malformed or failed
// frames are logged and skipped; they never terminate the connection.
func (s *ChatSession) handleFrame(ctx context.Context, raw []byte) {
	var frame model.InboundFrame
	if err := json.Unmarshal(raw, &frame); err != nil {
		s.logger.Error(fmt.Sprintf("failed to decode frame from user %s: %v", s.userID, err))
		return
	}

	switch frame.Type {
	case model.FrameSendMessage:
		msg, err := s.chat.SendMessage(ctx, s.userID, frame.ChatID, frame.Content)
		if err != nil {
			s.logger.Error(fmt.Sprintf("failed to send message to chat %s: %v", frame.ChatID, err))
			return
		}
		s.router.Broadcast(ctx, frame.ChatID, s.userID, model.NewMessageEvent(msg))

	case model.FrameEditMessage:
		msg, err := s.chat.EditMessage(ctx, s.userID, frame.MessageID, frame.NewContent)
		if err != nil {
			s.logger.Error(fmt.Sprintf("failed to edit message %s: %v", frame.MessageID, err))
			return
		}
		s.router.Broadcast(ctx, s.chatID, s.userID, model.MessageEditedEvent(msg))

	case model.FrameDeleteMessage:
		msg, err := s.chat.DeleteMessage(ctx, s.userID, frame.MessageID)
		if err != nil {
			s.logger.Error(fmt.Sprintf("failed to delete message %s: %v", frame.MessageID, err))
			return
		}
		s.router.Broadcast(ctx, s.chatID, s.userID, model.MessageDeletedEvent(msg))

	case model.FrameUserRemoved:
		s.handleUserRemoved(ctx, frame.User)

	default:
		s.logger.Warn(fmt.Sprintf("unknown frame type %q from user %s", frame.Type, s.userID))
	}
}

// handleUserRemoved evicts the removed user's sockets from the room. When
// the removed user is the room owner the chat is dissolved, so every
// participant is evicted. Persisting the membership change is the REST
// layer's job; this only closes delivery paths.
func (s *ChatSession) handleUserRemoved(ctx context.Context, removed *model.UserInfo) {
	if removed == nil {
		s.logger.Error(fmt.Sprintf("user_removed frame without user from %s", s.userID))
		return
	}

	owner, err := s.chat.GetChatOwner(ctx, s.chatID)
	if err != nil {
		s.logger.Error(fmt.Sprintf("failed to get owner of chat %s: %v", s.chatID, err))
		return
	}

	if owner.ID == removed.ID {
		s.rooms.DropRoom(s.chatID)
		return
	}
	s.rooms.Deregister(s.chatID, removed.ID)
}

// writePump drains the conn's outbound queue into the socket and keeps
// the connection alive with pings. On exit it runs stop and closes the
// socket so the read loop unblocks.
func writePump(socket *websocket.Conn, conn *Conn, stop func()) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		stop()
		_ = socket.Close()
	}()

	for {
		select {
		case payload := <-conn.send:
			_ = socket.SetWriteDeadline(time.Now().Add(writeWait))
			if err := socket.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}

		case <-conn.done:
			_ = socket.SetWriteDeadline(time.Now().Add(writeWait))
			_ = socket.WriteMessage(websocket.CloseMessage, []byte{})
			return

		case <-ticker.C:
			_ = socket.SetWriteDeadline(time.Now().Add(writeWait))
			if err := socket.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

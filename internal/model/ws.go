package model

import "github.com/google/uuid"

// Inbound frame discriminators (client to server).
const (
	FrameSendMessage   = "send_message"
	FrameEditMessage   = "edit_message"
	FrameDeleteMessage = "delete_message"
	FrameUserRemoved   = "user_removed"
)

// Outbound event discriminators (server to client). The user_removed tag is
// shared with the inbound frame and new_like is shared between post and
// comment likes; consumers disambiguate by payload shape.
const (
	EventNewMessage     = "new_message"
	EventMessageEdited  = "message_edited"
	EventMessageDeleted = "message_deleted"
	EventUserAdded      = "user_added"
	EventUserRemoved    = "user_removed"
	EventNewPost        = "new_post"
	EventNewLike        = "new_like"
	EventNewReport      = "new_report"
)

// InboundFrame is the decoded form of one client websocket frame. Only the
// fields matching the Type discriminator are populated.
type InboundFrame struct {
	Type       string    `json:"type"`
	ChatID     uuid.UUID `json:"chat_id,omitempty"`
	Content    string    `json:"content,omitempty"`
	MessageID  uuid.UUID `json:"message_id,omitempty"`
	NewContent string    `json:"new_content,omitempty"`
	Chat       *ChatInfo `json:"chat,omitempty"`
	User       *UserInfo `json:"user,omitempty"`
}

// Event is one server-pushed websocket payload.
type Event struct {
	Type    string       `json:"type"`
	Message *MessageInfo `json:"message,omitempty"`
	Chat    *ChatInfo    `json:"chat,omitempty"`
	User    *UserInfo    `json:"user,omitempty"`
	Post    *Post        `json:"post,omitempty"`
	Comment *Comment     `json:"comment,omitempty"`
	Report  *Report      `json:"report,omitempty"`
}

func NewMessageEvent(msg *MessageInfo) Event {
	return Event{Type: EventNewMessage, Message: msg}
}

func MessageEditedEvent(msg *MessageInfo) Event {
	return Event{Type: EventMessageEdited, Message: msg}
}

func MessageDeletedEvent(msg *MessageInfo) Event {
	return Event{Type: EventMessageDeleted, Message: msg}
}

func UserAddedEvent(chat *ChatInfo, user *UserInfo) Event {
	return Event{Type: EventUserAdded, Chat: chat, User: user}
}

func UserRemovedEvent(chat *ChatInfo, user *UserInfo) Event {
	return Event{Type: EventUserRemoved, Chat: chat, User: user}
}

func NewPostEvent(post *Post) Event {
	return Event{Type: EventNewPost, Post: post}
}

func NewPostLikeEvent(post *Post, user *UserInfo) Event {
	return Event{Type: EventNewLike, Post: post, User: user}
}

func NewCommentLikeEvent(comment *Comment, user *UserInfo) Event {
	return Event{Type: EventNewLike, Comment: comment, User: user}
}

func NewReportEvent(report *Report) Event {
	return Event{Type: EventNewReport, Report: report}
}

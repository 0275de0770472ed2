//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/s21platform/society-service/internal/model"
)

type DBRepo interface {
	GetUser(ctx context.Context, userID uuid.UUID) (*model.User, error)

	CreateChat(ctx context.Context, name *string, isGroup bool) (uuid.UUID, error)
	GetChat(ctx context.Context, chatID uuid.UUID) (*model.Chat, error)
	DeleteChat(ctx context.Context, chatID uuid.UUID) error
	AddChatMember(ctx context.Context, chatID, userID uuid.UUID, role string) error
	RemoveChatMember(ctx context.Context, chatID, userID uuid.UUID) error
	GetChatMembers(ctx context.Context, chatID uuid.UUID) (model.ChatMemberList, error)
	GetChatOwner(ctx context.Context, chatID uuid.UUID) (*model.User, error)
	IsChatMember(ctx context.Context, chatID, userID uuid.UUID) (bool, error)
	GetUserChats(ctx context.Context, userID uuid.UUID) ([]model.Chat, error)
	FindPrivateChat(ctx context.Context, firstID, secondID uuid.UUID) (*model.Chat, error)

	SaveMessage(ctx context.Context, message *model.Message) error
	GetMessage(ctx context.Context, messageID uuid.UUID) (*model.Message, error)
	GetMessageInfo(ctx context.Context, messageID uuid.UUID) (*model.MessageInfo, error)
	UpdateMessageContent(ctx context.Context, messageID uuid.UUID, content string) error
	MarkMessageDeleted(ctx context.Context, messageID uuid.UUID) error
	GetChatRecentMessages(ctx context.Context, chatID uuid.UUID, limit uint64) (*model.MessageList, error)

	WithTx(ctx context.Context, cb func(ctx context.Context) error) error
}

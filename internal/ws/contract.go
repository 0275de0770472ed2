//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package ws

import (
	"context"

	"github.com/google/uuid"

	"github.com/s21platform/society-service/internal/model"
)

type ChatService interface {
	SendMessage(ctx context.Context, senderID, chatID uuid.UUID, content string) (*model.MessageInfo, error)
	EditMessage(ctx context.Context, actorID, messageID uuid.UUID, newContent string) (*model.MessageInfo, error)
	DeleteMessage(ctx context.Context, actorID, messageID uuid.UUID) (*model.MessageInfo, error)
	GetChatOwner(ctx context.Context, chatID uuid.UUID) (*model.UserInfo, error)
}

type MemberProvider interface {
	GetChatMembers(ctx context.Context, chatID uuid.UUID) (model.ChatMemberList, error)
}

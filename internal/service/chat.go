package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/s21platform/society-service/internal/model"
)

// ChatService persists chat state and assembles the message DTOs pushed
// over websockets. It backs both the REST chat handlers and the chat
// session actor.
type ChatService struct {
	repository DBRepo
}

func New(repo DBRepo) *ChatService {
	return &ChatService{
		repository: repo,
	}
}

func (s *ChatService) SendMessage(ctx context.Context, senderID, chatID uuid.UUID, content string) (*model.MessageInfo, error) {
	isMember, err := s.repository.IsChatMember(ctx, chatID, senderID)
	if err != nil {
		return nil, fmt.Errorf("failed to check chat membership: %v", err)
	}
	if !isMember {
		return nil, fmt.Errorf("user %s is not a member of chat %s: %w", senderID, chatID, model.ErrForbidden)
	}

	message := model.Message{
		ID:       uuid.New(),
		ChatID:   chatID,
		SenderID: senderID,
		Content:  content,
	}

	if err := s.repository.SaveMessage(ctx, &message); err != nil {
		return nil, fmt.Errorf("failed to save message: %v", err)
	}

	return s.repository.GetMessageInfo(ctx, message.ID)
}

func (s *ChatService) EditMessage(ctx context.Context, actorID, messageID uuid.UUID, newContent string) (*model.MessageInfo, error) {
	message, err := s.repository.GetMessage(ctx, messageID)
	if err != nil {
		return nil, fmt.Errorf("failed to get message: %w", err)
	}

	if message.SenderID != actorID {
		return nil, fmt.Errorf("user %s is not the sender of message %s: %w", actorID, messageID, model.ErrForbidden)
	}

	if err := s.repository.UpdateMessageContent(ctx, messageID, newContent); err != nil {
		return nil, fmt.Errorf("failed to update message: %v", err)
	}

	return s.repository.GetMessageInfo(ctx, messageID)
}

func (s *ChatService) DeleteMessage(ctx context.Context, actorID, messageID uuid.UUID) (*model.MessageInfo, error) {
	message, err := s.repository.GetMessage(ctx, messageID)
	if err != nil {
		return nil, fmt.Errorf("failed to get message: %w", err)
	}

	if message.SenderID != actorID {
		return nil, fmt.Errorf("user %s is not the sender of message %s: %w", actorID, messageID, model.ErrForbidden)
	}

	if err := s.repository.MarkMessageDeleted(ctx, messageID); err != nil {
		return nil, fmt.Errorf("failed to delete message: %v", err)
	}

	return s.repository.GetMessageInfo(ctx, messageID)
}

func (s *ChatService) GetChatOwner(ctx context.Context, chatID uuid.UUID) (*model.UserInfo, error) {
	owner, err := s.repository.GetChatOwner(ctx, chatID)
	if err != nil {
		return nil, fmt.Errorf("failed to get chat owner: %w", err)
	}

	return owner.Info(), nil
}

func (s *ChatService) GetChatMembers(ctx context.Context, chatID uuid.UUID) (model.ChatMemberList, error) {
	return s.repository.GetChatMembers(ctx, chatID)
}

func (s *ChatService) CreateGroupChat(ctx context.Context, ownerID uuid.UUID, name string, memberIDs []uuid.UUID) (*model.Chat, error) {
	var chat *model.Chat
	err := s.repository.WithTx(ctx, func(ctx context.Context) error {
		chatID, err := s.repository.CreateChat(ctx, &name, true)
		if err != nil {
			return fmt.Errorf("failed to create chat: %v", err)
		}

		if err := s.repository.AddChatMember(ctx, chatID, ownerID, model.ChatRoleOwner); err != nil {
			return fmt.Errorf("failed to add chat owner: %v", err)
		}

		for _, memberID := range memberIDs {
			if memberID == ownerID {
				continue
			}
			if err := s.repository.AddChatMember(ctx, chatID, memberID, model.ChatRoleMember); err != nil {
				return fmt.Errorf("failed to add chat member %s: %v", memberID, err)
			}
		}

		chat, err = s.repository.GetChat(ctx, chatID)
		return err
	})
	if err != nil {
		return nil, err
	}

	return chat, nil
}

// CreatePrivateChat returns the existing one-on-one chat of the pair, or
// creates it. Private chats carry no owner; deleting them is not tied to
// either participant leaving.
func (s *ChatService) CreatePrivateChat(ctx context.Context, firstID, secondID uuid.UUID) (*model.Chat, error) {
	existing, err := s.repository.FindPrivateChat(ctx, firstID, secondID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, model.ErrNotFound) {
		return nil, fmt.Errorf("failed to find private chat: %v", err)
	}

	var chat *model.Chat
	err = s.repository.WithTx(ctx, func(ctx context.Context) error {
		chatID, err := s.repository.CreateChat(ctx, nil, false)
		if err != nil {
			return fmt.Errorf("failed to create chat: %v", err)
		}

		if err := s.repository.AddChatMember(ctx, chatID, firstID, model.ChatRoleMember); err != nil {
			return fmt.Errorf("failed to add chat member %s: %v", firstID, err)
		}
		if err := s.repository.AddChatMember(ctx, chatID, secondID, model.ChatRoleMember); err != nil {
			return fmt.Errorf("failed to add chat member %s: %v", secondID, err)
		}

		chat, err = s.repository.GetChat(ctx, chatID)
		return err
	})
	if err != nil {
		return nil, err
	}

	return chat, nil
}

func (s *ChatService) AddMember(ctx context.Context, chatID, userID uuid.UUID) (*model.ChatInfo, *model.UserInfo, error) {
	chat, err := s.repository.GetChat(ctx, chatID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get chat: %w", err)
	}

	user, err := s.repository.GetUser(ctx, userID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get user: %w", err)
	}

	if err := s.repository.AddChatMember(ctx, chatID, userID, model.ChatRoleMember); err != nil {
		return nil, nil, fmt.Errorf("failed to add chat member: %v", err)
	}

	return chat.Info(), user.Info(), nil
}

// RemoveMember takes userID out of the chat. Removing the owner
// dissolves the whole chat; the returned flag tells the caller which of
// the two happened.
func (s *ChatService) RemoveMember(ctx context.Context, chatID, userID uuid.UUID) (*model.ChatInfo, *model.UserInfo, bool, error) {
	chat, err := s.repository.GetChat(ctx, chatID)
	if err != nil {
		return nil, nil, false, fmt.Errorf("failed to get chat: %w", err)
	}

	user, err := s.repository.GetUser(ctx, userID)
	if err != nil {
		return nil, nil, false, fmt.Errorf("failed to get user: %w", err)
	}

	owner, err := s.repository.GetChatOwner(ctx, chatID)
	if err != nil && !errors.Is(err, model.ErrNotFound) {
		return nil, nil, false, fmt.Errorf("failed to get chat owner: %v", err)
	}

	if owner != nil && owner.ID == userID {
		if err := s.repository.DeleteChat(ctx, chatID); err != nil {
			return nil, nil, false, fmt.Errorf("failed to delete chat: %v", err)
		}
		return chat.Info(), user.Info(), true, nil
	}

	if err := s.repository.RemoveChatMember(ctx, chatID, userID); err != nil {
		return nil, nil, false, fmt.Errorf("failed to remove chat member: %v", err)
	}

	return chat.Info(), user.Info(), false, nil
}

func (s *ChatService) GetUserChats(ctx context.Context, userID uuid.UUID) ([]model.Chat, error) {
	return s.repository.GetUserChats(ctx, userID)
}

func (s *ChatService) GetChatRecentMessages(ctx context.Context, requesterID, chatID uuid.UUID, limit uint64) (*model.MessageList, error) {
	isMember, err := s.repository.IsChatMember(ctx, chatID, requesterID)
	if err != nil {
		return nil, fmt.Errorf("failed to check chat membership: %v", err)
	}
	if !isMember {
		return nil, fmt.Errorf("user %s is not a member of chat %s: %w", requesterID, chatID, model.ErrForbidden)
	}

	return s.repository.GetChatRecentMessages(ctx, chatID, limit)
}

func (s *ChatService) IsChatMember(ctx context.Context, chatID, userID uuid.UUID) (bool, error) {
	return s.repository.IsChatMember(ctx, chatID, userID)
}

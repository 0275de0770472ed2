package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/s21platform/society-service/internal/model"
)

func (r *Repository) CreateChat(ctx context.Context, name *string, isGroup bool) (uuid.UUID, error) {
	query, args, err := sq.Insert("chats").
		Columns("name", "is_group").
		Values(name, isGroup).
		Suffix("RETURNING id").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var chatID uuid.UUID
	err = r.Chk(ctx).GetContext(ctx, &chatID, query, args...)
	if err != nil {
		return uuid.Nil, err
	}

	return chatID, nil
}

func (r *Repository) GetChat(ctx context.Context, chatID uuid.UUID) (*model.Chat, error) {
	query, args, err := sq.Select("id", "name", "is_group", "created_at", "updated_at").
		From("chats").
		Where(sq.Eq{"id": chatID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var chat model.Chat
	err = r.Chk(ctx).GetContext(ctx, &chat, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &chat, nil
}

func (r *Repository) DeleteChat(ctx context.Context, chatID uuid.UUID) error {
	query, args, err := sq.Delete("chats").
		Where(sq.Eq{"id": chatID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)

	return err
}

func (r *Repository) AddChatMember(ctx context.Context, chatID, userID uuid.UUID, role string) error {
	query, args, err := sq.Insert("chat_members").
		Columns("chat_id", "user_id", "role").
		Values(chatID, userID, role).
		Suffix("ON CONFLICT (chat_id, user_id) DO NOTHING").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)

	return err
}

func (r *Repository) RemoveChatMember(ctx context.Context, chatID, userID uuid.UUID) error {
	query, args, err := sq.Delete("chat_members").
		Where(sq.And{
			sq.Eq{"chat_id": chatID},
			sq.Eq{"user_id": userID},
		}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)

	return err
}

func (r *Repository) GetChatMembers(ctx context.Context, chatID uuid.UUID) (model.ChatMemberList, error) {
	query, args, err := sq.Select("chat_id", "user_id", "role").
		From("chat_members").
		Where(sq.Eq{"chat_id": chatID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var members model.ChatMemberList
	err = r.Chk(ctx).SelectContext(ctx, &members, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get chat members: %v", err)
	}

	return members, nil
}

func (r *Repository) GetChatOwner(ctx context.Context, chatID uuid.UUID) (*model.User, error) {
	query, args, err := sq.Select("u.id", "u.nickname", "u.avatar_url", "u.role", "u.created_at").
		From("chat_members cm").
		Join("users u ON u.id = cm.user_id").
		Where(sq.And{
			sq.Eq{"cm.chat_id": chatID},
			sq.Eq{"cm.role": model.ChatRoleOwner},
		}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var owner model.User
	err = r.Chk(ctx).GetContext(ctx, &owner, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &owner, nil
}

func (r *Repository) IsChatMember(ctx context.Context, chatID, userID uuid.UUID) (bool, error) {
	query, args, err := sq.
		Select("COUNT(*) > 0").
		From("chat_members").
		Where(sq.And{
			sq.Eq{"chat_id": chatID},
			sq.Eq{"user_id": userID},
		}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build sql query: %v", err)
	}

	var isMember bool
	err = r.Chk(ctx).GetContext(ctx, &isMember, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to check chat membership: %v", err)
	}

	return isMember, nil
}

func (r *Repository) GetUserChats(ctx context.Context, userID uuid.UUID) ([]model.Chat, error) {
	query, args, err := sq.Select("c.id", "c.name", "c.is_group", "c.created_at", "c.updated_at").
		From("chats c").
		Join("chat_members cm ON cm.chat_id = c.id").
		Where(sq.Eq{"cm.user_id": userID}).
		OrderBy("c.updated_at DESC").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var chats []model.Chat
	err = r.Chk(ctx).SelectContext(ctx, &chats, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get user chats: %v", err)
	}

	return chats, nil
}

// FindPrivateChat looks up the existing non-group chat with exactly the
// two given members.
func (r *Repository) FindPrivateChat(ctx context.Context, firstID, secondID uuid.UUID) (*model.Chat, error) {
	query, args, err := sq.Select("c.id", "c.name", "c.is_group", "c.created_at", "c.updated_at").
		From("chats c").
		Join("chat_members cm1 ON cm1.chat_id = c.id").
		Join("chat_members cm2 ON cm2.chat_id = c.id").
		Where(sq.And{
			sq.Eq{"c.is_group": false},
			sq.Eq{"cm1.user_id": firstID},
			sq.Eq{"cm2.user_id": secondID},
		}).
		Limit(1).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var chat model.Chat
	err = r.Chk(ctx).GetContext(ctx, &chat, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &chat, nil
}

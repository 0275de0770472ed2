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

func (r *Repository) SaveMessage(ctx context.Context, message *model.Message) error {
	query, args, err := sq.Insert("messages").
		Columns("id", "chat_id", "sender_id", "content").
		Values(message.ID, message.ChatID, message.SenderID, message.Content).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to save message: %v", err)
	}

	return nil
}

func (r *Repository) GetMessage(ctx context.Context, messageID uuid.UUID) (*model.Message, error) {
	query, args, err := sq.Select("id", "chat_id", "sender_id", "content", "created_at", "updated_at", "is_deleted").
		From("messages").
		Where(sq.Eq{"id": messageID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var message model.Message
	err = r.Chk(ctx).GetContext(ctx, &message, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &message, nil
}

// GetMessageInfo returns the wire shape of one message with the sender
// nickname joined in.
func (r *Repository) GetMessageInfo(ctx context.Context, messageID uuid.UUID) (*model.MessageInfo, error) {
	query, args, err := sq.Select(
		"m.id",
		"m.chat_id",
		"m.sender_id",
		"u.nickname AS sender_name",
		"m.content",
		"m.created_at",
		"m.updated_at",
		"m.updated_at > m.created_at AS is_edited",
		"m.is_deleted",
	).
		From("messages m").
		Join("users u ON u.id = m.sender_id").
		Where(sq.Eq{"m.id": messageID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var info model.MessageInfo
	err = r.Chk(ctx).GetContext(ctx, &info, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &info, nil
}

func (r *Repository) UpdateMessageContent(ctx context.Context, messageID uuid.UUID, content string) error {
	query, args, err := sq.Update("messages").
		Set("content", content).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": messageID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)

	return err
}

func (r *Repository) MarkMessageDeleted(ctx context.Context, messageID uuid.UUID) error {
	query, args, err := sq.Update("messages").
		Set("is_deleted", true).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": messageID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)

	return err
}

func (r *Repository) GetChatRecentMessages(ctx context.Context, chatID uuid.UUID, limit uint64) (*model.MessageList, error) {
	if limit == 0 {
		limit = 50
	}

	query, args, err := sq.Select("id", "chat_id", "sender_id", "content", "created_at", "updated_at", "is_deleted").
		From("messages").
		Where(sq.And{
			sq.Eq{"chat_id": chatID},
			sq.Eq{"is_deleted": false},
		}).
		OrderBy("created_at DESC").
		Limit(limit).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var messages model.MessageList
	err = r.Chk(ctx).SelectContext(ctx, &messages, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get messages: %v", err)
	}

	return &messages, nil
}

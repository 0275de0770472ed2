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

func (r *Repository) GetUser(ctx context.Context, userID uuid.UUID) (*model.User, error) {
	query, args, err := sq.Select("id", "nickname", "avatar_url", "role", "created_at").
		From("users").
		Where(sq.Eq{"id": userID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var user model.User
	err = r.Chk(ctx).GetContext(ctx, &user, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *Repository) GetUserRole(ctx context.Context, userID uuid.UUID) (string, error) {
	query, args, err := sq.Select("role").
		From("users").
		Where(sq.Eq{"id": userID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("failed to build sql query: %v", err)
	}

	var role string
	err = r.Chk(ctx).GetContext(ctx, &role, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return "", model.ErrNotFound
	}
	if err != nil {
		return "", err
	}

	return role, nil
}

func (r *Repository) UpsertUser(ctx context.Context, userID uuid.UUID, nickname, avatarURL string) error {
	query, args, err := sq.Insert("users").
		Columns("id", "nickname", "avatar_url").
		Values(userID, nickname, avatarURL).
		Suffix("ON CONFLICT (id) DO UPDATE SET nickname = EXCLUDED.nickname, avatar_url = EXCLUDED.avatar_url").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)

	return err
}

func (r *Repository) UpdateUserProfile(ctx context.Context, userID uuid.UUID, nickname, avatarURL string) error {
	query, args, err := sq.Update("users").
		Set("nickname", nickname).
		Set("avatar_url", avatarURL).
		Where(sq.Eq{"id": userID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)

	return err
}

func (r *Repository) UpdateUserRole(ctx context.Context, userID uuid.UUID, role string) error {
	query, args, err := sq.Update("users").
		Set("role", role).
		Where(sq.Eq{"id": userID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)

	return err
}

func (r *Repository) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	query, args, err := sq.Delete("users").
		Where(sq.Eq{"id": userID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)

	return err
}

func (r *Repository) GetAdminUserIDs(ctx context.Context) ([]uuid.UUID, error) {
	query, args, err := sq.Select("id").
		From("users").
		Where(sq.Eq{"role": model.RoleAdmin}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var adminIDs []uuid.UUID
	err = r.Chk(ctx).SelectContext(ctx, &adminIDs, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get admin users: %v", err)
	}

	return adminIDs, nil
}

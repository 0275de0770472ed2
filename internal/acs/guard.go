//go:generate mockgen -destination=mock_guard_test.go -package=${GOPACKAGE} -source=guard.go
package acs

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/s21platform/society-service/internal/model"
)

type UserProvider interface {
	GetUserRole(ctx context.Context, userID uuid.UUID) (string, error)
}

// Guard resolves the requester's stored role and runs the access matrix.
// An absent requester id short-circuits to Guest without touching the
// user store.
type Guard struct {
	users UserProvider
}

func NewGuard(users UserProvider) *Guard {
	return &Guard{users: users}
}

func (g *Guard) ResolveRole(ctx context.Context, requesterID *uuid.UUID) (model.Role, error) {
	if requesterID == nil {
		return model.RoleGuest, nil
	}

	stored, err := g.users.GetUserRole(ctx, *requesterID)
	if err != nil {
		return "", fmt.Errorf("failed to resolve role for user %s: %w", requesterID, err)
	}

	role, err := model.ParseRole(stored)
	if err != nil {
		return "", fmt.Errorf("failed to parse stored role: %w", err)
	}

	return role, nil
}

func (g *Guard) Check(ctx context.Context, requesterID *uuid.UUID, resource Resource, action Action) error {
	role, err := g.ResolveRole(ctx, requesterID)
	if err != nil {
		return err
	}

	return CheckAccess(role, resource, action, requesterID)
}

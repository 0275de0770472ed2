//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package user

import (
	"context"

	"github.com/google/uuid"
)

type DBRepo interface {
	UpsertUser(ctx context.Context, userID uuid.UUID, nickname, avatarURL string) error
	UpdateUserRole(ctx context.Context, userID uuid.UUID, role string) error
}

package repository

import (
	"context"

	"github.com/devasif/smart-task-management/internal/domain/entity"
)

// UserRepository defines the interface for credential storage.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) (string, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
}

// internal/repository/user_repo.go
package repository

import (
	"context"

	"banktransfer/internal/domain"
)

// UserRepository persists users.
type UserRepository interface {
	Create(ctx context.Context, q DBExecutor, user *domain.User) error
	GetByUsername(ctx context.Context, q DBExecutor, username string) (*domain.User, error)
}

package repository

import (
	"context"

	"github.com/aditrahmn/contact-management-api/internal/domain/entity"
)

// UserRepository defines the interface for user-related database operations.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	CountByUsername(ctx context.Context, username string) (int64, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	// GetByToken resolves an opaque session token by exact match.
	GetByToken(ctx context.Context, token string) (*entity.User, error)
	Update(ctx context.Context, u *entity.User) error
	// UpdateToken persists a new session token; an empty token clears the session.
	UpdateToken(ctx context.Context, username, token string) error
}

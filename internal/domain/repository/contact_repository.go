package repository

import (
	"context"

	"github.com/aditrahmn/contact-management-api/internal/domain/entity"
)

// ContactFilter holds the optional search filters; empty fields are no-ops.
// All supplied filters are ANDed and name matches either first or last name.
type ContactFilter struct {
	Name  string
	Email string
	Phone string
}

// ContactRepository defines the interface for contact-related database operations.
type ContactRepository interface {
	Create(ctx context.Context, c *entity.Contact) error
	// FindOwned fetches a contact by id scoped to its owner. A contact that
	// exists but belongs to someone else is indistinguishable from a missing one.
	FindOwned(ctx context.Context, id int64, username string) (*entity.Contact, error)
	Update(ctx context.Context, c *entity.Contact) error
	Delete(ctx context.Context, id int64) error
	Search(ctx context.Context, username string, f ContactFilter, limit, offset int) ([]*entity.Contact, error)
	CountSearch(ctx context.Context, username string, f ContactFilter) (int64, error)
}

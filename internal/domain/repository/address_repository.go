package repository

import (
	"context"

	"github.com/aditrahmn/contact-management-api/internal/domain/entity"
)

// AddressRepository defines the interface for address-related database operations.
// Lookups are always scoped to a contact that the caller has already been
// verified to own.
type AddressRepository interface {
	Create(ctx context.Context, a *entity.Address) error
	FindByContact(ctx context.Context, id, contactID int64) (*entity.Address, error)
	Update(ctx context.Context, a *entity.Address) error
	Delete(ctx context.Context, id int64) error
	ListByContact(ctx context.Context, contactID int64) ([]*entity.Address, error)
}

package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aditrahmn/contact-management-api/internal/domain/entity"
	"github.com/aditrahmn/contact-management-api/internal/domain/repository"
)

type AddressRepository struct {
	pool *pgxpool.Pool
}

func NewAddressRepository(pool *pgxpool.Pool) *AddressRepository {
	return &AddressRepository{pool: pool}
}

func (r *AddressRepository) Create(ctx context.Context, a *entity.Address) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO addresses (street, city, province, country, postal_code, contact_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`, a.Street, a.City, a.Province, a.Country, a.PostalCode, a.ContactID)

	return row.Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
}

func (r *AddressRepository) FindByContact(ctx context.Context, id, contactID int64) (*entity.Address, error) {
	a := &entity.Address{}

	row := r.pool.QueryRow(ctx, `
		SELECT id, street, city, province, country, postal_code, contact_id, created_at, updated_at
		FROM addresses
		WHERE id = $1 AND contact_id = $2
	`, id, contactID)

	if err := row.Scan(&a.ID, &a.Street, &a.City, &a.Province, &a.Country,
		&a.PostalCode, &a.ContactID, &a.CreatedAt, &a.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return a, nil
}

func (r *AddressRepository) Update(ctx context.Context, a *entity.Address) error {
	a.UpdatedAt = time.Now()

	res, err := r.pool.Exec(ctx, `
		UPDATE addresses
		SET street = $1, city = $2, province = $3, country = $4, postal_code = $5, updated_at = $6
		WHERE id = $7
	`, a.Street, a.City, a.Province, a.Country, a.PostalCode, a.UpdatedAt, a.ID)
	if err != nil {
		return err
	}

	if res.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *AddressRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM addresses WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if res.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *AddressRepository) ListByContact(ctx context.Context, contactID int64) ([]*entity.Address, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, street, city, province, country, postal_code, contact_id, created_at, updated_at
		FROM addresses
		WHERE contact_id = $1
		ORDER BY id
	`, contactID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]*entity.Address, 0)
	for rows.Next() {
		a := &entity.Address{}
		if err := rows.Scan(&a.ID, &a.Street, &a.City, &a.Province, &a.Country,
			&a.PostalCode, &a.ContactID, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, a)
	}

	return out, rows.Err()
}

var _ repository.AddressRepository = (*AddressRepository)(nil)

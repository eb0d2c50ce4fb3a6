package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aditrahmn/contact-management-api/internal/domain/entity"
	"github.com/aditrahmn/contact-management-api/internal/domain/repository"
)

type ContactRepository struct {
	pool *pgxpool.Pool
}

func NewContactRepository(pool *pgxpool.Pool) *ContactRepository {
	return &ContactRepository{pool: pool}
}

func (r *ContactRepository) Create(ctx context.Context, c *entity.Contact) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO contacts (first_name, last_name, email, phone, username)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`, c.FirstName, c.LastName, c.Email, c.Phone, c.Username)

	return row.Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
}

// FindOwned embeds the ownership predicate in the query itself, so a foreign
// contact and a missing contact both come back as ErrNotFound.
func (r *ContactRepository) FindOwned(ctx context.Context, id int64, username string) (*entity.Contact, error) {
	c := &entity.Contact{}

	row := r.pool.QueryRow(ctx, `
		SELECT id, first_name, last_name, email, phone, username, created_at, updated_at
		FROM contacts
		WHERE id = $1 AND username = $2
	`, id, username)

	if err := row.Scan(&c.ID, &c.FirstName, &c.LastName, &c.Email, &c.Phone,
		&c.Username, &c.CreatedAt, &c.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return c, nil
}

func (r *ContactRepository) Update(ctx context.Context, c *entity.Contact) error {
	c.UpdatedAt = time.Now()

	res, err := r.pool.Exec(ctx, `
		UPDATE contacts
		SET first_name = $1, last_name = $2, email = $3, phone = $4, updated_at = $5
		WHERE id = $6
	`, c.FirstName, c.LastName, c.Email, c.Phone, c.UpdatedAt, c.ID)
	if err != nil {
		return err
	}

	if res.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *ContactRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM contacts WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if res.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

// searchWhere builds the conjunctive filter shared by Search and CountSearch.
// Case sensitivity follows LIKE under the store collation.
func searchWhere(username string, f repository.ContactFilter) (string, []any) {
	where := []string{"username = $1"}
	args := []any{username}

	if f.Name != "" {
		args = append(args, "%"+f.Name+"%")
		where = append(where, fmt.Sprintf("(first_name LIKE $%d OR last_name LIKE $%d)", len(args), len(args)))
	}
	if f.Email != "" {
		args = append(args, "%"+f.Email+"%")
		where = append(where, fmt.Sprintf("email LIKE $%d", len(args)))
	}
	if f.Phone != "" {
		args = append(args, "%"+f.Phone+"%")
		where = append(where, fmt.Sprintf("phone LIKE $%d", len(args)))
	}

	return strings.Join(where, " AND "), args
}

func (r *ContactRepository) Search(ctx context.Context, username string, f repository.ContactFilter, limit, offset int) ([]*entity.Contact, error) {
	cond, args := searchWhere(username, f)
	args = append(args, limit, offset)

	q := fmt.Sprintf(`
		SELECT id, first_name, last_name, email, phone, username, created_at, updated_at
		FROM contacts
		WHERE %s
		ORDER BY id
		LIMIT $%d OFFSET $%d
	`, cond, len(args)-1, len(args))

	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]*entity.Contact, 0)
	for rows.Next() {
		c := &entity.Contact{}
		if err := rows.Scan(&c.ID, &c.FirstName, &c.LastName, &c.Email, &c.Phone,
			&c.Username, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}

	return out, rows.Err()
}

func (r *ContactRepository) CountSearch(ctx context.Context, username string, f repository.ContactFilter) (int64, error) {
	cond, args := searchWhere(username, f)

	var n int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM contacts WHERE `+cond, args...).Scan(&n)
	return n, err
}

var _ repository.ContactRepository = (*ContactRepository)(nil)

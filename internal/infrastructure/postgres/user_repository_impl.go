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

var ErrNotFound = errors.New("not found")

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) Create(ctx context.Context, u *entity.User) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO users (username, name, password, avatar_url)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at, updated_at
	`, u.Username, u.Name, u.Password, u.AvatarURL)

	return row.Scan(&u.CreatedAt, &u.UpdatedAt)
}

func (r *UserRepository) CountByUsername(ctx context.Context, username string) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM users WHERE username = $1`, username).Scan(&n)
	return n, err
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	return r.getWhere(ctx, `username = $1`, username)
}

func (r *UserRepository) GetByToken(ctx context.Context, token string) (*entity.User, error) {
	if token == "" {
		return nil, ErrNotFound
	}
	return r.getWhere(ctx, `token = $1`, token)
}

func (r *UserRepository) getWhere(ctx context.Context, cond string, arg any) (*entity.User, error) {
	u := &entity.User{}

	row := r.pool.QueryRow(ctx, `
		SELECT username, name, password, COALESCE(token, ''), avatar_url, created_at, updated_at
		FROM users
		WHERE `+cond, arg)

	if err := row.Scan(&u.Username, &u.Name, &u.Password, &u.Token, &u.AvatarURL,
		&u.CreatedAt, &u.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return u, nil
}

func (r *UserRepository) Update(ctx context.Context, u *entity.User) error {
	u.UpdatedAt = time.Now()

	res, err := r.pool.Exec(ctx, `
		UPDATE users
		SET name = $1, password = $2, avatar_url = $3, updated_at = $4
		WHERE username = $5
	`, u.Name, u.Password, u.AvatarURL, u.UpdatedAt, u.Username)
	if err != nil {
		return err
	}

	if res.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *UserRepository) UpdateToken(ctx context.Context, username, token string) error {
	res, err := r.pool.Exec(ctx, `
		UPDATE users
		SET token = NULLIF($1, ''), updated_at = now()
		WHERE username = $2
	`, token, username)
	if err != nil {
		return err
	}

	if res.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

var _ repository.UserRepository = (*UserRepository)(nil)

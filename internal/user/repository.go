package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository defines methods for accessing user data from storage.
type Repository interface {
	GetByMatricula(ctx context.Context, matricula int) (*User, error)
}

type pgxUserRepository struct {
	pool *pgxpool.Pool
}

// NewPgxRepository creates a new Repository implementation using pgxpool.
func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxUserRepository{pool: pool}
}

func (r *pgxUserRepository) GetByMatricula(ctx context.Context, matricula int) (*User, error) {
	const query = `
		SELECT matricula, name, ramal, sector
		FROM public.users
		WHERE matricula = $1
	`

	var u User
	if err := r.pool.QueryRow(ctx, query, matricula).Scan(
		&u.Matricula,
		&u.Name,
		&u.Ramal,
		&u.Sector,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("GetByMatricula query failed: %w", err)
	}

	return &u, nil
}

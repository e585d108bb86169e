package room

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"
)

type Repository interface {
	GetByName(ctx context.Context, name string) (*Room, error)
	ListAvailable(ctx context.Context) ([]*Room, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
	log  logrus.FieldLogger
}

func NewPgxRepository(pool *pgxpool.Pool, log logrus.FieldLogger) Repository {
	return &pgxRepository{pool: pool, log: log}
}

const resourcesColumn = `COALESCE(
	(
		SELECT json_agg(json_build_object('id', rr.id, 'name', rr.name, 'quantity', rr.quantity) ORDER BY rr.name)
		FROM public.room_resources rr
		WHERE rr.room_id = r.id
	),
	'[]'::json
) AS resources`

func (r *pgxRepository) selectRooms() squirrel.SelectBuilder {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	return psql.Select("r.id", "r.name", "r.capacity", "r.is_available", "r.created_at", resourcesColumn).
		From("public.rooms r")
}

func (r *pgxRepository) GetByName(ctx context.Context, name string) (*Room, error) {
	query, args, err := r.selectRooms().
		Where(squirrel.Eq{"r.name": name}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get room query failed: %w", err)
	}

	rm, err := r.scan(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get room failed: %w", err)
	}
	return rm, nil
}

func (r *pgxRepository) ListAvailable(ctx context.Context) ([]*Room, error) {
	query, args, err := r.selectRooms().
		Where(squirrel.Eq{"r.is_available": true}).
		OrderBy("r.name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list rooms query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list rooms failed: %w", err)
	}
	defer rows.Close()

	var rooms []*Room
	for rows.Next() {
		rm, err := r.scan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan room failed: %w", err)
		}
		rooms = append(rooms, rm)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list rooms failed: %w", err)
	}
	return rooms, nil
}

func (r *pgxRepository) scan(row pgx.Row) (*Room, error) {
	var rm Room
	var resourcesJSON []byte
	if err := row.Scan(&rm.ID, &rm.Name, &rm.Capacity, &rm.IsAvailable, &rm.CreatedAt, &resourcesJSON); err != nil {
		return nil, err
	}

	if len(resourcesJSON) > 0 {
		if err := json.Unmarshal(resourcesJSON, &rm.Resources); err != nil {
			// Resources are display only; a bad row should not hide the room.
			r.log.WithError(err).WithField("room_id", rm.ID).Warn("failed to unmarshal room resources")
		}
	}
	return &rm, nil
}

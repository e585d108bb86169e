package reservation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	// CreateIfFree inserts r unless it overlaps an active reservation of the same room.
	// The check and the insert are atomic per room. When conflicts exist nothing is
	// written and the conflicting reservations are returned, ordered by start time.
	CreateIfFree(ctx context.Context, r *Reservation) ([]*Reservation, error)

	// FindOverlapping returns the active reservations of roomID intersecting [start, end).
	FindOverlapping(ctx context.Context, roomID string, start, end time.Time) ([]*Reservation, error)

	GetByID(ctx context.Context, id string) (*Reservation, error)
	List(ctx context.Context, filter Filter) ([]*Reservation, error)

	// Cancel moves an active reservation to CANCELLED.
	Cancel(ctx context.Context, id string) (*Reservation, error)

	// CompleteExpired moves every active reservation that ended before now to
	// COMPLETED and returns the rows it transitioned.
	CompleteExpired(ctx context.Context, now time.Time) ([]*Reservation, error)

	// MarkCompleted moves a single reservation to COMPLETED if it is still active.
	// It reports whether this call performed the transition.
	MarkCompleted(ctx context.Context, id string) (bool, error)
}

// querier is satisfied by both *pgxpool.Pool and pgx.Tx.
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

var selectColumns = []string{
	"res.id", "res.user_id", "u.name", "res.room_id", "r.name",
	"res.start_time", "res.end_time", "res.status", "res.created_at", "res.updated_at",
}

func selectReservations() squirrel.SelectBuilder {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	return psql.Select(selectColumns...).
		From("public.reservations res").
		Join("public.users u ON res.user_id = u.matricula").
		Join("public.rooms r ON res.room_id = r.id")
}

func scanReservation(row pgx.Row) (*Reservation, error) {
	var b Reservation
	if err := row.Scan(
		&b.ID, &b.UserID, &b.UserName, &b.RoomID, &b.RoomName,
		&b.StartTime, &b.EndTime, &b.Status, &b.CreatedAt, &b.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &b, nil
}

func queryReservations(ctx context.Context, q querier, builder squirrel.SelectBuilder) ([]*Reservation, error) {
	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build reservations query failed: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query reservations failed: %w", err)
	}
	defer rows.Close()

	var out []*Reservation
	for rows.Next() {
		b, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("scan reservation failed: %w", err)
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query reservations failed: %w", err)
	}
	return out, nil
}

func overlapQuery(roomID string, start, end time.Time) squirrel.SelectBuilder {
	// Half-open intervals: existing.start < new.end AND existing.end > new.start
	return selectReservations().
		Where(squirrel.Eq{"res.room_id": roomID}).
		Where(squirrel.Eq{"res.status": StatusActive}).
		Where(squirrel.Lt{"res.start_time": end}).
		Where(squirrel.Gt{"res.end_time": start}).
		OrderBy("res.start_time ASC")
}

func (r *pgxRepository) FindOverlapping(ctx context.Context, roomID string, start, end time.Time) ([]*Reservation, error) {
	return queryReservations(ctx, r.pool, overlapQuery(roomID, start, end))
}

func (r *pgxRepository) CreateIfFree(ctx context.Context, b *Reservation) ([]*Reservation, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, fmt.Errorf("begin create reservation tx failed: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	// Serialize creations per room: concurrent requests for the same room queue on
	// this row lock, so the overlap check below sees every committed insert.
	// NO KEY UPDATE does not conflict with the key share taken by foreign key checks.
	var lockedID string
	err = tx.QueryRow(ctx, `SELECT id FROM public.rooms WHERE id = $1 FOR NO KEY UPDATE`, b.RoomID).Scan(&lockedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrRoomUnavailable
		}
		return nil, fmt.Errorf("lock room failed: %w", err)
	}

	conflicts, err := queryReservations(ctx, tx, overlapQuery(b.RoomID, b.StartTime, b.EndTime))
	if err != nil {
		return nil, err
	}
	if len(conflicts) > 0 {
		return conflicts, nil
	}

	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.reservations").
		Columns("user_id", "room_id", "start_time", "end_time", "status").
		Values(b.UserID, b.RoomID, b.StartTime, b.EndTime, StatusActive).
		Suffix("RETURNING id, status, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create reservation query failed: %w", err)
	}

	if err := tx.QueryRow(ctx, query, args...).Scan(&b.ID, &b.Status, &b.CreatedAt, &b.UpdatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case pgerrcode.ExclusionViolation:
				return nil, ErrTimeConflict.WithCause(pgErr)
			case pgerrcode.ForeignKeyViolation:
				return nil, ErrUserNotFound.WithCause(pgErr)
			case pgerrcode.CheckViolation:
				return nil, ErrInvalidTimeRange.WithCause(pgErr)
			}
		}
		return nil, fmt.Errorf("create reservation failed: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ExclusionViolation {
			return nil, ErrTimeConflict.WithCause(pgErr)
		}
		return nil, fmt.Errorf("commit create reservation failed: %w", err)
	}
	return nil, nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Reservation, error) {
	query, args, err := selectReservations().
		Where(squirrel.Eq{"res.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get reservation query failed: %w", err)
	}

	b, err := scanReservation(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get reservation failed: %w", err)
	}
	return b, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Reservation, error) {
	query := selectReservations()

	if filter.UserID != nil {
		query = query.Where(squirrel.Eq{"res.user_id": *filter.UserID})
	}
	if filter.RoomID != "" {
		query = query.Where(squirrel.Eq{"res.room_id": filter.RoomID})
	}
	if filter.Status != "" {
		query = query.Where(squirrel.Eq{"res.status": filter.Status})
	}
	if filter.StartFrom != nil {
		query = query.Where(squirrel.GtOrEq{"res.start_time": *filter.StartFrom})
	}
	if filter.StartBefore != nil {
		query = query.Where(squirrel.Lt{"res.start_time": *filter.StartBefore})
	}
	if filter.EndFrom != nil {
		query = query.Where(squirrel.GtOrEq{"res.end_time": *filter.EndFrom})
	}
	if filter.EndUntil != nil {
		query = query.Where(squirrel.LtOrEq{"res.end_time": *filter.EndUntil})
	}

	return queryReservations(ctx, r.pool, query.OrderBy("res.start_time ASC", "res.id ASC"))
}

func (r *pgxRepository) Cancel(ctx context.Context, id string) (*Reservation, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.reservations").
		Set("status", StatusCancelled).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"status": StatusActive}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build cancel reservation query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("cancel reservation failed: %w", err)
	}

	b, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if ct.RowsAffected() == 0 {
		return nil, ErrNotActive
	}
	return b, nil
}

const completeExpiredQuery = `
	UPDATE public.reservations res
	SET status = 'COMPLETED', updated_at = now()
	FROM public.users u, public.rooms r
	WHERE res.user_id = u.matricula
		AND res.room_id = r.id
		AND res.status = 'ACTIVE'
		AND res.end_time < $1
	RETURNING res.id, res.user_id, u.name, res.room_id, r.name,
		res.start_time, res.end_time, res.status, res.created_at, res.updated_at
`

func (r *pgxRepository) CompleteExpired(ctx context.Context, now time.Time) ([]*Reservation, error) {
	rows, err := r.pool.Query(ctx, completeExpiredQuery, now)
	if err != nil {
		return nil, fmt.Errorf("complete expired reservations failed: %w", err)
	}
	defer rows.Close()

	var out []*Reservation
	for rows.Next() {
		b, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("scan completed reservation failed: %w", err)
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("complete expired reservations failed: %w", err)
	}
	return out, nil
}

func (r *pgxRepository) MarkCompleted(ctx context.Context, id string) (bool, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.reservations").
		Set("status", StatusCompleted).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"status": StatusActive}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build complete reservation query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("complete reservation failed: %w", err)
	}
	return ct.RowsAffected() == 1, nil
}

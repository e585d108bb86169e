package notification

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
	Create(ctx context.Context, n *Notification) error

	// CreateOnce inserts n unless a notification of the same type already exists for
	// n.ReservationID. It reports whether a row was written.
	CreateOnce(ctx context.Context, n *Notification) (bool, error)

	Exists(ctx context.Context, reservationID string, t Type) (bool, error)
	ListByUser(ctx context.Context, userID int) ([]*Notification, error)
	MarkAllRead(ctx context.Context, userID int) (int64, error)
	Delete(ctx context.Context, id string) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

// onceConflictTarget matches the partial unique index notifications_once_per_reservation.
const onceConflictTarget = `ON CONFLICT (reservation_id, type)
	WHERE type IN ('RESERVATION_REMINDER_3_DAYS', 'RESERVATION_REMINDER_1_DAY', 'RESERVATION_COMPLETED')
	DO NOTHING`

func (r *pgxRepository) insert(n *Notification, suffix string) (string, []any, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	return psql.Insert("public.notifications").
		Columns("user_id", "reservation_id", "title", "message", "type").
		Values(n.UserID, n.ReservationID, n.Title, n.Message, n.Type).
		Suffix(suffix + " RETURNING id, is_read, created_at").
		ToSql()
}

func (r *pgxRepository) Create(ctx context.Context, n *Notification) error {
	query, args, err := r.insert(n, "")
	if err != nil {
		return fmt.Errorf("build create notification query failed: %w", err)
	}

	if err := r.pool.QueryRow(ctx, query, args...).Scan(&n.ID, &n.IsRead, &n.CreatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case pgerrcode.UniqueViolation:
				return ErrAlreadyExists.WithCause(pgErr)
			case pgerrcode.ForeignKeyViolation:
				return ErrUnknownReference.WithCause(pgErr)
			}
		}
		return fmt.Errorf("create notification failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) CreateOnce(ctx context.Context, n *Notification) (bool, error) {
	query, args, err := r.insert(n, onceConflictTarget)
	if err != nil {
		return false, fmt.Errorf("build create notification query failed: %w", err)
	}

	if err := r.pool.QueryRow(ctx, query, args...).Scan(&n.ID, &n.IsRead, &n.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
			return false, ErrUnknownReference.WithCause(pgErr)
		}
		return false, fmt.Errorf("create notification failed: %w", err)
	}
	return true, nil
}

func (r *pgxRepository) Exists(ctx context.Context, reservationID string, t Type) (bool, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	sub, args, err := psql.Select("1").
		From("public.notifications").
		Where(squirrel.Eq{"reservation_id": reservationID}).
		Where(squirrel.Eq{"type": t}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build notification exists query failed: %w", err)
	}

	var exists bool
	if err := r.pool.QueryRow(ctx, "SELECT EXISTS ("+sub+")", args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("check notification exists failed: %w", err)
	}
	return exists, nil
}

func (r *pgxRepository) ListByUser(ctx context.Context, userID int) ([]*Notification, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(
		"n.id", "n.user_id", "n.reservation_id", "n.title", "n.message", "n.type", "n.is_read", "n.created_at",
		"r.name", "res.start_time", "res.end_time", "res.status",
	).
		From("public.notifications n").
		LeftJoin("public.reservations res ON n.reservation_id = res.id").
		LeftJoin("public.rooms r ON res.room_id = r.id").
		Where(squirrel.Eq{"n.user_id": userID}).
		OrderBy("n.created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list notifications query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list notifications failed: %w", err)
	}
	defer rows.Close()

	var out []*Notification
	for rows.Next() {
		var (
			n         Notification
			roomName  *string
			startTime *time.Time
			endTime   *time.Time
			status    *string
		)
		if err := rows.Scan(
			&n.ID, &n.UserID, &n.ReservationID, &n.Title, &n.Message, &n.Type, &n.IsRead, &n.CreatedAt,
			&roomName, &startTime, &endTime, &status,
		); err != nil {
			return nil, fmt.Errorf("scan notification failed: %w", err)
		}
		if n.ReservationID != nil && startTime != nil && endTime != nil {
			info := &ReservationInfo{ID: *n.ReservationID, StartTime: *startTime, EndTime: *endTime}
			if roomName != nil {
				info.RoomName = *roomName
			}
			if status != nil {
				info.Status = *status
			}
			n.Reservation = info
		}
		out = append(out, &n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list notifications failed: %w", err)
	}
	return out, nil
}

func (r *pgxRepository) MarkAllRead(ctx context.Context, userID int) (int64, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.notifications").
		Set("is_read", true).
		Where(squirrel.Eq{"user_id": userID}).
		Where(squirrel.Eq{"is_read": false}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build mark notifications read query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("mark notifications read failed: %w", err)
	}
	return ct.RowsAffected(), nil
}

func (r *pgxRepository) Delete(ctx context.Context, id string) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Delete("public.notifications").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete notification query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete notification failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

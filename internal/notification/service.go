package notification

import (
	"context"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/salareserva/room-reservation-backend/internal/reservation"
	"github.com/salareserva/room-reservation-backend/internal/user"
)

type CreateRequest struct {
	UserID        int
	ReservationID *string
	Title         string
	Message       string
	Type          Type
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Notification, error)
	ListByUser(ctx context.Context, userID int) ([]*Notification, error)
	MarkAllRead(ctx context.Context, userID int) (int64, error)
	Delete(ctx context.Context, id string) error

	// ReservationCreated and ReservationCancelled implement reservation.Notifier.
	ReservationCreated(ctx context.Context, r *reservation.Reservation) error
	ReservationCancelled(ctx context.Context, r *reservation.Reservation) error

	// Exists reports whether r already has a notification of type t.
	Exists(ctx context.Context, reservationID string, t Type) (bool, error)
	// EmitOnce writes the templated notification of type t for r unless one exists.
	EmitOnce(ctx context.Context, t Type, r *reservation.Reservation) (bool, error)
}

type service struct {
	repo Repository
	loc  *time.Location
	log  logrus.FieldLogger
}

func NewService(repo Repository, loc *time.Location, log logrus.FieldLogger) Service {
	if loc == nil {
		loc = time.Local
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &service{repo: repo, loc: loc, log: log.WithField("component", "notification")}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Notification, error) {
	if req.UserID <= 0 || strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Message) == "" || req.Type == "" {
		return nil, ErrInvalidInput
	}
	if !user.ValidMatricula(req.UserID) {
		return nil, user.ErrInvalidMatricula
	}
	if !req.Type.Valid() {
		return nil, ErrInvalidType
	}
	if req.ReservationID != nil && *req.ReservationID == "" {
		req.ReservationID = nil
	}

	n := &Notification{
		UserID:        req.UserID,
		ReservationID: req.ReservationID,
		Title:         req.Title,
		Message:       req.Message,
		Type:          req.Type,
	}

	if req.Type.OncePerReservation() && n.ReservationID != nil {
		created, err := s.repo.CreateOnce(ctx, n)
		if err != nil {
			return nil, err
		}
		if !created {
			return nil, ErrAlreadyExists
		}
		return n, nil
	}

	if err := s.repo.Create(ctx, n); err != nil {
		return nil, err
	}
	return n, nil
}

func (s *service) ListByUser(ctx context.Context, userID int) ([]*Notification, error) {
	if userID <= 0 {
		return nil, ErrMatriculaRequired
	}
	if !user.ValidMatricula(userID) {
		return nil, user.ErrInvalidMatricula
	}
	return s.repo.ListByUser(ctx, userID)
}

func (s *service) MarkAllRead(ctx context.Context, userID int) (int64, error) {
	if userID <= 0 {
		return 0, ErrMatriculaRequired
	}
	if !user.ValidMatricula(userID) {
		return 0, user.ErrInvalidMatricula
	}
	return s.repo.MarkAllRead(ctx, userID)
}

func (s *service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *service) ReservationCreated(ctx context.Context, r *reservation.Reservation) error {
	return s.emit(ctx, TypeReservationCreated, r)
}

func (s *service) ReservationCancelled(ctx context.Context, r *reservation.Reservation) error {
	return s.emit(ctx, TypeReservationCancelled, r)
}

func (s *service) emit(ctx context.Context, t Type, r *reservation.Reservation) error {
	n := s.build(t, r)
	if err := s.repo.Create(ctx, n); err != nil {
		return err
	}
	s.log.WithFields(logrus.Fields{"reservation_id": r.ID, "type": t, "matricula": r.UserID}).Debug("notification created")
	return nil
}

func (s *service) Exists(ctx context.Context, reservationID string, t Type) (bool, error) {
	return s.repo.Exists(ctx, reservationID, t)
}

func (s *service) EmitOnce(ctx context.Context, t Type, r *reservation.Reservation) (bool, error) {
	n := s.build(t, r)
	created, err := s.repo.CreateOnce(ctx, n)
	if err != nil {
		return false, err
	}
	if created {
		s.log.WithFields(logrus.Fields{"reservation_id": r.ID, "type": t, "matricula": r.UserID}).Debug("notification created")
	}
	return created, nil
}

func (s *service) build(t Type, r *reservation.Reservation) *Notification {
	title, message := Compose(t, r, s.loc)
	id := r.ID
	return &Notification{
		UserID:        r.UserID,
		ReservationID: &id,
		Title:         title,
		Message:       message,
		Type:          t,
	}
}

package reservation

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/salareserva/room-reservation-backend/internal/pkg/clock"
	"github.com/salareserva/room-reservation-backend/internal/room"
	"github.com/salareserva/room-reservation-backend/internal/user"
)

type CheckRequest struct {
	RoomName  string
	Date      string
	StartTime string
	EndTime   string
}

type CreateRequest struct {
	Matricula int
	RoomName  string
	Date      string
	StartTime string
	EndTime   string
}

// Conflict is an existing reservation blocking a requested slot.
type Conflict struct {
	ReservationID string    `json:"reservationId"`
	Date          string    `json:"date"`
	StartTime     string    `json:"startTime"`
	EndTime       string    `json:"endTime"`
	UserName      string    `json:"userName"`
	StartsAt      time.Time `json:"startsAt"`
	EndsAt        time.Time `json:"endsAt"`
}

// ConflictDetails is attached to ErrTimeConflict so the client can tell the user
// which reservation is in the way.
type ConflictDetails struct {
	Summary  string   `json:"summary"`
	Conflict Conflict `json:"conflict"`
}

type Availability struct {
	Available bool
	Conflicts []Conflict
	Message   string
}

// Notifier is told about reservation lifecycle events driven by user actions.
type Notifier interface {
	ReservationCreated(ctx context.Context, r *Reservation) error
	ReservationCancelled(ctx context.Context, r *Reservation) error
}

// UserFinder and RoomFinder are the collaborator lookups the engine needs.
type UserFinder interface {
	GetByMatricula(ctx context.Context, matricula int) (*user.User, error)
}

type RoomFinder interface {
	GetAvailableByName(ctx context.Context, name string) (*room.Room, error)
	GetByName(ctx context.Context, name string) (*room.Room, error)
}

type Service interface {
	CheckAvailability(ctx context.Context, req CheckRequest) (*Availability, error)
	Create(ctx context.Context, req CreateRequest) (*Reservation, error)
	GetByID(ctx context.Context, id string) (*Reservation, error)
	ListActive(ctx context.Context, userID *int) ([]*Reservation, error)
	ListActiveByRoom(ctx context.Context, roomName string) ([]*Reservation, error)
	Cancel(ctx context.Context, id string) (*Reservation, error)
}

type service struct {
	repo     Repository
	users    UserFinder
	rooms    RoomFinder
	notifier Notifier
	clock    clock.Clock
	loc      *time.Location
	log      logrus.FieldLogger
}

type Deps struct {
	Repo     Repository
	Users    UserFinder
	Rooms    RoomFinder
	Notifier Notifier
	Clock    clock.Clock
	Location *time.Location
	Logger   logrus.FieldLogger
}

func NewService(d Deps) Service {
	if d.Clock == nil {
		d.Clock = clock.System()
	}
	if d.Location == nil {
		d.Location = time.Local
	}
	if d.Logger == nil {
		d.Logger = logrus.StandardLogger()
	}
	return &service{
		repo:     d.Repo,
		users:    d.Users,
		rooms:    d.Rooms,
		notifier: d.Notifier,
		clock:    d.Clock,
		loc:      d.Location,
		log:      d.Logger.WithField("component", "reservation"),
	}
}

func (s *service) CheckAvailability(ctx context.Context, req CheckRequest) (*Availability, error) {
	if blank(req.RoomName, req.Date, req.StartTime, req.EndTime) {
		return nil, ErrInvalidInput.WithDetails("required parameters: room, date, startTime, endTime")
	}

	slot, err := ParseSlot(req.Date, req.StartTime, req.EndTime, s.loc)
	if err != nil {
		return nil, err
	}

	rm, err := s.rooms.GetAvailableByName(ctx, req.RoomName)
	if err != nil {
		if errors.Is(err, room.ErrUnavailable) || errors.Is(err, room.ErrNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}

	existing, err := s.repo.FindOverlapping(ctx, rm.ID, slot.Start, slot.End)
	if err != nil {
		return nil, err
	}

	if len(existing) == 0 {
		return &Availability{Available: true, Conflicts: []Conflict{}, Message: "Time slot available"}, nil
	}

	conflicts := make([]Conflict, len(existing))
	for i, r := range existing {
		conflicts[i] = s.toConflict(r)
	}
	return &Availability{
		Available: false,
		Conflicts: conflicts,
		Message:   fmt.Sprintf("Time slot not available. %d conflict(s) found.", len(conflicts)),
	}, nil
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Reservation, error) {
	// 1. Validate input
	if req.Matricula <= 0 {
		return nil, ErrInvalidInput.WithDetails("matricula is required")
	}
	if !user.ValidMatricula(req.Matricula) {
		return nil, ErrInvalidInput.WithDetails(user.ErrInvalidMatricula.Message)
	}
	if blank(req.RoomName, req.Date, req.StartTime, req.EndTime) {
		return nil, ErrInvalidInput.WithDetails("required fields: local, data, horaInicio, horaFim")
	}

	slot, err := ParseSlot(req.Date, req.StartTime, req.EndTime, s.loc)
	if err != nil {
		return nil, err
	}

	today := clock.StartOfDay(s.clock.Now(), s.loc)
	if slot.Date.Before(today) {
		return nil, ErrDateInPast
	}

	// 2. Resolve collaborators
	u, err := s.users.GetByMatricula(ctx, req.Matricula)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	rm, err := s.rooms.GetAvailableByName(ctx, req.RoomName)
	if err != nil {
		if errors.Is(err, room.ErrUnavailable) || errors.Is(err, room.ErrNotFound) {
			return nil, ErrRoomUnavailable
		}
		return nil, err
	}

	// 3. Check and insert atomically
	b := &Reservation{
		UserID:    u.Matricula,
		UserName:  u.Name,
		RoomID:    rm.ID,
		RoomName:  rm.Name,
		StartTime: slot.Start,
		EndTime:   slot.End,
		Status:    StatusActive,
	}

	conflicts, err := s.repo.CreateIfFree(ctx, b)
	if err != nil {
		if errors.Is(err, ErrTimeConflict) {
			// Lost a race against a concurrent insert; the constraint caught it.
			conflicts, err = s.repo.FindOverlapping(ctx, rm.ID, slot.Start, slot.End)
			if err != nil || len(conflicts) == 0 {
				return nil, ErrTimeConflict
			}
		} else {
			return nil, err
		}
	}
	if len(conflicts) > 0 {
		return nil, ErrTimeConflict.WithDetails(s.conflictDetails(conflicts[0]))
	}

	s.log.WithFields(logrus.Fields{
		"reservation_id": b.ID,
		"room":           b.RoomName,
		"matricula":      b.UserID,
		"start":          b.StartTime,
		"end":            b.EndTime,
	}).Info("reservation created")

	// 4. Notify (best effort)
	if s.notifier != nil {
		if err := s.notifier.ReservationCreated(ctx, b); err != nil {
			s.log.WithError(err).WithField("reservation_id", b.ID).Warn("failed to create reservation notification")
		}
	}

	return b, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Reservation, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) ListActive(ctx context.Context, userID *int) ([]*Reservation, error) {
	if userID != nil && !user.ValidMatricula(*userID) {
		return nil, ErrInvalidInput.WithDetails(user.ErrInvalidMatricula.Message)
	}
	return s.repo.List(ctx, Filter{UserID: userID, Status: StatusActive})
}

func (s *service) ListActiveByRoom(ctx context.Context, roomName string) ([]*Reservation, error) {
	if strings.TrimSpace(roomName) == "" {
		return nil, ErrInvalidInput.WithDetails("room is required")
	}

	rm, err := s.rooms.GetByName(ctx, roomName)
	if err != nil {
		if errors.Is(err, room.ErrNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	return s.repo.List(ctx, Filter{RoomID: rm.ID, Status: StatusActive})
}

func (s *service) Cancel(ctx context.Context, id string) (*Reservation, error) {
	b, err := s.repo.Cancel(ctx, id)
	if err != nil {
		return nil, err
	}

	s.log.WithField("reservation_id", b.ID).Info("reservation cancelled")

	if s.notifier != nil {
		if err := s.notifier.ReservationCancelled(ctx, b); err != nil {
			s.log.WithError(err).WithField("reservation_id", b.ID).Warn("failed to create cancellation notification")
		}
	}
	return b, nil
}

func (s *service) toConflict(r *Reservation) Conflict {
	return Conflict{
		ReservationID: r.ID,
		Date:          FormatDate(r.StartTime, s.loc),
		StartTime:     FormatTime(r.StartTime, s.loc),
		EndTime:       FormatTime(r.EndTime, s.loc),
		UserName:      r.UserName,
		StartsAt:      r.StartTime,
		EndsAt:        r.EndTime,
	}
}

func (s *service) conflictDetails(r *Reservation) ConflictDetails {
	c := s.toConflict(r)
	return ConflictDetails{
		Summary:  fmt.Sprintf("Existing reservation: %s %s-%s - %s", c.Date, c.StartTime, c.EndTime, c.UserName),
		Conflict: c,
	}
}

func blank(values ...string) bool {
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			return true
		}
	}
	return false
}

package lifecycle

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/salareserva/room-reservation-backend/internal/notification"
	"github.com/salareserva/room-reservation-backend/internal/pkg/clock"
	"github.com/salareserva/room-reservation-backend/internal/reservation"
)

// CompletionWindow is how far back EmitCompletions looks for reservations that just ended.
// Triggers are expected to run at least this often.
const CompletionWindow = 5 * time.Minute

// Reminder pairs a lead time in days with the notification type it produces.
type Reminder struct {
	Days int
	Type notification.Type
}

var Reminders = []Reminder{
	{Days: 3, Type: notification.TypeReminder3Days},
	{Days: 1, Type: notification.TypeReminder1Day},
}

// Notifications is the part of the notification service the sweeper drives.
type Notifications interface {
	Exists(ctx context.Context, reservationID string, t notification.Type) (bool, error)
	EmitOnce(ctx context.Context, t notification.Type, r *reservation.Reservation) (bool, error)
}

type ProcessedReservation struct {
	ID       string    `json:"id"`
	UserName string    `json:"userName"`
	RoomName string    `json:"roomName"`
	EndTime  time.Time `json:"endTime"`
}

type SweepResult struct {
	ProcessedCount        int                    `json:"processedCount"`
	ProcessedReservations []ProcessedReservation `json:"processedReservations"`
}

// Report counts the outcome of one notification pass.
type Report struct {
	Kind       string `json:"kind"`
	Candidates int    `json:"candidates"`
	Created    int    `json:"created"`
	Skipped    int    `json:"skipped"`
	Failed     int    `json:"failed"`
}

type RunResult struct {
	Reminders   []Report     `json:"reminders"`
	Completions *Report      `json:"completions"`
	Sweep       *SweepResult `json:"sweep"`
}

type Sweeper struct {
	reservations  reservation.Repository
	notifications Notifications
	clock         clock.Clock
	loc           *time.Location
	log           logrus.FieldLogger
}

func NewSweeper(
	reservations reservation.Repository,
	notifications Notifications,
	clk clock.Clock,
	loc *time.Location,
	log logrus.FieldLogger,
) *Sweeper {
	if clk == nil {
		clk = clock.System()
	}
	if loc == nil {
		loc = time.Local
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Sweeper{
		reservations:  reservations,
		notifications: notifications,
		clock:         clk,
		loc:           loc,
		log:           log.WithField("component", "lifecycle"),
	}
}

// SweepExpired completes every active reservation whose end time has passed.
// Running it again without time passing processes nothing.
func (s *Sweeper) SweepExpired(ctx context.Context) (*SweepResult, error) {
	now := s.clock.Now()

	completed, err := s.reservations.CompleteExpired(ctx, now)
	if err != nil {
		return nil, fmt.Errorf("sweep expired reservations: %w", err)
	}

	result := &SweepResult{
		ProcessedCount:        len(completed),
		ProcessedReservations: make([]ProcessedReservation, len(completed)),
	}
	for i, r := range completed {
		result.ProcessedReservations[i] = ProcessedReservation{
			ID:       r.ID,
			UserName: r.UserName,
			RoomName: r.RoomName,
			EndTime:  r.EndTime,
		}
	}

	if len(completed) > 0 {
		s.log.WithField("count", len(completed)).Info("expired reservations completed")
	}
	return result, nil
}

// EmitReminders writes at most one reminder of each lead time per reservation
// starting on the target calendar day.
func (s *Sweeper) EmitReminders(ctx context.Context) ([]Report, error) {
	today := clock.StartOfDay(s.clock.Now(), s.loc)

	reports := make([]Report, 0, len(Reminders))
	for _, rem := range Reminders {
		dayStart := today.AddDate(0, 0, rem.Days)
		dayEnd := dayStart.AddDate(0, 0, 1)

		candidates, err := s.reservations.List(ctx, reservation.Filter{
			Status:      reservation.StatusActive,
			StartFrom:   &dayStart,
			StartBefore: &dayEnd,
		})
		if err != nil {
			return reports, fmt.Errorf("list reservations for %s: %w", rem.Type, err)
		}

		report := Report{Kind: string(rem.Type), Candidates: len(candidates)}
		for _, r := range candidates {
			s.emit(ctx, rem.Type, r, &report)
		}
		s.logReport(report)
		reports = append(reports, report)
	}
	return reports, nil
}

// EmitCompletions completes the reservations that ended within CompletionWindow
// and notifies their owners once.
func (s *Sweeper) EmitCompletions(ctx context.Context) (*Report, error) {
	now := s.clock.Now()
	from := now.Add(-CompletionWindow)

	candidates, err := s.reservations.List(ctx, reservation.Filter{
		Status:   reservation.StatusActive,
		EndFrom:  &from,
		EndUntil: &now,
	})
	if err != nil {
		return nil, fmt.Errorf("list recently ended reservations: %w", err)
	}

	report := &Report{Kind: string(notification.TypeReservationCompleted), Candidates: len(candidates)}
	for _, r := range candidates {
		entry := s.log.WithField("reservation_id", r.ID)

		exists, err := s.notifications.Exists(ctx, r.ID, notification.TypeReservationCompleted)
		if err != nil {
			entry.WithError(err).Error("check completion notification failed")
			report.Failed++
			continue
		}
		if exists {
			report.Skipped++
			continue
		}

		transitioned, err := s.reservations.MarkCompleted(ctx, r.ID)
		if err != nil {
			entry.WithError(err).Error("complete reservation failed")
			report.Failed++
			continue
		}
		if !transitioned {
			entry.Debug("reservation already completed by another run")
		}
		r.Status = reservation.StatusCompleted

		s.emit(ctx, notification.TypeReservationCompleted, r, report)
	}
	s.logReport(*report)
	return report, nil
}

// RunAll runs reminders, completions and the expiry sweep in that order.
// Completions must run before the sweep or recently ended reservations would be
// completed without a notification.
func (s *Sweeper) RunAll(ctx context.Context) (*RunResult, error) {
	var result RunResult

	reminders, err := s.EmitReminders(ctx)
	result.Reminders = reminders
	if err != nil {
		return &result, err
	}

	if result.Completions, err = s.EmitCompletions(ctx); err != nil {
		return &result, err
	}

	if result.Sweep, err = s.SweepExpired(ctx); err != nil {
		return &result, err
	}
	return &result, nil
}

func (s *Sweeper) emit(ctx context.Context, t notification.Type, r *reservation.Reservation, report *Report) {
	entry := s.log.WithFields(logrus.Fields{"reservation_id": r.ID, "type": t})

	exists, err := s.notifications.Exists(ctx, r.ID, t)
	if err != nil {
		entry.WithError(err).Error("check notification failed")
		report.Failed++
		return
	}
	if exists {
		report.Skipped++
		return
	}

	created, err := s.notifications.EmitOnce(ctx, t, r)
	if err != nil {
		entry.WithError(err).Error("create notification failed")
		report.Failed++
		return
	}
	if created {
		report.Created++
	} else {
		report.Skipped++
	}
}

func (s *Sweeper) logReport(r Report) {
	if r.Candidates == 0 {
		return
	}
	s.log.WithFields(logrus.Fields{
		"kind":       r.Kind,
		"candidates": r.Candidates,
		"created":    r.Created,
		"skipped":    r.Skipped,
		"failed":     r.Failed,
	}).Info("notification pass finished")
}

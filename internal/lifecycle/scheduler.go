package lifecycle

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// Scheduler triggers Sweeper.RunAll on a cron schedule.
type Scheduler struct {
	cronEngine *cron.Cron
	sweeper    *Sweeper
	spec       string
	timeout    time.Duration
	log        logrus.FieldLogger
}

func NewScheduler(sweeper *Sweeper, spec string, timeout time.Duration, loc *time.Location, log logrus.FieldLogger) *Scheduler {
	if loc == nil {
		loc = time.Local
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Scheduler{
		cronEngine: cron.New(cron.WithLocation(loc)),
		sweeper:    sweeper,
		spec:       spec,
		timeout:    timeout,
		log:        log.WithField("component", "scheduler"),
	}
}

// Start registers the sweep job and starts the cron engine. It fails on an invalid spec.
func (s *Scheduler) Start() error {
	if _, err := s.cronEngine.AddFunc(s.spec, s.tick); err != nil {
		return fmt.Errorf("add sweep job %q: %w", s.spec, err)
	}
	s.cronEngine.Start()
	s.log.WithField("spec", s.spec).Info("lifecycle scheduler started")
	return nil
}

// Stop stops scheduling and waits for a running tick to finish or ctx to expire.
func (s *Scheduler) Stop(ctx context.Context) {
	done := s.cronEngine.Stop()
	select {
	case <-done.Done():
		s.log.Info("lifecycle scheduler stopped")
	case <-ctx.Done():
		s.log.Warn("lifecycle scheduler stop timed out")
	}
}

func (s *Scheduler) tick() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	started := time.Now()
	if _, err := s.sweeper.RunAll(ctx); err != nil {
		s.log.WithError(err).Error("lifecycle run failed")
		return
	}
	s.log.WithField("duration", time.Since(started)).Debug("lifecycle run finished")
}

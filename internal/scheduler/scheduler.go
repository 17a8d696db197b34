// Package scheduler periodically pays due bill payments.
package scheduler

//go:generate mockgen -source scheduler.go -destination scheduler_mock.go -package scheduler

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/go-petr/mcba-ledger/internal/domain"
)

// DefaultInterval is the poll interval used when none is configured.
const DefaultInterval = 10 * time.Second

// Processor pays the bill payments that are due at now.
type Processor interface {
	ProcessDueBillPays(ctx context.Context, now time.Time) (domain.BillPayCounts, error)
}

// Scheduler runs one processing cycle per interval.
type Scheduler struct {
	processor Processor
	interval  time.Duration
	now       func() time.Time
}

// Option configures a Scheduler.
type Option func(*Scheduler)

// WithInterval sets the poll interval. Non positive values are ignored.
func WithInterval(d time.Duration) Option {
	return func(s *Scheduler) {
		if d > 0 {
			s.interval = d
		}
	}
}

// WithClock sets the source of the cycle time.
func WithClock(now func() time.Time) Option {
	return func(s *Scheduler) {
		s.now = now
	}
}

// New returns a Scheduler that drives processor.
func New(processor Processor, opts ...Option) *Scheduler {
	s := &Scheduler{
		processor: processor,
		interval:  DefaultInterval,
		now:       func() time.Time { return time.Now().UTC() },
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Interval returns the poll interval.
func (s *Scheduler) Interval() time.Duration {
	return s.interval
}

// Run processes due bill payments immediately and then once per interval until
// ctx is done. A cycle in flight when ctx is done is finished first. Run returns
// nil on a clean stop.
func (s *Scheduler) Run(ctx context.Context) error {
	l := zerolog.Ctx(ctx)
	l.Info().Dur("interval", s.interval).Msg("bill payment scheduler started")

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		s.cycle(ctx)

		select {
		case <-ctx.Done():
			l.Info().Msg("bill payment scheduler stopped")
			return nil
		case <-ticker.C:
		}
	}
}

// cycle runs one cycle detached from the stop signal and bounded by the interval.
func (s *Scheduler) cycle(ctx context.Context) {
	cycleCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.interval)
	defer cancel()

	if _, err := s.RunOnce(cycleCtx); err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("bill payment cycle")
	}
}

// RunOnce runs a single processing cycle at the current time.
func (s *Scheduler) RunOnce(ctx context.Context) (domain.BillPayCounts, error) {
	now := s.now()

	counts, err := s.processor.ProcessDueBillPays(ctx, now)
	if err != nil {
		return counts, err
	}

	if counts.Total() > 0 {
		zerolog.Ctx(ctx).Info().
			Time("now", now).
			Int("succeeded", counts.Succeeded).
			Int("failed", counts.Failed).
			Int("skipped", counts.Skipped).
			Msg("bill payment cycle")
	}

	return counts, nil
}

package syncer

import (
	"context"
	"time"

	"github.com/goodnatureofminers/codechain-indexer/internal/clock"
	"github.com/goodnatureofminers/codechain-indexer/internal/model"
	"github.com/jpillora/backoff"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Service drives a Syncer on a fixed interval, backing off after failed cycles.
type Service struct {
	syncer   Syncer
	interval time.Duration
	backoff  *backoff.Backoff
	sleep    func(context.Context, time.Duration) error
	logger   *zap.Logger
}

// NewService builds a Service. A trigger value cuts the current wait short; it may be nil.
func NewService(
	syncer Syncer,
	interval time.Duration,
	maxBackoff time.Duration,
	trigger <-chan struct{},
	logger *zap.Logger,
) (*Service, error) {
	if syncer == nil {
		return nil, errors.New("syncer is required")
	}
	if interval <= 0 {
		interval = defaultInterval
	}
	if maxBackoff <= 0 {
		maxBackoff = defaultMaxBackoff
	}
	minBackoff := defaultMinBackoff
	if minBackoff > maxBackoff {
		minBackoff = maxBackoff
	}
	return &Service{
		syncer:   syncer,
		interval: interval,
		backoff: &backoff.Backoff{
			Min:    minBackoff,
			Max:    maxBackoff,
			Factor: 2,
			Jitter: true,
		},
		sleep: func(ctx context.Context, d time.Duration) error {
			return clock.WaitOrSignal(ctx, d, trigger)
		},
		logger: logger.Named("sync_service"),
	}, nil
}

// Run cycles until ctx is canceled.
func (s *Service) Run(ctx context.Context) error {
	s.logger.Info("sync service started", zap.Duration("interval", s.interval))
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		wait := s.interval
		if err := s.cycle(ctx); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			wait = s.backoff.Duration()
			s.logger.Warn("sync cycle failed, backing off", zap.Error(err), zap.Duration("sleep", wait))
		} else {
			s.backoff.Reset()
		}

		if err := s.sleep(ctx, wait); err != nil {
			return err
		}
	}
}

func (s *Service) cycle(ctx context.Context) error {
	if err := s.syncer.Sync(ctx); err != nil {
		if errors.Is(err, model.ErrSyncInProgress) {
			return nil
		}
		return err
	}
	if err := s.syncer.SyncPending(ctx); err != nil && !errors.Is(err, model.ErrSyncInProgress) {
		return errors.Wrap(err, "sync pending transactions")
	}
	return nil
}

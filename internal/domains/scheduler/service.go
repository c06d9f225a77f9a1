package scheduler

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"

	"github.com/rickicode/mikrotik-billing/internal/entities"
	"github.com/rickicode/mikrotik-billing/internal/errs"
	"github.com/rickicode/mikrotik-billing/internal/logger"
)

const (
	syncJobTimeout   = 5 * time.Minute
	healthJobTimeout = 30 * time.Second
)

type (
	ISyncService interface {
		SyncUserData(ctx context.Context) (report entities.SyncReport, err error)
	}

	IHealthChecker interface {
		HealthCheck(ctx context.Context) (status entities.HealthStatus, err error)
	}
)

// Service runs reconciliation and device health checks on cron schedules.
type Service struct {
	syncSchedule   string
	healthSchedule string

	sync   ISyncService
	health IHealthChecker
	cron   *cron.Cron
}

func NewService(syncSchedule, healthSchedule string, sync ISyncService, health IHealthChecker) *Service {
	cronLogger := logger.NewCronLogger()

	return &Service{
		syncSchedule:   syncSchedule,
		healthSchedule: healthSchedule,
		sync:           sync,
		health:         health,
		cron: cron.New(
			cron.WithLogger(cronLogger),
			cron.WithChain(cron.Recover(cronLogger), cron.SkipIfStillRunning(cronLogger)),
		),
	}
}

// Start registers the jobs and starts the cron loop. An empty schedule disables its job.
func (s *Service) Start() (err error) {
	if s.syncSchedule != "" {
		if _, err = s.cron.AddFunc(s.syncSchedule, s.RunSync); err != nil {
			return fmt.Errorf("Start: sync schedule %q: %w: %w", s.syncSchedule, errs.ErrConfiguration, err)
		}
	}

	if s.healthSchedule != "" {
		if _, err = s.cron.AddFunc(s.healthSchedule, s.RunHealthCheck); err != nil {
			return fmt.Errorf("Start: health schedule %q: %w: %w", s.healthSchedule, errs.ErrConfiguration, err)
		}
	}

	s.cron.Start()
	log.Info().
		Str("sync schedule", s.syncSchedule).
		Str("health schedule", s.healthSchedule).
		Msg("Start: scheduler started")

	return nil
}

// Stop stops scheduling and waits for running jobs until ctx is done.
func (s *Service) Stop(ctx context.Context) {
	select {
	case <-s.cron.Stop().Done():
	case <-ctx.Done():
		log.Warn().Msg("Stop: running jobs did not finish in time")
	}
}

func (s *Service) RunSync() {
	ctx, cancel := context.WithTimeout(context.Background(), syncJobTimeout)
	defer cancel()

	if _, err := s.sync.SyncUserData(ctx); err != nil {
		if errors.Is(err, errs.ErrSyncInProgress) {
			log.Debug().Msg("RunSync: previous sync still running")
			return
		}

		log.Error().Err(err).Msg("RunSync: sync failed")
	}
}

func (s *Service) RunHealthCheck() {
	ctx, cancel := context.WithTimeout(context.Background(), healthJobTimeout)
	defer cancel()

	status, err := s.health.HealthCheck(ctx)
	if err != nil {
		log.Error().Err(err).Msg("RunHealthCheck: health check failed")
		return
	}

	if !status.Healthy {
		log.Warn().Str("message", status.Message).Msg("RunHealthCheck: device unhealthy")
	}
}

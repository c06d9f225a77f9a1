package scheduler_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rickicode/mikrotik-billing/internal/domains/scheduler"
	"github.com/rickicode/mikrotik-billing/internal/domains/scheduler/scheduler_mocks"
	"github.com/rickicode/mikrotik-billing/internal/entities"
	"github.com/rickicode/mikrotik-billing/internal/errs"
)

type serviceFields struct {
	sync   *scheduler_mocks.MockISyncService
	health *scheduler_mocks.MockIHealthChecker
}

func newServiceFields(t *testing.T) *serviceFields {
	return &serviceFields{
		sync:   scheduler_mocks.NewMockISyncService(t),
		health: scheduler_mocks.NewMockIHealthChecker(t),
	}
}

func Test_Start(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		syncSchedule   string
		healthSchedule string
		wantErr        error
	}{
		{
			name:           "descriptors",
			syncSchedule:   "@every 1m",
			healthSchedule: "@every 30s",
		},
		{
			name:         "standard expression",
			syncSchedule: "*/5 * * * *",
		},
		{
			name: "all jobs disabled",
		},
		{
			name:         "broken sync schedule",
			syncSchedule: "every minute",
			wantErr:      errs.ErrConfiguration,
		},
		{
			name:           "broken health schedule",
			healthSchedule: "@every soon",
			wantErr:        errs.ErrConfiguration,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := newServiceFields(t)
			svc := scheduler.NewService(tt.syncSchedule, tt.healthSchedule, f.sync, f.health)

			err := svc.Start()
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)

			ctx, cancel := context.WithTimeout(context.Background(), time.Second)
			defer cancel()
			svc.Stop(ctx)
		})
	}
}

func Test_RunSync(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		prepare func(f *serviceFields)
	}{
		{
			name: "ok",
			prepare: func(f *serviceFields) {
				f.sync.EXPECT().SyncUserData(mock.Anything).Return(entities.SyncReport{}, nil).Times(1)
			},
		},
		{
			name: "already running",
			prepare: func(f *serviceFields) {
				f.sync.EXPECT().SyncUserData(mock.Anything).Return(entities.SyncReport{}, errs.ErrSyncInProgress).Times(1)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := newServiceFields(t)
			tt.prepare(f)

			scheduler.NewService("", "", f.sync, f.health).RunSync()
		})
	}
}

func Test_RunHealthCheck(t *testing.T) {
	t.Parallel()

	f := newServiceFields(t)
	f.health.EXPECT().HealthCheck(mock.MatchedBy(func(ctx context.Context) bool {
		_, hasDeadline := ctx.Deadline()
		return hasDeadline
	})).Return(entities.HealthStatus{Healthy: false, Message: "connection refused"}, nil).Times(1)

	scheduler.NewService("", "", f.sync, f.health).RunHealthCheck()
}

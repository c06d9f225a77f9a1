package reconcile_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rickicode/mikrotik-billing/internal/constants"
	"github.com/rickicode/mikrotik-billing/internal/domains/comment"
	"github.com/rickicode/mikrotik-billing/internal/domains/reconcile"
	"github.com/rickicode/mikrotik-billing/internal/domains/reconcile/reconcile_mocks"
	"github.com/rickicode/mikrotik-billing/internal/domains/respcache"
	"github.com/rickicode/mikrotik-billing/internal/domains/routeros"
	"github.com/rickicode/mikrotik-billing/internal/domains/routeros/rostest"
	"github.com/rickicode/mikrotik-billing/internal/entities"
	"github.com/rickicode/mikrotik-billing/internal/errs"
)

var syncNow = time.Unix(1_700_000_000, 0)

// memStore keeps billing records in memory.
type memStore struct {
	mu       sync.Mutex
	vouchers map[string]entities.Voucher
	users    map[string]entities.PPPoEUser
	profiles map[string]entities.Profile

	// failing calls left before the store recovers
	profileFailures int
	updateFailures  int
	profileLookups  int
}

func newMemStore() *memStore {
	return &memStore{
		vouchers: make(map[string]entities.Voucher),
		users:    make(map[string]entities.PPPoEUser),
		profiles: make(map[string]entities.Profile),
	}
}

func (s *memStore) FindActiveVouchers(context.Context) ([]entities.Voucher, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return lo.Filter(lo.Values(s.vouchers), func(v entities.Voucher, _ int) bool {
		return v.Status == entities.VoucherStatusAvailable || v.Status == entities.VoucherStatusActive
	}), nil
}

func (s *memStore) FindActivePPPoEUsers(context.Context) ([]entities.PPPoEUser, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return lo.Filter(lo.Values(s.users), func(u entities.PPPoEUser, _ int) bool {
		return u.Status == entities.SubscriptionStatusActive
	}), nil
}

func (s *memStore) UpdateVoucherStatus(_ context.Context, code string, status entities.VoucherStatus, usedAt *time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.updateFailures > 0 {
		s.updateFailures--
		return errs.ErrConnection
	}

	v, ok := s.vouchers[code]
	if !ok {
		return errors.New("record not found")
	}

	v.Status = status
	if usedAt != nil {
		v.UsedAt = usedAt
	}
	s.vouchers[code] = v

	return nil
}

func (s *memStore) UpdatePPPoEStatus(_ context.Context, username string, status entities.SubscriptionStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[username]
	if !ok {
		return errors.New("record not found")
	}

	u.Status = status
	s.users[username] = u

	return nil
}

func (s *memStore) FindProfileByName(_ context.Context, name string) (entities.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.profileLookups++
	if s.profileFailures > 0 {
		s.profileFailures--
		return entities.Profile{}, errs.ErrConnection
	}

	profile, ok := s.profiles[name]
	if !ok {
		return profile, errs.ErrProfileNotFound
	}

	return profile, nil
}

func (s *memStore) voucher(code string) entities.Voucher {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.vouchers[code]
}

func (s *memStore) user(username string) entities.PPPoEUser {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.users[username]
}

func startDevice(t *testing.T, transport *rostest.Transport) *routeros.Service {
	t.Helper()

	db, err := respcache.OpenInMemory()
	require.NoError(t, err)

	client := routeros.NewService(transport, rostest.Config{
		Host:     "10.0.0.1",
		Port:     8728,
		Username: "admin",
		Password: "secret",
		Timeout:  time.Second,
	}, respcache.NewService(db), validator.New())

	ctx, cancel := context.WithCancel(context.Background())
	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		client.Run(ctx)
	}()

	t.Cleanup(func() {
		cancel()
		<-stopped
		_ = db.Close()
	})

	return client
}

func Test_SyncUserData(t *testing.T) {
	t.Parallel()

	hourAgo := syncNow.Add(-time.Hour)
	firstLogin := hourAgo.Add(-time.Hour).Unix()
	expiredAt := hourAgo.Unix()

	store := newMemStore()
	store.vouchers["V1"] = entities.Voucher{Code: "V1", Password: "p1", Profile: "1h", PriceSell: 5000, Status: entities.VoucherStatusAvailable}
	store.vouchers["V2"] = entities.Voucher{Code: "V2", Password: "p2", Profile: "1h", PriceSell: 5000, Status: entities.VoucherStatusActive, ExpiresAt: &hourAgo}
	store.vouchers["V3"] = entities.Voucher{Code: "V3", Password: "p3", Profile: "1h", PriceSell: 5000, Status: entities.VoucherStatusAvailable}
	store.vouchers["V4"] = entities.Voucher{Code: "V4", Password: "p4", Profile: "1h", PriceSell: 5000, Status: entities.VoucherStatusActive, ExpiresAt: &hourAgo}
	store.users["p1"] = entities.PPPoEUser{Username: "p1", Password: "s1", Profile: "10M", CustomerID: "c1", SubscriptionID: "s1", Status: entities.SubscriptionStatusActive, CreatedAt: hourAgo}
	store.users["p2"] = entities.PPPoEUser{Username: "p2", Password: "s2", Profile: "10M", CustomerID: "c2", SubscriptionID: "s2", Status: entities.SubscriptionStatusActive, CreatedAt: hourAgo, ExpiresAt: &hourAgo}
	store.profiles["1h"] = entities.Profile{Name: "1h", Kind: entities.ProfileKindHotspot, DurationSeconds: 3600}

	transport := rostest.NewTransport()
	transport.Seed(constants.PathHotspotUser,
		entities.Row{"name": "V2", "profile": "1h", "comment": comment.FormatVoucherComment(5000, &firstLogin, &expiredAt)},
		entities.Row{"name": "V3", "profile": "1h", "comment": comment.FormatVoucherComment(5000, nil, nil)},
		entities.Row{"name": "manual", "profile": "default", "comment": "set up by hand"},
	)
	transport.Seed(constants.PathHotspotActive, entities.Row{"user": "V3"}, entities.Row{"user": "V3"}, entities.Row{"user": "manual"})
	transport.Seed(constants.PathPPPSecret, entities.Row{"name": "p2", "profile": "10M", "service": "pppoe"})

	svc := reconcile.NewService(startDevice(t, transport), store, reconcile.WithClock(func() time.Time { return syncNow }))

	report, err := svc.SyncUserData(context.Background())
	require.NoError(t, err)
	require.Equal(t, 0, report.Failures(), report)
	require.Equal(t, 2, report.Restore.Written)
	require.Equal(t, 2, report.Expire.Written)
	require.Equal(t, 1, report.FirstLogin.Written)
	require.Equal(t, 5, transport.Writes())

	// restored
	v1, ok := transport.Row(constants.PathHotspotUser, "V1")
	require.True(t, ok)
	require.Equal(t, comment.FormatVoucherComment(5000, nil, nil), v1["comment"])
	_, ok = transport.Row(constants.PathHotspotUser, "V4")
	require.False(t, ok)
	p1, ok := transport.Row(constants.PathPPPSecret, "p1")
	require.True(t, ok)
	require.Equal(t, "10M", p1["profile"])

	// expired
	v2, _ := transport.Row(constants.PathHotspotUser, "V2")
	require.Equal(t, "yes", v2["disabled"])
	require.Equal(t, entities.VoucherStatusExpired, store.voucher("V2").Status)
	require.Equal(t, entities.VoucherStatusExpired, store.voucher("V4").Status)
	p2, _ := transport.Row(constants.PathPPPSecret, "p2")
	require.Equal(t, "yes", p2["disabled"])
	require.Equal(t, entities.SubscriptionStatusExpired, store.user("p2").Status)

	// first login
	v3, _ := transport.Row(constants.PathHotspotUser, "V3")
	parsed, ok := comment.ParseVoucherComment(v3["comment"], syncNow)
	require.True(t, ok)
	require.Equal(t, lo.ToPtr(syncNow.Unix()), parsed.FirstLogin)
	require.Equal(t, lo.ToPtr(syncNow.Unix()+3600), parsed.ValidUntil)
	require.Equal(t, entities.VoucherStatusActive, store.voucher("V3").Status)
	require.Equal(t, syncNow, lo.FromPtr(store.voucher("V3").UsedAt))

	manual, _ := transport.Row(constants.PathHotspotUser, "manual")
	require.Equal(t, "set up by hand", manual["comment"])

	// a second run finds nothing to do
	transport.ResetCounters()
	report, err = svc.SyncUserData(context.Background())
	require.NoError(t, err)
	require.Equal(t, 0, report.Writes())
	require.Equal(t, 0, report.Failures())
	require.Equal(t, 0, transport.Writes())
}

func Test_SyncUserData_MissingProfile(t *testing.T) {
	t.Parallel()

	store := newMemStore()
	store.vouchers["V1"] = entities.Voucher{Code: "V1", Profile: "gone", Status: entities.VoucherStatusAvailable}

	transport := rostest.NewTransport()
	transport.Seed(constants.PathHotspotUser, entities.Row{"name": "V1", "profile": "gone", "comment": comment.FormatVoucherComment(0, nil, nil)})
	transport.Seed(constants.PathHotspotActive, entities.Row{"user": "V1"})

	svc := reconcile.NewService(startDevice(t, transport), store, reconcile.WithClock(func() time.Time { return syncNow }))

	report, err := svc.SyncUserData(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, report.FirstLogin.Written)
	require.Equal(t, 0, report.FirstLogin.Failed)

	v1, _ := transport.Row(constants.PathHotspotUser, "V1")
	parsed, ok := comment.ParseVoucherComment(v1["comment"], syncNow)
	require.True(t, ok)
	require.Equal(t, lo.ToPtr(syncNow.Unix()), parsed.FirstLogin)
	require.Nil(t, parsed.ValidUntil)
	require.Equal(t, entities.VoucherStatusActive, parsed.Status)
}

func Test_SyncUserData_FirstLoginProfileError(t *testing.T) {
	t.Parallel()

	store := newMemStore()
	store.vouchers["V1"] = entities.Voucher{Code: "V1", Profile: "1h", PriceSell: 1000, Status: entities.VoucherStatusAvailable}
	store.profiles["1h"] = entities.Profile{Name: "1h", Kind: entities.ProfileKindHotspot, DurationSeconds: 3600}
	store.profileFailures = 1

	transport := rostest.NewTransport()
	transport.Seed(constants.PathHotspotUser, entities.Row{"name": "V1", "profile": "1h", "comment": comment.FormatVoucherComment(1000, nil, nil)})
	transport.Seed(constants.PathHotspotActive, entities.Row{"user": "V1"})

	svc := reconcile.NewService(startDevice(t, transport), store, reconcile.WithClock(func() time.Time { return syncNow }))

	// the lookup fails, the voucher is left for the next run
	report, err := svc.SyncUserData(context.Background())
	require.NoError(t, err)
	require.Equal(t, 0, report.FirstLogin.Written)
	require.Equal(t, 1, report.FirstLogin.Failed)
	require.Equal(t, 0, transport.Writes())

	v1, _ := transport.Row(constants.PathHotspotUser, "V1")
	require.Equal(t, comment.FormatVoucherComment(1000, nil, nil), v1["comment"])
	require.Equal(t, entities.VoucherStatusAvailable, store.voucher("V1").Status)

	report, err = svc.SyncUserData(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, report.FirstLogin.Written)
	require.Equal(t, 0, report.Failures())

	v1, _ = transport.Row(constants.PathHotspotUser, "V1")
	require.Equal(t, comment.FormatVoucherComment(1000, lo.ToPtr(syncNow.Unix()), lo.ToPtr(syncNow.Unix()+3600)), v1["comment"])

	parsed, ok := comment.ParseVoucherComment(v1["comment"], syncNow.Add(48*time.Hour))
	require.True(t, ok)
	require.Equal(t, entities.VoucherStatusExpired, parsed.Status)
	require.Equal(t, entities.VoucherStatusActive, store.voucher("V1").Status)
}

func Test_SyncUserData_FirstLoginStoreError(t *testing.T) {
	t.Parallel()

	store := newMemStore()
	store.vouchers["V1"] = entities.Voucher{Code: "V1", Profile: "1h", PriceSell: 1000, Status: entities.VoucherStatusAvailable}
	store.profiles["1h"] = entities.Profile{Name: "1h", Kind: entities.ProfileKindHotspot, DurationSeconds: 3600}
	store.updateFailures = 1

	transport := rostest.NewTransport()
	transport.Seed(constants.PathHotspotUser, entities.Row{"name": "V1", "profile": "1h", "comment": comment.FormatVoucherComment(1000, nil, nil)})
	transport.Seed(constants.PathHotspotActive, entities.Row{"user": "V1"})

	clock := syncNow
	svc := reconcile.NewService(startDevice(t, transport), store, reconcile.WithClock(func() time.Time { return clock }))

	// the comment is written but the record is not
	report, err := svc.SyncUserData(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, report.FirstLogin.Written)
	require.Equal(t, 1, report.FirstLogin.Failed)
	require.Equal(t, entities.VoucherStatusAvailable, store.voucher("V1").Status)

	// the next run takes used_at from the device comment
	clock = syncNow.Add(10 * time.Minute)
	transport.ResetCounters()
	report, err = svc.SyncUserData(context.Background())
	require.NoError(t, err)
	require.Equal(t, 0, report.Failures())
	require.Equal(t, 0, transport.Writes())
	require.Equal(t, entities.VoucherStatusActive, store.voucher("V1").Status)
	require.Equal(t, syncNow, lo.FromPtr(store.voucher("V1").UsedAt))

	// and then has nothing left to do
	store.updateFailures = 1
	report, err = svc.SyncUserData(context.Background())
	require.NoError(t, err)
	require.Equal(t, 0, report.Failures())
	require.Equal(t, 1, store.updateFailures)
}

func Test_SyncUserData_RestoreUsedVoucher(t *testing.T) {
	t.Parallel()

	usedAt := syncNow.Add(-30 * time.Minute)
	overdue := syncNow.Add(-2 * time.Hour)

	store := newMemStore()
	store.vouchers["V1"] = entities.Voucher{Code: "V1", Profile: "1h", PriceSell: 1000, Status: entities.VoucherStatusActive, UsedAt: &usedAt}
	store.vouchers["V2"] = entities.Voucher{Code: "V2", Profile: "1h", PriceSell: 1000, Status: entities.VoucherStatusActive, UsedAt: &overdue}
	store.profiles["1h"] = entities.Profile{Name: "1h", Kind: entities.ProfileKindHotspot, DurationSeconds: 3600}
	store.profileFailures = 2

	transport := rostest.NewTransport()
	svc := reconcile.NewService(startDevice(t, transport), store, reconcile.WithClock(func() time.Time { return syncNow }))

	// without the profile the validity is unknown, nothing is restored
	report, err := svc.SyncUserData(context.Background())
	require.NoError(t, err)
	require.Equal(t, 0, report.Restore.Written)
	require.Equal(t, 2, report.Restore.Failed)
	_, ok := transport.Row(constants.PathHotspotUser, "V1")
	require.False(t, ok)

	report, err = svc.SyncUserData(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, report.Restore.Written)
	require.Equal(t, 0, report.Failures())

	v1, ok := transport.Row(constants.PathHotspotUser, "V1")
	require.True(t, ok)
	require.Equal(t, comment.FormatVoucherComment(1000, lo.ToPtr(usedAt.Unix()), lo.ToPtr(usedAt.Unix()+3600)), v1["comment"])

	_, ok = transport.Row(constants.PathHotspotUser, "V2")
	require.False(t, ok)
	require.Equal(t, entities.VoucherStatusExpired, store.voucher("V2").Status)

	// failed lookups are retried per voucher, a found profile is read once per run
	require.Equal(t, 3, store.profileLookups)
}

type serviceFields struct {
	device   *reconcile_mocks.MockIDeviceClient
	store    *reconcile_mocks.MockIBillingStore
	observer *reconcile_mocks.MockIObserver
}

func newServiceFields(t *testing.T) *serviceFields {
	return &serviceFields{
		device:   reconcile_mocks.NewMockIDeviceClient(t),
		store:    reconcile_mocks.NewMockIBillingStore(t),
		observer: reconcile_mocks.NewMockIObserver(t),
	}
}

func pathIs(path string) any {
	return mock.MatchedBy(func(cmd entities.Command) bool {
		return cmd.Path == path
	})
}

func Test_SyncUserData_Steps(t *testing.T) {
	t.Parallel()

	degraded := entities.Reply{Rows: []entities.Row{}, Offline: true, Degraded: true, Cause: errs.ErrConnection}

	tests := []struct {
		name    string
		prepare func(f *serviceFields)
		check   func(t *testing.T, report entities.SyncReport)
		wantErr error
	}{
		{
			name: "store failure aborts the run",
			prepare: func(f *serviceFields) {
				f.store.EXPECT().FindActiveVouchers(mock.Anything).Return(nil, errs.ErrConnection).Times(1)
				f.store.EXPECT().FindActivePPPoEUsers(mock.Anything).Return(nil, nil).Maybe()
				f.observer.EXPECT().OnSyncFinished(mock.Anything, mock.Anything).Times(1)
			},
			wantErr: errs.ErrConnection,
		},
		{
			name: "degraded listing skips every step",
			prepare: func(f *serviceFields) {
				f.store.EXPECT().FindActiveVouchers(mock.Anything).Return([]entities.Voucher{
					{Code: "V1", Profile: "1h", Status: entities.VoucherStatusAvailable},
				}, nil).Times(1)
				f.store.EXPECT().FindActivePPPoEUsers(mock.Anything).Return(nil, nil).Times(1)
				f.device.EXPECT().Execute(mock.Anything, pathIs(constants.PathHotspotUser+"/print"), mock.Anything).
					Return(degraded, nil).Times(1)
				f.device.EXPECT().Execute(mock.Anything, pathIs(constants.PathPPPSecret+"/print"), mock.Anything).
					Return(entities.Reply{Rows: []entities.Row{}}, nil).Times(1)
				f.observer.EXPECT().OnSyncFinished(mock.Anything, nil).Times(1)
			},
			check: func(t *testing.T, report entities.SyncReport) {
				require.True(t, report.Restore.Skipped)
				require.True(t, report.Expire.Skipped)
				require.True(t, report.FirstLogin.Skipped)
				require.Equal(t, 0, report.Writes())
			},
		},
		{
			name: "failed restore is counted and the run goes on",
			prepare: func(f *serviceFields) {
				f.store.EXPECT().FindActiveVouchers(mock.Anything).Return([]entities.Voucher{
					{Code: "V1", Profile: "1h", Status: entities.VoucherStatusAvailable},
				}, nil).Times(1)
				f.store.EXPECT().FindActivePPPoEUsers(mock.Anything).Return(nil, nil).Times(1)
				f.device.EXPECT().Execute(mock.Anything, pathIs(constants.PathHotspotUser+"/print"), mock.Anything).
					Return(entities.Reply{Rows: []entities.Row{}}, nil).Times(1)
				f.device.EXPECT().Execute(mock.Anything, pathIs(constants.PathPPPSecret+"/print"), mock.Anything).
					Return(entities.Reply{Rows: []entities.Row{}}, nil).Times(1)
				f.device.EXPECT().Execute(mock.Anything, pathIs(constants.PathHotspotActive+"/print"), mock.Anything).
					Return(entities.Reply{Rows: []entities.Row{}}, nil).Times(1)
				f.device.EXPECT().CreateVoucherUser(mock.Anything, entities.NewVoucherUser{Code: "V1", Profile: "1h"}).
					Return("", errs.ErrCommand).Times(1)
				f.observer.EXPECT().OnSyncFinished(mock.Anything, nil).Times(1)
			},
			check: func(t *testing.T, report entities.SyncReport) {
				require.Equal(t, 1, report.Restore.Failed)
				require.Len(t, report.Restore.Messages, 1)
				require.Contains(t, report.Restore.Messages[0], "V1")
				require.False(t, report.Expire.Skipped)
				require.False(t, report.FirstLogin.Skipped)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := newServiceFields(t)
			tt.prepare(f)

			svc := reconcile.NewService(f.device, f.store,
				reconcile.WithObserver(f.observer),
				reconcile.WithClock(func() time.Time { return syncNow }),
			)

			report, err := svc.SyncUserData(context.Background())
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			if tt.check != nil {
				tt.check(t, report)
			}
		})
	}
}

func Test_SyncUserData_InProgress(t *testing.T) {
	t.Parallel()

	f := newServiceFields(t)
	entered := make(chan struct{})
	release := make(chan struct{})

	f.store.EXPECT().FindActiveVouchers(mock.Anything).RunAndReturn(func(context.Context) ([]entities.Voucher, error) {
		close(entered)
		<-release
		return nil, nil
	}).Times(1)
	f.store.EXPECT().FindActivePPPoEUsers(mock.Anything).Return(nil, nil).Times(1)
	f.device.EXPECT().Execute(mock.Anything, mock.Anything, mock.Anything).
		Return(entities.Reply{Rows: []entities.Row{}, Degraded: true, Cause: errs.ErrConnection}, nil).Maybe()

	svc := reconcile.NewService(f.device, f.store)

	done := make(chan error, 1)
	go func() {
		_, err := svc.SyncUserData(context.Background())
		done <- err
	}()

	<-entered
	_, err := svc.SyncUserData(context.Background())
	require.ErrorIs(t, err, errs.ErrSyncInProgress)

	close(release)
	require.NoError(t, <-done)
}

package reconcile

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"github.com/sourcegraph/conc/pool"

	"github.com/rickicode/mikrotik-billing/internal/constants"
	"github.com/rickicode/mikrotik-billing/internal/domains/comment"
	"github.com/rickicode/mikrotik-billing/internal/domains/routeros"
	"github.com/rickicode/mikrotik-billing/internal/entities"
	"github.com/rickicode/mikrotik-billing/internal/errs"
)

const (
	stepRestore    = "restore"
	stepExpire     = "expire"
	stepFirstLogin = "first_login"
)

type (
	IDeviceClient interface {
		Execute(ctx context.Context, cmd entities.Command, opts ...routeros.ExecOption) (entities.Reply, error)
		CreateVoucherUser(ctx context.Context, user entities.NewVoucherUser) (id string, err error)
		CreatePPPoESecret(ctx context.Context, secret entities.NewPPPoESecret) (id string, err error)
		UpdateHotspotUser(ctx context.Context, id string, update entities.HotspotUserUpdate) (err error)
		SetHotspotUserDisabled(ctx context.Context, id string, disabled bool) (err error)
		SetPPPoESecretDisabled(ctx context.Context, id string, disabled bool) (err error)
	}

	IBillingStore interface {
		FindActiveVouchers(ctx context.Context) (vouchers []entities.Voucher, err error)
		FindActivePPPoEUsers(ctx context.Context) (users []entities.PPPoEUser, err error)
		UpdateVoucherStatus(ctx context.Context, code string, status entities.VoucherStatus, usedAt *time.Time) (err error)
		UpdatePPPoEStatus(ctx context.Context, username string, status entities.SubscriptionStatus) (err error)
		FindProfileByName(ctx context.Context, name string) (profile entities.Profile, err error)
	}

	IObserver interface {
		OnSyncFinished(report entities.SyncReport, err error)
	}
)

type Option func(s *Service)

func WithObserver(observer IObserver) Option {
	return func(s *Service) {
		if observer != nil {
			s.observer = observer
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// Service brings device users in line with the billing database.
type Service struct {
	device   IDeviceClient
	store    IBillingStore
	observer IObserver
	now      func() time.Time

	running atomic.Bool
}

func NewService(device IDeviceClient, store IBillingStore, opts ...Option) *Service {
	s := &Service{
		device:   device,
		store:    store,
		observer: noopObserver{},
		now:      time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// deviceState is the device side of a sync run.
type deviceState struct {
	hotspotUsers entities.HotspotUsers
	hotspotOK    bool
	secrets      entities.PPPoESecrets
	secretsOK    bool
}

// SyncUserData restores missing device users, expires overdue ones and records first logins.
// Only one run at a time is allowed.
func (s *Service) SyncUserData(ctx context.Context) (report entities.SyncReport, err error) {
	if !s.running.CompareAndSwap(false, true) {
		return report, fmt.Errorf("SyncUserData: %w", errs.ErrSyncInProgress)
	}
	defer s.running.Store(false)

	now := s.now()
	report.StartedAt = now
	started := time.Now()
	defer func() {
		report.Duration = time.Since(started)
		s.observer.OnSyncFinished(report, err)
	}()

	var (
		vouchers []entities.Voucher
		users    []entities.PPPoEUser
	)
	p := pool.New().WithErrors().WithContext(ctx)
	p.Go(func(ctx context.Context) (err error) {
		vouchers, err = s.store.FindActiveVouchers(ctx)
		return err
	})
	p.Go(func(ctx context.Context) (err error) {
		users, err = s.store.FindActivePPPoEUsers(ctx)
		return err
	})
	if err = p.Wait(); err != nil {
		return report, fmt.Errorf("SyncUserData: %w", err)
	}

	state := s.loadDeviceState(ctx)

	var unresolved map[string]error
	if state.hotspotOK {
		vouchers, unresolved = s.withUsageExpiry(ctx, vouchers, state.hotspotUsers.ByName())
	}

	report.Restore = s.restore(ctx, now, vouchers, unresolved, users, state)
	if report.Restore.Written > 0 {
		state = s.loadDeviceState(ctx)
	}

	report.Expire = s.expire(ctx, now, vouchers, users, state)
	report.FirstLogin = s.firstLogin(ctx, now, vouchers, state)

	log.Info().
		Int("writes", report.Writes()).
		Int("failures", report.Failures()).
		Msg("SyncUserData: user data synced")

	return report, nil
}

func (s *Service) loadDeviceState(ctx context.Context) (state deviceState) {
	var rows []entities.Row
	rows, state.hotspotOK = s.list(ctx, constants.PathHotspotUser)
	state.hotspotUsers = entities.ParseHotspotUsers(rows)

	rows, state.secretsOK = s.list(ctx, constants.PathPPPSecret)
	state.secrets = entities.ParsePPPoESecrets(rows)

	return state
}

// list reads a family bypassing the cache. ok is false when the device could not answer.
func (s *Service) list(ctx context.Context, family string) (rows []entities.Row, ok bool) {
	reply, err := s.device.Execute(ctx, entities.NewCommand(family+"/print"), routeros.WithoutCache())
	if err != nil {
		log.Warn().Err(err).Str("family", family).Msg("list: device listing failed")
		return nil, false
	}

	if reply.Degraded {
		log.Warn().Err(reply.Cause).Str("family", family).Msg("list: device listing degraded")
		return nil, false
	}

	return reply.Rows, true
}

// withUsageExpiry fills ExpiresAt of used vouchers missing from the device with the
// first login time plus the profile duration, so a restored voucher keeps its validity.
// Vouchers whose profile could not be read are returned in unresolved.
func (s *Service) withUsageExpiry(ctx context.Context, vouchers []entities.Voucher, onDevice map[string]entities.HotspotUser) (out []entities.Voucher, unresolved map[string]error) {
	unresolved = make(map[string]error)
	durations := make(map[string]*int64)
	out = make([]entities.Voucher, 0, len(vouchers))

	for _, voucher := range vouchers {
		_, exists := onDevice[voucher.Code]
		if exists || voucher.UsedAt == nil || voucher.ExpiresAt != nil {
			out = append(out, voucher)
			continue
		}

		duration, cached := durations[voucher.Profile]
		if !cached {
			var err error
			if duration, err = s.profileDuration(ctx, voucher.Profile); err != nil {
				unresolved[voucher.Code] = err
				out = append(out, voucher)
				continue
			}
			durations[voucher.Profile] = duration
		}

		if duration != nil {
			voucher.ExpiresAt = lo.ToPtr(voucher.UsedAt.Add(time.Duration(*duration) * time.Second))
		}
		out = append(out, voucher)
	}

	return out, unresolved
}

func (s *Service) restore(ctx context.Context, now time.Time, vouchers []entities.Voucher, unresolved map[string]error, users []entities.PPPoEUser, state deviceState) (step entities.SyncStep) {
	step.Name = stepRestore
	if !state.hotspotOK || !state.secretsOK {
		step.Skipped = true
		return step
	}

	hotspotByName := state.hotspotUsers.ByName()
	for _, voucher := range vouchers {
		step.Checked++
		if _, exists := hotspotByName[voucher.Code]; exists || expiredAt(voucher.ExpiresAt, now) {
			continue
		}

		if err, ok := unresolved[voucher.Code]; ok {
			step.Fail(fmt.Errorf("restore voucher %s: %w", voucher.Code, err))
			continue
		}

		if _, err := s.device.CreateVoucherUser(ctx, entities.NewVoucherUser{
			Code:       voucher.Code,
			Password:   voucher.Password,
			Profile:    voucher.Profile,
			PriceSell:  voucher.PriceSell,
			FirstLogin: unixPtr(voucher.UsedAt),
			ValidUntil: unixPtr(voucher.ExpiresAt),
		}); err != nil {
			step.Fail(fmt.Errorf("restore voucher %s: %w", voucher.Code, err))
			continue
		}

		step.Written++
	}

	secretsByName := state.secrets.ByName()
	for _, user := range users {
		step.Checked++
		if _, exists := secretsByName[user.Username]; exists || user.Expired(now) {
			continue
		}

		if _, err := s.device.CreatePPPoESecret(ctx, entities.NewPPPoESecret{
			Username:       user.Username,
			Password:       user.Password,
			Profile:        user.Profile,
			CustomerID:     user.CustomerID,
			SubscriptionID: user.SubscriptionID,
			CreatedAt:      user.CreatedAt.Unix(),
		}); err != nil {
			step.Fail(fmt.Errorf("restore pppoe secret %s: %w", user.Username, err))
			continue
		}

		step.Written++
	}

	return step
}

func (s *Service) expire(ctx context.Context, now time.Time, vouchers []entities.Voucher, users []entities.PPPoEUser, state deviceState) (step entities.SyncStep) {
	step.Name = stepExpire
	if !state.hotspotOK || !state.secretsOK {
		step.Skipped = true
		return step
	}

	activeVouchers := lo.KeyBy(vouchers, func(v entities.Voucher) string {
		return v.Code
	})

	for _, user := range state.hotspotUsers {
		voucher, ok := comment.ParseVoucherComment(user.Comment, now)
		if !ok {
			continue
		}

		step.Checked++
		if voucher.Status != entities.VoucherStatusExpired {
			continue
		}

		if !user.Disabled {
			if err := s.device.SetHotspotUserDisabled(ctx, user.ID, true); err != nil {
				step.Fail(fmt.Errorf("disable hotspot user %s: %w", user.Name, err))
				continue
			}
			step.Written++
		}

		if _, active := activeVouchers[user.Name]; active {
			if err := s.store.UpdateVoucherStatus(ctx, user.Name, entities.VoucherStatusExpired, nil); err != nil {
				step.Fail(fmt.Errorf("expire voucher %s: %w", user.Name, err))
			}
		}
	}

	// overdue vouchers that are gone from the device
	hotspotByName := state.hotspotUsers.ByName()
	for _, voucher := range vouchers {
		if _, exists := hotspotByName[voucher.Code]; exists || !expiredAt(voucher.ExpiresAt, now) {
			continue
		}

		if err := s.store.UpdateVoucherStatus(ctx, voucher.Code, entities.VoucherStatusExpired, nil); err != nil {
			step.Fail(fmt.Errorf("expire voucher %s: %w", voucher.Code, err))
		}
	}

	secretsByName := state.secrets.ByName()
	for _, user := range users {
		step.Checked++
		if !user.Expired(now) {
			continue
		}

		if secret, exists := secretsByName[user.Username]; exists && !secret.Disabled {
			if err := s.device.SetPPPoESecretDisabled(ctx, secret.ID, true); err != nil {
				step.Fail(fmt.Errorf("disable pppoe secret %s: %w", user.Username, err))
				continue
			}
			step.Written++
		}

		if err := s.store.UpdatePPPoEStatus(ctx, user.Username, entities.SubscriptionStatusExpired); err != nil {
			step.Fail(fmt.Errorf("expire pppoe user %s: %w", user.Username, err))
		}
	}

	return step
}

func (s *Service) firstLogin(ctx context.Context, now time.Time, vouchers []entities.Voucher, state deviceState) (step entities.SyncStep) {
	step.Name = stepFirstLogin
	if !state.hotspotOK {
		step.Skipped = true
		return step
	}

	s.activateUsed(ctx, now, vouchers, state, &step)

	rows, ok := s.list(ctx, constants.PathHotspotActive)
	if !ok {
		step.Skipped = true
		return step
	}

	hotspotByName := state.hotspotUsers.ByName()
	sessions := lo.UniqBy(entities.ParseActiveSessions(rows), func(session entities.ActiveSession) string {
		return session.User
	})

	for _, session := range sessions {
		user, exists := hotspotByName[session.User]
		if !exists {
			continue
		}

		voucher, ok := comment.ParseVoucherComment(user.Comment, now)
		if !ok {
			continue
		}

		step.Checked++
		if voucher.FirstLogin != nil {
			continue
		}

		// the comment is written once, so it must not go out without its validity
		if voucher.ValidUntil == nil {
			validUntil, err := s.validUntil(ctx, user.Profile, now)
			if err != nil {
				step.Fail(fmt.Errorf("first login %s: %w", user.Name, err))
				continue
			}
			voucher.ValidUntil = validUntil
		}
		voucher.FirstLogin = lo.ToPtr(now.Unix())

		if err := s.device.UpdateHotspotUser(ctx, user.ID, entities.HotspotUserUpdate{Comment: &voucher}); err != nil {
			step.Fail(fmt.Errorf("first login %s: %w", user.Name, err))
			continue
		}
		step.Written++

		if err := s.store.UpdateVoucherStatus(ctx, user.Name, entities.VoucherStatusActive, &now); err != nil {
			step.Fail(fmt.Errorf("activate voucher %s: %w", user.Name, err))
		}
	}

	return step
}

// activateUsed marks vouchers active whose device comment already carries a first login
// while the database still has them available. used_at is the first login time.
func (s *Service) activateUsed(ctx context.Context, now time.Time, vouchers []entities.Voucher, state deviceState, step *entities.SyncStep) {
	available := lo.KeyBy(lo.Filter(vouchers, func(v entities.Voucher, _ int) bool {
		return v.Status == entities.VoucherStatusAvailable
	}), func(v entities.Voucher) string {
		return v.Code
	})
	if len(available) == 0 {
		return
	}

	for _, user := range state.hotspotUsers {
		if _, ok := available[user.Name]; !ok {
			continue
		}

		voucher, ok := comment.ParseVoucherComment(user.Comment, now)
		if !ok || voucher.FirstLogin == nil || voucher.Status == entities.VoucherStatusExpired {
			continue
		}

		usedAt := time.Unix(*voucher.FirstLogin, 0)
		if err := s.store.UpdateVoucherStatus(ctx, user.Name, entities.VoucherStatusActive, &usedAt); err != nil {
			step.Fail(fmt.Errorf("activate voucher %s: %w", user.Name, err))
			continue
		}

		log.Info().Str("voucher", user.Name).Time("usedAt", usedAt).Msg("activateUsed: voucher marked active")
	}
}

// validUntil returns now plus the profile duration. Profiles without a duration never expire.
func (s *Service) validUntil(ctx context.Context, profileName string, now time.Time) (*int64, error) {
	duration, err := s.profileDuration(ctx, profileName)
	if err != nil || duration == nil {
		return nil, err
	}

	return lo.ToPtr(now.Unix() + *duration), nil
}

// profileDuration returns the validity of the profile in seconds, nil when it has none.
// A missing profile is not an error.
func (s *Service) profileDuration(ctx context.Context, profileName string) (*int64, error) {
	profile, err := s.store.FindProfileByName(ctx, profileName)
	if err != nil {
		if errors.Is(err, errs.ErrProfileNotFound) {
			log.Warn().Str("profile", profileName).Msg("profileDuration: profile not found, voucher will not expire")
			return nil, nil
		}

		return nil, err
	}

	if profile.DurationSeconds <= 0 {
		return nil, nil
	}

	return lo.ToPtr(profile.DurationSeconds), nil
}

func expiredAt(expiresAt *time.Time, now time.Time) bool {
	return expiresAt != nil && now.After(*expiresAt)
}

func unixPtr(t *time.Time) *int64 {
	if t == nil {
		return nil
	}

	return lo.ToPtr(t.Unix())
}

type noopObserver struct{}

func (noopObserver) OnSyncFinished(entities.SyncReport, error) {}

package routeros

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"

	"github.com/rickicode/mikrotik-billing/internal/constants"
	"github.com/rickicode/mikrotik-billing/internal/entities"
	"github.com/rickicode/mikrotik-billing/internal/errs"
)

type (
	ITransport interface {
		Connect(ctx context.Context, address string) (err error)
		Login(username, password string) (err error)
		RunQuery(path string, params []entities.Param) (reply entities.Reply, err error)
		Close() (err error)
	}

	IConfigSource interface {
		Load() (cfg entities.RouterConfig, err error)
	}

	ICache interface {
		Get(cmd entities.Command) (rows []entities.Row, ok bool)
		Set(cmd entities.Command, rows []entities.Row) (err error)
		InvalidateFamily(family string) (err error)
		Clear() (err error)
	}

	IObserver interface {
		OnStateChanged(info entities.ConnectionInfo)
		OnCommand(event entities.CommandEvent)
	}
)

type job func()

// Service is the client of a single RouterOS device. All device I/O happens on the
// goroutine started by Run, one command at a time, in arrival order.
type Service struct {
	transport    ITransport
	configSource IConfigSource
	cache        ICache
	observer     IObserver
	validate     *validator.Validate

	baseDelay   time.Duration
	maxAttempts int
	schedule    Scheduler
	now         func() time.Time
	newID       func() string

	jobs    chan job
	done    chan struct{}
	running atomic.Bool

	// owned by the worker goroutine.
	conn connection

	infoMu sync.RWMutex
	info   entities.ConnectionInfo
}

func NewService(transport ITransport, configSource IConfigSource, cache ICache, validate *validator.Validate, opts ...Option) *Service {
	s := &Service{
		transport:    transport,
		configSource: configSource,
		cache:        cache,
		observer:     noopObserver{},
		validate:     validate,
		now:          time.Now,
		done:         make(chan struct{}),
		conn: connection{
			state: entities.ConnectionStateDisconnected,
		},
		info: entities.ConnectionInfo{
			State: entities.ConnectionStateDisconnected,
		},
	}

	defaultOptions(s)
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Run processes queued jobs until ctx is done. The device session is closed on exit.
func (s *Service) Run(ctx context.Context) {
	if !s.running.CompareAndSwap(false, true) {
		log.Warn().Msg("Run: device client already running")
		return
	}

	defer func() {
		s.disconnect()
		close(s.done)
		log.Info().Msg("Run: device client stopped")
	}()

	for {
		select {
		case <-ctx.Done():
			return

		case j := <-s.jobs:
			j()
		}
	}
}

// Execute runs a command on the device. Device failures are absorbed into a default
// reply marked Degraded; only validation errors and reconnect exhaustion are returned.
func (s *Service) Execute(ctx context.Context, cmd entities.Command, opts ...ExecOption) (entities.Reply, error) {
	if err := s.validateCommand(cmd); err != nil {
		s.observer.OnCommand(entities.CommandEvent{
			Path:    cmd.Path,
			Kind:    cmd.Kind(),
			Outcome: entities.CommandOutcomeRejected,
			Err:     err,
		})

		return entities.Reply{}, fmt.Errorf("Execute: %w", err)
	}

	var (
		options = newExecOptions(opts)
		result  entities.Reply
		execErr error
	)
	if err := s.call(ctx, func() {
		result, execErr = s.execute(cmd, options)
	}); err != nil {
		return entities.Reply{}, fmt.Errorf("Execute: %w", err)
	}

	if execErr != nil {
		return entities.Reply{}, fmt.Errorf("Execute: %w", execErr)
	}

	return result, nil
}

// ExecuteBatch runs commands back to back as a single job. Items fail independently.
func (s *Service) ExecuteBatch(ctx context.Context, cmds []entities.Command, opts ...ExecOption) ([]entities.BatchResult, error) {
	options := newExecOptions(opts)

	results := make([]entities.BatchResult, len(cmds))
	valid := make([]int, 0, len(cmds))
	for i, cmd := range cmds {
		results[i].Command = cmd
		if err := s.validateCommand(cmd); err != nil {
			results[i].Err = err
			continue
		}

		valid = append(valid, i)
	}

	executed := make([]entities.BatchResult, len(cmds))
	copy(executed, results)
	if err := s.call(ctx, func() {
		for _, i := range valid {
			executed[i].Reply, executed[i].Err = s.execute(cmds[i], options)
		}
	}); err != nil {
		return nil, fmt.Errorf("ExecuteBatch: %w", err)
	}

	return executed, nil
}

// ConnectionInfo returns a snapshot of the connection state.
func (s *Service) ConnectionInfo() entities.ConnectionInfo {
	s.infoMu.RLock()
	defer s.infoMu.RUnlock()

	info := s.info
	if info.LastConnectedAt != nil {
		lastConnectedAt := *info.LastConnectedAt
		info.LastConnectedAt = &lastConnectedAt
	}

	return info
}

// Connect connects to the device, resetting the reconnect backoff.
func (s *Service) Connect(ctx context.Context) (err error) {
	var connectErr error
	if err = s.call(ctx, func() {
		s.resetBackoff()
		connectErr = s.connect()
	}); err != nil {
		return fmt.Errorf("Connect: %w", err)
	}

	if connectErr != nil {
		return fmt.Errorf("Connect: %w", connectErr)
	}

	return nil
}

// Disconnect closes the device session. It never fails on an already closed session.
func (s *Service) Disconnect(ctx context.Context) (err error) {
	if err = s.call(ctx, s.disconnect); err != nil {
		if errors.Is(err, errs.ErrClientStopped) {
			return nil
		}

		return fmt.Errorf("Disconnect: %w", err)
	}

	return nil
}

// ReloadConfig re-reads the device settings and reconnects when the target changed.
func (s *Service) ReloadConfig(ctx context.Context) (info entities.ConnectionInfo, err error) {
	var reloadErr error
	if err = s.call(ctx, func() {
		reloadErr = s.reloadConfig()
	}); err != nil {
		return info, fmt.Errorf("ReloadConfig: %w", err)
	}

	if reloadErr != nil {
		return s.ConnectionInfo(), fmt.Errorf("ReloadConfig: %w", reloadErr)
	}

	return s.ConnectionInfo(), nil
}

// HealthCheck tries to recover an offline device, otherwise runs a liveness query.
func (s *Service) HealthCheck(ctx context.Context) (status entities.HealthStatus, err error) {
	var result entities.HealthStatus
	if err = s.call(ctx, func() {
		result = s.healthCheck()
	}); err != nil {
		return status, fmt.Errorf("HealthCheck: %w", err)
	}

	return result, nil
}

// call queues fn on the worker and waits for it. ctx cancels waiting only.
func (s *Service) call(ctx context.Context, fn func()) (err error) {
	finished := make(chan struct{})
	wrapped := func() {
		defer close(finished)
		fn()
	}

	select {
	case s.jobs <- wrapped:
	case <-ctx.Done():
		return ctx.Err()
	case <-s.done:
		return errs.ErrClientStopped
	}

	select {
	case <-finished:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-s.done:
		select {
		case <-finished:
			return nil
		default:
			return errs.ErrClientStopped
		}
	}
}

func (s *Service) execute(cmd entities.Command, options execOptions) (reply entities.Reply, err error) {
	var (
		started = time.Now()
		retried bool
	)
	defer func() {
		s.observer.OnCommand(entities.CommandEvent{
			Path:     cmd.Path,
			Kind:     cmd.Kind(),
			Outcome:  commandOutcome(reply, err),
			Duration: time.Since(started),
			Retried:  retried,
			Err:      errors.Join(err, reply.Cause),
		})
	}()

	if s.conn.offline {
		return s.defaultReply(cmd, fmt.Errorf("%w: device offline: %w", errs.ErrConnection, s.conn.cause())), nil
	}

	if options.useCache && cmd.Cacheable() {
		if rows, ok := s.cache.Get(cmd); ok {
			return entities.Reply{
				Rows:   rows,
				Cached: true,
			}, nil
		}
	}

	if s.conn.state != entities.ConnectionStateConnected {
		if err = s.ensureConnected(); err != nil {
			if errors.Is(err, errs.ErrReconnectExhausted) {
				return reply, err
			}

			return s.defaultReply(cmd, err), nil
		}
	}

	reply, err = s.run(cmd, options.timeout)
	if err == nil {
		s.commit(cmd, reply)
		return reply, nil
	}

	err = wrapClass(err)
	switch Classify(err) {
	case errs.ErrConnection:
		log.Warn().Err(err).Str("path", cmd.Path).Msg("execute: device unreachable, switching to offline mode")
		s.markOffline(err)
		return s.defaultReply(cmd, err), nil

	case errs.ErrAuthentication, errs.ErrCommand, errs.ErrConfiguration:
		log.Warn().Err(err).Str("path", cmd.Path).Msg("execute: command rejected")
		s.setLastError(err)
		return s.defaultReply(cmd, err), nil
	}

	// transient failure, one forced reconnect and one uncached retry
	log.Warn().Err(err).Str("path", cmd.Path).Msg("execute: command failed, reconnecting")
	retried = true
	firstErr := err

	if err = s.reconnect(); err != nil {
		if errors.Is(err, errs.ErrReconnectExhausted) {
			return reply, err
		}

		return s.defaultReply(cmd, errors.Join(firstErr, err)), nil
	}

	if reply, err = s.run(cmd, options.timeout); err != nil {
		err = wrapClass(err)
		if errors.Is(err, errs.ErrConnection) {
			s.markOffline(err)
		} else {
			s.setLastError(err)
		}

		log.Error().Err(err).Str("path", cmd.Path).Msg("execute: retry failed")
		return s.defaultReply(cmd, err), nil
	}

	s.commit(cmd, reply)
	return reply, nil
}

func (s *Service) run(cmd entities.Command, timeout time.Duration) (entities.Reply, error) {
	return withTimeout(cmd.Path, s.commandTimeout(cmd, timeout), func() (entities.Reply, error) {
		return s.transport.RunQuery(cmd.Path, cmd.Params)
	})
}

// commandTimeout picks the call option, then the command, then the device setting.
func (s *Service) commandTimeout(cmd entities.Command, timeout time.Duration) time.Duration {
	switch {
	case timeout > 0:
		return timeout
	case cmd.Timeout > 0:
		return cmd.Timeout
	case s.conn.config.Timeout > 0:
		return s.conn.config.Timeout
	default:
		return constants.DefaultCommandTimeout
	}
}

// commit caches read rows and invalidates the family after writes.
func (s *Service) commit(cmd entities.Command, reply entities.Reply) {
	if cmd.Cacheable() {
		if err := s.cache.Set(cmd, reply.Rows); err != nil {
			log.Warn().Err(err).Str("path", cmd.Path).Msg("commit: cache rows error")
		}
		return
	}

	if cmd.Kind() == entities.CommandKindRead {
		return
	}

	if err := s.cache.InvalidateFamily(cmd.Family()); err != nil {
		log.Warn().Err(err).Str("family", cmd.Family()).Msg("commit: invalidate cache error")
	}
}

// withTimeout races fn against a timer. fn keeps running after a timeout, its result is dropped.
func withTimeout(op string, timeout time.Duration, fn func() (entities.Reply, error)) (entities.Reply, error) {
	type result struct {
		reply entities.Reply
		err   error
	}

	resultChan := make(chan result, 1)
	go func() {
		reply, err := fn()
		resultChan <- result{reply: reply, err: err}
	}()

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case res := <-resultChan:
		if res.err == nil && res.reply.Rows == nil {
			res.reply.Rows = make([]entities.Row, 0)
		}
		return res.reply, res.err

	case <-timer.C:
		return entities.Reply{}, fmt.Errorf("%w: %s after %s", errs.ErrCommandTimeout, op, timeout)
	}
}

func commandOutcome(reply entities.Reply, err error) entities.CommandOutcome {
	switch {
	case err != nil:
		return entities.CommandOutcomeRejected
	case reply.Cached:
		return entities.CommandOutcomeCached
	case reply.Offline:
		return entities.CommandOutcomeOffline
	case reply.Degraded:
		return entities.CommandOutcomeDegraded
	default:
		return entities.CommandOutcomeOK
	}
}

type noopObserver struct{}

func (noopObserver) OnStateChanged(entities.ConnectionInfo) {}

func (noopObserver) OnCommand(entities.CommandEvent) {}

package routeros

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/rickicode/mikrotik-billing/internal/constants"
	"github.com/rickicode/mikrotik-billing/internal/entities"
	"github.com/rickicode/mikrotik-billing/internal/errs"
)

// connection is the device session state. Only the worker goroutine touches it.
type connection struct {
	config entities.RouterConfig
	loaded bool

	state           entities.ConnectionState
	offline         bool
	attempts        int
	exhausted       bool
	lastError       error
	lastConnectedAt *time.Time

	stopRetry func() bool
	retryGen  uint64
}

func (c *connection) retryPending() bool {
	return c.stopRetry != nil
}

func (c *connection) cause() error {
	if c.lastError != nil {
		return c.lastError
	}

	return errs.ErrNotConnected
}

// connect dials, authenticates and runs the liveness query.
func (s *Service) connect() (err error) {
	s.cancelRetry()

	if !s.conn.loaded {
		if err = s.loadConfig(); err != nil {
			s.setLastError(err)
			return fmt.Errorf("connect: %w", err)
		}
	}

	cfg := s.conn.config
	if err = s.validate.Struct(cfg); err != nil {
		err = fmt.Errorf("%w: %w", errs.ErrConfiguration, err)
		s.setLastError(err)
		return fmt.Errorf("connect: %w", err)
	}

	timeout := s.commandTimeout(entities.Command{}, 0)
	log.Info().Str("router", cfg.String()).Msg("connect: connecting to device")

	s.setState(entities.ConnectionStateConnecting)
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err = s.transport.Connect(ctx, cfg.Address()); err == nil {
		s.setState(entities.ConnectionStateAuthenticating)
		_, err = withTimeout("login", timeout, func() (entities.Reply, error) {
			return entities.Reply{}, s.transport.Login(cfg.Username, cfg.Password)
		})
	}

	if err == nil {
		_, err = withTimeout(constants.PathIdentityPrint, timeout, func() (entities.Reply, error) {
			return s.transport.RunQuery(constants.PathIdentityPrint, nil)
		})
	}

	if err != nil {
		return s.connectFailed(err)
	}

	now := s.now()
	s.conn.state = entities.ConnectionStateConnected
	s.conn.offline = false
	s.conn.attempts = 0
	s.conn.exhausted = false
	s.conn.lastError = nil
	s.conn.lastConnectedAt = &now
	s.publishInfo()

	log.Info().Str("router", cfg.String()).Msg("connect: device connected")
	return nil
}

func (s *Service) connectFailed(cause error) (err error) {
	if closeErr := s.transport.Close(); closeErr != nil {
		log.Debug().Err(closeErr).Msg("connectFailed: close transport error")
	}

	cause = wrapClass(cause)
	s.conn.state = entities.ConnectionStateDisconnected
	s.conn.lastError = cause

	switch Classify(cause) {
	case errs.ErrConnection, errs.ErrAuthentication:
		// recovery is driven by health checks or a config reload
		s.conn.offline = true
		s.publishInfo()

		log.Error().Err(cause).Msg("connectFailed: device offline")
		return fmt.Errorf("connect: %w", cause)
	}

	s.conn.attempts++
	if s.conn.attempts > s.maxAttempts {
		s.conn.exhausted = true
		s.publishInfo()

		log.Error().Err(cause).Int("attempts", s.conn.attempts-1).Msg("connectFailed: giving up reconnecting")
		return fmt.Errorf("connect: %w: %w", errs.ErrReconnectExhausted, cause)
	}

	delay := s.backoffDelay(s.conn.attempts)
	s.scheduleRetry(delay)
	s.publishInfo()

	log.Warn().
		Err(cause).
		Int("attempt", s.conn.attempts).
		Dur("retryIn", delay).
		Msg("connectFailed: reconnect scheduled")

	return fmt.Errorf("connect: %w", cause)
}

// backoffDelay returns baseDelay * 2^(attempt-1).
func (s *Service) backoffDelay(attempt int) time.Duration {
	return s.baseDelay << (attempt - 1)
}

func (s *Service) scheduleRetry(delay time.Duration) {
	s.conn.retryGen++
	gen := s.conn.retryGen

	s.conn.stopRetry = s.schedule(delay, func() {
		retry := func() {
			if gen != s.conn.retryGen {
				return
			}

			s.conn.stopRetry = nil
			if s.conn.offline || s.conn.state == entities.ConnectionStateConnected {
				return
			}

			if err := s.connect(); err != nil {
				log.Debug().Err(err).Msg("scheduleRetry: reconnect failed")
			}
		}

		select {
		case s.jobs <- retry:
		case <-s.done:
		}
	})
}

func (s *Service) cancelRetry() {
	if s.conn.stopRetry != nil {
		s.conn.stopRetry()
		s.conn.stopRetry = nil
	}

	s.conn.retryGen++
}

func (s *Service) resetBackoff() {
	s.cancelRetry()
	s.conn.attempts = 0
	s.conn.exhausted = false
}

// ensureConnected connects lazily unless a retry is pending or attempts are used up.
func (s *Service) ensureConnected() (err error) {
	switch {
	case s.conn.exhausted:
		return fmt.Errorf("%w: %w", errs.ErrReconnectExhausted, s.conn.cause())
	case s.conn.retryPending():
		return fmt.Errorf("%w: reconnect pending: %w", errs.ErrNotConnected, s.conn.cause())
	}

	return s.connect()
}

// reconnect forces a new session.
func (s *Service) reconnect() (err error) {
	if closeErr := s.transport.Close(); closeErr != nil {
		log.Debug().Err(closeErr).Msg("reconnect: close transport error")
	}

	s.setState(entities.ConnectionStateDisconnected)
	return s.connect()
}

func (s *Service) disconnect() {
	s.cancelRetry()

	if err := s.transport.Close(); err != nil {
		log.Warn().Err(err).Msg("disconnect: close transport error")
	}

	s.setState(entities.ConnectionStateDisconnected)
}

func (s *Service) markOffline(cause error) {
	s.cancelRetry()

	if err := s.transport.Close(); err != nil {
		log.Debug().Err(err).Msg("markOffline: close transport error")
	}

	s.conn.offline = true
	s.conn.lastError = cause
	s.conn.state = entities.ConnectionStateDisconnected
	s.publishInfo()
}

func (s *Service) loadConfig() (err error) {
	cfg, err := s.configSource.Load()
	if err != nil {
		return fmt.Errorf("%w: %w", errs.ErrConfiguration, err)
	}

	s.conn.config = cfg
	s.conn.loaded = true
	return nil
}

func (s *Service) reloadConfig() (err error) {
	cfg, err := s.configSource.Load()
	if err != nil {
		return fmt.Errorf("reloadConfig: %w: %w", errs.ErrConfiguration, err)
	}

	if s.conn.loaded && s.conn.config.SameTarget(cfg) {
		s.conn.config.Timeout = cfg.Timeout
		return nil
	}

	log.Info().
		Str("from", s.conn.config.String()).
		Str("to", cfg.String()).
		Msg("reloadConfig: device settings changed, reconnecting")

	s.disconnect()
	if err = s.cache.Clear(); err != nil {
		log.Warn().Err(err).Msg("reloadConfig: clear cache error")
	}

	s.conn.config = cfg
	s.conn.loaded = true
	s.conn.offline = false
	s.conn.lastError = nil
	s.resetBackoff()

	if err = s.connect(); err != nil {
		return fmt.Errorf("reloadConfig: %w", err)
	}

	return nil
}

func (s *Service) healthCheck() entities.HealthStatus {
	if s.conn.offline || s.conn.state != entities.ConnectionStateConnected {
		s.resetBackoff()
		if err := s.connect(); err != nil {
			return entities.HealthStatus{
				Healthy: false,
				Message: err.Error(),
			}
		}

		return entities.HealthStatus{
			Healthy: true,
			Message: "reconnected",
		}
	}

	identity := entities.NewCommand(constants.PathIdentityPrint)
	if _, err := s.run(identity, 0); err != nil {
		err = wrapClass(err)
		if errors.Is(err, errs.ErrConnection) {
			s.markOffline(err)
		} else {
			s.setLastError(err)
		}

		return entities.HealthStatus{
			Healthy: false,
			Message: err.Error(),
		}
	}

	return entities.HealthStatus{
		Healthy: true,
		Message: "ok",
	}
}

func (s *Service) setState(state entities.ConnectionState) {
	s.conn.state = state
	s.publishInfo()
}

func (s *Service) setLastError(err error) {
	s.conn.lastError = err
	s.publishInfo()
}

// publishInfo refreshes the snapshot and notifies the observer on state changes.
func (s *Service) publishInfo() {
	info := entities.ConnectionInfo{
		Connected:         s.conn.state == entities.ConnectionStateConnected,
		IsOffline:         s.conn.offline,
		State:             s.conn.state,
		Host:              s.conn.config.Host,
		Port:              s.conn.config.Port,
		ReconnectAttempts: s.conn.attempts,
	}

	if s.conn.lastConnectedAt != nil {
		lastConnectedAt := *s.conn.lastConnectedAt
		info.LastConnectedAt = &lastConnectedAt
	}

	if s.conn.lastError != nil {
		info.LastError = s.conn.lastError.Error()
	}

	s.infoMu.Lock()
	prev := s.info
	s.info = info
	s.infoMu.Unlock()

	if prev.State != info.State || prev.IsOffline != info.IsOffline {
		s.observer.OnStateChanged(info)
	}
}

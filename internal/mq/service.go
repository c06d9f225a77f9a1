package mq

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
)

const (
	reconnectWait   = 2 * time.Second
	requestRetryGap = 500 * time.Millisecond
)

var (
	ErrNotConnected   = errors.New("mq is not connected")
	ErrUnknownHandler = errors.New("unknown handler")
)

type Handler func(m *nats.Msg) (resp any)

type requestOptions struct {
	retryAmount int
}

type RequestOption func(o *requestOptions)

// NewRetryAmountOption retries a failed request up to amount more times.
func NewRetryAmountOption(amount int) RequestOption {
	return func(o *requestOptions) {
		o.retryAmount = max(amount, 0)
	}
}

// Service is the NATS request/reply surface. Handlers are registered once and
// subscribed on demand under prefix.name.
type Service struct {
	url    string
	prefix string

	mu       sync.Mutex
	conn     *nats.Conn
	handlers map[string]Handler
	subs     map[string]*nats.Subscription
}

func NewService(url, prefix string) *Service {
	return &Service{
		url:      url,
		prefix:   prefix,
		handlers: make(map[string]Handler),
		subs:     make(map[string]*nats.Subscription),
	}
}

// Subject returns the full subject of a handler or event name.
func (s *Service) Subject(name string) string {
	if lo.IsEmpty(s.prefix) {
		return name
	}

	return s.prefix + "." + name
}

func (s *Service) RegisterHandlers(handlers map[string]Handler) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for name, handler := range handlers {
		s.handlers[name] = handler
	}
}

func (s *Service) Connect() (err error) {
	conn, err := nats.Connect(s.url,
		nats.Name("mikrotik-billing"),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(reconnectWait),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			log.Warn().Err(err).Msg("Connect: mq disconnected")
		}),
		nats.ReconnectHandler(func(conn *nats.Conn) {
			log.Info().Str("url", conn.ConnectedUrl()).Msg("Connect: mq reconnected")
		}),
	)
	if err != nil {
		return fmt.Errorf("Connect: %w", err)
	}

	s.mu.Lock()
	s.conn = conn
	s.mu.Unlock()

	return nil
}

// ActivateHandler subscribes a registered handler.
func (s *Service) ActivateHandler(name string) (err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.conn == nil {
		return fmt.Errorf("ActivateHandler: %w", ErrNotConnected)
	}

	handler, ok := s.handlers[name]
	if !ok {
		return fmt.Errorf("ActivateHandler: %w: %s", ErrUnknownHandler, name)
	}

	if _, active := s.subs[name]; active {
		return nil
	}

	subject := s.Subject(name)
	sub, err := s.conn.Subscribe(subject, func(m *nats.Msg) {
		if err := m.Respond(Dispatch(handler, m)); err != nil {
			log.Error().Err(err).Str("subject", subject).Msg("ActivateHandler: respond error")
		}
	})
	if err != nil {
		return fmt.Errorf("ActivateHandler: %w", err)
	}

	s.subs[name] = sub
	log.Debug().Str("subject", subject).Msg("ActivateHandler: handler activated")

	return nil
}

// ActivateAll subscribes every registered handler.
func (s *Service) ActivateAll() (err error) {
	s.mu.Lock()
	names := lo.Keys(s.handlers)
	s.mu.Unlock()

	for _, name := range names {
		if err = s.ActivateHandler(name); err != nil {
			return fmt.Errorf("ActivateAll: %w", err)
		}
	}

	return nil
}

func (s *Service) DeactivateHandler(name string) (err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sub, ok := s.subs[name]
	if !ok {
		return nil
	}

	delete(s.subs, name)
	if err = sub.Unsubscribe(); err != nil {
		return fmt.Errorf("DeactivateHandler: %w", err)
	}

	return nil
}

// Publish sends a JSON event without waiting for a reply.
func (s *Service) Publish(subject string, message any) (err error) {
	conn, err := s.connection()
	if err != nil {
		return fmt.Errorf("Publish: %w", err)
	}

	data, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("Publish: %w", err)
	}

	if err = conn.Publish(subject, data); err != nil {
		return fmt.Errorf("Publish: %w", err)
	}

	return nil
}

// Request sends a JSON request and waits for the reply.
func (s *Service) Request(subject string, message any, timeout time.Duration, optionFuncs ...RequestOption) (response *nats.Msg, err error) {
	conn, err := s.connection()
	if err != nil {
		return nil, fmt.Errorf("Request: %w", err)
	}

	var options requestOptions
	for _, fn := range optionFuncs {
		fn(&options)
	}

	var data []byte
	if message != nil {
		if data, err = json.Marshal(message); err != nil {
			return nil, fmt.Errorf("Request: %w", err)
		}
	}

	for attempt := 0; ; attempt++ {
		if response, err = conn.Request(subject, data, timeout); err == nil {
			return response, nil
		}

		if attempt >= options.retryAmount {
			return nil, fmt.Errorf("Request: %s: %w", subject, err)
		}

		log.Debug().Err(err).Str("subject", subject).Int("attempt", attempt+1).Msg("Request: retrying")
		time.Sleep(requestRetryGap)
	}
}

func (s *Service) Close() (err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.conn == nil {
		return nil
	}

	s.subs = make(map[string]*nats.Subscription)
	err = s.conn.Drain()
	s.conn = nil
	if err != nil {
		return fmt.Errorf("Close: %w", err)
	}

	return nil
}

func (s *Service) connection() (*nats.Conn, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.conn == nil {
		return nil, ErrNotConnected
	}

	return s.conn, nil
}

// Dispatch runs a handler and encodes its reply. A panicking handler or an
// unencodable reply becomes an internal error response.
func Dispatch(handler Handler, m *nats.Msg) (data []byte) {
	var resp any
	func() {
		defer func() {
			if r := recover(); r != nil {
				log.Error().Any("panic", r).Str("subject", m.Subject).Msg("Dispatch: handler panic")
				resp = NewInternalErrorResponse(fmt.Sprintf("handler panic: %v", r))
			}
		}()
		resp = handler(m)
	}()

	data, err := json.Marshal(resp)
	if err != nil {
		log.Error().Err(err).Str("subject", m.Subject).Msg("Dispatch: encode response error")
		data, _ = json.Marshal(NewInternalErrorResponse(err.Error()))
	}

	return data
}

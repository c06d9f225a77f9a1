package routeros_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"

	"github.com/rickicode/mikrotik-billing/internal/domains/respcache"
	"github.com/rickicode/mikrotik-billing/internal/domains/routeros"
	"github.com/rickicode/mikrotik-billing/internal/domains/routeros/rostest"
	"github.com/rickicode/mikrotik-billing/internal/domains/routeros/routeros_mocks"
	"github.com/rickicode/mikrotik-billing/internal/entities"
)

var testConfig = entities.RouterConfig{
	Host:     "10.0.0.1",
	Port:     8728,
	Username: "admin",
	Password: "secret",
	Timeout:  time.Second,
}

type clientFields struct {
	transport *rostest.Transport
	config    *routeros_mocks.MockIConfigSource
	scheduler *fakeScheduler
	clock     *fakeClock
}

func newClientFields(t *testing.T) *clientFields {
	return &clientFields{
		transport: rostest.NewTransport(),
		config:    routeros_mocks.NewMockIConfigSource(t),
		scheduler: &fakeScheduler{},
		clock:     &fakeClock{now: time.Unix(1_700_000_000, 0)},
	}
}

// startClient runs a client with the fake transport. Without prepare the config source
// always returns testConfig.
func startClient(t *testing.T, prepare func(f *clientFields), opts ...routeros.Option) (*routeros.Service, *clientFields) {
	t.Helper()

	f := newClientFields(t)
	if prepare != nil {
		prepare(f)
	} else {
		f.config.EXPECT().Load().Return(testConfig, nil).Maybe()
	}

	db, err := respcache.OpenInMemory()
	require.NoError(t, err)

	cache := respcache.NewService(db, respcache.WithClock(f.clock.Now))
	opts = append([]routeros.Option{
		routeros.WithScheduler(f.scheduler.Schedule),
		routeros.WithIDGenerator(func() string { return "id-1" }),
	}, opts...)

	client := routeros.NewService(f.transport, f.config, cache, validator.New(), opts...)

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

	return client, f
}

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// fakeScheduler records delays and lets the test fire retries by hand.
type fakeScheduler struct {
	mu     sync.Mutex
	delays []time.Duration
	fns    []func()
}

func (s *fakeScheduler) Schedule(d time.Duration, fn func()) (stop func() bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.delays = append(s.delays, d)
	s.fns = append(s.fns, fn)
	return func() bool { return true }
}

func (s *fakeScheduler) Delays() []time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]time.Duration(nil), s.delays...)
}

func (s *fakeScheduler) Fire(i int) {
	s.mu.Lock()
	fn := s.fns[i]
	s.mu.Unlock()

	fn()
}

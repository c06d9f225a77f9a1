package routeros

import (
	"time"

	"github.com/google/uuid"

	"github.com/rickicode/mikrotik-billing/internal/constants"
)

type (
	// Option configures the client.
	Option func(s *Service)

	// ExecOption configures a single Execute call.
	ExecOption func(o *execOptions)

	// Scheduler runs fn once after d. The returned func cancels it.
	Scheduler func(d time.Duration, fn func()) (stop func() bool)

	execOptions struct {
		useCache bool
		timeout  time.Duration
	}
)

// WithoutCache bypasses the response cache for a read command.
func WithoutCache() ExecOption {
	return func(o *execOptions) {
		o.useCache = false
	}
}

// WithTimeout overrides the command timeout.
func WithTimeout(timeout time.Duration) ExecOption {
	return func(o *execOptions) {
		if timeout > 0 {
			o.timeout = timeout
		}
	}
}

func newExecOptions(opts []ExecOption) execOptions {
	o := execOptions{
		useCache: true,
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

func WithObserver(observer IObserver) Option {
	return func(s *Service) {
		if observer != nil {
			s.observer = observer
		}
	}
}

func WithBackoff(baseDelay time.Duration, maxAttempts int) Option {
	return func(s *Service) {
		if baseDelay > 0 {
			s.baseDelay = baseDelay
		}
		if maxAttempts > 0 {
			s.maxAttempts = maxAttempts
		}
	}
}

func WithScheduler(scheduler Scheduler) Option {
	return func(s *Service) {
		s.schedule = scheduler
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func WithIDGenerator(newID func() string) Option {
	return func(s *Service) {
		s.newID = newID
	}
}

func WithQueueSize(size int) Option {
	return func(s *Service) {
		if size > 0 {
			s.jobs = make(chan job, size)
		}
	}
}

func timerScheduler(d time.Duration, fn func()) (stop func() bool) {
	return time.AfterFunc(d, fn).Stop
}

func defaultOptions(s *Service) {
	s.baseDelay = constants.DefaultReconnectDelay
	s.maxAttempts = constants.DefaultMaxReconnects
	s.schedule = timerScheduler
	s.newID = uuid.NewString
	s.jobs = make(chan job, constants.DefaultJobQueueSize)
}

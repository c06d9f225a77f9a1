package logger

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// SetLogLevel sets the global zerolog level by name.
func SetLogLevel(level string) (err error) {
	parsed, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return fmt.Errorf("SetLogLevel: %w", err)
	}

	if parsed == zerolog.NoLevel {
		parsed = zerolog.InfoLevel
	}

	zerolog.SetGlobalLevel(parsed)
	return nil
}

// BadgerLogger routes badger messages to zerolog.
type BadgerLogger struct {
	logger zerolog.Logger
}

func NewBadgerLogger(component string) *BadgerLogger {
	return &BadgerLogger{
		logger: log.With().Str("component", component).Logger(),
	}
}

func (l *BadgerLogger) Errorf(format string, args ...any) {
	l.logger.Error().Msg(strings.TrimSpace(fmt.Sprintf(format, args...)))
}

func (l *BadgerLogger) Warningf(format string, args ...any) {
	l.logger.Warn().Msg(strings.TrimSpace(fmt.Sprintf(format, args...)))
}

func (l *BadgerLogger) Infof(format string, args ...any) {
	l.logger.Debug().Msg(strings.TrimSpace(fmt.Sprintf(format, args...)))
}

func (l *BadgerLogger) Debugf(format string, args ...any) {
	l.logger.Trace().Msg(strings.TrimSpace(fmt.Sprintf(format, args...)))
}

// GormWriter routes gorm messages to zerolog.
type GormWriter struct {
	logger zerolog.Logger
}

func NewGormWriter() *GormWriter {
	return &GormWriter{
		logger: log.With().Str("component", "gorm").Logger(),
	}
}

func (w *GormWriter) Printf(format string, args ...any) {
	w.logger.Warn().Msg(strings.TrimSpace(fmt.Sprintf(format, args...)))
}

// CronLogger routes cron messages to zerolog. It satisfies cron.Logger.
type CronLogger struct {
	logger zerolog.Logger
}

func NewCronLogger() *CronLogger {
	return &CronLogger{
		logger: log.With().Str("component", "cron").Logger(),
	}
}

func (l *CronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug().Fields(keysAndValues).Msg(msg)
}

func (l *CronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Error().Err(err).Fields(keysAndValues).Msg(msg)
}

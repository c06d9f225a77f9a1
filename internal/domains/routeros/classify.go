package routeros

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
	"syscall"

	"github.com/go-routeros/routeros/v3"
	"github.com/samber/lo"

	"github.com/rickicode/mikrotik-billing/internal/errs"
)

// message fragments used when a transport error carries no type information.
var (
	connectionPatterns = []string{
		"timeout",
		"timed out",
		"connection refused",
		"no route to host",
		"host is unreachable",
		"host unreachable",
		"network is unreachable",
		"connection reset",
		"broken pipe",
		"use of closed network connection",
		"no such host",
	}

	authPatterns = []string{
		"invalid user name or password",
		"cannot log in",
		"login failure",
		"not enough permissions",
		"permission denied",
	}

	commandPatterns = []string{
		"no such command",
		"no such item",
		"unknown parameter",
		"expected end of command",
		"input does not match",
		"invalid value",
		"already have",
		"failure:",
	}
)

var connectionErrnos = []syscall.Errno{
	syscall.ECONNREFUSED,
	syscall.ECONNRESET,
	syscall.ECONNABORTED,
	syscall.EHOSTUNREACH,
	syscall.ENETUNREACH,
	syscall.ETIMEDOUT,
	syscall.EPIPE,
}

// Classify returns the error class: errs.ErrConnection, errs.ErrAuthentication,
// errs.ErrCommand, errs.ErrConfiguration, or nil for transient errors worth a retry.
func Classify(err error) error {
	if err == nil {
		return nil
	}

	for _, class := range []error{errs.ErrConfiguration, errs.ErrAuthentication, errs.ErrConnection, errs.ErrCommand} {
		if errors.Is(err, class) {
			return class
		}
	}

	if isConnectionError(err) {
		return errs.ErrConnection
	}

	var devErr *routeros.DeviceError
	if errors.As(err, &devErr) {
		if matchAny(deviceMessage(devErr), authPatterns) {
			return errs.ErrAuthentication
		}

		return errs.ErrCommand
	}

	message := strings.ToLower(err.Error())
	switch {
	case matchAny(message, connectionPatterns):
		return errs.ErrConnection
	case matchAny(message, authPatterns):
		return errs.ErrAuthentication
	case matchAny(message, commandPatterns):
		return errs.ErrCommand
	default:
		return nil
	}
}

// wrapClass tags err with its class so errors.Is works on the result.
func wrapClass(err error) error {
	class := Classify(err)
	if class == nil || errors.Is(err, class) {
		return err
	}

	return fmt.Errorf("%w: %w", class, err)
}

func isConnectionError(err error) bool {
	if errors.Is(err, errs.ErrCommandTimeout) ||
		errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, net.ErrClosed) {
		return true
	}

	for _, errno := range connectionErrnos {
		if errors.Is(err, errno) {
			return true
		}
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return true
	}

	var opErr *net.OpError
	return errors.As(err, &opErr) && opErr.Op == "dial"
}

func deviceMessage(devErr *routeros.DeviceError) string {
	if devErr.Sentence == nil {
		return ""
	}

	return strings.ToLower(devErr.Sentence.Map["message"])
}

func matchAny(message string, patterns []string) bool {
	return lo.SomeBy(patterns, func(pattern string) bool {
		return strings.Contains(message, pattern)
	})
}

package routeros_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"syscall"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rickicode/mikrotik-billing/internal/domains/routeros"
	"github.com/rickicode/mikrotik-billing/internal/domains/routeros/rostest"
	"github.com/rickicode/mikrotik-billing/internal/errs"
)

func Test_Classify(t *testing.T) {
	testTable := []struct {
		name     string
		err      error
		expected error
	}{
		{name: "nil", err: nil, expected: nil},
		{name: "refused", err: fmt.Errorf("dial: %w", syscall.ECONNREFUSED), expected: errs.ErrConnection},
		{name: "reset", err: &net.OpError{Op: "read", Err: syscall.ECONNRESET}, expected: errs.ErrConnection},
		{name: "unreachable", err: syscall.EHOSTUNREACH, expected: errs.ErrConnection},
		{name: "dial error", err: &net.OpError{Op: "dial", Err: errors.New("boom")}, expected: errs.ErrConnection},
		{name: "deadline", err: context.DeadlineExceeded, expected: errs.ErrConnection},
		{name: "command timeout", err: errs.ErrCommandTimeout, expected: errs.ErrConnection},
		{name: "closed", err: net.ErrClosed, expected: errs.ErrConnection},
		{name: "device auth", err: rostest.DeviceError("invalid user name or password (6)"), expected: errs.ErrAuthentication},
		{name: "device permission", err: rostest.DeviceError("not enough permissions (9)"), expected: errs.ErrAuthentication},
		{name: "device rejection", err: rostest.DeviceError("no such command"), expected: errs.ErrCommand},
		{name: "tagged", err: fmt.Errorf("%w: bad", errs.ErrConfiguration), expected: errs.ErrConfiguration},
		{name: "message connection", err: errors.New("i/o timeout while reading"), expected: errs.ErrConnection},
		{name: "message auth", err: errors.New("cannot log in"), expected: errs.ErrAuthentication},
		{name: "message command", err: errors.New("failure: item already exists"), expected: errs.ErrCommand},
		{name: "eof is transient", err: io.EOF, expected: nil},
		{name: "unknown", err: errors.New("unexpected word !fatal"), expected: nil},
	}

	for _, tt := range testTable {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, routeros.Classify(tt.err))
		})
	}
}

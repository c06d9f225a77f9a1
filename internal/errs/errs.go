package errs

import (
	"errors"
)

// device error classes.
var (
	ErrConfiguration  = errors.New("configuration error")
	ErrConnection     = errors.New("connection error")
	ErrAuthentication = errors.New("authentication error")
	ErrCommand        = errors.New("command error")
	ErrValidation     = errors.New("validation error")
)

var (
	ErrCommandTimeout     = errors.New("command timeout")
	ErrReconnectExhausted = errors.New("reconnect attempts exhausted")
	ErrClientStopped      = errors.New("device client stopped")
	ErrNotConnected       = errors.New("not connected")
)

var (
	ErrSyncInProgress  = errors.New("sync already in progress")
	ErrProfileNotFound = errors.New("profile not found")
	ErrUserNotFound    = errors.New("user not found on device")
)

var (
	ErrAPIError = errors.New("api error")
)

package entities

import (
	"fmt"
	"net"
	"strconv"
	"time"
)

type ConnectionState string

const (
	ConnectionStateDisconnected   ConnectionState = "disconnected"
	ConnectionStateConnecting     ConnectionState = "connecting"
	ConnectionStateAuthenticating ConnectionState = "authenticating"
	ConnectionStateConnected      ConnectionState = "connected"
)

func (s ConnectionState) String() string {
	return string(s)
}

// RouterConfig holds the connection settings of a single device.
type RouterConfig struct {
	Host     string        `json:"host" validate:"required"`
	Port     int           `json:"port" validate:"required,min=1,max=65535"`
	Username string        `json:"username" validate:"required"`
	Password string        `json:"-"`
	Timeout  time.Duration `json:"timeout"`
}

func (c RouterConfig) Address() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// SameTarget reports whether both configs point to the same device with the same credentials.
func (c RouterConfig) SameTarget(other RouterConfig) bool {
	return c.Host == other.Host &&
		c.Port == other.Port &&
		c.Username == other.Username &&
		c.Password == other.Password
}

func (c RouterConfig) String() string {
	return fmt.Sprintf("%s@%s", c.Username, c.Address())
}

type ConnectionInfo struct {
	Connected         bool            `json:"connected"`
	IsOffline         bool            `json:"isOffline"`
	State             ConnectionState `json:"state"`
	Host              string          `json:"host"`
	Port              int             `json:"port"`
	ReconnectAttempts int             `json:"reconnectAttempts"`
	LastConnectedAt   *time.Time      `json:"lastConnectedAt,omitempty"`
	LastError         string          `json:"lastError,omitempty"`
}

type HealthStatus struct {
	Healthy bool   `json:"healthy"`
	Message string `json:"message"`
}

package constants

import (
	"time"
)

const (
	DefaultRouterPort      = 8728
	DefaultCommandTimeout  = 10 * time.Second
	DefaultReconnectDelay  = 5 * time.Second
	DefaultMaxReconnects   = 5
	DefaultCacheTTL        = 30 * time.Second
	DefaultJobQueueSize    = 1024
	DefaultSyncSchedule    = "@every 1m"
	DefaultHealthSchedule  = "@every 30s"
	DefaultMetricsAddr     = ":9108"
	DefaultMQSubjectPrefix = "billing.router"
)

const (
	FilePerm    = 0755
	LogFilePerm = 0644
)

const (
	OfflineIDPrefix = "offline-"
)

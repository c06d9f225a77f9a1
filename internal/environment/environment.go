package environment

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
	"github.com/spf13/viper"

	"github.com/rickicode/mikrotik-billing/internal/constants"
	"github.com/rickicode/mikrotik-billing/internal/entities"
	"github.com/rickicode/mikrotik-billing/internal/errs"
)

const envPrefix = "BILLING"

type Environment struct {
	Agent
	Router   Router
	Database Database
	MQ       MQ
	Sync     Sync
	Metrics  Metrics

	v *viper.Viper
}

type Agent struct {
	ConfigFile  string
	LogfilePath string
	LogLevel    string
}

type Router struct {
	entities.RouterConfig
	BaseDelay   time.Duration
	MaxAttempts int
	CacheTTL    time.Duration
	QueueSize   int
}

type Database struct {
	Driver string `validate:"required,oneof=postgres mysql"`
	DSN    string `validate:"required"`
}

type MQ struct {
	URL           string `validate:"required"`
	SubjectPrefix string `validate:"required"`
}

type Sync struct {
	Schedule       string
	HealthSchedule string
}

type Metrics struct {
	Addr string
}

// New reads the environment. Variables are prefixed with BILLING_, nested keys use
// underscores (router.host is BILLING_ROUTER_HOST). BILLING_CONFIG_FILE points to an
// optional config file with the same keys.
func New() (e Environment, err error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	e.v = v
	e.Agent.ConfigFile = v.GetString("config_file")
	if !lo.IsEmpty(e.Agent.ConfigFile) {
		v.SetConfigFile(e.Agent.ConfigFile)
		if err = v.ReadInConfig(); err != nil {
			return e, fmt.Errorf("New: read config %s: %w: %w", e.Agent.ConfigFile, errs.ErrConfiguration, err)
		}
	}

	e.Agent.LogfilePath = v.GetString("log.file")
	e.Agent.LogLevel = v.GetString("log.level")

	e.Router = readRouter(v)

	e.Database.Driver = v.GetString("db.driver")
	e.Database.DSN = v.GetString("db.dsn")

	e.MQ.URL = v.GetString("nats.url")
	e.MQ.SubjectPrefix = v.GetString("nats.subject_prefix")

	e.Sync.Schedule = v.GetString("sync.schedule")
	e.Sync.HealthSchedule = v.GetString("sync.health_schedule")

	e.Metrics.Addr = v.GetString("metrics.addr")

	return e, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.file", constants.DefaultLogfilePath)
	v.SetDefault("log.level", "info")
	v.SetDefault("router.port", constants.DefaultRouterPort)
	v.SetDefault("router.timeout", constants.DefaultCommandTimeout)
	v.SetDefault("router.base_delay", constants.DefaultReconnectDelay)
	v.SetDefault("router.max_attempts", constants.DefaultMaxReconnects)
	v.SetDefault("router.cache_ttl", constants.DefaultCacheTTL)
	v.SetDefault("router.queue_size", constants.DefaultJobQueueSize)
	v.SetDefault("db.driver", "postgres")
	v.SetDefault("nats.url", "nats://127.0.0.1:4222")
	v.SetDefault("nats.subject_prefix", constants.DefaultMQSubjectPrefix)
	v.SetDefault("sync.schedule", constants.DefaultSyncSchedule)
	v.SetDefault("sync.health_schedule", constants.DefaultHealthSchedule)
	v.SetDefault("metrics.addr", constants.DefaultMetricsAddr)
}

func readRouter(v *viper.Viper) (r Router) {
	r.Host = v.GetString("router.host")
	r.Port = v.GetInt("router.port")
	r.Username = v.GetString("router.username")
	r.Password = v.GetString("router.password")
	r.Timeout = v.GetDuration("router.timeout")
	r.BaseDelay = v.GetDuration("router.base_delay")
	r.MaxAttempts = v.GetInt("router.max_attempts")
	r.CacheTTL = v.GetDuration("router.cache_ttl")
	r.QueueSize = v.GetInt("router.queue_size")

	return r
}

func (e Agent) IsDebug() bool {
	return e.LogLevel == "debug"
}

// Validate checks the sections every deployment needs.
func (e Environment) Validate(validate *validator.Validate) (err error) {
	if err = validate.Struct(e.Router.RouterConfig); err != nil {
		err = fmt.Errorf("router: %w", err)
	}
	if dbErr := validate.Struct(e.Database); dbErr != nil {
		err = errors.Join(err, fmt.Errorf("database: %w", dbErr))
	}
	if mqErr := validate.Struct(e.MQ); mqErr != nil {
		err = errors.Join(err, fmt.Errorf("mq: %w", mqErr))
	}

	if err != nil {
		return fmt.Errorf("Validate: %w: %w", errs.ErrConfiguration, err)
	}

	return nil
}

// RouterSource returns the device settings source backed by this environment.
func (e Environment) RouterSource() *RouterSource {
	return &RouterSource{v: e.v}
}

// RouterSource reads device settings on every Load, so a reload picks up
// environment and config file changes made at runtime.
type RouterSource struct {
	v *viper.Viper
}

func (s *RouterSource) Load() (cfg entities.RouterConfig, err error) {
	if s.v == nil {
		return cfg, fmt.Errorf("Load: %w: environment is not initialized", errs.ErrConfiguration)
	}

	if !lo.IsEmpty(s.v.ConfigFileUsed()) {
		if err = s.v.ReadInConfig(); err != nil {
			return cfg, fmt.Errorf("Load: %w: %w", errs.ErrConfiguration, err)
		}
	}

	return readRouter(s.v).RouterConfig, nil
}

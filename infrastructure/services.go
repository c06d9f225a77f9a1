package infrastructure

import (
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"

	"github.com/rickicode/mikrotik-billing/internal/domains/billing"
	"github.com/rickicode/mikrotik-billing/internal/domains/reconcile"
	"github.com/rickicode/mikrotik-billing/internal/domains/respcache"
	"github.com/rickicode/mikrotik-billing/internal/domains/routeros"
	"github.com/rickicode/mikrotik-billing/internal/domains/scheduler"
	"github.com/rickicode/mikrotik-billing/internal/domains/telemetry"
	"github.com/rickicode/mikrotik-billing/internal/mq"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func (k *Kernel) InjectValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
	})

	return validate
}

var (
	mqService     *mq.Service
	mqServiceOnce sync.Once
)

func (k *Kernel) InjectMQService() *mq.Service {
	mqServiceOnce.Do(func() {
		mqService = mq.NewService(k.env.MQ.URL, k.env.MQ.SubjectPrefix)
	})

	return mqService
}

var (
	responseCache     *respcache.Service
	responseCacheOnce sync.Once
)

func (k *Kernel) InjectResponseCache() *respcache.Service {
	responseCacheOnce.Do(func() {
		responseCache = respcache.NewService(
			k.Cache,
			respcache.WithDefaultTTL(k.env.Router.CacheTTL),
		)
	})

	return responseCache
}

var (
	observer     telemetry.Multi
	observerOnce sync.Once
)

// InjectObserver returns the log, metrics and event observers fanned out together.
func (k *Kernel) InjectObserver() telemetry.Multi {
	observerOnce.Do(func() {
		observer = telemetry.Multi{
			telemetry.NewLogObserver(),
			telemetry.NewEventPublisher(k.InjectMQService()),
		}

		metrics, err := telemetry.NewMetricsObserver(k.Registry)
		if err != nil {
			log.Error().Err(err).Msg("InjectObserver: metrics disabled")
			return
		}
		observer = append(observer, metrics)
	})

	return observer
}

var (
	routerClient     *routeros.Service
	routerClientOnce sync.Once
)

func (k *Kernel) InjectRouterClient() *routeros.Service {
	routerClientOnce.Do(func() {
		routerClient = routeros.NewService(
			routeros.NewAPITransport(),
			k.env.RouterSource(),
			k.InjectResponseCache(),
			k.InjectValidator(),
			routeros.WithObserver(k.InjectObserver()),
			routeros.WithBackoff(k.env.Router.BaseDelay, k.env.Router.MaxAttempts),
			routeros.WithQueueSize(k.env.Router.QueueSize),
		)
	})

	return routerClient
}

var (
	billingStore     *billing.Store
	billingStoreOnce sync.Once
)

func (k *Kernel) InjectBillingStore() *billing.Store {
	billingStoreOnce.Do(func() {
		billingStore = billing.NewStore(k.DB)
	})

	return billingStore
}

var (
	syncService     *reconcile.Service
	syncServiceOnce sync.Once
)

func (k *Kernel) InjectSyncService() *reconcile.Service {
	syncServiceOnce.Do(func() {
		syncService = reconcile.NewService(
			k.InjectRouterClient(),
			k.InjectBillingStore(),
			reconcile.WithObserver(k.InjectObserver()),
		)
	})

	return syncService
}

var (
	schedulerService     *scheduler.Service
	schedulerServiceOnce sync.Once
)

func (k *Kernel) InjectSchedulerService() *scheduler.Service {
	schedulerServiceOnce.Do(func() {
		schedulerService = scheduler.NewService(
			k.env.Sync.Schedule,
			k.env.Sync.HealthSchedule,
			k.InjectSyncService(),
			k.InjectRouterClient(),
		)
	})

	return schedulerService
}

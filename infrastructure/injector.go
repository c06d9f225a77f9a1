package infrastructure

import (
	"context"
	"fmt"

	"github.com/dgraph-io/badger/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"gorm.io/gorm"

	"github.com/rickicode/mikrotik-billing/internal/domains/billing"
	"github.com/rickicode/mikrotik-billing/internal/domains/device"
	"github.com/rickicode/mikrotik-billing/internal/domains/respcache"
	"github.com/rickicode/mikrotik-billing/internal/environment"
)

type IInjector interface {
	// MQ handlers.

	InjectDeviceMQHandler() *device.MQHandler
}

type Kernel struct {
	env environment.Environment

	DB       *gorm.DB
	Cache    *badger.DB
	Registry *prometheus.Registry
}

// Inject opens the billing database and the response cache.
func Inject(ctx context.Context, env environment.Environment) (k *Kernel, err error) {
	k = &Kernel{
		env:      env,
		Registry: prometheus.NewRegistry(),
	}

	k.Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	if k.DB, err = billing.Open(env.Database.Driver, env.Database.DSN); err != nil {
		return k, fmt.Errorf("Inject: %w", err)
	}

	if err = billing.NewStore(k.DB).AutoMigrate(ctx); err != nil {
		return k, fmt.Errorf("Inject: %w", err)
	}

	if k.Cache, err = respcache.OpenInMemory(); err != nil {
		return k, fmt.Errorf("Inject: %w", err)
	}

	return k, nil
}

func (k *Kernel) InjectDeviceMQHandler() *device.MQHandler {
	return device.NewMQHandler(
		k.InjectRouterClient(),
		k.InjectSyncService(),
		k.InjectBillingStore(),
	)
}

// Close releases the database and the cache.
func (k *Kernel) Close() (err error) {
	if k.Cache != nil {
		if err = k.Cache.Close(); err != nil {
			return fmt.Errorf("Close: %w", err)
		}
	}

	if k.DB != nil {
		sqlDB, err := k.DB.DB()
		if err != nil {
			return fmt.Errorf("Close: %w", err)
		}

		if err = sqlDB.Close(); err != nil {
			return fmt.Errorf("Close: %w", err)
		}
	}

	return nil
}

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/rickicode/mikrotik-billing/infrastructure"
	"github.com/rickicode/mikrotik-billing/internal/constants"
	"github.com/rickicode/mikrotik-billing/internal/environment"
	"github.com/rickicode/mikrotik-billing/internal/logger"
)

const shutdownTimeout = 15 * time.Second

var (
	env            environment.Environment
	serviceVersion = "0.0.1"
)

func init() {
	var err error
	if env, err = environment.New(); err != nil {
		log.Fatal().Err(err).Msg("error loading environment")
	}
}

func main() {
	logWriter, err := setupRollingLogFile(env.Agent.LogfilePath)
	if err != nil {
		log.Fatal().Err(err).Msg("main")
	}

	log.Logger = log.Output(logWriter)
	if err = logger.SetLogLevel(env.Agent.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("main")
	}

	log.Info().
		Str("service version", serviceVersion).
		Str("router", env.Router.RouterConfig.String()).
		Str("database driver", env.Database.Driver).
		Str("log path", env.Agent.LogfilePath).
		Str("log level", env.Agent.LogLevel).
		Msg("main: app started")

	cancelCtx, cancelFunc := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancelFunc()

	kernel, err := infrastructure.Inject(cancelCtx, env)
	if err != nil {
		log.Fatal().Err(err).Msg("main")
	}

	if err = env.Validate(kernel.InjectValidator()); err != nil {
		log.Fatal().Err(err).Msg("main")
	}

	log.Info().Msg("main: start initializing app services...")
	metricsServer, err := initServices(cancelCtx, kernel)
	if err != nil {
		log.Fatal().Err(err).Msg("main")
	}
	log.Info().Msg("main: app services initialized")

	<-cancelCtx.Done()

	log.Info().Msg("main: stopping app...")
	shutdownServices(kernel, metricsServer)
	log.Info().Msg("main: app gracefully stopped")
}

func initServices(ctx context.Context, kernel *infrastructure.Kernel) (metricsServer *http.Server, err error) {
	// device client worker
	go kernel.InjectRouterClient().Run(ctx)

	// connect to message broker
	log.Info().Msg("initServices: connecting to MQ broker...")
	mqService := kernel.InjectMQService()
	mqService.RegisterHandlers(getMQRoutes(kernel))
	if err = mqService.Connect(); err != nil {
		return nil, fmt.Errorf("initServices: connection to message broker failed: %w", err)
	}

	if err = mqService.ActivateAll(); err != nil {
		return nil, fmt.Errorf("initServices: %w", err)
	}
	log.Info().Msg("initServices: connected to MQ broker")

	// first connection, an offline device is retried by the health job
	if err = kernel.InjectRouterClient().Connect(ctx); err != nil {
		log.Error().Err(err).Msg("initServices: device is not reachable, running offline")
	}

	log.Info().Msg("initServices: starting scheduler...")
	if err = kernel.InjectSchedulerService().Start(); err != nil {
		return nil, fmt.Errorf("initServices: %w", err)
	}

	metricsServer = startMetricsServer(kernel)

	return metricsServer, nil
}

func startMetricsServer(kernel *infrastructure.Kernel) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(kernel.Registry, promhttp.HandlerOpts{}))

	server := &http.Server{
		Addr:              env.Metrics.Addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info().Str("addr", server.Addr).Msg("startMetricsServer: serving metrics")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("startMetricsServer: metrics server stopped")
		}
	}()

	return server
}

func shutdownServices(kernel *infrastructure.Kernel, metricsServer *http.Server) {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	kernel.InjectSchedulerService().Stop(ctx)

	if err := metricsServer.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("shutdownServices: metrics server shutdown error")
	}

	if err := kernel.InjectMQService().Close(); err != nil {
		log.Error().Err(err).Msg("shutdownServices: close MQ error")
	}

	if err := kernel.InjectRouterClient().Disconnect(ctx); err != nil {
		log.Error().Err(err).Msg("shutdownServices: disconnect device error")
	}

	if err := kernel.Close(); err != nil {
		log.Error().Err(err).Msg("shutdownServices: close storage error")
	}
}

func setupRollingLogFile(filename string) (logWriter *lumberjack.Logger, err error) {
	// create log dir if not exists
	if err = os.MkdirAll(filepath.Dir(filename), constants.FilePerm); err != nil {
		return logWriter, fmt.Errorf("setupRollingLogFile: %w", err)
	}

	if _, statErr := os.Stat(filename); statErr != nil {
		if !os.IsNotExist(statErr) {
			return logWriter, fmt.Errorf("setupRollingLogFile: %w", statErr)
		}

		// create new log file
		logFile, err := os.OpenFile(filename, os.O_CREATE, constants.LogFilePerm)
		if err != nil {
			return logWriter, fmt.Errorf("setupRollingLogFile: %w", err)
		}
		defer logFile.Close()
	}

	return &lumberjack.Logger{
		Filename:   filename,
		MaxSize:    15,   // megabytes per log file
		MaxAge:     30,   // days to keep rotated files
		MaxBackups: 10,
		Compress:   true,
	}, nil
}

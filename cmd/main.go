package main

import (
	"context"
	"flag"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/walavie/walavie-site/internal/httpapi/server"
	"github.com/walavie/walavie-site/pkg/cache"
	"github.com/walavie/walavie-site/pkg/config"
	"github.com/walavie/walavie-site/pkg/logger"
	"github.com/walavie/walavie-site/pkg/store"
	"github.com/walavie/walavie-site/pkg/telemetry"
)

const (
	meterName               = "walavie-site"
	telemetryFlushTimeout   = 5 * time.Second
	defaultConfigPathEnvVar = "CONFIG_PATH"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", os.Getenv(defaultConfigPathEnvVar),
		"path to the YAML config file, defaults to $CONFIG_PATH")
	flag.Parse()

	if err := run(configPath); err != nil {
		logrus.WithError(err).Fatal("walavie-site exited with an error")
	}
}

func run(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	if err := logger.Init(cfg.App.LogLevel, cfg.App.Environment); err != nil {
		return err
	}
	log := logrus.WithFields(logrus.Fields{
		"service":     cfg.App.Name,
		"version":     cfg.App.Version,
		"environment": cfg.App.Environment,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := telemetry.Init(ctx, cfg.Telemetry); err != nil {
		return err
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), telemetryFlushTimeout)
		defer cancel()
		if err := telemetry.Shutdown(flushCtx); err != nil {
			log.WithError(err).Warn("failed to flush telemetry")
		}
	}()

	metrics, err := telemetry.NewSubmissionMetrics(telemetry.GetMeter(meterName))
	if err != nil {
		return err
	}

	backend, err := cache.New(&cfg.Cache)
	if err != nil {
		return err
	}
	if closer, ok := backend.(io.Closer); ok {
		defer func() {
			if err := closer.Close(); err != nil {
				log.WithError(err).Warn("failed to close cache backend")
			}
		}()
	}

	dataStore, err := store.New(ctx, backend)
	if err != nil {
		return err
	}

	apiServer := server.NewAPIServer(cfg, dataStore, metrics)
	log.WithField("cache_driver", cfg.Cache.Driver).Info("walavie-site starting")
	return apiServer.Start(ctx)
}

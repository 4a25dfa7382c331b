/*
Copyright 2025.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package telemetry owns the process-wide OpenTelemetry meter provider.
package telemetry

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	otelmetric "go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.27.0"
)

const defaultExportInterval = 30 * time.Second

// request latencies of a static site rarely exceed a few seconds
var durationBuckets = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5}

var (
	meterProvider     *metric.MeterProvider
	meterProviderOnce sync.Once
	shutdownOnce      sync.Once
)

type Config struct {
	Enabled        bool   `mapstructure:"enabled"`
	ServiceName    string `mapstructure:"serviceName"`
	ServiceVersion string `mapstructure:"serviceVersion"`
	OTLPEndpoint   string `mapstructure:"otlpEndpoint"`
	Insecure       bool   `mapstructure:"insecure"`
	// ExportInterval is in seconds; zero uses the default of 30s.
	ExportInterval int `mapstructure:"exportInterval"`
}

// Init installs the global meter provider once. When telemetry is disabled
// the provider has no reader, so instruments work but nothing is exported.
func Init(ctx context.Context, cfg Config) error {
	var initErr error
	meterProviderOnce.Do(func() {
		var opts []metric.Option
		if cfg.Enabled {
			opts, initErr = exportOptions(ctx, cfg)
			if initErr != nil {
				return
			}
		}
		meterProvider = metric.NewMeterProvider(opts...)
		otel.SetMeterProvider(meterProvider)
	})
	return initErr
}

func exportOptions(ctx context.Context, cfg Config) ([]metric.Option, error) {
	if cfg.ServiceName == "" {
		return nil, errors.New("telemetry service name is required")
	}
	endpoint, err := exporterEndpoint(cfg.OTLPEndpoint)
	if err != nil {
		return nil, err
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(cfg.ServiceName),
			semconv.ServiceVersion(cfg.ServiceVersion),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create telemetry resource: %w", err)
	}

	exporterOpts := []otlpmetrichttp.Option{otlpmetrichttp.WithEndpoint(endpoint)}
	if cfg.Insecure {
		exporterOpts = append(exporterOpts, otlpmetrichttp.WithInsecure())
	}
	exporter, err := otlpmetrichttp.New(ctx, exporterOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create OTLP metric exporter: %w", err)
	}

	interval := defaultExportInterval
	if cfg.ExportInterval > 0 {
		interval = time.Duration(cfg.ExportInterval) * time.Second
	}

	return []metric.Option{
		metric.WithResource(res),
		metric.WithReader(metric.NewPeriodicReader(exporter, metric.WithInterval(interval))),
		metric.WithView(durationView()),
	}, nil
}

// durationView swaps the SDK's default buckets, which are tuned for
// milliseconds, for ones that fit a seconds-based histogram.
func durationView() metric.View {
	return metric.NewView(
		metric.Instrument{Name: BuildMetricName("http_request", MetricNameSuffixDuration)},
		metric.Stream{Aggregation: metric.AggregationExplicitBucketHistogram{Boundaries: durationBuckets}},
	)
}

// Shutdown flushes pending measurements. Only the first call has an effect.
func Shutdown(ctx context.Context) error {
	var shutdownErr error
	shutdownOnce.Do(func() {
		if meterProvider != nil {
			shutdownErr = meterProvider.Shutdown(ctx)
		}
	})
	return shutdownErr
}

func GetMeter(name string, opts ...otelmetric.MeterOption) otelmetric.Meter {
	return otel.Meter(name, opts...)
}

// exporterEndpoint reduces a configured URL or host:port to the host:port
// form the OTLP HTTP exporter expects.
func exporterEndpoint(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", errors.New("telemetry OTLP endpoint is required")
	}
	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return "", fmt.Errorf("invalid OTLP endpoint %q", raw)
	}
	return u.Host, nil
}

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

package telemetry

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	otelmetric "go.opentelemetry.io/otel/metric"
)

// MetricOptions describes an instrument. Attributes are attached to every
// measurement, ahead of the ones passed per call.
type MetricOptions struct {
	Name        string
	Description string
	Unit        string
	Attributes  []attribute.KeyValue
}

func (o MetricOptions) validate() error {
	if o.Name == "" {
		return errors.New("metric name is required")
	}
	return nil
}

type constAttrs []attribute.KeyValue

func (c constAttrs) with(attrs []attribute.KeyValue) otelmetric.MeasurementOption {
	if len(c) == 0 {
		return otelmetric.WithAttributes(attrs...)
	}
	merged := make([]attribute.KeyValue, 0, len(c)+len(attrs))
	merged = append(merged, c...)
	merged = append(merged, attrs...)
	return otelmetric.WithAttributes(merged...)
}

type Counter struct {
	counter otelmetric.Int64Counter
	attrs   constAttrs
}

func NewCounter(meter otelmetric.Meter, opts MetricOptions) (*Counter, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	counter, err := meter.Int64Counter(opts.Name,
		otelmetric.WithDescription(opts.Description),
		otelmetric.WithUnit(opts.Unit),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create counter %s: %w", opts.Name, err)
	}
	return &Counter{counter: counter, attrs: opts.Attributes}, nil
}

func (c *Counter) Add(ctx context.Context, value int64, attrs ...attribute.KeyValue) {
	c.counter.Add(ctx, value, c.attrs.with(attrs))
}

func (c *Counter) Inc(ctx context.Context, attrs ...attribute.KeyValue) {
	c.Add(ctx, 1, attrs...)
}

type Histogram struct {
	histogram otelmetric.Float64Histogram
	attrs     constAttrs
}

func NewHistogram(meter otelmetric.Meter, opts MetricOptions) (*Histogram, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	histogram, err := meter.Float64Histogram(opts.Name,
		otelmetric.WithDescription(opts.Description),
		otelmetric.WithUnit(opts.Unit),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create histogram %s: %w", opts.Name, err)
	}
	return &Histogram{histogram: histogram, attrs: opts.Attributes}, nil
}

func (h *Histogram) Record(ctx context.Context, value float64, attrs ...attribute.KeyValue) {
	h.histogram.Record(ctx, value, h.attrs.with(attrs))
}

// UpDownCounter tracks a value that rises and falls, such as requests in flight.
type UpDownCounter struct {
	counter otelmetric.Int64UpDownCounter
	attrs   constAttrs
}

func NewUpDownCounter(meter otelmetric.Meter, opts MetricOptions) (*UpDownCounter, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	counter, err := meter.Int64UpDownCounter(opts.Name,
		otelmetric.WithDescription(opts.Description),
		otelmetric.WithUnit(opts.Unit),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create up-down counter %s: %w", opts.Name, err)
	}
	return &UpDownCounter{counter: counter, attrs: opts.Attributes}, nil
}

func (u *UpDownCounter) Add(ctx context.Context, value int64, attrs ...attribute.KeyValue) {
	u.counter.Add(ctx, value, u.attrs.with(attrs))
}

func (u *UpDownCounter) Inc(ctx context.Context, attrs ...attribute.KeyValue) {
	u.Add(ctx, 1, attrs...)
}

func (u *UpDownCounter) Dec(ctx context.Context, attrs ...attribute.KeyValue) {
	u.Add(ctx, -1, attrs...)
}

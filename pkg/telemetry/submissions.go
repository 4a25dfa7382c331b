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
	"time"

	otelmetric "go.opentelemetry.io/otel/metric"
)

const (
	EndpointNewsletter = "newsletter"
	EndpointContact    = "contact"
)

// SubmissionMetrics counts form submissions and times HTTP requests.
// All methods are no-ops on a nil receiver so handlers can run without telemetry.
type SubmissionMetrics struct {
	SubmissionTotal  *Counter
	RequestDuration  *Histogram
	RequestsInFlight *UpDownCounter
}

func NewSubmissionMetrics(meter otelmetric.Meter) (*SubmissionMetrics, error) {
	submissionTotal, err := NewCounter(meter, MetricOptions{
		Name: BuildMetricName("form_submission", MetricNameSuffixTotal),
		Description: "total number of form submissions by endpoint and outcome. " +
			"invalid submissions were rejected by validation, error submissions failed in the store",
		Unit: "1",
	})
	if err != nil {
		return nil, err
	}

	requestDuration, err := NewHistogram(meter, MetricOptions{
		Name:        BuildMetricName("http_request", MetricNameSuffixDuration),
		Description: "latency of HTTP requests served by the site",
		Unit:        "s",
	})
	if err != nil {
		return nil, err
	}

	inFlight, err := NewUpDownCounter(meter, MetricOptions{
		Name:        BuildMetricName("http_requests_in_flight", ""),
		Description: "number of HTTP requests currently being served",
		Unit:        "1",
	})
	if err != nil {
		return nil, err
	}

	return &SubmissionMetrics{
		SubmissionTotal:  submissionTotal,
		RequestDuration:  requestDuration,
		RequestsInFlight: inFlight,
	}, nil
}

func (sm *SubmissionMetrics) RecordSubmission(ctx context.Context, endpoint, status string) {
	if sm == nil {
		return
	}
	sm.SubmissionTotal.Inc(ctx, WithEndpoint(endpoint), WithStatus(status))
}

func (sm *SubmissionMetrics) RequestStarted(ctx context.Context) {
	if sm == nil {
		return
	}
	sm.RequestsInFlight.Inc(ctx)
}

func (sm *SubmissionMetrics) RequestFinished(ctx context.Context, method, route string, code int, elapsed time.Duration) {
	if sm == nil {
		return
	}
	sm.RequestsInFlight.Dec(ctx)
	sm.RequestDuration.Record(ctx, elapsed.Seconds(), WithMethod(method), WithRoute(route), WithStatusCode(code))
}

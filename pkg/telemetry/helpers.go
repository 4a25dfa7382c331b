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
	"go.opentelemetry.io/otel/attribute"
)

// naming conventions for metric names
const (
	MetricNameSuffixTotal    = "_total"
	MetricNameSuffixDuration = "_duration_seconds"
)

const (
	AttrEndpoint   = "walavie_endpoint"
	AttrMethod     = "walavie_method"
	AttrRoute      = "walavie_route"
	AttrStatus     = "walavie_status"
	AttrStatusCode = "walavie_status_code"
)

const (
	StatusSuccess = "success"
	StatusInvalid = "invalid"
	StatusError   = "error"
)

func BuildMetricName(baseName, suffix string) string {
	prefixedName := "walavie_" + baseName
	if suffix == "" {
		return prefixedName
	}
	return prefixedName + suffix
}

// creates attribute for the form endpoint that received a submission
func WithEndpoint(endpoint string) attribute.KeyValue {
	return attribute.String(AttrEndpoint, endpoint)
}

func WithMethod(method string) attribute.KeyValue {
	return attribute.String(AttrMethod, method)
}

// creates attribute for the matched route template, not the raw path
func WithRoute(route string) attribute.KeyValue {
	return attribute.String(AttrRoute, route)
}

// creates attribute for status
func WithStatus(status string) attribute.KeyValue {
	return attribute.String(AttrStatus, status)
}

func WithStatusCode(code int) attribute.KeyValue {
	return attribute.Int(AttrStatusCode, code)
}

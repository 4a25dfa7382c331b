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

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/walavie/walavie-site/pkg/config"
	"github.com/walavie/walavie-site/pkg/store"
	"github.com/walavie/walavie-site/pkg/telemetry"
	"github.com/walavie/walavie-site/pkg/validation"
)

const (
	MsgSubscriptionSuccessful = "Subscription successful"
	MsgContactSubmitted       = "Contact form submitted successfully"
	MsgInternalError          = "Internal server error"
	MsgSubmissionNotFound     = "Contact submission not found"
	MsgInvalidSubmissionID    = "Invalid contact submission id"

	// maxBodyBytes bounds form payloads; a contact message is at most a few KB.
	maxBodyBytes = 64 << 10
)

type Handlers struct {
	config  *config.AppConfig
	store   store.Storage
	metrics *telemetry.SubmissionMetrics
}

// NewHandlers wires the handlers to their dependencies. metrics may be nil.
func NewHandlers(cfg *config.AppConfig, dataStore store.Storage, metrics *telemetry.SubmissionMetrics) *Handlers {
	return &Handlers{
		config:  cfg,
		store:   dataStore,
		metrics: metrics,
	}
}

// Response is the body of every form endpoint reply
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ContactResponse is returned when a contact submission was stored
type ContactResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	ID      int    `json:"id"`
}

// StatusResponse describes the running service
type StatusResponse struct {
	Service string `json:"service"`
	Status  string `json:"status"`
	Version string `json:"version"`
}

func (h *Handlers) Status(c *gin.Context) {
	c.JSON(http.StatusOK, StatusResponse{
		Service: h.config.App.Name,
		Status:  "running",
		Version: h.config.App.Version,
	})
}

// decode reads the limited request body into dst. The returned error is
// already shaped for the client.
func decode(c *gin.Context, dst interface{}) *validation.FieldError {
	body := http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes)
	return validation.Decode(body, dst)
}

func badRequest(c *gin.Context, ferr *validation.FieldError) {
	c.JSON(http.StatusBadRequest, Response{Success: false, Message: ferr.PublicMessage()})
}

func internalError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, Response{Success: false, Message: MsgInternalError})
}

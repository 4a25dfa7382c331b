package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/walavie/walavie-site/pkg/logger"
	"github.com/walavie/walavie-site/pkg/telemetry"
	"github.com/walavie/walavie-site/pkg/validation"
)

// Subscribe acknowledges a newsletter signup. Nothing is stored; the
// address is only validated.
func (h *Handlers) Subscribe(c *gin.Context) {
	ctx := c.Request.Context()

	var req validation.NewsletterRequest
	if ferr := decode(c, &req); ferr != nil {
		h.metrics.RecordSubmission(ctx, telemetry.EndpointNewsletter, telemetry.StatusInvalid)
		badRequest(c, ferr)
		return
	}

	if _, ferr := validation.ValidateNewsletter(req); ferr != nil {
		h.metrics.RecordSubmission(ctx, telemetry.EndpointNewsletter, telemetry.StatusInvalid)
		badRequest(c, ferr)
		return
	}

	h.metrics.RecordSubmission(ctx, telemetry.EndpointNewsletter, telemetry.StatusSuccess)
	c.JSON(http.StatusOK, Response{Success: true, Message: MsgSubscriptionSuccessful})
}

// SubmitContact validates a contact form and stores it.
func (h *Handlers) SubmitContact(c *gin.Context) {
	ctx := c.Request.Context()

	var req validation.ContactRequest
	if ferr := decode(c, &req); ferr != nil {
		h.metrics.RecordSubmission(ctx, telemetry.EndpointContact, telemetry.StatusInvalid)
		badRequest(c, ferr)
		return
	}

	insert, ferr := validation.ValidateContact(req)
	if ferr != nil {
		h.metrics.RecordSubmission(ctx, telemetry.EndpointContact, telemetry.StatusInvalid)
		badRequest(c, ferr)
		return
	}

	submission, err := h.store.CreateContactSubmission(ctx, insert)
	if err != nil {
		logger.Logger(ctx).WithError(err).Error("failed to store contact submission")
		h.metrics.RecordSubmission(ctx, telemetry.EndpointContact, telemetry.StatusError)
		internalError(c)
		return
	}

	logger.Logger(ctx).WithField("submission_id", submission.ID).Info("contact submission stored")
	h.metrics.RecordSubmission(ctx, telemetry.EndpointContact, telemetry.StatusSuccess)
	c.JSON(http.StatusCreated, ContactResponse{
		Success: true,
		Message: MsgContactSubmitted,
		ID:      submission.ID,
	})
}

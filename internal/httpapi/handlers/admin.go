package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/walavie/walavie-site/pkg/logger"
	"github.com/walavie/walavie-site/pkg/types"
)

// ContactListResponse carries every stored submission in creation order
type ContactListResponse struct {
	Success     bool                      `json:"success"`
	Submissions []types.ContactSubmission `json:"submissions"`
}

type ContactDetailResponse struct {
	Success    bool                     `json:"success"`
	Submission *types.ContactSubmission `json:"submission"`
}

func (h *Handlers) ListContactSubmissions(c *gin.Context) {
	ctx := c.Request.Context()

	submissions, err := h.store.GetAllContactSubmissions(ctx)
	if err != nil {
		logger.Logger(ctx).WithError(err).Error("failed to list contact submissions")
		internalError(c)
		return
	}

	c.JSON(http.StatusOK, ContactListResponse{Success: true, Submissions: submissions})
}

func (h *Handlers) GetContactSubmission(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, Response{Success: false, Message: MsgInvalidSubmissionID})
		return
	}

	submission, err := h.store.GetContactSubmission(ctx, id)
	if err != nil {
		logger.Logger(ctx).WithField("submission_id", id).WithError(err).Error("failed to fetch contact submission")
		internalError(c)
		return
	}
	if submission == nil {
		c.JSON(http.StatusNotFound, Response{Success: false, Message: MsgSubmissionNotFound})
		return
	}

	c.JSON(http.StatusOK, ContactDetailResponse{Success: true, Submission: submission})
}

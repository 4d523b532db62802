package handler

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ncobase/todosheet/logger"
	"github.com/ncobase/todosheet/resp"
	"github.com/ncobase/todosheet/service"
)

// ReminderHandler serves the scheduler-facing reminder endpoint.
type ReminderHandler struct {
	svc    *service.ReminderService
	token  string
	logger *logger.Logger
}

// Run executes one reminder sweep. Callers authenticate with the
// X-CRON-TOKEN header; when no token is configured the endpoint is
// disabled and every request is rejected.
func (h *ReminderHandler) Run(c *gin.Context) {
	ctx := c.Request.Context()

	token := strings.TrimSpace(c.GetHeader("X-CRON-TOKEN"))
	if h.token == "" || token != h.token {
		resp.Fail(c.Writer, resp.Forbidden("forbidden"))
		return
	}

	count, err := h.svc.Sweep(ctx, time.Now())
	if err != nil {
		if errors.Is(err, service.ErrPushFailed) {
			h.logger.Error(ctx, "reminder delivery failed", "error", err)
			resp.Fail(c.Writer, resp.BadGateway("reminder delivery failed"))
			return
		}
		h.logger.Error(ctx, "reminder sweep failed", "error", err)
		resp.Fail(c.Writer, resp.InternalServer("reminder sweep failed"))
		return
	}

	resp.Success(c.Writer, gin.H{
		"count":   count,
		"message": fmt.Sprintf("notified %d todo(s)", count),
	})
}

// Package handler exposes the HTTP API.
package handler

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ncobase/todosheet/config"
	"github.com/ncobase/todosheet/logger"
	"github.com/ncobase/todosheet/service"
)

// Handler bundles all HTTP handlers.
type Handler struct {
	Todo     *TodoHandler
	Reminder *ReminderHandler
}

// New builds the handler layer.
func New(svc *service.Service, cfg *config.Config, log *logger.Logger) *Handler {
	return &Handler{
		Todo: &TodoHandler{svc: svc.Todo, logger: log},
		Reminder: &ReminderHandler{
			svc:    svc.Reminder,
			token:  strings.TrimSpace(cfg.Reminder.CronToken),
			logger: log,
		},
	}
}

// RegisterRoutes mounts all routes on the engine.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	v1 := r.Group("/api/v1")
	todos := v1.Group("/todos")
	{
		todos.GET("", h.Todo.List)
		todos.POST("", h.Todo.Create)
		todos.GET("/:todo_id", h.Todo.Get)
		todos.PUT("/:todo_id", h.Todo.Update)
		todos.POST("/:todo_id/toggle", h.Todo.Toggle)
	}

	// The cron path stays outside the versioned API so external
	// schedulers keep a stable URL across API versions.
	r.POST("/cron/remind", h.Reminder.Run)
}

// Package service holds the business logic between HTTP handlers and
// the sheet-backed repositories.
package service

import (
	"context"

	"github.com/ncobase/todosheet/config"
	"github.com/ncobase/todosheet/data"
	"github.com/ncobase/todosheet/logger"
)

// Pusher delivers a text notification to the configured recipient.
type Pusher interface {
	Push(ctx context.Context, text string) error
}

// Service bundles all application services.
type Service struct {
	Todo     *TodoService
	Reminder *ReminderService
}

// New builds the service layer.
func New(d *data.Data, cfg *config.Config, log *logger.Logger, pusher Pusher) *Service {
	return &Service{
		Todo:     NewTodoService(d, cfg, log),
		Reminder: NewReminderService(d, cfg, log, pusher),
	}
}

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ncobase/todosheet/config"
	"github.com/ncobase/todosheet/data"
	"github.com/ncobase/todosheet/data/repository"
	"github.com/ncobase/todosheet/logger"
	"github.com/ncobase/todosheet/structs"
)

// ErrPushFailed indicates the notification could not be delivered. No
// todos are marked reminded when this happens, so the next sweep
// retries them.
var ErrPushFailed = errors.New("reminder push failed")

// ReminderService finds todos that are about to come due and notifies
// the configured recipient.
type ReminderService struct {
	repo        repository.TodoRepository
	pusher      Pusher
	windowHours int
	loc         *time.Location
	logger      *logger.Logger
}

// NewReminderService creates the reminder service.
func NewReminderService(d *data.Data, cfg *config.Config, log *logger.Logger, pusher Pusher) *ReminderService {
	return &ReminderService{
		repo:        d.Todo,
		pusher:      pusher,
		windowHours: cfg.Reminder.WindowHours,
		loc:         cfg.Location(),
		logger:      log,
	}
}

// FindDueWithin returns open todos whose due time falls inside
// [now, now+hours]. Todos already reminded within the window are
// excluded so repeated sweeps do not spam.
func (s *ReminderService) FindDueWithin(ctx context.Context, now time.Time, hours int) ([]*structs.Todo, error) {
	todos, err := s.repo.FetchAll(ctx)
	if err != nil {
		return nil, err
	}

	window := time.Duration(hours) * time.Hour
	limit := now.Add(window)

	var due []*structs.Todo
	for _, t := range todos {
		// Only genuinely open todos qualify; a hand-edited status
		// cell holding anything else is not a reminder candidate.
		if t.Status != structs.StatusOpen {
			continue
		}
		dueAt, ok := structs.ParseTime(t.DueAt, s.loc)
		if !ok {
			continue
		}
		if dueAt.Before(now) || dueAt.After(limit) {
			continue
		}
		if last, ok := structs.ParseTime(t.LastRemindedAt, s.loc); ok && now.Sub(last) < window {
			continue
		}
		due = append(due, t)
	}
	return due, nil
}

// Sweep runs one reminder pass: find due todos, push one message
// listing them, then record the reminder time on each. Returns how
// many todos were notified.
func (s *ReminderService) Sweep(ctx context.Context, now time.Time) (int, error) {
	due, err := s.FindDueWithin(ctx, now, s.windowHours)
	if err != nil {
		return 0, err
	}
	if len(due) == 0 {
		s.logger.Info(ctx, "reminder sweep found nothing due")
		return 0, nil
	}

	if err := s.pusher.Push(ctx, reminderMessage(due)); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrPushFailed, err)
	}

	ids := make([]string, len(due))
	for i, t := range due {
		ids[i] = t.ID
	}
	if err := s.repo.MarkReminded(ctx, ids, now); err != nil {
		// The push went out; failing to record it means the next
		// sweep may notify again.
		s.logger.Error(ctx, "reminder sent but not recorded", "error", err)
		return 0, err
	}

	s.logger.Info(ctx, "reminder sweep complete", "count", len(due))
	return len(due), nil
}

// reminderMessage renders the push text for a batch of due todos. Due
// stamps are truncated to minute precision for readability.
func reminderMessage(todos []*structs.Todo) string {
	var b strings.Builder
	fmt.Fprintf(&b, "⏰ %d todo(s) due soon:", len(todos))
	for _, t := range todos {
		due := t.DueAt
		if len(due) > 16 {
			due = due[:16]
		}
		if due == "" {
			fmt.Fprintf(&b, "\n- %s (no due date)", t.Title)
			continue
		}
		fmt.Fprintf(&b, "\n- %s (due %s)", t.Title, due)
	}
	return b.String()
}

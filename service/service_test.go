package service

import (
	"context"
	"time"

	"github.com/ncobase/todosheet/config"
	"github.com/ncobase/todosheet/data"
	"github.com/ncobase/todosheet/data/repository"
	"github.com/ncobase/todosheet/data/sheets"
	"github.com/ncobase/todosheet/logger"
)

// fakePusher records pushed messages and can be told to fail.
type fakePusher struct {
	texts []string
	err   error
}

func (p *fakePusher) Push(_ context.Context, text string) error {
	if p.err != nil {
		return p.err
	}
	p.texts = append(p.texts, text)
	return nil
}

func testConfig() *config.Config {
	return &config.Config{
		Timezone: "Asia/Tokyo",
		Reminder: &config.Reminder{WindowHours: 24},
	}
}

func newTestService(grid *sheets.Memory, pusher Pusher) *Service {
	cfg := testConfig()
	d := data.NewWithGrid(grid, cfg.Location(), logger.Discard())
	return New(d, cfg, logger.Discard(), pusher)
}

// sheetRow builds a data row in canonical column order.
func sheetRow(id, title, priority, status, dueAt, updatedAt, lastRemindedAt string) []string {
	return []string{
		id, title, "", priority, status, dueAt,
		"2026-01-01T00:00:00+09:00", updatedAt, "", lastRemindedAt,
	}
}

func seededGrid(rows ...[]string) *sheets.Memory {
	all := append([][]string{repository.Headers}, rows...)
	return sheets.NewMemory(all...)
}

func tokyo() *time.Location {
	loc, _ := time.LoadLocation("Asia/Tokyo")
	return loc
}

package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ncobase/todosheet/config"
	"github.com/ncobase/todosheet/data"
	"github.com/ncobase/todosheet/data/repository"
	"github.com/ncobase/todosheet/data/sheets"
	"github.com/ncobase/todosheet/logger"
	"github.com/ncobase/todosheet/service"
)

type pushRecorder struct {
	texts []string
	err   error
}

func (p *pushRecorder) Push(_ context.Context, text string) error {
	if p.err != nil {
		return p.err
	}
	p.texts = append(p.texts, text)
	return nil
}

func newTestRouter(grid *sheets.Memory, pusher service.Pusher, cronToken string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{
		Timezone: "Asia/Tokyo",
		Reminder: &config.Reminder{WindowHours: 24, CronToken: cronToken},
	}
	d := data.NewWithGrid(grid, cfg.Location(), logger.Discard())
	svc := service.New(d, cfg, logger.Discard(), pusher)

	r := gin.New()
	New(svc, cfg, logger.Discard()).RegisterRoutes(r)
	return r
}

func doRequest(r *gin.Engine, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return body
}

func seededGrid(rows ...[]string) *sheets.Memory {
	all := append([][]string{repository.Headers}, rows...)
	return sheets.NewMemory(all...)
}

func dueRow(id, title, dueAt, lastRemindedAt string) []string {
	return []string{id, title, "", "Medium", "open", dueAt, "", "", "", lastRemindedAt}
}

func stampIn(d time.Duration) string {
	loc, _ := time.LoadLocation("Asia/Tokyo")
	return time.Now().Add(d).In(loc).Format(time.RFC3339)
}

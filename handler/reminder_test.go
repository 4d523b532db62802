package handler

import (
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/ncobase/todosheet/data/sheets"
)

func TestCronRequiresToken(t *testing.T) {
	grid := seededGrid(dueRow("t1", "buy milk", stampIn(time.Hour), ""))

	r := newTestRouter(grid, &pushRecorder{}, "cron-secret")

	w := doRequest(r, http.MethodPost, "/cron/remind", nil, nil)
	if w.Code != http.StatusForbidden {
		t.Errorf("no token status = %d, want 403", w.Code)
	}

	w = doRequest(r, http.MethodPost, "/cron/remind", nil, map[string]string{"X-CRON-TOKEN": "wrong"})
	if w.Code != http.StatusForbidden {
		t.Errorf("wrong token status = %d, want 403", w.Code)
	}
	if body := decodeBody(t, w); body["message"] != "forbidden" {
		t.Errorf("body = %v", body)
	}
}

func TestCronDisabledWithoutConfiguredToken(t *testing.T) {
	grid := seededGrid(dueRow("t1", "buy milk", stampIn(time.Hour), ""))
	pusher := &pushRecorder{}
	r := newTestRouter(grid, pusher, "")

	// With no token configured every caller is rejected, even one
	// sending an empty header that would otherwise match.
	w := doRequest(r, http.MethodPost, "/cron/remind", nil, map[string]string{"X-CRON-TOKEN": ""})
	if w.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", w.Code)
	}
	if len(pusher.texts) != 0 {
		t.Errorf("disabled endpoint pushed: %v", pusher.texts)
	}
}

func TestCronSweepNotifies(t *testing.T) {
	grid := seededGrid(
		dueRow("t1", "buy milk", stampIn(time.Hour), ""),
		dueRow("t2", "far away", stampIn(72*time.Hour), ""),
	)
	pusher := &pushRecorder{}
	r := newTestRouter(grid, pusher, "cron-secret")

	w := doRequest(r, http.MethodPost, "/cron/remind", nil, map[string]string{"X-CRON-TOKEN": "cron-secret"})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	if body["count"] != float64(1) {
		t.Errorf("count = %v", body["count"])
	}

	if len(pusher.texts) != 1 || !strings.Contains(pusher.texts[0], "buy milk") {
		t.Errorf("pushes = %v", pusher.texts)
	}

	// The notified todo is stamped so the next sweep skips it.
	w = doRequest(r, http.MethodGet, "/api/v1/todos/t1", nil, nil)
	if got := decodeBody(t, w); got["last_reminded_at"] == nil {
		t.Errorf("todo not marked reminded: %v", got)
	}
}

func TestCronNothingDue(t *testing.T) {
	r := newTestRouter(seededGrid(), &pushRecorder{}, "cron-secret")

	w := doRequest(r, http.MethodPost, "/cron/remind", nil, map[string]string{"X-CRON-TOKEN": "cron-secret"})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if body := decodeBody(t, w); body["count"] != float64(0) {
		t.Errorf("count = %v", body["count"])
	}
}

func TestCronPushFailure(t *testing.T) {
	grid := seededGrid(dueRow("t1", "buy milk", stampIn(time.Hour), ""))
	pusher := &pushRecorder{err: errors.New("line is down")}
	r := newTestRouter(grid, pusher, "cron-secret")

	w := doRequest(r, http.MethodPost, "/cron/remind", nil, map[string]string{"X-CRON-TOKEN": "cron-secret"})
	if w.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502", w.Code)
	}
	if body := decodeBody(t, w); body["code"] != float64(-502) {
		t.Errorf("body = %v", body)
	}

	// Failed delivery must leave the todo eligible for the next run.
	w = doRequest(r, http.MethodGet, "/api/v1/todos/t1", nil, nil)
	if got := decodeBody(t, w); got["last_reminded_at"] != nil {
		t.Errorf("todo marked despite failed push: %v", got)
	}
}

func TestCronStoreFailure(t *testing.T) {
	grid := sheets.NewMemory()
	grid.Fail(sheets.ErrUnavailable)
	r := newTestRouter(grid, &pushRecorder{}, "cron-secret")

	w := doRequest(r, http.MethodPost, "/cron/remind", nil, map[string]string{"X-CRON-TOKEN": "cron-secret"})
	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", w.Code)
	}
}

package resp

import (
	"encoding/json"
	"net/http/httptest"
	"testing"
)

func TestSuccess(t *testing.T) {
	t.Run("payload returned directly", func(t *testing.T) {
		w := httptest.NewRecorder()
		Success(w, map[string]any{"id": "abc"})

		if w.Code != 200 {
			t.Errorf("status = %d, want 200", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid JSON body: %v", err)
		}
		if body["id"] != "abc" {
			t.Errorf("body = %v, want id abc", body)
		}
	})

	t.Run("no payload falls back to message", func(t *testing.T) {
		w := httptest.NewRecorder()
		Success(w)

		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid JSON body: %v", err)
		}
		if body["message"] != "ok" {
			t.Errorf("body = %v, want message ok", body)
		}
	})
}

func TestFail(t *testing.T) {
	tests := []struct {
		name       string
		exception  *Exception
		wantStatus int
		wantCode   float64
	}{
		{"bad request", BadRequest("nope"), 400, RequestErr},
		{"forbidden", Forbidden("forbidden"), 403, AccessDenied},
		{"not found", NotFound("missing"), 404, NothingFound},
		{"internal", InternalServer("boom"), 500, ServerErr},
		{"bad gateway", BadGateway("upstream"), 502, GatewayErr},
		{"unavailable", Unavailable("down"), 503, ServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			Fail(w, tt.exception)

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			var body map[string]any
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("invalid JSON body: %v", err)
			}
			if body["code"] != tt.wantCode {
				t.Errorf("code = %v, want %v", body["code"], tt.wantCode)
			}
		})
	}
}

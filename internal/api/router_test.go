package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/cybersoft-az/contact-api/internal/provider"
)

func newTestRouter(p provider.Provider) http.Handler {
	return NewRouter(RouterConfig{
		AllowedOrigins: testOrigins,
		Delivery:       newTestService(p),
		Log:            zerolog.Nop(),
	})
}

func TestRouter_ContactSubmission(t *testing.T) {
	stub := &stubProvider{result: &provider.DeliveryResult{MessageID: "msg-7"}}
	router := newTestRouter(stub)

	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(validBody))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Origin", "https://cybersoft.az")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d, body: %s", rec.Code, rec.Body.String())
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://cybersoft.az" {
		t.Errorf("expected CORS origin echo, got %s", got)
	}
}

func TestRouter_OptionsAnyPath(t *testing.T) {
	stub := &stubProvider{result: &provider.DeliveryResult{MessageID: "msg-1"}}
	router := newTestRouter(stub)

	for _, path := range []string{"/api/contact", "/", "/nope/nested"} {
		req := httptest.NewRequest(http.MethodOptions, path, nil)
		req.Header.Set("Origin", "https://cybersoft.az")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusNoContent {
			t.Errorf("OPTIONS %s: expected 204, got %d", path, rec.Code)
		}
		if rec.Body.Len() != 0 {
			t.Errorf("OPTIONS %s: expected empty body", path)
		}
		if rec.Header().Get("Access-Control-Allow-Origin") == "" {
			t.Errorf("OPTIONS %s: expected CORS headers", path)
		}
	}
}

func TestRouter_UnmappedPath(t *testing.T) {
	stub := &stubProvider{result: &provider.DeliveryResult{MessageID: "msg-1"}}
	router := newTestRouter(stub)

	req := httptest.NewRequest(http.MethodPost, "/api/other", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rec.Code)
	}
	resp := decodeBody(t, rec)
	if resp["success"] != false || resp["error"] != "Not Found" {
		t.Errorf("unexpected body: %v", resp)
	}
}

func TestRouter_WrongMethodOnContactPath(t *testing.T) {
	stub := &stubProvider{result: &provider.DeliveryResult{MessageID: "msg-1"}}
	router := newTestRouter(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/contact", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rec.Code)
	}
	resp := decodeBody(t, rec)
	if resp["error"] != "Not Found" {
		t.Errorf("unexpected body: %v", resp)
	}
}

func TestRouter_NotFoundCarriesCORSHeaders(t *testing.T) {
	stub := &stubProvider{result: &provider.DeliveryResult{MessageID: "msg-1"}}
	router := newTestRouter(stub)

	req := httptest.NewRequest(http.MethodPost, "/unmapped", nil)
	req.Header.Set("Origin", "https://evil.example")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://cybersoft.az" {
		t.Errorf("expected fallback CORS origin on 404, got %q", got)
	}
}

func TestRouter_CustomContactPath(t *testing.T) {
	stub := &stubProvider{result: &provider.DeliveryResult{MessageID: "msg-1"}}
	router := NewRouter(RouterConfig{
		ContactPath:    "/v1/contact",
		AllowedOrigins: testOrigins,
		Delivery:       newTestService(stub),
		Log:            zerolog.Nop(),
	})

	req := httptest.NewRequest(http.MethodPost, "/v1/contact", strings.NewReader(validBody))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected status 200 on custom path, got %d", rec.Code)
	}
}

func TestRouter_Healthz(t *testing.T) {
	stub := &stubProvider{result: &provider.DeliveryResult{MessageID: "msg-1"}}
	router := newTestRouter(stub)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	resp := decodeBody(t, rec)
	if resp["status"] != "ok" {
		t.Errorf("expected status ok, got %v", resp["status"])
	}
}

func TestRouter_Metrics(t *testing.T) {
	stub := &stubProvider{result: &provider.DeliveryResult{MessageID: "msg-1"}}
	router := newTestRouter(stub)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "go_goroutines") {
		t.Error("expected prometheus exposition output")
	}
}

func TestRouter_RecoversFromPanic(t *testing.T) {
	router := NewRouter(RouterConfig{
		AllowedOrigins: testOrigins,
		Delivery:       nil, // nil service makes the handler panic
		Log:            zerolog.Nop(),
	})

	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(validBody))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", rec.Code)
	}
	resp := decodeBody(t, rec)
	if resp["error"] != "Internal server error" {
		t.Errorf("unexpected body: %v", resp)
	}
}

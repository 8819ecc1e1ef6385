package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"musicfun/internal/logging"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestCORSAllowAny(t *testing.T) {
	handler := CORS([]string{"*"})(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/catalog/tracks", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("expected wildcard origin, got %q", got)
	}
	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}
}

func TestCORSSpecificOrigin(t *testing.T) {
	handler := CORS([]string{"http://localhost:5173"})(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/catalog/tracks", nil)
	req.Header.Set("Origin", "http://LOCALHOST:5173")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "http://LOCALHOST:5173" {
		t.Fatalf("expected echoed origin, got %q", got)
	}
	if got := rr.Header().Get("Vary"); got != "Origin" {
		t.Fatalf("expected Vary: Origin, got %q", got)
	}

	req = httptest.NewRequest(http.MethodGet, "/catalog/tracks", nil)
	req.Header.Set("Origin", "http://evil.example")
	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Fatalf("expected no CORS header for unknown origin, got %q", got)
	}
}

func TestCORSPreflight(t *testing.T) {
	called := false
	handler := CORS([]string{"*"})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	req := httptest.NewRequest(http.MethodOptions, "/catalog/tracks", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", "GET")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusNoContent {
		t.Fatalf("expected status 204, got %d", rr.Code)
	}
	if called {
		t.Fatalf("preflight should not reach the wrapped handler")
	}
}

func TestRequestLoggingPropagatesRequestID(t *testing.T) {
	var seen string
	handler := RequestLogging()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = logging.RequestID(r.Context())
		w.WriteHeader(http.StatusTeapot)
	}))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(RequestIDHeader, "req-123")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if seen != "req-123" {
		t.Fatalf("expected request id in context, got %q", seen)
	}
	if got := rr.Header().Get(RequestIDHeader); got != "req-123" {
		t.Fatalf("expected echoed request id, got %q", got)
	}
	if rr.Code != http.StatusTeapot {
		t.Fatalf("expected status 418, got %d", rr.Code)
	}
}

func TestRequestLoggingGeneratesRequestID(t *testing.T) {
	handler := RequestLogging()(okHandler())

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

	if got := rr.Header().Get(RequestIDHeader); len(got) != 36 {
		t.Fatalf("expected generated uuid request id, got %q", got)
	}
}

func TestRecoveryWritesErrorEnvelope(t *testing.T) {
	handler := Recovery()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/catalog/tracks", nil))

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", rr.Code)
	}

	var payload struct {
		Errors []struct {
			Status int    `json:"status"`
			Code   string `json:"code"`
		} `json:"errors"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(payload.Errors) != 1 || payload.Errors[0].Code != "InternalError" || payload.Errors[0].Status != 500 {
		t.Fatalf("unexpected error payload: %#v", payload)
	}
}

func TestRecoveryAfterResponseStarted(t *testing.T) {
	handler := Recovery()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"data":[`))
		panic("boom")
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/catalog/tracks", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected original status 200, got %d", rr.Code)
	}
	if got := rr.Body.String(); got != `{"data":[` {
		t.Fatalf("expected no error envelope appended, got %q", got)
	}
}

package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"equisports-backend/internal/logging"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func TestNormalizeCID(t *testing.T) {
	if got := normalizeCID("  abc  "); got != "abc" {
		t.Fatalf("expected trimmed value, got %q", got)
	}
	if got := normalizeCID("a\r\nb"); got != "" {
		t.Fatalf("expected empty for header injection, got %q", got)
	}
	if got := normalizeCID(strings.Repeat("a", 200)); len(got) != maxCorrelationIDLen {
		t.Fatalf("expected length %d, got %d", maxCorrelationIDLen, len(got))
	}
}

func serveCID(t *testing.T, req *http.Request) (*httptest.ResponseRecorder, string) {
	t.Helper()
	var gotCID string
	h := CorrelationID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotCID = logging.CorrelationID(r.Context())
	}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec, gotCID
}

func TestCorrelationIDUsesHeader(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderCorrelationID, "header-cid")

	rec, gotCID := serveCID(t, req)

	if got := rec.Header().Get(HeaderCorrelationID); got != "header-cid" {
		t.Fatalf("expected response cid header, got %q", got)
	}
	if gotCID != "header-cid" {
		t.Fatalf("expected context cid header-cid, got %q", gotCID)
	}
}

func TestCorrelationIDFallsBackToRequestID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderRequestID, "req-1")

	_, gotCID := serveCID(t, req)

	if gotCID != "req-1" {
		t.Fatalf("expected req-1, got %q", gotCID)
	}
}

func TestCorrelationIDGeneratesWhenMissing(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	rec, gotCID := serveCID(t, req)

	if _, err := uuid.Parse(gotCID); err != nil {
		t.Fatalf("expected generated uuid, got %q", gotCID)
	}
	if got := rec.Header().Get(HeaderCorrelationID); got != gotCID {
		t.Fatalf("expected header %q to match context %q", got, gotCID)
	}
}

func TestRequestLoggerRecordsRouteAndStatus(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(logging.NewHandler(&buf, logging.Config{})))
	t.Cleanup(func() { slog.SetDefault(prev) })

	r := chi.NewRouter()
	r.Use(CorrelationID)
	r.Use(RequestLogger)
	r.Get("/equipment/{id}", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Equipment not found", http.StatusNotFound)
	})

	req := httptest.NewRequest(http.MethodGet, "/equipment/abc", nil)
	req.Header.Set(HeaderCorrelationID, "cid-log")
	r.ServeHTTP(httptest.NewRecorder(), req)

	var line map[string]any
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("decode log line %q: %v", buf.String(), err)
	}
	if line["route"] != "/equipment/{id}" {
		t.Fatalf("expected route pattern, got %v", line["route"])
	}
	if line["status"] != float64(http.StatusNotFound) {
		t.Fatalf("expected status 404, got %v", line["status"])
	}
	if line["cid"] != "cid-log" {
		t.Fatalf("expected cid-log, got %v", line["cid"])
	}
}

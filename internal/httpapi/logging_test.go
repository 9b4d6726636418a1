package httpapi

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestRequestLogger_EmitsStructuredLine(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(zerolog.New(&buf))
	defer func() { zlog = nil }()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	rr := httptest.NewRecorder()
	RequestLogger(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/brew", nil))

	out := buf.String()
	if !strings.Contains(out, `"path":"/brew"`) {
		t.Fatalf("missing path field: %q", out)
	}
	if !strings.Contains(out, `"status":418`) {
		t.Fatalf("missing status field: %q", out)
	}
	if !strings.Contains(out, `"method":"GET"`) {
		t.Fatalf("missing method field: %q", out)
	}
}

func TestRequestLogger_FallsBackToStdLog(t *testing.T) {
	zlog = nil
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	rr := httptest.NewRecorder()
	RequestLogger(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/x", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status=%d", rr.Code)
	}
}

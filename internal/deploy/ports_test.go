package deploy

import (
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func TestIsPortBusy(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	defer ln.Close()
	port := ln.Addr().(*net.TCPAddr).Port
	busy, _ := isPortBusy(port)
	if !busy {
		t.Fatalf("expected port busy for %d", port)
	}
}

func TestWaitHTTP(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) }))
	defer ts.Close()
	if err := waitHTTP(context.Background(), ts.URL, 200, 3*time.Second); err != nil {
		t.Fatalf("waitHTTP: %v", err)
	}
}

func TestWaitHTTPPollsUntilReady(t *testing.T) {
	var calls int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 2 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(200)
	}))
	defer ts.Close()
	if err := waitHTTP(context.Background(), ts.URL, 200, 5*time.Second); err != nil {
		t.Fatalf("waitHTTP: %v", err)
	}
	if atomic.LoadInt32(&calls) < 2 {
		t.Fatalf("expected polling, got %d calls", calls)
	}
}

func TestWaitHTTPTimesOut(t *testing.T) {
	// Nothing listens here.
	err := waitHTTP(context.Background(), "http://127.0.0.1:59999/health", 200, 1500*time.Millisecond)
	if err == nil {
		t.Fatalf("expected timeout error")
	}
}

package transport_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"plexquery/internal/transport"
)

func TestGetSendsStandardHeaders(t *testing.T) {
	var got http.Header
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		_, _ = w.Write([]byte("<MediaContainer/>"))
	}))
	defer server.Close()

	tr := transport.New(transport.Options{ClientIdentifier: "test-client"})
	ctx := transport.WithRequestID(context.Background(), "req-1")
	body, err := tr.Get(ctx, server.URL+"/library/sections")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if string(body) != "<MediaContainer/>" {
		t.Fatalf("unexpected body %q", body)
	}

	expect := map[string]string{
		"Accept":                   "application/xml",
		"X-Plex-Client-Identifier": "test-client",
		"X-Plex-Product":           "plexquery",
		"X-Request-ID":             "req-1",
	}
	for key, want := range expect {
		if got.Get(key) != want {
			t.Errorf("header %s: got %q want %q", key, got.Get(key), want)
		}
	}
	if !strings.HasPrefix(got.Get("User-Agent"), "plexquery/") {
		t.Errorf("unexpected user agent %q", got.Get("User-Agent"))
	}
}

func TestGeneratedClientIdentifier(t *testing.T) {
	tr := transport.New(transport.Options{})
	id := tr.ClientIdentifier()
	if len(id) != 32 || strings.Contains(id, "-") {
		t.Fatalf("expected dashless uuid, got %q", id)
	}
	if other := transport.New(transport.Options{}).ClientIdentifier(); other == id {
		t.Fatal("expected distinct identifiers per transport")
	}
}

func TestGetReportsStatusErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "token required", http.StatusUnauthorized)
	}))
	defer server.Close()

	tr := transport.New(transport.Options{})
	_, err := tr.Get(context.Background(), server.URL+"/")
	if !errors.Is(err, transport.ErrStatus) {
		t.Fatalf("expected ErrStatus, got %v", err)
	}
	if !strings.Contains(err.Error(), "401") || !strings.Contains(err.Error(), "token required") {
		t.Fatalf("expected status and body in error, got %q", err)
	}
}

func TestGetHonoursTimeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)

	tr := transport.New(transport.Options{Timeout: 50 * time.Millisecond})
	if _, err := tr.Get(context.Background(), server.URL+"/"); err == nil {
		t.Fatal("expected timeout error")
	}
}

func TestGetHonoursContextCancel(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<MediaContainer/>"))
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := transport.New(transport.Options{}).Get(ctx, server.URL+"/")
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestGetRejectsOversizedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(strings.Repeat("x", 17)))
	}))
	defer server.Close()

	_, err := transport.New(transport.Options{MaxBodyBytes: 16}).Get(context.Background(), server.URL+"/")
	if !errors.Is(err, transport.ErrBodyTooLarge) {
		t.Fatalf("expected ErrBodyTooLarge, got %v", err)
	}
	if !strings.Contains(err.Error(), "16 bytes") {
		t.Fatalf("expected limit in error, got %q", err)
	}
}

func TestGetAcceptsBodyAtLimit(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(strings.Repeat("x", 16)))
	}))
	defer server.Close()

	body, err := transport.New(transport.Options{MaxBodyBytes: 16}).Get(context.Background(), server.URL+"/")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if len(body) != 16 {
		t.Fatalf("expected 16 bytes, got %d", len(body))
	}
}

type stubDoer struct {
	err error
}

func (s stubDoer) Do(*http.Request) (*http.Response, error) { return nil, s.err }

func TestGetWrapsDoerError(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	tr := transport.NewWithDoer(stubDoer{err: cause}, transport.Options{})
	if _, err := tr.Get(context.Background(), "http://plex.invalid:32400/"); !errors.Is(err, cause) {
		t.Fatalf("expected doer error wrapped, got %v", err)
	}
}

func TestRequestIDRoundTrip(t *testing.T) {
	ctx := transport.WithRequestID(context.Background(), "abc")
	if id, ok := transport.RequestIDFromContext(ctx); !ok || id != "abc" {
		t.Fatalf("unexpected request id %q %v", id, ok)
	}
	if _, ok := transport.RequestIDFromContext(transport.WithRequestID(context.Background(), "")); ok {
		t.Fatal("empty id should not be stored")
	}
}

package transport

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"runtime"
	"strings"
	"time"

	"github.com/google/uuid"

	"plexquery/internal/logging"
)

const (
	productName    = "plexquery"
	productVersion = "0.1.0"

	defaultTimeout      = 10 * time.Second
	defaultMaxBodyBytes = 32 << 20
	errorBodyLimit      = 2048
)

// ErrStatus marks responses that arrived with a non-2xx status.
var ErrStatus = errors.New("unexpected http status")

// ErrBodyTooLarge marks responses longer than Options.MaxBodyBytes.
var ErrBodyTooLarge = errors.New("response exceeds size limit")

// HTTPDoer abstracts http.Client.Do for testing.
type HTTPDoer interface {
	Do(*http.Request) (*http.Response, error)
}

// Options configures an HTTP transport.
type Options struct {
	Timeout          time.Duration
	ClientIdentifier string
	MaxBodyBytes     int64
	Logger           *slog.Logger
}

// HTTP performs GET requests against a Plex server.
type HTTP struct {
	client           HTTPDoer
	clientIdentifier string
	maxBodyBytes     int64
	logger           *slog.Logger
}

// New returns a transport backed by an http.Client with the configured
// timeout.
func New(opts Options) *HTTP {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return NewWithDoer(&http.Client{Timeout: timeout}, opts)
}

// NewWithDoer returns a transport that sends requests through client.
func NewWithDoer(client HTTPDoer, opts Options) *HTTP {
	id := strings.TrimSpace(opts.ClientIdentifier)
	if id == "" {
		id = strings.ReplaceAll(uuid.New().String(), "-", "")
	}
	maxBody := opts.MaxBodyBytes
	if maxBody <= 0 {
		maxBody = defaultMaxBodyBytes
	}
	return &HTTP{
		client:           client,
		clientIdentifier: id,
		maxBodyBytes:     maxBody,
		logger:           logging.NewComponentLogger(opts.Logger, "transport"),
	}
}

// ClientIdentifier returns the X-Plex-Client-Identifier sent with requests.
func (t *HTTP) ClientIdentifier() string { return t.clientIdentifier }

// Get fetches url and returns the response body.
func (t *HTTP) Get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/xml")
	applyStandardHeaders(req, t.clientIdentifier)

	attrs := []any{logging.URL(url)}
	if id, ok := RequestIDFromContext(ctx); ok {
		req.Header.Set("X-Request-ID", id)
		attrs = append(attrs, logging.RequestID(id))
	}

	started := time.Now()
	resp, err := t.client.Do(req)
	if err != nil {
		t.logger.Debug("plex request failed", append(attrs, logging.Error(err))...)
		return nil, fmt.Errorf("plex request failed: %w", err)
	}
	defer resp.Body.Close()

	t.logger.Debug("plex request",
		append(attrs, logging.Status(resp.StatusCode), logging.Elapsed(time.Since(started)))...)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyLimit))
		return nil, fmt.Errorf("%w: GET %s returned %d: %s", ErrStatus, url, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, t.maxBodyBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if int64(len(body)) > t.maxBodyBytes {
		return nil, fmt.Errorf("%w: GET %s exceeds %d bytes", ErrBodyTooLarge, url, t.maxBodyBytes)
	}
	return body, nil
}

func applyStandardHeaders(req *http.Request, clientIdentifier string) {
	req.Header.Set("X-Plex-Client-Identifier", clientIdentifier)
	req.Header.Set("X-Plex-Product", productName)
	req.Header.Set("X-Plex-Version", productVersion)
	req.Header.Set("X-Plex-Device-Name", productName)
	req.Header.Set("X-Plex-Platform", runtime.GOOS)
	req.Header.Set("User-Agent", productName+"/"+productVersion)
}

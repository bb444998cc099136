package plex

import (
	"context"
	"strconv"
	"strings"
)

const defaultScheme = "http"

// Transport performs a single GET request and returns the response body.
// Implementations report every network-level failure (including timeouts and
// unexpected statuses) as an error.
type Transport interface {
	Get(ctx context.Context, url string) ([]byte, error)
}

// TransportFunc adapts a function to the Transport interface.
type TransportFunc func(ctx context.Context, url string) ([]byte, error)

func (f TransportFunc) Get(ctx context.Context, url string) ([]byte, error) {
	return f(ctx, url)
}

// BaseURL builds http://<address>:<port>, adding the scheme when the address
// does not already carry one ("scheme://").
func BaseURL(address string, port int) string {
	address = strings.TrimRight(strings.TrimSpace(address), "/")
	if !strings.Contains(address, "://") {
		address = defaultScheme + "://" + address
	}
	return address + ":" + strconv.Itoa(port)
}

// Client issues catalog queries against one server.
type Client struct {
	baseURL   string
	transport Transport
}

// NewClient returns a query client for address:port.
func NewClient(address string, port int, transport Transport) *Client {
	return &Client{
		baseURL:   BaseURL(address, port),
		transport: transport,
	}
}

// BaseURL returns the resolved server address including scheme and port.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// URL resolves endpoint+suffix against the base address.
func (c *Client) URL(endpoint Endpoint, suffix string) string {
	path := string(endpoint) + suffix
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return c.baseURL + path
}

// Query fetches the raw document bytes for endpoint+suffix. Every failure is
// reported as ErrConnection.
func (c *Client) Query(ctx context.Context, endpoint Endpoint, suffix string) ([]byte, error) {
	url := c.URL(endpoint, suffix)
	if c.transport == nil {
		return nil, wrap(ErrConnection, "query", url, errNoTransport)
	}
	body, err := c.transport.Get(ctx, url)
	if err != nil {
		return nil, wrap(ErrConnection, "query", url, err)
	}
	return body, nil
}

// Fetch queries endpoint+suffix and parses the response.
func (c *Client) Fetch(ctx context.Context, endpoint Endpoint, suffix string) (*Document, error) {
	body, err := c.Query(ctx, endpoint, suffix)
	if err != nil {
		return nil, err
	}
	return ParseDocument(body)
}

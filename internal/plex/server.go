package plex

import (
	"context"
	"errors"
	"strings"
)

// Server is one Plex Media Server reachable at address:port. Its info
// document is captured once, by the connectivity probe in NewServer.
type Server struct {
	address string
	port    int
	client  *Client
	info    *Document
}

// NewServer builds the query client and probes the server root. Any
// transport failure during the probe is returned as ErrConnection and no
// Server is produced.
func NewServer(ctx context.Context, address string, port int, transport Transport) (*Server, error) {
	if strings.TrimSpace(address) == "" {
		return nil, wrap(ErrConnection, "connect", "server address is empty", nil)
	}
	if port <= 0 || port > 65535 {
		return nil, wrap(ErrConnection, "connect", "server port out of range", nil)
	}
	if transport == nil {
		return nil, wrap(ErrConnection, "connect", "", errNoTransport)
	}

	client := NewClient(address, port, transport)
	info, err := client.Fetch(ctx, EndpointServerInfo, "")
	if err != nil {
		if errors.Is(err, ErrConnection) {
			return nil, err
		}
		// A probe that reaches something other than a Plex server is still
		// a failed connection from the caller's point of view.
		return nil, wrap(ErrConnection, "connect", client.BaseURL(), err)
	}

	return &Server{
		address: strings.TrimRight(strings.TrimSpace(address), "/"),
		port:    port,
		client:  client,
		info:    info,
	}, nil
}

// Address returns the address the server was built with, minus trailing
// slashes.
func (s *Server) Address() string { return s.address }

// Port returns the configured port.
func (s *Server) Port() int { return s.port }

// BaseURL returns http://address:port.
func (s *Server) BaseURL() string { return s.client.BaseURL() }

// Client exposes the query client bound to this server.
func (s *Server) Client() *Client { return s.client }

// Query fetches raw bytes for endpoint+suffix.
func (s *Server) Query(ctx context.Context, endpoint Endpoint, suffix string) ([]byte, error) {
	return s.client.Query(ctx, endpoint, suffix)
}

// Fetch fetches and parses endpoint+suffix.
func (s *Server) Fetch(ctx context.Context, endpoint Endpoint, suffix string) (*Document, error) {
	return s.client.Fetch(ctx, endpoint, suffix)
}

// Info materializes the captured root document.
func (s *Server) Info() *Entity {
	return Materialize("Server", s.info)
}

// InfoDocument returns the captured root document.
func (s *Server) InfoDocument() *Document { return s.info }

// JSON renders the captured root document.
func (s *Server) JSON() ([]byte, error) { return ToJSON(s.info) }

// XML re-encodes the captured root document.
func (s *Server) XML() ([]byte, error) { return s.info.XML() }

// Render renders the captured root document in format.
func (s *Server) Render(format Format) ([]byte, error) { return Render(s.info, format) }

func (s *Server) String() string {
	data, err := s.JSON()
	if err != nil {
		return s.BaseURL()
	}
	return string(data)
}

// Preferences binds the server preferences endpoint.
func (s *Server) Preferences() *Preferences {
	return &Preferences{Container: newContainer(s.client, EndpointPreferences, "Setting")}
}

// Servers binds the server list endpoint.
func (s *Server) Servers() *Servers {
	return &Servers{Container: newContainer(s.client, EndpointServers, "Server")}
}

// Channels binds the installed channel list endpoint.
func (s *Server) Channels() *Channels {
	return &Channels{Container: newContainer(s.client, EndpointChannels, "Channel")}
}

// Library returns the library view of this server.
func (s *Server) Library() *Library {
	return &Library{client: s.client}
}

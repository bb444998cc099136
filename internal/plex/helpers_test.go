package plex_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"plexquery/internal/plex"
)

const testBase = "http://plex.test:32400"

// fakeTransport serves canned bodies keyed by full URL and records every call.
type fakeTransport struct {
	mu        sync.Mutex
	responses map[string][]byte
	failures  map[string]error
	calls     []string
}

func newFakeTransport() *fakeTransport {
	return &fakeTransport{
		responses: make(map[string][]byte),
		failures:  make(map[string]error),
	}
}

func (f *fakeTransport) serve(path string, body []byte) {
	f.responses[testBase+path] = body
}

func (f *fakeTransport) fail(path string, err error) {
	f.failures[testBase+path] = err
}

func (f *fakeTransport) Get(_ context.Context, url string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, url)
	if err, ok := f.failures[url]; ok {
		return nil, err
	}
	body, ok := f.responses[url]
	if !ok {
		return nil, errors.New("no route for " + url)
	}
	return body, nil
}

func (f *fakeTransport) count(path string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, call := range f.calls {
		if call == testBase+path {
			n++
		}
	}
	return n
}

func readFixture(t *testing.T, name string) []byte {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", name))
	if err != nil {
		t.Fatalf("read fixture %s: %v", name, err)
	}
	return data
}

// newTestServer wires a fake transport that already answers the root probe.
func newTestServer(t *testing.T) (*plex.Server, *fakeTransport) {
	t.Helper()
	ft := newFakeTransport()
	ft.serve("/", readFixture(t, "server_info.xml"))
	srv, err := plex.NewServer(context.Background(), "plex.test", 32400, ft)
	if err != nil {
		t.Fatalf("NewServer: %v", err)
	}
	return srv, ft
}

func mustParse(t *testing.T, data string) *plex.Document {
	t.Helper()
	doc, err := plex.ParseDocument([]byte(data))
	if err != nil {
		t.Fatalf("ParseDocument: %v", err)
	}
	return doc
}

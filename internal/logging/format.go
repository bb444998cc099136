package logging

import (
	"log/slog"
	"net/url"
	"strconv"
	"strings"
	"time"
	"unicode"
)

const (
	plexTokenParam = "X-Plex-Token"
	redacted       = "REDACTED"
	shortIDLength  = 8
)

// redactURL masks the X-Plex-Token query parameter. Unparseable input is
// returned unchanged.
func redactURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.RawQuery == "" {
		return raw
	}
	query := u.Query()
	if !query.Has(plexTokenParam) {
		return raw
	}
	query.Set(plexTokenParam, redacted)
	u.RawQuery = query.Encode()
	return u.String()
}

// requestTarget drops scheme and host; every request in a run goes to the
// same server.
func requestTarget(raw string) string {
	u, err := url.Parse(redactURL(raw))
	if err != nil || u.Host == "" {
		return raw
	}
	return u.RequestURI()
}

func shortID(id string) string {
	id = strings.TrimSpace(id)
	if len(id) > shortIDLength {
		return id[:shortIDLength]
	}
	return id
}

func roundElapsed(d time.Duration) time.Duration {
	if d >= time.Millisecond {
		return d.Round(time.Millisecond)
	}
	return d.Round(time.Microsecond)
}

func formatValue(v slog.Value) string {
	v = v.Resolve()
	switch v.Kind() {
	case slog.KindDuration:
		return roundElapsed(v.Duration()).String()
	case slog.KindTime:
		return v.Time().UTC().Format(time.RFC3339)
	}
	s := v.String()
	if needsQuotes(s) {
		return strconv.Quote(s)
	}
	return s
}

func needsQuotes(s string) bool {
	return s == "" || strings.ContainsFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || unicode.IsControl(r) || r == '=' || r == '"'
	})
}

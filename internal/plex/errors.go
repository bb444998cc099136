package plex

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrConnection           = errors.New("plex connection error")
	ErrMissingVideoKey      = errors.New("missing video key")
	ErrMissingSeasonKey     = errors.New("missing season key")
	ErrLibraryUndefinedType = errors.New("library undefined type")
	ErrIndexOutOfRange      = errors.New("episode index out of range")
	ErrMalformedDocument    = errors.New("malformed document")
	ErrMissingPart          = errors.New("media part missing")

	errNoTransport = errors.New("no transport configured")
)

// wrap tags err with one of the sentinel markers above so callers can branch
// with errors.Is while the message keeps the operation context.
func wrap(marker error, operation, message string, err error) error {
	detail := buildDetail(operation, message)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

func buildDetail(operation, message string) string {
	parts := make([]string, 0, 2)
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "plex failure"
	}
	return strings.Join(parts, ": ")
}

// Package config loads, normalizes, and validates plexquery configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment fallbacks such as
// PLEX_ADDRESS and PLEX_PORT. The Config type centralizes the server address,
// request timeout, output mode, and logging settings the CLI needs.
//
// Always obtain settings through this package so downstream code receives
// sanitized values and clear validation errors.
package config

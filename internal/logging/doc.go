// Package logging assembles structured slog loggers for plexquery.
//
// The console handler prints one line per record and folds the request
// fields logged by the transport (request id, URL, status, elapsed) into a
// short subject after the message. Both handlers mask X-Plex-Token query
// parameters. Logs go to stderr so command output on stdout stays
// machine-readable.
package logging

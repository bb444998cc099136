// Package plex materializes Plex Media Server XML responses into typed,
// read-only entities.
//
// A Server is built from an address, a port, and a Transport; construction
// probes the server root and keeps that document. Containers (Sections,
// Channels, RecentlyAdded, ...) bind one catalog endpoint each and re-fetch on
// every call. RecentlyAdded dispatches its children into Movies and Episodes;
// an Episode costs a second round trip because the listing only carries a
// season summary, so the full episode record is looked up by position in the
// season's metadata document.
//
// Every failure is one of the exported sentinel errors (ErrConnection,
// ErrMissingSeasonKey, ...) wrapped with context; match them with errors.Is.
// The package never logs and never retries.
package plex

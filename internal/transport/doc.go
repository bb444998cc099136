// Package transport supplies the HTTP collaborator the plex package queries
// through. It issues plain GET requests with the standard X-Plex product
// headers, turns non-2xx statuses into errors, and logs each round trip at
// debug level. Timeouts come from the configured http.Client.
package transport

// Command plexquery reads catalog information from a Plex Media Server:
// server info, settings, channels, library sections, sessions, on-deck and
// recently added items, and raw metadata documents. Results render as tables
// on a terminal and as JSON otherwise.
package main

package plex

import (
	"context"
	"strconv"
	"strings"
)

const (
	tagDirectory = "Directory"
	tagVideo     = "Video"
	tagMedia     = "Media"
	tagPart      = "Part"
)

// Library groups the library-scoped endpoints of a server.
type Library struct {
	client *Client
}

// Sections binds the section listing.
func (l *Library) Sections() *Sections {
	return &Sections{Container: newContainer(l.client, EndpointLibrarySections, "Section")}
}

// NowPlaying binds the active session listing.
func (l *Library) NowPlaying() *NowPlaying {
	return &NowPlaying{Container: newContainer(l.client, EndpointNowPlaying, "Session")}
}

// OnDeck binds the on-deck listing.
func (l *Library) OnDeck() *OnDeck {
	return &OnDeck{Container: newContainer(l.client, EndpointOnDeck, "Video")}
}

// RecentlyAdded binds the recently-added listing.
func (l *Library) RecentlyAdded() *RecentlyAdded {
	return &RecentlyAdded{Container: newContainer(l.client, EndpointRecentlyAdded, "Video")}
}

// SectionTypes maps each section's numeric key to its type (movie, show,
// artist, ...). Sections whose key is not numeric are skipped.
func (l *Library) SectionTypes(ctx context.Context) (map[int]string, error) {
	items, err := l.Sections().Items(ctx)
	if err != nil {
		return nil, err
	}
	out := make(map[int]string, len(items))
	for _, section := range items {
		key, err := strconv.Atoi(section.Key())
		if err != nil {
			continue
		}
		out[key] = section.Type()
	}
	return out, nil
}

// Metadata fetches /library/metadata/<key>. A leading "/library/metadata/"
// on key is tolerated.
func (l *Library) Metadata(ctx context.Context, key string) (*Document, error) {
	key = strings.TrimPrefix(strings.TrimSpace(key), string(EndpointMetadata))
	return l.client.Fetch(ctx, EndpointMetadata, strings.TrimPrefix(key, "/"))
}

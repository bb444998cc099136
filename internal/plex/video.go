package plex

import (
	"context"
	"strconv"
	"strings"
)

// VideoKind distinguishes the Video variants.
type VideoKind int

const (
	KindAny VideoKind = iota
	KindMovie
	KindEpisode
)

func (k VideoKind) String() string {
	switch k {
	case KindMovie:
		return "movie"
	case KindEpisode:
		return "episode"
	default:
		return "all"
	}
}

// ParseVideoKind accepts movie(s), episode(s)/show(s)/tv, or all.
func ParseVideoKind(value string) (VideoKind, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "all":
		return KindAny, true
	case "movie", "movies":
		return KindMovie, true
	case "episode", "episodes", "show", "shows", "tv":
		return KindEpisode, true
	default:
		return KindAny, false
	}
}

// Video is a resolved library item.
type Video interface {
	Kind() VideoKind
	Key() string
	Title() string
	Entity() *Entity
	Media() *Media
	JSON() ([]byte, error)
	XML() ([]byte, error)
}

// Movie is built directly from its listing node; the listing already carries
// the full record.
type Movie struct {
	entity *Entity
}

// NewMovie materializes a Video listing node.
func NewMovie(node *Document) *Movie {
	return &Movie{entity: Materialize("Movie", node)}
}

func (m *Movie) Kind() VideoKind              { return KindMovie }
func (m *Movie) Key() string                  { return m.entity.String("key") }
func (m *Movie) Title() string                { return m.entity.String("title") }
func (m *Movie) Entity() *Entity              { return m.entity }
func (m *Movie) Media() *Media                { return &Media{node: m.entity.node} }
func (m *Movie) JSON() ([]byte, error)        { return m.entity.JSON() }
func (m *Movie) XML() ([]byte, error)         { return m.entity.XML() }
func (m *Movie) MarshalJSON() ([]byte, error) { return m.entity.MarshalJSON() }

// Episode is built from a season summary stub. Construction fetches the
// season's metadata document and swaps the stub for the episode node at
// position leafCount-1; the fields never mix stub and episode attributes.
type Episode struct {
	entity     *Entity
	stub       *Entity
	seasonPath string
	index      int
}

// NewEpisode resolves stub against the season metadata document.
func NewEpisode(ctx context.Context, client *Client, stub *Document) (*Episode, error) {
	key, ok := stub.Attr("key")
	if !ok {
		return nil, wrap(ErrMissingSeasonKey, "resolve episode", "stub has no key attribute", nil)
	}

	seasonPath := SeasonPath(key)
	season, err := client.Fetch(ctx, EndpointMetadata, seasonPath)
	if err != nil {
		return nil, err
	}

	rawLeafCount, ok := stub.Attr("leafCount")
	if !ok {
		return nil, wrap(ErrMissingVideoKey, "resolve episode", "stub has no leafCount attribute", nil)
	}
	leafCount, err := strconv.Atoi(strings.TrimSpace(rawLeafCount))
	if err != nil {
		return nil, wrap(ErrMissingVideoKey, "resolve episode", "leafCount is not an integer", err)
	}

	// Season children are numbered from 1.
	index := leafCount - 1
	node, ok := season.ChildAt(index)
	if !ok {
		return nil, wrap(ErrIndexOutOfRange, "resolve episode",
			"index "+strconv.Itoa(index)+" outside "+strconv.Itoa(season.Len())+" season entries", nil)
	}

	return &Episode{
		entity:     Materialize("Episode", node),
		stub:       Materialize("Season", stub),
		seasonPath: seasonPath,
		index:      index,
	}, nil
}

// SeasonPath keeps the last two "/"-separated segments of a season key, the
// part appended to the metadata endpoint.
func SeasonPath(key string) string {
	parts := strings.Split(key, "/")
	if len(parts) > 2 {
		parts = parts[len(parts)-2:]
	}
	return strings.Join(parts, "/")
}

func (e *Episode) Kind() VideoKind              { return KindEpisode }
func (e *Episode) Key() string                  { return e.entity.String("key") }
func (e *Episode) Title() string                { return e.entity.String("title") }
func (e *Episode) Entity() *Entity              { return e.entity }
func (e *Episode) Media() *Media                { return &Media{node: e.entity.node} }
func (e *Episode) JSON() ([]byte, error)        { return e.entity.JSON() }
func (e *Episode) XML() ([]byte, error)         { return e.entity.XML() }
func (e *Episode) MarshalJSON() ([]byte, error) { return e.entity.MarshalJSON() }

// Season returns the season summary the episode was resolved from.
func (e *Episode) Season() *Entity { return e.stub }

// SeasonPath returns the metadata suffix that was fetched.
func (e *Episode) SeasonPath() string { return e.seasonPath }

// Index returns the zero-based position selected in the season document.
func (e *Episode) Index() int { return e.index }

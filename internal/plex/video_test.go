package plex_test

import (
	"context"
	"errors"
	"maps"
	"strings"
	"testing"

	"plexquery/internal/plex"
)

const seasonPath = "/library/metadata/500/children"

func TestRecentlyAddedDispatchesInDocumentOrder(t *testing.T) {
	srv, ft := newTestServer(t)
	ft.serve("/library/recentlyAdded", readFixture(t, "recently_added.xml"))
	ft.serve(seasonPath, readFixture(t, "season_500.xml"))

	items, err := srv.Library().RecentlyAdded().Items(context.Background())
	if err != nil {
		t.Fatalf("Items: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}

	episode, ok := items[0].(*plex.Episode)
	if !ok {
		t.Fatalf("expected first item to be an Episode, got %T", items[0])
	}
	if episode.Kind() != plex.KindEpisode || episode.Title() != "Static" {
		t.Fatalf("unexpected episode %q", episode.Title())
	}

	movie, ok := items[1].(*plex.Movie)
	if !ok {
		t.Fatalf("expected second item to be a Movie, got %T", items[1])
	}
	if movie.Kind() != plex.KindMovie || movie.Title() != "Arrival" {
		t.Fatalf("unexpected movie %q", movie.Title())
	}
	if key, ok := movie.Entity().Int("ratingKey"); !ok || key != 42 {
		t.Fatalf("expected ratingKey 42, got %d %v", key, ok)
	}
	if ft.count(seasonPath) != 1 {
		t.Fatalf("expected one season lookup, got %d", ft.count(seasonPath))
	}
}

func TestRecentlyAddedItemsAreIdempotent(t *testing.T) {
	srv, ft := newTestServer(t)
	ft.serve("/library/recentlyAdded", readFixture(t, "recently_added.xml"))
	ft.serve(seasonPath, readFixture(t, "season_500.xml"))
	recent := srv.Library().RecentlyAdded()
	ctx := context.Background()

	first, err := recent.Items(ctx)
	if err != nil {
		t.Fatalf("Items: %v", err)
	}
	second, err := recent.Items(ctx)
	if err != nil {
		t.Fatalf("Items: %v", err)
	}
	if ft.count("/library/recentlyAdded") != 2 || ft.count(seasonPath) != 2 {
		t.Fatalf("expected every read to re-fetch, got %d listing and %d season calls",
			ft.count("/library/recentlyAdded"), ft.count(seasonPath))
	}
	if len(first) != len(second) {
		t.Fatalf("item counts differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].Kind() != second[i].Kind() {
			t.Errorf("item %d: kind %v vs %v", i, first[i].Kind(), second[i].Kind())
		}
		if !maps.Equal(first[i].Entity().Fields(), second[i].Entity().Fields()) {
			t.Errorf("item %d: fields differ: %v vs %v", i, first[i].Entity().Fields(), second[i].Entity().Fields())
		}
	}
}

func TestRecentlyAddedRejectsUnknownTag(t *testing.T) {
	srv, ft := newTestServer(t)
	ft.serve("/library/recentlyAdded", []byte(`<MediaContainer><Directory key="/library/metadata/500/children" leafCount="3"/><Track title="Song"/></MediaContainer>`))
	ft.serve(seasonPath, readFixture(t, "season_500.xml"))

	_, err := srv.Library().RecentlyAdded().Items(context.Background())
	if !errors.Is(err, plex.ErrLibraryUndefinedType) {
		t.Fatalf("expected ErrLibraryUndefinedType, got %v", err)
	}
	if !strings.Contains(err.Error(), "Track") {
		t.Fatalf("expected offending tag in error, got %q", err)
	}
	if ft.count(seasonPath) != 0 {
		t.Fatal("unknown tags must fail before any season lookups")
	}
}

func TestRecentlyAddedFilter(t *testing.T) {
	srv, ft := newTestServer(t)
	ft.serve("/library/recentlyAdded", readFixture(t, "recently_added.xml"))
	ft.serve(seasonPath, readFixture(t, "season_500.xml"))
	recent := srv.Library().RecentlyAdded()
	ctx := context.Background()

	movies, err := recent.Filter(ctx, plex.KindMovie)
	if err != nil {
		t.Fatalf("Filter movies: %v", err)
	}
	if len(movies) != 1 || movies[0].Title() != "Arrival" {
		t.Fatalf("unexpected movies %v", movies)
	}
	if ft.count(seasonPath) != 0 {
		t.Fatal("filtering on movies must not resolve episodes")
	}

	episodes, err := recent.Filter(ctx, plex.KindEpisode)
	if err != nil {
		t.Fatalf("Filter episodes: %v", err)
	}
	if len(episodes) != 1 || episodes[0].Kind() != plex.KindEpisode {
		t.Fatalf("unexpected episodes %v", episodes)
	}
}

func TestNewEpisodeSelectsLeafCountMinusOne(t *testing.T) {
	srv, ft := newTestServer(t)
	ft.serve(seasonPath, readFixture(t, "season_500.xml"))
	stub := mustParse(t, `<Directory key="/library/metadata/500/children" title="Season 2" leafCount="3" librarySectionTitle="TV Shows"/>`)

	episode, err := plex.NewEpisode(context.Background(), srv.Client(), stub)
	if err != nil {
		t.Fatalf("NewEpisode: %v", err)
	}
	if episode.Index() != 2 {
		t.Fatalf("expected index 2, got %d", episode.Index())
	}
	if episode.SeasonPath() != "500/children" {
		t.Fatalf("unexpected season path %q", episode.SeasonPath())
	}
	if key, _ := episode.Entity().Int("ratingKey"); key != 503 {
		t.Fatalf("expected ratingKey 503, got %d", key)
	}
	// Fields come from the episode node only.
	if _, ok := episode.Entity().Field("leafCount"); ok {
		t.Fatal("stub attributes leaked into the episode")
	}
	if _, ok := episode.Entity().Field("librarySectionTitle"); ok {
		t.Fatal("stub attributes leaked into the episode")
	}
	if episode.Season().String("title") != "Season 2" {
		t.Fatalf("expected season stub kept, got %q", episode.Season().String("title"))
	}
}

func TestNewEpisodeIsIdempotent(t *testing.T) {
	srv, ft := newTestServer(t)
	ft.serve(seasonPath, readFixture(t, "season_500.xml"))
	stub := mustParse(t, `<Directory key="/library/metadata/500/children" leafCount="3"/>`)
	ctx := context.Background()

	first, err := plex.NewEpisode(ctx, srv.Client(), stub)
	if err != nil {
		t.Fatalf("NewEpisode: %v", err)
	}
	second, err := plex.NewEpisode(ctx, srv.Client(), stub)
	if err != nil {
		t.Fatalf("NewEpisode: %v", err)
	}
	if ft.count(seasonPath) != 2 {
		t.Fatalf("expected two season fetches, got %d", ft.count(seasonPath))
	}
	if first.Index() != second.Index() || first.SeasonPath() != second.SeasonPath() {
		t.Fatalf("resolution differs: %d %q vs %d %q", first.Index(), first.SeasonPath(), second.Index(), second.SeasonPath())
	}
	if !maps.Equal(first.Entity().Fields(), second.Entity().Fields()) {
		t.Fatalf("fields differ: %v vs %v", first.Entity().Fields(), second.Entity().Fields())
	}
	if len(stub.Attrs()) != 2 {
		t.Fatalf("stub should be left untouched, got %v", stub.Attrs())
	}
}

func TestNewEpisodeIndexOutOfRange(t *testing.T) {
	srv, ft := newTestServer(t)
	ft.serve(seasonPath, readFixture(t, "season_500.xml"))

	for _, leafCount := range []string{"6", "0"} {
		stub := mustParse(t, `<Directory key="/library/metadata/500/children" leafCount="`+leafCount+`"/>`)
		_, err := plex.NewEpisode(context.Background(), srv.Client(), stub)
		if !errors.Is(err, plex.ErrIndexOutOfRange) {
			t.Fatalf("leafCount %s: expected ErrIndexOutOfRange, got %v", leafCount, err)
		}
	}
}

func TestNewEpisodeMissingKeys(t *testing.T) {
	srv, ft := newTestServer(t)
	ft.serve(seasonPath, readFixture(t, "season_500.xml"))
	ctx := context.Background()

	_, err := plex.NewEpisode(ctx, srv.Client(), mustParse(t, `<Directory leafCount="3"/>`))
	if !errors.Is(err, plex.ErrMissingSeasonKey) {
		t.Fatalf("expected ErrMissingSeasonKey, got %v", err)
	}
	if ft.count(seasonPath) != 0 {
		t.Fatal("missing key must fail before fetching")
	}

	_, err = plex.NewEpisode(ctx, srv.Client(), mustParse(t, `<Directory key="/library/metadata/500/children"/>`))
	if !errors.Is(err, plex.ErrMissingVideoKey) {
		t.Fatalf("expected ErrMissingVideoKey, got %v", err)
	}

	_, err = plex.NewEpisode(ctx, srv.Client(), mustParse(t, `<Directory key="/library/metadata/500/children" leafCount="three"/>`))
	if !errors.Is(err, plex.ErrMissingVideoKey) {
		t.Fatalf("expected ErrMissingVideoKey for non-numeric leafCount, got %v", err)
	}
}

func TestNewEpisodeSeasonFetchFailure(t *testing.T) {
	srv, ft := newTestServer(t)
	ft.fail(seasonPath, errors.New("timeout"))

	_, err := plex.NewEpisode(context.Background(), srv.Client(), mustParse(t, `<Directory key="/library/metadata/500/children" leafCount="1"/>`))
	if !errors.Is(err, plex.ErrConnection) {
		t.Fatalf("expected ErrConnection, got %v", err)
	}
}

func TestSeasonPath(t *testing.T) {
	tests := map[string]string{
		"/library/metadata/500/children": "500/children",
		"/library/metadata/500":          "metadata/500",
		"500/children":                   "500/children",
		"500":                            "500",
		"":                               "",
	}
	for key, want := range tests {
		if got := plex.SeasonPath(key); got != want {
			t.Errorf("SeasonPath(%q) = %q, want %q", key, got, want)
		}
	}
}

func TestParseVideoKind(t *testing.T) {
	tests := map[string]plex.VideoKind{
		"":        plex.KindAny,
		"all":     plex.KindAny,
		"Movies":  plex.KindMovie,
		"episode": plex.KindEpisode,
		" shows ": plex.KindEpisode,
	}
	for input, want := range tests {
		got, ok := plex.ParseVideoKind(input)
		if !ok || got != want {
			t.Errorf("ParseVideoKind(%q) = %v, %v; want %v", input, got, ok, want)
		}
	}
	if _, ok := plex.ParseVideoKind("music"); ok {
		t.Error("expected music to be rejected")
	}
}

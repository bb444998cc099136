package plex

import (
	"strconv"
	"time"
)

const (
	summaryDateLayout = "01/02/2006"
	notAvailable      = "Not available"
)

// EpisodeSummary is a display-oriented digest of a resolved episode and the
// season summary it came from.
type EpisodeSummary struct {
	Library         string           `json:"type"`
	SeriesTitle     string           `json:"series_title"`
	SeriesSummary   string           `json:"series_summary"`
	SeriesCoverArt  string           `json:"series_coverart"`
	SeasonCoverArt  string           `json:"season_coverart"`
	Season          string           `json:"season"`
	Title           string           `json:"title"`
	Summary         string           `json:"summary"`
	ShowCoverArt    string           `json:"show_coverart"`
	DurationSeconds float64          `json:"duration_seconds"`
	Rating          float64          `json:"rating"`
	OriginallyAired string           `json:"originallyAvailableAt"`
	AddedAt         string           `json:"addedAt"`
	BaseType        string           `json:"basetype"`
	Children        map[string][]any `json:"children,omitempty"`
	Files           []FileSummary    `json:"files,omitempty"`
}

// FileSummary flattens a File and its Part.
type FileSummary struct {
	VideoCodec      string  `json:"video_codec,omitempty"`
	AudioCodec      string  `json:"audio_codec,omitempty"`
	VideoResolution string  `json:"video_resolution,omitempty"`
	Bitrate         int64   `json:"bitrate,omitempty"`
	Path            string  `json:"path,omitempty"`
	Size            int64   `json:"size,omitempty"`
	DurationSeconds float64 `json:"duration_seconds,omitempty"`
}

// Summary digests the episode. Dates render as MM/DD/YYYY in the local zone,
// or "Not available" when the server omitted them.
func (e *Episode) Summary() (EpisodeSummary, error) {
	season := e.stub
	ep := e.entity

	library := season.String("librarySectionTitle")
	if library == "" {
		library = "Unknown"
	}

	out := EpisodeSummary{
		Library:         library,
		SeriesTitle:     season.String("parentTitle"),
		SeriesSummary:   season.String("parentSummary"),
		SeriesCoverArt:  season.String("parentThumb"),
		SeasonCoverArt:  season.String("art"),
		Season:          season.String("title"),
		Title:           ep.String("title"),
		Summary:         ep.String("summary"),
		ShowCoverArt:    ep.String("thumb"),
		DurationSeconds: millisToSeconds(ep, "duration"),
		Rating:          parseFloat(ep.String("rating")),
		OriginallyAired: formatAirDate(ep.String("originallyAvailableAt")),
		AddedAt:         formatEpoch(ep, "addedAt"),
		BaseType:        ep.String("type"),
	}

	children := make(map[string][]any)
	for _, child := range ep.node.children {
		if child.tag == tagMedia {
			continue
		}
		children[child.tag] = append(children[child.tag], attrMap(child))
	}
	if len(children) > 0 {
		out.Children = children
	}

	files, err := e.Media().Items()
	if err != nil {
		return EpisodeSummary{}, err
	}
	for _, file := range files {
		part := file.Part()
		bitrate, _ := file.Bitrate()
		size, _ := part.Size()
		out.Files = append(out.Files, FileSummary{
			VideoCodec:      file.VideoCodec(),
			AudioCodec:      file.AudioCodec(),
			VideoResolution: file.VideoResolution(),
			Bitrate:         bitrate,
			Path:            part.Path(),
			Size:            size,
			DurationSeconds: millisToSeconds(part.Entity, "duration"),
		})
	}
	return out, nil
}

func attrMap(node *Document) map[string]string {
	out := make(map[string]string, len(node.attrs))
	for _, attr := range node.attrs {
		out[attr.Name] = attr.Value
	}
	return out
}

func millisToSeconds(e *Entity, name string) float64 {
	ms := parseFloat(e.String(name))
	return ms / 1000.0
}

func parseFloat(value string) float64 {
	if value == "" {
		return 0
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0
	}
	return f
}

func formatAirDate(value string) string {
	if value == "" {
		return notAvailable
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return notAvailable
	}
	return t.Format(summaryDateLayout)
}

func formatEpoch(e *Entity, name string) string {
	secs, ok := e.Int(name)
	if !ok {
		return notAvailable
	}
	return time.Unix(secs, 0).Format(summaryDateLayout)
}

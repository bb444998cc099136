package main

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"plexquery/internal/config"
	"plexquery/internal/plex"
)

func newRecentCommand(cc *commandContext) *cobra.Command {
	var kindFlag string
	var summaryFlag bool

	cmd := &cobra.Command{
		Use:   "recent",
		Short: "List recently added movies and episodes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, ok := plex.ParseVideoKind(kindFlag)
			if !ok {
				return fmt.Errorf("unsupported kind %q (expected all, movie, or episode)", kindFlag)
			}
			if summaryFlag {
				kind = plex.KindEpisode
			}

			format, err := cc.outputFormat(cmd)
			if err != nil {
				return err
			}
			if summaryFlag && format == config.OutputXML {
				return fmt.Errorf("--summary prints JSON or a table; xml output is not supported")
			}
			ctx, srv, err := cc.connect(cmd)
			if err != nil {
				return err
			}

			items, err := srv.Library().RecentlyAdded().Filter(ctx, kind)
			if err != nil {
				return err
			}

			if summaryFlag {
				return writeSummaries(cmd, format, items)
			}

			switch format {
			case config.OutputTable:
				return printTable(cmd, "Nothing added recently", recentHeaders, recentRows(items), recentAligns)
			case config.OutputXML:
				nodes := make([]*plex.Document, 0, len(items))
				for _, item := range items {
					nodes = append(nodes, item.Entity().Node())
				}
				container := plex.NewDocument("MediaContainer",
					[]plex.Attr{{Name: "size", Value: strconv.Itoa(len(nodes))}}, nodes...)
				return writeDocument(cmd, container, format)
			default:
				out := make([]json.RawMessage, 0, len(items))
				for _, item := range items {
					data, err := item.JSON()
					if err != nil {
						return err
					}
					out = append(out, data)
				}
				return writeJSON(cmd, out)
			}
		},
	}

	cmd.Flags().StringVarP(&kindFlag, "kind", "k", "all", "Restrict to one kind: all, movie, or episode")
	cmd.Flags().BoolVar(&summaryFlag, "summary", false, "Print episode summaries as JSON or a table (implies --kind episode)")
	return cmd
}

var (
	recentHeaders = []string{"Kind", "Title", "Added", "Files", "Size"}
	recentAligns  = []columnAlignment{alignLeft, alignLeft, alignLeft, alignRight, alignRight}
)

func recentRows(items []plex.Video) [][]string {
	rows := make([][]string, 0, len(items))
	for _, item := range items {
		entity := item.Entity()
		added := "-"
		if ts, ok := entity.Int("addedAt"); ok {
			added = humanize.Time(time.Unix(ts, 0))
		}
		rows = append(rows, []string{
			titleCase(item.Kind().String()),
			orDash(displayTitle(entity)),
			added,
			strconv.Itoa(item.Media().Len()),
			totalSize(item.Media()),
		})
	}
	return rows
}

// totalSize sums Part sizes; malformed media renders as a dash.
func totalSize(media *plex.Media) string {
	files, err := media.Items()
	if err != nil {
		return "-"
	}
	var total uint64
	for _, file := range files {
		if n, ok := file.Part().Size(); ok {
			total += uint64(n)
		}
	}
	if total == 0 {
		return "-"
	}
	return humanize.Bytes(total)
}

func writeSummaries(cmd *cobra.Command, format string, items []plex.Video) error {
	summaries := make([]plex.EpisodeSummary, 0, len(items))
	for _, item := range items {
		episode, ok := item.(*plex.Episode)
		if !ok {
			continue
		}
		summary, err := episode.Summary()
		if err != nil {
			return fmt.Errorf("summarize %s: %w", episode.Key(), err)
		}
		summaries = append(summaries, summary)
	}

	if format != config.OutputTable {
		return writeJSON(cmd, summaries)
	}

	rows := make([][]string, 0, len(summaries))
	for _, s := range summaries {
		rows = append(rows, []string{
			orDash(s.SeriesTitle),
			orDash(s.Season),
			orDash(s.Title),
			s.OriginallyAired,
			strconv.FormatFloat(s.DurationSeconds/60, 'f', 0, 64) + "m",
			strconv.Itoa(len(s.Files)),
		})
	}
	return printTable(cmd, "No recent episodes",
		[]string{"Series", "Season", "Episode", "Aired", "Length", "Files"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft, alignRight, alignRight},
	)
}

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"plexquery/internal/plex"
)

func newSectionsCommand(cc *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "sections",
		Short: "List library sections",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(cmd, cc,
				func(ctx context.Context, srv *plex.Server) (*plex.Document, error) {
					return srv.Library().Sections().Document(ctx)
				},
				func(ctx context.Context, srv *plex.Server) (tableView, error) {
					sections, err := srv.Library().Sections().Items(ctx)
					if err != nil {
						return tableView{}, err
					}
					view := tableView{
						empty:   "No library sections",
						headers: []string{"Key", "Title", "Type"},
						aligns:  []columnAlignment{alignRight},
					}
					for _, section := range sections {
						view.rows = append(view.rows, []string{
							orDash(section.Key()),
							orDash(section.Title()),
							orDash(titleCase(section.Type())),
						})
					}
					return view, nil
				},
			)
		},
	}
}

func newNowPlayingCommand(cc *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "now-playing",
		Short: "List active playback sessions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(cmd, cc,
				func(ctx context.Context, srv *plex.Server) (*plex.Document, error) {
					return srv.Library().NowPlaying().Document(ctx)
				},
				func(ctx context.Context, srv *plex.Server) (tableView, error) {
					sessions, err := srv.Library().NowPlaying().Entries(ctx)
					if err != nil {
						return tableView{}, err
					}
					view := tableView{empty: "Nothing is playing", headers: []string{"Title", "Type", "User", "Player", "State"}}
					for _, session := range sessions {
						node := session.Node()
						view.rows = append(view.rows, []string{
							orDash(displayTitle(session)),
							orDash(titleCase(session.String("type"))),
							orDash(childAttr(node, "User", "title")),
							orDash(childAttr(node, "Player", "title")),
							orDash(childAttr(node, "Player", "state")),
						})
					}
					return view, nil
				},
			)
		},
	}
}

func newOnDeckCommand(cc *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "on-deck",
		Short: "List items to continue watching",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(cmd, cc,
				func(ctx context.Context, srv *plex.Server) (*plex.Document, error) {
					return srv.Library().OnDeck().Document(ctx)
				},
				func(ctx context.Context, srv *plex.Server) (tableView, error) {
					items, err := srv.Library().OnDeck().Entries(ctx)
					if err != nil {
						return tableView{}, err
					}
					view := tableView{empty: "Nothing on deck", headers: []string{"Title", "Type", "Key"}}
					for _, item := range items {
						view.rows = append(view.rows, []string{
							orDash(displayTitle(item)),
							orDash(titleCase(item.String("type"))),
							orDash(item.String("key")),
						})
					}
					return view, nil
				},
			)
		},
	}
}

func newMetadataCommand(cc *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "metadata <key>",
		Short: "Fetch /library/metadata/<key>",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]
			return runQuery(cmd, cc,
				func(ctx context.Context, srv *plex.Server) (*plex.Document, error) {
					return srv.Library().Metadata(ctx, key)
				},
				func(ctx context.Context, srv *plex.Server) (tableView, error) {
					doc, err := srv.Library().Metadata(ctx, key)
					if err != nil {
						return tableView{}, err
					}
					view := tableView{
						empty:   fmt.Sprintf("No metadata entries for %s", key),
						headers: []string{"Tag", "Key", "Title", "Type"},
					}
					for _, child := range doc.Children() {
						entity := plex.Materialize(child.Tag(), child)
						view.rows = append(view.rows, []string{
							child.Tag(),
							orDash(entity.String("key")),
							orDash(displayTitle(entity)),
							orDash(titleCase(entity.String("type"))),
						})
					}
					return view, nil
				},
			)
		},
	}
}

// displayTitle prefixes episodes with their show title.
func displayTitle(entity *plex.Entity) string {
	title := entity.String("title")
	if show := entity.String("grandparentTitle"); show != "" {
		return show + " - " + title
	}
	return title
}

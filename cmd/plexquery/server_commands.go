package main

import (
	"context"
	"slices"

	"github.com/spf13/cobra"

	"plexquery/internal/plex"
)

func newInfoCommand(cc *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show the server root document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// The probe already fetched the root; nothing else is queried.
			return runQuery(cmd, cc,
				func(_ context.Context, srv *plex.Server) (*plex.Document, error) {
					return srv.InfoDocument(), nil
				},
				func(_ context.Context, srv *plex.Server) (tableView, error) {
					info := srv.Info()
					view := tableView{empty: "No server attributes", headers: []string{"Field", "Value"}}
					for _, name := range info.Names() {
						view.rows = append(view.rows, []string{name, orDash(info.String(name))})
					}
					return view, nil
				},
			)
		},
	}
}

func newServersCommand(cc *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "servers",
		Short: "List servers known to this server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(cmd, cc,
				func(ctx context.Context, srv *plex.Server) (*plex.Document, error) {
					return srv.Servers().Document(ctx)
				},
				func(ctx context.Context, srv *plex.Server) (tableView, error) {
					entries, err := srv.Servers().Entries(ctx)
					if err != nil {
						return tableView{}, err
					}
					return tableView{
						empty:   "No servers",
						headers: []string{"Name", "Host", "Port", "Version", "Machine ID"},
						rows:    entityRows(entries, "name", "host", "port", "version", "machineIdentifier"),
						aligns:  []columnAlignment{alignLeft, alignLeft, alignRight},
					}, nil
				},
			)
		},
	}
}

func newPrefsCommand(cc *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "prefs [id...]",
		Short: "Show server preferences, optionally only the given setting ids",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(cmd, cc,
				func(ctx context.Context, srv *plex.Server) (*plex.Document, error) {
					doc, err := srv.Preferences().Document(ctx)
					if err != nil || len(args) == 0 {
						return doc, err
					}
					var kept []*plex.Document
					for _, child := range doc.Children() {
						if id, _ := child.Attr("id"); slices.Contains(args, id) {
							kept = append(kept, child)
						}
					}
					return plex.NewDocument(doc.Tag(), doc.Attrs(), kept...), nil
				},
				func(ctx context.Context, srv *plex.Server) (tableView, error) {
					entries, err := srv.Preferences().Entries(ctx)
					if err != nil {
						return tableView{}, err
					}
					if len(args) > 0 {
						entries = slices.DeleteFunc(entries, func(e *plex.Entity) bool {
							return !slices.Contains(args, e.String("id"))
						})
					}
					return tableView{
						empty:   "No matching settings",
						headers: []string{"ID", "Value", "Type", "Label"},
						rows:    entityRows(entries, "id", "value", "type", "label"),
					}, nil
				},
			)
		},
	}
}

func newChannelsCommand(cc *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "channels",
		Short: "List installed channels",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(cmd, cc,
				func(ctx context.Context, srv *plex.Server) (*plex.Document, error) {
					return srv.Channels().Document(ctx)
				},
				func(ctx context.Context, srv *plex.Server) (tableView, error) {
					channels, err := srv.Channels().Items(ctx)
					if err != nil {
						return tableView{}, err
					}
					view := tableView{empty: "No channels installed", headers: []string{"Title", "Key"}}
					for _, channel := range channels {
						view.rows = append(view.rows, []string{orDash(channel.Title()), orDash(channel.Key())})
					}
					return view, nil
				},
			)
		},
	}
}

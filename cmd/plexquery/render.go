package main

import (
	"context"

	"github.com/spf13/cobra"

	"plexquery/internal/config"
	"plexquery/internal/plex"
)

type tableView struct {
	empty   string
	headers []string
	rows    [][]string
	aligns  []columnAlignment
}

type documentFunc func(ctx context.Context, srv *plex.Server) (*plex.Document, error)

type tableFunc func(ctx context.Context, srv *plex.Server) (tableView, error)

// runQuery connects, then issues exactly one fetch: the raw document for
// json/xml output or the typed listing for table output.
func runQuery(cmd *cobra.Command, cc *commandContext, document documentFunc, tabulate tableFunc) error {
	format, err := cc.outputFormat(cmd)
	if err != nil {
		return err
	}
	ctx, srv, err := cc.connect(cmd)
	if err != nil {
		return err
	}

	if format == config.OutputTable {
		view, err := tabulate(ctx, srv)
		if err != nil {
			return err
		}
		return printTable(cmd, view.empty, view.headers, view.rows, view.aligns)
	}

	doc, err := document(ctx, srv)
	if err != nil {
		return err
	}
	return writeDocument(cmd, doc, format)
}

// entityRows projects each entity onto the named fields.
func entityRows(entities []*plex.Entity, fields ...string) [][]string {
	rows := make([][]string, 0, len(entities))
	for _, entity := range entities {
		row := make([]string, len(fields))
		for i, name := range fields {
			row[i] = orDash(entity.String(name))
		}
		rows = append(rows, row)
	}
	return rows
}

// childAttr reads an attribute from the first child named tag.
func childAttr(node *plex.Document, tag, attr string) string {
	child, ok := node.Child(tag)
	if !ok {
		return ""
	}
	value, _ := child.Attr(attr)
	return value
}

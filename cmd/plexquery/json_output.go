package main

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"plexquery/internal/plex"
)

// writeJSON encodes v as indented JSON to the command's stdout.
func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

// writeDocument renders doc through plex.Render. JSON output is indented.
func writeDocument(cmd *cobra.Command, doc *plex.Document, format string) error {
	docFormat, err := plex.ParseFormat(format)
	if err != nil {
		return err
	}
	data, err := plex.Render(doc, docFormat)
	if err != nil {
		return fmt.Errorf("render %s: %w", docFormat, err)
	}

	var buf bytes.Buffer
	if docFormat == plex.FormatJSON {
		if err := json.Indent(&buf, data, "", "  "); err != nil {
			return fmt.Errorf("indent json: %w", err)
		}
	} else {
		buf.Write(data)
	}
	buf.WriteByte('\n')
	_, err = buf.WriteTo(cmd.OutOrStdout())
	return err
}

package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var configFlag string
	var formatFlag string
	var jsonFlag bool
	var xmlFlag bool

	ctx := newCommandContext(&configFlag, &formatFlag, &jsonFlag, &xmlFlag)

	rootCmd := &cobra.Command{
		Use:           "plexquery",
		Short:         "Query a Plex Media Server catalog",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	flags.StringVarP(&formatFlag, "format", "f", "", "Output format: table, json, or xml (default from config)")
	flags.BoolVar(&jsonFlag, "json", false, "Shorthand for --format json")
	flags.BoolVar(&xmlFlag, "xml", false, "Shorthand for --format xml")
	rootCmd.MarkFlagsMutuallyExclusive("json", "xml")

	rootCmd.AddCommand(newInfoCommand(ctx))
	rootCmd.AddCommand(newServersCommand(ctx))
	rootCmd.AddCommand(newPrefsCommand(ctx))
	rootCmd.AddCommand(newChannelsCommand(ctx))
	rootCmd.AddCommand(newSectionsCommand(ctx))
	rootCmd.AddCommand(newNowPlayingCommand(ctx))
	rootCmd.AddCommand(newOnDeckCommand(ctx))
	rootCmd.AddCommand(newRecentCommand(ctx))
	rootCmd.AddCommand(newMetadataCommand(ctx))
	rootCmd.AddCommand(newConfigCommand())

	return rootCmd
}

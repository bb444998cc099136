package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"plexquery/internal/config"
	"plexquery/internal/logging"
	"plexquery/internal/plex"
	"plexquery/internal/transport"
)

type commandContext struct {
	configFlag *string
	formatFlag *string
	jsonFlag   *bool
	xmlFlag    *bool

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
	loggerErr  error
}

func newCommandContext(configFlag, formatFlag *string, jsonFlag, xmlFlag *bool) *commandContext {
	return &commandContext{
		configFlag: configFlag,
		formatFlag: formatFlag,
		jsonFlag:   jsonFlag,
		xmlFlag:    xmlFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) ensureLogger() (*slog.Logger, error) {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.loggerErr = err
			return
		}
		logger, err := logging.NewFromConfig(cfg)
		if err != nil {
			c.loggerErr = fmt.Errorf("init logging: %w", err)
			return
		}
		c.logger = logger
	})
	return c.logger, c.loggerErr
}

// connect builds the transport from config and probes the server. The
// returned context carries a fresh request id for every query the command
// issues.
func (c *commandContext) connect(cmd *cobra.Command) (context.Context, *plex.Server, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, nil, err
	}
	logger, err := c.ensureLogger()
	if err != nil {
		return nil, nil, err
	}

	ctx := transport.WithRequestID(cmd.Context(), uuid.NewString())
	tr := transport.New(transport.Options{
		Timeout:          cfg.Timeout(),
		ClientIdentifier: cfg.Server.ClientIdentifier,
		MaxBodyBytes:     cfg.MaxBodyBytes(),
		Logger:           logger,
	})

	srv, err := plex.NewServer(ctx, cfg.Server.Address, cfg.Server.Port, tr)
	if err != nil {
		logging.NewComponentLogger(logger, "cli").Debug("server probe failed",
			"address", cfg.Server.Address,
			"port", cfg.Server.Port,
			logging.Error(err),
		)
		return nil, nil, err
	}
	logging.NewComponentLogger(logger, "cli").Debug("connected", "base_url", srv.BaseURL())
	return ctx, srv, nil
}

// outputFormat resolves flags over config. "auto" picks a table on a
// terminal and JSON otherwise.
func (c *commandContext) outputFormat(cmd *cobra.Command) (string, error) {
	switch {
	case c.jsonFlag != nil && *c.jsonFlag:
		return config.OutputJSON, nil
	case c.xmlFlag != nil && *c.xmlFlag:
		return config.OutputXML, nil
	}

	format := ""
	if c.formatFlag != nil {
		format = strings.ToLower(strings.TrimSpace(*c.formatFlag))
	}
	if format == "" {
		cfg, err := c.ensureConfig()
		if err != nil {
			return "", err
		}
		format = cfg.Output.Format
	}

	switch format {
	case config.OutputTable, config.OutputJSON, config.OutputXML:
		return format, nil
	case config.OutputAuto, "":
		if isTerminal(cmd.OutOrStdout()) {
			return config.OutputTable, nil
		}
		return config.OutputJSON, nil
	default:
		return "", fmt.Errorf("unsupported output format %q (expected table, json, or xml)", format)
	}
}

func isTerminal(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}

// Package mcp parses MCP command flags and serves the tools over stdio.
package mcp

import (
	"context"
	"errors"
	"flag"
	"log"

	"github.com/mashirovoc/blog/internal/cms/source"
	entrypoint "github.com/mashirovoc/blog/internal/platform/cmd"
	"github.com/mashirovoc/blog/internal/platform/config"
	"github.com/mashirovoc/blog/internal/services/mcp/service"
)

// Config holds MCP command configuration.
type Config struct {
	Content source.Config
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	return parseConfig(fs, args, config.OSLookup)
}

func parseConfig(fs *flag.FlagSet, args []string, lookup config.EnvLookup) (Config, error) {
	var cfg Config
	// Flags bind first; env defaults then fill cfg and parsed flags win.
	cfg.Content.BindFlags(fs)
	if err := entrypoint.ParseConfigFromArgs(&cfg, fs, args); err != nil {
		return Config{}, err
	}
	cfg.Content.ResolveCredentials(lookup)
	if err := cfg.Content.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run serves the MCP tools on stdio until ctx ends or the client hangs up.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceMCP, func(ctx context.Context) error {
		reader, closeReader, err := source.Open(ctx, cfg.Content)
		if err != nil {
			return err
		}
		defer func() {
			if err := closeReader(); err != nil {
				log.Printf("close content source: %v", err)
			}
		}()
		if reader == nil {
			return errors.New("content source is not configured")
		}
		return service.Run(ctx, reader)
	})
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sagr12004/Spell-Checker/internal/config"
	"github.com/sagr12004/Spell-Checker/internal/dictionary"
	"github.com/sagr12004/Spell-Checker/internal/export"
	"github.com/sagr12004/Spell-Checker/internal/server"
	"github.com/sagr12004/Spell-Checker/internal/server/ratelimit"
)

func newServeCmd(configPath *string) *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the REST API server",
		Long:  `Start an HTTP server that exposes the spell check, custom dictionary, AI and export endpoints.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			srv, err := buildServer(cmd, *configPath, port)
			if err != nil {
				return err
			}
			return srv.Start()
		},
	}
	cmd.Flags().IntVar(&port, "port", 0, "Port to listen on (overrides config and PORT)")
	return cmd
}

// buildServer wires every component from configuration.
func buildServer(cmd *cobra.Command, configPath string, port int) (*server.Server, error) {
	cfg, err := loadConfig(configPath, func(c *config.Config) {
		if cmd.Flags().Changed("port") {
			c.Server.Port = port
		}
	})
	if err != nil {
		return nil, err
	}

	logger, err := cfg.NewLogger()
	if err != nil {
		return nil, err
	}

	store := dictionary.NewStore()
	checker, err := newChecker(cfg, store)
	if err != nil {
		return nil, err
	}

	ai, err := newAssistService(cmd.Context(), cfg, logger)
	if err != nil {
		return nil, err
	}
	if !ai.Configured() {
		logger.Warn("GEMINI_API_KEY not set; /tone-detect and /ai-improve are disabled")
	}

	writer, err := export.NewWriter(cfg.Export.Dir)
	if err != nil {
		_ = ai.Close()
		return nil, err
	}

	srv, err := server.New(server.Config{
		Port:            cfg.Server.Port,
		AllowedOrigins:  cfg.Server.CORSAllowedOrigins,
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
		RateLimit:       ratelimit.LoadConfig(),
		Logger:          logger,
		Dictionary:      store,
		Checker:         checker,
		Assist:          ai,
		Exports:         writer,
	})
	if err != nil {
		_ = ai.Close()
		return nil, fmt.Errorf("failed to create server: %w", err)
	}

	return srv, nil
}

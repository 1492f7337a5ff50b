package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/sagr12004/Spell-Checker/internal/assist"
	"github.com/sagr12004/Spell-Checker/internal/config"
	"github.com/sagr12004/Spell-Checker/internal/dictionary"
	"github.com/sagr12004/Spell-Checker/internal/llm"
	"github.com/sagr12004/Spell-Checker/internal/spelling"
)

// loadConfig loads and validates the layered configuration.
func loadConfig(path string, override func(*config.Config)) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if override != nil {
		override(cfg)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// newEngine builds the spelling engine from the configured frequency list.
func newEngine(cfg *config.Config) (*spelling.Engine, error) {
	opts := spelling.EngineOptions{
		EditDepth: cfg.Spelling.EditDepth,
		CacheSize: cfg.Spelling.CacheSize,
	}
	if cfg.Spelling.FrequencyFile != "" {
		return spelling.LoadEngine(cfg.Spelling.FrequencyFile, opts)
	}
	return spelling.NewDefaultEngine(opts)
}

// newChecker builds a checker backed by store.
func newChecker(cfg *config.Config, store *dictionary.Store) (*spelling.Checker, error) {
	engine, err := newEngine(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to build spelling engine: %w", err)
	}
	return spelling.NewChecker(engine, store), nil
}

// newAssistService builds the AI helper. Without an API key the service has no
// provider and every task fails with a configuration error.
func newAssistService(ctx context.Context, cfg *config.Config, logger *logrus.Logger) (*assist.Service, error) {
	var provider llm.Provider
	if cfg.AIEnabled() {
		llmConfig := llm.DefaultGeminiConfig().
			WithModel(cfg.AI.Model).
			WithTemperature(cfg.AI.Temperature)
		var err error
		provider, err = llm.NewProvider(ctx, llmConfig, cfg.AI.APIKey)
		if err != nil {
			return nil, fmt.Errorf("failed to create LLM provider: %w", err)
		}
	}

	return assist.NewService(provider, assist.Options{
		Timeout:    cfg.AI.Timeout,
		CacheModel: cfg.AI.CacheModel,
		Logger:     logger,
	}), nil
}

// readInput reads the file at path, or standard input when path is empty or "-".
func readInput(cmd *cobra.Command, path string) (string, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("failed to read standard input: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read input file: %w", err)
	}
	return string(data), nil
}

// requireText rejects blank input before any heavier work is done.
func requireText(text string) error {
	if strings.TrimSpace(text) == "" {
		return errors.New("input text is empty")
	}
	return nil
}

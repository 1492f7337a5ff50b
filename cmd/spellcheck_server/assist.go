package main

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sagr12004/Spell-Checker/internal/assist"
	"github.com/sagr12004/Spell-Checker/internal/observability"
	"github.com/sagr12004/Spell-Checker/internal/prompts"
)

func newAssistCmd(configPath *string) *cobra.Command {
	var (
		inputFile  string
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "assist <task>",
		Short: "Run an AI writing task on a file or standard input",
		Long: `Runs the same Gemini task as the matching API route and prints the reply.

Tasks:
  tone-detect   classify the tone of the text (POST /tone-detect)
  ai-improve    rewrite the text professionally (POST /ai-improve)

Requires GEMINI_API_KEY.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			task, err := parseTask(args[0])
			if err != nil {
				return err
			}

			text, err := readInput(cmd, inputFile)
			if err != nil {
				return err
			}
			if err := requireText(text); err != nil {
				return err
			}

			cfg, err := loadConfig(*configPath, nil)
			if err != nil {
				return err
			}
			logger, err := cfg.NewLogger()
			if err != nil {
				return err
			}
			logger.SetOutput(cmd.ErrOrStderr())

			svc, err := newAssistService(cmd.Context(), cfg, logger)
			if err != nil {
				return err
			}
			defer svc.Close()

			return runAssist(cmd, svc, task, text, jsonOutput)
		},
	}

	cmd.Flags().StringVarP(&inputFile, "in", "i", "", "Path to the text file (default: standard input)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the raw reply as JSON")
	return cmd
}

// parseTask accepts any task that has a prompt.
func parseTask(name string) (assist.Task, error) {
	tasks, err := prompts.List(prompts.AssistFile)
	if err != nil {
		return "", err
	}
	if !slices.Contains(tasks, name) {
		return "", fmt.Errorf("unknown assist task %q (available: %s)", name, strings.Join(tasks, ", "))
	}
	return assist.Task(name), nil
}

// runAssist runs task and writes the reply to the command's output.
func runAssist(cmd *cobra.Command, svc *assist.Service, task assist.Task, text string, jsonOutput bool) error {
	reply, err := svc.Run(cmd.Context(), task, text)
	if err != nil {
		return err
	}

	if jsonOutput {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(reply)
	}
	observability.NewPrinter(cmd.OutOrStdout()).PrintAssistReply(strings.ToUpper(string(task)), reply)
	return nil
}

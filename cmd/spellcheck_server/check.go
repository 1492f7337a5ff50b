package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/sagr12004/Spell-Checker/internal/dictionary"
	"github.com/sagr12004/Spell-Checker/internal/observability"
)

func newCheckCmd(configPath *string) *cobra.Command {
	var (
		inputFile  string
		jsonOutput bool
		extraWords []string
	)

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Spell-check a file or standard input",
		Long:  "Runs the same spell check as POST /check on a text file (or standard input) and prints a report.",
		RunE: func(cmd *cobra.Command, _ []string) error {
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

			store := dictionary.NewStore()
			for _, w := range extraWords {
				if _, err := store.Add(w); err != nil {
					return err
				}
			}

			checker, err := newChecker(cfg, store)
			if err != nil {
				return err
			}

			result, err := checker.Check(cmd.Context(), text)
			if err != nil {
				return err
			}

			if jsonOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(result)
			}
			observability.NewPrinter(cmd.OutOrStdout()).PrintCheckResult(result)
			return nil
		},
	}

	cmd.Flags().StringVarP(&inputFile, "in", "i", "", "Path to the text file (default: standard input)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the raw check result as JSON")
	cmd.Flags().StringSliceVarP(&extraWords, "words", "w", nil, "Extra words to treat as correct")
	return cmd
}

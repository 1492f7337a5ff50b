package main

import (
	"github.com/spf13/cobra"

	"github.com/sagr12004/Spell-Checker/internal/config"
	"github.com/sagr12004/Spell-Checker/internal/export"
	"github.com/sagr12004/Spell-Checker/internal/observability"
)

func newExportCmd(configPath *string) *cobra.Command {
	var (
		inputFile string
		format    string
		outDir    string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Render a text file to PDF or DOCX",
		Long:  "Writes the text of a file (or standard input) to a PDF or DOCX document in the export directory.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			text, err := readInput(cmd, inputFile)
			if err != nil {
				return err
			}

			cfg, err := loadConfig(*configPath, func(c *config.Config) {
				if outDir != "" {
					c.Export.Dir = outDir
				}
			})
			if err != nil {
				return err
			}

			writer, err := export.NewWriter(cfg.Export.Dir)
			if err != nil {
				return err
			}

			artifact, err := writer.Write(format, text)
			if err != nil {
				return err
			}

			observability.NewPrinter(cmd.OutOrStdout()).PrintArtifact(artifact)
			return nil
		},
	}

	cmd.Flags().StringVarP(&inputFile, "in", "i", "", "Path to the text file (default: standard input)")
	cmd.Flags().StringVarP(&format, "format", "f", export.FormatPDF, "Output format: pdf or docx")
	cmd.Flags().StringVarP(&outDir, "out", "o", "", "Output directory (overrides config and EXPORT_DIR)")
	return cmd
}

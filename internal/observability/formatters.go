// Package observability provides formatted output utilities for the command-line tools.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/sagr12004/Spell-Checker/internal/export"
	"github.com/sagr12004/Spell-Checker/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 10
)

// Printer handles formatted output for CLI reports
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(title, boxWidth-4))
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// truncate shortens s to at most width runes, marking the cut with "...".
func truncate(s string, width int) string {
	if utf8.RuneCountInString(s) <= width {
		return s
	}
	runes := []rune(s)
	return string(runes[:width-3]) + "..."
}

// PrintCheckResult outputs a human-readable summary of a spell check.
func (p *Printer) PrintCheckResult(result *types.CheckResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Words:     %d\n", result.TotalWords))
	sb.WriteString(fmt.Sprintf("Mistakes:  %d\n", result.WrongWordsCount))
	sb.WriteString(fmt.Sprintf("Accuracy:  %.2f%%\n", result.Accuracy))

	if len(result.Mistakes) > 0 {
		sb.WriteString("\n")
		count := min(len(result.Mistakes), maxItemsToShow)
		for i := 0; i < count; i++ {
			m := result.Mistakes[i]
			sb.WriteString(fmt.Sprintf("  • %s", m.Word))
			if len(m.Suggestions) > 0 {
				sb.WriteString(fmt.Sprintf(" → %s", strings.Join(m.Suggestions, ", ")))
			}
			sb.WriteString("\n")
		}
		if len(result.Mistakes) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.Mistakes)-maxItemsToShow))
		}
	} else {
		sb.WriteString("\n✅ No spelling mistakes found\n")
	}

	p.printBox("SPELL CHECK", strings.TrimSuffix(sb.String(), "\n"))

	if result.WrongWordsCount > 0 {
		p.printBox("CORRECTED TEXT", result.CorrectedText)
	}
}

// PrintAssistReply outputs the fields of an AI reply, model last.
func (p *Printer) PrintAssistReply(title string, reply map[string]any) {
	if len(reply) == 0 {
		return
	}

	keys := make([]string, 0, len(reply))
	for k := range reply {
		if k != "model_used" {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	var sb strings.Builder
	for _, k := range keys {
		sb.WriteString(fmt.Sprintf("%s: %v\n", k, reply[k]))
	}
	if model, ok := reply["model_used"]; ok {
		sb.WriteString(fmt.Sprintf("\nmodel: %v\n", model))
	}

	p.printBox(title, strings.TrimSuffix(sb.String(), "\n"))
}

// PrintArtifact outputs where an export was written.
func (p *Printer) PrintArtifact(artifact *export.Artifact) {
	if artifact == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Format:  %s\n", strings.ToUpper(artifact.Format)))
	sb.WriteString(fmt.Sprintf("File:    %s\n", artifact.Filename))
	sb.WriteString(fmt.Sprintf("Path:    %s\n", artifact.Path))
	sb.WriteString(fmt.Sprintf("Size:    %d bytes", artifact.Size))

	p.printBox("EXPORT WRITTEN", sb.String())
}

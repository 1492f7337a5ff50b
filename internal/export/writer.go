// Package export renders text into downloadable PDF and DOCX files.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/sagr12004/Spell-Checker/internal/types"
)

// Supported formats
const (
	FormatPDF  = "pdf"
	FormatDOCX = "docx"
)

// Title is the heading written at the top of every export.
const Title = "Spell Checker Export"

const filePrefix = "spell_checker_export_"

var contentTypes = map[string]string{
	FormatPDF:  "application/pdf",
	FormatDOCX: "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
}

// Artifact is a file written to the export directory.
type Artifact struct {
	Format      string
	Filename    string
	Path        string
	ContentType string
	Size        int64
}

// Writer writes export artifacts into a directory.
type Writer struct {
	dir   string
	newID func() string
}

// NewWriter creates a Writer, creating dir if it does not exist.
func NewWriter(dir string) (*Writer, error) {
	if dir == "" {
		return nil, fmt.Errorf("export directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create export directory %s: %w", dir, err)
	}
	return &Writer{dir: dir, newID: shortID}, nil
}

// Dir returns the export directory.
func (w *Writer) Dir() string {
	return w.dir
}

// PDF renders text to a PDF file.
func (w *Writer) PDF(text string) (*Artifact, error) {
	return w.write(FormatPDF, text, writePDF)
}

// DOCX renders text to a Word document.
func (w *Writer) DOCX(text string) (*Artifact, error) {
	return w.write(FormatDOCX, text, writeDOCX)
}

// Write renders text in the named format.
func (w *Writer) Write(format, text string) (*Artifact, error) {
	switch format {
	case FormatPDF:
		return w.PDF(text)
	case FormatDOCX:
		return w.DOCX(text)
	default:
		return nil, &types.ValidationError{Field: "format", Message: fmt.Sprintf("unsupported export format %q", format)}
	}
}

func (w *Writer) write(format, text string, render func(path, text string) error) (*Artifact, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, &types.ValidationError{Field: "text", Message: "Text is required"}
	}

	filename := filePrefix + w.newID() + "." + format
	path := filepath.Join(w.dir, filename)

	if err := render(path, text); err != nil {
		os.Remove(path)
		return nil, &types.ExportError{
			Format:  format,
			Message: fmt.Sprintf("failed to write %s export", format),
			Cause:   err,
		}
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, &types.ExportError{
			Format:  format,
			Message: fmt.Sprintf("failed to stat %s export", format),
			Cause:   err,
		}
	}

	return &Artifact{
		Format:      format,
		Filename:    filename,
		Path:        path,
		ContentType: contentTypes[format],
		Size:        info.Size(),
	}, nil
}

// shortID returns the first eight characters of a random UUID.
func shortID() string {
	return uuid.NewString()[:8]
}

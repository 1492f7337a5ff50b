package export

import (
	"os"

	"github.com/fumiama/go-docx"
)

const (
	docxHeadingStyle = "Heading1"
	docxHeadingSize  = "32" // half-points
)

func buildDOCX(text string) *docx.Docx {
	doc := docx.New().WithDefaultTheme()

	doc.AddParagraph().Style(docxHeadingStyle).AddText(Title).Bold().Size(docxHeadingSize)
	doc.AddParagraph().AddText(text)

	return doc
}

func writeDOCX(path, text string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if _, err := buildDOCX(text).WriteTo(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

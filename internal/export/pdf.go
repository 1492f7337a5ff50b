package export

import (
	"strings"

	"github.com/go-pdf/fpdf"
)

// PDF layout in points, measured from the bottom of the page.
const (
	pdfFontFamily = "Helvetica"
	pdfFontSize   = 12
	pdfMarginX    = 50
	pdfTopY       = 800
	pdfBottomY    = 50
	pdfTitleGap   = 30
	pdfLineHeight = 18
	pdfMaxRunes   = 120
)

type pdfLine struct {
	Y    float64
	Text string
}

type pdfPage struct {
	Lines []pdfLine
}

// layoutPDF places the title and each line of text on pages. Lines longer than
// pdfMaxRunes are cut; a new page starts once the cursor falls below pdfBottomY.
func layoutPDF(text string) []pdfPage {
	pages := []pdfPage{{}}
	y := float64(pdfTopY)

	cur := &pages[0]
	cur.Lines = append(cur.Lines, pdfLine{Y: y, Text: Title})
	y -= pdfTitleGap

	for _, line := range strings.Split(text, "\n") {
		if y < pdfBottomY {
			pages = append(pages, pdfPage{})
			cur = &pages[len(pages)-1]
			y = pdfTopY
		}
		cur.Lines = append(cur.Lines, pdfLine{Y: y, Text: truncateRunes(line, pdfMaxRunes)})
		y -= pdfLineHeight
	}
	return pages
}

func truncateRunes(s string, n int) string {
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}

func writePDF(path, text string) error {
	pdf := fpdf.New("P", "pt", "A4", "")
	pdf.SetTitle(Title, true)
	pdf.SetCreator("spellcheck_server", true)
	pdf.SetAutoPageBreak(false, 0)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	_, pageHeight := pdf.GetPageSize()
	for _, page := range layoutPDF(text) {
		pdf.AddPage()
		pdf.SetFont(pdfFontFamily, "", pdfFontSize)
		for _, line := range page.Lines {
			if line.Text == "" {
				continue
			}
			pdf.Text(pdfMarginX, pageHeight-line.Y, tr(line.Text))
		}
	}

	return pdf.OutputFileAndClose(path)
}

package document

import (
	"bytes"

	"github.com/jung-kurt/gofpdf"
)

// PDFRenderer lays lines out on A4 pages with the core Arial font.
type PDFRenderer struct{}

func (PDFRenderer) Format() string { return "pdf" }
func (PDFRenderer) ContentType() string { return "application/pdf" }
func (PDFRenderer) Extension() string { return "pdf" }

const (
	pdfRowHeight = 10.0
	pdfFontSize  = 12.0
)

// Render writes one 10 mm row per line. Pages break automatically.
func (PDFRenderer) Render(lines []Line) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	// Core fonts are cp1252; translate so accents and ³ print correctly.
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	for _, l := range lines {
		switch l.Style {
		case StyleTitle:
			pdf.SetFont("Arial", "B", pdfFontSize)
			pdf.CellFormat(0, pdfRowHeight, tr(l.Text), "", 1, "C", false, 0, "")
		case StyleSpacer:
			pdf.Ln(pdfRowHeight)
		default:
			pdf.SetFont("Arial", "", pdfFontSize)
			pdf.CellFormat(0, pdfRowHeight, tr(l.Text), "", 1, "L", false, 0, "")
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

package app

import (
	"github.com/jung-kurt/gofpdf"
)

// writeArtPDF renders the art lines to a PDF with a monospaced font, one line
// per row. Layout is intentionally simple; characters outside the core font's
// codepage are substituted by the translator.
func writeArtPDF(lines []string, outPath string) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetFont("Courier", "", 10)
	pdf.AddPage()

	tr := pdf.UnicodeTranslatorFromDescriptor("")
	for _, line := range lines {
		if line == "" {
			pdf.Ln(5)
			continue
		}
		pdf.CellFormat(0, 5, tr(line), "", 1, "L", false, 0, "")
	}
	return pdf.OutputFileAndClose(outPath)
}

// Package render — PDF renderer.
// Lays the numbered rows out as a monospace listing using gofpdf.
// Text is translated to the core fonts' code page; characters outside it
// are not representable.
package render

import (
	"bytes"
	"fmt"
	"iter"
	"time"

	"github.com/gaurav-prasanna/linedump/core"
	"github.com/jung-kurt/gofpdf"
)

// pdfEpoch pins the creation date; with a sorted catalog, identical input
// gives identical bytes.
var pdfEpoch = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

// PDFRenderer renders numbered lines as a PDF document.
type PDFRenderer struct{}

// NewPDFRenderer creates a PDFRenderer.
func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

// Render converts the rows into PDF bytes.
func (r *PDFRenderer) Render(lines iter.Seq[core.NumberedLine], meta core.SourceMetadata) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetCreationDate(pdfEpoch)
	pdf.SetCatalogSort(true)
	pdf.SetTitle(meta.Path, true)
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	// Header.
	pdf.SetFont("Helvetica", "B", 14)
	pdf.MultiCell(0, 7, tr(meta.Path), "", "L", false)
	pdf.SetFont("Helvetica", "I", 9)
	pdf.SetTextColor(100, 100, 100)
	summary := fmt.Sprintf("%s, lines %s of %d", meta.Encoding, meta.Threshold, meta.TotalLines)
	pdf.MultiCell(0, 5, tr(summary), "", "L", false)
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(4)

	pdf.SetFont("Courier", "", 9)
	for nl := range lines {
		pdf.MultiCell(0, 4.5, tr(FormatRow(nl)), "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("writing PDF: %w", err)
	}
	return buf.Bytes(), nil
}

// Extension returns the file extension for PDF output.
func (r *PDFRenderer) Extension() string {
	return ".lines.pdf"
}

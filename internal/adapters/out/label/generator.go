// Package label renders package labels as PDF documents.
package label

import (
	"bytes"
	"fmt"

	"production/internal/core/domain/model/produce"

	"github.com/jung-kurt/gofpdf"
)

// PDFGenerator implements ports.LabelGenerator with gofpdf. The layout is a
// two-column roll card: roll identity on the left, measurements on the
// right, fabric details below, and a barcode strip at the bottom.
type PDFGenerator struct{}

// NewPDFGenerator creates a new PDF label generator.
func NewPDFGenerator() *PDFGenerator {
	return &PDFGenerator{}
}

// Generate renders the label into a PDF document. Incomplete label data is
// reported as an error before any rendering happens.
func (g *PDFGenerator) Generate(l produce.Label) ([]byte, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}

	doc := gofpdf.New("P", "mm", "A4", "")
	doc.AddPage()

	doc.SetFont("Courier", "B", 16)
	doc.CellFormat(0, 10, "MFRS. OF TECHNICAL TEXTILE FABRIC", "", 1, "C", false, 0, "")

	doc.SetFont("Courier", "", 12)
	const (
		startY     = 40.0
		lineHeight = 10.0
		leftX      = 20.0
		rightX     = 120.0
	)

	left := []string{
		fmt.Sprintf("ROLL No.    : %s", l.RollNo),
		fmt.Sprintf("COLOR       : %s", l.Color),
		"UNIT No.    : 1",
		"Rolls In bundle : 1",
	}
	for i, line := range left {
		doc.Text(leftX, startY+lineHeight*float64(i), line)
	}

	pkg := l.Package
	right := []string{
		fmt.Sprintf("GSM         : %s", l.GSM),
		fmt.Sprintf("WIDTH       : %g cm", pkg.Width()),
		fmt.Sprintf("LENGTH      : %g cm", pkg.Length()),
		fmt.Sprintf("GROSS WT.   : %g kg", pkg.Weight()),
		fmt.Sprintf("NET WT.     : %g kg", pkg.Weight()),
	}
	for i, line := range right {
		doc.Text(rightX, startY+lineHeight*float64(i), line)
	}

	detailsY := startY + lineHeight*6
	details := []string{
		fmt.Sprintf("PATTERN     : %s", l.Pattern),
		fmt.Sprintf("TYPE OF FABRIC : %s", l.FabricType),
		fmt.Sprintf("TREATMENT   : %s", l.Treatment),
		fmt.Sprintf("TECHNOLOGY  : %s", l.Technology),
	}
	for i, line := range details {
		doc.Text(leftX, detailsY+lineHeight*float64(i), line)
	}

	// Barcode placeholder strip.
	doc.SetFillColor(0, 0, 0)
	doc.Rect(leftX, detailsY+lineHeight*4, 80, 20, "F")

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("render package label: %w", err)
	}
	return buf.Bytes(), nil
}

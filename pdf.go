package main

import (
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

const (
	pdfPageWidth  = 210 // A4 width in mm
	pdfMargin     = 10  // Margin in mm
	pdfLineHeight = 5   // Line height in mm
	pdfFontSize   = 9
)

// generatePDF renders the batch results as a PDF report: one line per
// source with its count, followed by a summary block.
func generatePDF(results []Result, summary Summary, outputPath string) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.SetAutoPageBreak(true, pdfMargin)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", pdfFontSize+2)
	pdf.SetTextColor(0, 0, 0)
	pdf.MultiCell(pdfPageWidth-2*pdfMargin, pdfLineHeight, "count report", "", "L", false)
	pdf.Ln(pdfLineHeight / 2)

	pdf.SetFont("Courier", "", pdfFontSize)
	for _, r := range results {
		line := fmt.Sprintf("%d  %s", r.Count, r.Path)
		pdf.MultiCell(pdfPageWidth-2*pdfMargin, pdfLineHeight, line, "", "L", false)
	}

	pdf.Ln(pdfLineHeight)
	pdf.SetFont("Helvetica", "B", pdfFontSize+1)
	pdf.MultiCell(pdfPageWidth-2*pdfMargin, pdfLineHeight, "--- Summary ---", "", "L", false)
	pdf.Ln(pdfLineHeight / 2)

	pdf.SetFont("Helvetica", "", pdfFontSize)
	summaryString := fmt.Sprintf("Sources processed: %d\nTotal size: %d bytes", summary.TotalSources, summary.TotalBytes)
	pdf.MultiCell(pdfPageWidth-2*pdfMargin, pdfLineHeight, summaryString, "", "L", false)

	if err := pdf.OutputFileAndClose(outputPath); err != nil {
		return fmt.Errorf("failed to save PDF to %s: %w", outputPath, err)
	}
	return nil
}

package services

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/jung-kurt/gofpdf"
	"github.com/Avvarivenkatesh0714/ExamPro-GPT/models"
)

// ErrNoHistory is returned when there is nothing to export; the route
// answers with a plain-text notice instead of a document.
var ErrNoHistory = errors.New("no history records to export")

// ExportHistoryPDF renders the user's Q&A history as a paginated PDF
// with a centered title and one labeled Q/A block per record. Page
// breaks happen automatically when a block overflows.
func ExportHistoryPDF(username string, records []models.HistoryRecord) ([]byte, error) {
	if len(records) == 0 {
		return nil, ErrNoHistory
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 10, fmt.Sprintf("%s's Q&A History", username), "", 1, "C", false, 0, "")
	pdf.Ln(10)

	pdf.SetFont("Arial", "", 12)
	for i, record := range records {
		pdf.MultiCell(0, 10, fmt.Sprintf("Q%d: %s", i+1, record.Question), "", "L", false)
		pdf.MultiCell(0, 10, fmt.Sprintf("A%d: %s", i+1, record.Answer), "", "L", false)
		pdf.Ln(5)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render PDF: %w", err)
	}
	return buf.Bytes(), nil
}

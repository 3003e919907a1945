package services

import (
	"bytes"
	"errors"
	"testing"

	"github.com/Avvarivenkatesh0714/ExamPro-GPT/models"
)

func TestExportHistoryPDFEmpty(t *testing.T) {
	_, err := ExportHistoryPDF("alice", nil)
	if !errors.Is(err, ErrNoHistory) {
		t.Fatalf("expected ErrNoHistory, got %v", err)
	}
}

func TestExportHistoryPDF(t *testing.T) {
	records := []models.HistoryRecord{
		{ID: 1, Username: "alice", Question: "What is DNA?", Answer: "Deoxyribonucleic acid."},
		{ID: 2, Username: "alice", Question: "What is RNA?", Answer: "Ribonucleic acid."},
	}

	data, err := ExportHistoryPDF("alice", records)
	if err != nil {
		t.Fatalf("ExportHistoryPDF: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Errorf("output does not look like a PDF, starts with %q", data[:min(8, len(data))])
	}
}

func TestExportHistoryPDFLongHistoryPaginates(t *testing.T) {
	var records []models.HistoryRecord
	for i := 0; i < 60; i++ {
		records = append(records, models.HistoryRecord{
			Username: "bob",
			Question: "A fairly long question line used to force page overflow in the export",
			Answer:   "An equally long answer line used to force page overflow in the export",
		})
	}

	data, err := ExportHistoryPDF("bob", records)
	if err != nil {
		t.Fatalf("ExportHistoryPDF: %v", err)
	}
	// /Page objects multiply once auto page break kicks in
	if n := bytes.Count(data, []byte("/Type /Page")); n < 2 {
		t.Errorf("expected multiple pages, found %d page markers", n)
	}
}

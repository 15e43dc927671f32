package cmd

import (
	"testing"

	"github.com/recruiterlab/resume-screener/internal/assess"
	"github.com/recruiterlab/resume-screener/internal/identity"
	"github.com/recruiterlab/resume-screener/internal/screening"
)

func followUpRecords() *screening.Records {
	return &screening.Records{Items: []*screening.CandidateRecord{
		{
			DocumentID: "Jane Doe Resume.pdf",
			Identity:   identity.Identity{Name: "Jane Doe"},
			Assessment: assess.Result{Score: 82},
		},
		{
			DocumentID: "smith.txt",
			Identity:   identity.Identity{Name: "John Smith"},
			Assessment: assess.Result{Score: 41},
		},
	}}
}

func TestRecordAtResolvesFilenameWithSpaces(t *testing.T) {
	t.Parallel()

	records := followUpRecords()

	record := recordAt(records, 0)
	if record == nil {
		t.Fatal("expected a record for the first selection")
	}
	if record.DocumentID != "Jane Doe Resume.pdf" {
		t.Fatalf("expected document id %q, got %q", "Jane Doe Resume.pdf", record.DocumentID)
	}
}

func TestRecordAtBackEntry(t *testing.T) {
	t.Parallel()

	records := followUpRecords()

	// The entry after the last record is "back".
	if record := recordAt(records, records.Len()); record != nil {
		t.Fatalf("expected nil for the back entry, got %q", record.DocumentID)
	}
	if record := recordAt(records, -1); record != nil {
		t.Fatal("expected nil for a negative index")
	}
}

func TestCandidateItems(t *testing.T) {
	t.Parallel()

	items := candidateItems(followUpRecords())

	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0] != "Jane Doe Resume.pdf Jane Doe / 82%" {
		t.Fatalf("unexpected item: %q", items[0])
	}
}

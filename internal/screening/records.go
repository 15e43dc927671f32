package screening

import (
	"encoding/json"
	"os"
	"sort"

	"github.com/recruiterlab/resume-screener/internal/assess"
	"github.com/recruiterlab/resume-screener/internal/identity"
)

// CandidateRecord is the per-document aggregate: resolved identity,
// assessment, and the originating resume text kept for follow-up
// generation. Created once per document identifier, immutable afterwards.
type CandidateRecord struct {
	DocumentID string            `json:"document_id"`
	Identity   identity.Identity `json:"identity"`
	Assessment assess.Result     `json:"assessment"`
	ResumeText string            `json:"-"`
}

// Records is an ordered collection of candidate records.
type Records struct {
	Items []*CandidateRecord `json:"items"`
}

func (r *Records) Len() int {
	return len(r.Items)
}

// FindByID returns the record for a document identifier, or nil.
func (r *Records) FindByID(id string) *CandidateRecord {
	for _, record := range r.Items {
		if record.DocumentID == id {
			return record
		}
	}
	return nil
}

// SummaryRow is one line of the session summary projection.
type SummaryRow struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Score int    `json:"score"`
}

// Summary projects the records to {name, email, score} rows sorted by score
// descending. It is recomputed on demand and independent of processing
// order; ties keep input order.
func (r *Records) Summary() []SummaryRow {
	rows := make([]SummaryRow, 0, len(r.Items))
	for _, record := range r.Items {
		rows = append(rows, SummaryRow{
			Name:  record.Identity.Name,
			Email: record.Identity.Email,
			Score: record.Assessment.Score,
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Score > rows[j].Score
	})

	return rows
}

// DumpToTmpFile writes the records as indented JSON to a temporary file and
// returns its name.
func (r *Records) DumpToTmpFile() (string, error) {
	file, err := os.CreateTemp("", "candidates_*.json")
	if err != nil {
		return "", err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return "", err
	}
	return file.Name(), nil
}

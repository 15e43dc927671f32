// Package screening sequences the per-document pipeline: normalize, resolve
// identity, request an assessment, parse the score, record the result.
// Processing is synchronous and per-document isolated: one candidate's
// failure degrades that record only and never aborts the batch.
package screening

import (
	"context"

	"go.uber.org/zap"

	"github.com/recruiterlab/resume-screener/internal/assess"
	"github.com/recruiterlab/resume-screener/internal/document"
	"github.com/recruiterlab/resume-screener/internal/identity"
)

// Pipeline owns the processed set and the result accumulator. Neither is
// accessed concurrently: the external service is the bottleneck and the loop
// stays single-threaded on purpose.
type Pipeline struct {
	resolver  *identity.Resolver
	requester *assess.Requester
	logger    *zap.Logger

	processed map[string]struct{}
	records   *Records
}

// NewPipeline builds a pipeline around a resolver and a requester.
func NewPipeline(resolver *identity.Resolver, requester *assess.Requester, logger *zap.Logger) *Pipeline {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Pipeline{
		resolver:  resolver,
		requester: requester,
		logger:    logger,
		processed: make(map[string]struct{}),
		records:   &Records{},
	}
}

// ProcessBatch screens every document not already processed, in input order,
// and returns the accumulated records. Re-submitting an already-processed
// document identifier is a no-op, so incremental "add more resumes" batches
// are safe to re-run.
func (p *Pipeline) ProcessBatch(ctx context.Context, jdText string, docs []*document.Document) *Records {
	for _, doc := range docs {
		if _, ok := p.processed[doc.ID]; ok {
			p.logger.Debug("skipping already processed document", zap.String("document_id", doc.ID))
			continue
		}
		p.processed[doc.ID] = struct{}{}

		resolved := p.resolver.Resolve(doc.Text, doc.ID)

		p.logger.Info("analyzing candidate",
			zap.String("document_id", doc.ID),
			zap.String("candidate", resolved.Name),
		)

		result := p.requester.Assess(ctx, jdText, doc.Text, resolved.Name)

		p.logger.Info("candidate assessed",
			zap.String("document_id", doc.ID),
			zap.String("candidate", resolved.Name),
			zap.Int("score", result.Score),
			zap.String("tier", result.Tier.String()),
		)

		p.records.Items = append(p.records.Items, &CandidateRecord{
			DocumentID: doc.ID,
			Identity:   resolved,
			Assessment: result,
			ResumeText: doc.Text,
		})
	}

	return p.records
}

// Records returns the accumulated records in processing order.
func (p *Pipeline) Records() *Records {
	return p.records
}

// Summary returns the score-descending projection of all records.
func (p *Pipeline) Summary() []SummaryRow {
	return p.records.Summary()
}

// FollowUp generates outreach messaging for one screened candidate.
func (p *Pipeline) FollowUp(ctx context.Context, jdText string, record *CandidateRecord) (string, error) {
	return p.requester.FollowUp(ctx, jdText, record.ResumeText)
}

// Package pipeline implements the deal normalization and aggregation
// engine: raw rows in, classified and display-ordered deal families out.
// The whole transform is a single synchronous pass and is idempotent —
// rerunning it over identical input yields identical output.
package pipeline

import (
	"log/slog"

	"github.com/snackbuddy/deal-tracker/pkg/badge"
	"github.com/snackbuddy/deal-tracker/pkg/logger"
	"github.com/snackbuddy/deal-tracker/pkg/nameparse"
	domain "github.com/snackbuddy/deal-tracker/pkg/types"
)

// Pipeline runs the batch transform over one data refresh.
type Pipeline struct {
	tokenizer *nameparse.Tokenizer
	tiers     badge.Thresholds
	log       *slog.Logger
}

// New creates a Pipeline. A nil tokenizer uses the default phrase list;
// a nil logger discards.
func New(tok *nameparse.Tokenizer, tiers badge.Thresholds, log *slog.Logger) *Pipeline {
	if tok == nil {
		tok = nameparse.New(nil)
	}
	if log == nil {
		log = logger.Discard()
	}
	return &Pipeline{tokenizer: tok, tiers: tiers, log: log}
}

// Build normalizes, groups, classifies, and sorts one batch of raw rows.
// Rows without a coercible price are dropped, so the family count being
// lower than the row count is expected, not an error.
func (p *Pipeline) Build(records []domain.RawRecord) []domain.DealFamily {
	g := NewGrouper()

	dropped := 0
	for _, rec := range records {
		d, ok := Normalize(rec, p.tokenizer)
		if !ok {
			dropped++
			continue
		}
		g.Add(d)
	}

	fams := g.Families()
	for i := range fams {
		fams[i].BadgeLabel, fams[i].Tier = badge.Classify(fams[i].PercentOff, p.tiers)
	}

	SortFamilies(fams)

	p.log.Info("deal batch built",
		"records", len(records),
		"dropped", dropped,
		"families", len(fams),
	)

	return fams
}

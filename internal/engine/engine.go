// Package engine wires the source reader, the deal pipeline, and the
// renderers into one run-per-refresh batch job.
package engine

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/snackbuddy/deal-tracker/internal/config"
	"github.com/snackbuddy/deal-tracker/internal/pipeline"
	"github.com/snackbuddy/deal-tracker/internal/render"
	"github.com/snackbuddy/deal-tracker/internal/source"
	"github.com/snackbuddy/deal-tracker/pkg/badge"
	"github.com/snackbuddy/deal-tracker/pkg/logger"
	"github.com/snackbuddy/deal-tracker/pkg/nameparse"
)

// Engine regenerates the deal artifacts from the source table.
type Engine struct {
	cfg  *config.Config
	pipe *pipeline.Pipeline
	log  *slog.Logger

	// now is swappable for deterministic tests.
	now func() time.Time
}

// New creates an Engine from configuration. A nil logger discards.
func New(cfg *config.Config, log *slog.Logger) *Engine {
	if log == nil {
		log = logger.Discard()
	}

	tok := nameparse.New(cfg.Tokenizer.ProductTypes)
	tiers := badge.Thresholds{
		Elite:  cfg.Tiers.Elite,
		Strong: cfg.Tiers.Strong,
		Mid:    cfg.Tiers.Mid,
	}

	return &Engine{
		cfg:  cfg,
		pipe: pipeline.New(tok, tiers, log),
		log:  log,
		now:  time.Now,
	}
}

// Run executes one full refresh: read the table, build the family list,
// and write both artifacts.
func (e *Engine) Run() error {
	started := e.now()

	records, err := source.ReadFile(e.cfg.Paths.InputCSV)
	if err != nil {
		return err
	}

	fams := e.pipe.Build(records)

	if err := render.WriteJSONFile(e.cfg.Paths.OutputJSON, fams); err != nil {
		return fmt.Errorf("writing JSON artifact: %w", err)
	}

	site := render.Site{
		Title:    e.cfg.Site.Title,
		Subtitle: e.cfg.Site.Subtitle,
	}
	if err := render.WriteHTMLFile(e.cfg.Paths.OutputHTML, fams, site, started); err != nil {
		return fmt.Errorf("writing HTML artifact: %w", err)
	}

	e.log.Info("refresh complete",
		"input", e.cfg.Paths.InputCSV,
		"families", len(fams),
		"elapsed", e.now().Sub(started).String(),
	)
	return nil
}

// Package pipeline wires the feed download, record extraction, channel
// mapping, static merge, and padding into a single run.
package pipeline

import (
	"context"
	"io"
	"os"

	"github.com/rotisserie/eris"
	"github.com/twpayne/go-geom"
	"go.uber.org/zap"

	"github.com/pstankie/ft5dgen/internal/adms"
	"github.com/pstankie/ft5dgen/internal/config"
	"github.com/pstankie/ft5dgen/internal/feed"
	"github.com/pstankie/ft5dgen/internal/fetcher"
)

// Summary reports what a run did with the feed.
type Summary struct {
	Fetched int            // repeater elements decoded from the feed
	Mapped  int            // channel rows generated
	Static  int            // static rows merged
	Padded  int            // blank rows appended
	Skipped map[string]int // per-reason skip counts
}

// Pipeline generates one ADMS-14 memory file from the directory feed.
type Pipeline struct {
	fetcher fetcher.Fetcher
	cfg     *config.Config
}

// New creates a Pipeline using the given fetcher and configuration.
func New(f fetcher.Fetcher, cfg *config.Config) *Pipeline {
	return &Pipeline{fetcher: f, cfg: cfg}
}

// Run fetches the feed, maps repeaters around the reference point, and
// writes the padded channel file. Per-record problems are counted and
// logged, never fatal; a feed-level fetch or decode failure aborts.
func (p *Pipeline) Run(ctx context.Context, ref *geom.Point, maxKm float64) (*Summary, error) {
	body, err := p.fetcher.Download(ctx, p.cfg.Feed.URL)
	if err != nil {
		return nil, eris.Wrap(err, "pipeline: fetch feed")
	}
	defer body.Close() //nolint:errcheck

	rows, summary, err := p.generate(ctx, body, ref, maxKm)
	if err != nil {
		return nil, err
	}

	static := p.loadStatic()
	summary.Static = len(static)
	rows = adms.MergeStatic(rows, static)

	before := len(rows)
	rows = adms.Pad(rows)
	summary.Padded = len(rows) - before

	out, err := os.Create(p.cfg.Output.Path)
	if err != nil {
		return nil, eris.Wrap(err, "pipeline: create output")
	}
	defer out.Close() //nolint:errcheck

	if err := adms.WriteCSV(out, rows, p.cfg.Output.Header); err != nil {
		return nil, eris.Wrap(err, "pipeline: write output")
	}

	zap.L().Info("memory file generated",
		zap.String("path", p.cfg.Output.Path),
		zap.Int("fetched", summary.Fetched),
		zap.Int("mapped", summary.Mapped),
		zap.Int("static", summary.Static),
		zap.Int("padded", summary.Padded),
		zap.Any("skipped", summary.Skipped),
	)

	return summary, nil
}

// generate streams repeater elements and maps them to channel rows.
func (p *Pipeline) generate(ctx context.Context, body io.Reader, ref *geom.Point, maxKm float64) ([]adms.Row, *Summary, error) {
	summary := &Summary{Skipped: make(map[string]int)}
	mapper := adms.NewMapper(ref, maxKm)

	repeaterCh, errCh := fetcher.StreamXML[feed.Repeater](ctx, body, "repeater")

	var rows []adms.Row
	for r := range repeaterCh {
		summary.Fetched++

		rec, skip := feed.Extract(r)
		if skip != nil {
			summary.Skipped[string(skip.Reason)]++
			zap.L().Debug("entry skipped", zap.String("reason", string(skip.Reason)), zap.String("detail", skip.Detail))
			continue
		}

		row, mapSkip := mapper.Map(rec)
		if mapSkip != nil {
			summary.Skipped[string(mapSkip.Reason)]++
			zap.L().Debug("record skipped", zap.String("reason", string(mapSkip.Reason)), zap.String("detail", mapSkip.Detail))
			continue
		}

		rows = append(rows, row)
	}
	if err := <-errCh; err != nil {
		return nil, nil, eris.Wrap(err, "pipeline: decode feed")
	}

	summary.Mapped = len(rows)
	return rows, summary, nil
}

// loadStatic reads the fixed channel file. A missing file contributes
// nothing; a malformed one is reported and the merge is dropped.
func (p *Pipeline) loadStatic() []adms.Row {
	if p.cfg.Static.Path == "" {
		return nil
	}

	rows, err := adms.LoadStatic(p.cfg.Static.Path)
	if err != nil {
		if os.IsNotExist(eris.Cause(err)) {
			zap.L().Info("no static channel file, continuing without",
				zap.String("path", p.cfg.Static.Path))
			return nil
		}
		zap.L().Warn("static channel file unusable, merge skipped",
			zap.String("path", p.cfg.Static.Path),
			zap.Error(err),
		)
		return nil
	}

	return rows
}

// Package pipeline runs the vocabulary stages in order over a loaded export.
package pipeline

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/japaniel/kurosu/pkg/vocab"
)

// Stage identifies one step of the pipeline.
type Stage int

const (
	StageMerge Stage = iota
	StageExpand
	StageScore
	StageFilter
	StageNormalize
)

var stageNames = [...]string{"merge", "expand", "score", "filter", "normalize"}

func (s Stage) String() string {
	if s < 0 || int(s) >= len(stageNames) {
		return "unknown"
	}
	return stageNames[s]
}

// Normalizer converts a reading to the answer script.
type Normalizer interface {
	Normalize(text string) string
}

// Pipeline turns raw export entries into scored, filtered, katakana entries.
type Pipeline struct {
	Scale      vocab.Scale
	Normalizer Normalizer
	// Logger is used for stage summaries and warnings. nil means no logging.
	Logger *zap.Logger
	// OnProgress is called after each stage with the number of entries it produced.
	OnProgress func(stage Stage, count int)
}

// New creates a pipeline with the given frequency scale and normalizer.
func New(scale vocab.Scale, normalizer Normalizer) *Pipeline {
	return &Pipeline{Scale: scale, Normalizer: normalizer}
}

// Run executes merge, expand, score, filter and normalize over raw. Each
// stage consumes its whole input before the next starts. The context is
// checked between stages.
func (p *Pipeline) Run(ctx context.Context, raw []vocab.Entry) ([]vocab.Entry, error) {
	if p.Normalizer == nil {
		return nil, errors.New("pipeline: no normalizer")
	}
	logger := p.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	entries := raw
	steps := []struct {
		stage Stage
		run   func([]vocab.Entry) []vocab.Entry
	}{
		{StageMerge, vocab.Merge},
		{StageExpand, func(es []vocab.Entry) []vocab.Entry { return vocab.ExpandStems(es, logger) }},
		{StageScore, func(es []vocab.Entry) []vocab.Entry { vocab.ScoreLevels(es, p.Scale); return es }},
		{StageFilter, func(es []vocab.Entry) []vocab.Entry { return vocab.FilterReadings(es, p.Scale) }},
		{StageNormalize, p.normalize},
	}
	for _, step := range steps {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		before := len(entries)
		entries = step.run(entries)
		logger.Info("stage complete",
			zap.Stringer("stage", step.stage),
			zap.Int("in", before),
			zap.Int("out", len(entries)))
		if p.OnProgress != nil {
			p.OnProgress(step.stage, len(entries))
		}
	}
	return entries, nil
}

// normalize rewrites every reading and tail in the answer script.
func (p *Pipeline) normalize(entries []vocab.Entry) []vocab.Entry {
	for i := range entries {
		e := &entries[i]
		for j := range e.Readings {
			e.Readings[j].Text = p.Normalizer.Normalize(e.Readings[j].Text)
		}
		if e.Tail != "" {
			e.Tail = p.Normalizer.Normalize(e.Tail)
		}
	}
	return entries
}

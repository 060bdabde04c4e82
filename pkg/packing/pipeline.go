package packing

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/pyhub-apps/packlist/pkg/block"
	"github.com/pyhub-apps/packlist/pkg/config"
	"github.com/pyhub-apps/packlist/pkg/extractors"
	"github.com/pyhub-apps/packlist/pkg/pdf"
)

// Dumper receives diagnostic snapshots of the sequence between stages
type Dumper interface {
	Dump(name string, seq block.Sequence) (string, error)
}

// RunContext carries the values one stage hands to the next
type RunContext struct {
	Source         string
	OrderNumber    string
	Classification Classification
	Selection      Selection
	HeaderIndex    int // in the synthesized sequence
	CustomerIndex  int // in the synthesized sequence
	Offset         float64
}

// Result is the outcome of one pipeline run
type Result struct {
	RunContext
	Extracted block.Sequence
	Modified  block.Sequence
	Adjusted  block.Sequence
}

// Pipeline runs extraction, classification, selection, synthesis and repositioning
type Pipeline struct {
	Template config.Template
	Builder  *extractors.BlockBuilder
	Log      logrus.FieldLogger
	Dumper   Dumper // optional
	Now      func() time.Time
}

// NewPipeline creates a pipeline for the given template
func NewPipeline(tmpl config.Template, log logrus.FieldLogger) *Pipeline {
	return &Pipeline{
		Template: tmpl,
		Builder:  extractors.NewBlockBuilder(),
		Log:      log,
		Now:      time.Now,
	}
}

// Extract opens the PDF at path and returns its block sequence
func (p *Pipeline) Extract(path string) (block.Sequence, error) {
	doc, err := pdf.Open(path)
	if err != nil {
		return nil, err
	}
	defer doc.Close()

	return p.builder().Extract(doc), nil
}

// Run extracts the blocks of the PDF at path and processes them
func (p *Pipeline) Run(ctx context.Context, path string) (*Result, error) {
	log := p.logger().WithField("file", path)

	seq, err := p.Extract(path)
	if err != nil {
		return nil, fmt.Errorf("failed to extract blocks: %w", err)
	}
	log.WithField("blocks", len(seq)).Info("extracted blocks")

	res, err := p.Process(ctx, seq)
	if err != nil {
		return nil, err
	}
	res.Source = path
	return res, nil
}

// Process runs every stage after extraction on seq, which is left untouched
func (p *Pipeline) Process(ctx context.Context, seq block.Sequence) (*Result, error) {
	if err := p.Template.Validate(); err != nil {
		return nil, fmt.Errorf("invalid template %s: %w", p.Template.Name, err)
	}
	pattern, err := compileOrderPattern(p.Template.OrderPattern)
	if err != nil {
		return nil, err
	}

	res := &Result{Extracted: seq.Clone()}
	res.OrderNumber = OrderNumber(seq, pattern, p.now())
	log := p.logger().WithField("order", res.OrderNumber)
	p.dump(log, res.OrderNumber+"_extracted", res.Extracted)

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	res.Classification, err = Classify(res.Extracted, p.Template, log)
	if err != nil {
		return nil, fmt.Errorf("failed to classify blocks: %w", err)
	}

	res.Selection = Select(res.Extracted, res.Classification, p.Template)
	for _, b := range res.Extracted {
		if !res.Selection.Delete[b.ID] {
			continue
		}
		log.WithFields(logrus.Fields{
			"id":   b.ID,
			"x":    b.X,
			"y":    b.Y,
			"text": b.Summary(30),
		}).Debug("block selected for deletion")
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	syn, err := Synthesize(res.Extracted, res.Classification, res.Selection, p.Template)
	if err != nil {
		return nil, fmt.Errorf("failed to synthesize blocks: %w", err)
	}
	res.Modified = syn.Blocks
	res.HeaderIndex = syn.HeaderIndex
	res.CustomerIndex = syn.CustomerIndex
	p.dump(log, res.OrderNumber+"_modified", res.Modified)

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	res.Adjusted, res.Offset = Reposition(res.Modified, res.HeaderIndex, res.CustomerIndex, p.Template.RepositionGap)
	p.dump(log, res.OrderNumber+"_adjusted", res.Adjusted)

	log.WithFields(logrus.Fields{
		"deleted": len(res.Selection.Delete),
		"blocks":  len(res.Adjusted),
		"offset":  res.Offset,
	}).Info("packing list prepared")

	return res, nil
}

// dump writes a diagnostic snapshot; a failure is logged and never stops the run
func (p *Pipeline) dump(log logrus.FieldLogger, name string, seq block.Sequence) {
	if p.Dumper == nil {
		return
	}
	path, err := p.Dumper.Dump(name, seq)
	if err != nil {
		log.WithError(err).Warn("failed to write block dump")
		return
	}
	log.WithField("path", path).Debug("wrote block dump")
}

func (p *Pipeline) builder() *extractors.BlockBuilder {
	if p.Builder == nil {
		return extractors.NewBlockBuilder()
	}
	return p.Builder
}

func (p *Pipeline) logger() logrus.FieldLogger {
	if p.Log == nil {
		return logrus.StandardLogger()
	}
	return p.Log
}

func (p *Pipeline) now() time.Time {
	if p.Now == nil {
		return time.Now()
	}
	return p.Now()
}

package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/shivayapandey/invoice/pkg/aggregator"
	"github.com/shivayapandey/invoice/pkg/classifier"
	"github.com/shivayapandey/invoice/pkg/document"
	"github.com/shivayapandey/invoice/pkg/extractor"
	"github.com/shivayapandey/invoice/pkg/pager"
	"github.com/shivayapandey/invoice/pkg/renderer"

	"github.com/google/uuid"
)

// ParseError marks a file whose content could not be parsed. The file is
// skipped and the rest of the batch continues.
type ParseError struct {
	Name string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %v", e.Name, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Warning records a per-file failure that did not abort the batch.
type Warning struct {
	File string
	Err  error
}

// Result is the outcome of one batch. Text is empty when no file yielded
// invoice content, which is distinct from a failed batch (that returns an
// error instead).
type Result struct {
	ID string

	Text string

	Files     int
	Extracted int

	Warnings []Warning
}

type Pipeline struct {
	extractor  extractor.Provider
	classifier classifier.Provider
	renderer   renderer.Renderer
	measurer   pager.Measurer

	geometry pager.Geometry
}

func New(e extractor.Provider, c classifier.Provider, r renderer.Renderer, m pager.Measurer, geometry pager.Geometry) (*Pipeline, error) {
	if e == nil {
		return nil, errors.New("extractor required")
	}

	if c == nil {
		return nil, errors.New("classifier required")
	}

	if err := geometry.Validate(); err != nil {
		return nil, err
	}

	return &Pipeline{
		extractor:  e,
		classifier: c,
		renderer:   r,
		measurer:   m,

		geometry: geometry,
	}, nil
}

// Process runs extraction and classification for each file in upload order.
// Files are handled one at a time; a failing file is recorded as a warning
// and the batch continues without it.
func (p *Pipeline) Process(ctx context.Context, files []extractor.File) (*Result, error) {
	result := &Result{
		ID: uuid.New().String(),

		Files: len(files),
	}

	var results []aggregator.FileResult

	for _, file := range files {
		extraction, err := p.processFile(ctx, file)

		if err != nil {
			slog.Warn("file skipped", "batch", result.ID, "file", file.Name, "error", err)

			result.Warnings = append(result.Warnings, Warning{File: file.Name, Err: err})
			continue
		}

		entry := aggregator.FileResult{
			Name: file.Name,
		}

		if extraction != nil {
			entry.Invoice = &extraction.Invoice
			result.Extracted++
		}

		results = append(results, entry)
	}

	result.Text = aggregator.Aggregate(results)

	slog.Info("batch processed", "batch", result.ID, "files", result.Files, "extracted", result.Extracted, "skipped", len(result.Warnings))

	return result, nil
}

func (p *Pipeline) processFile(ctx context.Context, file extractor.File) (*classifier.Extraction, error) {
	elements, err := p.extractor.Extract(ctx, file, nil)

	if err != nil {
		return nil, &ParseError{Name: file.Name, Err: err}
	}

	text := document.Normalize(elements)

	if text == "" {
		return nil, nil
	}

	extraction, err := p.classifier.Classify(ctx, text)

	if err != nil {
		var cerr *classifier.ClassificationError

		if errors.As(err, &cerr) {
			return nil, err
		}

		return nil, &classifier.ClassificationError{Err: err}
	}

	return extraction, nil
}

// Render lays the combined text onto pages and produces the final PDF.
// Measurement failures abort the whole pass; no partial document is emitted.
func (p *Pipeline) Render(text string) ([]byte, error) {
	instructions, err := pager.Layout(text, p.geometry, p.measurer)

	if err != nil {
		return nil, err
	}

	return p.renderer.Render(instructions, p.geometry)
}

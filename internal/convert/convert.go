// Package convert runs the source to PDF pipeline for one or many sources.
package convert

import (
	"context"
	"errors"
	"fmt"

	"github.com/kozaktomas/img2pdf/internal/document"
	"github.com/kozaktomas/img2pdf/internal/imageset"
	"github.com/kozaktomas/img2pdf/internal/layout"
	"github.com/kozaktomas/img2pdf/internal/output"
	"github.com/kozaktomas/img2pdf/internal/source"
)

// ErrNoItemsProcessed is returned when a run converted no source at all.
var ErrNoItemsProcessed = errors.New("no items processed")

// Options configure how documents are built.
type Options struct {
	Spec     layout.PageSpec
	Font     *document.Font // nil selects the embedded default
	Document document.Options
}

// DefaultOptions returns A4 pages with the default margin, DPI and font.
func DefaultOptions() Options {
	return Options{Spec: layout.DefaultPageSpec()}
}

// Plan validates entries and lays them out without rendering.
func Plan(name string, entries []source.Entry, spec layout.PageSpec) (*document.Document, error) {
	coll, err := imageset.NewFromEntries(entries, name)
	if err != nil {
		return nil, err
	}
	return document.Plan(coll, spec), nil
}

// Build turns named blobs into a rendered document. It has no side effects.
func Build(name string, entries []source.Entry, opts Options) (*document.Rendered, error) {
	doc, err := Plan(name, entries, opts.Spec)
	if err != nil {
		return nil, err
	}
	return doc.Render(opts.Font, opts.Document)
}

// Status is the outcome of converting one source.
type Status int

const (
	StatusConverted Status = iota
	StatusSkipped
	StatusFailed
	StatusCancelled
)

func (s Status) String() string {
	switch s {
	case StatusConverted:
		return "converted"
	case StatusSkipped:
		return "skipped"
	case StatusFailed:
		return "failed"
	case StatusCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Result describes what happened to one source.
type Result struct {
	Source     string
	Kind       source.Kind
	Status     Status
	OutputPath string
	Pages      int
	Err        error
}

// Converter builds documents and hands them to a sink.
type Converter struct {
	Options   Options
	OutputDir string
	Sink      output.Sink // nil means output.FileSink{}
}

// NewConverter returns a converter writing files into outputDir.
func NewConverter(opts Options, outputDir string) *Converter {
	return &Converter{Options: opts, OutputDir: outputDir, Sink: output.FileSink{}}
}

func (c *Converter) sink() output.Sink {
	if c.Sink == nil {
		return output.FileSink{}
	}
	return c.Sink
}

// Convert converts a single source. Sources without images are skipped.
// The context is only checked before work starts.
func (c *Converter) Convert(ctx context.Context, src source.Source) Result {
	res := Result{Source: src.Name(), Kind: src.Kind()}
	if err := ctx.Err(); err != nil {
		res.Status = StatusCancelled
		res.Err = err
		return res
	}

	entries, err := src.Entries()
	if err != nil {
		return res.fail(fmt.Errorf("failed to read source: %w", err))
	}
	if len(entries) == 0 {
		res.Status = StatusSkipped
		return res
	}

	rendered, err := Build(src.Name(), entries, c.Options)
	if err != nil {
		return res.fail(err)
	}

	path := output.PathFor(c.OutputDir, src.Name())
	if err := c.sink().Write(path, rendered.Data); err != nil {
		return res.fail(err)
	}

	res.Status = StatusConverted
	res.OutputPath = path
	res.Pages = rendered.PageCount
	return res
}

func (r Result) fail(err error) Result {
	r.Status = StatusFailed
	r.Err = err
	return r
}

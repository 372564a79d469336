// Package export converts a rendered visual surface into a paginated PDF.
//
// The pipeline is rasterize-then-paginate: the surface's styling is
// normalized to literal inline CSS, a headless browser renders it to one
// master bitmap at 2x density, the bitmap is sliced into A4-height bands, and
// the bands are assembled into the final document. No structured (vector or
// text) PDF content is generated; the output visually matches the on-screen
// rendering at the cost of being bitmap-backed.
package export

import (
	"context"
	"log"
	"strings"

	"golang.org/x/sync/semaphore"
)

// Result is a completed export: the PDF bytes, the derived download name,
// and the page count.
type Result struct {
	PDF      []byte
	FileName string
	Pages    int
}

// Exporter runs the pipeline. At most one export runs at a time per Exporter;
// a second concurrent call is rejected with ErrExportInFlight rather than
// queued or interleaved.
type Exporter struct {
	rasterizer Rasterizer
	inflight   *semaphore.Weighted
	quality    int
}

// New creates an exporter around the given rasterizer.
func New(rasterizer Rasterizer) *Exporter {
	return &Exporter{
		rasterizer: rasterizer,
		inflight:   semaphore.NewWeighted(1),
		quality:    defaultJPEGQuality,
	}
}

// Export runs the full pipeline for one surface. The export is all-or-nothing:
// any stage failure returns an error and no partial PDF. A missing surface is
// reported immediately, before any staging or browser work.
func (e *Exporter) Export(ctx context.Context, surface, title string) (*Result, error) {
	if strings.TrimSpace(surface) == "" {
		return nil, &SurfaceError{Message: "resume preview not found"}
	}

	if !e.inflight.TryAcquire(1) {
		return nil, ErrExportInFlight
	}
	defer e.inflight.Release(1)

	doc, err := BuildExportDocument(surface)
	if err != nil {
		return nil, e.fail("normalize", err)
	}

	master, err := e.rasterizer.Rasterize(ctx, doc)
	if err != nil {
		return nil, e.fail("rasterize", err)
	}

	pages, err := Paginate(master, e.quality)
	if err != nil {
		return nil, e.fail("paginate", err)
	}

	pdf, err := AssemblePDF(pages)
	if err != nil {
		return nil, e.fail("assemble", err)
	}

	return &Result{PDF: pdf, FileName: FileName(title), Pages: len(pages)}, nil
}

func (e *Exporter) fail(stage string, err error) error {
	perr := &PipelineError{Stage: stage, Cause: err}
	log.Printf("[EXPORT] %v", perr)
	return perr
}

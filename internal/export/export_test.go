package export

import (
	"bytes"
	"context"
	"errors"
	"image"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubRasterizer returns a fixed bitmap, optionally blocking until released.
type stubRasterizer struct {
	img     image.Image
	err     error
	block   chan struct{}
	mu      sync.Mutex
	calls   int
	lastDoc string
}

func (s *stubRasterizer) Rasterize(_ context.Context, doc string) (image.Image, error) {
	s.mu.Lock()
	s.calls++
	s.lastDoc = doc
	s.mu.Unlock()

	if s.block != nil {
		<-s.block
	}
	if s.err != nil {
		return nil, s.err
	}
	return s.img, nil
}

const testSurface = `<div class="resume-section"><p class="text-gray-700">Jane Doe</p></div>`

func TestExport_Success(t *testing.T) {
	stub := &stubRasterizer{img: solidImage(794, 1123)}
	e := New(stub)

	res, err := e.Export(context.Background(), testSurface, "My Resume")
	require.NoError(t, err)

	assert.Equal(t, "my_resume_resume.pdf", res.FileName)
	assert.Equal(t, 1, res.Pages)
	assert.True(t, bytes.HasPrefix(res.PDF, []byte("%PDF")), "output must be a PDF")

	// The rasterizer received the normalized off-screen document, not the raw
	// surface.
	assert.Contains(t, stub.lastDoc, `id="export-root"`)
	assert.Contains(t, stub.lastDoc, "color:#374151")
}

func TestExport_MultiPage(t *testing.T) {
	// 2.3 pages tall at width 794: one page is round(297*794/210) = 1123 px.
	stub := &stubRasterizer{img: solidImage(794, 2583)}
	e := New(stub)

	res, err := e.Export(context.Background(), testSurface, "long one")
	require.NoError(t, err)
	assert.Equal(t, 3, res.Pages)
}

func TestExport_MissingSurface(t *testing.T) {
	stub := &stubRasterizer{img: solidImage(10, 10)}
	e := New(stub)

	_, err := e.Export(context.Background(), "   ", "title")
	require.Error(t, err)

	var surfaceErr *SurfaceError
	require.ErrorAs(t, err, &surfaceErr)

	// Precondition failures never reach the rasterizer.
	assert.Equal(t, 0, stub.calls)
}

func TestExport_SingleFlightGuard(t *testing.T) {
	stub := &stubRasterizer{img: solidImage(794, 1123), block: make(chan struct{})}
	e := New(stub)

	done := make(chan error, 1)
	go func() {
		_, err := e.Export(context.Background(), testSurface, "first")
		done <- err
	}()

	// Wait until the first export is inside the rasterizer.
	require.Eventually(t, func() bool {
		stub.mu.Lock()
		defer stub.mu.Unlock()
		return stub.calls == 1
	}, 2*time.Second, time.Millisecond)

	_, err := e.Export(context.Background(), testSurface, "second")
	assert.ErrorIs(t, err, ErrExportInFlight)

	close(stub.block)
	require.NoError(t, <-done)

	// With the first export finished, a new one is accepted again.
	stub.block = nil
	_, err = e.Export(context.Background(), testSurface, "third")
	assert.NoError(t, err)
}

func TestExport_RasterizerFailureWrapped(t *testing.T) {
	stub := &stubRasterizer{err: errors.New("chrome exploded")}
	e := New(stub)

	_, err := e.Export(context.Background(), testSurface, "title")
	require.Error(t, err)

	var perr *PipelineError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "rasterize", perr.Stage)
	assert.ErrorContains(t, perr, "chrome exploded")
}

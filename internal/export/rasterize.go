package export

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/emulation"
	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// Virtual page geometry: A4 at 96 DPI, rendered at 2x pixel density.
const (
	pageWidthPx     = 794
	minPageHeightPx = 1123
	deviceScale     = 2.0
)

// Settle delays before layout reads and before capture, so pending paint work
// finishes first.
const (
	loadSettleDelay    = 300 * time.Millisecond
	captureSettleDelay = 500 * time.Millisecond
)

// Rasterizer renders an export document to a single master bitmap tall
// enough to hold all content.
type Rasterizer interface {
	Rasterize(ctx context.Context, doc string) (image.Image, error)
}

// ChromeRasterizer renders documents in a headless Chrome instance. Each call
// stages its own temp directory and browser context, so overlapping calls
// never share mutable state.
type ChromeRasterizer struct {
	// Timeout bounds a single rasterization, browser startup included.
	Timeout time.Duration
}

// NewChromeRasterizer returns a rasterizer with a 60s per-call timeout.
func NewChromeRasterizer() *ChromeRasterizer {
	return &ChromeRasterizer{Timeout: 60 * time.Second}
}

// Rasterize writes the document to a temp file, loads it off-screen at the
// fixed virtual page width, grows the viewport to the content's scroll
// height, and captures one PNG screenshot of the whole surface. The temp
// directory is removed on every path, including failures.
func (r *ChromeRasterizer) Rasterize(ctx context.Context, doc string) (image.Image, error) {
	tmpDir, err := os.MkdirTemp("", "resume-export-*")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp directory: %w", err)
	}
	defer func() { _ = os.RemoveAll(tmpDir) }()

	htmlPath := filepath.Join(tmpDir, "index.html")
	if err := os.WriteFile(htmlPath, []byte(doc), 0644); err != nil {
		return nil, fmt.Errorf("failed to write export document: %w", err)
	}

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("allow-file-access-from-files", true),
	)
	if p := os.Getenv("CHROME_PATH"); p != "" {
		opts = append(opts, chromedp.ExecPath(p))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	browserCtx, cancelTimeout := context.WithTimeout(browserCtx, r.Timeout)
	defer cancelTimeout()

	var shot []byte
	err = chromedp.Run(browserCtx,
		chromedp.EmulateViewport(pageWidthPx, minPageHeightPx, chromedp.EmulateScale(deviceScale)),
		chromedp.Navigate("file://"+htmlPath),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.Sleep(loadSettleDelay),
		chromedp.ActionFunc(func(ctx context.Context) error {
			// The bitmap height is the larger of one virtual page and the
			// actual scrolled content height.
			var contentHeight int64
			if err := chromedp.Evaluate(`document.documentElement.scrollHeight`, &contentHeight).Do(ctx); err != nil {
				return fmt.Errorf("failed to measure content height: %w", err)
			}
			if contentHeight < minPageHeightPx {
				contentHeight = minPageHeightPx
			}
			return emulation.SetDeviceMetricsOverride(pageWidthPx, contentHeight, deviceScale, false).Do(ctx)
		}),
		chromedp.Sleep(captureSettleDelay),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			shot, err = page.CaptureScreenshot().
				WithFormat(page.CaptureScreenshotFormatPng).
				WithFromSurface(true).
				WithCaptureBeyondViewport(true).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("rasterization failed: %w", err)
	}

	img, err := png.Decode(bytes.NewReader(shot))
	if err != nil {
		return nil, fmt.Errorf("failed to decode screenshot: %w", err)
	}
	return img, nil
}

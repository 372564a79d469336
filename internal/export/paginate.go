package export

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"image/jpeg"
	"math"
)

// A4 physical page size in millimeters.
const (
	a4WidthMM  = 210.0
	a4HeightMM = 297.0
)

// defaultJPEGQuality matches the original export's ~95% page image encoding.
const defaultJPEGQuality = 95

// PageImage is one PDF page's bitmap, already encoded, with its placed height
// on the page. Every page except possibly the last fills the full A4 height.
type PageImage struct {
	JPEG     []byte
	HeightMM float64
}

// Paginate slices the master raster into successive page-height bands, top to
// bottom, no overlap and no gap. Each band is cropped from the single master
// bitmap and re-encoded as its own JPEG. A master that fits one page yields
// exactly one band.
func Paginate(master image.Image, quality int) ([]PageImage, error) {
	bounds := master.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("master bitmap has empty bounds: %v", bounds)
	}
	if quality <= 0 {
		quality = defaultJPEGQuality
	}

	// Pixel height of one full A4 page at the master's width.
	pagePx := a4HeightMM * float64(width) / a4WidthMM

	var pages []PageImage
	for yPx := 0; yPx < height; {
		bandPx := int(math.Min(math.Round(pagePx), float64(height-yPx)))
		if bandPx <= 0 {
			break
		}

		band := image.NewRGBA(image.Rect(0, 0, width, bandPx))
		draw.Draw(band, band.Bounds(), master, image.Pt(bounds.Min.X, bounds.Min.Y+yPx), draw.Src)

		var buf bytes.Buffer
		if err := jpeg.Encode(&buf, band, &jpeg.Options{Quality: quality}); err != nil {
			return nil, fmt.Errorf("failed to encode page %d: %w", len(pages)+1, err)
		}

		pages = append(pages, PageImage{
			JPEG:     buf.Bytes(),
			HeightMM: float64(bandPx) * a4WidthMM / float64(width),
		})
		yPx += bandPx
	}

	return pages, nil
}

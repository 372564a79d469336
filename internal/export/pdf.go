package export

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

// AssemblePDF builds an A4 portrait PDF with one page per band, each image
// placed at the top-left spanning the full page width.
func AssemblePDF(pages []PageImage) ([]byte, error) {
	if len(pages) == 0 {
		return nil, fmt.Errorf("no pages to assemble")
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetCompression(true)

	for i, pg := range pages {
		pdf.AddPage()
		name := fmt.Sprintf("band-%d", i+1)
		opts := gofpdf.ImageOptions{ImageType: "JPEG"}
		pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(pg.JPEG))
		pdf.ImageOptions(name, 0, 0, a4WidthMM, pg.HeightMM, false, opts, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to write PDF: %w", err)
	}
	return buf.Bytes(), nil
}

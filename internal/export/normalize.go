package export

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// classStyles maps utility classes to the literal styles they must resolve to
// inside the rasterizer's document, which does not load the live page's
// stylesheet. Order matters: later entries append to earlier ones.
var classStyles = []struct {
	class string
	style string
}{
	{"text-blue-600", "color:#2563eb"},
	{"text-blue-500", "color:#2563eb"},
	{"text-gray-600", "color:#4b5563"},
	{"text-gray-700", "color:#374151"},
	{"text-gray-800", "color:#1f2937"},
	{"text-gray-900", "color:#111827"},
	{"bg-gray-100", "background-color:#f3f4f6"},
	{"border-gray-300", "border-color:#d1d5db"},
	{"border-gray-400", "border-color:#9ca3af"},
	{"font-bold", "font-weight:700"},
	{"font-semibold", "font-weight:600"},
	{"font-medium", "font-weight:500"},
	{"italic", "font-style:italic"},
	{"uppercase", "text-transform:uppercase"},
	{"underline", "text-decoration:underline"},
	// Truncation must be disabled so no content is silently cut from the export.
	{"truncate", "overflow:visible;text-overflow:initial;white-space:normal"},
	{"list-disc", "list-style-type:disc"},
	{"list-inside", "list-style-position:inside"},
	{"border-r", "border-right:1px solid #d1d5db"},
	{"border-b", "border-bottom:1px solid #9ca3af"},
	// The 12-column grid becomes an explicit flex row with fixed percentage
	// widths; the rasterizer's grid support is unreliable.
	{"grid-cols-12", "display:flex;flex-wrap:nowrap;gap:1rem"},
	{"col-span-5", "flex:0 0 40%;width:40%"},
	{"col-span-7", "flex:0 0 60%;width:60%"},
}

// baseCSS is injected into the export document head as a second line of
// defense for anything the inline rewrite misses.
const baseCSS = `
* { box-sizing: border-box !important; -webkit-print-color-adjust: exact !important; print-color-adjust: exact !important; }
a { color: #2563eb !important; text-decoration: underline !important; }
.truncate { overflow: visible !important; text-overflow: initial !important; white-space: normal !important; }
.grid-cols-12 { display: flex !important; flex-wrap: nowrap !important; gap: 1rem !important; }
.col-span-5 { flex: 0 0 40% !important; width: 40% !important; }
.col-span-7 { flex: 0 0 60% !important; width: 60% !important; }
.list-disc { list-style-type: disc !important; }
.list-inside { list-style-position: inside !important; }
`

// containerStyle sizes the off-screen container to the fixed virtual page:
// 794 px wide (A4 at 96 DPI), at least 1123 px tall.
const containerStyle = "width:794px;min-height:1123px;background-color:white;" +
	"font-family:-apple-system,BlinkMacSystemFont,'Segoe UI',Roboto,sans-serif;" +
	"font-size:12px;line-height:1.4;padding:40px;box-sizing:border-box;color:#000;"

// NormalizeSurface rewrites utility-class styling on the surface fragment
// into inline styles and strips decoration that must not reach the export
// (shadows, rounded corners, width caps on the root).
func NormalizeSurface(surface string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(surface))
	if err != nil {
		return "", fmt.Errorf("failed to parse surface: %w", err)
	}

	body := doc.Find("body")

	// The root of the surface loses screen chrome.
	body.Children().First().Each(func(_ int, s *goquery.Selection) {
		appendStyle(s, "box-shadow:none;border-radius:0;max-width:none;margin:0")
	})

	body.Find("[class]").Each(func(_ int, s *goquery.Selection) {
		for _, cs := range classStyles {
			if s.HasClass(cs.class) {
				appendStyle(s, cs.style)
			}
		}
	})

	normalized, err := body.Html()
	if err != nil {
		return "", fmt.Errorf("failed to serialize normalized surface: %w", err)
	}
	return normalized, nil
}

// BuildExportDocument wraps a normalized surface in the complete off-screen
// document handed to the rasterizer.
func BuildExportDocument(surface string) (string, error) {
	normalized, err := NormalizeSurface(surface)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("<!DOCTYPE html><html><head><meta charset=\"utf-8\"><style>")
	b.WriteString(baseCSS)
	b.WriteString("</style></head><body style=\"margin:0;padding:0;background-color:white;\">")
	b.WriteString("<div id=\"export-root\" style=\"")
	b.WriteString(containerStyle)
	b.WriteString("\">")
	b.WriteString(normalized)
	b.WriteString("</div></body></html>")
	return b.String(), nil
}

func appendStyle(s *goquery.Selection, style string) {
	existing, _ := s.Attr("style")
	if existing != "" && !strings.HasSuffix(existing, ";") {
		existing += ";"
	}
	s.SetAttr("style", existing+style)
}

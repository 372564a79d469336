package export

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeSurface_InlinesUtilityClasses(t *testing.T) {
	surface := `<div class="resume-section"><p class="text-gray-700 font-semibold">Hi</p></div>`

	out, err := NormalizeSurface(surface)
	require.NoError(t, err)
	assert.Contains(t, out, "color:#374151")
	assert.Contains(t, out, "font-weight:600")
}

func TestNormalizeSurface_DisablesTruncation(t *testing.T) {
	surface := `<div class="resume-section"><a class="truncate" href="https://example.com">x</a></div>`

	out, err := NormalizeSurface(surface)
	require.NoError(t, err)
	assert.Contains(t, out, "overflow:visible")
	assert.Contains(t, out, "white-space:normal")
	assert.NotContains(t, out, "text-overflow:ellipsis")
}

func TestNormalizeSurface_GridBecomesFlex(t *testing.T) {
	surface := `<div class="resume-section"><div class="grid-cols-12">` +
		`<aside class="col-span-5">left</aside><main class="col-span-7">right</main>` +
		`</div></div>`

	out, err := NormalizeSurface(surface)
	require.NoError(t, err)
	assert.Contains(t, out, "display:flex")
	assert.Contains(t, out, "flex:0 0 40%")
	assert.Contains(t, out, "flex:0 0 60%")
}

func TestNormalizeSurface_RootLosesScreenChrome(t *testing.T) {
	surface := `<div class="resume-section" style="box-shadow:0 0 4px #000">x</div>`

	out, err := NormalizeSurface(surface)
	require.NoError(t, err)
	assert.Contains(t, out, "box-shadow:none")
	assert.Contains(t, out, "max-width:none")
}

func TestBuildExportDocument(t *testing.T) {
	doc, err := BuildExportDocument(`<div class="resume-section">x</div>`)
	require.NoError(t, err)

	assert.Contains(t, doc, "<!DOCTYPE html>")
	assert.Contains(t, doc, `id="export-root"`)
	assert.Contains(t, doc, "width:794px")
	assert.Contains(t, doc, "min-height:1123px")
	assert.Contains(t, doc, "print-color-adjust")
}

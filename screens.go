package bmfg

import (
	"image"
	"math"

	"github.com/gogpu/gg"

	"github.com/EliasRenko/bmfg/bake"
)

// Preview palette.
var (
	colorBackdrop  = gg.RGB(0.11, 0.12, 0.14)
	colorCheckerA  = gg.RGB(0.18, 0.19, 0.21)
	colorCheckerB  = gg.RGB(0.23, 0.24, 0.26)
	colorCell      = gg.RGBA2(0.95, 0.6, 0.2, 0.35)
	colorSelection = gg.RGB(1.0, 0.72, 0.25)
	colorBaseline  = gg.RGBA2(0.4, 0.75, 1.0, 0.8)
)

const atlasMargin = 16.0

// drawScreen renders the active screen. Callers hold mu.
func (e *Engine) drawScreen(dc *gg.Context) {
	dc.ClearWithColor(colorBackdrop)

	switch e.screen {
	case StatePreview:
		e.drawPreviewScreen(dc)
	case StateMetrics:
		e.drawMetricsScreen(dc)
	default:
		e.drawAtlasScreen(dc)
	}
}

// atlasLayout places the atlas page in the window: centered, scaled
// down to fit inside the margin but never scaled up.
func atlasLayout(winW, winH, atlasW, atlasH int) (x, y, scale float64) {
	scale = 1
	availW := float64(winW) - 2*atlasMargin
	availH := float64(winH) - 2*atlasMargin
	if availW > 0 && availH > 0 {
		scale = math.Min(1, math.Min(availW/float64(atlasW), availH/float64(atlasH)))
	}
	x = (float64(winW) - float64(atlasW)*scale) / 2
	y = (float64(winH) - float64(atlasH)*scale) / 2
	return x, y, scale
}

// drawAtlasScreen shows the atlas page over a checkerboard with every
// glyph cell outlined and the selection highlighted.
func (e *Engine) drawAtlasScreen(dc *gg.Context) {
	if e.bake == nil {
		return
	}

	bounds := e.bake.Atlas.Bounds()
	aw, ah := bounds.Dx(), bounds.Dy()
	x, y, scale := atlasLayout(e.win.width, e.win.height, aw, ah)
	drawnW := float64(aw) * scale
	drawnH := float64(ah) * scale

	drawCheckerboard(dc, x, y, drawnW, drawnH)

	dc.DrawImageEx(e.atlasImage(), gg.DrawImageOptions{
		X:             x,
		Y:             y,
		DstWidth:      drawnW,
		DstHeight:     drawnH,
		Interpolation: gg.InterpNearest,
	})

	dc.SetColor(colorCell.Color())
	dc.SetLineWidth(1)
	for _, g := range e.bake.Glyphs {
		dc.DrawRectangle(x+float64(g.X)*scale, y+float64(g.Y)*scale,
			float64(g.Width)*scale, float64(g.Height)*scale)
		_ = dc.Stroke()
	}

	if g, ok := e.selectedGlyph(); ok && blinkVisible(e.clock) {
		dc.SetColor(colorSelection.Color())
		dc.SetLineWidth(2)
		dc.DrawRectangle(x+float64(g.X)*scale-1, y+float64(g.Y)*scale-1,
			float64(g.Width)*scale+2, float64(g.Height)*scale+2)
		_ = dc.Stroke()
	}
}

// drawPreviewScreen lays the sample text out from the bake and draws
// it on its baseline.
func (e *Engine) drawPreviewScreen(dc *gg.Context) {
	if e.bake == nil {
		return
	}

	sample := composeSample(e.bake, e.sampleText)
	sw := sample.Bounds().Dx()
	sh := sample.Bounds().Dy()
	x := (float64(e.win.width) - float64(sw)) / 2
	y := (float64(e.win.height) - float64(sh)) / 2

	baseline := y + float64(e.bake.Metrics.Base)
	dc.SetColor(colorBaseline.Color())
	dc.SetLineWidth(1)
	dc.DrawLine(atlasMargin, baseline, float64(e.win.width)-atlasMargin, baseline)
	_ = dc.Stroke()

	dc.DrawImage(gg.ImageBufFromImage(sample), x, y)
}

// drawMetricsScreen magnifies the selected glyph and marks its layout
// metrics: cell box, offsets and advance.
func (e *Engine) drawMetricsScreen(dc *gg.Context) {
	if e.bake == nil {
		return
	}
	g, ok := e.selectedGlyph()
	if !ok {
		if len(e.bake.Glyphs) == 0 {
			return
		}
		g = e.bake.Glyphs[0]
	}

	// Magnify the cell to roughly half the window height.
	zoom := math.Max(1, math.Floor(float64(e.win.height)/2/math.Max(1, float64(e.bake.Metrics.LineHeight))))

	lineH := float64(e.bake.Metrics.LineHeight) * zoom
	penX := (float64(e.win.width) - float64(g.XAdvance)*zoom) / 2
	penY := (float64(e.win.height) - lineH) / 2

	// Advance box: pen to pen.
	dc.SetColor(colorCheckerB.Color())
	dc.DrawRectangle(penX, penY, float64(g.XAdvance)*zoom, lineH)
	_ = dc.Fill()

	// Baseline.
	baseline := penY + float64(e.bake.Metrics.Base)*zoom
	dc.SetColor(colorBaseline.Color())
	dc.SetLineWidth(1)
	dc.DrawLine(atlasMargin, baseline, float64(e.win.width)-atlasMargin, baseline)
	_ = dc.Stroke()

	// The glyph itself, zoomed, placed by its offsets.
	cell := image.Rect(g.X, g.Y, g.X+g.Width, g.Y+g.Height)
	dc.DrawImageEx(e.atlasImage(), gg.DrawImageOptions{
		X:             penX + float64(g.XOffset)*zoom,
		Y:             penY + float64(g.YOffset)*zoom,
		DstWidth:      float64(g.Width) * zoom,
		DstHeight:     float64(g.Height) * zoom,
		SrcRect:       &cell,
		Interpolation: gg.InterpNearest,
	})

	// Cell outline.
	dc.SetColor(colorSelection.Color())
	dc.SetLineWidth(1)
	dc.DrawRectangle(penX+float64(g.XOffset)*zoom, penY+float64(g.YOffset)*zoom,
		float64(g.Width)*zoom, float64(g.Height)*zoom)
	_ = dc.Stroke()
}

// atlasImage returns the bake's page as a drawable image, cached until
// the bake changes. Callers hold mu.
func (e *Engine) atlasImage() *gg.ImageBuf {
	if e.atlasBuf == nil && e.bake != nil {
		e.atlasBuf = gg.ImageBufFromImage(e.bake.RGBA())
	}
	return e.atlasBuf
}

// selectedGlyph resolves the current selection. Callers hold mu.
func (e *Engine) selectedGlyph() (bake.Glyph, bool) {
	if !e.hasSelected || e.bake == nil {
		return bake.Glyph{}, false
	}
	return e.bake.Glyph(e.selected)
}

// blinkVisible is the selection blink: on for most of each second.
func blinkVisible(clock float64) bool {
	return math.Mod(clock, 1.0) < 0.65
}

// drawCheckerboard fills the given rect with the transparency checker.
func drawCheckerboard(dc *gg.Context, x, y, w, h float64) {
	const cell = 16.0
	dc.SetColor(colorCheckerA.Color())
	dc.DrawRectangle(x, y, w, h)
	_ = dc.Fill()

	dc.SetColor(colorCheckerB.Color())
	for row := 0; float64(row)*cell < h; row++ {
		for col := 0; float64(col)*cell < w; col++ {
			if (row+col)%2 == 0 {
				continue
			}
			cw := math.Min(cell, w-float64(col)*cell)
			ch := math.Min(cell, h-float64(row)*cell)
			dc.DrawRectangle(x+float64(col)*cell, y+float64(row)*cell, cw, ch)
			_ = dc.Fill()
		}
	}
}

// composeSample renders text to a white-on-transparent image using the
// bake's glyph cells, advances and kerning. Runes without a baked
// glyph are skipped.
func composeSample(b *bake.Bake, text string) *image.NRGBA {
	width := b.Advance(text)
	if width < 1 {
		width = 1
	}
	height := b.Metrics.LineHeight
	if height < 1 {
		height = 1
	}
	out := image.NewNRGBA(image.Rect(0, 0, width, height))

	pen := 0
	prev := rune(-1)
	for _, r := range text {
		g, ok := b.Glyph(r)
		if !ok {
			prev = -1
			continue
		}
		if prev >= 0 {
			pen += b.Kern(prev, r)
		}
		blitGlyph(out, b.Atlas, g, pen)
		pen += g.XAdvance
		prev = r
	}
	return out
}

// blitGlyph copies one glyph cell from the atlas into dst at the pen
// position, compositing coverage as white with alpha.
func blitGlyph(dst *image.NRGBA, atlas *image.Alpha, g bake.Glyph, pen int) {
	for dy := 0; dy < g.Height; dy++ {
		for dx := 0; dx < g.Width; dx++ {
			a := atlas.AlphaAt(g.X+dx, g.Y+dy).A
			if a == 0 {
				continue
			}
			x := pen + g.XOffset + dx
			y := g.YOffset + dy
			if x < 0 || y < 0 || x >= dst.Bounds().Dx() || y >= dst.Bounds().Dy() {
				continue
			}
			i := dst.PixOffset(x, y)
			if a > dst.Pix[i+3] {
				dst.Pix[i+0] = 0xff
				dst.Pix[i+1] = 0xff
				dst.Pix[i+2] = 0xff
				dst.Pix[i+3] = a
			}
		}
	}
}

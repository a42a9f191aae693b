package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/iburimskiy/sketch-playground/internal/config"
	"github.com/iburimskiy/sketch-playground/internal/params"
)

// debugGlyphW is the width of one ebitenutil debug font character.
const debugGlyphW = 6

type rect struct {
	x, y, w, h int
}

func (r rect) contains(x, y int) bool {
	return x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h
}

// sliderRow is the geometry of one parameter slider.
type sliderRow struct {
	y      int
	labelX int
	track  rect
	valueX int
	hit    rect
}

// panelLayout places the controls below the surface.
type panelLayout struct {
	panel    rect
	next     rect
	toggle   rect
	statsY   int
	sketches []rect
	sliders  []sliderRow
}

// layoutPanel stacks the buttons, the stats line, one row per sketch and
// n slider rows.
func layoutPanel(viewportW, surfaceBottom, sketches, n int) panelLayout {
	top := surfaceBottom + config.PanelPadding
	l := panelLayout{
		next:   rect{config.PanelPadding, top, config.ButtonWidth, config.ButtonHeight},
		toggle: rect{viewportW - config.PanelPadding - config.ButtonWidth, top, config.ButtonWidth, config.ButtonHeight},
		statsY: top + config.ButtonHeight + 8,
	}

	listTop := l.statsY + 20
	for i := 0; i < sketches; i++ {
		l.sketches = append(l.sketches, rect{
			config.PanelPadding, listTop + i*config.SketchRowHeight,
			viewportW - 2*config.PanelPadding, config.SketchRowHeight,
		})
	}

	rowsTop := listTop + sketches*config.SketchRowHeight + 6
	trackX := config.PanelPadding + config.SliderLabelW
	trackW := max(20, viewportW-2*config.PanelPadding-config.SliderLabelW-config.SliderValueW)
	for i := 0; i < n; i++ {
		y := rowsTop + i*config.SliderRowHeight
		l.sliders = append(l.sliders, sliderRow{
			y:      y,
			labelX: config.PanelPadding,
			track:  rect{trackX, y + (config.SliderRowHeight-config.SliderTrackH)/2, trackW, config.SliderTrackH},
			valueX: trackX + trackW + config.PanelPadding,
			hit:    rect{trackX - config.SliderKnobR, y, trackW + 2*config.SliderKnobR, config.SliderRowHeight},
		})
	}

	bottom := rowsTop + n*config.SliderRowHeight + config.PanelPadding
	l.panel = rect{0, top - config.PanelPadding/2, viewportW, bottom - (top - config.PanelPadding/2)}
	return l
}

// sliderAt returns the index of the slider under (x, y), or -1.
func (l panelLayout) sliderAt(x, y int) int {
	for i, s := range l.sliders {
		if s.hit.contains(x, y) {
			return i
		}
	}
	return -1
}

// sketchAt returns the index of the sketch list row under (x, y), or -1.
func (l panelLayout) sketchAt(x, y int) int {
	for i, r := range l.sketches {
		if r.contains(x, y) {
			return i
		}
	}
	return -1
}

// fractionAt maps a cursor x onto slider i's track.
func (l panelLayout) fractionAt(i, x int) float64 {
	t := l.sliders[i].track
	return clamp01(float64(x-t.x) / float64(t.w))
}

// interactive reports whether (x, y) falls on a control rather than the
// open page.
func (l panelLayout) interactive(x, y int) bool {
	return l.panel.contains(x, y) || l.next.contains(x, y) || l.toggle.contains(x, y)
}

var (
	panelBg      = color.RGBA{R: 20, G: 25, B: 35, A: 220}
	trackColor   = color.RGBA{R: 60, G: 70, B: 90, A: 255}
	fillColor    = color.RGBA{R: 44, G: 140, B: 153, A: 255}
	knobColor    = color.RGBA{R: 235, G: 240, B: 245, A: 255}
	borderColor  = color.RGBA{R: 150, G: 170, B: 200, A: 255}
	buttonNormal = color.RGBA{R: 100, G: 120, B: 160, A: 255}
	buttonHover  = color.RGBA{R: 80, G: 100, B: 140, A: 255}
	buttonDown   = color.RGBA{R: 60, G: 80, B: 120, A: 255}
)

func drawButton(screen *ebiten.Image, r rect, text string, hovered, pressed bool) {
	// Button background
	bgColor := buttonNormal
	if pressed {
		bgColor = buttonDown
	} else if hovered {
		bgColor = buttonHover
	}
	vector.DrawFilledRect(screen, float32(r.x), float32(r.y), float32(r.w), float32(r.h), bgColor, false)
	vector.StrokeRect(screen, float32(r.x), float32(r.y), float32(r.w), float32(r.h), 1, borderColor, false)

	textX := r.x + (r.w-len(text)*debugGlyphW)/2
	textY := r.y + (r.h-16)/2
	ebitenutil.DebugPrintAt(screen, text, textX, textY)
}

func drawSlider(screen *ebiten.Image, row sliderRow, def params.Definition, value float64, active bool) {
	ebitenutil.DebugPrintAt(screen, def.Name, row.labelX, row.y+3)

	t := row.track
	vector.DrawFilledRect(screen, float32(t.x), float32(t.y), float32(t.w), float32(t.h), trackColor, false)
	fx := float32(t.x) + float32(def.Fraction(value))*float32(t.w)
	vector.DrawFilledRect(screen, float32(t.x), float32(t.y), fx-float32(t.x), float32(t.h), fillColor, false)

	knob := knobColor
	if active {
		knob = fillColor
	}
	cy := float32(t.y) + float32(t.h)/2
	vector.DrawFilledCircle(screen, fx, cy, config.SliderKnobR, knob, true)
	vector.StrokeCircle(screen, fx, cy, config.SliderKnobR, 1, borderColor, true)

	ebitenutil.DebugPrintAt(screen, formatValue(value), row.valueX, row.y+3)
}

// sketchLabel is the list entry for one sketch; the active one is marked.
func sketchLabel(name string, active bool) string {
	if active {
		return "> " + name
	}
	return "  " + name
}

func drawSketchRow(screen *ebiten.Image, r rect, name string, active, hovered bool) {
	switch {
	case active:
		vector.DrawFilledRect(screen, float32(r.x), float32(r.y), float32(r.w), float32(r.h), fillColor, false)
	case hovered:
		vector.DrawFilledRect(screen, float32(r.x), float32(r.y), float32(r.w), float32(r.h), buttonHover, false)
	}
	ebitenutil.DebugPrintAt(screen, sketchLabel(name, active), r.x+4, r.y)
}

func drawPanelBackground(screen *ebiten.Image, r rect) {
	vector.DrawFilledRect(screen, float32(r.x), float32(r.y), float32(r.w), float32(r.h), panelBg, false)
}

// titleFade eases the title's opacity from 0 to 1 after every switch.
type titleFade struct {
	tween *gween.Tween
	alpha float32
}

func newTitleFade() *titleFade {
	f := &titleFade{}
	f.restart()
	return f
}

func (f *titleFade) restart() {
	f.tween = gween.New(0, 1, config.TitleFadeDuration, ease.OutQuad)
	f.alpha = 0
}

func (f *titleFade) update(dt float32) {
	if f.tween == nil {
		return
	}
	v, done := f.tween.Update(dt)
	f.alpha = v
	if done {
		f.alpha = 1
		f.tween = nil
	}
}

// drawTitle prints the title at twice the debug font size and the subtitle
// beneath it, both centred and faded by alpha.
func drawTitle(screen, scratch *ebiten.Image, title, subtitle string, viewportW int, alpha float32) {
	scratch.Clear()
	ebitenutil.DebugPrintAt(scratch, title, 0, 0)

	var op ebiten.DrawImageOptions
	op.GeoM.Scale(2, 2)
	op.GeoM.Translate(float64(viewportW-2*len(title)*debugGlyphW)/2, 10)
	op.ColorScale.ScaleAlpha(alpha)
	screen.DrawImage(scratch, &op)

	scratch.Clear()
	ebitenutil.DebugPrintAt(scratch, subtitle, 0, 0)
	op = ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(viewportW-len(subtitle)*debugGlyphW)/2, 44)
	op.ColorScale.ScaleAlpha(alpha * 0.7)
	screen.DrawImage(scratch, &op)
}

// Package game is the ebiten host of the playground: it owns the drawing
// surface of the active sketch, advances the sketch every tick and draws the
// title and parameter controls around it.
package game

import (
	"errors"
	"fmt"
	"image/color"
	"log/slog"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/sketch-playground/internal/config"
	"github.com/iburimskiy/sketch-playground/internal/draw"
	"github.com/iburimskiy/sketch-playground/internal/export"
	"github.com/iburimskiy/sketch-playground/internal/params"
	"github.com/iburimskiy/sketch-playground/internal/querystate"
	"github.com/iburimskiy/sketch-playground/internal/sketch"
)

const subtitle = "click to advance"

var pageBg = color.RGBA{R: 12, G: 14, B: 22, A: 255}

type Game struct {
	log      *slog.Logger
	registry *sketch.Registry
	loc      querystate.Location
	seed     int64
	tickDt   float32

	// active sketch
	current    sketch.Config
	store      params.Store
	inst       sketch.Instance
	frame      int
	background color.RGBA

	// render host
	surface   *Surface
	viewportW int
	viewportH int

	// controls
	showParams bool
	layout     panelLayout
	dragging   int
	nextDown   bool
	toggleDown bool
	cursorX    int
	cursorY    int

	title   *titleFade
	scratch *ebiten.Image
	tap     *frameTap
	lastTic time.Time

	// input edge detection
	prevKey map[ebiten.Key]bool

	lastErr error
}

// New builds the host and activates the configured sketch. The debug panel
// starts visible when either the location carries debug=true or cfg.Debug is
// set; in the latter case the location is updated to match.
func New(cfg config.Config, registry *sketch.Registry, loc querystate.Location, log *slog.Logger) (*Game, error) {
	start := cfg.Sketch
	if start == "" {
		start = registry.First()
	}
	if _, err := registry.Get(start); err != nil {
		return nil, err
	}

	show, err := querystate.Read(loc)
	if err != nil {
		return nil, err
	}
	if cfg.Debug && !show {
		if err := querystate.Sync(loc, true); err != nil {
			return nil, err
		}
		show = true
	}

	g := &Game{
		log:        log,
		registry:   registry,
		loc:        loc,
		seed:       cfg.Seed,
		tickDt:     1 / float32(cfg.TPS),
		showParams: show,
		dragging:   -1,
		title:      newTitleFade(),
		scratch:    ebiten.NewImage(400, 16),
		tap:        newFrameTap(config.FrameTapSize),
		prevKey:    map[ebiten.Key]bool{},
		viewportW:  config.WindowWidth,
		viewportH:  config.WindowHeight,
	}
	if err := g.activate(start); err != nil {
		return nil, err
	}
	return g, nil
}

// Current returns the id of the active sketch.
func (g *Game) Current() string { return g.current.ID }

// Store returns the live store of the active sketch.
func (g *Game) Store() params.Store { return g.store }

// ShowParams reports whether the debug panel is visible.
func (g *Game) ShowParams() bool { return g.showParams }

// activate discards the current store and instance and starts id from its
// defaults on a fresh surface.
func (g *Game) activate(id string) error {
	c, err := g.registry.Get(id)
	if err != nil {
		return err
	}

	g.current = c
	g.store = c.InitStore()
	g.inst = c.New(g.store, g.seed)
	g.frame = 0
	g.dragging = -1

	size := config.SurfaceSize(g.viewportW)
	if g.surface == nil {
		g.surface = NewSurface(size)
	} else {
		g.surface.Recreate(size)
	}
	g.inst.Reset(size)
	g.relayout()

	g.title.restart()
	ebiten.SetWindowTitle(c.Title)
	g.log.Info("sketch activated", "id", c.ID, "name", c.Name, "params", len(c.Params), "size", size)
	return nil
}

// Next cycles to the following sketch in registry order.
func (g *Game) Next() error {
	return g.activate(g.registry.Next(g.current.ID))
}

// SetShowParams shows or hides the debug panel and mirrors it into the URL.
func (g *Game) SetShowParams(on bool) error {
	g.showParams = on
	g.dragging = -1
	if err := querystate.Sync(g.loc, on); err != nil {
		return fmt.Errorf("sync query state: %w", err)
	}
	g.log.Debug("parameter panel toggled", "show", on, "href", g.loc.Href())
	return nil
}

// resize recreates the surface when the viewport width changes its size.
// Nothing drawn so far is kept.
func (g *Game) resize(viewportW, viewportH int) {
	g.viewportW, g.viewportH = viewportW, viewportH
	size := config.SurfaceSize(viewportW)
	if g.surface == nil || g.surface.Size() == size {
		g.relayout()
		return
	}
	g.surface.Recreate(size)
	g.inst.Reset(size)
	g.relayout()
	g.log.Debug("surface recreated", "size", size, "viewport", viewportW)
}

func (g *Game) relayout() {
	size := config.MaxSurfaceSize
	if g.surface != nil {
		size = g.surface.Size()
	}
	g.layout = layoutPanel(g.viewportW, config.SurfaceTop+size, g.registry.Len(), len(g.current.Params))
}

// surfaceOrigin is where the surface sits on screen.
func (g *Game) surfaceOrigin() (int, int) {
	return (g.viewportW - g.surface.Size()) / 2, config.SurfaceTop
}

// setFromSlider writes the slider value at cursor x into the store.
func (g *Game) setFromSlider(i, x int) {
	def := g.current.Params[i]
	g.store.Set(def.Name, def.FromFraction(g.layout.fractionAt(i, x)))
}

// advance runs one frame of the active sketch and stamps it onto the layer.
func (g *Game) advance() draw.Frame {
	fr := g.inst.Advance(g.surface.Size())
	g.frame = fr.Index
	g.background = fr.Background
	g.surface.Stamp(fr.Layer)
	return fr
}

func (g *Game) Update() error {
	now := time.Now()
	if !g.lastTic.IsZero() {
		g.tap.record(now.Sub(g.lastTic))
	}
	g.lastTic = now

	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}

	if justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if justPressed(ebiten.KeyN) {
		g.keep(g.Next())
	}
	if justPressed(ebiten.KeyD) {
		g.keep(g.SetShowParams(!g.showParams))
	}
	if justPressed(ebiten.KeyS) {
		g.keep(g.saveSnapshot())
	}

	g.handleMouse()

	g.title.update(g.tickDt)
	g.advance()
	return nil
}

// keep records err for the status line.
func (g *Game) keep(err error) {
	if err != nil {
		g.lastErr = err
		g.log.Error("action failed", "err", err)
	}
}

func (g *Game) handleMouse() {
	x, y := ebiten.CursorPosition()
	g.cursorX, g.cursorY = x, y

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.press(x, y)
	}
	if g.dragging >= 0 && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		g.setFromSlider(g.dragging, x)
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.release(x, y)
	}
}

// press handles a mouse-down at (x, y). Clicks that land on a control are
// consumed by it; any other click cycles the sketch.
func (g *Game) press(x, y int) {
	if !g.showParams {
		g.keep(g.Next())
		return
	}
	switch {
	case g.layout.next.contains(x, y):
		g.nextDown = true
	case g.layout.toggle.contains(x, y):
		g.toggleDown = true
	default:
		if i := g.layout.sketchAt(x, y); i >= 0 {
			if id := g.registry.IDs()[i]; id != g.current.ID {
				g.keep(g.activate(id))
			}
			return
		}
		if i := g.layout.sliderAt(x, y); i >= 0 {
			g.dragging = i
			g.setFromSlider(i, x)
			return
		}
		if !g.layout.interactive(x, y) {
			g.keep(g.Next())
		}
	}
}

func (g *Game) release(x, y int) {
	if g.nextDown && g.layout.next.contains(x, y) {
		g.keep(g.Next())
	}
	if g.toggleDown && g.layout.toggle.contains(x, y) {
		g.keep(g.SetShowParams(!g.showParams))
	}
	g.nextDown, g.toggleDown = false, false
	g.dragging = -1
}

func (g *Game) saveSnapshot() error {
	path, ok, err := chooseSnapshotPath(fmt.Sprintf("%s-%05d.png", g.current.ID, g.frame))
	if err != nil || !ok {
		return err
	}
	if err := export.WritePNG(path, g.surface.Composite(g.background)); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	g.log.Info("snapshot saved", "path", path, "frame", g.frame)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(pageBg)

	drawTitle(screen, g.scratch, g.current.Title, subtitle, g.viewportW, g.title.alpha)

	if img := g.surface.Composite(g.background); img != nil {
		ox, oy := g.surfaceOrigin()
		var op ebiten.DrawImageOptions
		op.GeoM.Translate(float64(ox), float64(oy))
		screen.DrawImage(img, &op)
	}

	if g.showParams {
		g.drawControls(screen)
	}

	if g.lastErr != nil {
		ebitenutil.DebugPrintAt(screen, "Error: "+g.lastErr.Error(), config.PanelPadding, g.viewportH-20)
	}
}

func (g *Game) drawControls(screen *ebiten.Image) {
	l := g.layout
	drawPanelBackground(screen, l.panel)

	drawButton(screen, l.next, "Next Sketch", l.next.contains(g.cursorX, g.cursorY), g.nextDown)
	drawButton(screen, l.toggle, "Hide Parameters", l.toggle.contains(g.cursorX, g.cursorY), g.toggleDown)

	stats := fmt.Sprintf("%s  frame %d  ops %d  tick %s", g.current.Name, g.frame, g.surface.Stamped(), formatMillis(g.tap.mean()))
	ebitenutil.DebugPrintAt(screen, stats, config.PanelPadding, l.statsY)

	for i, id := range g.registry.IDs() {
		c, _ := g.registry.Get(id)
		r := l.sketches[i]
		drawSketchRow(screen, r, c.Name, id == g.current.ID, r.contains(g.cursorX, g.cursorY))
	}

	for i, row := range l.sliders {
		def := g.current.Params[i]
		drawSlider(screen, row, def, g.store.Get(def.Name), i == g.dragging)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.viewportW || outsideHeight != g.viewportH {
		g.resize(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

// Run opens the window and blocks until it closes.
func Run(g *Game, tps int) error {
	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(tps)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

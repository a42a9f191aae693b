package config

import (
	"flag"
	"fmt"
	"io"
)

const (
	WindowWidth  = 540
	WindowHeight = 960

	// The drawing surface is square: min(MaxSurfaceSize, viewport width - SurfaceBuffer).
	MaxSurfaceSize = 500
	SurfaceBuffer  = 20

	TitleHeight  = 64
	SurfaceTop   = TitleHeight + 8
	PanelPadding = 10

	// Button dimensions
	ButtonWidth  = 120
	ButtonHeight = 24

	// Slider geometry
	SliderRowHeight = 22
	SliderLabelW    = 150
	SliderValueW    = 70
	SliderTrackH    = 6
	SliderKnobR     = 6

	// One row per registered sketch in the panel list
	SketchRowHeight = 16

	// Title fade-in, seconds
	TitleFadeDuration = 0.6

	FrameTapSize = 120

	DefaultTPS  = 60
	DefaultHref = "sketch://playground/"
)

// SurfaceSize returns the side of the square surface for a viewport width.
func SurfaceSize(viewportWidth int) int {
	return max(1, min(MaxSurfaceSize, viewportWidth-SurfaceBuffer))
}

// Config holds the command line settings of the playground.
type Config struct {
	Sketch  string
	Debug   bool
	Seed    int64
	TPS     int
	Verbose bool
	Href    string
}

// Parse reads args (without the program name). Output for -h goes to out.
func Parse(args []string, out io.Writer) (Config, error) {
	var c Config
	fs := flag.NewFlagSet("sketch-playground", flag.ContinueOnError)
	fs.SetOutput(out)
	fs.StringVar(&c.Sketch, "sketch", "", "id of the sketch to start with (default: first registered)")
	fs.BoolVar(&c.Debug, "debug", false, "show the parameter panel (same as ?debug=true)")
	fs.Int64Var(&c.Seed, "seed", 1, "noise seed")
	fs.IntVar(&c.TPS, "tps", DefaultTPS, "frames advanced per second")
	fs.BoolVar(&c.Verbose, "v", false, "debug logging")
	fs.StringVar(&c.Href, "href", DefaultHref, "initial location for the query state outside the browser")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if c.TPS <= 0 {
		return Config{}, fmt.Errorf("-tps must be positive, got %d", c.TPS)
	}
	return c, nil
}

package export

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/iburimskiy/sketch-playground/internal/sketch"
)

func TestRenderRings(t *testing.T) {
	inst := sketch.NewRings(sketch.RingParams.InitStore(), 1)
	img, last := Render(inst, 500, 10)

	if last.Index != 10 {
		t.Errorf("last.Index = %d, want 10", last.Index)
	}
	if b := img.Bounds(); b.Dx() != 500 || b.Dy() != 500 {
		t.Fatalf("bounds = %v, want 500x500", b)
	}

	// The corner only ever sees the fade, which darkens the background.
	r, g, b, a := img.At(0, 0).RGBA()
	if a>>8 != 255 {
		t.Errorf("corner alpha = %d, want 255", a>>8)
	}
	if b>>8 == 0 || b>>8 > 0x18 || r>>8 > 0x05 || g>>8 > 0x08 {
		t.Errorf("corner = (%d, %d, %d), want a darkened #050818", r>>8, g>>8, b>>8)
	}

	lit := false
	for y := 0; y < 500 && !lit; y++ {
		for x := 0; x < 500; x++ {
			if _, g, _, _ := img.At(x, y).RGBA(); g>>8 > 0x30 {
				lit = true
				break
			}
		}
	}
	if !lit {
		t.Error("no ring dot was drawn")
	}
}

func TestWritePNG(t *testing.T) {
	inst := sketch.NewBrokenQR(sketch.QRParams.InitStore(), 1)
	img, _ := Render(inst, 64, 2)
	path := filepath.Join(t.TempDir(), "out.png")
	if err := WritePNG(path, img); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("\x89PNG")) {
		t.Error("output is not a PNG")
	}
}

func TestWriteSVG(t *testing.T) {
	inst := sketch.NewRings(sketch.RingParams.InitStore(), 1)
	fr := inst.Advance(500)

	var buf bytes.Buffer
	if err := WriteSVG(&buf, fr, 500); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "<svg") || !strings.Contains(out, "</svg>") {
		t.Fatal("output is not an SVG document")
	}
	if got, want := strings.Count(out, "<circle"), 2*sketch.RingSamples; got != want {
		t.Errorf("circles = %d, want %d", got, want)
	}
	if !strings.Contains(out, "fill:#050818") {
		t.Error("background rect missing")
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriteSVGReportsWriteError(t *testing.T) {
	inst := sketch.NewRings(sketch.RingParams.InitStore(), 1)
	if err := WriteSVG(failingWriter{}, inst.Advance(100), 100); err == nil {
		t.Error("WriteSVG should report the write error")
	}
}

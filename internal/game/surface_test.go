package game

import (
	"image"
	"image/color"
	"testing"

	"github.com/iburimskiy/sketch-playground/internal/draw"
)

func TestSurfaceRecreateStartsEmpty(t *testing.T) {
	s := NewSurface(200)
	t.Cleanup(s.Dispose)

	s.Stamp([]draw.Op{
		draw.Rect(0, 0, 200, 200, color.RGBA{A: 10}),
		draw.Circle(50, 50, 5, color.RGBA{R: 255, A: 255}),
	})
	if s.Stamped() != 2 {
		t.Errorf("Stamped() = %d, want 2", s.Stamped())
	}

	visible, layer := s.visible, s.layer
	s.Recreate(120)
	if s.visible == visible || s.layer == layer {
		t.Error("Recreate kept the old images")
	}
	if s.Size() != 120 {
		t.Errorf("Size() = %d, want 120", s.Size())
	}
	if s.Stamped() != 0 {
		t.Errorf("Stamped() = %d after Recreate, want 0", s.Stamped())
	}

	img := s.Composite(color.RGBA{R: 10, G: 10, B: 10, A: 255})
	if img != s.visible {
		t.Error("Composite did not return the visible image")
	}
	if want := image.Rect(0, 0, 120, 120); img.Bounds() != want {
		t.Errorf("Bounds() = %v, want %v", img.Bounds(), want)
	}
	if s.layer.Bounds() != img.Bounds() {
		t.Errorf("layer bounds = %v, want %v", s.layer.Bounds(), img.Bounds())
	}
}

func TestSurfaceDispose(t *testing.T) {
	s := NewSurface(64)
	s.Stamp([]draw.Op{draw.Line(0, 0, 64, 64, 1, color.RGBA{A: 255})})
	s.Dispose()

	if s.visible != nil || s.layer != nil {
		t.Error("Dispose left images allocated")
	}
	if s.Size() != 0 || s.Stamped() != 0 {
		t.Errorf("Size(), Stamped() = %d, %d, want 0, 0", s.Size(), s.Stamped())
	}

	s.Stamp([]draw.Op{draw.Rect(0, 0, 1, 1, color.RGBA{A: 255})})
	if s.Stamped() != 0 {
		t.Errorf("Stamped() = %d on disposed surface, want 0", s.Stamped())
	}
	if img := s.Composite(color.RGBA{A: 255}); img != nil {
		t.Error("Composite on disposed surface returned an image")
	}
	s.Dispose()
}

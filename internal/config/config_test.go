package config

import (
	"io"
	"testing"
)

func TestSurfaceSize(t *testing.T) {
	tests := []struct {
		viewport, want int
	}{
		{300, 280},
		{519, 499},
		{520, 500},
		{1920, 500},
		{20, 1},
		{0, 1},
	}
	for _, tt := range tests {
		if got := SurfaceSize(tt.viewport); got != tt.want {
			t.Errorf("SurfaceSize(%d) = %d, want %d", tt.viewport, got, tt.want)
		}
	}
}

func TestParseDefaults(t *testing.T) {
	c, err := Parse(nil, io.Discard)
	if err != nil {
		t.Fatal(err)
	}
	if c.Debug || c.Sketch != "" || c.Seed != 1 || c.TPS != DefaultTPS || c.Href != DefaultHref {
		t.Errorf("defaults = %+v", c)
	}
}

func TestParseFlags(t *testing.T) {
	c, err := Parse([]string{"-debug", "-sketch", "qr", "-seed", "9", "-tps", "30"}, io.Discard)
	if err != nil {
		t.Fatal(err)
	}
	if !c.Debug || c.Sketch != "qr" || c.Seed != 9 || c.TPS != 30 {
		t.Errorf("parsed = %+v", c)
	}

	if _, err := Parse([]string{"-tps", "0"}, io.Discard); err == nil {
		t.Error("Parse(-tps 0) should fail")
	}
	if _, err := Parse([]string{"-nope"}, io.Discard); err == nil {
		t.Error("Parse(-nope) should fail")
	}
}

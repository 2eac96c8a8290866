package utils

import (
	"image/color"
	"testing"
)

func TestParseHexColor(t *testing.T) {
	c, err := ParseHexColor("#ff5d8f")
	if err != nil {
		t.Fatalf("ParseHexColor() error: %v", err)
	}
	want := color.RGBA{R: 0xff, G: 0x5d, B: 0x8f, A: 0xff}
	if c != want {
		t.Errorf("ParseHexColor() = %v, want %v", c, want)
	}

	if _, err := ParseHexColor("pink"); err == nil {
		t.Error("expected error for non-hex color")
	}
}

func TestBlendOver(t *testing.T) {
	fg := color.RGBA{R: 255, A: 255}
	bg := color.RGBA{B: 255, A: 255}

	if got := BlendOver(fg, bg, 0); got != bg {
		t.Errorf("alpha 0 should keep background, got %v", got)
	}
	if got := BlendOver(fg, bg, 1); got != fg {
		t.Errorf("alpha 1 should give foreground, got %v", got)
	}

	mid := BlendOver(fg, bg, 0.5)
	if mid.R == 0 || mid.B == 0 {
		t.Errorf("alpha 0.5 should mix both channels, got %v", mid)
	}
}

package game

import (
	"testing"

	"github.com/decker502/heartbloom/pkg/config"
)

func desktopOpts() ViewportOptions {
	return ViewportOptionsFromConfig(config.DefaultBloomConfig(), false)
}

func TestRecomputeViewportDesktop(t *testing.T) {
	v := RecomputeViewport(1200, 800, 2, desktopOpts())

	if v.GroundY != 800*0.88 {
		t.Errorf("GroundY: got %v, want %v", v.GroundY, 800*0.88)
	}
	if v.CenterX != 600 {
		t.Errorf("CenterX: got %v, want 600", v.CenterX)
	}
	if v.LateralPanTarget != 300 {
		t.Errorf("LateralPanTarget: got %v, want 300", v.LateralPanTarget)
	}
	if v.IsMobile {
		t.Error("1200px wide viewport should not be mobile")
	}

	w, h := v.SurfaceSize()
	if w != 2400 || h != 1600 {
		t.Errorf("SurfaceSize: got %dx%d, want 2400x1600", w, h)
	}
}

func TestRecomputeViewportMobileVariants(t *testing.T) {
	tests := []struct {
		name        string
		opts        ViewportOptions
		width       float64
		wantMobile  bool
		wantPanning float64
	}{
		{
			name:        "narrow viewport does not pan",
			opts:        ViewportOptions{MobileBreakpoint: 768, PanFraction: 0.25},
			width:       400,
			wantMobile:  true,
			wantPanning: 0,
		},
		{
			name:        "narrow viewport pans when enabled",
			opts:        ViewportOptions{MobileBreakpoint: 768, PanFraction: 0.25, PanOnMobile: true},
			width:       400,
			wantMobile:  true,
			wantPanning: 100,
		},
		{
			name:        "breakpoint is exclusive",
			opts:        ViewportOptions{MobileBreakpoint: 768, PanFraction: 0.25},
			width:       768,
			wantMobile:  false,
			wantPanning: 192,
		},
		{
			name:        "forced mobile layout",
			opts:        ViewportOptions{MobileBreakpoint: 768, PanFraction: 0.25, ForceMobile: true},
			width:       1600,
			wantMobile:  true,
			wantPanning: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := RecomputeViewport(tt.width, 700, 1, tt.opts)
			if v.IsMobile != tt.wantMobile {
				t.Errorf("IsMobile: got %v, want %v", v.IsMobile, tt.wantMobile)
			}
			if v.LateralPanTarget != tt.wantPanning {
				t.Errorf("LateralPanTarget: got %v, want %v", v.LateralPanTarget, tt.wantPanning)
			}
		})
	}
}

func TestRecomputeViewportIsIdempotent(t *testing.T) {
	opts := desktopOpts()
	first := RecomputeViewport(1000, 600, 1.5, opts)
	for i := 0; i < 10; i++ {
		if again := RecomputeViewport(1000, 600, 1.5, opts); again != first {
			t.Fatalf("recompute #%d drifted: %+v vs %+v", i, again, first)
		}
	}
}

func TestRecomputeViewportInvalidScale(t *testing.T) {
	v := RecomputeViewport(800, 600, 0, desktopOpts())
	if v.DeviceScale != 1 {
		t.Errorf("DeviceScale: got %v, want 1", v.DeviceScale)
	}
}

func TestViewportDerivedPoints(t *testing.T) {
	v := RecomputeViewport(1000, 1000, 1, desktopOpts())

	x, y := v.HeartIdlePosition()
	if x != 500 || y != 400 {
		t.Errorf("HeartIdlePosition: got (%v, %v), want (500, 400)", x, y)
	}

	cx, cy := v.CanopyCenter()
	if cx != 500 || cy != 880-580 {
		t.Errorf("CanopyCenter: got (%v, %v), want (500, 300)", cx, cy)
	}
	if v.CanopyScale() != 25 {
		t.Errorf("CanopyScale: got %v, want 25", v.CanopyScale())
	}

	mobile := RecomputeViewport(400, 1000, 1, desktopOpts())
	if _, my := mobile.CanopyCenter(); my != 880-450 {
		t.Errorf("mobile CanopyCenter y: got %v, want 430", my)
	}
}

package systems

import (
	"math"
	"testing"

	"github.com/decker502/heartbloom/pkg/components"
	"github.com/decker502/heartbloom/pkg/ecs"
	"github.com/decker502/heartbloom/pkg/entities"
	"github.com/decker502/heartbloom/pkg/game"
)

func TestGrowTreeZeroGrowth(t *testing.T) {
	for _, g := range []float64{0, -0.5} {
		segs, tips := GrowTree(nil, nil, 0, 0, 100, -math.Pi/2, 10, 0, g)
		if len(segs) != 0 || len(tips) != 0 {
			t.Errorf("growth %v: expected nothing, got %d segments and %d tips", g, len(segs), len(tips))
		}
	}
}

func TestGrowTreeFullTrunkLength(t *testing.T) {
	segs, _ := GrowTree(nil, nil, 400, 500, 150, -math.Pi/2, 33, 0, 1)
	if len(segs) == 0 {
		t.Fatal("expected segments")
	}

	trunk := segs[0]
	if trunk.Generation != 0 {
		t.Fatalf("first segment should be the trunk, got generation %d", trunk.Generation)
	}
	if got := math.Hypot(trunk.X1-trunk.X0, trunk.Y1-trunk.Y0); math.Abs(got-150) > 1e-9 {
		t.Errorf("trunk length at full growth: got %v, want 150", got)
	}
	if trunk.Y1 >= trunk.Y0 {
		t.Error("trunk should grow upwards")
	}
	if trunk.Width != 33 {
		t.Errorf("trunk width: got %v, want 33", trunk.Width)
	}

	// 1 + 2 + 4 + 8 + 16
	if len(segs) != 31 {
		t.Errorf("full tree segment count: got %d, want 31", len(segs))
	}
}

func TestGrowTreeStaggeredGrowth(t *testing.T) {
	tests := []struct {
		name     string
		growth   float64
		wantSegs int
		wantLen  float64
	}{
		{"树干生长到一半", 0.5, 1, 50},
		{"刚过分叉阈值", 0.8, 3, 80},
		{"第二代开始分叉", 0.95, 7, 95},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			segs, tips := GrowTree(nil, nil, 0, 0, 100, -math.Pi/2, 10, 0, tt.growth)
			if len(segs) != tt.wantSegs {
				t.Errorf("segment count: got %d, want %d", len(segs), tt.wantSegs)
			}
			if got := math.Hypot(segs[0].X1, segs[0].Y1); math.Abs(got-tt.wantLen) > 1e-9 {
				t.Errorf("trunk length: got %v, want %v", got, tt.wantLen)
			}
			if len(tips) != 0 {
				t.Errorf("no tips expected before the last generation grows, got %d", len(tips))
			}
		})
	}
}

func TestGrowTreeChildrenShrink(t *testing.T) {
	segs, _ := GrowTree(nil, nil, 0, 0, 100, -math.Pi/2, 10, 0, 1)
	for _, s := range segs {
		if s.Generation == 1 {
			if math.Abs(s.Width-7) > 1e-9 {
				t.Errorf("first generation width: got %v, want 7", s.Width)
			}
			if got := math.Hypot(s.X1-s.X0, s.Y1-s.Y0); math.Abs(got-74) > 1e-6 {
				t.Errorf("first generation length: got %v, want 74", got)
			}
		}
	}
}

func TestGrowTreeTipsAreDeduplicated(t *testing.T) {
	segs, tips := GrowTree(nil, nil, 400, 500, 150, -math.Pi/2, 33, 0, 1)
	if len(tips) == 0 || len(tips) > 16 {
		t.Fatalf("expected 1..16 tips, got %d", len(tips))
	}

	for i := range tips {
		for j := i + 1; j < len(tips); j++ {
			if d := math.Hypot(tips[i].X-tips[j].X, tips[i].Y-tips[j].Y); d < 6 {
				t.Errorf("tips %d and %d only %.2f apart", i, j, d)
			}
		}
	}

	// 重复生成同一棵树不会增加树梢
	_, again := GrowTree(segs[:0], tips, 400, 500, 150, -math.Pi/2, 33, 0, 1)
	if len(again) != len(tips) {
		t.Errorf("regrowing added tips: %d -> %d", len(tips), len(again))
	}

	// 终点只差几个单位时同样视为重复
	_, nudged := GrowTree(nil, again, 402, 501, 150, -math.Pi/2, 33, 0, 1)
	if len(nudged) != len(tips) {
		t.Errorf("near-duplicate tips recorded: %d -> %d", len(tips), len(nudged))
	}
}

func TestTreeSystemUpdate(t *testing.T) {
	em := ecs.NewEntityManager()
	bs := game.NewBloomState()
	vp := game.RecomputeViewport(800, 600, 1, game.ViewportOptions{MobileBreakpoint: 768, PanFraction: 0.25})
	tree := entities.NewTreeEntity(em, 0, 0, 0, 0)
	ts := NewTreeSystem(em, bs, &vp, tree)

	// 待机/下落阶段不生成树
	bs.GrowthProgress = 50
	ts.Update()
	tc, _ := ecs.GetComponent[*components.TreeComponent](em, tree)
	if len(tc.Segments) != 0 {
		t.Fatalf("tree should not grow before landing, got %d segments", len(tc.Segments))
	}

	advanceStateTo(t, bs, game.StateGrowing)
	bs.GrowthProgress = 100
	ts.Update()

	if tc.RootX != 400 || tc.RootY != vp.GroundY {
		t.Errorf("tree root: got (%v, %v), want (400, %v)", tc.RootX, tc.RootY, vp.GroundY)
	}
	if len(tc.Segments) != 31 {
		t.Errorf("segments: got %d, want 31", len(tc.Segments))
	}
	tips := len(tc.Tips)
	if tips == 0 {
		t.Fatal("full tree should record tips")
	}

	// 每帧重建树枝而不是累加
	ts.Update()
	if len(tc.Segments) != 31 || len(tc.Tips) != tips {
		t.Errorf("second update changed counts: %d segments, %d tips", len(tc.Segments), len(tc.Tips))
	}
}

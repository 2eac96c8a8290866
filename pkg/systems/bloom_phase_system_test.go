package systems

import (
	"testing"

	"github.com/decker502/heartbloom/pkg/game"
)

func TestBloomPhaseSystemGrowing(t *testing.T) {
	bs := game.NewBloomState()
	advanceStateTo(t, bs, game.StateGrowing)
	ps := NewBloomPhaseSystem(bs, 600)

	ticks := 0
	for bs.Current() == game.StateGrowing {
		ps.Update()
		ticks++
		if ticks > 1000 {
			t.Fatal("growing never finished")
		}
	}

	if ticks != 167 {
		t.Errorf("growing ticks: got %d, want 167", ticks)
	}
	if bs.Current() != game.StateBlooming {
		t.Errorf("expected blooming, got %s", bs.Current())
	}
	if bs.GrowthProgress != 100 {
		t.Errorf("growth progress should settle at 100, got %v", bs.GrowthProgress)
	}
	if bs.BloomTicks != 0 {
		t.Errorf("bloom counter should not start on the transition tick, got %d", bs.BloomTicks)
	}
}

func TestBloomPhaseSystemBlooming(t *testing.T) {
	tests := []struct {
		name        string
		ticksToWind int
		wantTicks   int
	}{
		{"default duration", 600, 601},
		{"short bloom", 10, 11},
		{"immediate wind", 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bs := game.NewBloomState()
			advanceStateTo(t, bs, game.StateBlooming)
			ps := NewBloomPhaseSystem(bs, tt.ticksToWind)

			ticks := 0
			for bs.Current() == game.StateBlooming {
				ps.Update()
				ticks++
			}
			if ticks != tt.wantTicks {
				t.Errorf("blooming ticks: got %d, want %d", ticks, tt.wantTicks)
			}

			// 起风后计数不再变化
			before := bs.BloomTicks
			ps.Update()
			if bs.BloomTicks != before || bs.Current() != game.StateWindy {
				t.Error("windy must be terminal and stop the bloom counter")
			}
		})
	}
}

func TestBloomPhaseSystemIgnoresEarlyStates(t *testing.T) {
	bs := game.NewBloomState()
	ps := NewBloomPhaseSystem(bs, 600)

	ps.Update()
	advanceStateTo(t, bs, game.StateFalling)
	ps.Update()

	if bs.GrowthProgress != 0 || bs.BloomTicks != 0 || bs.Current() != game.StateFalling {
		t.Errorf("phase system changed state before landing: %+v", bs)
	}
}

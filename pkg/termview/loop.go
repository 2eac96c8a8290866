package termview

import (
	"context"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/decker502/heartbloom/pkg/systems"
)

// DefaultFrameInterval 约 60 帧/秒，与桌面端的 tick 频率一致
const DefaultFrameInterval = time.Second / 60

type action int

const (
	actionNone action = iota
	actionStart
	actionResize
	actionQuit
)

// classify 把终端事件映射为动画关心的动作
func classify(ev tcell.Event) action {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return actionQuit
		case tcell.KeyEnter:
			return actionStart
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q', 'Q':
				return actionQuit
			case ' ':
				return actionStart
			}
		}
	case *tcell.EventMouse:
		if ev.Buttons()&tcell.Button1 != 0 {
			return actionStart
		}
	case *tcell.EventResize:
		return actionResize
	}
	return actionNone
}

// Run 驱动终端动画，直到 ctx 结束或用户退出
//
// 事件在单独的 goroutine 中读取，通过通道交给主循环；
// 模拟只在主循环中被访问，点击和缩放总是在两帧之间生效。
func Run(ctx context.Context, screen tcell.Screen, sim *systems.Simulation, r *Renderer, interval time.Duration) error {
	if interval <= 0 {
		interval = DefaultFrameInterval
	}

	events := make(chan tcell.Event, 16)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev := <-events:
			switch classify(ev) {
			case actionQuit:
				log.Printf("[Terminal] Quit requested")
				return nil
			case actionStart:
				if sim.Start() {
					log.Printf("[Terminal] Start signal received")
				}
			case actionResize:
				screen.Sync()
				cols, rows := screen.Size()
				w, h := LogicalSize(cols, rows)
				sim.Resize(w, h, 1)
			}

		case now := <-ticker.C:
			sim.Tick()
			r.Draw(now)
			screen.Show()
		}
	}
}

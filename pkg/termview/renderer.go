// Package termview 把动画绘制到终端
//
// 每个字符格对应一块 CellWidth×CellHeight 的逻辑像素区域，
// 模拟本身与桌面端完全相同，只是用字符格近似矢量图形。
package termview

import (
	"fmt"
	"image/color"
	"math"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/decker502/heartbloom/pkg/components"
	"github.com/decker502/heartbloom/pkg/game"
	"github.com/decker502/heartbloom/pkg/systems"
	"github.com/decker502/heartbloom/pkg/utils"
)

// 字符格的逻辑尺寸（终端字符大约是 1:2 的竖长方形）
const (
	CellWidth  = 8.0
	CellHeight = 16.0
)

// 各种图形使用的字符
const (
	runeHeart        = '♥'
	runeFlyingPetal  = '•'
	treeSamplesPerPx = 0.5
)

type palette struct {
	background color.RGBA
	trunk      color.RGBA
	ground     color.RGBA
	heart      color.RGBA
	prompt     color.RGBA
	message    color.RGBA
}

// Renderer 终端渲染器
// 实现 game.TimerDisplay，计时器文字显示在祝福文字下方
type Renderer struct {
	screen  tcell.Screen
	sim     *systems.Simulation
	palette palette
	timer   *game.TimerReporter

	prompt    string
	lines     []string
	labels    []string
	timerText string

	// bg 当前帧每个字符格的背景色，用于花瓣的透明度混合
	bg     []color.RGBA
	cols   int
	rows   int
	shiftX float64
}

// NewRenderer 创建终端渲染器
func NewRenderer(screen tcell.Screen, sim *systems.Simulation) (*Renderer, error) {
	if screen == nil || sim == nil {
		return nil, fmt.Errorf("terminal renderer requires a screen and a simulation")
	}
	cfg := sim.Config()

	var p palette
	for _, t := range []struct {
		hex string
		dst *color.RGBA
	}{
		{cfg.Palette.Background, &p.background},
		{cfg.Palette.Trunk, &p.trunk},
		{cfg.Palette.Ground, &p.ground},
		{cfg.Palette.Heart, &p.heart},
		{cfg.Palette.Prompt, &p.prompt},
		{cfg.Palette.Message, &p.message},
	} {
		c, err := utils.ParseHexColor(t.hex)
		if err != nil {
			return nil, err
		}
		*t.dst = c
	}

	r := &Renderer{
		screen:  screen,
		sim:     sim,
		palette: p,
		prompt:  cfg.Prompt,
		lines:   cfg.Message,
		labels:  cfg.Timer.Labels,
	}

	epoch, err := cfg.EpochTime()
	if err != nil {
		return nil, err
	}
	r.timer, err = game.NewTimerReporter(epoch, cfg.Timer.SkipWhenHidden, r)
	if err != nil {
		return nil, err
	}
	return r, nil
}

// LogicalSize 把终端尺寸换算为逻辑像素
func LogicalSize(cols, rows int) (float64, float64) {
	return float64(cols) * CellWidth, float64(rows) * CellHeight
}

// SetElapsed 实现 game.TimerDisplay
func (r *Renderer) SetElapsed(parts game.ElapsedParts) {
	r.timerText = parts.Format(r.labels)
}

// MessageVisible 实现 game.TimerDisplay
func (r *Renderer) MessageVisible() bool {
	return r.sim.MessageOpacity() > 0
}

// Draw 绘制当前帧（不调用 Show）
func (r *Renderer) Draw(now time.Time) {
	r.cols, r.rows = r.screen.Size()
	if cap(r.bg) < r.cols*r.rows {
		r.bg = make([]color.RGBA, r.cols*r.rows)
	}
	r.bg = r.bg[:r.cols*r.rows]
	for i := range r.bg {
		r.bg[i] = r.palette.background
	}

	r.screen.Clear()
	r.fillBackground()

	vp := r.sim.Viewport()
	r.shiftX = 0
	if r.sim.ShowsGround() {
		r.drawGround(vp)
	}

	r.shiftX = r.sim.CameraShift()
	if x, y, _, visible := r.sim.Heart(); visible {
		r.drawHeart(x, y)
		if r.sim.State() == game.StateIdle {
			r.drawText(x+30, y, r.prompt, r.palette.prompt, 1)
		}
	} else {
		r.drawTree()
		r.drawPetals()
	}

	r.shiftX = 0
	r.timer.Report(now)
	r.drawMessage(vp)
}

func toColor(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// cell 逻辑坐标 → 字符格（计入镜头平移），越界时 ok 为 false
func (r *Renderer) cell(x, y float64) (col, row int, ok bool) {
	col = int(math.Floor((x + r.shiftX) / CellWidth))
	row = int(math.Floor(y / CellHeight))
	return col, row, col >= 0 && row >= 0 && col < r.cols && row < r.rows
}

func (r *Renderer) fillBackground() {
	st := tcell.StyleDefault.Background(toColor(r.palette.background))
	for row := 0; row < r.rows; row++ {
		for col := 0; col < r.cols; col++ {
			r.screen.SetContent(col, row, ' ', nil, st)
		}
	}
}

// paint 把字符格背景设为 c（按 alpha 与原背景混合）
func (r *Renderer) paint(col, row int, c color.RGBA, alpha float64) {
	i := row*r.cols + col
	blended := utils.BlendOver(c, r.bg[i], alpha)
	r.bg[i] = blended
	r.screen.SetContent(col, row, ' ', nil, tcell.StyleDefault.Background(toColor(blended)))
}

// glyph 在字符格上画一个前景字符，背景保持不变
func (r *Renderer) glyph(col, row int, ch rune, c color.RGBA, alpha float64) {
	i := row*r.cols + col
	fg := utils.BlendOver(c, r.bg[i], alpha)
	st := tcell.StyleDefault.Foreground(toColor(fg)).Background(toColor(r.bg[i]))
	r.screen.SetContent(col, row, ch, nil, st)
}

func (r *Renderer) drawGround(vp game.ViewportState) {
	_, row, _ := r.cell(0, vp.GroundY)
	if row < 0 || row >= r.rows {
		return
	}
	for col := 0; col < r.cols; col++ {
		r.glyph(col, row, '─', r.palette.ground, 1)
	}
}

func (r *Renderer) drawHeart(x, y float64) {
	if col, row, ok := r.cell(x, y); ok {
		r.glyph(col, row, runeHeart, r.palette.heart, 1)
	}
}

// drawTree 沿二次贝塞尔曲线采样，按线宽填充字符格
func (r *Renderer) drawTree() {
	for _, seg := range r.sim.TreeSegments() {
		length := math.Hypot(seg.X1-seg.X0, seg.Y1-seg.Y0)
		steps := int(math.Max(2, length*treeSamplesPerPx))
		half := int(math.Round(seg.Width / 2 / CellWidth))

		for i := 0; i <= steps; i++ {
			t := float64(i) / float64(steps)
			u := 1 - t
			x := u*u*seg.X0 + 2*u*t*seg.CX + t*t*seg.X1
			y := u*u*seg.Y0 + 2*u*t*seg.CY + t*t*seg.Y1

			col, row, _ := r.cell(x, y)
			for c := col - half; c <= col+half; c++ {
				if c >= 0 && c < r.cols && row >= 0 && row < r.rows {
					r.paint(c, row, r.palette.trunk, 1)
				}
			}
		}
	}
}

// drawPetals 停留花瓣填充字符格背景，飘散花瓣画成前景字符
func (r *Renderer) drawPetals() {
	r.sim.EachPetal(components.PetalLayerFlying, func(p *components.PetalComponent, pos *components.PositionComponent) {
		if col, row, ok := r.cell(pos.X, pos.Y); ok && p.Alpha > 0 {
			r.glyph(col, row, runeFlyingPetal, p.Color, p.Alpha)
		}
	})
	for _, layer := range []components.PetalLayer{components.PetalLayerBack, components.PetalLayerFront} {
		r.sim.EachPetal(layer, func(p *components.PetalComponent, pos *components.PositionComponent) {
			if col, row, ok := r.cell(pos.X, pos.Y); ok && p.Alpha > 0 {
				r.paint(col, row, p.Color, p.Alpha)
			}
		})
	}
}

// drawText 从逻辑坐标 (x, y) 开始写一行文字
func (r *Renderer) drawText(x, y float64, s string, c color.RGBA, alpha float64) {
	col, row, _ := r.cell(x, y)
	if row < 0 || row >= r.rows {
		return
	}
	for _, ch := range s {
		if col >= r.cols {
			return
		}
		if col >= 0 {
			r.glyph(col, row, ch, c, alpha)
		}
		col++
	}
}

// drawMessage 祝福文字和计时器，桌面布局在左侧，移动布局居中在顶部
func (r *Renderer) drawMessage(vp game.ViewportState) {
	opacity := r.sim.MessageOpacity()
	if opacity <= 0 {
		return
	}

	lines := append([]string(nil), r.lines...)
	if r.timerText != "" {
		lines = append(lines, "", r.timerText)
	}

	y := vp.LogicalHeight * 0.3
	if vp.IsMobile {
		y = vp.LogicalHeight * 0.06
	}
	for i, line := range lines {
		x := vp.LogicalWidth * 0.08
		if vp.IsMobile {
			x = vp.LogicalWidth/2 - float64(len([]rune(line)))*CellWidth/2
		}
		r.drawText(x, y+float64(i)*CellHeight, strings.TrimRight(line, " "), r.palette.message, opacity)
	}
}

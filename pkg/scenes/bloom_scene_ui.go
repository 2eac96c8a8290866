package scenes

import (
	"bytes"
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/decker502/heartbloom/pkg/config"
	"github.com/decker502/heartbloom/pkg/game"
)

// 文字尺寸（逻辑像素）
const (
	promptFontSize  = 18.0
	messageFontSize = 22.0
	timerFontSize   = 18.0
	messageLineGap  = 1.5
)

// messageOverlay 提示文字、祝福文字和计时器
// 实现 game.TimerDisplay
type messageOverlay struct {
	prompt string
	lines  string
	labels []string

	regular *text.GoTextFaceSource
	italic  *text.GoTextFaceSource

	opacity   float64
	elapsed   game.ElapsedParts
	timerText string
	showTimer bool
}

func newMessageOverlay(cfg *config.BloomConfig) (*messageOverlay, error) {
	regular, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to load regular font: %w", err)
	}
	italic, err := text.NewGoTextFaceSource(bytes.NewReader(goitalic.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to load italic font: %w", err)
	}

	return &messageOverlay{
		prompt:    cfg.Prompt,
		lines:     strings.Join(cfg.Message, "\n"),
		labels:    cfg.Timer.Labels,
		regular:   regular,
		italic:    italic,
		showTimer: true,
	}, nil
}

// SetElapsed 实现 game.TimerDisplay
func (o *messageOverlay) SetElapsed(parts game.ElapsedParts) {
	o.elapsed = parts
	o.timerText = parts.Format(o.labels)
}

// MessageVisible 实现 game.TimerDisplay：祝福文字开始淡入后才可见
func (o *messageOverlay) MessageVisible() bool {
	return o.opacity > 0
}

func (o *messageOverlay) setOpacity(v float64) {
	o.opacity = v
}

// drawPrompt 待机提示，(x, y) 为逻辑坐标中的基线起点
func (o *messageOverlay) drawPrompt(screen *ebiten.Image, geo *ebiten.GeoM, scale, x, y float64, clr color.RGBA) {
	face := &text.GoTextFace{Source: o.italic, Size: promptFontSize * scale}
	px, py := geo.Apply(x, y)

	op := &text.DrawOptions{}
	op.GeoM.Translate(px, py-face.Metrics().HAscent)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, o.prompt, face, op)
}

// drawMessage 祝福文字和计时器，不透明度跟随镜头平移进度
//
// 桌面端位于树平移后留出的左侧空白；移动端不平移，居中显示在顶部。
func (o *messageOverlay) drawMessage(screen *ebiten.Image, vp game.ViewportState, clr color.RGBA) {
	if o.opacity <= 0 {
		return
	}

	x, y := vp.LogicalWidth*0.08, vp.LogicalHeight*0.3
	align := text.AlignStart
	if vp.IsMobile {
		x, y = vp.LogicalWidth/2, vp.LogicalHeight*0.06
		align = text.AlignCenter
	}

	scale := vp.DeviceScale
	body := &text.GoTextFace{Source: o.regular, Size: messageFontSize * scale}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x*scale, y*scale)
	op.ColorScale.ScaleWithColor(clr)
	op.ColorScale.ScaleAlpha(float32(o.opacity))
	op.LineSpacing = messageFontSize * messageLineGap * scale
	op.PrimaryAlign = align
	text.Draw(screen, o.lines, body, op)

	if !o.showTimer || o.timerText == "" {
		return
	}
	_, bodyHeight := text.Measure(o.lines, body, op.LineSpacing)

	timer := &text.GoTextFace{Source: o.regular, Size: timerFontSize * scale}
	top := &text.DrawOptions{}
	top.GeoM.Translate(x*scale, y*scale+bodyHeight+messageFontSize*0.5*scale)
	top.ColorScale.ScaleWithColor(clr)
	top.ColorScale.ScaleAlpha(float32(o.opacity))
	top.PrimaryAlign = align
	text.Draw(screen, o.timerText, timer, top)
}

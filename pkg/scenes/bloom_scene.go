package scenes

import (
	"fmt"
	"image/color"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/heartbloom/pkg/config"
	"github.com/decker502/heartbloom/pkg/game"
	"github.com/decker502/heartbloom/pkg/systems"
	"github.com/decker502/heartbloom/pkg/utils"
)

// scenePalette 绘制用的颜色（已解析）
type scenePalette struct {
	background color.RGBA
	trunk      color.RGBA
	ground     color.RGBA
	heart      color.RGBA
	prompt     color.RGBA
	message    color.RGBA
}

func newScenePalette(cfg config.PaletteConfig) (scenePalette, error) {
	var p scenePalette
	targets := []struct {
		key string
		hex string
		dst *color.RGBA
	}{
		{"background", cfg.Background, &p.background},
		{"trunk", cfg.Trunk, &p.trunk},
		{"ground", cfg.Ground, &p.ground},
		{"heart", cfg.Heart, &p.heart},
		{"prompt", cfg.Prompt, &p.prompt},
		{"message", cfg.Message, &p.message},
	}
	for _, t := range targets {
		c, err := utils.ParseHexColor(t.hex)
		if err != nil {
			return scenePalette{}, fmt.Errorf("palette.%s: %w", t.key, err)
		}
		*t.dst = c
	}
	return p, nil
}

// BloomScene 把模拟绘制到 Ebitengine 屏幕上
//
// 每帧顺序：读取输入 → 推进模拟 → 更新计时器；Draw 只读取模拟状态。
type BloomScene struct {
	sim     *systems.Simulation
	palette scenePalette
	overlay *messageOverlay
	timer   *game.TimerReporter

	// now 返回当前时间，测试中可替换
	now func() time.Time

	// geo 逻辑坐标 → 物理像素，每帧重置后重新构建，缩放不会累积
	geo ebiten.GeoM
}

// NewBloomScene 创建场景
//
// 参数:
//   - sim: 动画模拟
//
// 返回:
//   - *BloomScene: 场景
//   - error: 颜色、字体或计时起点无效时返回错误
func NewBloomScene(sim *systems.Simulation) (*BloomScene, error) {
	if sim == nil {
		return nil, fmt.Errorf("bloom scene requires a simulation")
	}
	cfg := sim.Config()

	palette, err := newScenePalette(cfg.Palette)
	if err != nil {
		return nil, err
	}

	overlay, err := newMessageOverlay(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create message overlay: %w", err)
	}

	epoch, err := cfg.EpochTime()
	if err != nil {
		return nil, err
	}
	timer, err := game.NewTimerReporter(epoch, cfg.Timer.SkipWhenHidden, overlay)
	if err != nil {
		return nil, err
	}

	log.Printf("[BloomScene] Created (epoch %s)", epoch.Format(config.EpochLayout))
	return &BloomScene{
		sim:     sim,
		palette: palette,
		overlay: overlay,
		timer:   timer,
		now:     time.Now,
	}, nil
}

// Update 处理输入并推进一帧
func (s *BloomScene) Update() {
	if pointerJustPressed() && s.sim.Start() {
		log.Printf("[BloomScene] Start signal received")
	}

	s.sim.Tick()
	s.overlay.setOpacity(s.sim.MessageOpacity())
	s.timer.Report(s.now())
}

// Resize 窗口尺寸或设备像素比变化
func (s *BloomScene) Resize(width, height, deviceScale float64) {
	s.sim.Resize(width, height, deviceScale)
}

// SetTimerVisible 是否在祝福文字下方显示计时器
func (s *BloomScene) SetTimerVisible(visible bool) {
	s.overlay.showTimer = visible
}

// TimerVisible 返回计时器是否显示
func (s *BloomScene) TimerVisible() bool {
	return s.overlay.showTimer
}

// Simulation 返回场景持有的模拟
func (s *BloomScene) Simulation() *systems.Simulation {
	return s.sim
}

// Draw 绘制一帧
func (s *BloomScene) Draw(screen *ebiten.Image) {
	vp := s.sim.Viewport()
	screen.Fill(s.palette.background)

	// 地面线不随镜头平移
	s.resetTransform(vp, 0)
	if s.sim.ShowsGround() {
		s.drawGround(screen, vp)
	}

	s.resetTransform(vp, s.sim.CameraShift())
	if x, y, size, visible := s.sim.Heart(); visible {
		s.drawHeart(screen, x, y, size)
		if s.sim.State() == game.StateIdle {
			s.overlay.drawPrompt(screen, &s.geo, vp.DeviceScale, x+30, y, s.palette.prompt)
		}
	} else {
		s.drawTree(screen, vp)
		s.drawPetals(screen)
	}

	// 文字层不参与平移
	s.resetTransform(vp, 0)
	s.overlay.drawMessage(screen, vp, s.palette.message)
}

// resetTransform 重建逻辑坐标到物理像素的变换：先平移，再按设备像素比缩放
func (s *BloomScene) resetTransform(vp game.ViewportState, shiftX float64) {
	s.geo.Reset()
	s.geo.Translate(shiftX, 0)
	s.geo.Scale(vp.DeviceScale, vp.DeviceScale)
}

// Package app 提供动画应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"io"
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/decker502/heartbloom/pkg/config"
	"github.com/decker502/heartbloom/pkg/embedded"
	"github.com/decker502/heartbloom/pkg/game"
	"github.com/decker502/heartbloom/pkg/scenes"
	"github.com/decker502/heartbloom/pkg/systems"
	"github.com/decker502/heartbloom/pkg/utils"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 动画配置文件路径，为空则使用嵌入的 data/bloom.yaml
	ConfigPath string
	// ForceMobile 无视窗口宽度使用移动端布局
	ForceMobile bool
	// Seed 随机种子，0 表示使用当前时间
	Seed int64
}

// App 是动画应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	scene    *scenes.BloomScene
	settings *game.SettingsManager

	// 视口选项，Layout 用它推算绘图表面尺寸
	viewportOpts game.ViewportOptions

	// 最近一次应用到模拟的尺寸
	width, height, scale float64

	// Layout 中记录、下一次 Update 开始时应用的尺寸
	pendingResize                    bool
	pendingW, pendingH, pendingScale float64
	pendingWindowSizeReset           bool // 延迟设置窗口大小标志
	windowSizeResetCountdown         int  // 延迟帧数
}

// LoadConfig 加载动画配置
// path 为空时读取嵌入的默认配置
func LoadConfig(path string) (*config.BloomConfig, error) {
	if path != "" {
		return config.LoadBloomConfig(path)
	}

	data, err := embedded.ReadFile(embedded.DefaultConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded config: %w", err)
	}
	return config.ParseBloomConfig(data)
}

// NewApp 创建并初始化应用
//
// 使用嵌入配置时，调用此函数前必须先调用 embedded.Init()。
// settings 可以由 nil gdata 创建（不持久化）。
func NewApp(cfg Config, settings *game.SettingsManager) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	if settings == nil {
		settings = game.NewSettingsManager(nil)
	}

	bloomConfig, err := LoadConfig(cfg.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("动画配置加载失败: %w", err)
	}
	log.Printf("[Config] Loaded bloom config (epoch %s, %d leaf colors)", bloomConfig.Epoch, len(bloomConfig.Palette.Leaves))

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	display := settings.GetSettings()
	width, height := float64(display.WindowWidth), float64(display.WindowHeight)

	viewportOpts := game.ViewportOptionsFromConfig(bloomConfig, cfg.ForceMobile || utils.IsMobile())
	sim, err := systems.NewSimulation(bloomConfig, viewportOpts, width, height, 1, rand.New(rand.NewSource(seed)))
	if err != nil {
		return nil, fmt.Errorf("模拟初始化失败: %w", err)
	}

	scene, err := scenes.NewBloomScene(sim)
	if err != nil {
		return nil, fmt.Errorf("场景初始化失败: %w", err)
	}

	scene.SetTimerVisible(display.ShowTimer)

	log.Printf("[App] Started with seed %d", seed)
	return &App{
		scene:        scene,
		settings:     settings,
		viewportOpts: viewportOpts,
		width:        width,
		height:       height,
		scale:        1,
	}, nil
}

// Update 更新动画逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	if a.pendingResize {
		a.applyResize()
	}

	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			s := a.settings.GetSettings()
			ebiten.SetWindowSize(s.WindowWidth, s.WindowHeight)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", s.WindowWidth, s.WindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		a.toggleFullscreen()
	}

	// T 切换计时器显示
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		a.toggleTimer()
	}

	a.scene.Update()
	return nil
}

func (a *App) toggleFullscreen() {
	fullscreen := !ebiten.IsFullscreen()
	ebiten.SetFullscreen(fullscreen)
	if !fullscreen {
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
		log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
	}

	a.settings.SetFullscreen(fullscreen)
	if err := a.settings.Save(); err != nil {
		log.Printf("[App] Warning: failed to save settings: %v", err)
	}
}

func (a *App) toggleTimer() {
	visible := !a.scene.TimerVisible()
	a.scene.SetTimerVisible(visible)
	a.settings.SetShowTimer(visible)
	if err := a.settings.Save(); err != nil {
		log.Printf("[App] Warning: failed to save settings: %v", err)
	}
}

func (a *App) applyResize() {
	a.pendingResize = false
	a.width, a.height, a.scale = a.pendingW, a.pendingH, a.pendingScale
	a.scene.Resize(a.width, a.height, a.scale)

	if !ebiten.IsFullscreen() {
		a.settings.SetWindowSize(int(a.width), int(a.height))
	}
}

// Draw 绘制画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.scene.Draw(screen)
}

// Layout 返回绘图表面的物理像素尺寸
//
// 逻辑坐标等于窗口点，绘图表面按设备像素比放大。尺寸变化在下一次 Update 开始时应用。
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	scale := 1.0
	if m := ebiten.Monitor(); m != nil {
		scale = m.DeviceScaleFactor()
	}
	w, h := float64(outsideWidth), float64(outsideHeight)
	a.recordLayout(w, h, scale)
	return a.surfaceSize(w, h, scale)
}

// surfaceSize 按给定窗口尺寸重新计算视口，返回对应的物理像素尺寸
func (a *App) surfaceSize(width, height, scale float64) (int, int) {
	return game.RecomputeViewport(width, height, scale, a.viewportOpts).SurfaceSize()
}

// recordLayout 尺寸与当前不同时记录待应用的缩放
func (a *App) recordLayout(width, height, scale float64) {
	if width <= 0 || height <= 0 {
		return
	}
	if width == a.width && height == a.height && scale == a.scale && !a.pendingResize {
		return
	}
	a.pendingResize = true
	a.pendingW, a.pendingH, a.pendingScale = width, height, scale
}

// Shutdown 保存设置
func (a *App) Shutdown() {
	if err := a.settings.Save(); err != nil {
		log.Printf("[App] Warning: failed to save settings: %v", err)
	}
}

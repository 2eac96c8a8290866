package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata/v2"

	"github.com/decker502/heartbloom/pkg/app"
	"github.com/decker502/heartbloom/pkg/embedded"
	"github.com/decker502/heartbloom/pkg/game"
)

func main() {
	configPath := flag.String("config", "", "动画配置文件路径（默认使用内置的 data/bloom.yaml）")
	verbose := flag.Bool("verbose", false, "启用详细日志")
	fullscreen := flag.Bool("fullscreen", false, "全屏启动")
	mobile := flag.Bool("mobile", false, "强制使用移动端布局")
	seed := flag.Int64("seed", 0, "随机种子（0 表示使用当前时间）")
	flag.Parse()

	// 初始化嵌入资源
	embedded.Init(dataFS)

	gdataManager, err := gdata.Open(gdata.Config{AppName: "heartbloom"})
	if err != nil {
		// 设置无法持久化时仍然可以运行
		log.Printf("[Main] Warning: gdata unavailable: %v", err)
		gdataManager = nil
	}
	settings := game.NewSettingsManager(gdataManager)

	bloomApp, err := app.NewApp(app.Config{
		Verbose:     *verbose,
		ConfigPath:  *configPath,
		ForceMobile: *mobile,
		Seed:        *seed,
	}, settings)
	if err != nil {
		fmt.Fprintf(os.Stderr, "初始化失败: %v\n", err)
		os.Exit(1)
	}

	display := settings.GetSettings()
	ebiten.SetWindowSize(display.WindowWidth, display.WindowHeight)
	ebiten.SetWindowTitle("Heartbloom")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(*fullscreen || display.Fullscreen)

	err = ebiten.RunGame(bloomApp)
	bloomApp.Shutdown()
	if err != nil {
		log.Fatal(err)
	}
}

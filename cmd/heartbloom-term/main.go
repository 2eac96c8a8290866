// heartbloom-term 在终端里播放同一段动画
//
// 用法:
//
//	go run ./cmd/heartbloom-term [--config data/bloom.yaml] [--log bloom.log]
//
// 操作: 回车/空格/鼠标左键开始，q 或 Esc 退出。
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/decker502/heartbloom/pkg/config"
	"github.com/decker502/heartbloom/pkg/game"
	"github.com/decker502/heartbloom/pkg/systems"
	"github.com/decker502/heartbloom/pkg/termview"
)

func main() {
	configPath := flag.String("config", "", "动画配置文件路径（默认使用内置配置）")
	logPath := flag.String("log", "", "日志文件路径（终端模式下日志不输出到屏幕）")
	mobile := flag.Bool("mobile", false, "强制使用移动端布局")
	seed := flag.Int64("seed", 0, "随机种子（0 表示使用当前时间）")
	flag.Parse()

	if err := run(*configPath, *logPath, *mobile, *seed); err != nil {
		fmt.Fprintf(os.Stderr, "heartbloom-term: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath, logPath string, forceMobile bool, seed int64) error {
	log.SetOutput(io.Discard)
	if logPath != "" {
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	cfg := config.DefaultBloomConfig()
	if configPath != "" {
		loaded, err := config.LoadBloomConfig(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Printf("[Terminal] Random seed: %d", seed)

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to init screen: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()

	w, h := termview.LogicalSize(screen.Size())
	sim, err := systems.NewSimulation(cfg, game.ViewportOptionsFromConfig(cfg, forceMobile), w, h, 1, rand.New(rand.NewSource(seed)))
	if err != nil {
		return err
	}
	renderer, err := termview.NewRenderer(screen, sim)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = termview.Run(ctx, screen, sim, renderer, termview.DefaultFrameInterval)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

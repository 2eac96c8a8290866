//go:build mobile

// Package mobile 提供 ebitenmobile 绑定入口
//
// 此包用于构建 Android (.aar) 和 iOS (.xcframework) 包。
// 使用 ebitenmobile 工具构建时会自动调用 init() 函数。
//
// 此文件仅在使用 -tags mobile 构建时编译：
//
//	# Android
//	ebitenmobile bind -target android -tags mobile -androidapi 23 -javapkg com.decker.heartbloom -o build/android/heartbloom.aar -v ./mobile
//
//	# iOS (仅 macOS)
//	ebitenmobile bind -target ios -tags mobile -o build/ios/Heartbloom.xcframework -v ./mobile
package mobile

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/mobile"
	"github.com/quasilyte/gdata/v2"

	"github.com/decker502/heartbloom/pkg/app"
	"github.com/decker502/heartbloom/pkg/embedded"
	"github.com/decker502/heartbloom/pkg/game"
)

func init() {
	// dataFS 在 embed.go 中声明
	embedded.Init(dataFS)

	gdataManager, err := gdata.Open(gdata.Config{AppName: "heartbloom"})
	if err != nil {
		log.Printf("[Mobile] Warning: gdata unavailable: %v", err)
		gdataManager = nil
	}

	gameApp, err := app.NewApp(app.Config{Verbose: true}, game.NewSettingsManager(gdataManager))
	if err != nil {
		log.Fatalf("初始化失败: %v", err)
	}

	// 注册到 ebitenmobile
	mobile.SetGame(gameApp)
}

// Dummy 是一个空导出函数，确保包被 ebitenmobile 正确识别
func Dummy() {}

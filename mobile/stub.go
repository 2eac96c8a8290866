//go:build !mobile

// Package mobile 是 ebitenmobile bind 的入口
//
// 只有 -tags mobile 时 mobile.go 和 embed.go 才参与编译；
// 桌面端构建看到的是这个空包，`go build ./...` 和 `go vet ./...` 不会因为包为空而失败。
package mobile

// Dummy 桌面端占位导出
func Dummy() {}

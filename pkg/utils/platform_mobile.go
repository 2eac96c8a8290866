//go:build mobile

package utils

// IsMobile 移动端构建（ebitenmobile bind）总是使用移动端布局
func IsMobile() bool {
	return true
}

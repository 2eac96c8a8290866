package utils

import (
	"fmt"
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// ParseHexColor 解析 "#rrggbb" 形式的颜色
func ParseHexColor(hex string) (color.RGBA, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", hex, err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
}

// BlendOver 把前景色按 alpha 叠加到背景色上（在线性 RGB 空间混合）
// 用于不支持透明度的终端渲染
func BlendOver(fg, bg color.RGBA, alpha float64) color.RGBA {
	alpha = Clamp01(alpha)
	if alpha >= 1 {
		return opaque(fg)
	}
	f, _ := colorful.MakeColor(opaque(fg))
	b, _ := colorful.MakeColor(opaque(bg))
	r, g, bl := b.BlendLinearRgb(f, alpha).Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: bl, A: 0xff}
}

func opaque(c color.RGBA) color.RGBA {
	c.A = 0xff
	return c
}

package utils

import (
	"math"
	"testing"
)

// TestEaseOutCubic 测试三次方缓出函数
func TestEaseOutCubic(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{"起点", 0.0, 0.0},
		{"终点", 1.0, 1.0},
		{"中点", 0.5, 0.875}, // 1 - (1-0.5)^3 = 1 - 0.125 = 0.875
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := EaseOutCubic(tt.input)
			if math.Abs(result-tt.expected) > 0.001 {
				t.Errorf("EaseOutCubic(%v) = %v, 期望 %v", tt.input, result, tt.expected)
			}
		})
	}

	// 验证"开始快，结束慢"的特性
	t.Run("开始快于线性", func(t *testing.T) {
		for p := 0.1; p < 0.5; p += 0.1 {
			if eased := EaseOutCubic(p); eased <= p {
				t.Errorf("EaseOutCubic(%v) = %v 应该大于线性值 %v（开始快）", p, eased, p)
			}
		}
	})
}

// TestEaseOutCubicClampsProgress 越界进度按端点处理
func TestEaseOutCubicClampsProgress(t *testing.T) {
	if got := EaseOutCubic(-0.2); got != 0 {
		t.Errorf("EaseOutCubic(-0.2) = %v, 期望 0", got)
	}
	if got := EaseOutCubic(1.3); got != 1 {
		t.Errorf("EaseOutCubic(1.3) = %v, 期望 1", got)
	}
}

// TestLerp 测试线性插值
func TestLerp(t *testing.T) {
	if got := Lerp(10, 20, 0); got != 10 {
		t.Errorf("Lerp(10, 20, 0) = %v, 期望 10", got)
	}
	if got := Lerp(10, 20, 1); got != 20 {
		t.Errorf("Lerp(10, 20, 1) = %v, 期望 20", got)
	}
	if got := Lerp(10, 20, 0.5); got != 15 {
		t.Errorf("Lerp(10, 20, 0.5) = %v, 期望 15", got)
	}
}

func TestClamp01(t *testing.T) {
	for _, tt := range []struct{ in, want float64 }{{-0.5, 0}, {0.3, 0.3}, {1.7, 1}} {
		if got := Clamp01(tt.in); got != tt.want {
			t.Errorf("Clamp01(%v) = %v, 期望 %v", tt.in, got, tt.want)
		}
	}
}

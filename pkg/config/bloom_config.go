package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/decker502/heartbloom/pkg/utils"
)

// EpochLayout 纪念日时间的格式（按本地时区解析）
const EpochLayout = "2006-01-02 15:04:05"

// BloomConfig 动画的可调参数
//
// 配置文件位置: data/bloom.yaml（可用 --config 指定其他路径）
// 文件中缺省的字段保留 DefaultBloomConfig 中的默认值。
type BloomConfig struct {
	// Epoch 计时起点，格式 "2006-01-02 15:04:05"，本地时区
	Epoch string `yaml:"epoch"`

	// Prompt 待机时显示在爱心旁边的提示文字
	Prompt string `yaml:"prompt"`

	// Message 镜头平移后淡入的祝福文字（逐行）
	Message []string `yaml:"message"`

	// MobileBreakpoint 逻辑宽度小于该值时使用移动端布局
	MobileBreakpoint float64 `yaml:"mobileBreakpoint"`

	Palette PaletteConfig    `yaml:"palette"`
	Pan     PanConfig        `yaml:"pan"`
	Petals  PetalConfig      `yaml:"petals"`
	Bloom   BloomPhaseConfig `yaml:"bloom"`
	Timer   TimerConfig      `yaml:"timer"`
}

// PaletteConfig 颜色配置，全部为 "#rrggbb" 形式
type PaletteConfig struct {
	Background string   `yaml:"background"`
	Leaves     []string `yaml:"leaves"`
	BackLeaf   string   `yaml:"backLeaf"`
	Trunk      string   `yaml:"trunk"`
	Ground     string   `yaml:"ground"`
	Heart      string   `yaml:"heart"`
	Prompt     string   `yaml:"prompt"`
	Message    string   `yaml:"message"`
}

// PanConfig 开花阶段的横向镜头平移
//
// 两种布局变体都可以表达：
//   - OnMobile=true: 所有设备都平移 Fraction × 宽度
//   - OnMobile=false: 窄屏（移动端）不平移，其余平移 Fraction × 宽度
type PanConfig struct {
	Fraction float64 `yaml:"fraction"`
	OnMobile bool    `yaml:"onMobile"`
	// Step 每帧线性平移进度增量
	Step float64 `yaml:"step"`
}

// PetalConfig 花瓣数量控制
type PetalConfig struct {
	// MaxSettled 停留在树冠上的花瓣数量上限
	MaxSettled int `yaml:"maxSettled"`
	// PerTick 开花/起风阶段每帧生成的停留花瓣数
	PerTick int `yaml:"perTick"`
	// FlyingPerTick 起风阶段每帧生成的飘散花瓣数
	FlyingPerTick int `yaml:"flyingPerTick"`
}

// BloomPhaseConfig 开花阶段配置
type BloomPhaseConfig struct {
	// TicksToWind 开花阶段持续帧数，超过后进入起风阶段
	TicksToWind int `yaml:"ticksToWind"`
}

// TimerConfig 计时器显示配置
type TimerConfig struct {
	// SkipWhenHidden 祝福文字不可见时跳过计时器更新
	SkipWhenHidden bool `yaml:"skipWhenHidden"`
	// Labels 天/时/分/秒 四个单位的标签
	Labels []string `yaml:"labels"`
}

// DefaultBloomConfig 返回默认配置
func DefaultBloomConfig() *BloomConfig {
	return &BloomConfig{
		Epoch:  "2023-01-15 12:00:00",
		Prompt: "Click aquí",
		Message: []string{
			"Para el amor de mi vida:",
			"Mi amor por ti comenzó hace...",
		},
		MobileBreakpoint: DefaultMobileBreakpoint,
		Palette: PaletteConfig{
			Background: "#fff5f7",
			Leaves:     []string{"#ff5d8f", "#ff87ab", "#ffacc5", "#ffb3c1", "#c62828"},
			BackLeaf:   "#ffd1dc",
			Trunk:      "#5d4037",
			Ground:     "#8d6e63",
			Heart:      "#c62828",
			Prompt:     "#8b3a3a",
			Message:    "#5d4037",
		},
		Pan: PanConfig{
			Fraction: DefaultPanFraction,
			OnMobile: false,
			Step:     0.005,
		},
		Petals: PetalConfig{
			MaxSettled:    18000,
			PerTick:       100,
			FlyingPerTick: 2,
		},
		Bloom: BloomPhaseConfig{
			TicksToWind: 600,
		},
		Timer: TimerConfig{
			SkipWhenHidden: true,
			Labels:         []string{"días", "horas", "minutos", "segundos"},
		},
	}
}

// LoadBloomConfig 从 YAML 文件加载配置
//
// 参数:
//   - path: 配置文件路径（如 "data/bloom.yaml"）
//
// 返回:
//   - *BloomConfig: 合并默认值并校验后的配置
//   - error: 读取、解析或校验失败时返回错误
func LoadBloomConfig(path string) (*BloomConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read bloom config: %w", err)
	}

	cfg, err := ParseBloomConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// ParseBloomConfig 解析 YAML 内容，未出现的字段保留默认值
func ParseBloomConfig(data []byte) (*BloomConfig, error) {
	cfg := DefaultBloomConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse bloom config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid bloom config: %w", err)
	}
	return cfg, nil
}

// Validate 验证配置有效性
func (c *BloomConfig) Validate() error {
	if _, err := c.EpochTime(); err != nil {
		return err
	}

	if c.MobileBreakpoint < 0 {
		return fmt.Errorf("mobileBreakpoint must not be negative, got %.1f", c.MobileBreakpoint)
	}

	if len(c.Palette.Leaves) == 0 {
		return fmt.Errorf("palette.leaves must contain at least one color")
	}
	for i, hex := range c.Palette.Leaves {
		if _, err := utils.ParseHexColor(hex); err != nil {
			return fmt.Errorf("palette.leaves[%d]: %w", i, err)
		}
	}
	named := []struct {
		key string
		hex string
	}{
		{"palette.background", c.Palette.Background},
		{"palette.backLeaf", c.Palette.BackLeaf},
		{"palette.trunk", c.Palette.Trunk},
		{"palette.ground", c.Palette.Ground},
		{"palette.heart", c.Palette.Heart},
		{"palette.prompt", c.Palette.Prompt},
		{"palette.message", c.Palette.Message},
	}
	for _, n := range named {
		if _, err := utils.ParseHexColor(n.hex); err != nil {
			return fmt.Errorf("%s: %w", n.key, err)
		}
	}

	if c.Pan.Fraction < 0 || c.Pan.Fraction > 1 {
		return fmt.Errorf("pan.fraction must be within [0, 1], got %.3f", c.Pan.Fraction)
	}
	if c.Pan.Step <= 0 || c.Pan.Step > 1 {
		return fmt.Errorf("pan.step must be within (0, 1], got %.4f", c.Pan.Step)
	}

	if c.Petals.MaxSettled <= 0 {
		return fmt.Errorf("petals.maxSettled must be positive, got %d", c.Petals.MaxSettled)
	}
	if c.Petals.PerTick < 0 || c.Petals.FlyingPerTick < 0 {
		return fmt.Errorf("petals.perTick and petals.flyingPerTick must not be negative")
	}

	if c.Bloom.TicksToWind < 0 {
		return fmt.Errorf("bloom.ticksToWind must not be negative, got %d", c.Bloom.TicksToWind)
	}

	if len(c.Timer.Labels) != 4 {
		return fmt.Errorf("timer.labels must have 4 entries (days, hours, minutes, seconds), got %d", len(c.Timer.Labels))
	}

	return nil
}

// EpochTime 解析计时起点
func (c *BloomConfig) EpochTime() (time.Time, error) {
	epoch, err := time.ParseInLocation(EpochLayout, c.Epoch, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("epoch %q: %w", c.Epoch, err)
	}
	return epoch, nil
}

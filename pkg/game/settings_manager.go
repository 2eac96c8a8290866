package game

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// DisplaySettings 用户的显示偏好
// 只保存窗口相关的偏好，动画进度不会被持久化（每次启动都从待机开始）
type DisplaySettings struct {
	Fullscreen   bool `yaml:"fullscreen"`   // 启动时是否全屏
	ShowTimer    bool `yaml:"showTimer"`    // 是否显示计时器
	WindowWidth  int  `yaml:"windowWidth"`  // 上次窗口宽度（逻辑像素）
	WindowHeight int  `yaml:"windowHeight"` // 上次窗口高度（逻辑像素）
}

// 窗口尺寸范围
const (
	MinWindowWidth      = 320
	MinWindowHeight     = 240
	DefaultWindowWidth  = 1280
	DefaultWindowHeight = 800
)

// DefaultSettings 返回默认设置
func DefaultSettings() *DisplaySettings {
	return &DisplaySettings{
		Fullscreen:   false,
		ShowTimer:    true,
		WindowWidth:  DefaultWindowWidth,
		WindowHeight: DefaultWindowHeight,
	}
}

// SettingsManager 设置管理器
// 负责显示设置的加载、保存和内存管理
type SettingsManager struct {
	gdataManager *gdata.Manager   // gdata 跨平台存储管理器，可为 nil（降级模式）
	settings     *DisplaySettings // 当前设置
}

// 存储路径常量
const (
	settingsObject   = "settings"
	settingsProperty = "display"
)

// NewSettingsManager 创建新的设置管理器实例
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式，仅内存设置）
//
// 加载失败不影响创建，使用默认设置并记录日志。
func NewSettingsManager(gdataManager *gdata.Manager) *SettingsManager {
	sm := &SettingsManager{
		gdataManager: gdataManager,
		settings:     DefaultSettings(),
	}

	if err := sm.Load(); err != nil {
		log.Printf("[SettingsManager] Warning: Failed to load settings: %v (using defaults)", err)
	}

	return sm
}

// Load 从 gdata 加载设置
//
// 如果 gdataManager 为 nil 或文件不存在，使用默认设置
func (sm *SettingsManager) Load() error {
	// 降级模式：无法持久化，使用默认设置
	if sm.gdataManager == nil {
		sm.settings = DefaultSettings()
		return nil
	}

	if !sm.gdataManager.ObjectPropExists(settingsObject, settingsProperty) {
		sm.settings = DefaultSettings()
		return nil
	}

	data, err := sm.gdataManager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to load settings: %w", err)
	}

	// 以默认值为底，缺省字段保留默认
	loaded := DefaultSettings()
	if err := yaml.Unmarshal(data, loaded); err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	loaded.WindowWidth, loaded.WindowHeight = clampWindowSize(loaded.WindowWidth, loaded.WindowHeight)

	sm.settings = loaded
	log.Printf("[SettingsManager] Settings loaded successfully")
	return nil
}

// Save 保存设置到 gdata
//
// 如果 gdataManager 为 nil，返回 nil（降级模式，不报错）
func (sm *SettingsManager) Save() error {
	if sm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(sm.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := sm.gdataManager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	log.Printf("[SettingsManager] Settings saved successfully")
	return nil
}

// GetSettings 获取当前设置
func (sm *SettingsManager) GetSettings() *DisplaySettings {
	return sm.settings
}

// SetFullscreen 设置全屏模式
// 注意：仅修改内存中的设置，需调用 Save() 方法持久化
func (sm *SettingsManager) SetFullscreen(enabled bool) {
	sm.settings.Fullscreen = enabled
}

// SetShowTimer 设置是否显示计时器
func (sm *SettingsManager) SetShowTimer(enabled bool) {
	sm.settings.ShowTimer = enabled
}

// SetWindowSize 记录窗口尺寸，过小的值会被提升到下限
func (sm *SettingsManager) SetWindowSize(width, height int) {
	sm.settings.WindowWidth, sm.settings.WindowHeight = clampWindowSize(width, height)
}

// clampWindowSize 将窗口尺寸限制在下限以上
func clampWindowSize(width, height int) (int, int) {
	if width < MinWindowWidth {
		width = MinWindowWidth
	}
	if height < MinWindowHeight {
		height = MinWindowHeight
	}
	return width, height
}

package game

import (
	"fmt"
	"log"
)

// AnimationState 动画所处的阶段
// 阶段只能按 Idle → Falling → Growing → Blooming → Windy 的顺序前进
type AnimationState int

const (
	// StateIdle 等待点击/触摸
	StateIdle AnimationState = iota
	// StateFalling 爱心下落
	StateFalling
	// StateGrowing 分形树生长
	StateGrowing
	// StateBlooming 花瓣长满树冠，镜头平移
	StateBlooming
	// StateWindy 花瓣随风飘散（终态）
	StateWindy
)

// String 返回阶段名称（用于日志）
func (s AnimationState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateFalling:
		return "falling"
	case StateGrowing:
		return "growing"
	case StateBlooming:
		return "blooming"
	case StateWindy:
		return "windy"
	default:
		return fmt.Sprintf("AnimationState(%d)", int(s))
	}
}

// ShowsTree 该阶段是否绘制地面、树和花瓣
func (s AnimationState) ShowsTree() bool {
	return s >= StateGrowing
}

// Pans 该阶段镜头是否平移、花瓣是否生成
func (s AnimationState) Pans() bool {
	return s == StateBlooming || s == StateWindy
}

// BloomState 动画状态机的全局计数器
//
// 由 systems.Simulation 持有，不是全局单例：每个模拟实例有自己的状态。
type BloomState struct {
	current AnimationState

	// GrowthProgress 树的生长进度 0..100
	GrowthProgress float64

	// BloomTicks 在开花阶段已经停留的帧数
	BloomTicks int

	// Tick 模拟已经执行的总帧数
	Tick int
}

// NewBloomState 创建处于待机阶段的状态
func NewBloomState() *BloomState {
	return &BloomState{current: StateIdle}
}

// Current 返回当前阶段
func (bs *BloomState) Current() AnimationState {
	return bs.current
}

// Advance 前进到紧接着的下一个阶段
//
// 只允许前进一步；next 不是当前阶段的直接后继时返回 false 且状态不变。
// Windy 是终态，没有后继。
func (bs *BloomState) Advance(next AnimationState) bool {
	if bs.current == StateWindy || next != bs.current+1 {
		return false
	}

	log.Printf("[BloomState] %s -> %s (tick %d)", bs.current, next, bs.Tick)
	bs.current = next
	return true
}

package game

import (
	"fmt"
	"time"
)

// ElapsedParts 距纪念日经过的天/时/分/秒
type ElapsedParts struct {
	Days    int64
	Hours   int64
	Minutes int64
	Seconds int64
}

// ComputeElapsed 计算 now 距 epoch 经过的时间
// epoch 在 now 之后时返回全零
func ComputeElapsed(now, epoch time.Time) ElapsedParts {
	diff := now.Sub(epoch)
	if diff < 0 {
		return ElapsedParts{}
	}

	total := int64(diff / time.Second)
	return ElapsedParts{
		Days:    total / 86400,
		Hours:   (total / 3600) % 24,
		Minutes: (total / 60) % 60,
		Seconds: total % 60,
	}
}

// TimerDisplay 计时器文字的外部显示端
type TimerDisplay interface {
	// SetElapsed 写入四个数值
	SetElapsed(parts ElapsedParts)
	// MessageVisible 祝福文字区域当前是否可见
	MessageVisible() bool
}

// TimerReporter 每帧把经过时间写入显示端
type TimerReporter struct {
	epoch          time.Time
	skipWhenHidden bool
	display        TimerDisplay
}

// NewTimerReporter 创建计时器
//
// display 为 nil 时返回错误：没有显示端时计时器没有意义。
func NewTimerReporter(epoch time.Time, skipWhenHidden bool, display TimerDisplay) (*TimerReporter, error) {
	if display == nil {
		return nil, fmt.Errorf("timer reporter requires a display")
	}
	return &TimerReporter{
		epoch:          epoch,
		skipWhenHidden: skipWhenHidden,
		display:        display,
	}, nil
}

// Report 计算并写入经过时间
// 返回是否实际写入（显示端隐藏且配置为跳过时返回 false）
func (tr *TimerReporter) Report(now time.Time) bool {
	if tr.skipWhenHidden && !tr.display.MessageVisible() {
		return false
	}
	tr.display.SetElapsed(ComputeElapsed(now, tr.epoch))
	return true
}

// Format 按 "12 días 3 horas ..." 的形式拼接，labels 依次为天/时/分/秒
func (p ElapsedParts) Format(labels []string) string {
	values := [4]int64{p.Days, p.Hours, p.Minutes, p.Seconds}
	out := ""
	for i, v := range values {
		label := ""
		if i < len(labels) {
			label = labels[i]
		}
		if i > 0 {
			out += "  "
		}
		out += fmt.Sprintf("%d %s", v, label)
	}
	return out
}

package systems

import "log"

// Action 玩家可以触发的操作
type Action int

const (
	ActionThrust Action = iota
	ActionRotateLeft
	ActionRotateRight
	ActionFire
	ActionRestart
	ActionToggleGrid
)

// String 返回操作名称
func (a Action) String() string {
	switch a {
	case ActionThrust:
		return "thrust"
	case ActionRotateLeft:
		return "rotateLeft"
	case ActionRotateRight:
		return "rotateRight"
	case ActionFire:
		return "fire"
	case ActionRestart:
		return "restart"
	case ActionToggleGrid:
		return "toggleGrid"
	default:
		return "unknown"
	}
}

// InputSource 输入来源
// Pressed 表示按住，JustPressed 只在按下的那一帧为 true
type InputSource interface {
	Pressed(action Action) bool
	JustPressed(action Action) bool
}

// InputSystem 将输入映射为玩家意图
// 推进和旋转是持续操作；开火、重新开始、切换点阵只在按下时触发一次
type InputSystem struct {
	source InputSource
}

// NewInputSystem 创建输入系统
func NewInputSystem(source InputSource) *InputSystem {
	return &InputSystem{source: source}
}

// Update 读取本帧输入并作用到模拟上
func (s *InputSystem) Update(sim *Simulation) {
	if s.source.JustPressed(ActionToggleGrid) {
		sim.ToggleGrid()
	}

	player := sim.Player()
	if !player.Alive() {
		if s.source.JustPressed(ActionRestart) && !sim.Restart() {
			log.Printf("[InputSystem] 爆炸尚未结束，忽略重新开始")
		}
		return
	}

	if s.source.Pressed(ActionThrust) {
		player.Accelerate()
	} else {
		player.Stop()
	}

	if s.source.Pressed(ActionRotateLeft) {
		player.RotateLeft()
	}
	if s.source.Pressed(ActionRotateRight) {
		player.RotateRight()
	}

	if s.source.JustPressed(ActionFire) {
		sim.Fire()
	}
}

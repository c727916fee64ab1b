package entities

import "math"

// Positioner 可以提供当前位置的对象（敌人追踪的目标）
type Positioner interface {
	Position() (x, y float64)
}

// DirectionKind 敌人移动方向的类型
type DirectionKind int

const (
	// DirectionFixed 固定方向
	DirectionFixed DirectionKind = iota
	// DirectionTracking 每一步都重新瞄准目标
	DirectionTracking
)

// Direction 敌人的移动方向（弧度）
//
// 固定方向直接返回 Angle；追踪方向在每次移动时根据目标的当前位置
// 和敌人的当前位置重新计算 atan2。
type Direction struct {
	Kind   DirectionKind
	Angle  float64
	Target Positioner
}

// Fixed 返回固定角度的方向
func Fixed(angle float64) Direction {
	return Direction{Kind: DirectionFixed, Angle: angle}
}

// Tracking 返回追踪 target 的方向
func Tracking(target Positioner) Direction {
	return Direction{Kind: DirectionTracking, Target: target}
}

// Resolve 计算从 (x, y) 出发的移动角度
// 追踪目标为空时退化为 Angle
func (d Direction) Resolve(x, y float64) float64 {
	if d.Kind == DirectionTracking && d.Target != nil {
		tx, ty := d.Target.Position()
		return math.Atan2(ty-y, tx-x)
	}
	return d.Angle
}

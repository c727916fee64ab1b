package entities

import (
	"math"

	"github.com/gonewx/blobshooter/pkg/ecs"
	"github.com/gonewx/blobshooter/pkg/render"
	"github.com/gonewx/blobshooter/pkg/types"
	"github.com/gonewx/blobshooter/pkg/utils"
)

// Enemy 会缩小的圆形敌人
//
// 半径同时就是生命值：Radius > MinRadius 时存活。
// 受到伤害时半径减小，降到 MinRadius 及以下后的第一次 Update 触发爆炸。
type Enemy struct {
	ID        ecs.EntityID
	X, Y      float64
	Radius    float64
	MinRadius float64
	Speed     float64
	Color     types.HSL
	Direction Direction
	Damage    int

	initialRadius float64
	explosion
}

// NewEnemy 创建敌人，记录初始半径
func NewEnemy(id ecs.EntityID, x, y, radius, minRadius, speed float64, color types.HSL, direction Direction, damage int, burst *Burst) *Enemy {
	return &Enemy{
		ID:            id,
		X:             x,
		Y:             y,
		Radius:        radius,
		MinRadius:     minRadius,
		Speed:         speed,
		Color:         color,
		Direction:     direction,
		Damage:        damage,
		initialRadius: radius,
		explosion:     explosion{burst: burst},
	}
}

// InitialRadius 生成时的半径
func (e *Enemy) InitialRadius() float64 {
	return e.initialRadius
}

// Life 生命值，等于当前半径
func (e *Enemy) Life() float64 {
	return e.Radius
}

// Alive 半径大于最小半径时存活
func (e *Enemy) Alive() bool {
	return e.Radius > e.MinRadius
}

// Exploding 爆炸粒子是否已经生成
func (e *Enemy) Exploding() bool {
	return e.exploding
}

// Exploded 爆炸动画是否已经结束（终态）
func (e *Enemy) Exploded() bool {
	return e.exploded
}

// Particles 当前仍在播放的爆炸粒子
func (e *Enemy) Particles() []*Particle {
	return e.particles
}

// Position 实现 Positioner
func (e *Enemy) Position() (x, y float64) {
	return e.X, e.Y
}

// Hurt 半径减少 amount，不做下限截断
func (e *Enemy) Hurt(amount float64) {
	e.Radius -= amount
}

// OutOfBoard 敌人是否完全离开画布（以半径作为半宽和半高）
func (e *Enemy) OutOfBoard(board types.Board) bool {
	return utils.OutOfBounds(e.X, e.Y, e.Radius, e.Radius, board.Width, board.Height)
}

// Update 存活时绘制并移动；死亡后播放一次爆炸，直到粒子全部停止
func (e *Enemy) Update(surface render.Surface) {
	if e.Alive() {
		e.draw(surface)
		e.move()
		return
	}
	e.step(surface, e.X, e.Y, e.Color)
}

func (e *Enemy) draw(surface render.Surface) {
	surface.Save()
	surface.BeginPath()
	surface.Arc(e.X, e.Y, e.Radius, 0, 2*math.Pi)
	surface.SetFillColor(e.Color)
	surface.Fill()
	surface.Restore()
}

func (e *Enemy) move() {
	angle := e.Direction.Resolve(e.X, e.Y)
	vx, vy := utils.Velocity(angle, e.Speed)
	e.X += vx
	e.Y += vy
}

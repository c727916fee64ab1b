package entities

import (
	"math"

	"github.com/gonewx/blobshooter/pkg/ecs"
	"github.com/gonewx/blobshooter/pkg/render"
	"github.com/gonewx/blobshooter/pkg/types"
	"github.com/gonewx/blobshooter/pkg/utils"
)

// Projectile 玩家发射的子弹
// 沿发射时的朝向匀速直线飞行，直到离开画布或击中敌人
type Projectile struct {
	ID             ecs.EntityID
	X, Y           float64
	Radius         float64
	Speed          float64
	Color          types.HSL
	DirectionAngle float64 // 角度制，发射后不再改变
	Damage         float64
}

// NewProjectile 创建子弹
func NewProjectile(id ecs.EntityID, x, y, radius, speed float64, color types.HSL, directionAngle, damage float64) *Projectile {
	return &Projectile{
		ID:             id,
		X:              x,
		Y:              y,
		Radius:         radius,
		Speed:          speed,
		Color:          color,
		DirectionAngle: directionAngle,
		Damage:         damage,
	}
}

// Update 绘制子弹，然后按固定方向移动
func (p *Projectile) Update(surface render.Surface) {
	p.draw(surface)
	p.move()
}

// OutOfBoard 子弹是否完全离开画布（以半径作为半宽和半高）
func (p *Projectile) OutOfBoard(board types.Board) bool {
	return utils.OutOfBounds(p.X, p.Y, p.Radius, p.Radius, board.Width, board.Height)
}

// Shotted 子弹是否与敌人相交（圆与圆重叠检测）
// 只做查询，伤害由调用者结算
func (p *Projectile) Shotted(enemy *Enemy) bool {
	dist := utils.Distance(p.X, p.Y, enemy.X, enemy.Y)
	return dist-p.Radius-enemy.Radius <= 0
}

func (p *Projectile) draw(surface render.Surface) {
	surface.Save()
	surface.BeginPath()
	surface.Arc(p.X, p.Y, p.Radius, 0, 2*math.Pi)
	surface.SetFillColor(p.Color)
	surface.Fill()
	surface.Restore()
}

func (p *Projectile) move() {
	vx, vy := utils.Velocity(utils.DegToRad(p.DirectionAngle), p.Speed)
	p.X += vx
	p.Y += vy
}

package entities

import (
	"github.com/gonewx/blobshooter/pkg/ecs"
	"github.com/gonewx/blobshooter/pkg/render"
	"github.com/gonewx/blobshooter/pkg/types"
	"github.com/gonewx/blobshooter/pkg/utils"
)

// PlayerInitialLife 玩家初始生命值
const PlayerInitialLife = 100

// Player 玩家操控的飞船
//
// 移动采用加速度/摩擦模型：按住推进时速度按 Acceleration 增加到 MaxSpeed，
// 松开后按 Friction 衰减到 0。位置在画布边缘环绕。
type Player struct {
	ID            ecs.EntityID
	X, Y          float64
	Width, Height float64
	Color         types.HSL
	MaxSpeed      float64
	RotateSpeed   float64
	Friction      float64
	Acceleration  float64

	Life        int
	Angle       float64 // 角度制，0-360
	Projectiles []*Projectile

	speed  float64
	moving bool
	explosion
}

// NewPlayer 创建玩家，生命值 100，朝向 0
func NewPlayer(id ecs.EntityID, x, y, width, height float64, color types.HSL, maxSpeed, rotateSpeed, friction, acceleration float64, burst *Burst) *Player {
	return &Player{
		ID:           id,
		X:            x,
		Y:            y,
		Width:        width,
		Height:       height,
		Color:        color,
		MaxSpeed:     maxSpeed,
		RotateSpeed:  rotateSpeed,
		Friction:     friction,
		Acceleration: acceleration,
		Life:         PlayerInitialLife,
		explosion:    explosion{burst: burst},
	}
}

// Alive 生命值大于 0 时存活
func (p *Player) Alive() bool {
	return p.Life > 0
}

// Exploding 爆炸粒子是否已经生成
func (p *Player) Exploding() bool {
	return p.exploding
}

// Exploded 爆炸动画是否已经结束（终态）
func (p *Player) Exploded() bool {
	return p.exploded
}

// Particles 当前仍在播放的爆炸粒子
func (p *Player) Particles() []*Particle {
	return p.particles
}

// Speed 当前速度（由推进意图和物理计算得出）
func (p *Player) Speed() float64 {
	return p.speed
}

// Moving 是否处于推进状态
func (p *Player) Moving() bool {
	return p.moving
}

// Position 实现 Positioner，供追踪型敌人使用
func (p *Player) Position() (x, y float64) {
	return p.X, p.Y
}

// Accelerate 开始推进
func (p *Player) Accelerate() {
	p.moving = true
}

// Stop 停止推进，速度随后按摩擦衰减
func (p *Player) Stop() {
	p.moving = false
}

// RotateLeft 逆时针旋转 RotateSpeed 度
// 结果小于 0 时直接置为 360（只修正一次越界，不做取模）
func (p *Player) RotateLeft() {
	if p.Angle-p.RotateSpeed < 0 {
		p.Angle = 360
	} else {
		p.Angle -= p.RotateSpeed
	}
}

// RotateRight 顺时针旋转 RotateSpeed 度
// 结果大于 360 时直接置为 0（只修正一次越界，不做取模）
func (p *Player) RotateRight() {
	if p.Angle+p.RotateSpeed > 360 {
		p.Angle = 0
	} else {
		p.Angle += p.RotateSpeed
	}
}

// Shot 将子弹加入玩家持有的列表，不限制数量
func (p *Player) Shot(projectile *Projectile) {
	p.Projectiles = append(p.Projectiles, projectile)
}

// Hurt 生命值减少 amount，下限在 Update 中处理
func (p *Player) Hurt(amount int) {
	p.Life -= amount
}

// Update 存活时更新子弹、速度、位置并绘制；死亡后播放一次爆炸
func (p *Player) Update(surface render.Surface, board types.Board) {
	if p.Alive() {
		p.updateProjectiles(surface, board)
		p.checkSpeed()
		p.checkPosition(board)
		p.draw(surface)
		return
	}
	if p.exploded {
		return
	}
	p.Life = 0
	p.step(surface, p.X, p.Y, p.Color)
}

func (p *Player) updateProjectiles(surface render.Surface, board types.Board) {
	kept := p.Projectiles[:0]
	for _, projectile := range p.Projectiles {
		if !projectile.OutOfBoard(board) {
			kept = append(kept, projectile)
		}
	}
	for i := len(kept); i < len(p.Projectiles); i++ {
		p.Projectiles[i] = nil
	}
	p.Projectiles = kept

	for _, projectile := range p.Projectiles {
		projectile.Update(surface)
	}
}

func (p *Player) checkSpeed() {
	if p.moving {
		p.speed += p.Acceleration
		if p.speed > p.MaxSpeed {
			p.speed = p.MaxSpeed
		}
	} else if p.speed > 0 {
		p.speed -= p.Friction
		if p.speed < 0 {
			p.speed = 0
		}
	}

	if p.speed > 0 {
		p.move()
	}
}

func (p *Player) move() {
	vx, vy := utils.Velocity(utils.DegToRad(p.Angle), p.speed)
	p.X += vx
	p.Y += vy
}

// checkPosition 环绕到 [0, W) × [0, H)
func (p *Player) checkPosition(board types.Board) {
	p.X = utils.Wrap(p.X, board.Width)
	p.Y = utils.Wrap(p.Y, board.Height)
}

// draw 以飞船中心为原点绘制箭头形状
func (p *Player) draw(surface render.Surface) {
	surface.Save()
	surface.Translate(p.X, p.Y)
	surface.Rotate(utils.DegToRad(p.Angle))
	surface.BeginPath()
	surface.MoveTo(p.Width/2, 0)
	surface.LineTo(-p.Width/2, p.Height/2)
	surface.LineTo(-p.Width/4, 0)
	surface.LineTo(-p.Width/2, -p.Height/2)
	surface.ClosePath()
	surface.SetFillColor(p.Color)
	surface.Fill()
	surface.Restore()
}

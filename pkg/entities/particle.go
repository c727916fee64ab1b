package entities

import (
	"math"

	"github.com/gonewx/blobshooter/pkg/ecs"
	"github.com/gonewx/blobshooter/pkg/render"
	"github.com/gonewx/blobshooter/pkg/types"
	"github.com/gonewx/blobshooter/pkg/utils"
)

// ParticleFadeStep 每次更新粒子透明度的减少量
const ParticleFadeStep = 0.01

// ParticleStopSpeed 速度不超过该值时粒子视为停止
const ParticleStopSpeed = 1.0

// Particle 爆炸产生的短暂碎片
// 沿固定方向运动，速度按摩擦系数衰减，透明度逐帧降低
type Particle struct {
	ID             ecs.EntityID
	X, Y           float64
	Radius         float64
	Speed          float64
	Color          types.HSL
	DirectionAngle float64 // 角度制
	Friction       float64

	alpha float64
}

// NewParticle 创建粒子，初始透明度为 1
//
// friction 应小于 1，否则粒子永远不会因速度而停止（只会因透明度耗尽而停止）
func NewParticle(id ecs.EntityID, x, y, radius, speed float64, color types.HSL, directionAngle, friction float64) *Particle {
	return &Particle{
		ID:             id,
		X:              x,
		Y:              y,
		Radius:         radius,
		Speed:          speed,
		Color:          color,
		DirectionAngle: directionAngle,
		Friction:       friction,
		alpha:          1,
	}
}

// Opacity 当前透明度
func (p *Particle) Opacity() float64 {
	return p.alpha
}

// Stopped 粒子是否已停止（速度不超过 1 或完全透明）
// 停止的粒子不再更新，由持有者移除
func (p *Particle) Stopped() bool {
	return p.Speed <= ParticleStopSpeed || p.alpha <= 0
}

// Update 以当前透明度绘制粒子，然后推进一步
func (p *Particle) Update(surface render.Surface) {
	p.draw(surface)
	p.move()
}

func (p *Particle) draw(surface render.Surface) {
	surface.Save()
	surface.BeginPath()
	surface.Arc(p.X, p.Y, p.Radius, 0, 2*math.Pi)
	surface.SetFillColor(p.Color)
	surface.SetGlobalAlpha(p.alpha)
	surface.Fill()
	surface.Restore()
}

func (p *Particle) move() {
	p.alpha -= ParticleFadeStep
	p.Speed *= p.Friction

	vx, vy := utils.Velocity(utils.DegToRad(p.DirectionAngle), p.Speed)
	p.X += vx
	p.Y += vy
}

// filterStopped 移除已停止的粒子，原地复用切片
func filterStopped(particles []*Particle) []*Particle {
	alive := particles[:0]
	for _, p := range particles {
		if !p.Stopped() {
			alive = append(alive, p)
		}
	}
	for i := len(alive); i < len(particles); i++ {
		particles[i] = nil
	}
	return alive
}

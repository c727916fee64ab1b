package entities

import (
	"github.com/gonewx/blobshooter/pkg/ecs"
	"github.com/gonewx/blobshooter/pkg/render"
	"github.com/gonewx/blobshooter/pkg/types"
)

// Rand 随机数来源，*math/rand.Rand 满足此接口
// 测试中可替换为确定性的实现
type Rand interface {
	Float64() float64
}

// Burst 爆炸时一次性生成粒子的策略
// 玩家与敌人共用，只是参数不同
type Burst struct {
	Count        int
	RadiusMax    float64
	SpeedMax     float64
	DirectionMax float64 // 角度制
	Friction     float64
	// FixedColor 不为空时所有粒子使用该颜色，否则使用爆炸者自身的颜色
	FixedColor *types.HSL
	Rand       Rand
}

// Spawn 在 (x, y) 生成一批粒子
// 粒子编号为其在本批中的序号，不占用全局ID序列
func (b *Burst) Spawn(x, y float64, owner types.HSL) []*Particle {
	color := owner
	if b.FixedColor != nil {
		color = *b.FixedColor
	}

	particles := make([]*Particle, 0, b.Count)
	for i := 0; i < b.Count; i++ {
		radius := b.Rand.Float64() * b.RadiusMax
		speed := b.Rand.Float64() * b.SpeedMax
		direction := b.Rand.Float64() * b.DirectionMax
		particles = append(particles, NewParticle(ecs.EntityID(i), x, y, radius, speed, color, direction, b.Friction))
	}
	return particles
}

// explosion 爆炸状态机的共享部分：存活 → 爆炸中 → 爆炸结束
type explosion struct {
	burst     *Burst
	particles []*Particle
	exploding bool
	exploded  bool
}

// step 推进一帧爆炸动画
// 第一次调用时生成粒子；之后每帧过滤已停止的粒子并更新剩余粒子，
// 过滤后列表为空时标记为爆炸结束
func (e *explosion) step(surface render.Surface, x, y float64, color types.HSL) {
	if e.exploded {
		return
	}
	if !e.exploding {
		e.particles = e.burst.Spawn(x, y, color)
		e.exploding = true
	}

	e.particles = StepParticles(surface, e.particles)
	if len(e.particles) == 0 {
		e.exploded = true
	}
}

// StepParticles 移除已停止的粒子并更新剩余粒子，返回剩余粒子
// 会复用传入切片的底层数组
func StepParticles(surface render.Surface, particles []*Particle) []*Particle {
	particles = filterStopped(particles)
	for _, p := range particles {
		p.Update(surface)
	}
	return particles
}

package entities

import (
	"fmt"
	"log"

	"github.com/gonewx/blobshooter/pkg/config"
	"github.com/gonewx/blobshooter/pkg/ecs"
	"github.com/gonewx/blobshooter/pkg/types"
)

// Factory 创建带有随机或派生初始参数的实体
//
// 所有实体共享同一个 ID 分配器，ID 全局唯一、单调递增。
// 随机数来源、视口尺寸和参数均由调用者注入，便于测试。
type Factory struct {
	ids      *ecs.IDAllocator
	rng      Rand
	viewport types.Viewport
	tuning   *config.Tuning

	enemyBurst  *Burst
	playerBurst *Burst
}

// NewFactory 创建实体工厂
//
// 参数:
//   - ids: ID 分配器
//   - rng: 随机数来源
//   - viewport: 初始摆放使用的视口尺寸
//   - tuning: 模拟参数
//
// 返回:
//   - *Factory: 工厂实例
//   - error: 任一依赖为 nil 时返回错误
func NewFactory(ids *ecs.IDAllocator, rng Rand, viewport types.Viewport, tuning *config.Tuning) (*Factory, error) {
	if ids == nil {
		return nil, fmt.Errorf("id allocator cannot be nil")
	}
	if rng == nil {
		return nil, fmt.Errorf("random source cannot be nil")
	}
	if tuning == nil {
		return nil, fmt.Errorf("tuning cannot be nil")
	}

	return &Factory{
		ids:         ids,
		rng:         rng,
		viewport:    viewport,
		tuning:      tuning,
		enemyBurst:  newBurst(tuning.EnemyBurst, rng),
		playerBurst: newBurst(tuning.PlayerBurst, rng),
	}, nil
}

func newBurst(t config.BurstTuning, rng Rand) *Burst {
	return &Burst{
		Count:        t.Count,
		RadiusMax:    t.RadiusMax,
		SpeedMax:     t.SpeedMax,
		DirectionMax: t.DirectionMax,
		Friction:     t.Friction,
		FixedColor:   t.Color,
		Rand:         rng,
	}
}

// Viewport 当前用于初始摆放的视口尺寸
func (f *Factory) Viewport() types.Viewport {
	return f.viewport
}

// SetViewport 更新视口尺寸（窗口大小变化时调用）
func (f *Factory) SetViewport(v types.Viewport) {
	f.viewport = v
}

// EnemyBurst 敌人爆炸策略
func (f *Factory) EnemyBurst() *Burst {
	return f.enemyBurst
}

// PlayerBurst 玩家爆炸策略
func (f *Factory) PlayerBurst() *Burst {
	return f.playerBurst
}

// NewBackground 创建背景：接近黑色的半透明遮罩 + 随机色相的点阵
// 背景不占用 ID
func (f *Factory) NewBackground() *Background {
	bg := f.tuning.Background
	return NewBackground(bg.Overlay, LedGrid{
		Color: types.HSL{
			H: f.rng.Float64() * 360,
			S: bg.LedSaturation.Sample(f.rng.Float64()),
			L: bg.LedLightness,
		},
		Size:         bg.LedSize,
		SpaceBetween: bg.LedSpacing,
	})
}

// NewPlayer 在视口中心创建玩家，色相随机
func (f *Factory) NewPlayer() *Player {
	t := f.tuning.Player
	player := NewPlayer(
		f.ids.Next(),
		f.viewport.Width/2,
		f.viewport.Height/2,
		t.Width,
		t.Height,
		types.HSL{H: f.rng.Float64() * 360, S: t.Saturation, L: t.Lightness},
		t.MaxSpeed,
		t.RotateSpeed,
		t.Friction,
		t.Acceleration,
		f.playerBurst,
	)
	log.Printf("[EntityFactory] 创建玩家 %d: pos=(%.1f, %.1f), color=%s", player.ID, player.X, player.Y, player.Color)
	return player
}

// NewProjectile 在玩家当前位置沿玩家朝向创建子弹
// 速度为玩家最大速度的 SpeedFactor 倍，颜色与玩家相同
func (f *Factory) NewProjectile(player *Player) *Projectile {
	t := f.tuning.Projectile
	return NewProjectile(
		f.ids.Next(),
		player.X,
		player.Y,
		t.Radius,
		player.MaxSpeed*t.SpeedFactor,
		player.Color,
		player.Angle,
		t.Damage,
	)
}

// NewParticle 在 (x, y) 创建单个粒子
// 方向只在 [0, DirectionMax) 的窄范围内随机
func (f *Factory) NewParticle(x, y float64, color types.HSL) *Particle {
	t := f.tuning.Particle
	id := f.ids.Next()
	direction := f.rng.Float64() * t.DirectionMax
	radius := f.rng.Float64() * t.RadiusMax
	speed := f.rng.Float64() * t.SpeedMax
	return NewParticle(id, x, y, radius, speed, color, direction, t.Friction)
}

// NewEnemy 在视口边缘创建敌人
//
// 50% 概率贴左/右边缘（x 向内偏移半径，y 随机），否则贴上/下边缘。
// target 不为 nil 时敌人持续追踪 target，否则固定向角度 0 移动。
//
// 随机数的使用顺序：半径、边缘选择、x、y、色相、速度。
func (f *Factory) NewEnemy(target *Player) *Enemy {
	t := f.tuning.Enemy
	w, h := f.viewport.Width, f.viewport.Height

	radius := t.Radius.Sample(f.rng.Float64())
	sideEdge := f.rng.Float64() < 0.5

	var x, y float64
	if sideEdge {
		if f.rng.Float64() < 0.5 {
			x = radius
		} else {
			x = w - radius
		}
		y = f.rng.Float64() * h
	} else {
		x = f.rng.Float64() * w
		if f.rng.Float64() < 0.5 {
			y = radius
		} else {
			y = h - radius
		}
	}

	color := types.HSL{H: f.rng.Float64() * 360, S: t.Saturation, L: t.Lightness}
	speed := t.Speed.Sample(f.rng.Float64())

	direction := Fixed(0)
	if target != nil {
		direction = Tracking(target)
	}

	return NewEnemy(f.ids.Next(), x, y, radius, t.MinRadius, speed, color, direction, t.Damage, f.enemyBurst)
}

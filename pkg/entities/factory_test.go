package entities

import (
	"math/rand"
	"testing"

	"github.com/gonewx/blobshooter/pkg/config"
	"github.com/gonewx/blobshooter/pkg/ecs"
	"github.com/gonewx/blobshooter/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFactoryRejectsNil(t *testing.T) {
	viewport := types.Viewport{Width: 800, Height: 600}
	tuning := config.DefaultTuning()

	_, err := NewFactory(nil, newSeqRand(0.5), viewport, tuning)
	assert.Error(t, err)
	_, err = NewFactory(ecs.NewIDAllocator(), nil, viewport, tuning)
	assert.Error(t, err)
	_, err = NewFactory(ecs.NewIDAllocator(), newSeqRand(0.5), viewport, nil)
	assert.Error(t, err)
}

func TestFactoryIDsAreSequential(t *testing.T) {
	f := newTestFactory(t, rand.New(rand.NewSource(1)))

	player := f.NewPlayer()
	projectile := f.NewProjectile(player)
	enemy := f.NewEnemy(player)
	particle := f.NewParticle(0, 0, testColor)

	assert.EqualValues(t, 0, player.ID)
	assert.EqualValues(t, 1, projectile.ID)
	assert.EqualValues(t, 2, enemy.ID)
	assert.EqualValues(t, 3, particle.ID)
}

func TestFactoryNewPlayer(t *testing.T) {
	f := newTestFactory(t, newSeqRand(0.5))

	p := f.NewPlayer()

	assert.Equal(t, 400.0, p.X)
	assert.Equal(t, 300.0, p.Y)
	assert.Equal(t, 30.0, p.Width)
	assert.Equal(t, types.HSL{H: 180, S: 50, L: 50}, p.Color)
	assert.Equal(t, 7.0, p.MaxSpeed)
	assert.Equal(t, PlayerInitialLife, p.Life)
	assert.Same(t, f.PlayerBurst(), p.burst)
}

func TestFactoryNewProjectile(t *testing.T) {
	f := newTestFactory(t, newSeqRand(0.5))
	p := f.NewPlayer()
	p.X, p.Y, p.Angle = 12, 34, 45

	proj := f.NewProjectile(p)

	assert.Equal(t, 12.0, proj.X)
	assert.Equal(t, 34.0, proj.Y)
	assert.Equal(t, 45.0, proj.DirectionAngle)
	assert.Equal(t, 5.0, proj.Radius)
	assert.InDelta(t, 8.4, proj.Speed, 1e-9)
	assert.Equal(t, p.Color, proj.Color)
	assert.Equal(t, 1.0, proj.Damage)
}

func TestFactoryNewParticle(t *testing.T) {
	// 依次抽取：方向、半径、速度
	f := newTestFactory(t, newSeqRand(0.2, 0.4, 0.5))

	p := f.NewParticle(10, 20, testColor)

	assert.InDelta(t, 1, p.DirectionAngle, 1e-9)
	assert.InDelta(t, 2, p.Radius, 1e-9)
	assert.InDelta(t, 180, p.Speed, 1e-9)
	assert.Equal(t, 0.99, p.Friction)
	assert.Equal(t, testColor, p.Color)
}

func TestFactoryNewEnemy(t *testing.T) {
	tests := []struct {
		name   string
		draws  []float64
		x, y   float64
		radius float64
	}{
		// 半径、边缘选择、x、y、色相、速度
		{"左边缘", []float64{0.5, 0.25, 0.25, 0.5, 0.5, 0.5}, 30, 300, 30},
		{"右边缘", []float64{0.5, 0.25, 0.75, 0.5, 0.5, 0.5}, 770, 300, 30},
		{"上边缘", []float64{0, 0.75, 0.5, 0.25, 0.5, 0.5}, 400, 20, 20},
		{"下边缘", []float64{0, 0.75, 0.5, 0.75, 0.5, 0.5}, 400, 580, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newTestFactory(t, newSeqRand(tt.draws...))
			target := newTestPlayer()

			e := f.NewEnemy(target)
			require.NotNil(t, e)

			assert.InDelta(t, tt.x, e.X, 1e-9)
			assert.InDelta(t, tt.y, e.Y, 1e-9)
			assert.InDelta(t, tt.radius, e.Radius, 1e-9)
			assert.InDelta(t, 180, e.Color.H, 1e-9)
			assert.InDelta(t, 3, e.Speed, 1e-9)
			assert.Equal(t, 20.0, e.MinRadius)
			assert.Equal(t, DirectionTracking, e.Direction.Kind)
			assert.Same(t, target, e.Direction.Target)
		})
	}
}

func TestFactoryNewEnemyWithoutTarget(t *testing.T) {
	f := newTestFactory(t, newSeqRand(0.5))

	e := f.NewEnemy(nil)

	assert.Equal(t, DirectionFixed, e.Direction.Kind)
	assert.Equal(t, 0.0, e.Direction.Angle)
}

func TestFactoryEnemiesSpawnAlive(t *testing.T) {
	f := newTestFactory(t, rand.New(rand.NewSource(42)))

	for i := 0; i < 200; i++ {
		e := f.NewEnemy(nil)
		assert.GreaterOrEqual(t, e.Radius, 20.0)
		assert.Less(t, e.Radius, 40.0)
		assert.GreaterOrEqual(t, e.X, 0.0)
		assert.LessOrEqual(t, e.X, 800.0)
		assert.GreaterOrEqual(t, e.Y, 0.0)
		assert.LessOrEqual(t, e.Y, 600.0)
		assert.False(t, e.OutOfBoard(testBoard))
	}
}

func TestFactoryNewBackground(t *testing.T) {
	f := newTestFactory(t, newSeqRand(0.5))

	bg := f.NewBackground()

	assert.Equal(t, types.RGBA{A: 0.2}, bg.Color)
	assert.Equal(t, types.HSL{H: 180, S: 55, L: 10}, bg.Led.Color)
	assert.Equal(t, 2.5, bg.Led.Size)
	assert.Equal(t, 30.0, bg.Led.SpaceBetween)
}

func TestFactorySetViewport(t *testing.T) {
	f := newTestFactory(t, newSeqRand(0.5))
	f.SetViewport(types.Viewport{Width: 1000, Height: 400})

	p := f.NewPlayer()
	assert.Equal(t, 500.0, p.X)
	assert.Equal(t, 200.0, p.Y)
	assert.Equal(t, types.Viewport{Width: 1000, Height: 400}, f.Viewport())
}

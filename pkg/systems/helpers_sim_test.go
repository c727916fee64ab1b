package systems

import (
	"math/rand"
	"testing"

	"github.com/gonewx/blobshooter/pkg/config"
	"github.com/gonewx/blobshooter/pkg/entities"
	"github.com/gonewx/blobshooter/pkg/types"
	"github.com/stretchr/testify/require"
)

// countingRecorder 记录收到的统计事件
type countingRecorder struct {
	ticks, restarts, spawned, destroyed, fired, hits, damage int
	entities                                                 map[string]int
}

func newCountingRecorder() *countingRecorder {
	return &countingRecorder{entities: make(map[string]int)}
}

func (r *countingRecorder) Tick()                          { r.ticks++ }
func (r *countingRecorder) Restarted()                     { r.restarts++ }
func (r *countingRecorder) EnemySpawned()                  { r.spawned++ }
func (r *countingRecorder) EnemyDestroyed()                { r.destroyed++ }
func (r *countingRecorder) ProjectileFired()               { r.fired++ }
func (r *countingRecorder) ProjectileHit()                 { r.hits++ }
func (r *countingRecorder) PlayerDamaged(n int)            { r.damage += n }
func (r *countingRecorder) SetEntities(kind string, n int) { r.entities[kind] = n }

var testViewport = types.Viewport{Width: 800, Height: 600}

// newTestSimulation 创建不会自动生成敌人的模拟
func newTestSimulation(t *testing.T, recorder Recorder) *Simulation {
	t.Helper()
	tuning := config.DefaultTuning()
	tuning.Spawn.MaxEnemies = 0

	sim, err := NewSimulation(Options{
		Tuning:   tuning,
		Rand:     rand.New(rand.NewSource(1)),
		Viewport: testViewport,
		Recorder: recorder,
		ShowGrid: true,
	})
	require.NoError(t, err)
	return sim
}

// newStaticEnemy 创建不移动的敌人
func newStaticEnemy(sim *Simulation, x, y, radius float64, damage int) *entities.Enemy {
	return entities.NewEnemy(
		sim.ids.Next(), x, y, radius, 20, 0,
		types.HSL{H: 10, S: 50, L: 50},
		entities.Fixed(0), damage,
		sim.Factory().EnemyBurst(),
	)
}

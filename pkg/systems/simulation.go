package systems

import (
	"fmt"
	"log"

	"github.com/gonewx/blobshooter/pkg/config"
	"github.com/gonewx/blobshooter/pkg/ecs"
	"github.com/gonewx/blobshooter/pkg/entities"
	"github.com/gonewx/blobshooter/pkg/metrics"
	"github.com/gonewx/blobshooter/pkg/render"
	"github.com/gonewx/blobshooter/pkg/types"
	"github.com/google/uuid"
)

// Options 模拟的构造参数
type Options struct {
	Tuning   *config.Tuning // 必填
	Rand     entities.Rand  // 必填
	Viewport types.Viewport // 初始摆放使用的视口
	Recorder Recorder       // 可选
	ShowGrid bool
	// OnGridToggled 点阵开关变化时回调（用于持久化设置），可为 nil
	OnGridToggled func(show bool)
}

// Simulation 每帧推进所有实体、结算碰撞并清理死亡实体
//
// 每帧的数据流是单向的：输入 → 玩家状态 → 子弹生成 → 子弹与敌人的碰撞 →
// 敌人/玩家受伤 → 爆炸粒子 → 清理。实体之间互不持有对模拟的引用。
type Simulation struct {
	tuning   *config.Tuning
	ids      *ecs.IDAllocator
	factory  *entities.Factory
	recorder Recorder

	collision *CollisionSystem
	spawn     *SpawnSystem

	background *entities.Background
	player     *entities.Player
	enemies    []*entities.Enemy

	showGrid      bool
	onGridToggled func(show bool)

	runID       uuid.UUID
	ticks       uint64
	playerDowns int
}

// NewSimulation 创建模拟并开始第一局
//
// 返回:
//   - *Simulation: 模拟实例
//   - error: 缺少必填参数或视口尺寸非法时返回错误
func NewSimulation(opts Options) (*Simulation, error) {
	if opts.Tuning == nil {
		return nil, fmt.Errorf("simulation: tuning is required")
	}
	if opts.Rand == nil {
		return nil, fmt.Errorf("simulation: random source is required")
	}
	if opts.Viewport.Width <= 0 || opts.Viewport.Height <= 0 {
		return nil, fmt.Errorf("simulation: invalid viewport %gx%g", opts.Viewport.Width, opts.Viewport.Height)
	}

	recorder := opts.Recorder
	if recorder == nil {
		recorder = nopRecorder{}
	}

	ids := ecs.NewIDAllocator()
	factory, err := entities.NewFactory(ids, opts.Rand, opts.Viewport, opts.Tuning)
	if err != nil {
		return nil, fmt.Errorf("simulation: failed to create entity factory: %w", err)
	}

	s := &Simulation{
		tuning:        opts.Tuning,
		ids:           ids,
		factory:       factory,
		recorder:      recorder,
		collision:     NewCollisionSystem(recorder),
		spawn:         NewSpawnSystem(factory, opts.Rand, opts.Tuning.Spawn, recorder),
		showGrid:      opts.ShowGrid,
		onGridToggled: opts.OnGridToggled,
	}
	s.Reset()
	return s, nil
}

// Reset 开始新的一局：ID 从 0 重新分配，重建背景和玩家，清空敌人
func (s *Simulation) Reset() {
	s.ids.Reset()
	s.background = s.factory.NewBackground()
	s.player = s.factory.NewPlayer()
	s.enemies = nil
	s.spawn.Reset()
	s.ticks = 0
	s.runID = uuid.New()

	v := s.factory.Viewport()
	log.Printf("[Simulation] run %s started: viewport=%gx%g, grid=%v", s.runID, v.Width, v.Height, s.showGrid)
}

// Restart 玩家爆炸结束后重新开始
//
// 返回:
//   - bool: 玩家尚未完全爆炸时返回 false，不做任何改变
func (s *Simulation) Restart() bool {
	if !s.player.Exploded() {
		return false
	}
	s.recorder.Restarted()
	s.Reset()
	return true
}

// SetViewport 更新之后用于摆放实体的视口尺寸
func (s *Simulation) SetViewport(v types.Viewport) {
	s.factory.SetViewport(v)
}

// Tick 推进一帧
// 画布尺寸每帧从 surface 读取，尺寸为 0 时跳过本帧
func (s *Simulation) Tick(surface render.Surface) {
	w, h := surface.Size()
	if w <= 0 || h <= 0 {
		return
	}
	board := types.Board{Width: w, Height: h}

	s.ticks++
	s.recorder.Tick()

	if s.showGrid {
		s.background.Update(surface, board, s.player)
	} else {
		s.background.DrawOverlay(surface, board)
	}

	wasAlive := s.player.Alive()
	s.player.Update(surface, board)

	s.collision.ResolveProjectileHits(s.player, s.enemies)

	for _, enemy := range s.enemies {
		enemy.Update(surface)
	}

	s.collision.ResolveContacts(s.player, s.enemies)
	if wasAlive && !s.player.Alive() {
		s.playerDowns++
		log.Printf("[Simulation] run %s: player destroyed after %d ticks", s.runID, s.ticks)
	}

	s.prune(board)

	if enemy := s.spawn.Update(len(s.enemies), s.player); enemy != nil {
		s.enemies = append(s.enemies, enemy)
	}

	s.publish()
}

// prune 移除爆炸结束的敌人和完全离开画布的存活敌人
func (s *Simulation) prune(board types.Board) {
	kept := s.enemies[:0]
	for _, enemy := range s.enemies {
		if enemy.Exploded() || (enemy.Alive() && enemy.OutOfBoard(board)) {
			continue
		}
		kept = append(kept, enemy)
	}
	for i := len(kept); i < len(s.enemies); i++ {
		s.enemies[i] = nil
	}
	s.enemies = kept
}

func (s *Simulation) publish() {
	particles := len(s.player.Particles())
	for _, enemy := range s.enemies {
		particles += len(enemy.Particles())
	}
	s.recorder.SetEntities(metrics.KindEnemy, len(s.enemies))
	s.recorder.SetEntities(metrics.KindProjectile, len(s.player.Projectiles))
	s.recorder.SetEntities(metrics.KindParticle, particles)
}

// Fire 玩家存活时沿当前朝向发射一颗子弹
//
// 返回:
//   - bool: 是否发射成功
func (s *Simulation) Fire() bool {
	if !s.player.Alive() {
		return false
	}
	s.player.Shot(s.factory.NewProjectile(s.player))
	s.recorder.ProjectileFired()
	return true
}

// AddEnemy 加入一个由外部创建的敌人
func (s *Simulation) AddEnemy(enemy *entities.Enemy) {
	s.enemies = append(s.enemies, enemy)
}

// ToggleGrid 切换背景点阵并通知回调
func (s *Simulation) ToggleGrid() bool {
	s.showGrid = !s.showGrid
	log.Printf("[Simulation] grid %v", s.showGrid)
	if s.onGridToggled != nil {
		s.onGridToggled(s.showGrid)
	}
	return s.showGrid
}

func (s *Simulation) ShowGrid() bool                   { return s.showGrid }
func (s *Simulation) Player() *entities.Player         { return s.player }
func (s *Simulation) Enemies() []*entities.Enemy       { return s.enemies }
func (s *Simulation) Background() *entities.Background { return s.background }
func (s *Simulation) Factory() *entities.Factory       { return s.factory }
func (s *Simulation) RunID() uuid.UUID                 { return s.runID }

// Ticks 本局已推进的帧数
func (s *Simulation) Ticks() uint64 {
	return s.ticks
}

// PlayerDowns 玩家累计被击毁的次数（跨局）
func (s *Simulation) PlayerDowns() int {
	return s.playerDowns
}

package systems

import (
	"github.com/gonewx/blobshooter/pkg/config"
	"github.com/gonewx/blobshooter/pkg/entities"
)

// SpawnSystem 按固定节奏在画布边缘生成敌人
type SpawnSystem struct {
	factory  *entities.Factory
	rng      entities.Rand
	tuning   config.SpawnTuning
	recorder Recorder
	ticks    int
}

// NewSpawnSystem 创建敌人生成系统
func NewSpawnSystem(factory *entities.Factory, rng entities.Rand, tuning config.SpawnTuning, recorder Recorder) *SpawnSystem {
	if recorder == nil {
		recorder = nopRecorder{}
	}
	return &SpawnSystem{
		factory:  factory,
		rng:      rng,
		tuning:   tuning,
		recorder: recorder,
	}
}

// Reset 重新开始计时
func (s *SpawnSystem) Reset() {
	s.ticks = 0
}

// Update 推进一帧；每 IntervalTicks 帧且敌人数少于 MaxEnemies 时生成一个敌人
//
// 以 TrackingChance 的概率生成追踪玩家的敌人（仅当玩家存活），否则固定方向。
//
// 返回:
//   - *entities.Enemy: 新生成的敌人，本帧未生成时为 nil
func (s *SpawnSystem) Update(enemyCount int, player *entities.Player) *entities.Enemy {
	s.ticks++
	if s.ticks%s.tuning.IntervalTicks != 0 {
		return nil
	}
	if enemyCount >= s.tuning.MaxEnemies {
		return nil
	}

	var target *entities.Player
	if s.rng.Float64() < s.tuning.TrackingChance && player != nil && player.Alive() {
		target = player
	}

	enemy := s.factory.NewEnemy(target)
	s.recorder.EnemySpawned()
	return enemy
}

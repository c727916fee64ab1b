package systems

import (
	"github.com/gonewx/blobshooter/pkg/entities"
	"github.com/gonewx/blobshooter/pkg/utils"
)

// CollisionSystem 结算子弹与敌人、敌人与玩家之间的碰撞
//
// 碰撞检测本身是纯查询（Projectile.Shotted），伤害在这里统一结算。
type CollisionSystem struct {
	recorder Recorder
}

// NewCollisionSystem 创建碰撞系统，recorder 为 nil 时不记录统计
func NewCollisionSystem(recorder Recorder) *CollisionSystem {
	if recorder == nil {
		recorder = nopRecorder{}
	}
	return &CollisionSystem{recorder: recorder}
}

// ResolveProjectileHits 结算玩家子弹对敌人的命中
//
// 每颗子弹最多命中一个存活的敌人（按敌人列表顺序），命中后敌人受到
// 子弹伤害、子弹被移除。玩家死亡后其子弹不再参与碰撞。
//
// 返回:
//   - int: 本帧命中次数
func (s *CollisionSystem) ResolveProjectileHits(player *entities.Player, enemies []*entities.Enemy) int {
	if player == nil || !player.Alive() {
		return 0
	}

	hits := 0
	kept := player.Projectiles[:0]
	for _, projectile := range player.Projectiles {
		target := firstHit(projectile, enemies)
		if target == nil {
			kept = append(kept, projectile)
			continue
		}

		target.Hurt(projectile.Damage)
		hits++
		s.recorder.ProjectileHit()
		if !target.Alive() {
			s.recorder.EnemyDestroyed()
		}
	}
	for i := len(kept); i < len(player.Projectiles); i++ {
		player.Projectiles[i] = nil
	}
	player.Projectiles = kept

	return hits
}

func firstHit(projectile *entities.Projectile, enemies []*entities.Enemy) *entities.Enemy {
	for _, enemy := range enemies {
		if enemy.Alive() && projectile.Shotted(enemy) {
			return enemy
		}
	}
	return nil
}

// ResolveContacts 结算敌人与玩家的接触
//
// 玩家按半径 Width/2 的圆处理。每个与玩家重叠的存活敌人每帧造成一次伤害。
//
// 返回:
//   - int: 本帧发生接触的敌人数
func (s *CollisionSystem) ResolveContacts(player *entities.Player, enemies []*entities.Enemy) int {
	if player == nil || !player.Alive() {
		return 0
	}

	contacts := 0
	radius := player.Width / 2
	for _, enemy := range enemies {
		if !enemy.Alive() {
			continue
		}
		if utils.Distance(player.X, player.Y, enemy.X, enemy.Y)-radius-enemy.Radius > 0 {
			continue
		}
		player.Hurt(enemy.Damage)
		contacts++
		s.recorder.PlayerDamaged(enemy.Damage)
	}
	return contacts
}

package systems

// Recorder 接收模拟过程中的统计事件
// *metrics.Collector 满足此接口
type Recorder interface {
	Tick()
	Restarted()
	EnemySpawned()
	EnemyDestroyed()
	ProjectileFired()
	ProjectileHit()
	PlayerDamaged(n int)
	SetEntities(kind string, n int)
}

type nopRecorder struct{}

func (nopRecorder) Tick()                   {}
func (nopRecorder) Restarted()              {}
func (nopRecorder) EnemySpawned()           {}
func (nopRecorder) EnemyDestroyed()         {}
func (nopRecorder) ProjectileFired()        {}
func (nopRecorder) ProjectileHit()          {}
func (nopRecorder) PlayerDamaged(int)       {}
func (nopRecorder) SetEntities(string, int) {}

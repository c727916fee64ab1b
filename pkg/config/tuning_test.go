package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gonewx/blobshooter/pkg/embedded"
	"github.com/gonewx/blobshooter/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTuning(t *testing.T) {
	tuning := DefaultTuning()

	assert.Equal(t, 30.0, tuning.Player.Width)
	assert.Equal(t, 7.0, tuning.Player.MaxSpeed)
	assert.Equal(t, 4.0, tuning.Player.RotateSpeed)
	assert.Equal(t, 0.05, tuning.Player.Friction)
	assert.Equal(t, 0.3, tuning.Player.Acceleration)
	assert.Equal(t, 1.2, tuning.Projectile.SpeedFactor)
	assert.Equal(t, Range{Min: 20, Max: 40}, tuning.Enemy.Radius)
	assert.Equal(t, 20.0, tuning.Enemy.MinRadius)
	assert.Equal(t, 21, tuning.EnemyBurst.Count)
	assert.Nil(t, tuning.EnemyBurst.Color)
	assert.Equal(t, 101, tuning.PlayerBurst.Count)
	require.NotNil(t, tuning.PlayerBurst.Color)
	assert.Equal(t, types.HSL{H: 0, S: 50, L: 50}, *tuning.PlayerBurst.Color)

	require.NoError(t, validateTuning(tuning))
}

func TestDefaultTuningReturnsCopies(t *testing.T) {
	a := DefaultTuning()
	b := DefaultTuning()
	a.PlayerBurst.Color.H = 200

	assert.Equal(t, 0.0, b.PlayerBurst.Color.H)
}

func TestRangeSample(t *testing.T) {
	r := Range{Min: 20, Max: 40}
	assert.Equal(t, 20.0, r.Sample(0))
	assert.Equal(t, 30.0, r.Sample(0.5))
	assert.InDelta(t, 39.98, r.Sample(0.999), 1e-9)
}

// TestEmbeddedTuningMatchesDefaults 嵌入的 data/tuning.yaml 必须与内置默认值一致
func TestEmbeddedTuningMatchesDefaults(t *testing.T) {
	embedded.Init(os.DirFS(filepath.Join("..", "..")))
	t.Cleanup(func() { embedded.Init(nil) })

	tuning, err := LoadDefaultTuning()
	require.NoError(t, err)
	assert.Equal(t, DefaultTuning(), tuning)
}

func TestLoadTuning(t *testing.T) {
	tempDir := t.TempDir()

	t.Run("部分覆盖", func(t *testing.T) {
		content := `
player:
  maxSpeed: 9
spawn:
  intervalTicks: 30
  trackingChance: 1
`
		path := filepath.Join(tempDir, "partial.yaml")
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))

		tuning, err := LoadTuning(path)
		require.NoError(t, err)

		assert.Equal(t, 9.0, tuning.Player.MaxSpeed)
		assert.Equal(t, 30, tuning.Spawn.IntervalTicks)
		assert.Equal(t, 1.0, tuning.Spawn.TrackingChance)
		// 未出现的字段保留默认值
		assert.Equal(t, 30.0, tuning.Player.Width)
		assert.Equal(t, 30, tuning.Spawn.MaxEnemies)
		require.NotNil(t, tuning.PlayerBurst.Color)
	})

	t.Run("文件不存在", func(t *testing.T) {
		_, err := LoadTuning(filepath.Join(tempDir, "nonexistent.yaml"))
		assert.Error(t, err)
	})

	t.Run("无效 YAML 格式", func(t *testing.T) {
		path := filepath.Join(tempDir, "invalid.yaml")
		require.NoError(t, os.WriteFile(path, []byte("player: ["), 0644))

		_, err := LoadTuning(path)
		assert.Error(t, err)
	})
}

func TestParseTuningValidation(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"玩家尺寸为0", "player: {width: 0}"},
		{"负的最大速度", "player: {maxSpeed: -1}"},
		{"子弹半径为0", "projectile: {radius: 0}"},
		{"粒子摩擦系数为1", "particle: {friction: 1}"},
		{"敌人半径区间颠倒", "enemy: {radius: {min: 40, max: 20}}"},
		{"敌人速度区间颠倒", "enemy: {speed: {min: 5, max: 1}}"},
		{"负的最小半径", "enemy: {minRadius: -1}"},
		{"负的爆炸粒子数", "enemyBurst: {count: -1}"},
		{"爆炸摩擦系数过大", "playerBurst: {friction: 1.5}"},
		{"点阵间距为0", "background: {ledSpacing: 0}"},
		{"生成间隔为0", "spawn: {intervalTicks: 0}"},
		{"负的敌人上限", "spawn: {maxEnemies: -1}"},
		{"追踪概率超过1", "spawn: {trackingChance: 1.5}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseTuning([]byte(tt.content))
			assert.Error(t, err)
		})
	}
}

func TestLoadDefaultTuningNotInitialized(t *testing.T) {
	embedded.Init(nil)

	_, err := LoadDefaultTuning()
	assert.Error(t, err)
}

func TestResolveTuning(t *testing.T) {
	embedded.Init(os.DirFS(filepath.Join("..", "..")))
	t.Cleanup(func() { embedded.Init(nil) })

	tempDir := t.TempDir()
	custom := filepath.Join(tempDir, "custom.yaml")
	require.NoError(t, os.WriteFile(custom, []byte("spawn: {maxEnemies: 5}"), 0644))
	broken := filepath.Join(tempDir, "broken.yaml")
	require.NoError(t, os.WriteFile(broken, []byte("spawn: ["), 0644))

	tests := []struct {
		name       string
		flagPath   string
		savedPath  string
		wantSource string
		wantMax    int
		wantErr    bool
	}{
		{"内置参数", "", "", DefaultTuningPath, 30, false},
		{"命令行优先", custom, broken, custom, 5, false},
		{"使用保存的路径", "", custom, custom, 5, false},
		{"保存的路径失效时回退", "", broken, DefaultTuningPath, 30, false},
		{"命令行路径失效", broken, "", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tuning, source, err := ResolveTuning(tt.flagPath, tt.savedPath)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantSource, source)
			assert.Equal(t, tt.wantMax, tuning.Spawn.MaxEnemies)
		})
	}
}

package config

import (
	"fmt"
	"log"
	"os"

	"github.com/gonewx/blobshooter/pkg/embedded"
	"github.com/gonewx/blobshooter/pkg/types"
	"gopkg.in/yaml.v3"
)

// DefaultTuningPath 嵌入的默认参数文件
const DefaultTuningPath = "data/tuning.yaml"

// Range 闭开区间 [Min, Max)
type Range struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// Sample 将 [0, 1) 的随机数映射到区间内
func (r Range) Sample(f float64) float64 {
	return f*(r.Max-r.Min) + r.Min
}

// PlayerTuning 玩家飞船参数
type PlayerTuning struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	MaxSpeed     float64 `yaml:"maxSpeed"`
	RotateSpeed  float64 `yaml:"rotateSpeed"`  // 每次旋转的角度
	Friction     float64 `yaml:"friction"`     // 每帧减速量
	Acceleration float64 `yaml:"acceleration"` // 每帧加速量
	Saturation   float64 `yaml:"saturation"`
	Lightness    float64 `yaml:"lightness"`
}

// ProjectileTuning 子弹参数
type ProjectileTuning struct {
	Radius      float64 `yaml:"radius"`
	SpeedFactor float64 `yaml:"speedFactor"` // 子弹速度 = 玩家最大速度 × SpeedFactor
	Damage      float64 `yaml:"damage"`
}

// ParticleTuning 工厂单独创建粒子时使用的参数
type ParticleTuning struct {
	DirectionMax float64 `yaml:"directionMax"`
	RadiusMax    float64 `yaml:"radiusMax"`
	SpeedMax     float64 `yaml:"speedMax"`
	Friction     float64 `yaml:"friction"`
}

// EnemyTuning 敌人参数
type EnemyTuning struct {
	Radius     Range   `yaml:"radius"`
	MinRadius  float64 `yaml:"minRadius"` // 半径降到此值及以下即死亡
	Speed      Range   `yaml:"speed"`
	Damage     int     `yaml:"damage"` // 接触玩家时每帧造成的伤害
	Saturation float64 `yaml:"saturation"`
	Lightness  float64 `yaml:"lightness"`
}

// BurstTuning 爆炸粒子参数
type BurstTuning struct {
	Count        int        `yaml:"count"`
	RadiusMax    float64    `yaml:"radiusMax"`
	SpeedMax     float64    `yaml:"speedMax"`
	DirectionMax float64    `yaml:"directionMax"`
	Friction     float64    `yaml:"friction"`
	Color        *types.HSL `yaml:"color,omitempty"` // 为空时使用爆炸者自身颜色
}

// BackgroundTuning 背景遮罩与点阵参数
type BackgroundTuning struct {
	Overlay       types.RGBA `yaml:"overlay"`
	LedSaturation Range      `yaml:"ledSaturation"`
	LedLightness  float64    `yaml:"ledLightness"`
	LedSize       float64    `yaml:"ledSize"`
	LedSpacing    float64    `yaml:"ledSpacing"`
}

// SpawnTuning 敌人生成节奏
type SpawnTuning struct {
	IntervalTicks  int     `yaml:"intervalTicks"`
	MaxEnemies     int     `yaml:"maxEnemies"`
	TrackingChance float64 `yaml:"trackingChance"` // 生成追踪型敌人的概率
}

// Tuning 模拟的全部可调参数
type Tuning struct {
	Player      PlayerTuning     `yaml:"player"`
	Projectile  ProjectileTuning `yaml:"projectile"`
	Particle    ParticleTuning   `yaml:"particle"`
	Enemy       EnemyTuning      `yaml:"enemy"`
	EnemyBurst  BurstTuning      `yaml:"enemyBurst"`
	PlayerBurst BurstTuning      `yaml:"playerBurst"`
	Background  BackgroundTuning `yaml:"background"`
	Spawn       SpawnTuning      `yaml:"spawn"`
}

// DefaultTuning 返回内置的默认参数
func DefaultTuning() *Tuning {
	return &Tuning{
		Player: PlayerTuning{
			Width:        30,
			Height:       30,
			MaxSpeed:     7,
			RotateSpeed:  4,
			Friction:     0.05,
			Acceleration: 0.3,
			Saturation:   50,
			Lightness:    50,
		},
		Projectile: ProjectileTuning{
			Radius:      5,
			SpeedFactor: 1.2,
			Damage:      1,
		},
		Particle: ParticleTuning{
			DirectionMax: 5,
			RadiusMax:    5,
			SpeedMax:     360,
			Friction:     0.99,
		},
		Enemy: EnemyTuning{
			Radius:     Range{Min: 20, Max: 40},
			MinRadius:  20,
			Speed:      Range{Min: 1, Max: 5},
			Damage:     1,
			Saturation: 50,
			Lightness:  50,
		},
		EnemyBurst: BurstTuning{
			Count:        21,
			RadiusMax:    5,
			SpeedMax:     20,
			DirectionMax: 360,
			Friction:     0.97,
		},
		PlayerBurst: BurstTuning{
			Count:        101,
			RadiusMax:    5,
			SpeedMax:     20,
			DirectionMax: 360,
			Friction:     0.97,
			Color:        &types.HSL{H: 0, S: 50, L: 50},
		},
		Background: BackgroundTuning{
			Overlay:       types.RGBA{R: 0, G: 0, B: 0, A: 0.2},
			LedSaturation: Range{Min: 30, Max: 80},
			LedLightness:  10,
			LedSize:       2.5,
			LedSpacing:    30,
		},
		Spawn: SpawnTuning{
			IntervalTicks:  60,
			MaxEnemies:     30,
			TrackingChance: 0.5,
		},
	}
}

// LoadTuning 从磁盘上的 YAML 文件加载参数
// 文件中未出现的字段保留默认值
func LoadTuning(path string) (*Tuning, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tuning file %s: %w", path, err)
	}

	tuning, err := ParseTuning(data)
	if err != nil {
		return nil, fmt.Errorf("invalid tuning in %s: %w", path, err)
	}
	return tuning, nil
}

// LoadDefaultTuning 从嵌入的 data/tuning.yaml 加载参数
func LoadDefaultTuning() (*Tuning, error) {
	data, err := embedded.ReadFile(DefaultTuningPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded tuning %s: %w", DefaultTuningPath, err)
	}

	tuning, err := ParseTuning(data)
	if err != nil {
		return nil, fmt.Errorf("invalid embedded tuning %s: %w", DefaultTuningPath, err)
	}
	return tuning, nil
}

// ParseTuning 在默认参数之上解析 YAML 并校验
func ParseTuning(data []byte) (*Tuning, error) {
	tuning := DefaultTuning()
	if err := yaml.Unmarshal(data, tuning); err != nil {
		return nil, fmt.Errorf("failed to parse tuning YAML: %w", err)
	}

	if err := validateTuning(tuning); err != nil {
		return nil, err
	}
	return tuning, nil
}

// validateTuning 验证参数的合法性
func validateTuning(t *Tuning) error {
	if t.Player.Width <= 0 || t.Player.Height <= 0 {
		return fmt.Errorf("player: width and height must be positive, got %gx%g", t.Player.Width, t.Player.Height)
	}
	if t.Player.MaxSpeed < 0 {
		return fmt.Errorf("player: maxSpeed cannot be negative, got %g", t.Player.MaxSpeed)
	}
	if t.Player.Friction < 0 || t.Player.Acceleration < 0 {
		return fmt.Errorf("player: friction and acceleration cannot be negative")
	}

	if t.Projectile.Radius <= 0 {
		return fmt.Errorf("projectile: radius must be positive, got %g", t.Projectile.Radius)
	}

	if t.Particle.Friction < 0 || t.Particle.Friction >= 1 {
		return fmt.Errorf("particle: friction must be in [0, 1), got %g", t.Particle.Friction)
	}

	if err := validateRange("enemy.radius", t.Enemy.Radius); err != nil {
		return err
	}
	if err := validateRange("enemy.speed", t.Enemy.Speed); err != nil {
		return err
	}
	if t.Enemy.MinRadius < 0 {
		return fmt.Errorf("enemy: minRadius cannot be negative, got %g", t.Enemy.MinRadius)
	}

	if err := validateBurst("enemyBurst", t.EnemyBurst); err != nil {
		return err
	}
	if err := validateBurst("playerBurst", t.PlayerBurst); err != nil {
		return err
	}

	if err := validateRange("background.ledSaturation", t.Background.LedSaturation); err != nil {
		return err
	}
	if t.Background.LedSpacing <= 0 {
		return fmt.Errorf("background: ledSpacing must be positive, got %g", t.Background.LedSpacing)
	}

	if t.Spawn.IntervalTicks <= 0 {
		return fmt.Errorf("spawn: intervalTicks must be positive, got %d", t.Spawn.IntervalTicks)
	}
	if t.Spawn.MaxEnemies < 0 {
		return fmt.Errorf("spawn: maxEnemies cannot be negative, got %d", t.Spawn.MaxEnemies)
	}
	if t.Spawn.TrackingChance < 0 || t.Spawn.TrackingChance > 1 {
		return fmt.Errorf("spawn: trackingChance must be in [0, 1], got %g", t.Spawn.TrackingChance)
	}

	return nil
}

func validateRange(name string, r Range) error {
	if r.Min > r.Max {
		return fmt.Errorf("%s: min %g is greater than max %g", name, r.Min, r.Max)
	}
	return nil
}

func validateBurst(name string, b BurstTuning) error {
	if b.Count < 0 {
		return fmt.Errorf("%s: count cannot be negative, got %d", name, b.Count)
	}
	if b.Friction < 0 || b.Friction >= 1 {
		return fmt.Errorf("%s: friction must be in [0, 1), got %g", name, b.Friction)
	}
	return nil
}

// ResolveTuning 按优先级加载参数：命令行指定的文件、设置中保存的文件、内置参数
//
// 参数:
//   - flagPath: 命令行 --config 指定的路径，加载失败直接返回错误
//   - savedPath: 用户设置中保存的路径，加载失败时记录警告并回退到内置参数
//
// 返回:
//   - *Tuning: 加载的参数
//   - string: 参数来源（文件路径或内置路径）
//   - error: 加载失败时返回错误
func ResolveTuning(flagPath, savedPath string) (*Tuning, string, error) {
	if flagPath != "" {
		tuning, err := LoadTuning(flagPath)
		if err != nil {
			return nil, "", err
		}
		return tuning, flagPath, nil
	}

	if savedPath != "" {
		tuning, err := LoadTuning(savedPath)
		if err == nil {
			return tuning, savedPath, nil
		}
		log.Printf("[Config] Warning: saved tuning unusable: %v (falling back to embedded)", err)
	}

	tuning, err := LoadDefaultTuning()
	if err != nil {
		return nil, "", err
	}
	return tuning, DefaultTuningPath, nil
}

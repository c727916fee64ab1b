// Package metrics 以 Prometheus 格式导出模拟的运行统计
package metrics

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "blobshooter"

// 实体类别标签
const (
	KindEnemy      = "enemy"
	KindProjectile = "projectile"
	KindParticle   = "particle"
)

// Collector 持有模拟的全部指标
// 每个实例使用独立的注册表，多次创建不会冲突
type Collector struct {
	registry *prometheus.Registry

	ticks            prometheus.Counter
	restarts         prometheus.Counter
	enemiesSpawned   prometheus.Counter
	enemiesDestroyed prometheus.Counter
	projectilesFired prometheus.Counter
	projectileHits   prometheus.Counter
	playerDamage     prometheus.Counter
	entities         *prometheus.GaugeVec
}

// NewCollector 创建并注册所有指标
func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		ticks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ticks_total",
			Help:      "模拟推进的总帧数。",
		}),
		restarts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "restarts_total",
			Help:      "玩家爆炸后重新开始的次数。",
		}),
		enemiesSpawned: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "enemies_spawned_total",
			Help:      "生成的敌人总数。",
		}),
		enemiesDestroyed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "enemies_destroyed_total",
			Help:      "被击毁（半径降到最小值）的敌人总数。",
		}),
		projectilesFired: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "projectiles_fired_total",
			Help:      "发射的子弹总数。",
		}),
		projectileHits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "projectile_hits_total",
			Help:      "命中敌人的子弹总数。",
		}),
		playerDamage: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "player_damage_total",
			Help:      "玩家受到的伤害总量。",
		}),
		entities: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "entities",
			Help:      "当前帧各类实体的数量。",
		}, []string{"kind"}),
	}

	c.registry.MustRegister(
		c.ticks,
		c.restarts,
		c.enemiesSpawned,
		c.enemiesDestroyed,
		c.projectilesFired,
		c.projectileHits,
		c.playerDamage,
		c.entities,
	)
	return c
}

// Registry 返回指标注册表
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Handler 返回 /metrics 的 HTTP 处理器
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

func (c *Collector) Tick()             { c.ticks.Inc() }
func (c *Collector) Restarted()        { c.restarts.Inc() }
func (c *Collector) EnemySpawned()     { c.enemiesSpawned.Inc() }
func (c *Collector) EnemyDestroyed()   { c.enemiesDestroyed.Inc() }
func (c *Collector) ProjectileFired()  { c.projectilesFired.Inc() }
func (c *Collector) ProjectileHit()    { c.projectileHits.Inc() }
func (c *Collector) PlayerDamaged(n int) {
	if n > 0 {
		c.playerDamage.Add(float64(n))
	}
}

// SetEntities 记录某类实体当前的数量
func (c *Collector) SetEntities(kind string, n int) {
	c.entities.WithLabelValues(kind).Set(float64(n))
}

// Server 指标 HTTP 服务
type Server struct {
	srv *http.Server
	ln  net.Listener
}

// StartHTTP 在 addr（例如 ":2112"）上启动 /metrics 端点
// 端口在返回前绑定，绑定失败直接返回错误；之后在单独的 goroutine 中处理请求
func (c *Collector) StartHTTP(addr string) (*Server, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("failed to listen on %s: %w", addr, err)
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", c.Handler())

	s := &Server{
		srv: &http.Server{
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		},
		ln: ln,
	}

	log.Printf("[Metrics] Prometheus /metrics listening on %s", ln.Addr())
	go func() {
		if err := s.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("[Metrics] HTTP server error: %v", err)
		}
	}()
	return s, nil
}

// Addr 实际监听的地址（addr 端口为 0 时由系统分配）
func (s *Server) Addr() string {
	return s.ln.Addr().String()
}

// Shutdown 停止 HTTP 服务
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}

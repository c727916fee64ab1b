// Package app 提供游戏应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来：加载参数和设置、创建模拟、
// 启动可选的指标端点，并把模拟接入 ebiten 的游戏循环。
package app

import (
	"context"
	"fmt"
	"io"
	"log"
	"math/rand"
	"time"

	"github.com/gonewx/blobshooter/pkg/config"
	"github.com/gonewx/blobshooter/pkg/game"
	"github.com/gonewx/blobshooter/pkg/metrics"
	"github.com/gonewx/blobshooter/pkg/render"
	"github.com/gonewx/blobshooter/pkg/render/ebitensurface"
	"github.com/gonewx/blobshooter/pkg/systems"
	"github.com/gonewx/blobshooter/pkg/types"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// AppName gdata 存储使用的应用名
const AppName = "blobshooter"

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// TuningPath 参数文件路径，为空时使用设置中保存的路径或内置参数
	TuningPath string
	// Seed 随机数种子，为 0 时使用当前时间
	Seed int64
	// MetricsAddr Prometheus 端点地址（如 ":2112"），为空时不启动
	MetricsAddr string
	// Width, Height 初始窗口尺寸
	Width, Height int
}

// App 实现 ebiten.Game 接口
//
// 模拟在 Update 中推进并绘制到 DisplayList，Draw 再把指令回放到屏幕。
// 屏幕不会每帧清空，半透明背景遮罩因此会留下拖影。
type App struct {
	sim      *systems.Simulation
	input    *systems.InputSystem
	settings *game.SettingsManager
	frame    *render.DisplayList

	metricsServer *metrics.Server

	width, height            int
	verbose                  bool
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入数据。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("invalid window size %dx%d", cfg.Width, cfg.Height)
	}

	settings := game.OpenSettingsManager(AppName)

	tuning, source, err := config.ResolveTuning(cfg.TuningPath, settings.GetSettings().TuningPath)
	if err != nil {
		return nil, fmt.Errorf("参数加载失败: %w", err)
	}
	log.Printf("[Config] 加载参数: %s", source)
	if cfg.TuningPath != "" {
		settings.SetTuningPath(cfg.TuningPath)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Printf("[App] Random seed: %d", seed)

	var recorder systems.Recorder
	var metricsServer *metrics.Server
	if cfg.MetricsAddr != "" {
		collector := metrics.NewCollector()
		server, err := collector.StartHTTP(cfg.MetricsAddr)
		if err != nil {
			return nil, fmt.Errorf("指标服务启动失败: %w", err)
		}
		recorder = collector
		metricsServer = server
	}

	sim, err := systems.NewSimulation(systems.Options{
		Tuning:   tuning,
		Rand:     rand.New(rand.NewSource(seed)),
		Viewport: types.Viewport{Width: float64(cfg.Width), Height: float64(cfg.Height)},
		Recorder: recorder,
		ShowGrid: settings.GetSettings().ShowGrid,
		OnGridToggled: func(show bool) {
			settings.SetShowGrid(show)
			if err := settings.Save(); err != nil {
				log.Printf("[App] Warning: %v", err)
			}
		},
	})
	if err != nil {
		return nil, fmt.Errorf("模拟初始化失败: %w", err)
	}

	if settings.GetSettings().Fullscreen {
		ebiten.SetFullscreen(true)
	}

	return &App{
		sim:           sim,
		input:         systems.NewInputSystem(NewKeyboardInput(nil)),
		settings:      settings,
		frame:         render.NewDisplayList(float64(cfg.Width), float64(cfg.Height)),
		metricsServer: metricsServer,
		width:         cfg.Width,
		height:        cfg.Height,
		verbose:       cfg.Verbose,
	}, nil
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(a.width, a.height)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		a.toggleFullscreen()
	}

	a.input.Update(a.sim)
	a.frame.SetSize(float64(a.width), float64(a.height))
	a.sim.Tick(a.frame)
	return nil
}

func (a *App) toggleFullscreen() {
	fullscreen := !ebiten.IsFullscreen()
	ebiten.SetFullscreen(fullscreen)
	if !fullscreen {
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
		log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
	}

	a.settings.SetFullscreen(fullscreen)
	if err := a.settings.Save(); err != nil {
		log.Printf("[App] Warning: %v", err)
	}
}

// Draw 回放本帧记录的绘制指令
func (a *App) Draw(screen *ebiten.Image) {
	a.frame.Replay(ebitensurface.New(screen))
	a.frame.Reset()
}

// Layout 逻辑屏幕尺寸跟随窗口尺寸，之后生成的实体按新尺寸摆放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != a.width || outsideHeight != a.height {
		a.width, a.height = outsideWidth, outsideHeight
		a.sim.SetViewport(types.Viewport{Width: float64(outsideWidth), Height: float64(outsideHeight)})
		log.Printf("[App] Layout changed: %dx%d", outsideWidth, outsideHeight)
	}
	return a.width, a.height
}

// Close 保存设置并停止指标端点
func (a *App) Close() error {
	if err := a.settings.Save(); err != nil {
		return err
	}
	if a.metricsServer == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := a.metricsServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to stop metrics server: %w", err)
	}
	return nil
}

// Simulation 返回当前模拟
func (a *App) Simulation() *systems.Simulation {
	return a.sim
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}

// Package main provides an explosion burst viewer for tuning the particle
// bursts of enemies and the player.
//
// Usage:
//
//	go run ./cmd/bursts [flags]
//
// Flags:
//
//	--config <path>   Tuning YAML file (default: built-in tuning)
//	--burst <kind>    Initial burst kind: enemy or player (default enemy)
//	--seed <n>        Random seed (0 = time based)
//	--verbose         Enable verbose logging
//
// Controls:
//
//	Mouse Click  - Spawn the selected burst at cursor position
//	Space        - Spawn the selected burst at screen center
//	Tab          - Switch between enemy and player burst
//	R            - Clear all active particles
//	P            - Toggle pause
//	Q/Escape     - Quit
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"time"

	"github.com/gonewx/blobshooter/pkg/config"
	"github.com/gonewx/blobshooter/pkg/ecs"
	"github.com/gonewx/blobshooter/pkg/entities"
	"github.com/gonewx/blobshooter/pkg/render"
	"github.com/gonewx/blobshooter/pkg/render/ebitensurface"
	"github.com/gonewx/blobshooter/pkg/types"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	screenWidth  = 1024
	screenHeight = 768
)

var (
	configFlag  = flag.String("config", "", "Tuning YAML file (default: built-in tuning)")
	burstFlag   = flag.String("burst", "enemy", "Initial burst kind: enemy or player")
	seedFlag    = flag.Int64("seed", 0, "Random seed (0 = time based)")
	verboseFlag = flag.Bool("verbose", false, "Enable verbose logging (default off)")
)

var errQuit = errors.New("quit requested")

// BurstViewerGame implements ebiten.Game interface for the burst viewer
type BurstViewerGame struct {
	factory    *entities.Factory
	rng        *rand.Rand
	background *entities.Background
	frame      *render.DisplayList

	playerBurst bool
	paused      bool
	bursts      [][]*entities.Particle
	spawned     int
}

// NewBurstViewerGame creates a new burst viewer instance
func NewBurstViewerGame(tuning *config.Tuning, seed int64, playerBurst bool) (*BurstViewerGame, error) {
	rng := rand.New(rand.NewSource(seed))
	viewport := types.Viewport{Width: screenWidth, Height: screenHeight}

	factory, err := entities.NewFactory(ecs.NewIDAllocator(), rng, viewport, tuning)
	if err != nil {
		return nil, fmt.Errorf("failed to create entity factory: %w", err)
	}

	g := &BurstViewerGame{
		factory:     factory,
		rng:         rng,
		background:  factory.NewBackground(),
		frame:       render.NewDisplayList(screenWidth, screenHeight),
		playerBurst: playerBurst,
	}

	// 启动时在屏幕中心生成一次，避免空白屏幕
	g.spawn(screenWidth/2, screenHeight/2)
	return g, nil
}

func (g *BurstViewerGame) selectedBurst() *entities.Burst {
	if g.playerBurst {
		return g.factory.PlayerBurst()
	}
	return g.factory.EnemyBurst()
}

func (g *BurstViewerGame) burstName() string {
	if g.playerBurst {
		return "player"
	}
	return "enemy"
}

// spawn 在 (x, y) 生成一次爆炸；敌人爆炸使用随机色相
func (g *BurstViewerGame) spawn(x, y float64) {
	owner := types.HSL{H: g.rng.Float64() * 360, S: 50, L: 50}
	particles := g.selectedBurst().Spawn(x, y, owner)
	g.bursts = append(g.bursts, particles)
	g.spawned++
	log.Printf("Spawned %s burst #%d at (%.0f, %.0f): %d particles", g.burstName(), g.spawned, x, y, len(particles))
}

// Update updates the viewer state
func (g *BurstViewerGame) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return errQuit
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.playerBurst = !g.playerBurst
		log.Printf("Selected burst: %s", g.burstName())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.bursts = nil
		log.Printf("Cleared all particles")
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		g.spawn(float64(x), float64(y))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.spawn(screenWidth/2, screenHeight/2)
	}

	if g.paused {
		return nil
	}

	board := types.Board{Width: screenWidth, Height: screenHeight}
	g.background.Update(g.frame, board, nil)

	active := g.bursts[:0]
	for _, particles := range g.bursts {
		particles = entities.StepParticles(g.frame, particles)
		if len(particles) > 0 {
			active = append(active, particles)
		}
	}
	g.bursts = active
	return nil
}

func (g *BurstViewerGame) countActiveParticles() int {
	n := 0
	for _, particles := range g.bursts {
		n += len(particles)
	}
	return n
}

// Draw replays the recorded frame and draws the overlay UI
func (g *BurstViewerGame) Draw(screen *ebiten.Image) {
	g.frame.Replay(ebitensurface.New(screen))
	g.frame.Reset()

	burst := g.selectedBurst()
	lines := []string{
		fmt.Sprintf("Burst Viewer - %s burst (%d particles, speed 0-%g, friction %g)",
			g.burstName(), burst.Count, burst.SpeedMax, burst.Friction),
		fmt.Sprintf("Active Bursts: %d  Active Particles: %d  Spawned: %d",
			len(g.bursts), g.countActiveParticles(), g.spawned),
		"Click/Space = Spawn  Tab = Switch burst  R = Clear  P = Pause  Q = Quit",
	}
	for i, line := range lines {
		ebitenutil.DebugPrintAt(screen, line, 10, 10+i*20)
	}
	if g.paused {
		ebitenutil.DebugPrintAt(screen, "PAUSED (Press P to resume)", screenWidth-200, 10)
	}
}

// Layout returns the viewer's logical screen size
func (g *BurstViewerGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

// parseBurstKind 解析 --burst 参数，返回是否选择玩家爆炸
func parseBurstKind(kind string) (bool, error) {
	switch kind {
	case "enemy":
		return false, nil
	case "player":
		return true, nil
	default:
		return false, fmt.Errorf("unknown burst kind %q (want enemy or player)", kind)
	}
}

func loadTuning(path string) (*config.Tuning, error) {
	if path == "" {
		return config.DefaultTuning(), nil
	}
	return config.LoadTuning(path)
}

func main() {
	flag.Parse()

	// 参数错误在静音之前报告
	playerBurst, err := parseBurstKind(*burstFlag)
	if err != nil {
		log.Fatalf("Invalid --burst: %v", err)
	}

	// 默认静音运行；如需详细调试，传入 --verbose
	if !*verboseFlag {
		log.SetOutput(io.Discard)
	}

	log.Println("=== Blob Shooter Burst Viewer ===")

	tuning, err := loadTuning(*configFlag)
	if err != nil {
		log.Fatal("Failed to load tuning:", err)
	}

	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	game, err := NewBurstViewerGame(tuning, seed, playerBurst)
	if err != nil {
		log.Fatal("Failed to initialize viewer:", err)
	}

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("Blob Shooter Burst Viewer")
	ebiten.SetScreenClearedEveryFrame(false)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, errQuit) {
		log.Fatal(err)
	}

	log.Println("Burst viewer closed")
}

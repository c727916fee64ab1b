package main

import (
	"flag"
	"log"
	"os"

	"github.com/gonewx/blobshooter/pkg/app"
	"github.com/gonewx/blobshooter/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	verboseFlag     = flag.Bool("verbose", false, "Enable verbose logging (default off)")
	configFlag      = flag.String("config", "", "Path to a tuning YAML file (default: embedded data/tuning.yaml)")
	seedFlag        = flag.Int64("seed", 0, "Random seed (0 = time based)")
	metricsAddrFlag = flag.String("metrics-addr", "", "Serve Prometheus metrics on this address, e.g. :2112")
	widthFlag       = flag.Int("width", 800, "Initial window width")
	heightFlag      = flag.Int("height", 600, "Initial window height")
)

func main() {
	flag.Parse()

	// 初始化嵌入数据（dataFS 在 embed.go 中声明）
	embedded.Init(dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:     *verboseFlag,
		TuningPath:  *configFlag,
		Seed:        *seedFlag,
		MetricsAddr: *metricsAddrFlag,
		Width:       *widthFlag,
		Height:      *heightFlag,
	})
	if err != nil {
		// NewApp 可能已经关闭了日志输出
		log.SetOutput(os.Stderr)
		log.Fatalf("游戏初始化失败: %v", err)
	}

	ebiten.SetWindowSize(*widthFlag, *heightFlag)
	ebiten.SetWindowTitle("Blob Shooter")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetScreenClearedEveryFrame(false)

	runErr := ebiten.RunGame(gameApp)
	if err := gameApp.Close(); err != nil {
		log.Printf("[App] Warning: %v", err)
	}
	if runErr != nil {
		log.Fatal(runErr)
	}
}

package entities

import (
	"math"

	"github.com/gonewx/blobshooter/pkg/render"
	"github.com/gonewx/blobshooter/pkg/types"
	"github.com/gonewx/blobshooter/pkg/utils"
)

// LedGrid 背景点阵的描述
type LedGrid struct {
	Color        types.HSL
	Size         float64
	SpaceBetween float64
}

// Background 半透明遮罩 + 会避让玩家的背景点阵
// 遮罩不完全覆盖上一帧，因此移动物体会留下拖影
type Background struct {
	Color types.RGBA
	Led   LedGrid
}

// NewBackground 创建背景
func NewBackground(color types.RGBA, led LedGrid) *Background {
	return &Background{Color: color, Led: led}
}

// Update 绘制遮罩和点阵；player 为 nil 或已死亡时点阵不做避让
func (b *Background) Update(surface render.Surface, board types.Board, player *Player) {
	b.DrawOverlay(surface, board)
	b.DrawLeds(surface, board, player)
}

// DrawOverlay 只绘制半透明遮罩（关闭点阵时使用）
func (b *Background) DrawOverlay(surface render.Surface, board types.Board) {
	surface.Save()
	surface.BeginPath()
	surface.SetFillColor(b.Color)
	surface.FillRect(0, 0, board.Width, board.Height)
	surface.Restore()
}

// DrawLeds 绘制点阵
func (b *Background) DrawLeds(surface render.Surface, board types.Board, player *Player) {
	spacing := b.Led.SpaceBetween
	if spacing <= 0 {
		return
	}
	xCount := board.Width / spacing
	yCount := board.Height / spacing

	for xi := 1; float64(xi) < xCount; xi++ {
		for yi := 1; float64(yi) < yCount; yi++ {
			x := float64(xi) * spacing
			y := float64(yi) * spacing
			size := b.Led.Size
			lightness := b.Led.Color.L

			if player != nil && player.Alive() {
				dist := utils.Distance(player.X, player.Y, x, y)

				// 玩家附近的点不绘制
				if dist < spacing*2 {
					continue
				}

				// 稍远的点被推开并变亮
				if dist < spacing*5 {
					angle := math.Atan2(y-player.Y, x-player.X)
					multiplier := spacing * (spacing / dist)
					x += math.Cos(angle) * multiplier * 6
					y += math.Sin(angle) * multiplier * 6
					lightness += multiplier * 0.5
					size += multiplier * 0.08
				}
			}

			surface.Save()
			surface.BeginPath()
			surface.Arc(x, y, size, 0, 2*math.Pi)
			surface.SetFillColor(b.Led.Color.WithLightness(lightness))
			surface.Fill()
			surface.Restore()
		}
	}
}

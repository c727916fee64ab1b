// Package render 定义实体绘制所需的渲染能力
//
// 实体在每帧的 Update 中通过 Surface 绘制自身。Surface 是有状态的：
// 修改变换、填充色或透明度的实体必须用 Save()/Restore() 包裹绘制，
// 以免影响同一帧中其他实体的绘制。
//
// 实现：
//   - DisplayList：记录绘制指令，可回放到其他 Surface（也用于测试）
//   - ebitensurface.Surface：基于 ebiten 的 vector 路径绘制到 *ebiten.Image（单独的包）
package render

import "image/color"

// Surface 类画布的渲染能力
// 角度单位为弧度
type Surface interface {
	// Save 压入当前状态（变换、填充色、透明度）
	Save()
	// Restore 弹出最近一次 Save 的状态
	Restore()

	BeginPath()
	Arc(x, y, radius, startAngle, endAngle float64)
	MoveTo(x, y float64)
	LineTo(x, y float64)
	ClosePath()

	SetFillColor(c color.Color)
	SetGlobalAlpha(alpha float64)
	// Fill 使用当前填充色和透明度填充当前路径
	Fill()
	// FillRect 直接填充矩形，不影响当前路径
	FillRect(x, y, width, height float64)

	Translate(x, y float64)
	Rotate(angle float64)

	// Size 返回画布尺寸，作为每帧的权威边界
	Size() (width, height float64)
}

// Package types 定义共享的基础类型
// 这个包不依赖任何其他业务包，用于解决循环引用问题
package types

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// HSL 色相/饱和度/亮度颜色
// H 取值 0-360，S 与 L 为百分比（0-100）
type HSL struct {
	H float64 `yaml:"h"`
	S float64 `yaml:"s"`
	L float64 `yaml:"l"`
}

// RGBA 实现 color.Color 接口，供渲染后端使用
func (c HSL) RGBA() (r, g, b, a uint32) {
	return colorful.Hsl(c.H, c.S/100, c.L/100).Clamped().RGBA()
}

// String 返回 CSS 格式的颜色字符串，例如 "hsl(120, 50%, 50%)"
func (c HSL) String() string {
	return fmt.Sprintf("hsl(%g, %g%%, %g%%)", c.H, c.S, c.L)
}

// WithLightness 返回只修改亮度的副本
func (c HSL) WithLightness(l float64) HSL {
	c.L = l
	return c
}

// RGBA 红/绿/蓝通道加透明度
// A 取值 0-1
type RGBA struct {
	R uint8   `yaml:"r"`
	G uint8   `yaml:"g"`
	B uint8   `yaml:"b"`
	A float64 `yaml:"a"`
}

// RGBA 实现 color.Color 接口
func (c RGBA) RGBA() (r, g, b, a uint32) {
	alpha := c.A
	if alpha < 0 {
		alpha = 0
	} else if alpha > 1 {
		alpha = 1
	}
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(alpha*255 + 0.5)}.RGBA()
}

// String 返回 CSS 格式的颜色字符串，例如 "rgba(0, 0, 0, 0.2)"
func (c RGBA) String() string {
	return fmt.Sprintf("rgba(%d, %d, %d, %g)", c.R, c.G, c.B, c.A)
}

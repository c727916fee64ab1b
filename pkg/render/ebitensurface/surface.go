// Package ebitensurface 将 render.Surface 绘制到 *ebiten.Image
//
// 与 render 包分开，模拟核心及其测试不依赖 ebiten。
package ebitensurface

import (
	"image"
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	whiteSubImage     *ebiten.Image
	whiteSubImageOnce sync.Once
)

// 三角形填充使用的 1x1 白色纹理
func whiteTexture() *ebiten.Image {
	whiteSubImageOnce.Do(func() {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteSubImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	})
	return whiteSubImage
}

type surfaceState struct {
	geom     ebiten.GeoM
	rotation float64
	fill     color.Color
	alpha    float64
}

// Surface 将 render.Surface 调用绘制到 *ebiten.Image
//
// 只支持平移和旋转（刚体变换），因此圆弧半径不需要缩放，
// 旋转量直接叠加到圆弧的起止角度上。
type Surface struct {
	dst   *ebiten.Image
	state surfaceState
	stack []surfaceState
	path  vector.Path

	vertices []ebiten.Vertex
	indices  []uint16
}

// New 创建绘制到 dst 的 Surface
func New(dst *ebiten.Image) *Surface {
	return &Surface{
		dst: dst,
		state: surfaceState{
			fill:  color.Black,
			alpha: 1,
		},
	}
}

func (s *Surface) Save() {
	s.stack = append(s.stack, s.state)
}

func (s *Surface) Restore() {
	if len(s.stack) == 0 {
		return
	}
	s.state = s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
}

func (s *Surface) BeginPath() {
	s.path = vector.Path{}
}

func (s *Surface) Arc(x, y, radius, startAngle, endAngle float64) {
	cx, cy := s.state.geom.Apply(x, y)
	rot := s.state.rotation
	s.path.Arc(float32(cx), float32(cy), float32(radius), float32(startAngle+rot), float32(endAngle+rot), vector.Clockwise)
}

func (s *Surface) MoveTo(x, y float64) {
	px, py := s.state.geom.Apply(x, y)
	s.path.MoveTo(float32(px), float32(py))
}

func (s *Surface) LineTo(x, y float64) {
	px, py := s.state.geom.Apply(x, y)
	s.path.LineTo(float32(px), float32(py))
}

func (s *Surface) ClosePath() {
	s.path.Close()
}

func (s *Surface) SetFillColor(c color.Color) {
	s.state.fill = c
}

func (s *Surface) SetGlobalAlpha(alpha float64) {
	s.state.alpha = alpha
}

func (s *Surface) Fill() {
	s.fillPath(&s.path)
}

func (s *Surface) FillRect(x, y, width, height float64) {
	var p vector.Path
	corners := [4][2]float64{{x, y}, {x + width, y}, {x + width, y + height}, {x, y + height}}
	for i, c := range corners {
		px, py := s.state.geom.Apply(c[0], c[1])
		if i == 0 {
			p.MoveTo(float32(px), float32(py))
		} else {
			p.LineTo(float32(px), float32(py))
		}
	}
	p.Close()
	s.fillPath(&p)
}

func (s *Surface) Translate(x, y float64) {
	var t ebiten.GeoM
	t.Translate(x, y)
	t.Concat(s.state.geom)
	s.state.geom = t
}

func (s *Surface) Rotate(angle float64) {
	var t ebiten.GeoM
	t.Rotate(angle)
	t.Concat(s.state.geom)
	s.state.geom = t
	s.state.rotation += angle
}

func (s *Surface) Size() (width, height float64) {
	b := s.dst.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

func (s *Surface) fillPath(p *vector.Path) {
	r, g, b, a := straightColor(s.state.fill, s.state.alpha)
	if a <= 0 {
		return
	}

	vs, is := p.AppendVerticesAndIndicesForFilling(s.vertices[:0], s.indices[:0])
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = r
		vs[i].ColorG = g
		vs[i].ColorB = b
		vs[i].ColorA = a
	}

	op := &ebiten.DrawTrianglesOptions{}
	op.AntiAlias = true
	s.dst.DrawTriangles(vs, is, whiteTexture(), op)

	s.vertices, s.indices = vs, is
}

// straightColor 将预乘的 color.Color 转为非预乘的顶点颜色，并乘上全局透明度
func straightColor(c color.Color, alpha float64) (r, g, b, a float32) {
	if c == nil {
		return 0, 0, 0, 0
	}
	cr, cg, cb, ca := c.RGBA()
	if ca == 0 {
		return 0, 0, 0, 0
	}
	if alpha < 0 {
		alpha = 0
	} else if alpha > 1 {
		alpha = 1
	}
	r = float32(cr) / float32(ca)
	g = float32(cg) / float32(ca)
	b = float32(cb) / float32(ca)
	a = float32(ca) / 0xffff * float32(alpha)
	return r, g, b, a
}

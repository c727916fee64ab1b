package types

// Board 模拟区域（画布）的尺寸，单位为像素
// 每一帧从渲染表面读取，作为越界判断和环绕的权威边界
type Board struct {
	Width  float64
	Height float64
}

// Center 返回区域中心点
func (b Board) Center() (x, y float64) {
	return b.Width / 2, b.Height / 2
}

// Viewport 视口尺寸，用于玩家和敌人的初始摆放
// 由应用层注入，不读取全局窗口状态
type Viewport struct {
	Width  float64
	Height float64
}

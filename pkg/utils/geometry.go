// Package utils 提供模拟中常用的几何工具函数
package utils

import "math"

// OutOfBounds 判断以 (x, y) 为中心、半宽 halfWidth、半高 halfHeight 的包围盒
// 是否完全位于 [0, boardWidth] × [0, boardHeight] 区域之外
//
// 敌人和子弹的出界检测都使用此函数（以半径作为半宽和半高）
func OutOfBounds(x, y, halfWidth, halfHeight, boardWidth, boardHeight float64) bool {
	return x+halfWidth < 0 ||
		x-halfWidth > boardWidth ||
		y+halfHeight < 0 ||
		y-halfHeight > boardHeight
}

// Wrap 将坐标环绕到 [0, dimension) 区间
// 计算方式为 (coord + 2*dimension) mod dimension，
// 因此只能修正不超过两倍尺寸的越界；dimension 为 0 时结果为 NaN，调用者需保证尺寸非零
func Wrap(coord, dimension float64) float64 {
	return math.Mod(coord+dimension*2, dimension)
}

// DegToRad 角度转弧度
func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// Distance 两点之间的欧氏距离
func Distance(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x1-x2, y1-y2)
}

// Velocity 返回沿 angle（弧度）方向、大小为 speed 的速度分量
func Velocity(angle, speed float64) (vx, vy float64) {
	return math.Cos(angle) * speed, math.Sin(angle) * speed
}

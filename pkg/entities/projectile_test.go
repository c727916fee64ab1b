package entities

import (
	"testing"

	"github.com/gonewx/blobshooter/pkg/render"
	"github.com/stretchr/testify/assert"
)

func TestProjectileUpdate(t *testing.T) {
	dl := render.NewDisplayList(800, 600)
	p := NewProjectile(1, 100, 100, 5, 10, testColor, 90, 1)

	p.Update(dl)

	assert.Equal(t, 1, dl.Count(render.OpArc))
	assert.Equal(t, 1, dl.Count(render.OpFill))
	assert.True(t, dl.Balanced())
	assert.InDelta(t, 100, p.X, 1e-9)
	assert.InDelta(t, 110, p.Y, 1e-9)
	assert.Equal(t, 90.0, p.DirectionAngle, "方向在飞行中不变")
}

func TestProjectileOutOfBoard(t *testing.T) {
	tests := []struct {
		name     string
		x, y     float64
		expected bool
	}{
		{"画布中央", 400, 300, false},
		{"左侧部分可见", -4, 300, false},
		{"左侧完全离开", -6, 300, true},
		{"右侧完全离开", 806, 300, true},
		{"上方完全离开", 400, -6, true},
		{"下方完全离开", 400, 606, true},
		{"右下角仍相交", 804, 604, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewProjectile(0, tt.x, tt.y, 5, 1, testColor, 0, 1)
			assert.Equal(t, tt.expected, p.OutOfBoard(testBoard))
		})
	}
}

func TestProjectileShotted(t *testing.T) {
	p := NewProjectile(0, 0, 0, 5, 1, testColor, 0, 1)

	tests := []struct {
		name     string
		x        float64
		radius   float64
		expected bool
	}{
		{"重叠", 20, 25, true},
		{"恰好相切", 30, 25, true},
		{"相离", 31, 25, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			enemy := NewEnemy(1, tt.x, 0, tt.radius, 20, 1, testColor, Fixed(0), 1, nil)
			assert.Equal(t, tt.expected, p.Shotted(enemy))
		})
	}
}

package types

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHSLString(t *testing.T) {
	assert.Equal(t, "hsl(0, 50%, 50%)", HSL{H: 0, S: 50, L: 50}.String())
	assert.Equal(t, "hsl(120.5, 30%, 10%)", HSL{H: 120.5, S: 30, L: 10}.String())
}

func TestHSLRGBA(t *testing.T) {
	tests := []struct {
		name string
		hsl  HSL
		want color.NRGBA
	}{
		{"红色", HSL{H: 0, S: 100, L: 50}, color.NRGBA{R: 255, G: 0, B: 0, A: 255}},
		{"绿色", HSL{H: 120, S: 100, L: 50}, color.NRGBA{R: 0, G: 255, B: 0, A: 255}},
		{"黑色", HSL{H: 200, S: 50, L: 0}, color.NRGBA{R: 0, G: 0, B: 0, A: 255}},
		{"白色", HSL{H: 0, S: 0, L: 100}, color.NRGBA{R: 255, G: 255, B: 255, A: 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := color.NRGBAModel.Convert(tt.hsl).(color.NRGBA)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHSLWithLightness(t *testing.T) {
	c := HSL{H: 10, S: 20, L: 30}
	d := c.WithLightness(70)

	assert.Equal(t, 30.0, c.L, "original should not change")
	assert.Equal(t, HSL{H: 10, S: 20, L: 70}, d)
}

func TestRGBA(t *testing.T) {
	c := RGBA{R: 0, G: 0, B: 0, A: 0.2}
	assert.Equal(t, "rgba(0, 0, 0, 0.2)", c.String())

	got := color.NRGBAModel.Convert(c).(color.NRGBA)
	assert.Equal(t, uint8(51), got.A)

	// 超出范围的透明度会被截断
	opaque := color.NRGBAModel.Convert(RGBA{R: 10, A: 3}).(color.NRGBA)
	assert.Equal(t, color.NRGBA{R: 10, A: 255}, opaque)
}

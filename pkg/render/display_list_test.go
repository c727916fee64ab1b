package render

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisplayListRecordsOps(t *testing.T) {
	d := NewDisplayList(800, 600)

	d.Save()
	d.BeginPath()
	d.Arc(10, 20, 5, 0, 6.28)
	d.SetFillColor(color.White)
	d.SetGlobalAlpha(0.5)
	d.Fill()
	d.Restore()

	ops := d.Ops()
	require.Len(t, ops, 7)
	assert.Equal(t, OpSave, ops[0].Kind)
	assert.Equal(t, OpArc, ops[2].Kind)
	assert.Equal(t, [5]float64{10, 20, 5, 0, 6.28}, ops[2].Args)
	assert.Equal(t, color.White, ops[3].Color)
	assert.Equal(t, 0.5, ops[4].Args[0])
	assert.Equal(t, 1, d.Count(OpFill))
	assert.True(t, d.Balanced())
	assert.Equal(t, 1, d.MaxDepth())
}

func TestDisplayListBalance(t *testing.T) {
	t.Run("未恢复的Save", func(t *testing.T) {
		d := NewDisplayList(10, 10)
		d.Save()
		assert.Equal(t, 1, d.Depth())
		assert.False(t, d.Balanced())
	})

	t.Run("多余的Restore", func(t *testing.T) {
		d := NewDisplayList(10, 10)
		d.Restore()
		d.Save()
		assert.Equal(t, 1, d.Depth())
		d.Restore()
		assert.Equal(t, 0, d.Depth())
		assert.False(t, d.Balanced(), "a stray Restore must be reported")
	})
}

func TestDisplayListReset(t *testing.T) {
	d := NewDisplayList(800, 600)
	d.Save()
	d.Fill()
	d.Reset()

	assert.Empty(t, d.Ops())
	assert.True(t, d.Balanced())

	w, h := d.Size()
	assert.Equal(t, 800.0, w)
	assert.Equal(t, 600.0, h)
}

func TestDisplayListSetSize(t *testing.T) {
	d := NewDisplayList(800, 600)
	d.SetSize(1024, 768)
	w, h := d.Size()
	assert.Equal(t, 1024.0, w)
	assert.Equal(t, 768.0, h)
}

func TestDisplayListReplay(t *testing.T) {
	src := NewDisplayList(100, 100)
	src.Save()
	src.Translate(5, 6)
	src.Rotate(1.5)
	src.BeginPath()
	src.MoveTo(1, 2)
	src.LineTo(3, 4)
	src.ClosePath()
	src.SetFillColor(color.Black)
	src.Fill()
	src.FillRect(0, 0, 100, 100)
	src.Restore()

	dst := NewDisplayList(100, 100)
	src.Replay(dst)

	assert.Equal(t, src.Ops(), dst.Ops())
	assert.True(t, dst.Balanced())
}

func TestOpKindString(t *testing.T) {
	assert.Equal(t, "arc", OpArc.String())
	assert.Equal(t, "fillRect", OpFillRect.String())
	assert.Equal(t, "unknown", OpKind(99).String())
}

package entities

import (
	"testing"

	"github.com/gonewx/blobshooter/pkg/config"
	"github.com/gonewx/blobshooter/pkg/ecs"
	"github.com/gonewx/blobshooter/pkg/types"
	"github.com/stretchr/testify/require"
)

// seqRand 依次循环返回预设的随机数
type seqRand struct {
	values []float64
	calls  int
}

func newSeqRand(values ...float64) *seqRand {
	return &seqRand{values: values}
}

func (r *seqRand) Float64() float64 {
	v := r.values[r.calls%len(r.values)]
	r.calls++
	return v
}

var testBoard = types.Board{Width: 800, Height: 600}

var testColor = types.HSL{H: 120, S: 50, L: 50}

func newTestBurst(count int, rng Rand) *Burst {
	return &Burst{
		Count:        count,
		RadiusMax:    5,
		SpeedMax:     20,
		DirectionMax: 360,
		Friction:     0.5,
		Rand:         rng,
	}
}

func newTestPlayer() *Player {
	return NewPlayer(0, 400, 300, 30, 30, testColor, 7, 4, 0.05, 0.3, newTestBurst(101, newSeqRand(0.5)))
}

func newTestFactory(t *testing.T, rng Rand) *Factory {
	t.Helper()
	f, err := NewFactory(ecs.NewIDAllocator(), rng, types.Viewport{Width: 800, Height: 600}, config.DefaultTuning())
	require.NoError(t, err)
	return f
}

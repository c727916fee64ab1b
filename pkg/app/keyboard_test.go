package app

import (
	"testing"

	"github.com/gonewx/blobshooter/pkg/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
)

var _ systems.InputSource = (*KeyboardInput)(nil)

// TestDefaultKeyBindings 每个操作至少绑定一个按键，且按键不重复
func TestDefaultKeyBindings(t *testing.T) {
	actions := []systems.Action{
		systems.ActionThrust,
		systems.ActionRotateLeft,
		systems.ActionRotateRight,
		systems.ActionFire,
		systems.ActionRestart,
		systems.ActionToggleGrid,
	}

	seen := make(map[ebiten.Key]systems.Action)
	for _, action := range actions {
		keys := DefaultKeyBindings[action]
		assert.NotEmpty(t, keys, "action %s has no key", action)
		for _, key := range keys {
			if other, ok := seen[key]; ok {
				t.Errorf("key %v bound to both %s and %s", key, other, action)
			}
			seen[key] = action
		}
	}
}

func TestNewKeyboardInputDefaults(t *testing.T) {
	k := NewKeyboardInput(nil)
	assert.Equal(t, DefaultKeyBindings, k.bindings)

	custom := map[systems.Action][]ebiten.Key{systems.ActionFire: {ebiten.KeyF}}
	assert.Equal(t, custom, NewKeyboardInput(custom).bindings)
}

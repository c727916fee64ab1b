package app

import (
	"github.com/gonewx/blobshooter/pkg/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// DefaultKeyBindings 默认按键映射
var DefaultKeyBindings = map[systems.Action][]ebiten.Key{
	systems.ActionThrust:      {ebiten.KeyArrowUp, ebiten.KeyW},
	systems.ActionRotateLeft:  {ebiten.KeyArrowLeft, ebiten.KeyA},
	systems.ActionRotateRight: {ebiten.KeyArrowRight, ebiten.KeyD},
	systems.ActionFire:        {ebiten.KeySpace},
	systems.ActionRestart:     {ebiten.KeyR, ebiten.KeyEnter},
	systems.ActionToggleGrid:  {ebiten.KeyG},
}

// KeyboardInput 基于 ebiten 键盘状态的输入来源
type KeyboardInput struct {
	bindings map[systems.Action][]ebiten.Key
}

// NewKeyboardInput 创建键盘输入，bindings 为 nil 时使用默认映射
func NewKeyboardInput(bindings map[systems.Action][]ebiten.Key) *KeyboardInput {
	if bindings == nil {
		bindings = DefaultKeyBindings
	}
	return &KeyboardInput{bindings: bindings}
}

// Pressed 任一绑定按键被按住
func (k *KeyboardInput) Pressed(action systems.Action) bool {
	for _, key := range k.bindings[action] {
		if ebiten.IsKeyPressed(key) {
			return true
		}
	}
	return false
}

// JustPressed 任一绑定按键在本帧被按下
func (k *KeyboardInput) JustPressed(action systems.Action) bool {
	for _, key := range k.bindings[action] {
		if inpututil.IsKeyJustPressed(key) {
			return true
		}
	}
	return false
}

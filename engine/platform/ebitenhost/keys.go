package ebitenhost

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hubastard/sprig/engine/core"
)

var ebitenKeys = map[ebiten.Key]core.Key{
	ebiten.KeyA:           core.KeyA,
	ebiten.KeyB:           core.KeyB,
	ebiten.KeyC:           core.KeyC,
	ebiten.KeyD:           core.KeyD,
	ebiten.KeyE:           core.KeyE,
	ebiten.KeyF:           core.KeyF,
	ebiten.KeyG:           core.KeyG,
	ebiten.KeyH:           core.KeyH,
	ebiten.KeyI:           core.KeyI,
	ebiten.KeyJ:           core.KeyJ,
	ebiten.KeyK:           core.KeyK,
	ebiten.KeyL:           core.KeyL,
	ebiten.KeyM:           core.KeyM,
	ebiten.KeyN:           core.KeyN,
	ebiten.KeyO:           core.KeyO,
	ebiten.KeyP:           core.KeyP,
	ebiten.KeyQ:           core.KeyQ,
	ebiten.KeyR:           core.KeyR,
	ebiten.KeyS:           core.KeyS,
	ebiten.KeyT:           core.KeyT,
	ebiten.KeyU:           core.KeyU,
	ebiten.KeyV:           core.KeyV,
	ebiten.KeyW:           core.KeyW,
	ebiten.KeyX:           core.KeyX,
	ebiten.KeyY:           core.KeyY,
	ebiten.KeyZ:           core.KeyZ,
	ebiten.KeyDigit0:      core.Key0,
	ebiten.KeyDigit1:      core.Key1,
	ebiten.KeyDigit2:      core.Key2,
	ebiten.KeyDigit3:      core.Key3,
	ebiten.KeyDigit4:      core.Key4,
	ebiten.KeyDigit5:      core.Key5,
	ebiten.KeyDigit6:      core.Key6,
	ebiten.KeyDigit7:      core.Key7,
	ebiten.KeyDigit8:      core.Key8,
	ebiten.KeyDigit9:      core.Key9,
	ebiten.KeyArrowUp:     core.KeyUp,
	ebiten.KeyArrowDown:   core.KeyDown,
	ebiten.KeyArrowLeft:   core.KeyLeft,
	ebiten.KeyArrowRight:  core.KeyRight,
	ebiten.KeyEscape:      core.KeyEscape,
	ebiten.KeySpace:       core.KeySpace,
	ebiten.KeyEnter:       core.KeyEnter,
	ebiten.KeyNumpadEnter: core.KeyEnter,
	ebiten.KeyBackspace:   core.KeyBackspace,
	ebiten.KeyTab:         core.KeyTab,
}

func translateKey(k ebiten.Key) core.Key {
	if ck, ok := ebitenKeys[k]; ok {
		return ck
	}
	return core.KeyUnhandled
}

var ebitenButtons = [...]struct {
	eb  ebiten.MouseButton
	btn core.Button
}{
	{ebiten.MouseButtonLeft, core.Button1},
	{ebiten.MouseButtonRight, core.Button2},
	{ebiten.MouseButtonMiddle, core.Button3},
}

func translateMods() core.Mod {
	var m core.Mod
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		m |= core.ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) {
		m |= core.ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) {
		m |= core.ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) {
		m |= core.ModSuper
	}
	return m
}

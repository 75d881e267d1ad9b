package platform

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/hubastard/sprig/engine/core"
)

var glfwKeys = map[glfw.Key]core.Key{
	glfw.KeyUp:        core.KeyUp,
	glfw.KeyDown:      core.KeyDown,
	glfw.KeyLeft:      core.KeyLeft,
	glfw.KeyRight:     core.KeyRight,
	glfw.KeyEscape:    core.KeyEscape,
	glfw.KeySpace:     core.KeySpace,
	glfw.KeyEnter:     core.KeyEnter,
	glfw.KeyKPEnter:   core.KeyEnter,
	glfw.KeyBackspace: core.KeyBackspace,
	glfw.KeyTab:       core.KeyTab,
}

// translateKey maps a GLFW key to the engine key set. Letters and digits are
// contiguous in both.
func translateKey(k glfw.Key) core.Key {
	switch {
	case k >= glfw.KeyA && k <= glfw.KeyZ:
		return core.KeyA + core.Key(k-glfw.KeyA)
	case k >= glfw.Key0 && k <= glfw.Key9:
		return core.Key0 + core.Key(k-glfw.Key0)
	}
	if ck, ok := glfwKeys[k]; ok {
		return ck
	}
	return core.KeyUnhandled
}

func translateButton(b glfw.MouseButton) core.Button {
	switch b {
	case glfw.MouseButtonLeft:
		return core.Button1
	case glfw.MouseButtonRight:
		return core.Button2
	case glfw.MouseButtonMiddle:
		return core.Button3
	default:
		return core.ButtonUnhandled
	}
}

func translateMods(m glfw.ModifierKey) core.Mod {
	var out core.Mod
	if m&glfw.ModShift != 0 {
		out |= core.ModShift
	}
	if m&glfw.ModControl != 0 {
		out |= core.ModCtrl
	}
	if m&glfw.ModAlt != 0 {
		out |= core.ModAlt
	}
	if m&glfw.ModSuper != 0 {
		out |= core.ModSuper
	}
	return out
}

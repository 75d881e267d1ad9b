package core

// Key/button enums. Platforms translate their native codes into these; anything
// without a mapping arrives as KeyUnhandled / ButtonUnhandled.
type Key int

const (
	KeyUnhandled Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEscape
	KeySpace
	KeyEnter
	KeyBackspace
	KeyTab
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	keyCount
)

var keyNames = [...]string{
	KeyUnhandled: "Unhandled",
	KeyUp:        "Up",
	KeyDown:      "Down",
	KeyLeft:      "Left",
	KeyRight:     "Right",
	KeyEscape:    "Escape",
	KeySpace:     "Space",
	KeyEnter:     "Enter",
	KeyBackspace: "Backspace",
	KeyTab:       "Tab",
}

func (k Key) String() string {
	switch {
	case k >= KeyA && k <= KeyZ:
		return string(rune('A' + int(k-KeyA)))
	case k >= Key0 && k <= Key9:
		return string(rune('0' + int(k-Key0)))
	case k >= 0 && int(k) < len(keyNames):
		return keyNames[k]
	default:
		return "Unhandled"
	}
}

type Button int

const (
	ButtonUnhandled Button = iota
	Button1                // primary
	Button2                // secondary
	Button3                // tertiary
	buttonCount
)

// ButtonPrimary is the button that activates widgets.
const ButtonPrimary = Button1

func (b Button) String() string {
	switch b {
	case Button1:
		return "Button1"
	case Button2:
		return "Button2"
	case Button3:
		return "Button3"
	default:
		return "Unhandled"
	}
}

type Mod int

const (
	ModNone  Mod = 0
	ModShift Mod = 1 << 0
	ModCtrl  Mod = 1 << 1
	ModAlt   Mod = 1 << 2
	ModSuper Mod = 1 << 3
)

package core

// Input is the per-frame snapshot of key, button and cursor state. The
// platform layer feeds it events; widgets only read it.
//
// Button clicks are edge triggered: ButtonPressed is true only while the most
// recent event for that button was an up->down transition. Latch, called by
// the frame driver once per frame, clears pending edges.
type Input struct {
	buttons     uint8
	buttonsPrev uint8
	keys        uint64
	cursor      Vec2
}

func NewInput() *Input { return &Input{} }

func (in *Input) Handle(ev Event) {
	switch e := ev.(type) {
	case EventKey:
		if e.Key <= KeyUnhandled || e.Key >= keyCount {
			return
		}
		if e.Down {
			in.keys |= 1 << uint(e.Key)
		} else {
			in.keys &^= 1 << uint(e.Key)
		}
	case EventButton:
		if e.Button <= ButtonUnhandled || e.Button >= buttonCount {
			return
		}
		in.buttonsPrev = in.buttons
		if e.Down {
			in.buttons |= 1 << uint(e.Button)
		} else {
			in.buttons &^= 1 << uint(e.Button)
		}
	case EventCursor:
		in.cursor = Vec2{X: e.X, Y: e.Y}
	}
}

// Latch makes the current button state the previous one.
func (in *Input) Latch() { in.buttonsPrev = in.buttons }

func (in *Input) KeyDown(k Key) bool {
	if k <= KeyUnhandled || k >= keyCount {
		return false
	}
	return in.keys&(1<<uint(k)) != 0
}

func (in *Input) ButtonDown(b Button) bool {
	if b <= ButtonUnhandled || b >= buttonCount {
		return false
	}
	return in.buttons&(1<<uint(b)) != 0
}

// ButtonPressed reports an up->down edge for b.
func (in *Input) ButtonPressed(b Button) bool {
	if b <= ButtonUnhandled || b >= buttonCount {
		return false
	}
	mask := uint8(1) << uint(b)
	return in.buttons&mask != 0 && in.buttonsPrev&mask == 0
}

func (in *Input) Cursor() Vec2 { return in.cursor }

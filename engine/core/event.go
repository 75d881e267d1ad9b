package core

// Event model delivered by the platform layer.
type Event interface{ isEvent() }

type EventCloseRequested struct{}

func (EventCloseRequested) isEvent() {}

type EventResize struct{ W, H int }

func (EventResize) isEvent() {}

type EventKey struct {
	Key  Key
	Down bool
	Mods Mod
}

func (EventKey) isEvent() {}

type EventButton struct {
	Button Button
	Down   bool
}

func (EventButton) isEvent() {}

type EventCursor struct{ X, Y float32 }

func (EventCursor) isEvent() {}

// Client is the dispatch contract the frame driver talks to. A state machine
// is the usual implementation.
type Client interface {
	OnKey(key Key, down bool)
	OnButton(button Button, down bool)
	OnCursor(pos Vec2)
	Tick(dt float64)
	Draw(c Canvas, weight float64)
	IsOver() bool
}

// Dispatch records ev into the input snapshot first and then forwards it to
// the client, so handlers always observe the updated state.
func Dispatch(in *Input, c Client, ev Event) {
	in.Handle(ev)
	switch e := ev.(type) {
	case EventKey:
		c.OnKey(e.Key, e.Down)
	case EventButton:
		c.OnButton(e.Button, e.Down)
	case EventCursor:
		c.OnCursor(Vec2{X: e.X, Y: e.Y})
	}
}

package demo

import (
	"github.com/hubastard/sprig/engine/core"
	"github.com/hubastard/sprig/engine/state"
	"github.com/hubastard/sprig/engine/ui"
)

var menuButtonSize = core.V(160, 28)

// Menu is a centered column of buttons. Escape or Q asks before quitting.
// A modal dialog, when open, takes every click.
type Menu struct {
	state.Base
	app     *App
	column  *ui.Rail
	dialog  *ui.Panel
	screen  core.Vec2
	pending state.Result
}

func (a *App) NewMenu() *Menu {
	m := &Menu{app: a}
	g := a.gui

	stride := menuButtonSize.Y + g.LayoutScheme().ContainerSpacing.Y
	m.column = ui.Named(g.Rail(core.Vec2{}, ui.DirDown, stride), "menu")
	m.column.Insert(ui.Named(g.Label("sprig"), "title"), ui.AlignTop|ui.AlignCenter)
	m.column.Insert(ui.Named(g.ButtonTextSized("Input tester", menuButtonSize, m.openTester), "tester"), ui.AlignTop|ui.AlignCenter)
	m.column.Insert(ui.Named(g.ButtonTextSized("About", menuButtonSize, m.openAbout), "about"), ui.AlignTop|ui.AlignCenter)
	m.column.Insert(ui.Named(g.ButtonTextSized("Quit", menuButtonSize, m.askQuit), "quit"), ui.AlignTop|ui.AlignCenter)
	return m
}

func (m *Menu) String() string { return "menu" }

// Root is the widget tree currently receiving clicks.
func (m *Menu) Root() ui.Widget {
	if m.dialog != nil {
		return m.dialog
	}
	return m.column
}

func (m *Menu) DialogOpen() bool { return m.dialog != nil }

func (m *Menu) OnKey(key core.Key, down bool) state.Result {
	if !down {
		return state.Continue()
	}
	switch key {
	case core.KeyEscape, core.KeyQ:
		if m.dialog != nil {
			m.closeDialog()
		} else {
			m.askQuit()
		}
	}
	return m.take()
}

func (m *Menu) OnButton(button core.Button, down bool) state.Result {
	if down {
		m.Root().OnClick(button)
	}
	return m.take()
}

func (m *Menu) Draw(c core.Canvas, weight float64) state.Result {
	m.layout(c.Size())
	m.column.Draw(c)
	if m.dialog != nil {
		c.FillRect(core.RectAt(core.Vec2{}, c.Size()), m.app.gui.ColorScheme().Neutral.WithAlpha(0.5))
		m.dialog.Draw(c)
	}
	return state.Continue()
}

// layout centers the column and the dialog on the screen.
func (m *Menu) layout(screen core.Vec2) {
	if screen == m.screen {
		return
	}
	m.screen = screen
	mid := screen.Scale(0.5)
	ui.Place(m.column, mid, ui.AlignCenter|ui.AlignMiddle)
	if m.dialog != nil {
		ui.Place(m.dialog, mid, ui.AlignCenter|ui.AlignMiddle)
	}
}

func (m *Menu) showDialog(d *ui.Panel) {
	m.dialog = d
	ui.Place(d, m.screen.Scale(0.5), ui.AlignCenter|ui.AlignMiddle)
}

func (m *Menu) closeDialog() { m.dialog = nil }

func (m *Menu) askQuit() {
	m.showDialog(m.app.gui.DialogYesNo("Quit the demo?",
		func() {
			m.closeDialog()
			m.pending = state.TransitionTo(state.NewFadeOut(m, nil, FadePeriod, m.app.fade))
		},
		m.closeDialog,
	))
}

func (m *Menu) openAbout() {
	m.showDialog(m.app.gui.DialogOK("Widgets, states and fades.", m.closeDialog))
}

func (m *Menu) openTester() {
	m.pending = m.app.fadeTo(m, m.app.NewTester(m))
}

func (m *Menu) take() state.Result {
	r := m.pending
	m.pending = state.Continue()
	return r
}

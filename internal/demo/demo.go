// Package demo holds the state nodes shown by the sandboxes: a menu with a
// quit dialog and an input tester, joined by fades.
package demo

import (
	"log/slog"

	"github.com/hubastard/sprig/engine/assets"
	"github.com/hubastard/sprig/engine/colors"
	"github.com/hubastard/sprig/engine/state"
	"github.com/hubastard/sprig/engine/ui"
)

const (
	FadePeriod  = 0.4
	TesterImage = "db.png"
)

// App is what every demo node shares.
type App struct {
	gui  *ui.GUI
	res  *assets.Resources
	log  *slog.Logger
	fade colors.Color
}

func New(g *ui.GUI, res *assets.Resources, log *slog.Logger) *App {
	if log == nil {
		log = slog.Default()
	}
	return &App{gui: g, res: res, log: log, fade: colors.Black}
}

// Start is the initial node: the menu fading in from black.
func (a *App) Start() state.Node {
	m := a.NewMenu()
	return state.NewFadeIn(m, m, FadePeriod, a.fade)
}

// fadeTo covers from, then uncovers to.
func (a *App) fadeTo(from, to state.Node) state.Result {
	in := state.NewFadeIn(to, to, FadePeriod, a.fade)
	return state.TransitionTo(state.NewFadeOut(from, in, FadePeriod, a.fade))
}

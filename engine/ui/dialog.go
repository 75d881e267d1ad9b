package ui

import "github.com/hubastard/sprig/engine/core"

// DialogYesNo builds a panel holding question above a row with "Yes" and
// "No" buttons. The panel's top-left corner is at the origin; move it with
// Place or SetOffset.
func (g *GUI) DialogYesNo(question string, onYes, onNo func()) *Panel {
	return g.dialog(question,
		Named(g.ButtonText("Yes", onYes), "yes"),
		Named(g.ButtonText("No", onNo), "no"),
	)
}

// DialogOK builds the same shape as DialogYesNo with a single "OK" button.
func (g *GUI) DialogOK(message string, onOK func()) *Panel {
	return g.dialog(message, Named(g.ButtonText("OK", onOK), "ok"))
}

func (g *GUI) dialog(question string, buttons ...Widget) *Panel {
	q := Named(g.Label(question), "question")

	row := Named(g.Box(core.Vec2{}, Horizontal), "buttons")
	for _, b := range buttons {
		row.Insert(b, AlignDefault)
	}

	stride := q.Size().Y + g.layout.DialogSpacing
	column := Named(g.Rail(core.Vec2{}, DirDown, stride), "column")
	column.Insert(q, AlignTop|AlignCenter)
	column.Insert(row, AlignTop|AlignCenter)

	panel := Named(g.Panel(core.Vec2{}), "dialog")
	panel.Insert(column, AlignDefault)
	panel.SetOffset(core.Vec2{})
	return panel
}

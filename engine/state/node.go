// Package state drives the application through a chain of screens. Every
// dispatch returns a Result telling the Machine whether to stay, switch to
// another Node or stop.
package state

import (
	"fmt"

	"github.com/hubastard/sprig/engine/core"
)

type resultKind uint8

const (
	kindContinue resultKind = iota
	kindTransition
	kindTerminate
)

// Result is the outcome of a single dispatch.
type Result struct {
	kind resultKind
	next Node
}

// Continue keeps the current node.
func Continue() Result { return Result{} }

// TransitionTo replaces the current node with next.
func TransitionTo(next Node) Result { return Result{kind: kindTransition, next: next} }

// Terminate finishes the machine and with it the application.
func Terminate() Result { return Result{kind: kindTerminate} }

func (r Result) IsContinue() bool  { return r.kind == kindContinue }
func (r Result) IsTerminate() bool { return r.kind == kindTerminate }

// Next returns the successor of a transition.
func (r Result) Next() (Node, bool) {
	return r.next, r.kind == kindTransition
}

func (r Result) String() string {
	switch r.kind {
	case kindTransition:
		return fmt.Sprintf("transition(%T)", r.next)
	case kindTerminate:
		return "terminate"
	default:
		return "continue"
	}
}

// Node is one screen or mode of the application.
type Node interface {
	OnKey(key core.Key, down bool) Result
	OnButton(button core.Button, down bool) Result
	OnCursor(pos core.Vec2) Result
	Tick(dt float64) Result
	// Draw should not change state; a transition returned from here is
	// honored but logged.
	Draw(c core.Canvas, weight float64) Result
}

// Releaser is implemented by nodes holding resources that must be freed once
// the machine moves past them.
type Releaser interface {
	Release()
}

// Holder is implemented by nodes that keep other nodes alive, either to draw
// them or to return to them later. The machine does not release a node while
// its successor still holds it.
type Holder interface {
	Held() []Node
}

// Base answers Continue to everything. Embed it and override what you need.
type Base struct{}

func (Base) OnKey(core.Key, bool) Result       { return Continue() }
func (Base) OnButton(core.Button, bool) Result { return Continue() }
func (Base) OnCursor(core.Vec2) Result         { return Continue() }
func (Base) Tick(float64) Result               { return Continue() }
func (Base) Draw(core.Canvas, float64) Result  { return Continue() }

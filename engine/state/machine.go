package state

import (
	"log/slog"

	"github.com/hubastard/sprig/engine/core"
)

// Machine owns the current Node and swaps it according to the Result of
// every dispatch. It implements core.Client.
type Machine struct {
	current     Node
	over        bool
	transitions int
	log         *slog.Logger
}

type Option func(*Machine)

func WithLogger(l *slog.Logger) Option {
	return func(m *Machine) { m.log = l }
}

func NewMachine(initial Node, opts ...Option) *Machine {
	m := &Machine{current: initial, log: slog.Default()}
	for _, opt := range opts {
		opt(m)
	}
	if initial == nil {
		m.log.Warn("state machine started without a node")
		m.over = true
	}
	return m
}

// Current is the node receiving dispatches, nil once terminated.
func (m *Machine) Current() Node { return m.current }

// Transitions counts the swaps performed so far.
func (m *Machine) Transitions() int { return m.transitions }

func (m *Machine) IsOver() bool { return m.over }

func (m *Machine) OnKey(key core.Key, down bool) {
	if !m.over {
		m.apply("key", m.current.OnKey(key, down))
	}
}

func (m *Machine) OnButton(button core.Button, down bool) {
	if !m.over {
		m.apply("button", m.current.OnButton(button, down))
	}
}

func (m *Machine) OnCursor(pos core.Vec2) {
	if !m.over {
		m.apply("cursor", m.current.OnCursor(pos))
	}
}

func (m *Machine) Tick(dt float64) {
	if !m.over {
		m.apply("tick", m.current.Tick(dt))
	}
}

func (m *Machine) Draw(c core.Canvas, weight float64) {
	if m.over {
		return
	}
	r := m.current.Draw(c, weight)
	if !r.IsContinue() {
		m.log.Warn("state change requested from draw", "result", r.String())
	}
	m.apply("draw", r)
}

func (m *Machine) apply(source string, r Result) {
	switch r.kind {
	case kindContinue:
		return
	case kindTerminate:
		m.log.Debug("state machine terminated", "source", source, "node", nodeName(m.current))
		m.release(m.current, nil)
		m.current = nil
		m.over = true
	case kindTransition:
		if r.next == nil {
			m.log.Warn("transition to nil node, terminating", "source", source)
			m.apply(source, Terminate())
			return
		}
		m.transitions++
		m.log.Debug("state transition", "source", source,
			"from", nodeName(m.current), "to", nodeName(r.next))
		prev := m.current
		m.current = r.next
		m.release(prev, r.next)
	}
}

// release frees n and, through Holder, the nodes n kept alive, skipping every
// node still reachable from keep.
func (m *Machine) release(n, keep Node) {
	live := reachable(keep)
	done := map[Node]bool{}
	var walk func(Node)
	walk = func(n Node) {
		if n == nil || live[n] || done[n] {
			return
		}
		done[n] = true
		if rel, ok := n.(Releaser); ok {
			m.log.Debug("releasing node", "node", nodeName(n))
			rel.Release()
		}
		if h, ok := n.(Holder); ok {
			for _, c := range h.Held() {
				walk(c)
			}
		}
	}
	walk(n)
}

func reachable(root Node) map[Node]bool {
	seen := map[Node]bool{}
	var walk func(Node)
	walk = func(n Node) {
		if n == nil || seen[n] {
			return
		}
		seen[n] = true
		if h, ok := n.(Holder); ok {
			for _, c := range h.Held() {
				walk(c)
			}
		}
	}
	walk(root)
	return seen
}

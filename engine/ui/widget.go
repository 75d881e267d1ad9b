package ui

import (
	"fmt"
	"io"
	"iter"
	"strings"

	"github.com/hubastard/sprig/engine/core"
)

// Widget is a retained element of the interface tree. Rect always spans
// Offset()..Offset()+Size() and Size is never negative.
type Widget interface {
	Name() string
	SetName(name string)

	Size() core.Vec2
	Offset() core.Vec2
	SetOffset(p core.Vec2)
	Rect() core.Rect

	PointIn(p core.Vec2) bool
	OnClick(button core.Button)
	Draw(c core.Canvas)
}

// Container is a Widget that owns and lays out children.
type Container interface {
	Widget
	Insert(w Widget, a Alignment)
	Remove(w Widget) bool
	Contains(w Widget) bool
	Children() iter.Seq[Widget]
	Len() int
}

// Named sets the debug name of w and returns it, for use inline with the
// constructors.
func Named[T Widget](w T, name string) T {
	w.SetName(name)
	return w
}

// VisitChildren yields the direct children of w. Leaves yield nothing.
func VisitChildren(w Widget) iter.Seq[Widget] {
	return func(yield func(Widget) bool) {
		c, ok := w.(Container)
		if !ok {
			return
		}
		for child := range c.Children() {
			if !yield(child) {
				return
			}
		}
	}
}

// VisitDescendants walks everything below w depth first, in insertion order,
// yielding each widget with its depth (1 for direct children).
func VisitDescendants(w Widget) iter.Seq2[int, Widget] {
	return func(yield func(int, Widget) bool) {
		walk(w, 1, yield)
	}
}

func walk(w Widget, depth int, yield func(int, Widget) bool) bool {
	for child := range VisitChildren(w) {
		if !yield(depth, child) {
			return false
		}
		if !walk(child, depth+1, yield) {
			return false
		}
	}
	return true
}

// Holds reports whether target is root itself or anywhere below it.
func Holds(root, target Widget) bool {
	if root == target {
		return true
	}
	for _, w := range VisitDescendants(root) {
		if w == target {
			return true
		}
	}
	return false
}

// Dump prints the tree under w, one widget per line.
func Dump(out io.Writer, w Widget) {
	dumpLine(out, 0, w)
	for depth, d := range VisitDescendants(w) {
		dumpLine(out, depth, d)
	}
}

func dumpLine(out io.Writer, depth int, w Widget) {
	r := w.Rect()
	name := w.Name()
	if name == "" {
		name = "-"
	}
	fmt.Fprintf(out, "%s%s %q (%.1f, %.1f)-(%.1f, %.1f)\n",
		strings.Repeat("  ", depth), kindOf(w), name, r.Min.X, r.Min.Y, r.Max.X, r.Max.Y)
}

func kindOf(w Widget) string {
	switch w.(type) {
	case *Label:
		return "Label"
	case *Image:
		return "Image"
	case *Button:
		return "Button"
	case *ButtonImage:
		return "ButtonImage"
	case *Free:
		return "Free"
	case *Panel:
		return "Panel"
	case *Rail:
		return "Rail"
	case *Box:
		return "Box"
	default:
		return fmt.Sprintf("%T", w)
	}
}

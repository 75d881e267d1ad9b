package ui

import (
	"testing"

	"github.com/hubastard/sprig/engine/core"
)

func TestRailAdvancesByStride(t *testing.T) {
	tests := []struct {
		dir  Direction
		step core.Vec2
	}{
		{DirRight, core.V(30, 0)},
		{DirDown, core.V(0, 30)},
		{DirLeft, core.V(-30, 0)},
		{DirUp, core.V(0, -30)},
	}
	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			g, _ := newTestGUI(t)
			start := core.V(100, 100)
			r := g.Rail(start, tt.dir, 30)

			texts := []string{"a", "abcdefghij", "", "abc"}
			for i, s := range texts {
				l := g.Label(s)
				r.Insert(l, AlignDefault)
				wantVec(t, "child offset", l.Offset(), start.Add(tt.step.Scale(float32(i))))
			}
			wantVec(t, "cursor", r.Cursor(), start.Add(tt.step.Scale(float32(len(texts)))))
			if r.Len() != len(texts) {
				t.Errorf("Len() = %d, want %d", r.Len(), len(texts))
			}
		})
	}
}

func TestRailAlignsAtCursor(t *testing.T) {
	g, _ := newTestGUI(t)
	r := g.Rail(core.V(100, 0), DirDown, 20)
	a := g.Label("abcd") // 32x16
	b := g.Label("ab")   // 16x16
	r.Insert(a, AlignTop|AlignCenter)
	r.Insert(b, AlignTop|AlignRight)

	wantVec(t, "a", a.Offset(), core.V(84, 0))
	wantVec(t, "b", b.Offset(), core.V(84, 20))
	wantRect(t, "rail rect", r.Rect(), core.Rect{Min: core.V(84, 0), Max: core.V(116, 36)})
}

func TestBoxAdvancesByChildSize(t *testing.T) {
	g, _ := newTestGUI(t)

	h := g.Box(core.V(10, 10), Horizontal)
	a, b := g.Label("abc"), g.Label("a") // 24 and 8 wide
	h.Insert(a, AlignCenter|AlignMiddle) // alignment ignored
	h.Insert(b, AlignDefault)
	wantVec(t, "a", a.Offset(), core.V(10, 10))
	wantVec(t, "b", b.Offset(), core.V(10+24+4, 10))
	wantVec(t, "cursor", h.Cursor(), core.V(10+24+4+8+4, 10))

	v := g.Box(core.V(0, 0), Vertical)
	c, d := g.Label("abc"), g.Label("a")
	v.Insert(c, AlignDefault)
	v.Insert(d, AlignDefault)
	wantVec(t, "d", d.Offset(), core.V(0, 20))
	wantVec(t, "cursor", v.Cursor(), core.V(0, 40))
}

func TestBoxRemoveDoesNotReflow(t *testing.T) {
	g, _ := newTestGUI(t)
	box := g.Box(core.Vec2{}, Horizontal)
	ws := []*Label{g.Label("aa"), g.Label("bbbb"), g.Label("c")}
	for _, w := range ws {
		box.Insert(w, AlignDefault)
	}
	before := []core.Vec2{ws[0].Offset(), ws[1].Offset(), ws[2].Offset()}
	cursor := box.Cursor()

	if !box.Remove(ws[1]) {
		t.Fatal("Remove returned false for a child")
	}
	if box.Remove(ws[1]) {
		t.Error("second Remove returned true")
	}
	if box.Contains(ws[1]) {
		t.Error("removed child still contained")
	}
	wantVec(t, "first", ws[0].Offset(), before[0])
	wantVec(t, "third", ws[2].Offset(), before[2])
	wantVec(t, "cursor", box.Cursor(), cursor)
}

func TestPanelRectIsPaddedUnion(t *testing.T) {
	g, _ := newTestGUI(t)
	p := g.Panel(core.V(50, 50))
	pad := g.LayoutScheme().WidgetPadding

	wantRect(t, "empty", p.Rect(), core.Rect{Min: core.V(50, 50), Max: core.V(50, 50)}.Expand(pad))

	a := g.Label("abcd")                 // 32x16
	p.Insert(a, AlignCenter|AlignMiddle) // (34,42)-(66,58)
	b := g.Image(fakeImage{w: 10, h: 40})
	p.Insert(b, AlignDefault) // (50,50)-(60,90)

	want := a.Rect().Union(b.Rect()).Expand(pad)
	wantRect(t, "two children", p.Rect(), want)
	wantRect(t, "two children literal", p.Rect(), core.Rect{Min: core.V(26, 38), Max: core.V(74, 94)})
	wantVec(t, "size", p.Size(), core.V(48, 56))

	p.Remove(b)
	wantRect(t, "after remove", p.Rect(), a.Rect().Expand(pad))
}

func TestSetOffsetTranslatesDescendants(t *testing.T) {
	g, _ := newTestGUI(t)

	panel := g.Panel(core.V(20, 20))
	rail := g.Rail(core.Vec2{}, DirDown, 24)
	box := g.Box(core.Vec2{}, Horizontal)
	yes := g.ButtonText("Yes", nil)
	no := g.ButtonText("No", nil)
	box.Insert(yes, AlignDefault)
	box.Insert(no, AlignDefault)
	rail.Insert(g.Label("question"), AlignTop|AlignCenter)
	rail.Insert(box, AlignTop|AlignCenter)
	panel.Insert(rail, AlignDefault)

	type snap struct {
		w   Widget
		off core.Vec2
	}
	var before []snap
	for _, w := range VisitDescendants(panel) {
		before = append(before, snap{w, w.Offset()})
	}
	origin := panel.Offset()
	railCursor := rail.Cursor()

	// Round trip is a no-op.
	panel.SetOffset(panel.Offset())
	for _, s := range before {
		wantVec(t, "no-op", s.w.Offset(), s.off)
	}

	d := core.V(13, -7)
	panel.SetOffset(origin.Add(d))
	wantVec(t, "panel", panel.Offset(), origin.Add(d))
	for _, s := range before {
		wantVec(t, kindOf(s.w), s.w.Offset(), s.off.Add(d))
	}
	wantVec(t, "rail cursor", rail.Cursor(), railCursor.Add(d))
	wantVec(t, "panel anchor", panel.Anchor(), core.V(20, 20).Add(d))
}

func TestEmptyContainerSetOffsetMovesOrigin(t *testing.T) {
	g, _ := newTestGUI(t)
	r := g.Rail(core.V(5, 5), DirRight, 10)
	r.SetOffset(core.V(15, 25))
	wantVec(t, "offset", r.Offset(), core.V(15, 25))
	wantVec(t, "cursor", r.Cursor(), core.V(15, 25))

	l := g.Label("x")
	r.Insert(l, AlignDefault)
	wantVec(t, "child", l.Offset(), core.V(15, 25))
}

func TestFreeKeepsOffsets(t *testing.T) {
	g, _ := newTestGUI(t)
	f := g.Free(core.Vec2{})
	a := g.Label("ab")
	a.SetOffset(core.V(300, 200))
	f.Insert(a, AlignCenter|AlignMiddle)
	wantVec(t, "a", a.Offset(), core.V(300, 200))
	wantRect(t, "rect", f.Rect(), a.Rect())

	for _, p := range []core.Vec2{core.V(-1000, -1000), core.V(0, 0), core.V(300, 200)} {
		if !f.PointIn(p) {
			t.Errorf("Free.PointIn(%+v) = false", p)
		}
	}
}

func TestContainersPassClicksToChildren(t *testing.T) {
	g, in := newTestGUI(t)
	root := g.Free(core.Vec2{})
	rail := g.Rail(core.V(100, 100), DirDown, 40)
	root.Insert(rail, AlignDefault)

	var fired []string
	a := g.ButtonText("a", func() { fired = append(fired, "a") })
	b := g.ButtonText("b", func() { fired = append(fired, "b") })
	rail.Insert(a, AlignDefault) // (100,100) 24x24
	rail.Insert(b, AlignDefault) // (100,140)

	click(in, root, core.V(110, 150))
	if len(fired) != 1 || fired[0] != "b" {
		t.Fatalf("fired = %v, want [b]", fired)
	}

	click(in, root, core.V(10, 10))
	if len(fired) != 1 {
		t.Errorf("click outside fired %v", fired)
	}
}

func TestContainerInterfaces(t *testing.T) {
	g, _ := newTestGUI(t)
	for _, c := range []Container{
		g.Free(core.Vec2{}),
		g.Panel(core.Vec2{}),
		g.Rail(core.Vec2{}, DirRight, 1),
		g.Box(core.Vec2{}, Vertical),
	} {
		l := g.Label("x")
		c.Insert(l, AlignDefault)
		if !c.Contains(l) || c.Len() != 1 {
			t.Errorf("%s: inserted child missing", kindOf(c))
		}
		if c.Contains(g.Label("x")) {
			t.Errorf("%s: Contains matched a different widget", kindOf(c))
		}
		if got := c.Rect().Size(); got != c.Size() {
			t.Errorf("%s: Rect size %+v != Size %+v", kindOf(c), got, c.Size())
		}
	}
}

package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/hubastard/sprig/engine/core"
)

func TestVisitDescendantsDepthFirst(t *testing.T) {
	g, _ := newTestGUI(t)
	d := g.DialogYesNo("Quit?", nil, nil)

	type entry struct {
		depth int
		name  string
	}
	var got []entry
	for depth, w := range VisitDescendants(d) {
		got = append(got, entry{depth, w.Name()})
	}
	want := []entry{{1, "column"}, {2, "question"}, {2, "buttons"}, {3, "yes"}, {3, "no"}}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("[%d] = %v, want %v", i, got[i], want[i])
		}
	}

	// Restartable and stoppable.
	n := 0
	for range VisitDescendants(d) {
		n++
		if n == 2 {
			break
		}
	}
	if n != 2 {
		t.Errorf("early break visited %d", n)
	}
}

func TestVisitChildrenLeaf(t *testing.T) {
	g, _ := newTestGUI(t)
	for range VisitChildren(g.Label("x")) {
		t.Fatal("a leaf has no children")
	}
}

func TestHolds(t *testing.T) {
	g, _ := newTestGUI(t)
	d := g.DialogYesNo("Quit?", nil, nil)
	yes := findNamed(d, "yes")
	if !Holds(d, yes) || !Holds(d, d) {
		t.Error("Holds missed a descendant")
	}
	if Holds(d, g.Label("stray")) {
		t.Error("Holds matched a foreign widget")
	}
	if d.Contains(yes) {
		t.Error("Contains must only look at direct children")
	}
}

func TestDump(t *testing.T) {
	g, _ := newTestGUI(t)
	f := g.Free(core.Vec2{})
	f.Insert(Named(g.Label("hi"), "greeting"), AlignDefault)
	f.Insert(g.Image(fakeImage{w: 4, h: 4}), AlignDefault)

	var buf bytes.Buffer
	Dump(&buf, f)

	want := strings.Join([]string{
		`Free "-" (0.0, 0.0)-(16.0, 16.0)`,
		`  Label "greeting" (0.0, 0.0)-(16.0, 16.0)`,
		`  Image "-" (0.0, 0.0)-(4.0, 4.0)`,
		``,
	}, "\n")
	if buf.String() != want {
		t.Errorf("Dump:\n%s\nwant:\n%s", buf.String(), want)
	}
}
